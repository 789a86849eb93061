package clickhouse

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"revenue-lab/internal/storage"
)

// KVStore implements storage.KVStore on a ReplacingMergeTree table.
// Every write inserts a new row with a higher version; reads use FINAL so the
// newest row per key is returned. Deletes insert a tombstone row.
type KVStore struct {
	conn *Conn

	mu          sync.Mutex
	lastVersion uint64
}

// NewKVStore creates a new KVStore.
func NewKVStore(conn *Conn) *KVStore {
	return &KVStore{conn: conn}
}

// Compile-time interface check.
var _ storage.KVStore = (*KVStore)(nil)

// Get returns the value stored under key. Returns ErrNotFound if key is absent or deleted.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value, deleted FROM kv_entries FINAL WHERE key = ? LIMIT 1`

	var (
		value   string
		deleted uint8
	)
	if err := s.conn.QueryRow(ctx, query, key).Scan(&value, &deleted); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get key %s: %w", key, err)
	}
	if deleted == 1 {
		return nil, storage.ErrNotFound
	}
	return []byte(value), nil
}

// Set stores value under key.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("set: %w: empty key", storage.ErrInvalidInput)
	}
	return s.write(ctx, key, string(value), 0)
}

// Delete writes a tombstone for key.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	return s.write(ctx, key, "", 1)
}

// Keys returns all live keys in ascending order.
func (s *KVStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.conn.Query(ctx, `SELECT key FROM kv_entries FINAL WHERE deleted = 0 ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate keys: %w", err)
	}
	return keys, nil
}

func (s *KVStore) write(ctx context.Context, key, value string, deleted uint8) error {
	query := `INSERT INTO kv_entries (key, value, deleted, version) VALUES (?, ?, ?, ?)`

	if err := s.conn.Exec(ctx, query, key, value, deleted, s.nextVersion()); err != nil {
		return fmt.Errorf("write key %s: %w", key, err)
	}
	return nil
}

// nextVersion returns a strictly increasing version based on wall-clock nanoseconds.
func (s *KVStore) nextVersion() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := uint64(time.Now().UnixNano())
	if v <= s.lastVersion {
		v = s.lastVersion + 1
	}
	s.lastVersion = v
	return v
}
