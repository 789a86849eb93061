package postgres

import (
	"context"
	"fmt"

	"revenue-lab/internal/storage"
)

// KVStore implements storage.KVStore on the kv_entries table.
type KVStore struct {
	pool *Pool
}

// NewKVStore creates a new KVStore.
func NewKVStore(pool *Pool) *KVStore {
	return &KVStore{pool: pool}
}

// Compile-time interface check.
var _ storage.KVStore = (*KVStore)(nil)

// Get returns the value stored under key. Returns ErrNotFound if key is absent.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM kv_entries WHERE key = $1`

	var value []byte
	if err := s.pool.QueryRow(ctx, query, key).Scan(&value); err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get key %s: %w", key, err)
	}
	return value, nil
}

// Set upserts value under key.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("set: %w: empty key", storage.ErrInvalidInput)
	}

	query := `
		INSERT INTO kv_entries (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at
	`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("set key %s: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete key %s: %w", key, err)
	}
	return nil
}

// Keys returns all stored keys in ascending order.
func (s *KVStore) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `SELECT key FROM kv_entries ORDER BY key ASC`)
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
