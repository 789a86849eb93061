package memory

import (
	"context"
	"sort"
	"sync"

	"revenue-lab/internal/storage"
)

// KVStore is an in-memory implementation of storage.KVStore.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewKVStore creates a new in-memory key/value store.
func NewKVStore() *KVStore {
	return &KVStore{
		data: make(map[string][]byte),
	}
}

// Get returns the value stored under key. Returns ErrNotFound if key is absent.
func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, exists := s.data[key]
	if !exists {
		return nil, storage.ErrNotFound
	}

	// Return a copy
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores value under key, replacing any previous value.
func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return storage.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Store a copy to prevent external mutation
	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

// Delete removes key.
func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Keys returns all stored keys in ascending order.
func (s *KVStore) Keys(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, len(s.data))
	for k := range s.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

var _ storage.KVStore = (*KVStore)(nil)
