package storage

import "context"

// KVStore is a durable string key/value store holding small JSON documents.
// It plays the role a browser's local storage plays for a single-page dashboard.
type KVStore interface {
	// Get returns the value stored under key. Returns ErrNotFound if key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
}
