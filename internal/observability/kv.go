package observability

import (
	"context"
	"errors"
	"time"

	"revenue-lab/internal/storage"
)

// InstrumentedKV wraps a storage.KVStore and records operation timings.
type InstrumentedKV struct {
	next    storage.KVStore
	backend string
	metrics *Metrics
}

// InstrumentKV returns kv wrapped with timing metrics labelled by backend.
func InstrumentKV(kv storage.KVStore, backend string, m *Metrics) *InstrumentedKV {
	return &InstrumentedKV{next: kv, backend: backend, metrics: m}
}

// Compile-time interface check.
var _ storage.KVStore = (*InstrumentedKV)(nil)

// Get implements storage.KVStore. A missing key is not counted as an error.
func (k *InstrumentedKV) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	value, err := k.next.Get(ctx, key)
	recorded := err
	if errors.Is(err, storage.ErrNotFound) {
		recorded = nil
	}
	k.metrics.RecordKVOp(k.backend, "get", time.Since(start).Seconds(), recorded)
	return value, err
}

// Set implements storage.KVStore.
func (k *InstrumentedKV) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := k.next.Set(ctx, key, value)
	k.metrics.RecordKVOp(k.backend, "set", time.Since(start).Seconds(), err)
	return err
}

// Delete implements storage.KVStore.
func (k *InstrumentedKV) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := k.next.Delete(ctx, key)
	k.metrics.RecordKVOp(k.backend, "delete", time.Since(start).Seconds(), err)
	return err
}

// Keys implements storage.KVStore.
func (k *InstrumentedKV) Keys(ctx context.Context) ([]string, error) {
	start := time.Now()
	keys, err := k.next.Keys(ctx)
	k.metrics.RecordKVOp(k.backend, "keys", time.Since(start).Seconds(), err)
	return keys, err
}
