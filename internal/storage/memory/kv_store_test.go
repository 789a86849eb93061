package memory

import (
	"context"
	"errors"
	"testing"

	"revenue-lab/internal/storage"
)

func TestKVStore_SetAndGet(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	if err := store.Set(ctx, "savedScenarios", []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	got, err := store.Get(ctx, "savedScenarios")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("value mismatch: got %q, want %q", got, "[]")
	}
}

func TestKVStore_Overwrite(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	_ = store.Set(ctx, "k", []byte("one"))
	_ = store.Set(ctx, "k", []byte("two"))

	got, err := store.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != "two" {
		t.Errorf("expected overwritten value %q, got %q", "two", got)
	}
}

func TestKVStore_NotFound(t *testing.T) {
	store := NewKVStore()

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestKVStore_EmptyKey(t *testing.T) {
	store := NewKVStore()

	err := store.Set(context.Background(), "", []byte("x"))
	if !errors.Is(err, storage.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}

func TestKVStore_Delete(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	_ = store.Set(ctx, "k", []byte("v"))
	if err := store.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "k"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	// Deleting again is a no-op
	if err := store.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete of absent key failed: %v", err)
	}
}

func TestKVStore_CopyIsolation(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	value := []byte("abc")
	_ = store.Set(ctx, "k", value)
	value[0] = 'X'

	got, _ := store.Get(ctx, "k")
	if string(got) != "abc" {
		t.Errorf("stored value mutated through caller slice: %q", got)
	}

	got[1] = 'Y'
	again, _ := store.Get(ctx, "k")
	if string(again) != "abc" {
		t.Errorf("stored value mutated through returned slice: %q", again)
	}
}

func TestKVStore_Keys(t *testing.T) {
	store := NewKVStore()
	ctx := context.Background()

	_ = store.Set(ctx, "session", []byte("{}"))
	_ = store.Set(ctx, "savedScenarios", []byte("[]"))

	keys, err := store.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 2 || keys[0] != "savedScenarios" || keys[1] != "session" {
		t.Errorf("unexpected keys: %v", keys)
	}
}
