package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revenue-lab/internal/storage"
)

func TestKVStore_Postgres(t *testing.T) {
	pool := setupTestDB(t)

	store := NewKVStore(pool)
	ctx := context.Background()

	t.Run("get missing", func(t *testing.T) {
		_, err := store.Get(ctx, "savedScenarios")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "savedScenarios", []byte(`[]`)))

		got, err := store.Get(ctx, "savedScenarios")
		require.NoError(t, err)
		assert.Equal(t, `[]`, string(got))
	})

	t.Run("upsert replaces", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "savedScenarios", []byte(`[{"id":"scenario-1"}]`)))

		got, err := store.Get(ctx, "savedScenarios")
		require.NoError(t, err)
		assert.Equal(t, `[{"id":"scenario-1"}]`, string(got))
	})

	t.Run("keys sorted", func(t *testing.T) {
		require.NoError(t, store.Set(ctx, "session", []byte(`{}`)))

		keys, err := store.Keys(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"savedScenarios", "session"}, keys)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "session"))
		require.NoError(t, store.Delete(ctx, "session"))

		_, err := store.Get(ctx, "session")
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		err := store.Set(ctx, "", []byte(`x`))
		assert.ErrorIs(t, err, storage.ErrInvalidInput)
	})
}
