package observability

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revenue-lab/internal/storage"
	"revenue-lab/internal/storage/memory"
)

func TestMetrics_ScenarioCounters(t *testing.T) {
	m := NewMetrics("")

	m.RecordSave(1)
	m.RecordSave(2)
	m.RecordSaveRejected()
	m.RecordDelete(1)
	m.RecordLoadFailure("decode")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ScenariosSaved))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SavesRejected))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ScenariosDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SavedScenarios))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoadFailures.WithLabelValues("decode")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordComputation("revenue")
		m.RecordSave(1)
		m.RecordSaveRejected()
		m.RecordDelete(0)
		m.RecordLoad(0)
		m.RecordLoadFailure("read")
		m.RecordWriteError()
		m.RecordReport("md")
		m.RecordKVOp("memory", "get", 0.1, nil)
	})
	assert.NoError(t, m.WriteTextfile("/nonexistent/metrics.prom"))
}

func TestMetrics_WriteTextfile(t *testing.T) {
	m := NewMetrics("")
	m.RecordComputation("revenue")

	path := filepath.Join(t.TempDir(), "revlab.prom")
	require.NoError(t, m.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `revenue_lab_calculator_computations_total{calculator="revenue"} 1`)
}

func TestInstrumentKV(t *testing.T) {
	m := NewMetrics("")
	kv := InstrumentKV(memory.NewKVStore(), "memory", m)
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.KVOpErrors.WithLabelValues("memory", "get")),
		"not found is not an error")

	assert.ErrorIs(t, kv.Set(ctx, "", []byte("x")), storage.ErrInvalidInput)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.KVOpErrors.WithLabelValues("memory", "set")))

	require.NoError(t, kv.Set(ctx, "k", []byte("v")))
	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"k"}, keys)
	require.NoError(t, kv.Delete(ctx, "k"))

	// One series per operation: get, set, keys, delete
	assert.Equal(t, 4, testutil.CollectAndCount(m.KVOpDuration))
}
