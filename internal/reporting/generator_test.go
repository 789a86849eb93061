package reporting

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"revenue-lab/internal/compare"
	"revenue-lab/internal/scenario"
	"revenue-lab/internal/session"
	"revenue-lab/internal/storage/memory"
)

var fixedTime = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedTime }

func setupState(t *testing.T) *session.State {
	t.Helper()

	n := 0
	ids := func() (string, error) {
		n++
		return fmt.Sprintf("scenario-%d", n), nil
	}

	kv := memory.NewKVStore()
	store := scenario.NewStore(kv, scenario.WithClock(clock), scenario.WithIDGenerator(ids))
	store.Load(context.Background())
	return session.New(kv, store, session.WithClock(clock))
}

func newGenerator(state *session.State) *Generator {
	return NewGenerator(state,
		compare.MustCurrencyFormatter(compare.DefaultLocale, compare.DefaultCurrency),
		compare.MustCurrencyFormatter(compare.KPILocale, compare.KPICurrency),
	).WithClock(clock)
}

// setupComparing saves a higher-rate scenario and compares the defaults against it.
func setupComparing(t *testing.T) *session.State {
	t.Helper()
	ctx := context.Background()
	state := setupState(t)

	require.NoError(t, state.SetInput(session.InputHourlyRate, 30))
	_, _, err := state.SaveCurrent(ctx, "Higher | rate")
	require.NoError(t, err)
	state.ResetToDefaults()
	_, err = state.SelectComparison("scenario-1")
	require.NoError(t, err)
	return state
}

func TestGenerate_Single(t *testing.T) {
	r := newGenerator(setupState(t)).Generate()

	assert.Equal(t, fixedTime, r.GeneratedAt)
	assert.Equal(t, "single", r.Mode)
	assert.Nil(t, r.Comparison)
	assert.Nil(t, r.Summary)
	assert.Empty(t, r.MetricDeltas)
	assert.Equal(t, 2500.0, r.Current.Metrics.DailyRevenue)
	assert.Len(t, r.Projection, 6)
	assert.Len(t, r.FoodBundle.Result.Rows, 10)
	assert.Equal(t, 3_500_000.0, r.KPI.Result.DailyRevenue)
}

func TestGenerate_Comparing(t *testing.T) {
	r := newGenerator(setupComparing(t)).Generate()

	assert.Equal(t, "comparing", r.Mode)
	require.NotNil(t, r.Comparison)
	assert.Equal(t, 3000.0, r.Comparison.Metrics.DailyRevenue)
	assert.Len(t, r.MetricDeltas, 7)
	assert.Len(t, r.InputDeltas, 8)
	require.Len(t, r.SavedScenarios, 1)
	assert.Equal(t, 3000.0, r.SavedScenarios[0].Metrics.DailyRevenue)
}

func TestRenderMarkdown_Single(t *testing.T) {
	md := RenderMarkdown(newGenerator(setupState(t)).Generate())

	assert.True(t, strings.HasPrefix(md, "# Revenue Estimator Report\n"))
	assert.Contains(t, md, "Generated: 2025-01-15T10:00:00Z")
	assert.Contains(t, md, "| Daily Revenue | $2,500 |")
	assert.Contains(t, md, "| Annual Revenue | $912,500 |")
	assert.Contains(t, md, "| Capacity Utilization | 8.3% |")
	assert.Contains(t, md, "| Day 365 | $912,500 |")
	assert.Contains(t, md, "No saved scenarios.")
	assert.Contains(t, md, "Minimum adoption rate for profit: 35% (moderate)")
	assert.Contains(t, md, "| Daily Revenue | Rp\u00a03.500.000 |")
	assert.NotContains(t, md, "## Comparison Summary")
}

func TestRenderMarkdown_Comparing(t *testing.T) {
	md := RenderMarkdown(newGenerator(setupComparing(t)).Generate())

	assert.Contains(t, md, `| Metric | Current Scenario | Higher \| rate | Difference |`)
	assert.Contains(t, md, "| Daily Revenue | $2,500 | $3,000 | +20.0% |")
	assert.Contains(t, md, "## Comparison Summary")
	assert.Contains(t, md, "Scenario B generates $500 more daily revenue than Scenario A.")
	assert.Contains(t, md, "| Day 1 | $2,500 | $3,000 |")
	assert.Contains(t, md, "| Footfall | 100 | 100 | 0.0% |")
	assert.Contains(t, md, "| Hours Per Day | 8 | 8 | 0.0% |")
}

func TestRenderMarkdown_Deterministic(t *testing.T) {
	gen := newGenerator(setupComparing(t))
	assert.Equal(t, RenderMarkdown(gen.Generate()), RenderMarkdown(gen.Generate()))
}

func TestRenderCSV(t *testing.T) {
	out, err := RenderCSV(newGenerator(setupComparing(t)).Generate())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "header, current, one saved")

	assert.Equal(t, csvHeader, records[0])
	assert.Equal(t, "current", records[1][0])
	assert.Equal(t, "2500", records[1][13])
	assert.Equal(t, "Higher | rate", records[2][1])
	assert.Equal(t, "3000", records[2][13])
	assert.Equal(t, "12.5", records[2][10])
}

func TestRenderHTML(t *testing.T) {
	state := setupState(t)
	_, _, err := state.SaveCurrent(context.Background(), "<script>alert(1)</script>")
	require.NoError(t, err)

	page, err := RenderHTML(newGenerator(state).Generate())
	require.NoError(t, err)

	html := string(page)
	assert.True(t, strings.HasPrefix(html, "<!DOCTYPE html>"))
	assert.Contains(t, html, "<h1>Revenue Estimator Report</h1>")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<td>$2,500</td>")
	assert.NotContains(t, html, "<script>")
}

func TestRenderXLSX(t *testing.T) {
	data, err := RenderXLSX(newGenerator(setupComparing(t)).Generate())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetMetrics, SheetProjection, SheetScenarios, SheetFoodBundle, SheetKPI}, f.GetSheetList())

	header, err := f.GetCellValue(SheetMetrics, "C1")
	require.NoError(t, err)
	assert.Equal(t, "Higher | rate", header)

	rows, err := f.GetRows(SheetProjection)
	require.NoError(t, err)
	require.Len(t, rows, 7)
	assert.Equal(t, []string{"Day 1", "1", "2500", "3000"}, rows[1])

	kpi, err := f.GetCellValue(SheetKPI, "B4")
	require.NoError(t, err)
	assert.Equal(t, "3500000", kpi)
}

func TestRenderXLSX_NonFinite(t *testing.T) {
	state := setupState(t)
	require.NoError(t, state.SetInput(session.InputDiscountRate, 100))

	data, err := RenderXLSX(newGenerator(state).Generate())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(SheetFoodBundle, "B5")
	require.NoError(t, err)
	assert.Equal(t, "+Inf", v)
}
