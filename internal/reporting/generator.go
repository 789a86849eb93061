package reporting

import (
	"time"

	"revenue-lab/internal/compare"
	"revenue-lab/internal/metrics"
	"revenue-lab/internal/session"
)

// Generator produces reports from the session and its saved scenarios.
type Generator struct {
	state    *session.State
	money    *compare.CurrencyFormatter
	kpiMoney *compare.CurrencyFormatter
	now      func() time.Time // Injectable clock for deterministic output
}

// NewGenerator creates a new report generator.
func NewGenerator(state *session.State, money, kpiMoney *compare.CurrencyFormatter) *Generator {
	return &Generator{
		state:    state,
		money:    money,
		kpiMoney: kpiMoney,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// WithClock sets a custom clock function for deterministic output.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Generate produces a complete report.
func (g *Generator) Generate() *Report {
	view := g.state.View(g.money)

	r := &Report{
		GeneratedAt: g.now(),
		Mode:        string(view.Mode),
		Current: ScenarioSection{
			Scenario: view.Current,
			Metrics:  view.CurrentMetrics,
			Capacity: view.Capacity,
		},
		Projection: view.Projection,
		Breakdown:  view.Breakdown,
		money:      g.money,
		kpiMoney:   g.kpiMoney,
	}

	if view.Comparison != nil {
		r.Comparison = &ScenarioSection{
			Scenario: *view.Comparison,
			Metrics:  *view.ComparisonMetrics,
			Capacity: *view.ComparisonCapacity,
		}
		r.MetricDeltas = view.Metrics
		r.InputDeltas = view.Inputs
		r.Summary = view.Summary
	}

	for _, sc := range g.state.Store().List() {
		r.SavedScenarios = append(r.SavedScenarios, SavedScenarioRow{
			ID:        sc.ID,
			Name:      sc.Name,
			CreatedAt: sc.CreatedAt,
			Inputs:    sc.Inputs(),
			Metrics:   metrics.ComputeMetrics(sc),
		})
	}

	fb := g.state.FoodBundleInputs()
	r.FoodBundle = FoodBundleSection{Inputs: fb, Result: metrics.ComputeFoodBundle(fb)}

	kpi := g.state.KPIInputs()
	r.KPI = KPISection{Inputs: kpi, Result: metrics.ComputeKPI(kpi)}

	return r
}
