package session

import (
	"revenue-lab/internal/compare"
	"revenue-lab/internal/domain"
	"revenue-lab/internal/metrics"
)

// View is everything the estimator page renders for the current state.
type View struct {
	Mode           Mode                     `json:"mode"`
	Current        domain.Scenario          `json:"current"`
	CurrentMetrics domain.DerivedMetrics    `json:"currentMetrics"`
	Projection     []domain.ProjectionPoint `json:"projection"`
	Breakdown      []domain.BreakdownRow    `json:"breakdown"`
	Capacity       domain.CapacitySplit     `json:"capacity"`

	// Set only in comparing mode.
	Comparison         *domain.Scenario       `json:"comparison,omitempty"`
	ComparisonMetrics  *domain.DerivedMetrics `json:"comparisonMetrics,omitempty"`
	ComparisonCapacity *domain.CapacitySplit  `json:"comparisonCapacity,omitempty"`
	Metrics            []compare.FieldDelta   `json:"metricDeltas,omitempty"`
	Inputs             []compare.FieldDelta   `json:"inputDeltas,omitempty"`
	Summary            *compare.Summary       `json:"summary,omitempty"`
}

// View computes the estimator output for the current state.
func (s *State) View(f *compare.CurrencyFormatter) View {
	current := s.doc.Current
	cm := metrics.ComputeMetrics(current)

	v := View{
		Mode:           ModeSingle,
		Current:        current,
		CurrentMetrics: cm,
		Capacity:       metrics.CapacityBreakdown(current, cm),
	}

	other, ok := s.Comparison()
	if !ok {
		v.Projection = metrics.Projection(cm, nil)
		v.Breakdown = metrics.RevenueBreakdown(cm, nil)
		return v
	}

	pm := metrics.ComputeMetrics(other)
	capacity := metrics.CapacityBreakdown(other, pm)
	summary := compare.Summarize(current, other, cm, pm, f)

	v.Mode = ModeComparing
	v.Comparison = &other
	v.ComparisonMetrics = &pm
	v.ComparisonCapacity = &capacity
	v.Projection = metrics.Projection(cm, &pm)
	v.Breakdown = metrics.RevenueBreakdown(cm, &pm)
	v.Metrics = compare.Compare(cm, pm)
	v.Inputs = compare.CompareInputs(current.Inputs(), other.Inputs())
	v.Summary = &summary
	return v
}
