package reporting

import (
	"time"

	"revenue-lab/internal/compare"
	"revenue-lab/internal/domain"
)

// Report is a snapshot of every calculator for export.
type Report struct {
	// Metadata
	GeneratedAt time.Time
	Mode        string // "single" | "comparing"

	// Revenue estimator
	Current    ScenarioSection
	Comparison *ScenarioSection // nil in single mode

	MetricDeltas []compare.FieldDelta
	InputDeltas  []compare.FieldDelta
	Summary      *compare.Summary

	Projection []domain.ProjectionPoint
	Breakdown  []domain.BreakdownRow

	// Saved scenarios in insertion order
	SavedScenarios []SavedScenarioRow

	// Secondary calculators
	FoodBundle FoodBundleSection
	KPI        KPISection

	money    *compare.CurrencyFormatter
	kpiMoney *compare.CurrencyFormatter
}

// ScenarioSection is one scenario with its derived metrics.
type ScenarioSection struct {
	Scenario domain.Scenario
	Metrics  domain.DerivedMetrics
	Capacity domain.CapacitySplit
}

// SavedScenarioRow lists one saved scenario.
type SavedScenarioRow struct {
	ID        string
	Name      string
	CreatedAt time.Time
	Inputs    domain.Inputs
	Metrics   domain.DerivedMetrics
}

// FoodBundleSection holds the food-bundle calculator.
type FoodBundleSection struct {
	Inputs domain.FoodBundleInputs
	Result domain.FoodBundleResult
}

// KPISection holds the KPI calculator.
type KPISection struct {
	Inputs domain.KPIInputs
	Result domain.KPIResult
}

// Money formats an amount in the estimator currency.
func (r *Report) Money(v float64) string {
	return r.money.Format(v)
}

// KPIMoney formats an amount in the KPI currency.
func (r *Report) KPIMoney(v float64) string {
	return r.kpiMoney.Format(v)
}
