package domain

// DerivedMetrics is the calculator output for one Scenario.
// Recomputed on demand, never persisted.
type DerivedMetrics struct {
	CurrentCapacity     float64 `json:"currentCapacity"`     // customers per hour
	CapacityUtilization float64 `json:"capacityUtilization"` // percent, may exceed 100
	HourlyRevenue       float64 `json:"hourlyRevenue"`
	DailyRevenue        float64 `json:"dailyRevenue"`
	MonthlyRevenue      float64 `json:"monthlyRevenue"`   // 30 days
	AnnualRevenue       float64 `json:"annualRevenue"`    // 365 days
	PotentialRevenue    float64 `json:"potentialRevenue"` // daily revenue at target utilization
}

// ProjectionPoint is one point of the linear revenue projection.
type ProjectionPoint struct {
	Label      string  `json:"label"` // "Day 7"
	Days       int     `json:"days"`
	Current    float64 `json:"current"`
	Comparison float64 `json:"comparison"` // zero when not comparing
}

// BreakdownRow is one bar of the revenue breakdown chart.
type BreakdownRow struct {
	Period     string  `json:"period"` // "Daily" | "Monthly" | "Annual"
	Current    float64 `json:"current"`
	Comparison float64 `json:"comparison"`
}

// CapacitySplit describes how capacity is used, for the utilization chart.
type CapacitySplit struct {
	Used      float64 `json:"used"`      // current capacity
	Available float64 `json:"available"` // never negative
	Target    float64 `json:"target"`    // capacity at target utilization
}
