package metrics

import (
	"math"

	"revenue-lab/internal/domain"
)

// Calendar multiples used by the revenue projections.
const (
	DaysPerMonth = 30
	DaysPerYear  = 365
)

// ComputeMetrics derives revenue and capacity metrics from a scenario.
// Inputs are not validated: a zero TotalCapacity or HoursPerDay yields
// +Inf or NaN, which is passed through to the caller unchanged.
func ComputeMetrics(s domain.Scenario) domain.DerivedMetrics {
	hoursPerDay := float64(s.HoursPerDay)

	currentCapacity := (float64(s.Footfall) * s.SessionDuration) / hoursPerDay
	capacityUtilization := (currentCapacity / s.TotalCapacity) * 100

	hourlyRevenue := s.HourlyRate * currentCapacity
	dailyRevenue := hourlyRevenue * hoursPerDay

	return domain.DerivedMetrics{
		CurrentCapacity:     currentCapacity,
		CapacityUtilization: capacityUtilization,
		HourlyRevenue:       hourlyRevenue,
		DailyRevenue:        dailyRevenue,
		MonthlyRevenue:      dailyRevenue * DaysPerMonth,
		AnnualRevenue:       dailyRevenue * DaysPerYear,
		PotentialRevenue:    s.HourlyRate * ((s.TotalCapacity * s.UtilizationRate) / 100) * hoursPerDay,
	}
}

// Projection returns cumulative revenue at fixed day offsets, linear in daily revenue.
// comparison may be nil, in which case every Comparison value is zero.
func Projection(current domain.DerivedMetrics, comparison *domain.DerivedMetrics) []domain.ProjectionPoint {
	points := []struct {
		label string
		days  int
		value func(m domain.DerivedMetrics) float64
	}{
		{"Day 1", 1, func(m domain.DerivedMetrics) float64 { return m.DailyRevenue }},
		{"Day 7", 7, func(m domain.DerivedMetrics) float64 { return m.DailyRevenue * 7 }},
		{"Day 30", 30, func(m domain.DerivedMetrics) float64 { return m.MonthlyRevenue }},
		{"Day 90", 90, func(m domain.DerivedMetrics) float64 { return m.MonthlyRevenue * 3 }},
		{"Day 180", 180, func(m domain.DerivedMetrics) float64 { return m.MonthlyRevenue * 6 }},
		{"Day 365", 365, func(m domain.DerivedMetrics) float64 { return m.AnnualRevenue }},
	}

	result := make([]domain.ProjectionPoint, len(points))
	for i, p := range points {
		result[i] = domain.ProjectionPoint{
			Label:   p.label,
			Days:    p.days,
			Current: p.value(current),
		}
		if comparison != nil {
			result[i].Comparison = p.value(*comparison)
		}
	}
	return result
}

// RevenueBreakdown returns daily, monthly and annual revenue bars.
func RevenueBreakdown(current domain.DerivedMetrics, comparison *domain.DerivedMetrics) []domain.BreakdownRow {
	rows := []domain.BreakdownRow{
		{Period: "Daily", Current: current.DailyRevenue},
		{Period: "Monthly", Current: current.MonthlyRevenue},
		{Period: "Annual", Current: current.AnnualRevenue},
	}
	if comparison != nil {
		rows[0].Comparison = comparison.DailyRevenue
		rows[1].Comparison = comparison.MonthlyRevenue
		rows[2].Comparison = comparison.AnnualRevenue
	}
	return rows
}

// CapacityBreakdown splits total capacity into used and available shares.
func CapacityBreakdown(s domain.Scenario, m domain.DerivedMetrics) domain.CapacitySplit {
	return domain.CapacitySplit{
		Used:      m.CurrentCapacity,
		Available: math.Max(0, s.TotalCapacity-m.CurrentCapacity),
		Target:    (s.TotalCapacity * s.UtilizationRate) / 100,
	}
}
