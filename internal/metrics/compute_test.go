package metrics

import (
	"math"
	"testing"

	"revenue-lab/internal/domain"
)

func exampleScenario() domain.Scenario {
	return domain.Scenario{
		ID:              domain.CurrentScenarioID,
		Name:            "Current Scenario",
		ARPU:            50,
		Footfall:        100,
		SessionDuration: 1,
		UtilizationRate: 70,
		TotalCapacity:   150,
		HourlyRate:      25,
		HoursPerDay:     8,
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeMetrics_Example(t *testing.T) {
	m := ComputeMetrics(exampleScenario())

	// 100 customers * 1h / 8h = 12.5 customers per hour
	if m.CurrentCapacity != 12.5 {
		t.Errorf("CurrentCapacity = %f, want 12.5", m.CurrentCapacity)
	}
	// 12.5 / 150 * 100
	if !approxEqual(m.CapacityUtilization, 8.333333333333334) {
		t.Errorf("CapacityUtilization = %f, want ~8.33", m.CapacityUtilization)
	}
	if m.HourlyRevenue != 312.5 {
		t.Errorf("HourlyRevenue = %f, want 312.5", m.HourlyRevenue)
	}
	if m.DailyRevenue != 2500 {
		t.Errorf("DailyRevenue = %f, want 2500", m.DailyRevenue)
	}
	if m.MonthlyRevenue != 75000 {
		t.Errorf("MonthlyRevenue = %f, want 75000", m.MonthlyRevenue)
	}
	if m.AnnualRevenue != 912500 {
		t.Errorf("AnnualRevenue = %f, want 912500", m.AnnualRevenue)
	}
	// 25 * (150 * 0.70) * 8
	if m.PotentialRevenue != 21000 {
		t.Errorf("PotentialRevenue = %f, want 21000", m.PotentialRevenue)
	}
}

func TestComputeMetrics_RevenueIdentities(t *testing.T) {
	tests := []struct {
		name string
		mod  func(s *domain.Scenario)
	}{
		{"defaults", func(s *domain.Scenario) {}},
		{"fractional session", func(s *domain.Scenario) { s.SessionDuration = 2.75 }},
		{"full day", func(s *domain.Scenario) { s.HoursPerDay = 24; s.Footfall = 431 }},
		{"over capacity", func(s *domain.Scenario) { s.TotalCapacity = 3; s.HourlyRate = 199 }},
		{"small values", func(s *domain.Scenario) {
			s.Footfall = 1
			s.SessionDuration = 0.1
			s.HourlyRate = 1
			s.HoursPerDay = 1
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := exampleScenario()
			tt.mod(&s)
			m := ComputeMetrics(s)

			if m.DailyRevenue != m.HourlyRevenue*float64(s.HoursPerDay) {
				t.Errorf("daily %f != hourly %f * hours %d", m.DailyRevenue, m.HourlyRevenue, s.HoursPerDay)
			}
			if m.MonthlyRevenue != m.DailyRevenue*30 {
				t.Errorf("monthly %f != daily %f * 30", m.MonthlyRevenue, m.DailyRevenue)
			}
			if m.AnnualRevenue != m.DailyRevenue*365 {
				t.Errorf("annual %f != daily %f * 365", m.AnnualRevenue, m.DailyRevenue)
			}
		})
	}
}

func TestComputeMetrics_Idempotent(t *testing.T) {
	s := exampleScenario()
	s.SessionDuration = 1.3
	s.UtilizationRate = 33

	first := ComputeMetrics(s)
	second := ComputeMetrics(s)

	if first != second {
		t.Errorf("ComputeMetrics not idempotent: %+v vs %+v", first, second)
	}
	if math.Float64bits(first.CapacityUtilization) != math.Float64bits(second.CapacityUtilization) {
		t.Error("CapacityUtilization differs bitwise between calls")
	}
}

func TestComputeMetrics_ZeroCapacityIsInfinite(t *testing.T) {
	s := exampleScenario()
	s.TotalCapacity = 0

	m := ComputeMetrics(s)

	if !math.IsInf(m.CapacityUtilization, 1) {
		t.Errorf("CapacityUtilization = %f, want +Inf", m.CapacityUtilization)
	}
	if m.PotentialRevenue != 0 {
		t.Errorf("PotentialRevenue = %f, want 0", m.PotentialRevenue)
	}
}

func TestComputeMetrics_ZeroHoursPerDay(t *testing.T) {
	s := exampleScenario()
	s.HoursPerDay = 0

	m := ComputeMetrics(s)

	if !math.IsInf(m.CurrentCapacity, 1) {
		t.Errorf("CurrentCapacity = %f, want +Inf", m.CurrentCapacity)
	}
	// +Inf * 0 hours
	if !math.IsNaN(m.DailyRevenue) {
		t.Errorf("DailyRevenue = %f, want NaN", m.DailyRevenue)
	}
}

func TestProjection(t *testing.T) {
	current := ComputeMetrics(exampleScenario())

	points := Projection(current, nil)
	want := []struct {
		label string
		days  int
		value float64
	}{
		{"Day 1", 1, 2500},
		{"Day 7", 7, 17500},
		{"Day 30", 30, 75000},
		{"Day 90", 90, 225000},
		{"Day 180", 180, 450000},
		{"Day 365", 365, 912500},
	}

	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(points))
	}
	for i, w := range want {
		p := points[i]
		if p.Label != w.label || p.Days != w.days || p.Current != w.value {
			t.Errorf("point %d = %+v, want %s/%d/%f", i, p, w.label, w.days, w.value)
		}
		if p.Comparison != 0 {
			t.Errorf("point %d comparison = %f, want 0 without comparison", i, p.Comparison)
		}
	}
}

func TestProjection_WithComparison(t *testing.T) {
	current := ComputeMetrics(exampleScenario())
	other := exampleScenario()
	other.Footfall = 120
	comparison := ComputeMetrics(other)

	points := Projection(current, &comparison)

	if points[0].Comparison != 3000 {
		t.Errorf("Day 1 comparison = %f, want 3000", points[0].Comparison)
	}
	if points[5].Comparison != comparison.AnnualRevenue {
		t.Errorf("Day 365 comparison = %f, want %f", points[5].Comparison, comparison.AnnualRevenue)
	}
}

func TestRevenueBreakdown(t *testing.T) {
	current := ComputeMetrics(exampleScenario())
	rows := RevenueBreakdown(current, &current)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Period != "Daily" || rows[1].Period != "Monthly" || rows[2].Period != "Annual" {
		t.Errorf("unexpected periods: %+v", rows)
	}
	for _, r := range rows {
		if r.Current != r.Comparison {
			t.Errorf("%s: current %f != comparison %f", r.Period, r.Current, r.Comparison)
		}
	}
}

func TestCapacityBreakdown(t *testing.T) {
	s := exampleScenario()
	split := CapacityBreakdown(s, ComputeMetrics(s))

	if split.Used != 12.5 {
		t.Errorf("Used = %f, want 12.5", split.Used)
	}
	if split.Available != 137.5 {
		t.Errorf("Available = %f, want 137.5", split.Available)
	}
	if split.Target != 105 {
		t.Errorf("Target = %f, want 105", split.Target)
	}

	// Over capacity: available is floored at zero
	s.TotalCapacity = 10
	split = CapacityBreakdown(s, ComputeMetrics(s))
	if split.Available != 0 {
		t.Errorf("Available = %f, want 0 when over capacity", split.Available)
	}
}
