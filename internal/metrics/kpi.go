package metrics

import "revenue-lab/internal/domain"

// ComputeKPI returns the KPI page revenue figures.
func ComputeKPI(in domain.KPIInputs) domain.KPIResult {
	daily := in.ARPU * float64(in.Footfall)
	return domain.KPIResult{
		DailyRevenue:   daily,
		MonthlyRevenue: daily * DaysPerMonth,
		AnnualRevenue:  in.ARPU * float64(in.Footfall) * DaysPerYear,
	}
}
