package domain

// KPIInputs are the inputs of the KPI summary page.
type KPIInputs struct {
	ARPU          float64 `json:"arpu"`
	Footfall      int     `json:"footfall"`
	TotalCapacity int     `json:"totalCapacity"` // upper bound for footfall
}

// DefaultKPIInputs mirror the KPI page's initial values.
var DefaultKPIInputs = KPIInputs{
	ARPU:          500000,
	Footfall:      7,
	TotalCapacity: 20,
}

// KPIResult holds the KPI page revenue figures.
type KPIResult struct {
	DailyRevenue   float64 `json:"dailyRevenue"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	AnnualRevenue  float64 `json:"annualRevenue"`
}
