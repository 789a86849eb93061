package compare

import (
	"encoding/json"

	"revenue-lab/internal/domain"
)

// Kind tells the presentation layer how to render a value.
type Kind string

// Value kinds.
const (
	KindCurrency Kind = "currency"
	KindPercent  Kind = "percent"
	KindNumber   Kind = "number"
	KindInteger  Kind = "integer" // whole counts, rendered without decimals
)

// FieldDelta pairs one displayed field of the current and comparison scenarios.
type FieldDelta struct {
	Field      string  `json:"field"`
	Label      string  `json:"label"`
	Kind       Kind    `json:"kind"`
	Current    float64 `json:"current"`
	Comparison float64 `json:"comparison"`
	Difference string  `json:"difference"` // PercentDifference(Current, Comparison)
}

// MarshalJSON writes non-finite values as strings.
func (d FieldDelta) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Field      string       `json:"field"`
		Label      string       `json:"label"`
		Kind       Kind         `json:"kind"`
		Current    domain.Float `json:"current"`
		Comparison domain.Float `json:"comparison"`
		Difference string       `json:"difference"`
	}{d.Field, d.Label, d.Kind, domain.Float(d.Current), domain.Float(d.Comparison), d.Difference})
}

// Improved reports whether the comparison value is greater than the current one.
func (d FieldDelta) Improved() bool {
	return d.Comparison > d.Current
}

func delta(field, label string, kind Kind, current, comparison float64) FieldDelta {
	return FieldDelta{
		Field:      field,
		Label:      label,
		Kind:       kind,
		Current:    current,
		Comparison: comparison,
		Difference: PercentDifference(current, comparison),
	}
}

// Compare pairs every displayed derived metric of both scenarios in display order.
func Compare(current, comparison domain.DerivedMetrics) []FieldDelta {
	return []FieldDelta{
		delta("dailyRevenue", "Daily Revenue", KindCurrency, current.DailyRevenue, comparison.DailyRevenue),
		delta("hourlyRevenue", "Hourly Revenue", KindCurrency, current.HourlyRevenue, comparison.HourlyRevenue),
		delta("monthlyRevenue", "Monthly Revenue", KindCurrency, current.MonthlyRevenue, comparison.MonthlyRevenue),
		delta("annualRevenue", "Annual Revenue", KindCurrency, current.AnnualRevenue, comparison.AnnualRevenue),
		delta("capacityUtilization", "Capacity Utilization", KindPercent, current.CapacityUtilization, comparison.CapacityUtilization),
		delta("currentCapacity", "Current Capacity", KindNumber, current.CurrentCapacity, comparison.CurrentCapacity),
		delta("potentialRevenue", "Potential Revenue", KindCurrency, current.PotentialRevenue, comparison.PotentialRevenue),
	}
}

// CompareInputs pairs every input parameter of both scenarios, plus the target
// capacity (totalCapacity × utilizationRate / 100).
func CompareInputs(current, comparison domain.Inputs) []FieldDelta {
	return []FieldDelta{
		delta("arpu", "ARPU", KindCurrency, current.ARPU, comparison.ARPU),
		delta("footfall", "Footfall", KindInteger, float64(current.Footfall), float64(comparison.Footfall)),
		delta("sessionDuration", "Session Duration", KindNumber, current.SessionDuration, comparison.SessionDuration),
		delta("utilizationRate", "Utilization Rate", KindPercent, current.UtilizationRate, comparison.UtilizationRate),
		delta("totalCapacity", "Total Capacity", KindNumber, current.TotalCapacity, comparison.TotalCapacity),
		delta("hourlyRate", "Hourly Rate", KindCurrency, current.HourlyRate, comparison.HourlyRate),
		delta("hoursPerDay", "Hours Per Day", KindInteger, float64(current.HoursPerDay), float64(comparison.HoursPerDay)),
		delta("targetCapacity", "Target Capacity", KindNumber, targetCapacity(current), targetCapacity(comparison)),
	}
}

func targetCapacity(in domain.Inputs) float64 {
	return (in.TotalCapacity * in.UtilizationRate) / 100
}

// ChangedInputs returns the input deltas whose values differ.
func ChangedInputs(current, comparison domain.Inputs) []FieldDelta {
	var changed []FieldDelta
	for _, d := range CompareInputs(current, comparison) {
		if d.Field == "targetCapacity" {
			continue
		}
		if d.Current != d.Comparison {
			changed = append(changed, d)
		}
	}
	return changed
}
