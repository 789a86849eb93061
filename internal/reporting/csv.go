package reporting

import (
	"encoding/csv"
	"strconv"
	"strings"
	"time"
)

var csvHeader = []string{
	"id", "name", "created_at",
	"arpu", "footfall", "session_duration", "utilization_rate", "total_capacity", "hourly_rate", "hours_per_day",
	"current_capacity", "capacity_utilization", "hourly_revenue", "daily_revenue", "monthly_revenue", "annual_revenue", "potential_revenue",
}

// RenderCSV renders the current scenario followed by every saved scenario, one row
// each, with inputs and derived metrics. Numbers use the shortest exact representation.
func RenderCSV(r *Report) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(csvHeader); err != nil {
		return "", err
	}

	rows := make([]SavedScenarioRow, 0, len(r.SavedScenarios)+1)
	cur := r.Current.Scenario
	rows = append(rows, SavedScenarioRow{
		ID:        cur.ID,
		Name:      cur.Name,
		CreatedAt: cur.CreatedAt,
		Inputs:    cur.Inputs(),
		Metrics:   r.Current.Metrics,
	})
	rows = append(rows, r.SavedScenarios...)

	for _, s := range rows {
		record := []string{
			s.ID,
			s.Name,
			s.CreatedAt.Format(time.RFC3339),
			num(s.Inputs.ARPU),
			strconv.Itoa(s.Inputs.Footfall),
			num(s.Inputs.SessionDuration),
			num(s.Inputs.UtilizationRate),
			num(s.Inputs.TotalCapacity),
			num(s.Inputs.HourlyRate),
			strconv.Itoa(s.Inputs.HoursPerDay),
			num(s.Metrics.CurrentCapacity),
			num(s.Metrics.CapacityUtilization),
			num(s.Metrics.HourlyRevenue),
			num(s.Metrics.DailyRevenue),
			num(s.Metrics.MonthlyRevenue),
			num(s.Metrics.AnnualRevenue),
			num(s.Metrics.PotentialRevenue),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
