package reporting

import (
	"bytes"
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the spreadsheet report.
const (
	SheetMetrics    = "Metrics"
	SheetProjection = "Projection"
	SheetScenarios  = "Scenarios"
	SheetFoodBundle = "Food Bundle"
	SheetKPI        = "KPI"
)

// RenderXLSX renders the report as an Excel workbook. Cells hold raw numbers;
// non-finite values are written as text.
func RenderXLSX(r *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheets := []struct {
		name string
		rows [][]any
	}{
		{SheetMetrics, metricsRows(r)},
		{SheetProjection, projectionRows(r)},
		{SheetScenarios, scenarioRows(r)},
		{SheetFoodBundle, foodBundleRows(r)},
		{SheetKPI, kpiRows(r)},
	}

	for i, sheet := range sheets {
		if _, err := f.NewSheet(sheet.name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", sheet.name, err)
		}
		if i == 0 {
			idx, err := f.GetSheetIndex(sheet.name)
			if err != nil {
				return nil, fmt.Errorf("lookup sheet %s: %w", sheet.name, err)
			}
			f.SetActiveSheet(idx)
		}
		if err := writeRows(f, sheet.name, sheet.rows); err != nil {
			return nil, err
		}
	}
	_ = f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		for j := range row {
			row[j] = cellValue(row[j])
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}

// cellValue turns non-finite floats into text, which spreadsheets cannot store as numbers.
func cellValue(v any) any {
	if x, ok := v.(float64); ok && (math.IsInf(x, 0) || math.IsNaN(x)) {
		return fmt.Sprint(x)
	}
	return v
}

func metricsRows(r *Report) [][]any {
	rows := [][]any{{"Field", r.Current.Scenario.Name}}
	if r.Comparison != nil {
		rows[0] = append(rows[0], r.Comparison.Scenario.Name, "Difference")
		for _, d := range r.InputDeltas {
			rows = append(rows, []any{d.Label, d.Current, d.Comparison, d.Difference})
		}
		for _, d := range r.MetricDeltas {
			rows = append(rows, []any{d.Label, d.Current, d.Comparison, d.Difference})
		}
		return rows
	}

	in := r.Current.Scenario.Inputs()
	m := r.Current.Metrics
	return append(rows,
		[]any{"ARPU", in.ARPU},
		[]any{"Footfall", in.Footfall},
		[]any{"Session Duration", in.SessionDuration},
		[]any{"Utilization Rate", in.UtilizationRate},
		[]any{"Total Capacity", in.TotalCapacity},
		[]any{"Hourly Rate", in.HourlyRate},
		[]any{"Hours Per Day", in.HoursPerDay},
		[]any{"Daily Revenue", m.DailyRevenue},
		[]any{"Hourly Revenue", m.HourlyRevenue},
		[]any{"Monthly Revenue", m.MonthlyRevenue},
		[]any{"Annual Revenue", m.AnnualRevenue},
		[]any{"Capacity Utilization", m.CapacityUtilization},
		[]any{"Current Capacity", m.CurrentCapacity},
		[]any{"Potential Revenue", m.PotentialRevenue},
	)
}

func projectionRows(r *Report) [][]any {
	rows := [][]any{{"Period", "Days", "Current", "Comparison"}}
	for _, p := range r.Projection {
		rows = append(rows, []any{p.Label, p.Days, p.Current, p.Comparison})
	}
	return rows
}

func scenarioRows(r *Report) [][]any {
	rows := [][]any{{"ID", "Name", "Created", "ARPU", "Footfall", "Session Duration", "Utilization Rate",
		"Total Capacity", "Hourly Rate", "Hours Per Day", "Daily Revenue", "Annual Revenue"}}
	for _, s := range r.SavedScenarios {
		rows = append(rows, []any{
			s.ID, s.Name, s.CreatedAt,
			s.Inputs.ARPU, s.Inputs.Footfall, s.Inputs.SessionDuration, s.Inputs.UtilizationRate,
			s.Inputs.TotalCapacity, s.Inputs.HourlyRate, s.Inputs.HoursPerDay,
			s.Metrics.DailyRevenue, s.Metrics.AnnualRevenue,
		})
	}
	return rows
}

func foodBundleRows(r *Report) [][]any {
	fb := r.FoodBundle
	rows := [][]any{
		{"Conversion Rate", fb.Inputs.ConversionRate},
		{"Average Spending", fb.Inputs.AverageSpending},
		{"Discount Rate", fb.Inputs.DiscountRate},
		{"Total Users", fb.Inputs.TotalUsers},
		{"Minimum Adoption Rate", fb.Result.MinimumAdoptionRate},
		{"Viability", string(fb.Result.MinimumAdoptionGrade)},
		{},
		{"Adoption Rate", "Base Food Revenue", "Bundle Food Revenue"},
	}
	for _, row := range fb.Result.Rows {
		rows = append(rows, []any{row.AdoptionRate, row.BaseFoodRevenue, row.BundleFoodRevenue})
	}
	return rows
}

func kpiRows(r *Report) [][]any {
	k := r.KPI
	return [][]any{
		{"ARPU", k.Inputs.ARPU},
		{"Footfall", k.Inputs.Footfall},
		{"Total Capacity", k.Inputs.TotalCapacity},
		{"Daily Revenue", k.Result.DailyRevenue},
		{"Monthly Revenue", k.Result.MonthlyRevenue},
		{"Annual Revenue", k.Result.AnnualRevenue},
	}
}
