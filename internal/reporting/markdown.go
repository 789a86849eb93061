package reporting

import (
	"fmt"
	"strings"
	"time"

	"revenue-lab/internal/compare"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Revenue Estimator Report\n\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", r.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Mode: %s | Saved scenarios: %d\n\n", r.Mode, len(r.SavedScenarios)))

	// Inputs
	sb.WriteString("## Inputs\n\n")
	if r.Comparison != nil {
		sb.WriteString(fmt.Sprintf("| Input | %s | %s | Difference |\n", escapeCell(r.Current.Scenario.Name), escapeCell(r.Comparison.Scenario.Name)))
		sb.WriteString("|-------|---|---|------------|\n")
		for _, d := range r.InputDeltas {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				d.Label, r.value(d.Kind, d.Current), r.value(d.Kind, d.Comparison), d.Difference))
		}
	} else {
		in := r.Current.Scenario.Inputs()
		sb.WriteString("| Input | Value |\n")
		sb.WriteString("|-------|-------|\n")
		sb.WriteString(fmt.Sprintf("| ARPU | %s |\n", r.Money(in.ARPU)))
		sb.WriteString(fmt.Sprintf("| Footfall | %d customers/day |\n", in.Footfall))
		sb.WriteString(fmt.Sprintf("| Session Duration | %s hours |\n", compare.Fixed(in.SessionDuration, 1)))
		sb.WriteString(fmt.Sprintf("| Utilization Rate | %s%% |\n", compare.Fixed(in.UtilizationRate, 0)))
		sb.WriteString(fmt.Sprintf("| Total Capacity | %s |\n", compare.Fixed(in.TotalCapacity, 0)))
		sb.WriteString(fmt.Sprintf("| Hourly Rate | %s |\n", r.Money(in.HourlyRate)))
		sb.WriteString(fmt.Sprintf("| Hours Per Day | %d |\n", in.HoursPerDay))
	}
	sb.WriteString("\n")

	// Metrics
	sb.WriteString("## Metrics\n\n")
	if r.Comparison != nil {
		sb.WriteString(fmt.Sprintf("| Metric | %s | %s | Difference |\n", escapeCell(r.Current.Scenario.Name), escapeCell(r.Comparison.Scenario.Name)))
		sb.WriteString("|--------|---|---|------------|\n")
		for _, d := range r.MetricDeltas {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s |\n",
				d.Label, r.value(d.Kind, d.Current), r.value(d.Kind, d.Comparison), d.Difference))
		}
	} else {
		m := r.Current.Metrics
		sb.WriteString("| Metric | Value |\n")
		sb.WriteString("|--------|-------|\n")
		sb.WriteString(fmt.Sprintf("| Daily Revenue | %s |\n", r.Money(m.DailyRevenue)))
		sb.WriteString(fmt.Sprintf("| Hourly Revenue | %s |\n", r.Money(m.HourlyRevenue)))
		sb.WriteString(fmt.Sprintf("| Monthly Revenue | %s |\n", r.Money(m.MonthlyRevenue)))
		sb.WriteString(fmt.Sprintf("| Annual Revenue | %s |\n", r.Money(m.AnnualRevenue)))
		sb.WriteString(fmt.Sprintf("| Capacity Utilization | %s%% |\n", compare.Fixed(m.CapacityUtilization, 1)))
		sb.WriteString(fmt.Sprintf("| Current Capacity | %s customers/hour |\n", compare.Fixed(m.CurrentCapacity, 1)))
		sb.WriteString(fmt.Sprintf("| Potential Revenue | %s |\n", r.Money(m.PotentialRevenue)))
	}
	sb.WriteString("\n")

	// Comparison summary
	if r.Summary != nil {
		sb.WriteString("## Comparison Summary\n\n")
		for _, impact := range r.Summary.Impacts {
			sb.WriteString(fmt.Sprintf("- **%s:** %s\n", impact.Title, impact.Sentence))
		}
		sb.WriteString("\n")
	}

	// Projection
	sb.WriteString("## Revenue Projection\n\n")
	if r.Comparison != nil {
		sb.WriteString("| Period | Current | Comparison |\n")
		sb.WriteString("|--------|---------|------------|\n")
		for _, p := range r.Projection {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n", p.Label, r.Money(p.Current), r.Money(p.Comparison)))
		}
	} else {
		sb.WriteString("| Period | Revenue |\n")
		sb.WriteString("|--------|---------|\n")
		for _, p := range r.Projection {
			sb.WriteString(fmt.Sprintf("| %s | %s |\n", p.Label, r.Money(p.Current)))
		}
	}
	sb.WriteString("\n")

	// Capacity
	c := r.Current.Capacity
	sb.WriteString("## Capacity\n\n")
	sb.WriteString("| Used | Available | Target |\n")
	sb.WriteString("|------|-----------|--------|\n")
	sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n\n",
		compare.Fixed(c.Used, 1), compare.Fixed(c.Available, 1), compare.Fixed(c.Target, 1)))

	// Saved scenarios
	sb.WriteString("## Saved Scenarios\n\n")
	if len(r.SavedScenarios) > 0 {
		sb.WriteString("| ID | Name | Created | Daily Revenue | Annual Revenue |\n")
		sb.WriteString("|----|------|---------|---------------|----------------|\n")
		for _, s := range r.SavedScenarios {
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				s.ID, escapeCell(s.Name), s.CreatedAt.Format("2006-01-02"),
				r.Money(s.Metrics.DailyRevenue), r.Money(s.Metrics.AnnualRevenue)))
		}
	} else {
		sb.WriteString("No saved scenarios.\n")
	}
	sb.WriteString("\n")

	// Food bundle
	fb := r.FoodBundle
	sb.WriteString("## Food Bundle\n\n")
	sb.WriteString(fmt.Sprintf("Conversion %s%% | Average spending %s | Discount %s%% | Users %d\n\n",
		compare.Fixed(fb.Inputs.ConversionRate, 0), r.Money(fb.Inputs.AverageSpending),
		compare.Fixed(fb.Inputs.DiscountRate, 0), fb.Inputs.TotalUsers))
	sb.WriteString("| Adoption | Base Food Revenue | Bundle Food Revenue |\n")
	sb.WriteString("|----------|-------------------|---------------------|\n")
	for _, row := range fb.Result.Rows {
		sb.WriteString(fmt.Sprintf("| %d%% | %s | %s |\n",
			row.AdoptionRate, r.Money(row.BaseFoodRevenue), r.Money(row.BundleFoodRevenue)))
	}
	sb.WriteString(fmt.Sprintf("\nMinimum adoption rate for profit: %s%% (%s)\n\n",
		compare.Fixed(fb.Result.MinimumAdoptionRate, 0), fb.Result.MinimumAdoptionGrade))

	// KPI
	k := r.KPI
	sb.WriteString("## KPI\n\n")
	sb.WriteString("| Metric | Value |\n")
	sb.WriteString("|--------|-------|\n")
	sb.WriteString(fmt.Sprintf("| ARPU | %s |\n", r.KPIMoney(k.Inputs.ARPU)))
	sb.WriteString(fmt.Sprintf("| Footfall | %d / %d |\n", k.Inputs.Footfall, k.Inputs.TotalCapacity))
	sb.WriteString(fmt.Sprintf("| Daily Revenue | %s |\n", r.KPIMoney(k.Result.DailyRevenue)))
	sb.WriteString(fmt.Sprintf("| Monthly Revenue | %s |\n", r.KPIMoney(k.Result.MonthlyRevenue)))
	sb.WriteString(fmt.Sprintf("| Annual Revenue | %s |\n", r.KPIMoney(k.Result.AnnualRevenue)))
	sb.WriteString("\n")

	return sb.String()
}

// value renders a delta value by kind.
func (r *Report) value(kind compare.Kind, v float64) string {
	switch kind {
	case compare.KindCurrency:
		return r.Money(v)
	case compare.KindPercent:
		return compare.Fixed(v, 1) + "%"
	case compare.KindInteger:
		return compare.Fixed(v, 0)
	default:
		return compare.Fixed(v, 1)
	}
}

// escapeCell keeps user-provided names from breaking table rows.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
