package metrics

import (
	"math"

	"revenue-lab/internal/domain"
)

// AdoptionRates are the bundle adoption percentages plotted by the food bundle page.
var AdoptionRates = []int{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}

// Viability thresholds for the minimum adoption rate, in percent.
const (
	favorableAdoptionBelow = 35
	moderateAdoptionBelow  = 65
)

// ComputeFoodBundle projects food revenue with and without a discounted bundle.
// Revenue figures are rounded half-up to whole currency units.
func ComputeFoodBundle(in domain.FoodBundleInputs) domain.FoodBundleResult {
	users := float64(in.TotalUsers)
	discountFactor := 1 - in.DiscountRate/100
	baseFoodRevenue := roundHalfUp(users * (in.ConversionRate / 100) * in.AverageSpending)

	rows := make([]domain.FoodBundleRow, len(AdoptionRates))
	for i, rate := range AdoptionRates {
		rows[i] = domain.FoodBundleRow{
			AdoptionRate:      rate,
			BaseFoodRevenue:   baseFoodRevenue,
			BundleFoodRevenue: roundHalfUp(users * (float64(rate) / 100) * in.AverageSpending * discountFactor),
		}
	}

	minRate := MinimumAdoptionRate(in.ConversionRate, in.DiscountRate)

	return domain.FoodBundleResult{
		FoodCustomersPct:     in.ConversionRate,
		OtherCustomersPct:    100 - in.ConversionRate,
		Rows:                 rows,
		MinimumAdoptionRate:  minRate,
		MinimumAdoptionGrade: GradeAdoption(minRate),
	}
}

// MinimumAdoptionRate is the bundle adoption rate at which discounted bundle
// revenue matches current food revenue. A 100% discount never breaks even.
func MinimumAdoptionRate(conversionRate, discountRate float64) float64 {
	if discountRate == 100 {
		return math.Inf(1)
	}
	return roundHalfUp(conversionRate / (1 - discountRate/100))
}

// GradeAdoption classifies a break-even adoption rate.
func GradeAdoption(rate float64) domain.Viability {
	switch {
	case rate < favorableAdoptionBelow:
		return domain.ViabilityFavorable
	case rate < moderateAdoptionBelow:
		return domain.ViabilityModerate
	default:
		return domain.ViabilityUnfavorable
	}
}

// roundHalfUp rounds to the nearest integer with ties toward +Inf.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
