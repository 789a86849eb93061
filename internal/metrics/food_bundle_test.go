package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revenue-lab/internal/domain"
)

func TestComputeFoodBundle_Defaults(t *testing.T) {
	res := ComputeFoodBundle(domain.DefaultFoodBundleInputs)

	require.Len(t, res.Rows, 10)
	assert.Equal(t, 30.0, res.FoodCustomersPct)
	assert.Equal(t, 70.0, res.OtherCustomersPct)

	// 10000 users * 30% * 10
	for _, row := range res.Rows {
		assert.Equal(t, 30000.0, row.BaseFoodRevenue, "adoption %d", row.AdoptionRate)
	}

	// 10000 * 10% * 10 * 0.85
	assert.Equal(t, 10, res.Rows[0].AdoptionRate)
	assert.Equal(t, 8500.0, res.Rows[0].BundleFoodRevenue)
	assert.Equal(t, 100, res.Rows[9].AdoptionRate)
	assert.Equal(t, 85000.0, res.Rows[9].BundleFoodRevenue)

	// 30 / 0.85 = 35.29 -> 35
	assert.Equal(t, 35.0, res.MinimumAdoptionRate)
	assert.Equal(t, domain.ViabilityModerate, res.MinimumAdoptionGrade)
}

func TestMinimumAdoptionRate_FullDiscount(t *testing.T) {
	rate := MinimumAdoptionRate(30, 100)
	assert.True(t, math.IsInf(rate, 1))
	assert.Equal(t, domain.ViabilityUnfavorable, GradeAdoption(rate))
}

func TestMinimumAdoptionRate_NoDiscount(t *testing.T) {
	assert.Equal(t, 30.0, MinimumAdoptionRate(30, 0))
}

func TestGradeAdoption(t *testing.T) {
	tests := []struct {
		rate float64
		want domain.Viability
	}{
		{0, domain.ViabilityFavorable},
		{34, domain.ViabilityFavorable},
		{35, domain.ViabilityModerate},
		{64, domain.ViabilityModerate},
		{65, domain.ViabilityUnfavorable},
		{250, domain.ViabilityUnfavorable},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeAdoption(tt.rate), "rate %v", tt.rate)
	}
}

func TestRoundHalfUp(t *testing.T) {
	assert.Equal(t, 3.0, roundHalfUp(2.5))
	assert.Equal(t, 2.0, roundHalfUp(2.49))
	assert.Equal(t, -2.0, roundHalfUp(-2.5))
}

func TestComputeKPI(t *testing.T) {
	res := ComputeKPI(domain.DefaultKPIInputs)

	assert.Equal(t, 3500000.0, res.DailyRevenue)
	assert.Equal(t, 105000000.0, res.MonthlyRevenue)
	assert.Equal(t, 1277500000.0, res.AnnualRevenue)
}
