package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloat_MarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"finite", 312.5, `312.5`},
		{"whole", 2500, `2500`},
		{"positive infinity", math.Inf(1), `"Infinity"`},
		{"negative infinity", math.Inf(-1), `"-Infinity"`},
		{"nan", math.NaN(), `"NaN"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(Float(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(data))
		})
	}
}

func TestFloat_UnmarshalJSON(t *testing.T) {
	var f Float
	require.NoError(t, json.Unmarshal([]byte(`"Infinity"`), &f))
	assert.True(t, math.IsInf(float64(f), 1))

	require.NoError(t, json.Unmarshal([]byte(`"NaN"`), &f))
	assert.True(t, math.IsNaN(float64(f)))

	require.NoError(t, json.Unmarshal([]byte(`42.5`), &f))
	assert.Equal(t, Float(42.5), f)

	assert.Error(t, json.Unmarshal([]byte(`"lots"`), &f))
}

func TestDerivedMetrics_MarshalJSONNonFinite(t *testing.T) {
	m := DerivedMetrics{
		CurrentCapacity:     math.Inf(1),
		CapacityUtilization: math.Inf(1),
		DailyRevenue:        math.NaN(),
		MonthlyRevenue:      1500,
	}

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"currentCapacity": "Infinity",
		"capacityUtilization": "Infinity",
		"hourlyRevenue": 0,
		"dailyRevenue": "NaN",
		"monthlyRevenue": 1500,
		"annualRevenue": 0,
		"potentialRevenue": 0
	}`, string(data))
}

func TestFoodBundleResult_MarshalJSONInfiniteMinimum(t *testing.T) {
	r := FoodBundleResult{
		Rows:                 []FoodBundleRow{{AdoptionRate: 10, BaseFoodRevenue: 300, BundleFoodRevenue: math.Inf(1)}},
		MinimumAdoptionRate:  math.Inf(1),
		MinimumAdoptionGrade: ViabilityUnfavorable,
	}

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"minimumAdoptionRate":"Infinity"`)
	assert.Contains(t, string(data), `"bundleFoodRevenue":"Infinity"`)
}
