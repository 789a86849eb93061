package session

import (
	"fmt"
	"math"
	"sort"

	"revenue-lab/internal/domain"
)

// Input names one editable field of a calculator.
type Input string

// Revenue estimator inputs.
const (
	InputARPU            Input = "arpu"
	InputFootfall        Input = "footfall"
	InputSessionDuration Input = "sessionDuration"
	InputUtilizationRate Input = "utilizationRate"
	InputTotalCapacity   Input = "totalCapacity"
	InputHourlyRate      Input = "hourlyRate"
	InputHoursPerDay     Input = "hoursPerDay"
)

// Food-bundle calculator inputs.
const (
	InputConversionRate  Input = "conversionRate"
	InputAverageSpending Input = "averageSpending"
	InputDiscountRate    Input = "discountRate"
	InputTotalUsers      Input = "totalUsers"
)

// KPI calculator inputs share names with the estimator but live in their own group.
const (
	InputKPIARPU          Input = "kpi.arpu"
	InputKPIFootfall      Input = "kpi.footfall"
	InputKPITotalCapacity Input = "kpi.totalCapacity"
)

// Range is an inclusive slider range.
type Range struct {
	Min float64
	Max float64
}

// Clamp limits v to r. NaN clamps to Min.
func (r Range) Clamp(v float64) float64 {
	if math.IsNaN(v) || v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Ranges holds the slider range of every input. KPI footfall is further limited by
// the KPI total capacity.
var Ranges = map[Input]Range{
	InputARPU:            {1, 200},
	InputFootfall:        {1, 500},
	InputSessionDuration: {0.1, 50},
	InputUtilizationRate: {1, 100},
	InputTotalCapacity:   {1, 500},
	InputHourlyRate:      {1, 200},
	InputHoursPerDay:     {1, 24},

	InputConversionRate:  {0, 100},
	InputAverageSpending: {5, 50},
	InputDiscountRate:    {0, 100},
	InputTotalUsers:      {0, math.MaxInt32},

	InputKPIARPU:          {70_000, 10_000_000},
	InputKPIFootfall:      {1, 20},
	InputKPITotalCapacity: {1, 20},
}

// integerInputs are rounded to whole numbers after clamping.
var integerInputs = map[Input]bool{
	InputFootfall:         true,
	InputHoursPerDay:      true,
	InputTotalUsers:       true,
	InputKPIFootfall:      true,
	InputKPITotalCapacity: true,
}

// ParseInput resolves an input name.
func ParseInput(name string) (Input, error) {
	in := Input(name)
	if _, ok := Ranges[in]; !ok {
		return "", fmt.Errorf("unknown input %q (known: %v)", name, InputNames())
	}
	return in, nil
}

// InputNames returns all input names sorted.
func InputNames() []string {
	names := make([]string, 0, len(Ranges))
	for in := range Ranges {
		names = append(names, string(in))
	}
	sort.Strings(names)
	return names
}

// Clamp limits v to the range of in, rounding integer inputs half up.
func Clamp(in Input, v float64) float64 {
	r, ok := Ranges[in]
	if !ok {
		return v
	}
	v = r.Clamp(v)
	if integerInputs[in] {
		v = math.Floor(v + 0.5)
	}
	return v
}

// ClampInputs clamps every field of a revenue estimator input set.
func ClampInputs(in domain.Inputs) domain.Inputs {
	return domain.Inputs{
		ARPU:            Clamp(InputARPU, in.ARPU),
		Footfall:        int(Clamp(InputFootfall, float64(in.Footfall))),
		SessionDuration: Clamp(InputSessionDuration, in.SessionDuration),
		UtilizationRate: Clamp(InputUtilizationRate, in.UtilizationRate),
		TotalCapacity:   Clamp(InputTotalCapacity, in.TotalCapacity),
		HourlyRate:      Clamp(InputHourlyRate, in.HourlyRate),
		HoursPerDay:     int(Clamp(InputHoursPerDay, float64(in.HoursPerDay))),
	}
}

// applyInput sets one estimator field. Returns false when in is not an estimator input.
func applyInput(sc *domain.Scenario, in Input, v float64) bool {
	v = Clamp(in, v)
	switch in {
	case InputARPU:
		sc.ARPU = v
	case InputFootfall:
		sc.Footfall = int(v)
	case InputSessionDuration:
		sc.SessionDuration = v
	case InputUtilizationRate:
		sc.UtilizationRate = v
	case InputTotalCapacity:
		sc.TotalCapacity = v
	case InputHourlyRate:
		sc.HourlyRate = v
	case InputHoursPerDay:
		sc.HoursPerDay = int(v)
	default:
		return false
	}
	return true
}

func applyFoodBundleInput(fb *domain.FoodBundleInputs, in Input, v float64) bool {
	v = Clamp(in, v)
	switch in {
	case InputConversionRate:
		fb.ConversionRate = v
	case InputAverageSpending:
		fb.AverageSpending = v
	case InputDiscountRate:
		fb.DiscountRate = v
	case InputTotalUsers:
		fb.TotalUsers = int(v)
	default:
		return false
	}
	return true
}

func applyKPIInput(k *domain.KPIInputs, in Input, v float64) bool {
	v = Clamp(in, v)
	switch in {
	case InputKPIARPU:
		k.ARPU = v
	case InputKPIFootfall:
		k.Footfall = int(v)
	case InputKPITotalCapacity:
		k.TotalCapacity = int(v)
	default:
		return false
	}
	if k.Footfall > k.TotalCapacity {
		k.Footfall = k.TotalCapacity
	}
	return true
}
