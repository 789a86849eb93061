package domain

import (
	"encoding/json"
	"math"
	"strconv"
)

// Float is a float64 that encodes to JSON even when it is not finite. Infinities
// and NaN are written as the strings "Infinity", "-Infinity" and "NaN", the text
// the tables print for them; finite values stay plain numbers.
type Float float64

// MarshalJSON implements json.Marshaler.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"Infinity"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Infinity"`), nil
	}
	return json.Marshal(v)
}

// UnmarshalJSON accepts a number or one of the non-finite strings.
func (f *Float) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "NaN":
			*f = Float(math.NaN())
		case "Infinity":
			*f = Float(math.Inf(1))
		case "-Infinity":
			*f = Float(math.Inf(-1))
		default:
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return err
			}
			*f = Float(v)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

// MarshalJSON encodes non-finite metrics through Float.
func (m DerivedMetrics) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CurrentCapacity     Float `json:"currentCapacity"`
		CapacityUtilization Float `json:"capacityUtilization"`
		HourlyRevenue       Float `json:"hourlyRevenue"`
		DailyRevenue        Float `json:"dailyRevenue"`
		MonthlyRevenue      Float `json:"monthlyRevenue"`
		AnnualRevenue       Float `json:"annualRevenue"`
		PotentialRevenue    Float `json:"potentialRevenue"`
	}{
		Float(m.CurrentCapacity),
		Float(m.CapacityUtilization),
		Float(m.HourlyRevenue),
		Float(m.DailyRevenue),
		Float(m.MonthlyRevenue),
		Float(m.AnnualRevenue),
		Float(m.PotentialRevenue),
	})
}

func (p ProjectionPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Label      string `json:"label"`
		Days       int    `json:"days"`
		Current    Float  `json:"current"`
		Comparison Float  `json:"comparison"`
	}{p.Label, p.Days, Float(p.Current), Float(p.Comparison)})
}

func (r BreakdownRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Period     string `json:"period"`
		Current    Float  `json:"current"`
		Comparison Float  `json:"comparison"`
	}{r.Period, Float(r.Current), Float(r.Comparison)})
}

func (c CapacitySplit) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Used      Float `json:"used"`
		Available Float `json:"available"`
		Target    Float `json:"target"`
	}{Float(c.Used), Float(c.Available), Float(c.Target)})
}

func (r FoodBundleRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		AdoptionRate      int   `json:"adoptionRate"`
		BaseFoodRevenue   Float `json:"baseFoodRevenue"`
		BundleFoodRevenue Float `json:"bundleFoodRevenue"`
	}{r.AdoptionRate, Float(r.BaseFoodRevenue), Float(r.BundleFoodRevenue)})
}

func (r FoodBundleResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		FoodCustomersPct     Float           `json:"foodCustomersPct"`
		OtherCustomersPct    Float           `json:"otherCustomersPct"`
		Rows                 []FoodBundleRow `json:"rows"`
		MinimumAdoptionRate  Float           `json:"minimumAdoptionRate"`
		MinimumAdoptionGrade Viability       `json:"minimumAdoptionGrade"`
	}{
		Float(r.FoodCustomersPct),
		Float(r.OtherCustomersPct),
		r.Rows,
		Float(r.MinimumAdoptionRate),
		r.MinimumAdoptionGrade,
	})
}
