package domain

import "time"

// CurrentScenarioID identifies the in-progress scenario being edited.
const CurrentScenarioID = "current"

// Scenario is a named set of revenue estimator inputs.
// Saved scenarios are never mutated after creation.
type Scenario struct {
	ID              string    `json:"id"`              // "current" or generated token
	Name            string    `json:"name"`            // non-empty once saved
	ARPU            float64   `json:"arpu"`            // average revenue per user
	Footfall        int       `json:"footfall"`        // customers per day
	SessionDuration float64   `json:"sessionDuration"` // hours per visit
	UtilizationRate float64   `json:"utilizationRate"` // target utilization, percent
	TotalCapacity   float64   `json:"totalCapacity"`   // max concurrent customers
	HourlyRate      float64   `json:"hourlyRate"`      // price per hour of capacity
	HoursPerDay     int       `json:"hoursPerDay"`     // operating hours
	CreatedAt       time.Time `json:"createdAt"`
}

// Inputs holds only the numeric parameters of a scenario.
type Inputs struct {
	ARPU            float64
	Footfall        int
	SessionDuration float64
	UtilizationRate float64
	TotalCapacity   float64
	HourlyRate      float64
	HoursPerDay     int
}

// DefaultInputs are the values a fresh estimator starts with.
var DefaultInputs = Inputs{
	ARPU:            50,
	Footfall:        100,
	SessionDuration: 1,
	UtilizationRate: 70,
	TotalCapacity:   150,
	HourlyRate:      25,
	HoursPerDay:     8,
}

// Inputs returns the scenario's numeric parameters.
func (s Scenario) Inputs() Inputs {
	return Inputs{
		ARPU:            s.ARPU,
		Footfall:        s.Footfall,
		SessionDuration: s.SessionDuration,
		UtilizationRate: s.UtilizationRate,
		TotalCapacity:   s.TotalCapacity,
		HourlyRate:      s.HourlyRate,
		HoursPerDay:     s.HoursPerDay,
	}
}

// WithInputs returns a copy of s carrying in's parameters. Identity fields are kept.
func (s Scenario) WithInputs(in Inputs) Scenario {
	s.ARPU = in.ARPU
	s.Footfall = in.Footfall
	s.SessionDuration = in.SessionDuration
	s.UtilizationRate = in.UtilizationRate
	s.TotalCapacity = in.TotalCapacity
	s.HourlyRate = in.HourlyRate
	s.HoursPerDay = in.HoursPerDay
	return s
}

// NewCurrentScenario builds the in-progress scenario from default inputs.
func NewCurrentScenario(now time.Time) Scenario {
	return Scenario{
		ID:        CurrentScenarioID,
		Name:      "Current Scenario",
		CreatedAt: now,
	}.WithInputs(DefaultInputs)
}
