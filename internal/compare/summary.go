package compare

import (
	"encoding/json"
	"fmt"

	"revenue-lab/internal/domain"
)

// Direction of the comparison scenario relative to the current one.
type Direction string

// Directions.
const (
	DirectionHigher Direction = "higher"
	DirectionLower  Direction = "lower"
	DirectionSame   Direction = "same"
)

// Impact is one headline difference between the scenarios.
type Impact struct {
	Title     string    `json:"title"`
	Direction Direction `json:"direction"`
	Gap       float64   `json:"gap"` // absolute difference
	Sentence  string    `json:"sentence"`
}

// MarshalJSON writes a non-finite gap as a string.
func (i Impact) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title     string       `json:"title"`
		Direction Direction    `json:"direction"`
		Gap       domain.Float `json:"gap"`
		Sentence  string       `json:"sentence"`
	}{i.Title, i.Direction, domain.Float(i.Gap), i.Sentence})
}

// Summary is the "key differences" block shown while comparing.
type Summary struct {
	Impacts       []Impact     `json:"impacts"`
	ChangedInputs []FieldDelta `json:"changedInputs"`
}

func direction(current, comparison float64) (Direction, float64) {
	switch {
	case comparison > current:
		return DirectionHigher, comparison - current
	case comparison < current:
		return DirectionLower, current - comparison
	default:
		return DirectionSame, 0
	}
}

// Summarize describes how the comparison scenario (B) differs from the current one (A).
func Summarize(current, comparison domain.Scenario, cm, pm domain.DerivedMetrics, f *CurrencyFormatter) Summary {
	var impacts []Impact

	dir, gap := direction(cm.DailyRevenue, pm.DailyRevenue)
	impacts = append(impacts, Impact{
		Title:     "Revenue Impact",
		Direction: dir,
		Gap:       gap,
		Sentence: pick(dir,
			fmt.Sprintf("Scenario B generates %s more daily revenue than Scenario A.", f.Format(gap)),
			fmt.Sprintf("Scenario B generates %s less daily revenue than Scenario A.", f.Format(gap)),
			"Both scenarios generate the same daily revenue."),
	})

	dir, gap = direction(cm.CapacityUtilization, pm.CapacityUtilization)
	impacts = append(impacts, Impact{
		Title:     "Capacity Utilization",
		Direction: dir,
		Gap:       gap,
		Sentence: pick(dir,
			fmt.Sprintf("Scenario B utilizes %s%% more capacity than Scenario A.", Fixed(gap, 1)),
			fmt.Sprintf("Scenario B utilizes %s%% less capacity than Scenario A.", Fixed(gap, 1)),
			"Both scenarios have the same capacity utilization."),
	})

	dir, gap = direction(cm.PotentialRevenue, pm.PotentialRevenue)
	impacts = append(impacts, Impact{
		Title:     "Revenue Potential",
		Direction: dir,
		Gap:       gap,
		Sentence: pick(dir,
			fmt.Sprintf("Scenario B has %s higher potential daily revenue.", f.Format(gap)),
			fmt.Sprintf("Scenario B has %s lower potential daily revenue.", f.Format(gap)),
			"Both scenarios have the same revenue potential."),
	})

	return Summary{
		Impacts:       impacts,
		ChangedInputs: ChangedInputs(current.Inputs(), comparison.Inputs()),
	}
}

func pick(dir Direction, higher, lower, same string) string {
	switch dir {
	case DirectionHigher:
		return higher
	case DirectionLower:
		return lower
	default:
		return same
	}
}
