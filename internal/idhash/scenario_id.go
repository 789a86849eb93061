package idhash

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"
)

// ScenarioIDPrefix marks identifiers of saved scenarios.
const ScenarioIDPrefix = "scenario-"

// NewScenarioID returns a unique identifier for a saved scenario.
// The payload is a UUIDv7 (millisecond timestamp + random bits), base58-encoded.
func NewScenarioID() (string, error) {
	u, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate scenario id: %w", err)
	}
	return ScenarioIDPrefix + base58.Encode(u[:]), nil
}
