package scenario

import (
	"context"
	"fmt"
	"io"
	"strings"

	"sigs.k8s.io/yaml"

	"revenue-lab/internal/domain"
)

// Export writes the saved collection to w as YAML. When asJSON is true the
// document is written as a JSON array instead.
func (s *Store) Export(w io.Writer, asJSON bool) error {
	data, err := encode(s.scenarios)
	if err != nil {
		return err
	}
	if !asJSON {
		if data, err = yaml.JSONToYAML(data); err != nil {
			return fmt.Errorf("convert export to yaml: %w", err)
		}
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}

// Import reads a YAML or JSON array of scenarios from r and appends the ones with a
// non-blank name. Ids that are empty, "current" or already taken are replaced with
// fresh ones; a zero CreatedAt becomes now; inputs pass through the clamp set with
// WithInputClamp. Nothing is appended unless every id resolves, and the collection
// is written once. Returns the imported scenarios.
func (s *Store) Import(ctx context.Context, r io.Reader) ([]domain.Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read import: %w", err)
	}

	var incoming []domain.Scenario
	if err := yaml.Unmarshal(data, &incoming); err != nil {
		return nil, fmt.Errorf("parse import: %w", err)
	}

	var imported []domain.Scenario
	for _, sc := range incoming {
		sc.Name = strings.TrimSpace(sc.Name)
		if sc.Name == "" {
			s.metrics.RecordSaveRejected()
			continue
		}
		if sc.ID == "" || sc.ID == domain.CurrentScenarioID || s.indexOf(sc.ID) >= 0 || containsID(imported, sc.ID) {
			if sc.ID, err = s.unusedID(imported...); err != nil {
				return nil, err
			}
		}
		if sc.CreatedAt.IsZero() {
			sc.CreatedAt = s.clock().UTC()
		}
		if s.clamp != nil {
			sc = sc.WithInputs(s.clamp(sc.Inputs()))
		}
		imported = append(imported, sc)
	}

	if len(imported) == 0 {
		return nil, nil
	}
	s.scenarios = append(s.scenarios, imported...)
	if err := s.persist(ctx); err != nil {
		return imported, err
	}
	for range imported {
		s.metrics.RecordSave(len(s.scenarios))
	}
	return imported, nil
}
