// Package session holds the presentation state of the calculators: the scenario
// being edited, the optional comparison selection and the secondary calculators'
// inputs. The CLI runs one process per action, so the state is persisted between runs.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"revenue-lab/internal/domain"
	"revenue-lab/internal/scenario"
	"revenue-lab/internal/storage"
)

// DefaultKey is the storage key holding the session document.
const DefaultKey = "session"

// Mode is the comparison state.
type Mode string

// Modes.
const (
	ModeSingle    Mode = "single"
	ModeComparing Mode = "comparing"
)

// ErrScenarioNotFound is returned when an id does not match a saved scenario.
var ErrScenarioNotFound = errors.New("scenario not found")

// document is the persisted part of State.
type document struct {
	Current      domain.Scenario         `json:"current"`
	ComparisonID string                  `json:"comparisonId,omitempty"`
	FoodBundle   domain.FoodBundleInputs `json:"foodBundle"`
	KPI          domain.KPIInputs        `json:"kpi"`
}

// State is owned by the presentation layer and passed by pointer.
// Comparison is held by id and re-resolved against the store on every access.
type State struct {
	kv     storage.KVStore
	key    string
	store  *scenario.Store
	logger *zap.Logger
	clock  func() time.Time

	doc document
}

// Option configures a State.
type Option func(*State)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *State) {
		s.key = key
	}
}

// WithLogger sets the logger used for a corrupt session document.
func WithLogger(logger *zap.Logger) Option {
	return func(s *State) {
		s.logger = logger
	}
}

// WithClock sets a custom clock function.
func WithClock(clock func() time.Time) Option {
	return func(s *State) {
		s.clock = clock
	}
}

// New returns a State with default inputs that is not yet read from storage.
func New(kv storage.KVStore, store *scenario.Store, opts ...Option) *State {
	s := &State{
		kv:     kv,
		key:    DefaultKey,
		store:  store,
		logger: zap.NewNop(),
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.doc = s.defaults()
	return s
}

// Open builds a State and restores the persisted session. A missing document
// yields defaults; a corrupt one yields defaults and a logged warning.
func Open(ctx context.Context, kv storage.KVStore, store *scenario.Store, opts ...Option) *State {
	s := New(kv, store, opts...)

	data, err := kv.Get(ctx, s.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return s
	case err != nil:
		s.logger.Warn("failed to read session, using defaults", zap.String("key", s.key), zap.Error(err))
		return s
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn("failed to parse session, using defaults", zap.String("key", s.key), zap.Error(err))
		return s
	}

	doc.Current.ID = domain.CurrentScenarioID
	doc.Current = doc.Current.WithInputs(ClampInputs(doc.Current.Inputs()))
	s.doc = doc
	return s
}

func (s *State) defaults() document {
	return document{
		Current:    domain.NewCurrentScenario(s.clock().UTC()),
		FoodBundle: domain.DefaultFoodBundleInputs,
		KPI:        domain.DefaultKPIInputs,
	}
}

// Persist writes the session document.
func (s *State) Persist(ctx context.Context) error {
	data, err := json.Marshal(s.doc)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	return nil
}

// Store returns the saved-scenario store backing the session.
func (s *State) Store() *scenario.Store {
	return s.store
}

// Current returns the scenario being edited.
func (s *State) Current() domain.Scenario {
	return s.doc.Current
}

// FoodBundleInputs returns the food-bundle calculator inputs.
func (s *State) FoodBundleInputs() domain.FoodBundleInputs {
	return s.doc.FoodBundle
}

// KPIInputs returns the KPI calculator inputs.
func (s *State) KPIInputs() domain.KPIInputs {
	return s.doc.KPI
}

// SetInput clamps v to the range of in and assigns it to the calculator owning in.
func (s *State) SetInput(in Input, v float64) error {
	switch {
	case applyInput(&s.doc.Current, in, v):
	case applyFoodBundleInput(&s.doc.FoodBundle, in, v):
	case applyKPIInput(&s.doc.KPI, in, v):
	default:
		return fmt.Errorf("unknown input %q", in)
	}
	return nil
}

// ResetToDefaults restores the default estimator inputs. Id and name are kept.
func (s *State) ResetToDefaults() {
	s.doc.Current = s.doc.Current.WithInputs(domain.DefaultInputs)
}

// LoadIntoCurrent copies the inputs and name of a saved scenario into the current one.
func (s *State) LoadIntoCurrent(id string) (domain.Scenario, error) {
	saved, ok := s.store.FindByID(id)
	if !ok {
		return domain.Scenario{}, fmt.Errorf("load %s: %w", id, ErrScenarioNotFound)
	}
	s.doc.Current = s.doc.Current.WithInputs(ClampInputs(saved.Inputs()))
	s.doc.Current.Name = saved.Name
	return s.doc.Current, nil
}

// SelectComparison enters comparison mode against a saved scenario.
func (s *State) SelectComparison(id string) (domain.Scenario, error) {
	saved, ok := s.store.FindByID(id)
	if !ok {
		return domain.Scenario{}, fmt.Errorf("compare %s: %w", id, ErrScenarioNotFound)
	}
	s.doc.ComparisonID = saved.ID
	return saved, nil
}

// ExitComparison returns to single mode.
func (s *State) ExitComparison() {
	s.doc.ComparisonID = ""
}

// DeleteScenario removes a saved scenario. Deleting the compared scenario also
// exits comparison mode.
func (s *State) DeleteScenario(ctx context.Context, id string) (bool, error) {
	removed, err := s.store.Delete(ctx, id)
	if removed && s.doc.ComparisonID == id {
		s.doc.ComparisonID = ""
	}
	return removed, err
}

// SaveCurrent saves a copy of the current scenario under name.
// A blank name is ignored (ok == false).
func (s *State) SaveCurrent(ctx context.Context, name string) (domain.Scenario, bool, error) {
	sc := s.doc.Current
	sc.Name = name
	return s.store.Save(ctx, sc)
}

// Comparison resolves the comparison selection with its inputs clamped. A
// selection whose scenario no longer exists resolves to nothing.
func (s *State) Comparison() (domain.Scenario, bool) {
	if s.doc.ComparisonID == "" {
		return domain.Scenario{}, false
	}
	saved, ok := s.store.FindByID(s.doc.ComparisonID)
	if !ok {
		return domain.Scenario{}, false
	}
	return saved.WithInputs(ClampInputs(saved.Inputs())), true
}

// Mode reports whether a comparison scenario is currently resolved.
func (s *State) Mode() Mode {
	if _, ok := s.Comparison(); ok {
		return ModeComparing
	}
	return ModeSingle
}
