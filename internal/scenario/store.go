// Package scenario keeps the ordered collection of saved revenue scenarios and
// persists it as a JSON array under a single key of a storage.KVStore.
package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"revenue-lab/internal/domain"
	"revenue-lab/internal/idhash"
	"revenue-lab/internal/observability"
	"revenue-lab/internal/storage"
)

// DefaultKey is the storage key holding the saved collection.
const DefaultKey = "savedScenarios"

// maxIDAttempts bounds regeneration when a fresh id collides with a saved one.
const maxIDAttempts = 3

// ErrIDCollision is returned when no unused id could be generated.
var ErrIDCollision = errors.New("could not generate unused scenario id")

// Store is the saved-scenario collection. It is not safe for concurrent use.
type Store struct {
	kv      storage.KVStore
	key     string
	logger  *zap.Logger
	metrics *observability.Metrics
	clock   func() time.Time
	newID   func() (string, error)
	clamp   func(domain.Inputs) domain.Inputs

	scenarios []domain.Scenario
}

// Option configures a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		s.key = key
	}
}

// WithLogger sets the logger used for load failures.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// WithClock sets a custom clock function for deterministic createdAt values.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

// WithIDGenerator replaces the id generator.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithInputClamp sets the function that limits imported inputs to their ranges.
func WithInputClamp(clamp func(domain.Inputs) domain.Inputs) Option {
	return func(s *Store) {
		s.clamp = clamp
	}
}

// NewStore creates an empty Store over kv. Call Load to read the persisted collection.
func NewStore(kv storage.KVStore, opts ...Option) *Store {
	s := &Store{
		kv:     kv,
		key:    DefaultKey,
		logger: zap.NewNop(),
		clock:  time.Now,
		newID:  idhash.NewScenarioID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the persisted one and returns a copy.
// A missing key yields an empty collection. Read and decode failures are logged and
// also yield an empty collection; Load never fails.
func (s *Store) Load(ctx context.Context) []domain.Scenario {
	s.scenarios = nil

	data, err := s.kv.Get(ctx, s.key)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		s.metrics.RecordLoad(0)
		return s.List()
	case err != nil:
		s.logger.Error("failed to read saved scenarios", zap.String("key", s.key), zap.Error(err))
		s.metrics.RecordLoadFailure("read")
		return s.List()
	}

	scenarios, err := decode(data)
	if err != nil {
		s.logger.Error("failed to parse saved scenarios", zap.String("key", s.key), zap.Error(err))
		s.metrics.RecordLoadFailure("decode")
		return s.List()
	}

	s.scenarios = scenarios
	s.metrics.RecordLoad(len(s.scenarios))
	s.logger.Debug("loaded saved scenarios", zap.Int("count", len(s.scenarios)))
	return s.List()
}

// Save stores a copy of sc under a fresh id with CreatedAt set to now.
// A blank name is ignored and reported with ok == false. The returned error
// reports a failed write; the scenario stays in the in-memory collection.
func (s *Store) Save(ctx context.Context, sc domain.Scenario) (saved domain.Scenario, ok bool, err error) {
	name := strings.TrimSpace(sc.Name)
	if name == "" {
		s.metrics.RecordSaveRejected()
		return domain.Scenario{}, false, nil
	}

	id, err := s.unusedID()
	if err != nil {
		return domain.Scenario{}, false, err
	}

	saved = sc
	saved.ID = id
	saved.Name = name
	saved.CreatedAt = s.clock().UTC()

	s.scenarios = append(s.scenarios, saved)
	if err := s.persist(ctx); err != nil {
		return saved, true, err
	}

	s.metrics.RecordSave(len(s.scenarios))
	return saved, true, nil
}

// Delete removes the scenario with id. Returns false when no such scenario exists,
// in which case nothing is written.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}

	s.scenarios = append(s.scenarios[:idx:idx], s.scenarios[idx+1:]...)
	if err := s.persist(ctx); err != nil {
		return true, err
	}

	s.metrics.RecordDelete(len(s.scenarios))
	return true, nil
}

// FindByID returns the saved scenario with id.
func (s *Store) FindByID(id string) (domain.Scenario, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Scenario{}, false
	}
	return s.scenarios[idx], true
}

// List returns a copy of the collection in insertion order.
func (s *Store) List() []domain.Scenario {
	out := make([]domain.Scenario, len(s.scenarios))
	copy(out, s.scenarios)
	return out
}

func (s *Store) indexOf(id string) int {
	for i := range s.scenarios {
		if s.scenarios[i].ID == id {
			return i
		}
	}
	return -1
}

// unusedID generates an id not held by a saved scenario nor listed in pending.
func (s *Store) unusedID(pending ...domain.Scenario) (string, error) {
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		id, err := s.newID()
		if err != nil {
			return "", fmt.Errorf("generate scenario id: %w", err)
		}
		if id != domain.CurrentScenarioID && s.indexOf(id) < 0 && !containsID(pending, id) {
			return id, nil
		}
	}
	return "", ErrIDCollision
}

func containsID(scenarios []domain.Scenario, id string) bool {
	for i := range scenarios {
		if scenarios[i].ID == id {
			return true
		}
	}
	return false
}

// persist writes the whole collection, including an empty one.
func (s *Store) persist(ctx context.Context) error {
	data, err := encode(s.scenarios)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		s.metrics.RecordWriteError()
		return fmt.Errorf("persist saved scenarios: %w", err)
	}
	return nil
}

func encode(scenarios []domain.Scenario) ([]byte, error) {
	if scenarios == nil {
		scenarios = []domain.Scenario{}
	}
	data, err := json.Marshal(scenarios)
	if err != nil {
		return nil, fmt.Errorf("encode saved scenarios: %w", err)
	}
	return data, nil
}

func decode(data []byte) ([]domain.Scenario, error) {
	var scenarios []domain.Scenario
	if err := json.Unmarshal(data, &scenarios); err != nil {
		return nil, fmt.Errorf("decode saved scenarios: %w", err)
	}
	return scenarios, nil
}
