// internal/service/analytics.go
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/studytrack/backend/internal/domain/analytics"
	"github.com/studytrack/backend/internal/store"
)

// Dataset keys. Each key addresses one independent aggregate document in
// the blob store.
const (
	DatasetQuiz        = "quiz"
	DatasetProgramming = "programming"
)

// AnalyticsStore owns the read-modify-write cycle for one dataset key.
// The mutex makes each record call run to completion before the next
// interleaves, so exactly one durable write reflects exactly one event.
type AnalyticsStore struct {
	key      string
	blobs    store.Blobs
	recorder *analytics.Recorder
	logger   *slog.Logger

	mu    sync.Mutex
	state *analytics.AggregateState // nil until first load
}

func NewAnalyticsStore(key string, blobs store.Blobs, params analytics.Params, clock analytics.Clock, logger *slog.Logger) *AnalyticsStore {
	return &AnalyticsStore{
		key:      key,
		blobs:    blobs,
		recorder: analytics.NewRecorder(params, clock),
		logger:   logger,
	}
}

// load brings the document into memory, initializing an empty one on
// first access. A corrupt stored document is treated as no prior state:
// analytics are advisory and must never block the application.
func (as *AnalyticsStore) load() error {
	if as.state != nil {
		return nil
	}

	raw, err := as.blobs.Get(as.key)
	switch {
	case err == nil:
		state := analytics.NewAggregateState()
		if jsonErr := json.Unmarshal(raw, state); jsonErr != nil {
			as.logger.Warn("discarding corrupt analytics document", "key", as.key, "error", jsonErr)
			state = analytics.NewAggregateState()
			if err := as.persist(state); err != nil {
				return err
			}
		}
		as.state = state
		return nil
	case errors.Is(err, store.ErrNotFound):
		state := analytics.NewAggregateState()
		if err := as.persist(state); err != nil {
			return err
		}
		as.state = state
		return nil
	default:
		return fmt.Errorf("load %s analytics: %w", as.key, err)
	}
}

func (as *AnalyticsStore) persist(state *analytics.AggregateState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode %s analytics: %w", as.key, err)
	}
	if err := as.blobs.Put(as.key, raw); err != nil {
		return fmt.Errorf("persist %s analytics: %w", as.key, err)
	}
	return nil
}

// Record folds one completion event into the dataset. The mutation is
// applied to a clone and only swapped in after the durable write
// succeeds, so a failed write leaves the previous snapshot authoritative.
func (as *AnalyticsStore) Record(event analytics.CompletionEvent) (analytics.RecordedEntry, error) {
	as.mu.Lock()
	defer as.mu.Unlock()

	if err := as.load(); err != nil {
		return analytics.RecordedEntry{}, err
	}

	next := as.state.Clone()
	entry, err := as.recorder.Apply(next, event)
	if err != nil {
		return analytics.RecordedEntry{}, err
	}

	if err := as.persist(next); err != nil {
		return analytics.RecordedEntry{}, err
	}
	as.state = next
	return entry, nil
}

// State returns a deep snapshot of the aggregate document.
func (as *AnalyticsStore) State() (*analytics.AggregateState, error) {
	as.mu.Lock()
	defer as.mu.Unlock()

	if err := as.load(); err != nil {
		return nil, err
	}
	return as.state.Clone(), nil
}

// HistoryFilter narrows GetHistory results. Every set field must match;
// zero values impose no constraint.
type HistoryFilter struct {
	Category string
	From     time.Time
	To       time.Time
	Limit    int
}

// History returns recent entries, most recent first, after applying the
// filter conjunction. Only the bounded activity log is consulted.
func (as *AnalyticsStore) History(filter HistoryFilter) ([]analytics.RecordedEntry, error) {
	state, err := as.State()
	if err != nil {
		return nil, err
	}

	var entries []analytics.RecordedEntry
	for _, e := range state.RecentActivityLog {
		if filter.Category != "" && e.Category != filter.Category {
			continue
		}
		if !filter.From.IsZero() && e.RecordedAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && e.RecordedAt.After(filter.To) {
			continue
		}
		entries = append(entries, e)
		if filter.Limit > 0 && len(entries) == filter.Limit {
			break
		}
	}
	return entries, nil
}

// CategoryAnalysis is the pure per-category read view.
func (as *AnalyticsStore) CategoryAnalysis() ([]analytics.CategoryAnalysis, error) {
	state, err := as.State()
	if err != nil {
		return nil, err
	}
	return analytics.AnalyzeCategories(state, as.recorder.Params()), nil
}

// LearningInsights is the pure recommendation read view.
func (as *AnalyticsStore) LearningInsights() ([]analytics.Insight, error) {
	state, err := as.State()
	if err != nil {
		return nil, err
	}
	return analytics.LearningInsights(state, as.recorder.Params()), nil
}

// Achievements returns the unlocked achievement list in unlock order.
func (as *AnalyticsStore) Achievements() ([]analytics.Achievement, error) {
	state, err := as.State()
	if err != nil {
		return nil, err
	}
	return state.Achievements, nil
}

// Reset destructively reinitializes the dataset to the empty state.
func (as *AnalyticsStore) Reset() error {
	as.mu.Lock()
	defer as.mu.Unlock()

	state := analytics.NewAggregateState()
	if err := as.persist(state); err != nil {
		return err
	}
	as.state = state
	return nil
}

// Service bundles the dataset stores the API exposes.
type Service struct {
	datasets map[string]*AnalyticsStore
}

// New creates the standard quiz and programming datasets on top of one
// blob store. A nil clock means wall-clock time.
func New(blobs store.Blobs, clock analytics.Clock, logger *slog.Logger) *Service {
	return &Service{
		datasets: map[string]*AnalyticsStore{
			DatasetQuiz:        NewAnalyticsStore(DatasetQuiz, blobs, analytics.QuizParams(), clock, logger),
			DatasetProgramming: NewAnalyticsStore(DatasetProgramming, blobs, analytics.ProgrammingParams(), clock, logger),
		},
	}
}

// Dataset returns the store for the named dataset, or nil if unknown.
func (s *Service) Dataset(name string) *AnalyticsStore {
	return s.datasets[name]
}

// DatasetNames lists every configured dataset key.
func (s *Service) DatasetNames() []string {
	names := make([]string, 0, len(s.datasets))
	for name := range s.datasets {
		names = append(names, name)
	}
	return names
}
