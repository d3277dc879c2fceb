package analytics

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidEvent is returned when a completion event is structurally
// malformed. The event is rejected before any state mutation.
var ErrInvalidEvent = errors.New("invalid completion event")

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// CompletionEvent is one quiz submission or one problem-solving attempt,
// the atomic unit of input to the engine.
type CompletionEvent struct {
	Category         string     `json:"category"`
	TotalUnits       int        `json:"totalUnits"`
	CorrectUnits     int        `json:"correctUnits"`
	TimeSpentSeconds float64    `json:"timeSpentSeconds"`
	Difficulty       Difficulty `json:"difficulty,omitempty"` // empty = derive from accuracy
	Timestamp        time.Time  `json:"timestamp,omitzero"`   // zero = recorder clock
}

// Validate checks the structural preconditions. A zero-unit event is
// rejected here rather than dividing by zero downstream.
func (e CompletionEvent) Validate() error {
	if e.TotalUnits <= 0 {
		return fmt.Errorf("%w: totalUnits must be positive, got %d", ErrInvalidEvent, e.TotalUnits)
	}
	if e.CorrectUnits < 0 || e.CorrectUnits > e.TotalUnits {
		return fmt.Errorf("%w: correctUnits %d out of range [0, %d]", ErrInvalidEvent, e.CorrectUnits, e.TotalUnits)
	}
	if e.TimeSpentSeconds < 0 {
		return fmt.Errorf("%w: timeSpentSeconds must be non-negative", ErrInvalidEvent)
	}
	switch e.Difficulty {
	case "", DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidEvent, e.Difficulty)
	}
	return nil
}

// AccuracyPct returns the event score as a percentage. Callers must
// validate first; a zero-unit event would divide by zero.
func (e CompletionEvent) AccuracyPct() float64 {
	return float64(e.CorrectUnits) / float64(e.TotalUnits) * 100
}

// RecordedEntry is the normalized form of an accepted event, returned to
// the caller for immediate feedback and kept in the recent-activity log.
type RecordedEntry struct {
	ID               string     `json:"id"`
	Category         string     `json:"category"`
	TotalUnits       int        `json:"totalUnits"`
	CorrectUnits     int        `json:"correctUnits"`
	TimeSpentSeconds float64    `json:"timeSpentSeconds"`
	AccuracyPct      float64    `json:"accuracyPct"`
	Difficulty       Difficulty `json:"difficulty"`
	RecordedAt       time.Time  `json:"recordedAt"`
}
