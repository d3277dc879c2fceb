package analytics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/studytrack/backend/internal/domain/analytics"
)

// fixedClock returns a clock pinned to the given time.
func fixedClock(t time.Time) analytics.Clock {
	return func() time.Time { return t }
}

// monday is a known Monday used wherever the test needs deterministic
// bucketing.
var monday = time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)

func newRecorder() *analytics.Recorder {
	return analytics.NewRecorder(analytics.QuizParams(), fixedClock(monday))
}

func event(category string, total, correct int, seconds float64) analytics.CompletionEvent {
	return analytics.CompletionEvent{
		Category:         category,
		TotalUnits:       total,
		CorrectUnits:     correct,
		TimeSpentSeconds: seconds,
	}
}

func TestRecordSingleEvent(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	entry, err := r.Apply(state, event("arrays", 10, 8, 300))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.AccuracyPct != 80 {
		t.Errorf("expected accuracy 80, got %v", entry.AccuracyPct)
	}
	if state.RunningAverageScorePct != 80 {
		t.Errorf("expected running average 80, got %v", state.RunningAverageScorePct)
	}
	if state.CurrentStreak != 1 {
		t.Errorf("expected streak 1, got %d", state.CurrentStreak)
	}
	if !state.HasAchievement(analytics.AchievementFirstEvent) {
		t.Error("expected first_event achievement to unlock")
	}
	if entry.Difficulty != analytics.DifficultyEasy {
		t.Errorf("expected derived difficulty easy at 80%%, got %q", entry.Difficulty)
	}
}

func TestRecordRejectsInvalidEvents(t *testing.T) {
	tests := []struct {
		name  string
		event analytics.CompletionEvent
	}{
		{"zero units", event("arrays", 0, 0, 10)},
		{"negative units", event("arrays", -1, 0, 10)},
		{"correct above total", event("arrays", 10, 12, 10)},
		{"negative correct", event("arrays", 10, -2, 10)},
		{"negative time", event("arrays", 10, 5, -1)},
		{"unknown difficulty", analytics.CompletionEvent{Category: "arrays", TotalUnits: 10, CorrectUnits: 5, Difficulty: "brutal"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder()
			state := analytics.NewAggregateState()

			_, err := r.Apply(state, tt.event)
			if !errors.Is(err, analytics.ErrInvalidEvent) {
				t.Fatalf("expected ErrInvalidEvent, got %v", err)
			}
			if state.TotalEvents != 0 {
				t.Errorf("expected state untouched, got totalEvents=%d", state.TotalEvents)
			}
		})
	}
}

func TestRunningAverageMatchesArithmeticMean(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	scores := []int{80, 30, 100, 55, 70, 0, 95, 62, 40, 88}
	var sum float64
	for _, s := range scores {
		if _, err := r.Apply(state, event("mixed", 100, s, 60)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sum += float64(s)
	}

	want := sum / float64(len(scores))
	got := state.RunningAverageScorePct
	if diff := got - want; diff > 1e-6*want || diff < -1e-6*want {
		t.Errorf("running average %v, arithmetic mean %v", got, want)
	}
}

func TestStreakAndStreakAchievement(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	for i := 0; i < 5; i++ {
		if _, err := r.Apply(state, event("loops", 10, 8, 120)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if state.CurrentStreak != 5 {
		t.Fatalf("expected streak 5, got %d", state.CurrentStreak)
	}
	if !state.HasAchievement(analytics.StreakAchievementID(5)) {
		t.Error("expected streak_5 achievement to unlock")
	}

	// A failing event resets the current streak but never the longest.
	if _, err := r.Apply(state, event("loops", 10, 5, 120)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.CurrentStreak != 0 {
		t.Errorf("expected streak reset to 0, got %d", state.CurrentStreak)
	}
	if state.LongestStreak != 5 {
		t.Errorf("expected longest streak 5, got %d", state.LongestStreak)
	}
}

func TestStreakMonotonicity(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	correct := []int{8, 9, 3, 10, 7, 7, 2, 8, 8, 8, 8, 5, 9}
	prevLongest := 0
	for _, c := range correct {
		if _, err := r.Apply(state, event("graphs", 10, c, 60)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if state.LongestStreak < prevLongest {
			t.Fatalf("longest streak decreased from %d to %d", prevLongest, state.LongestStreak)
		}
		if state.CurrentStreak > state.LongestStreak {
			t.Fatalf("current streak %d exceeds longest %d", state.CurrentStreak, state.LongestStreak)
		}
		prevLongest = state.LongestStreak
	}
}

func TestAchievementIdempotence(t *testing.T) {
	events := []analytics.CompletionEvent{
		event("arrays", 10, 10, 200),
		event("arrays", 10, 8, 100),
		event("strings", 10, 7, 150),
		event("strings", 10, 9, 250),
		event("loops", 10, 10, 90),
		event("loops", 10, 3, 400),
		event("arrays", 10, 8, 120),
	}

	run := func() *analytics.AggregateState {
		r := newRecorder()
		state := analytics.NewAggregateState()
		for _, e := range events {
			if _, err := r.Apply(state, e); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		return state
	}

	first := run()
	second := run()

	if len(first.Achievements) != len(second.Achievements) {
		t.Fatalf("achievement counts differ: %d vs %d", len(first.Achievements), len(second.Achievements))
	}
	seen := make(map[string]bool)
	for i, a := range first.Achievements {
		if seen[a.ID] {
			t.Errorf("duplicate achievement %q", a.ID)
		}
		seen[a.ID] = true
		if second.Achievements[i].ID != a.ID {
			t.Errorf("achievement order differs at %d: %q vs %q", i, a.ID, second.Achievements[i].ID)
		}
	}
}

func TestVolumeAchievement(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	for i := 0; i < 9; i++ {
		if _, err := r.Apply(state, event("arrays", 10, 6, 60)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if state.HasAchievement(analytics.VolumeAchievementID(10)) {
		t.Fatal("volume_10 unlocked before the tenth event")
	}

	if _, err := r.Apply(state, event("arrays", 10, 6, 60)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.HasAchievement(analytics.VolumeAchievementID(10)) {
		t.Error("expected volume_10 after the tenth event")
	}
}

func TestSpeedAccurateAchievement(t *testing.T) {
	tests := []struct {
		name   string
		event  analytics.CompletionEvent
		unlock bool
	}{
		{"fast and accurate", event("arrays", 10, 9, 200), true},    // 20 s/unit, 90%
		{"fast but inaccurate", event("arrays", 10, 7, 200), false}, // 70% < 80
		{"accurate but slow", event("arrays", 10, 9, 300), false},   // 30 s/unit not < 30
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecorder()
			state := analytics.NewAggregateState()
			if _, err := r.Apply(state, tt.event); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := state.HasAchievement(analytics.AchievementSpeedAccurate); got != tt.unlock {
				t.Errorf("speed_accurate unlocked=%v, want %v", got, tt.unlock)
			}
		})
	}
}

func TestPerfectScoreAchievement(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	if _, err := r.Apply(state, event("arrays", 5, 5, 600)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !state.HasAchievement(analytics.AchievementPerfectScore) {
		t.Error("expected perfect_score at 100% accuracy")
	}
}

func TestDifficultyDerivation(t *testing.T) {
	tests := []struct {
		correct int
		want    analytics.Difficulty
	}{
		{8, analytics.DifficultyEasy},   // 80%
		{7, analytics.DifficultyMedium}, // 70%
		{6, analytics.DifficultyMedium}, // 60%
		{5, analytics.DifficultyHard},   // 50%
	}

	for _, tt := range tests {
		r := newRecorder()
		state := analytics.NewAggregateState()
		entry, err := r.Apply(state, event("arrays", 10, tt.correct, 60))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if entry.Difficulty != tt.want {
			t.Errorf("correct=%d: expected difficulty %q, got %q", tt.correct, tt.want, entry.Difficulty)
		}
	}
}

func TestDifficultyHintOverridesDerivation(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	e := event("arrays", 10, 10, 60)
	e.Difficulty = analytics.DifficultyHard

	entry, err := r.Apply(state, e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Difficulty != analytics.DifficultyHard {
		t.Errorf("expected hinted difficulty hard, got %q", entry.Difficulty)
	}
	if state.PerDifficultyStats[analytics.DifficultyHard].Attempted != 10 {
		t.Errorf("expected 10 hard units attempted, got %d", state.PerDifficultyStats[analytics.DifficultyHard].Attempted)
	}
}

func TestDifficultyStatsUseUnitGranularity(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	if _, err := r.Apply(state, event("arrays", 10, 8, 60)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ds := state.PerDifficultyStats[analytics.DifficultyEasy]
	if ds.Attempted != 10 || ds.Correct != 8 {
		t.Errorf("expected 10 attempted / 8 correct units, got %d/%d", ds.Attempted, ds.Correct)
	}
}

func TestRecentScoresRingIsBounded(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	for i := 0; i < 15; i++ {
		if _, err := r.Apply(state, event("arrays", 100, 50+i, 60)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	ring := state.PerCategoryStats["arrays"].RecentScores
	if len(ring) != 10 {
		t.Fatalf("expected ring capped at 10, got %d", len(ring))
	}
	// Oldest evicted: the ring starts at the sixth score (55).
	if ring[0] != 55 {
		t.Errorf("expected oldest retained score 55, got %v", ring[0])
	}
}

func TestImprovementRequiresSixScores(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	for i := 0; i < 5; i++ {
		if _, err := r.Apply(state, event("strings", 100, 60+i*10, 60)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if imp := state.PerCategoryStats["strings"].Improvement; imp != 0 {
		t.Errorf("expected improvement 0 with five scores, got %v", imp)
	}

	if _, err := r.Apply(state, event("strings", 100, 95, 60)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if imp := state.PerCategoryStats["strings"].Improvement; imp <= 0 {
		t.Errorf("expected positive improvement with six rising scores, got %v", imp)
	}
}

func TestWeeklyAndMonthlyBuckets(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	// Clock is pinned to a Monday; the event carries no timestamp.
	if _, err := r.Apply(state, event("arrays", 10, 8, 60)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if state.WeeklyBuckets[0].Attempts != 1 {
		t.Errorf("expected the Monday bucket to hold the event, got %+v", state.WeeklyBuckets)
	}
	if len(state.MonthlyBuckets) != 1 {
		t.Fatalf("expected one monthly bucket, got %d", len(state.MonthlyBuckets))
	}
	if state.MonthlyBuckets[0].Label != "January 2026" {
		t.Errorf("expected label %q, got %q", "January 2026", state.MonthlyBuckets[0].Label)
	}
}

func TestMonthlyBucketsRollOver(t *testing.T) {
	r := newRecorder()
	state := analytics.NewAggregateState()

	old := event("arrays", 10, 8, 60)
	old.Timestamp = time.Date(2025, time.January, 10, 9, 0, 0, 0, time.UTC)
	if _, err := r.Apply(state, old); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	recent := event("arrays", 10, 8, 60)
	recent.Timestamp = monday // January 2026
	if _, err := r.Apply(state, recent); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(state.MonthlyBuckets) != 1 {
		t.Fatalf("expected the bucket from 12+ months ago to be dropped, got %d buckets", len(state.MonthlyBuckets))
	}
	if state.MonthlyBuckets[0].Label != "January 2026" {
		t.Errorf("expected only %q to survive, got %q", "January 2026", state.MonthlyBuckets[0].Label)
	}
}

func TestActivityLogMostRecentFirstAndBounded(t *testing.T) {
	r := analytics.NewRecorder(analytics.ProgrammingParams(), fixedClock(monday))
	state := analytics.NewAggregateState()

	for i := 0; i < 12; i++ {
		e := event("arrays", 100, 50+i, 60)
		if _, err := r.Apply(state, e); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	log := state.RecentActivityLog
	if len(log) != 10 {
		t.Fatalf("expected programming log capped at 10, got %d", len(log))
	}
	if log[0].AccuracyPct != 61 {
		t.Errorf("expected the newest entry first, got accuracy %v", log[0].AccuracyPct)
	}
}
