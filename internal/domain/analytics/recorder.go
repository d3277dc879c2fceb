package analytics

import (
	"time"

	"github.com/studytrack/backend/internal/id"
)

// Clock supplies the wall-clock time for events that do not carry their
// own timestamp. Tests inject a fixed clock for deterministic bucketing.
type Clock func() time.Time

// Recorder folds completion events into an AggregateState. It is pure
// in-memory logic: persistence is the caller's concern.
type Recorder struct {
	params Params
	clock  Clock
}

func NewRecorder(params Params, clock Clock) *Recorder {
	if clock == nil {
		clock = time.Now
	}
	return &Recorder{params: params, clock: clock}
}

func (r *Recorder) Params() Params {
	return r.params
}

// Apply validates the event and folds it into state. The whole update is
// all-or-nothing: validation happens before the first mutation, and after
// it no step can fail. Every step is O(1) in the length of history.
func (r *Recorder) Apply(state *AggregateState, e CompletionEvent) (RecordedEntry, error) {
	if err := e.Validate(); err != nil {
		return RecordedEntry{}, err
	}

	at := e.Timestamp
	if at.IsZero() {
		at = r.clock()
	}
	accuracy := e.AccuracyPct()
	difficulty := e.Difficulty
	if difficulty == "" {
		difficulty = r.deriveDifficulty(accuracy)
	}

	// Global sums and incremental mean.
	state.TotalEvents++
	state.TotalUnits += e.TotalUnits
	state.TotalCorrectUnits += e.CorrectUnits
	state.TotalTimeSpent += e.TimeSpentSeconds
	state.RunningAverageScorePct += (accuracy - state.RunningAverageScorePct) / float64(state.TotalEvents)
	if accuracy > state.BestScorePct {
		state.BestScorePct = accuracy
	}

	// Streak.
	if accuracy >= r.params.PassThresholdPct {
		state.CurrentStreak++
	} else {
		state.CurrentStreak = 0
	}
	if state.CurrentStreak > state.LongestStreak {
		state.LongestStreak = state.CurrentStreak
	}

	// Per-category rollup and score ring.
	cat := state.PerCategoryStats[e.Category]
	if cat == nil {
		cat = &CategoryStats{}
		state.PerCategoryStats[e.Category] = cat
	}
	cat.fold(e, accuracy)
	cat.RecentScores = append(cat.RecentScores, accuracy)
	if len(cat.RecentScores) > r.params.RecentScoresCap {
		cat.RecentScores = cat.RecentScores[len(cat.RecentScores)-r.params.RecentScoresCap:]
	}
	cat.Improvement = r.improvement(cat.RecentScores)

	// Per-difficulty counts at unit granularity.
	diff := state.PerDifficultyStats[difficulty]
	if diff == nil {
		diff = &DifficultyStats{}
		state.PerDifficultyStats[difficulty] = diff
	}
	diff.Attempted += e.TotalUnits
	diff.Correct += e.CorrectUnits

	// Time buckets, keyed by the event's local wall clock.
	state.WeeklyBuckets[weekdayIndex(at)].fold(e, accuracy)
	r.foldMonthly(state, e, accuracy, at)

	entry := RecordedEntry{
		ID:               id.GenerateID(),
		Category:         e.Category,
		TotalUnits:       e.TotalUnits,
		CorrectUnits:     e.CorrectUnits,
		TimeSpentSeconds: e.TimeSpentSeconds,
		AccuracyPct:      accuracy,
		Difficulty:       difficulty,
		RecordedAt:       at,
	}

	// Achievement latches are evaluated against the post-update state.
	r.unlockAchievements(state, entry)

	// Most-recent-first, bounded.
	state.RecentActivityLog = append([]RecordedEntry{entry}, state.RecentActivityLog...)
	if len(state.RecentActivityLog) > r.params.ActivityLogCap {
		state.RecentActivityLog = state.RecentActivityLog[:r.params.ActivityLogCap]
	}

	state.LastUpdated = at
	return entry, nil
}

func (r *Recorder) deriveDifficulty(accuracy float64) Difficulty {
	switch {
	case accuracy >= r.params.EasyMinPct:
		return DifficultyEasy
	case accuracy >= r.params.MediumMinPct:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// improvement compares the newest three ring entries against the oldest
// three. It reports 0 until the ring holds ImprovementMinSize scores.
func (r *Recorder) improvement(scores []float64) float64 {
	if len(scores) < r.params.ImprovementMinSize {
		return 0
	}
	first := mean(scores[:3])
	last := mean(scores[len(scores)-3:])
	if first == 0 {
		return 0
	}
	return (last - first) / first * 100
}

// weekdayIndex maps time.Weekday (Sunday=0) onto Monday=0 .. Sunday=6.
func weekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func (r *Recorder) foldMonthly(state *AggregateState, e CompletionEvent, accuracy float64, at time.Time) {
	year, month := at.Year(), at.Month()

	var bucket *MonthlyBucket
	for i := range state.MonthlyBuckets {
		b := &state.MonthlyBuckets[i]
		if b.Year == year && b.Month == month {
			bucket = b
			break
		}
	}
	if bucket == nil {
		state.MonthlyBuckets = append(state.MonthlyBuckets, MonthlyBucket{
			Label: month.String() + " " + at.Format("2006"),
			Year:  year,
			Month: month,
		})
		bucket = &state.MonthlyBuckets[len(state.MonthlyBuckets)-1]
	}
	bucket.fold(e, accuracy)

	// Rolling window: drop buckets older than MonthlyBucketCap calendar
	// months relative to the event being recorded.
	cutoff := year*12 + int(month) - r.params.MonthlyBucketCap
	kept := state.MonthlyBuckets[:0]
	for _, b := range state.MonthlyBuckets {
		if b.Year*12+int(b.Month) > cutoff {
			kept = append(kept, b)
		}
	}
	state.MonthlyBuckets = kept
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
