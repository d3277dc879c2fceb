package analytics

import "time"

// Rollup is the shared statistics shape kept globally, per category and per
// time bucket. All averages follow the incremental-mean rule, so a rollup
// never needs the raw history to stay correct.
type Rollup struct {
	Attempts        int     `json:"attempts"`
	TotalUnits      int     `json:"totalUnits"`
	TotalCorrect    int     `json:"totalCorrect"`
	TotalTimeSpent  float64 `json:"totalTimeSpent"`
	AverageScorePct float64 `json:"averageScorePct"`
	BestScorePct    float64 `json:"bestScorePct"`
}

// fold accumulates one event into the rollup in O(1).
func (r *Rollup) fold(e CompletionEvent, accuracy float64) {
	r.Attempts++
	r.TotalUnits += e.TotalUnits
	r.TotalCorrect += e.CorrectUnits
	r.TotalTimeSpent += e.TimeSpentSeconds
	r.AverageScorePct += (accuracy - r.AverageScorePct) / float64(r.Attempts)
	if accuracy > r.BestScorePct {
		r.BestScorePct = accuracy
	}
}

// AccuracyPct is the unit-level accuracy of everything folded so far.
func (r *Rollup) AccuracyPct() float64 {
	if r.TotalUnits == 0 {
		return 0
	}
	return float64(r.TotalCorrect) / float64(r.TotalUnits) * 100
}

// CategoryStats extends the rollup with a bounded ring of recent scores.
// The ring only feeds trend and improvement derivation; averages never
// re-sum it.
type CategoryStats struct {
	Rollup
	RecentScores []float64 `json:"recentScores"`
	// Improvement is avg(last 3) - avg(first 3) of the ring, as a
	// percentage of avg(first 3). It stays 0 until the ring holds six
	// scores, and 0 when avg(first 3) is 0.
	Improvement float64 `json:"improvement"`
}

// DifficultyStats accumulates at unit granularity, not event granularity.
type DifficultyStats struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
}

// Achievement is a one-shot latch: once unlocked it is never removed or
// re-derived.
type Achievement struct {
	ID         string    `json:"id"`
	UnlockedAt time.Time `json:"unlockedAt"`
}

// MonthlyBucket is a calendar-month rollup. Year and Month order the
// rolling window; Label ("January 2026") is what the UI displays.
type MonthlyBucket struct {
	Label string     `json:"label"`
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Rollup
}

// AggregateState is the single cumulative document that is the sole source
// of truth for all derived statistics. One document exists per store key.
type AggregateState struct {
	TotalEvents            int     `json:"totalEvents"`
	TotalUnits             int     `json:"totalUnits"`
	TotalCorrectUnits      int     `json:"totalCorrectUnits"`
	TotalTimeSpent         float64 `json:"totalTimeSpent"`
	BestScorePct           float64 `json:"bestScorePct"`
	RunningAverageScorePct float64 `json:"runningAverageScorePct"`

	CurrentStreak int `json:"currentStreak"`
	LongestStreak int `json:"longestStreak"`

	PerCategoryStats   map[string]*CategoryStats       `json:"perCategoryStats"`
	PerDifficultyStats map[Difficulty]*DifficultyStats `json:"perDifficultyStats"`

	// WeeklyBuckets is indexed Monday=0 .. Sunday=6.
	WeeklyBuckets  [7]Rollup       `json:"weeklyBuckets"`
	MonthlyBuckets []MonthlyBucket `json:"monthlyBuckets"`

	Achievements      []Achievement   `json:"achievements"`
	RecentActivityLog []RecordedEntry `json:"recentActivityLog"`

	LastUpdated time.Time `json:"lastUpdated"`
}

// NewAggregateState returns the empty document a fresh store key starts
// from.
func NewAggregateState() *AggregateState {
	return &AggregateState{
		PerCategoryStats: make(map[string]*CategoryStats),
		PerDifficultyStats: map[Difficulty]*DifficultyStats{
			DifficultyEasy:   {},
			DifficultyMedium: {},
			DifficultyHard:   {},
		},
	}
}

// Clone returns a deep copy. Record applies its mutation to a clone so a
// failed persist leaves the live state untouched, and read views hand out
// snapshots callers cannot corrupt.
func (s *AggregateState) Clone() *AggregateState {
	c := *s

	c.PerCategoryStats = make(map[string]*CategoryStats, len(s.PerCategoryStats))
	for k, v := range s.PerCategoryStats {
		cs := *v
		cs.RecentScores = append([]float64(nil), v.RecentScores...)
		c.PerCategoryStats[k] = &cs
	}

	c.PerDifficultyStats = make(map[Difficulty]*DifficultyStats, len(s.PerDifficultyStats))
	for k, v := range s.PerDifficultyStats {
		ds := *v
		c.PerDifficultyStats[k] = &ds
	}

	c.MonthlyBuckets = append([]MonthlyBucket(nil), s.MonthlyBuckets...)
	c.Achievements = append([]Achievement(nil), s.Achievements...)
	c.RecentActivityLog = append([]RecordedEntry(nil), s.RecentActivityLog...)

	return &c
}

// HasAchievement reports whether the achievement id is already unlocked.
func (s *AggregateState) HasAchievement(id string) bool {
	for _, a := range s.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
