package analytics

import "fmt"

// Achievement ids. Each is an independent one-shot latch, deduplicated by
// id no matter how often its predicate holds again.
const (
	AchievementFirstEvent    = "first_event"
	AchievementPerfectScore  = "perfect_score"
	AchievementSpeedAccurate = "speed_accurate"
)

// StreakAchievementID returns the id for a streak of n qualifying events,
// e.g. "streak_5".
func StreakAchievementID(n int) string {
	return fmt.Sprintf("streak_%d", n)
}

// VolumeAchievementID returns the id for a lifetime total of n events,
// e.g. "volume_10".
func VolumeAchievementID(n int) string {
	return fmt.Sprintf("volume_%d", n)
}

// unlockAchievements evaluates every latch against the already-updated
// state and appends the ids that fire. The equality checks (== rather
// than >=) mean a latch only fires on the transition, but unlock dedupes
// by id regardless so replays stay idempotent.
func (r *Recorder) unlockAchievements(state *AggregateState, entry RecordedEntry) {
	if state.TotalEvents == 1 {
		r.unlock(state, AchievementFirstEvent, entry)
	}
	if entry.AccuracyPct == 100 {
		r.unlock(state, AchievementPerfectScore, entry)
	}
	if state.CurrentStreak == r.params.StreakTarget {
		r.unlock(state, StreakAchievementID(r.params.StreakTarget), entry)
	}
	if state.TotalEvents == r.params.VolumeTarget {
		r.unlock(state, VolumeAchievementID(r.params.VolumeTarget), entry)
	}
	secPerUnit := entry.TimeSpentSeconds / float64(entry.TotalUnits)
	if secPerUnit < r.params.SpeedMaxSecPerUnit && entry.AccuracyPct >= r.params.SpeedMinAccuracyPct {
		r.unlock(state, AchievementSpeedAccurate, entry)
	}
}

func (r *Recorder) unlock(state *AggregateState, achievementID string, entry RecordedEntry) {
	if state.HasAchievement(achievementID) {
		return
	}
	state.Achievements = append(state.Achievements, Achievement{
		ID:         achievementID,
		UnlockedAt: entry.RecordedAt,
	})
}
