package analytics

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
)

type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// CategoryAnalysis is the read-side view of one category.
type CategoryAnalysis struct {
	Category        string  `json:"category"`
	AccuracyPct     float64 `json:"accuracyPct"`
	AverageScorePct float64 `json:"averageScorePct"`
	Attempts        int     `json:"attempts"`
	Improvement     float64 `json:"improvement"`
	Trend           Trend   `json:"trend"`
}

// Insight is one heuristic recommendation for the learner's dashboard.
type Insight struct {
	Kind     string `json:"kind"` // strength, weakness, trend, pace
	Title    string `json:"title"`
	Detail   string `json:"detail"`
	Priority string `json:"priority"` // high, medium, low
}

// AnalyzeCategories maps the per-category rollups into display form. The
// result is sorted by category name so two calls against the same snapshot
// are byte-for-byte identical.
func AnalyzeCategories(state *AggregateState, params Params) []CategoryAnalysis {
	names := lo.Keys(state.PerCategoryStats)
	sort.Strings(names)

	return lo.Map(names, func(name string, _ int) CategoryAnalysis {
		cs := state.PerCategoryStats[name]
		return CategoryAnalysis{
			Category:        name,
			AccuracyPct:     cs.AccuracyPct(),
			AverageScorePct: cs.AverageScorePct,
			Attempts:        cs.Attempts,
			Improvement:     cs.Improvement,
			Trend:           scoreTrend(cs.RecentScores, params.TrendBandPct),
		}
	})
}

// scoreTrend compares the mean of the last three ring entries against the
// mean of the three before those. Fewer than six entries, or a delta
// inside the band, reads as stable.
func scoreTrend(scores []float64, bandPct float64) Trend {
	if len(scores) < 6 {
		return TrendStable
	}
	recent := mean(scores[len(scores)-3:])
	prior := mean(scores[len(scores)-6 : len(scores)-3])
	switch {
	case recent-prior > bandPct:
		return TrendUp
	case prior-recent > bandPct:
		return TrendDown
	default:
		return TrendStable
	}
}

// LearningInsights derives a bounded list of advisory recommendations from
// the snapshot. Purely a function of state: no randomness, no wall clock.
func LearningInsights(state *AggregateState, params Params) []Insight {
	if state.TotalEvents == 0 {
		return nil
	}

	var insights []Insight

	// Recent window vs the all-time running average.
	if len(state.RecentActivityLog) >= params.RecentWindow {
		window := state.RecentActivityLog[:params.RecentWindow]
		recentAvg := mean(lo.Map(window, func(e RecordedEntry, _ int) float64 { return e.AccuracyPct }))
		switch {
		case recentAvg > state.RunningAverageScorePct:
			insights = append(insights, Insight{
				Kind:     "trend",
				Title:    "You're improving",
				Detail:   fmt.Sprintf("Your last %d attempts average %.0f%%, above your overall %.0f%%.", params.RecentWindow, recentAvg, state.RunningAverageScorePct),
				Priority: "low",
			})
		case state.RunningAverageScorePct-recentAvg > params.DipThresholdPct:
			insights = append(insights, Insight{
				Kind:     "trend",
				Title:    "Recent dip",
				Detail:   fmt.Sprintf("Your last %d attempts average %.0f%%, more than %.0f points below your overall %.0f%%. A short review session may help.", params.RecentWindow, recentAvg, params.DipThresholdPct, state.RunningAverageScorePct),
				Priority: "high",
			})
		}
	}

	// Strongest and weakest category by unit-level accuracy.
	analyses := AnalyzeCategories(state, params)
	if len(analyses) > 0 {
		strongest := lo.MaxBy(analyses, func(a, b CategoryAnalysis) bool { return a.AccuracyPct > b.AccuracyPct })
		weakest := lo.MinBy(analyses, func(a, b CategoryAnalysis) bool { return a.AccuracyPct < b.AccuracyPct })

		if strongest.AccuracyPct >= params.PassThresholdPct {
			insights = append(insights, Insight{
				Kind:     "strength",
				Title:    "Strongest area: " + strongest.Category,
				Detail:   fmt.Sprintf("%.0f%% accuracy over %d attempts.", strongest.AccuracyPct, strongest.Attempts),
				Priority: "low",
			})
		}
		if weakest.AccuracyPct < params.PassThresholdPct {
			insights = append(insights, Insight{
				Kind:     "weakness",
				Title:    "Needs practice: " + weakest.Category,
				Detail:   fmt.Sprintf("%.0f%% accuracy over %d attempts. Focused practice here will move your overall score the most.", weakest.AccuracyPct, weakest.Attempts),
				Priority: "high",
			})
		}
	}

	// Time efficiency: average seconds spent per unit.
	if state.TotalUnits > 0 {
		secPerUnit := state.TotalTimeSpent / float64(state.TotalUnits)
		if secPerUnit > params.SlowSecPerUnit {
			insights = append(insights, Insight{
				Kind:     "pace",
				Title:    "Take it step by step",
				Detail:   fmt.Sprintf("You average %.0f seconds per question. Breaking problems into smaller steps can speed this up.", secPerUnit),
				Priority: "medium",
			})
		}
	}

	if state.CurrentStreak >= params.StreakTarget {
		insights = append(insights, Insight{
			Kind:     "trend",
			Title:    "On a roll",
			Detail:   fmt.Sprintf("%d passing attempts in a row. Keep the streak alive!", state.CurrentStreak),
			Priority: "low",
		})
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}

const maxInsights = 5

// StreakState is the O(1) streak projection.
type StreakState struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

func StreakStateOf(state *AggregateState) StreakState {
	return StreakState{Current: state.CurrentStreak, Longest: state.LongestStreak}
}

func BestScoreOf(state *AggregateState) float64 {
	return state.BestScorePct
}
