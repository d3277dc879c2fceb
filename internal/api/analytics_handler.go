// internal/api/analytics_handler.go
package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/studytrack/backend/internal/domain/analytics"
	"github.com/studytrack/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type RecordEventRequest struct {
	Category         string     `json:"category" example:"arrays"`
	TotalUnits       int        `json:"totalUnits" example:"10"`
	CorrectUnits     int        `json:"correctUnits" example:"8"`
	TimeSpentSeconds float64    `json:"timeSpentSeconds" example:"300"`
	Difficulty       string     `json:"difficulty,omitempty" example:"medium"`
	Timestamp        *time.Time `json:"timestamp,omitempty"`
}

type ResetResponse struct {
	Status string `json:"status" example:"reset"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// recordEvent folds one completion event into the dataset.
// @Summary      Record a completion event
// @Description  Record one quiz submission or problem attempt and fold it into the running statistics.
// @Tags         Analytics
// @Accept       json
// @Produce      json
// @Param        dataset  path      string              true  "Dataset"  Enums(quiz, programming)
// @Param        body     body      RecordEventRequest  true  "Completion event"
// @Success      201      {object}  analytics.RecordedEntry
// @Failure      400      {object}  map[string]string
// @Failure      503      {object}  map[string]string  "analytics temporarily unavailable"
// @Router       /analytics/{dataset}/events [post]
func (h *Handler) recordEvent(w http.ResponseWriter, r *http.Request) {
	ds := h.dataset(w, r)
	if ds == nil {
		return
	}

	var req RecordEventRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	event := analytics.CompletionEvent{
		Category:         req.Category,
		TotalUnits:       req.TotalUnits,
		CorrectUnits:     req.CorrectUnits,
		TimeSpentSeconds: req.TimeSpentSeconds,
		Difficulty:       analytics.Difficulty(req.Difficulty),
	}
	if req.Timestamp != nil {
		event.Timestamp = *req.Timestamp
	}

	entry, err := ds.Record(event)
	if h.handleError(w, err) {
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

// getSummary returns the full aggregate document.
// @Summary      Get the aggregate state
// @Description  The cumulative statistics document for the dataset: totals, streaks, per-category and per-difficulty rollups, time buckets, achievements and the recent-activity log.
// @Tags         Analytics
// @Produce      json
// @Param        dataset  path      string  true  "Dataset"  Enums(quiz, programming)
// @Success      200      {object}  analytics.AggregateState
// @Failure      503      {object}  map[string]string
// @Router       /analytics/{dataset}/summary [get]
func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	ds := h.dataset(w, r)
	if ds == nil {
		return
	}

	state, err := ds.State()
	if h.handleError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, state)
}

// getHistory returns recent entries, most recent first.
// @Summary      Get recent activity
// @Description  Recent recorded entries filtered by category and date range. Filters are a conjunction; absent filters impose no constraint.
// @Tags         Analytics
// @Produce      json
// @Param        dataset   path      string  true   "Dataset"  Enums(quiz, programming)
// @Param        category  query     string  false  "Category filter"
// @Param        from      query     string  false  "RFC 3339 lower bound"
// @Param        to        query     string  false  "RFC 3339 upper bound"
// @Param        limit     query     int     false  "Maximum entries"
// @Success      200       {array}   analytics.RecordedEntry
// @Failure      400       {object}  map[string]string
// @Router       /analytics/{dataset}/history [get]
func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	ds := h.dataset(w, r)
	if ds == nil {
		return
	}

	filter := service.HistoryFilter{Category: r.URL.Query().Get("category")}

	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "from must be RFC 3339")
			return
		}
		filter.From = t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			respondError(w, http.StatusBadRequest, "to must be RFC 3339")
			return
		}
		filter.To = t
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			respondError(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		filter.Limit = n
	}

	entries, err := ds.History(filter)
	if h.handleError(w, err) {
		return
	}
	if entries == nil {
		entries = []analytics.RecordedEntry{}
	}

	respondJSON(w, http.StatusOK, entries)
}

// getCategories returns the per-category analysis view.
// @Summary      Get category analysis
// @Description  Per-category accuracy, average score, attempts, improvement and trend classification.
// @Tags         Analytics
// @Produce      json
// @Param        dataset  path      string  true  "Dataset"  Enums(quiz, programming)
// @Success      200      {array}   analytics.CategoryAnalysis
// @Router       /analytics/{dataset}/categories [get]
func (h *Handler) getCategories(w http.ResponseWriter, r *http.Request) {
	ds := h.dataset(w, r)
	if ds == nil {
		return
	}

	analyses, err := ds.CategoryAnalysis()
	if h.handleError(w, err) {
		return
	}
	if analyses == nil {
		analyses = []analytics.CategoryAnalysis{}
	}

	respondJSON(w, http.StatusOK, analyses)
}

// getInsights returns the heuristic recommendation view.
// @Summary      Get learning insights
// @Description  Advisory recommendations derived from the current snapshot: recent-vs-overall trend, strongest and weakest category, pacing.
// @Tags         Analytics
// @Produce      json
// @Param        dataset  path      string  true  "Dataset"  Enums(quiz, programming)
// @Success      200      {array}   analytics.Insight
// @Router       /analytics/{dataset}/insights [get]
func (h *Handler) getInsights(w http.ResponseWriter, r *http.Request) {
	ds := h.dataset(w, r)
	if ds == nil {
		return
	}

	insights, err := ds.LearningInsights()
	if h.handleError(w, err) {
		return
	}
	if insights == nil {
		insights = []analytics.Insight{}
	}

	respondJSON(w, http.StatusOK, insights)
}

// getAchievements returns the unlocked achievements.
// @Summary      Get achievements
// @Description  The append-only list of unlocked achievements in unlock order.
// @Tags         Analytics
// @Produce      json
// @Param        dataset  path      string  true  "Dataset"  Enums(quiz, programming)
// @Success      200      {array}   analytics.Achievement
// @Router       /analytics/{dataset}/achievements [get]
func (h *Handler) getAchievements(w http.ResponseWriter, r *http.Request) {
	ds := h.dataset(w, r)
	if ds == nil {
		return
	}

	achievements, err := ds.Achievements()
	if h.handleError(w, err) {
		return
	}
	if achievements == nil {
		achievements = []analytics.Achievement{}
	}

	respondJSON(w, http.StatusOK, achievements)
}

// resetDataset destructively reinitializes the dataset.
// @Summary      Reset a dataset
// @Description  Irreversibly reinitializes the dataset to the empty aggregate state.
// @Tags         Analytics
// @Produce      json
// @Param        dataset  path      string  true  "Dataset"  Enums(quiz, programming)
// @Success      200      {object}  ResetResponse
// @Failure      503      {object}  map[string]string
// @Router       /analytics/{dataset}/reset [post]
func (h *Handler) resetDataset(w http.ResponseWriter, r *http.Request) {
	ds := h.dataset(w, r)
	if ds == nil {
		return
	}

	if h.handleError(w, ds.Reset()) {
		return
	}

	respondJSON(w, http.StatusOK, ResetResponse{Status: "reset"})
}
