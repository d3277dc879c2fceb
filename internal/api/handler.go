// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/studytrack/backend/internal/domain/analytics"
	"github.com/studytrack/backend/internal/service"
	"github.com/studytrack/backend/internal/store"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	svc    *service.Service
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(svc *service.Service, logger *slog.Logger) *Handler {
	return &Handler{
		svc:    svc,
		logger: logger,
	}
}

// dataset resolves the {dataset} path value, writing a 404 when the name
// is unknown. Returns nil if the response has already been written.
func (h *Handler) dataset(w http.ResponseWriter, r *http.Request) *service.AnalyticsStore {
	name := r.PathValue("dataset")
	ds := h.svc.Dataset(name)
	if ds == nil {
		respondError(w, http.StatusNotFound, "unknown dataset "+name)
		return nil
	}
	return ds
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// decodeJSON decodes the request body into v. Returns false (after
// writing a 400) when the body is not valid JSON.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

// handleError maps engine errors onto HTTP responses. Returns true if an
// error was handled (caller should return). Storage failures surface as
// 503 so the UI can degrade to "analytics temporarily unavailable" without
// blocking the learner's primary task.
func (h *Handler) handleError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}
	switch {
	case errors.Is(err, analytics.ErrInvalidEvent):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrUnavailable):
		h.logger.Error("analytics store unavailable", "error", err)
		respondError(w, http.StatusServiceUnavailable, "analytics temporarily unavailable")
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	default:
		h.logger.Error("analytics error", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}
