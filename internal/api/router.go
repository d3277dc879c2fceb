// internal/api/router.go
package api

import "net/http"

// RegisterRoutes attaches every analytics endpoint to the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("POST /analytics/{dataset}/events", h.recordEvent)
	mux.HandleFunc("GET /analytics/{dataset}/summary", h.getSummary)
	mux.HandleFunc("GET /analytics/{dataset}/history", h.getHistory)
	mux.HandleFunc("GET /analytics/{dataset}/categories", h.getCategories)
	mux.HandleFunc("GET /analytics/{dataset}/insights", h.getInsights)
	mux.HandleFunc("GET /analytics/{dataset}/achievements", h.getAchievements)
	mux.HandleFunc("POST /analytics/{dataset}/reset", h.resetDataset)
}
