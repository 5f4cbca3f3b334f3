package handlers

import (
	"net/http"
	"strconv"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/service"
)

// HistoryHandler handles conversion ledger HTTP requests
type HistoryHandler struct {
	historyService *service.HistoryService
}

// NewHistoryHandler creates a new HistoryHandler
func NewHistoryHandler(historyService *service.HistoryService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// HistoryResponse wraps the recent conversion entries, newest first
type HistoryResponse struct {
	Entries []model.HistoryEntry `json:"entries"`
	Count   int                  `json:"count"`
}

// Recent returns up to limit most recent conversions, newest first. The
// ledger's retention bound caps the result regardless of limit.
//
// Endpoint: GET /api/history?limit=<n>
func (h *HistoryHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid limit", err.Error())
			return
		}
		limit = parsed
	}

	entries, err := h.historyService.Recent(limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to read conversion history", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, HistoryResponse{Entries: entries, Count: len(entries)})
}
