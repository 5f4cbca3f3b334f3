package handlers

import (
	"net/http"
	"time"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/service"
)

// ContentHandler handles curiosity and tip HTTP requests
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// ContentResponse carries one selected text line
type ContentResponse struct {
	Currency string `json:"currency"`
	Text     string `json:"text"`
}

// Curiosity returns the curiosity of the day for a currency. The same
// currency and date always return the same text.
//
// Endpoint: GET /api/content/curiosity?currency=<CODE>&date=<YYYY-MM-DD>
// The date defaults to today.
func (h *ContentHandler) Curiosity(w http.ResponseWriter, r *http.Request) {
	currency, err := model.ParseCurrency(r.URL.Query().Get("currency"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid currency", err.Error())
		return
	}

	day := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid date", err.Error())
			return
		}
		day = parsed
	}

	text, err := h.contentService.Curiosity(currency, day)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ContentResponse{Currency: currency.String(), Text: text})
}

// Tip returns a financial tip for a currency in the requested language.
//
// Endpoint: GET /api/content/tip?currency=<CODE>&lang=<pt|es|en>
func (h *ContentHandler) Tip(w http.ResponseWriter, r *http.Request) {
	currency, err := model.ParseCurrency(r.URL.Query().Get("currency"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid currency", err.Error())
		return
	}

	text, err := h.contentService.Tip(currency, r.URL.Query().Get("lang"))
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, ContentResponse{Currency: currency.String(), Text: text})
}
