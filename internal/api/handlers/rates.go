package handlers

import (
	"net/http"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/csvrates"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/service"
)

// RatesHandler handles offline rate table HTTP requests
type RatesHandler struct {
	ratesService *service.RatesService
}

// NewRatesHandler creates a new RatesHandler
func NewRatesHandler(ratesService *service.RatesService) *RatesHandler {
	return &RatesHandler{
		ratesService: ratesService,
	}
}

// RateTableResponse wraps a loaded rate table
type RateTableResponse struct {
	Rows  []model.CsvRateRow `json:"rows"`
	Count int                `json:"count"`
}

// GetRates loads the well-known local rate file. An absent file is the normal
// waiting-for-input state and yields an empty table.
//
// Endpoint: GET /api/rates?filter=<substring>&sort=currency|rate&order=asc|desc
func (h *RatesHandler) GetRates(w http.ResponseWriter, r *http.Request) {
	rows, err := h.ratesService.LoadDefault(parseRateTableQuery(r))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load rate table", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, RateTableResponse{Rows: rows, Count: len(rows)})
}

// UploadRates parses a rate table sent as the request body. Rows with
// unparsable rates are dropped silently; only an unreadable table fails.
//
// Endpoint: POST /api/rates (body: CSV)
func (h *RatesHandler) UploadRates(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	rows, err := h.ratesService.Load(r.Body, parseRateTableQuery(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to parse rate table", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, RateTableResponse{Rows: rows, Count: len(rows)})
}

// parseRateTableQuery extracts the caller-selected filter and ordering.
// Unrecognized sort values are ignored rather than rejected.
func parseRateTableQuery(r *http.Request) service.RateTableQuery {
	query := service.RateTableQuery{
		Filter: r.URL.Query().Get("filter"),
		Desc:   r.URL.Query().Get("order") == "desc",
	}

	switch r.URL.Query().Get("sort") {
	case "currency":
		query.Sort = csvrates.SortByCurrency
	case "rate":
		query.Sort = csvrates.SortByRate
	}

	return query
}
