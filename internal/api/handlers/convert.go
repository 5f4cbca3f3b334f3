package handlers

import (
	"net/http"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/api/request"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/service"
)

// ConvertHandler handles conversion and historical series HTTP requests
type ConvertHandler struct {
	conversionService *service.ConversionService
}

// NewConvertHandler creates a new ConvertHandler
func NewConvertHandler(conversionService *service.ConversionService) *ConvertHandler {
	return &ConvertHandler{
		conversionService: conversionService,
	}
}

// Convert converts an amount between two currencies at the latest rate.
//
// Endpoint: GET /api/convert?amount=<decimal>&from=<CODE>&to=<CODE>
// Response: 200 OK with the conversion result
// Errors: 400 on bad input, 502 on provider failure
func (h *ConvertHandler) Convert(w http.ResponseWriter, r *http.Request) {
	params, err := request.ParseConvertParams(
		r.URL.Query().Get("amount"),
		r.URL.Query().Get("from"),
		r.URL.Query().Get("to"),
	)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid parameters", err.Error())
		return
	}

	result, err := h.conversionService.Convert(r.Context(), params.Amount, params.From, params.To)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// SeriesResponse wraps a historical series. NoData flags the legitimate
// "provider has no rates for this period" case so clients can render it apart
// from failures.
type SeriesResponse struct {
	From   string        `json:"from"`
	To     string        `json:"to"`
	Points []SeriesPoint `json:"points"`
	NoData bool          `json:"no_data"`
}

// SeriesPoint is one dated rate in a series response
type SeriesPoint struct {
	Date string  `json:"date"`
	Rate float64 `json:"rate"`
}

// Series returns the historical rate series for a currency pair.
//
// Endpoint: GET /api/series?start=<YYYY-MM-DD>&end=<YYYY-MM-DD>&from=<CODE>&to=<CODE>
// Response: 200 OK with the series (possibly empty, flagged no_data)
// Errors: 400 on bad input or inverted range, 502 on provider failure
func (h *ConvertHandler) Series(w http.ResponseWriter, r *http.Request) {
	params, err := request.ParseSeriesParams(
		r.URL.Query().Get("start"),
		r.URL.Query().Get("end"),
		r.URL.Query().Get("from"),
		r.URL.Query().Get("to"),
	)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid parameters", err.Error())
		return
	}

	series, err := h.conversionService.Series(r.Context(), params.Start, params.End, params.From, params.To)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	points := make([]SeriesPoint, 0, len(series))
	for _, point := range series {
		points = append(points, SeriesPoint{
			Date: point.Date.Format("2006-01-02"),
			Rate: point.Rate,
		})
	}

	respondJSON(w, http.StatusOK, SeriesResponse{
		From:   params.From.String(),
		To:     params.To.String(),
		Points: points,
		NoData: len(points) == 0,
	})
}
