package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/apperrors"
)

// respondJSON sends a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON: %v", err)
		}
	}
}

// errorResponse is the error payload shape shared by all handlers
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// respondError sends a structured error payload with the given status code
func respondError(w http.ResponseWriter, status int, message, details string) {
	respondJSON(w, status, errorResponse{Error: message, Details: details})
}

// respondServiceError maps a service-layer error onto an HTTP status:
// validation failures are the caller's fault (400), provider transport and
// format failures are upstream faults (502), anything else is internal (500).
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.IsValidation(err):
		respondError(w, http.StatusBadRequest, "validation failed", err.Error())
	case apperrors.IsTransport(err):
		respondError(w, http.StatusBadGateway, "rate provider unreachable", err.Error())
	case apperrors.IsFormat(err):
		respondError(w, http.StatusBadGateway, "rate provider returned malformed data", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error", err.Error())
	}
}
