package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/apperrors"
)

func testDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRespondServiceError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation error maps to 400", apperrors.ErrNegativeAmount, http.StatusBadRequest},
		{"transport error maps to 502", &apperrors.TransportError{StatusCode: 500}, http.StatusBadGateway},
		{"format error maps to 502", &apperrors.FormatError{Reason: "bad body"}, http.StatusBadGateway},
		{"unknown error maps to 500", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			respondServiceError(w, tc.err)
			if w.Code != tc.want {
				t.Errorf("Expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
