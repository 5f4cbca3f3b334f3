package request

import (
	"testing"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

func TestParseConvertParams(t *testing.T) {
	t.Run("parses amount and currencies", func(t *testing.T) {
		params, err := ParseConvertParams("5.0", "eur", "BRL")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if params.Amount != 5.0 {
			t.Errorf("Expected amount 5.0, got %g", params.Amount)
		}
		if params.From != model.EUR || params.To != model.BRL {
			t.Errorf("Expected EUR->BRL, got %s->%s", params.From, params.To)
		}
	})

	t.Run("missing amount defaults to one", func(t *testing.T) {
		params, err := ParseConvertParams("", "USD", "EUR")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if params.Amount != 1.0 {
			t.Errorf("Expected default amount 1, got %g", params.Amount)
		}
	})

	t.Run("rejects malformed amount", func(t *testing.T) {
		if _, err := ParseConvertParams("lots", "USD", "EUR"); err == nil {
			t.Error("Expected an error for a malformed amount")
		}
	})

	t.Run("rejects unknown currencies", func(t *testing.T) {
		if _, err := ParseConvertParams("1", "XXX", "EUR"); err == nil {
			t.Error("Expected an error for an unknown from currency")
		}
		if _, err := ParseConvertParams("1", "USD", "XXX"); err == nil {
			t.Error("Expected an error for an unknown to currency")
		}
	})
}

func TestParseSeriesParams(t *testing.T) {
	t.Run("parses dates and currencies", func(t *testing.T) {
		params, err := ParseSeriesParams("2024-01-01", "2024-12-31", "EUR", "BRL")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if params.Start.Format("2006-01-02") != "2024-01-01" {
			t.Errorf("Unexpected start date %v", params.Start)
		}
		if params.End.Format("2006-01-02") != "2024-12-31" {
			t.Errorf("Unexpected end date %v", params.End)
		}
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		if _, err := ParseSeriesParams("01/01/2024", "2024-12-31", "EUR", "BRL"); err == nil {
			t.Error("Expected an error for a malformed start date")
		}
		if _, err := ParseSeriesParams("2024-01-01", "soon", "EUR", "BRL"); err == nil {
			t.Error("Expected an error for a malformed end date")
		}
	})

	t.Run("does not check range ordering", func(t *testing.T) {
		// Ordering is the service's contract; parsing only checks shapes.
		if _, err := ParseSeriesParams("2024-12-31", "2024-01-01", "EUR", "BRL"); err != nil {
			t.Errorf("Expected shape-only parsing, got %v", err)
		}
	})
}
