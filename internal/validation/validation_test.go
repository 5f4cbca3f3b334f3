package validation

import (
	"errors"
	"testing"
	"time"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/apperrors"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

func TestValidateAmount(t *testing.T) {
	if err := ValidateAmount(0); err != nil {
		t.Errorf("Zero is a valid amount, got %v", err)
	}
	if err := ValidateAmount(5.5); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := ValidateAmount(-0.01); !errors.Is(err, apperrors.ErrNegativeAmount) {
		t.Errorf("Expected ErrNegativeAmount, got %v", err)
	}
}

func TestValidateCurrency(t *testing.T) {
	for _, code := range []model.CurrencyCode{model.USD, model.EUR, model.BRL} {
		if err := ValidateCurrency(code); err != nil {
			t.Errorf("Expected %s to be valid, got %v", code, err)
		}
	}

	for _, code := range []model.CurrencyCode{"GBP", "usd", "", "EURO"} {
		if err := ValidateCurrency(code); !errors.Is(err, apperrors.ErrUnknownCurrency) {
			t.Errorf("Expected ErrUnknownCurrency for %q, got %v", code, err)
		}
	}
}

func TestValidateDateRange(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	if err := ValidateDateRange(start, end); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
	if err := ValidateDateRange(start, start); err != nil {
		t.Errorf("Equal dates are a valid range, got %v", err)
	}
	if err := ValidateDateRange(end, start); !errors.Is(err, apperrors.ErrInvalidDateRange) {
		t.Errorf("Expected ErrInvalidDateRange, got %v", err)
	}
}
