// Package validation checks conversion inputs before any I/O happens.
package validation

import (
	"fmt"
	"time"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/apperrors"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

// ValidateAmount checks that a conversion amount is non-negative
func ValidateAmount(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("%w: %g", apperrors.ErrNegativeAmount, amount)
	}
	return nil
}

// ValidateCurrency checks that a code belongs to the supported set
func ValidateCurrency(code model.CurrencyCode) error {
	if !model.SupportedCurrencies[code] {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
	}
	return nil
}

// ValidateDateRange checks that start does not come after end. This runs
// before the series call reaches the network layer.
func ValidateDateRange(start, end time.Time) error {
	if start.After(end) {
		return fmt.Errorf("%w: %s after %s",
			apperrors.ErrInvalidDateRange,
			start.Format("2006-01-02"),
			end.Format("2006-01-02"),
		)
	}
	return nil
}
