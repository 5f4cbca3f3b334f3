// Package request parses and validates raw query parameters into typed values
// before they reach the service layer.
package request

import (
	"fmt"
	"strconv"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

// ConvertParams is a validated conversion request from query parameters.
type ConvertParams struct {
	Amount float64
	From   model.CurrencyCode
	To     model.CurrencyCode
}

// ParseConvertParams extracts amount/from/to from their raw query values.
// The amount defaults to 1 when absent, matching the converter's UI default.
func ParseConvertParams(amountParam, fromParam, toParam string) (ConvertParams, error) {
	amount := 1.0
	if amountParam != "" {
		parsed, err := strconv.ParseFloat(amountParam, 64)
		if err != nil {
			return ConvertParams{}, fmt.Errorf("invalid amount: %w", err)
		}
		amount = parsed
	}

	from, err := model.ParseCurrency(fromParam)
	if err != nil {
		return ConvertParams{}, fmt.Errorf("invalid from currency %q: %w", fromParam, err)
	}

	to, err := model.ParseCurrency(toParam)
	if err != nil {
		return ConvertParams{}, fmt.Errorf("invalid to currency %q: %w", toParam, err)
	}

	return ConvertParams{Amount: amount, From: from, To: to}, nil
}
