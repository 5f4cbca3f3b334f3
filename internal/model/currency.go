package model

import (
	"strings"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/apperrors"
)

// CurrencyCode is a three-letter uppercase ISO currency code.
type CurrencyCode string

// The fixed set of currencies the converter supports.
const (
	USD CurrencyCode = "USD"
	EUR CurrencyCode = "EUR"
	BRL CurrencyCode = "BRL"
)

// SupportedCurrencies is the whitelist checked before any provider call.
var SupportedCurrencies = map[CurrencyCode]bool{
	USD: true,
	EUR: true,
	BRL: true,
}

// ParseCurrency normalizes a raw code (trimmed, uppercased) and checks it
// against the supported set.
func ParseCurrency(raw string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
	if !SupportedCurrencies[code] {
		return "", apperrors.ErrUnknownCurrency
	}
	return code, nil
}

func (c CurrencyCode) String() string {
	return string(c)
}
