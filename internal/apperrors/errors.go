// Package apperrors defines the error taxonomy shared across the application.
// Validation errors are sentinels raised before any I/O; provider failures are
// typed so callers can distinguish an unreachable provider from a malformed
// response.
package apperrors

import (
	"errors"
	"fmt"
)

// Validation errors represent bad input. They are raised before any network
// call is made and map to a 400 response at the HTTP layer.
var (
	// ErrNegativeAmount indicates that a conversion amount is below zero.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrUnknownCurrency indicates a currency code outside the supported set.
	ErrUnknownCurrency = errors.New("unknown currency code")

	// ErrInvalidDateRange indicates that the start date is after the end date.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// TransportError indicates that the rate provider could not be reached or
// answered with a non-2xx status. It wraps the underlying network error when
// one exists.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("rate provider unreachable: %v", e.Err)
	}
	return fmt.Sprintf("rate provider returned status %d for %s", e.StatusCode, e.URL)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// FormatError indicates that the rate provider answered successfully but the
// body could not be interpreted (undecodable JSON, missing target rate).
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unexpected rate provider response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("unexpected rate provider response: %s", e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a TransportError anywhere in its chain.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsFormat reports whether err is a FormatError anywhere in its chain.
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsValidation reports whether err is one of the validation sentinels.
func IsValidation(err error) bool {
	return errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrUnknownCurrency) ||
		errors.Is(err, ErrInvalidDateRange)
}
