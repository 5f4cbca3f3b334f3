package model

import "time"

// ConversionRequest captures the user input of a single conversion.
type ConversionRequest struct {
	Amount float64      `json:"amount"`
	Source CurrencyCode `json:"source"`
	Target CurrencyCode `json:"target"`
}

// ConversionResult is the outcome of a completed conversion. It is immutable
// once created; the history ledger stores a rendered copy, never a reference.
type ConversionResult struct {
	Request   ConversionRequest `json:"request"`
	Result    float64           `json:"result"`
	Timestamp time.Time         `json:"timestamp"`
}
