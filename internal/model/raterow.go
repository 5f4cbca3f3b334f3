package model

// CsvRateRow is one cleaned row from an uploaded or local rate table.
// The currency is uppercased and trimmed but not checked against the supported
// conversion set: the rate table is reference data and may list other codes.
type CsvRateRow struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}
