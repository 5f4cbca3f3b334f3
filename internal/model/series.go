package model

import "time"

// RateSeriesPoint is one dated exchange rate within a historical series.
type RateSeriesPoint struct {
	Date time.Time `json:"date"`
	Rate float64   `json:"rate"`
}

// RateSeries is a sequence of points for one currency pair, strictly ordered
// by date ascending with no duplicate dates. An empty series is the normal
// "no data for this period" result, not an error.
type RateSeries []RateSeriesPoint
