package request

import (
	"fmt"
	"time"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

const dateLayout = "2006-01-02"

// SeriesParams is a validated historical series request from query parameters.
type SeriesParams struct {
	Start time.Time
	End   time.Time
	From  model.CurrencyCode
	To    model.CurrencyCode
}

// ParseSeriesParams extracts start/end/from/to from their raw query values.
// Dates use the YYYY-MM-DD form. Range ordering is checked later by the
// service, not here; this only parses shapes.
func ParseSeriesParams(startParam, endParam, fromParam, toParam string) (SeriesParams, error) {
	start, err := time.Parse(dateLayout, startParam)
	if err != nil {
		return SeriesParams{}, fmt.Errorf("invalid start date %q: %w", startParam, err)
	}

	end, err := time.Parse(dateLayout, endParam)
	if err != nil {
		return SeriesParams{}, fmt.Errorf("invalid end date %q: %w", endParam, err)
	}

	from, err := model.ParseCurrency(fromParam)
	if err != nil {
		return SeriesParams{}, fmt.Errorf("invalid from currency %q: %w", fromParam, err)
	}

	to, err := model.ParseCurrency(toParam)
	if err != nil {
		return SeriesParams{}, fmt.Errorf("invalid to currency %q: %w", toParam, err)
	}

	return SeriesParams{Start: start, End: end, From: from, To: to}, nil
}
