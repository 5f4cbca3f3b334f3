package frankfurter

// latestResponse represents the raw JSON response from the provider's latest
// endpoint. With an amount parameter, the rates mapping already contains the
// converted value for each requested target currency.
type latestResponse struct {
	Amount float64            `json:"amount"`
	Base   string             `json:"base"`
	Date   string             `json:"date"`
	Rates  map[string]float64 `json:"rates"`
}

// seriesResponse represents the raw JSON response from the provider's range
// endpoint: a mapping of date string (YYYY-MM-DD) to per-currency rates.
// An empty mapping means the provider has no data for the period.
type seriesResponse struct {
	Amount    float64                       `json:"amount"`
	Base      string                        `json:"base"`
	StartDate string                        `json:"start_date"`
	EndDate   string                        `json:"end_date"`
	Rates     map[string]map[string]float64 `json:"rates"`
}
