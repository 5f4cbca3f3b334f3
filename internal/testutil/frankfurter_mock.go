package testutil

import (
	"context"
	"time"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/frankfurter"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

// MockRateClient is a mock implementation of frankfurter.Client for testing.
// It returns predefined data instead of making actual provider calls and
// counts how often it was invoked, which lets cache tests assert that
// repeated identical requests reach the provider at most once.
type MockRateClient struct {
	// LatestRate is the converted value returned by FetchLatest
	LatestRate float64
	// Series is the series returned by FetchSeries
	Series model.RateSeries
	// Err is returned from both fetch methods when set
	Err error
	// CallCount tracks how many times a fetch method was called
	CallCount int
}

var _ frankfurter.Client = (*MockRateClient)(nil)

// NewMockRateClient creates a mock with a fixed conversion value.
func NewMockRateClient() *MockRateClient {
	return &MockRateClient{
		LatestRate: 27.35,
	}
}

// FetchLatest mocks the latest-rate call. Equal currencies short-circuit
// without counting, matching the real client's no-I/O contract.
func (m *MockRateClient) FetchLatest(_ context.Context, amount float64, from, to model.CurrencyCode) (model.ConversionResult, error) {
	request := model.ConversionRequest{Amount: amount, Source: from, Target: to}

	if from == to {
		return model.ConversionResult{Request: request, Result: amount, Timestamp: time.Now().UTC()}, nil
	}

	m.CallCount++
	if m.Err != nil {
		return model.ConversionResult{}, m.Err
	}

	return model.ConversionResult{
		Request:   request,
		Result:    m.LatestRate,
		Timestamp: time.Now().UTC(),
	}, nil
}

// FetchSeries mocks the date-range call with the configured series.
func (m *MockRateClient) FetchSeries(_ context.Context, _, _ time.Time, _, _ model.CurrencyCode) (model.RateSeries, error) {
	m.CallCount++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Series == nil {
		return model.RateSeries{}, nil
	}
	return m.Series, nil
}

// WithError configures the mock to return the specified error.
func (m *MockRateClient) WithError(err error) *MockRateClient {
	m.Err = err
	return m
}

// WithRate configures the converted value FetchLatest returns.
func (m *MockRateClient) WithRate(rate float64) *MockRateClient {
	m.LatestRate = rate
	return m
}

// WithSeries configures the series FetchSeries returns.
func (m *MockRateClient) WithSeries(series model.RateSeries) *MockRateClient {
	m.Series = series
	return m
}

// CreateMockSeries builds a series of days consecutive points starting at
// start, with rates climbing from 5.0 in steps of 0.01.
func CreateMockSeries(start time.Time, days int) model.RateSeries {
	series := make(model.RateSeries, 0, days)
	for i := 0; i < days; i++ {
		series = append(series, model.RateSeriesPoint{
			Date: start.AddDate(0, 0, i),
			Rate: 5.0 + float64(i)*0.01,
		})
	}
	return series
}
