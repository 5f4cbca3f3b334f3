// Package frankfurter provides a client for the Frankfurter exchange rate API.
// The API is free, read-only and unauthenticated; rates come from the European
// Central Bank and refresh once per working day around 16:00 CET.
package frankfurter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/apperrors"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

// DefaultTimeout bounds every provider call so an unreachable or slow provider
// cannot hang the interaction. A timed-out call surfaces as a TransportError.
const DefaultTimeout = 15 * time.Second

const dateLayout = "2006-01-02"

// Client defines the interface for fetching exchange rates.
// This interface enables dependency injection and testing with mock implementations.
type Client interface {
	FetchLatest(ctx context.Context, amount float64, from, to model.CurrencyCode) (model.ConversionResult, error)
	FetchSeries(ctx context.Context, start, end time.Time, from, to model.CurrencyCode) (model.RateSeries, error)
}

// RateClient fetches exchange rates over HTTP from a Frankfurter-compatible
// endpoint. The base URL is injectable so tests can point it at a stub server.
type RateClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewRateClient creates a RateClient against the given base URL. A zero
// timeout falls back to DefaultTimeout.
func NewRateClient(baseURL string, timeout time.Duration) *RateClient {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &RateClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchLatest converts amount from one currency into another at the most
// recent rate. Equal source and target short-circuit without any I/O.
func (c *RateClient) FetchLatest(ctx context.Context, amount float64, from, to model.CurrencyCode) (model.ConversionResult, error) {
	request := model.ConversionRequest{Amount: amount, Source: from, Target: to}

	if from == to {
		return model.ConversionResult{
			Request:   request,
			Result:    amount,
			Timestamp: time.Now().UTC(),
		}, nil
	}

	query := url.Values{}
	query.Set("amount", fmt.Sprintf("%g", amount))
	query.Set("from", from.String())
	query.Set("to", to.String())
	reqURL := fmt.Sprintf("%s/latest?%s", c.baseURL, query.Encode())

	var response latestResponse
	if err := c.getJSON(ctx, reqURL, &response); err != nil {
		return model.ConversionResult{}, err
	}

	converted, ok := response.Rates[to.String()]
	if !ok {
		return model.ConversionResult{}, &apperrors.FormatError{
			Reason: fmt.Sprintf("no rate for %s in response", to),
		}
	}

	return model.ConversionResult{
		Request:   request,
		Result:    converted,
		Timestamp: time.Now().UTC(),
	}, nil
}

// FetchSeries retrieves the historical rate series for a currency pair over an
// inclusive date range. Callers must validate start <= end before calling; the
// client only shapes the provider response. An empty rates mapping yields an
// empty series, which is the "no data for this period" result, not an error.
func (c *RateClient) FetchSeries(ctx context.Context, start, end time.Time, from, to model.CurrencyCode) (model.RateSeries, error) {
	query := url.Values{}
	query.Set("from", from.String())
	query.Set("to", to.String())
	reqURL := fmt.Sprintf("%s/%s..%s?%s",
		c.baseURL,
		start.Format(dateLayout),
		end.Format(dateLayout),
		query.Encode(),
	)

	var response seriesResponse
	if err := c.getJSON(ctx, reqURL, &response); err != nil {
		return nil, err
	}

	series := make(model.RateSeries, 0, len(response.Rates))
	for dateStr, rates := range response.Rates {
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, &apperrors.FormatError{Reason: "unparsable date in response", Err: err}
		}
		rate, ok := rates[to.String()]
		if !ok {
			return nil, &apperrors.FormatError{
				Reason: fmt.Sprintf("no rate for %s on %s", to, dateStr),
			}
		}
		series = append(series, model.RateSeriesPoint{Date: date, Rate: rate})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series, nil
}

// getJSON is an internal helper that executes a GET against the provider and
// decodes the JSON body into out. Transport failures and non-2xx statuses
// become TransportErrors; undecodable bodies become FormatErrors.
func (c *RateClient) getJSON(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return &apperrors.TransportError{URL: reqURL, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apperrors.TransportError{URL: reqURL, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &apperrors.TransportError{URL: reqURL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &apperrors.TransportError{URL: reqURL, StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &apperrors.FormatError{Reason: "undecodable response body", Err: err}
	}

	return nil
}
