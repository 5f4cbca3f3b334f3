package service

import (
	"context"
	"fmt"
	"time"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/cache"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/frankfurter"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/repository"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/validation"
)

const (
	historyTimeLayout = "2006-01-02 15:04:05"
	dateLayout        = "2006-01-02"
)

// ConversionService orchestrates conversions and historical series: it
// validates inputs before any I/O, short-circuits equal-currency requests,
// memoizes provider calls per session and records completed conversions in
// the ledger.
type ConversionService struct {
	client  frankfurter.Client
	cache   *cache.ResultCache
	history *repository.HistoryRepository
}

// NewConversionService creates a new ConversionService
func NewConversionService(
	client frankfurter.Client,
	resultCache *cache.ResultCache,
	history *repository.HistoryRepository,
) *ConversionService {
	return &ConversionService{
		client:  client,
		cache:   resultCache,
		history: history,
	}
}

// Convert converts amount from one currency into another at the latest rate
// and appends the completed conversion to the session ledger. Identical
// requests within one session hit the cache instead of the provider.
func (s *ConversionService) Convert(ctx context.Context, amount float64, from, to model.CurrencyCode) (model.ConversionResult, error) {
	if err := validation.ValidateAmount(amount); err != nil {
		return model.ConversionResult{}, err
	}
	if err := validation.ValidateCurrency(from); err != nil {
		return model.ConversionResult{}, err
	}
	if err := validation.ValidateCurrency(to); err != nil {
		return model.ConversionResult{}, err
	}

	var result model.ConversionResult

	if from == to {
		// Equal currencies convert to themselves with no I/O and no
		// cache involvement.
		result = model.ConversionResult{
			Request:   model.ConversionRequest{Amount: amount, Source: from, Target: to},
			Result:    amount,
			Timestamp: time.Now().UTC(),
		}
	} else {
		key := fmt.Sprintf("latest|%g|%s|%s", amount, from, to)
		value, err := s.cache.Do(key, func() (any, error) {
			return s.client.FetchLatest(ctx, amount, from, to)
		})
		if err != nil {
			return model.ConversionResult{}, err
		}
		result = value.(model.ConversionResult)
	}

	if _, err := s.history.Append(renderHistoryEntry(result)); err != nil {
		return model.ConversionResult{}, err
	}

	return result, nil
}

// Series retrieves the historical rate series for a currency pair. The date
// range is validated before anything reaches the network; an empty series is
// the normal "no data for this period" result.
func (s *ConversionService) Series(ctx context.Context, start, end time.Time, from, to model.CurrencyCode) (model.RateSeries, error) {
	if err := validation.ValidateCurrency(from); err != nil {
		return nil, err
	}
	if err := validation.ValidateCurrency(to); err != nil {
		return nil, err
	}
	if err := validation.ValidateDateRange(start, end); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("series|%s|%s|%s|%s",
		start.Format(dateLayout), end.Format(dateLayout), from, to)

	value, err := s.cache.Do(key, func() (any, error) {
		return s.client.FetchSeries(ctx, start, end, from, to)
	})
	if err != nil {
		return nil, err
	}

	return value.(model.RateSeries), nil
}

// renderHistoryEntry produces the fixed textual ledger form of a result,
// e.g. "2024-05-01 10:30:00 | 5 EUR = 27.35 BRL".
func renderHistoryEntry(result model.ConversionResult) model.HistoryEntry {
	line := fmt.Sprintf("%s | %g %s = %.2f %s",
		result.Timestamp.Format(historyTimeLayout),
		result.Request.Amount,
		result.Request.Source,
		result.Result,
		result.Request.Target,
	)

	return model.HistoryEntry{
		Line:      line,
		Amount:    result.Request.Amount,
		Result:    result.Result,
		Source:    result.Request.Source,
		Target:    result.Request.Target,
		CreatedAt: result.Timestamp,
	}
}
