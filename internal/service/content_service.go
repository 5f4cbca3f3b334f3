package service

import (
	"time"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/content"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/validation"
)

// ContentService serves the curiosity and tip lines shown with a conversion
type ContentService struct {
	selector *content.Selector
}

// NewContentService creates a new ContentService
func NewContentService(selector *content.Selector) *ContentService {
	return &ContentService{selector: selector}
}

// Curiosity returns the curiosity of the day for a currency. The same
// currency and day always yield the same line.
func (s *ContentService) Curiosity(currency model.CurrencyCode, day time.Time) (string, error) {
	if err := validation.ValidateCurrency(currency); err != nil {
		return "", err
	}
	return s.selector.CuriosityFor(currency, day), nil
}

// Tip returns a financial tip for a currency in the given language, which
// defaults to English when unrecognized. An empty pool yields "".
func (s *ContentService) Tip(currency model.CurrencyCode, language string) (string, error) {
	if err := validation.ValidateCurrency(currency); err != nil {
		return "", err
	}
	return s.selector.TipFor(currency, language), nil
}
