package service

import (
	"io"
	"strings"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/csvrates"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

// RateTableQuery carries the caller-selected filter and ordering applied after
// a rate table loads. Load itself never filters or sorts.
type RateTableQuery struct {
	Filter string // currency substring, case-insensitive
	Sort   csvrates.SortKey
	Desc   bool
}

// RatesService loads offline rate tables and applies caller queries
type RatesService struct {
	loader *csvrates.Loader
}

// NewRatesService creates a new RatesService
func NewRatesService(loader *csvrates.Loader) *RatesService {
	return &RatesService{loader: loader}
}

// LoadDefault loads the well-known local rate file and applies the query.
// A missing file yields an empty table, not an error.
func (s *RatesService) LoadDefault(query RateTableQuery) ([]model.CsvRateRow, error) {
	rows, err := s.loader.LoadDefault()
	if err != nil {
		return nil, err
	}
	return applyQuery(rows, query), nil
}

// Load parses an uploaded rate table and applies the query.
func (s *RatesService) Load(r io.Reader, query RateTableQuery) ([]model.CsvRateRow, error) {
	rows, err := s.loader.Load(r)
	if err != nil {
		return nil, err
	}
	return applyQuery(rows, query), nil
}

func applyQuery(rows []model.CsvRateRow, query RateTableQuery) []model.CsvRateRow {
	if query.Filter != "" {
		needle := strings.ToUpper(query.Filter)
		rows = csvrates.Filter(rows, func(row model.CsvRateRow) bool {
			return strings.Contains(row.Currency, needle)
		})
	}
	if query.Sort != "" {
		rows = csvrates.Sort(rows, query.Sort, query.Desc)
	}
	return rows
}
