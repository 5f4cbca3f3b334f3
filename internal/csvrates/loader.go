// Package csvrates loads tabular rate files with heuristic delimiter and
// column detection. Row-level coercion failures are data cleaning, not errors:
// bad rows are dropped and the rest of the file still loads.
package csvrates

import (
	"encoding/csv"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

// Header names recognized for the currency and rate columns, matched
// case-insensitively. Anything else falls back to positional columns 0 and 1.
var (
	currencyHeaders = map[string]bool{"moeda": true, "par": true, "moneda": true, "currency": true}
	rateHeaders     = map[string]bool{"taxa": true, "cambio": true, "rate": true}
)

// SortKey selects the column a caller wants the rows ordered by.
type SortKey string

// Supported sort keys.
const (
	SortByCurrency SortKey = "currency"
	SortByRate     SortKey = "rate"
)

// Loader reads rate tables from uploaded buffers or a well-known local file.
type Loader struct {
	defaultPath string
}

// NewLoader creates a Loader whose LoadDefault reads from defaultPath.
func NewLoader(defaultPath string) *Loader {
	return &Loader{defaultPath: defaultPath}
}

// LoadDefault loads the well-known local rate file. A missing file is the
// normal "ready, waiting for input" state and yields an empty slice, nil error.
func (l *Loader) LoadDefault() ([]model.CsvRateRow, error) {
	return l.LoadFile(l.defaultPath)
}

// LoadFile loads a rate table from path. Absent files yield an empty slice.
func (l *Loader) LoadFile(path string) ([]model.CsvRateRow, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.CsvRateRow{}, nil
		}
		return nil, err
	}
	defer f.Close()
	return l.Load(f)
}

// Load reads a rate table from r, auto-detecting the delimiter and the
// currency/rate columns. Output preserves source row order after filtering.
func (l *Loader) Load(r io.Reader) ([]model.CsvRateRow, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	content := string(data)
	if strings.TrimSpace(content) == "" {
		return []model.CsvRateRow{}, nil
	}

	reader := csv.NewReader(strings.NewReader(content))
	reader.Comma = detectDelimiter(content)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return []model.CsvRateRow{}, nil
	}

	currencyCol, rateCol, hasHeader := detectColumns(records[0])
	if hasHeader {
		records = records[1:]
	}

	rows := make([]model.CsvRateRow, 0, len(records))
	for _, record := range records {
		if len(record) <= currencyCol || len(record) <= rateCol {
			continue
		}
		rate, err := coerceRate(record[rateCol])
		if err != nil {
			// Unparsable rate: drop the row, keep loading.
			continue
		}
		currency := strings.ToUpper(strings.TrimSpace(record[currencyCol]))
		if currency == "" {
			continue
		}
		rows = append(rows, model.CsvRateRow{Currency: currency, Rate: rate})
	}

	return rows, nil
}

// Filter returns the rows for which keep returns true, preserving order.
func Filter(rows []model.CsvRateRow, keep func(model.CsvRateRow) bool) []model.CsvRateRow {
	filtered := make([]model.CsvRateRow, 0, len(rows))
	for _, row := range rows {
		if keep(row) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// Sort orders rows by the given key, ascending unless desc is set. The input
// slice is not modified.
func Sort(rows []model.CsvRateRow, key SortKey, desc bool) []model.CsvRateRow {
	sorted := make([]model.CsvRateRow, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		var less bool
		if key == SortByRate {
			less = sorted[i].Rate < sorted[j].Rate
		} else {
			less = sorted[i].Currency < sorted[j].Currency
		}
		if desc {
			return !less
		}
		return less
	})

	return sorted
}

// detectDelimiter probes the first line for the more frequent of the common
// candidate delimiters.
func detectDelimiter(content string) rune {
	firstLine := content
	if idx := strings.IndexByte(content, '\n'); idx >= 0 {
		firstLine = content[:idx]
	}
	if strings.Count(firstLine, ";") > strings.Count(firstLine, ",") {
		return ';'
	}
	return ','
}

// detectColumns identifies the currency and rate columns from a header row.
// When no recognized header name appears, the first row is treated as data and
// columns 0 and 1 are used positionally.
func detectColumns(header []string) (currencyCol, rateCol int, hasHeader bool) {
	currencyCol, rateCol = 0, 1

	foundCurrency, foundRate := false, false
	for i, field := range header {
		name := strings.ToLower(strings.TrimSpace(field))
		switch {
		case currencyHeaders[name] && !foundCurrency:
			currencyCol = i
			foundCurrency = true
		case rateHeaders[name] && !foundRate:
			rateCol = i
			foundRate = true
		}
	}

	return currencyCol, rateCol, foundCurrency || foundRate
}

// coerceRate parses a rate cell, tolerating a decimal comma ("1,10").
func coerceRate(raw string) (float64, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	return strconv.ParseFloat(cleaned, 64)
}
