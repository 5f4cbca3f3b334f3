// Package content selects the curiosity and tip lines shown next to a
// conversion result. Curiosity selection is stable for a given currency and
// calendar day; tips are free to vary between calls.
package content

import (
	"bufio"
	"hash/fnv"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

// CuriosityUnavailable is returned when the curiosity resource is missing or
// holds no lines for the requested currency. It is a sentinel value, never an
// error: missing content must not break a conversion.
const CuriosityUnavailable = "⚠️ Curiosidade não disponível."

const dayLayout = "2006-01-02"

// Selector picks curiosity and tip lines for a currency.
type Selector struct {
	curiosityFile string
}

// NewSelector creates a Selector reading curiosities from curiosityFile, a
// newline-delimited file of "CODE: text" lines.
func NewSelector(curiosityFile string) *Selector {
	return &Selector{curiosityFile: curiosityFile}
}

// CuriosityFor returns the curiosity of the day for a currency. The pick is
// seeded by a hash of the currency code and the calendar day, so repeated
// renders within one day return the same line while a new day may rotate it.
func (s *Selector) CuriosityFor(currency model.CurrencyCode, day time.Time) string {
	pool, err := s.loadPool(currency)
	if err != nil || len(pool) == 0 {
		return CuriosityUnavailable
	}

	h := fnv.New64a()
	h.Write([]byte(currency.String()))
	h.Write([]byte(day.Format(dayLayout)))
	index := h.Sum64() % uint64(len(pool))

	return pool[index]
}

// TipFor returns a financial tip for a currency in the given language. The
// pick is intentionally not deterministic; an empty pool yields "".
func (s *Selector) TipFor(currency model.CurrencyCode, language string) string {
	byLanguage, ok := tips[currency]
	if !ok {
		return ""
	}
	pool, ok := byLanguage[NormalizeLanguage(language)]
	if !ok || len(pool) == 0 {
		return ""
	}
	return pool[rand.Intn(len(pool))]
}

// loadPool reads the curiosity lines for one currency. Lines look like
// "USD: some fact"; blank lines and other currencies' lines are skipped.
func (s *Selector) loadPool(currency model.CurrencyCode) ([]string, error) {
	f, err := os.Open(s.curiosityFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	prefix := currency.String() + ":"
	var pool []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, prefix) {
			continue
		}
		text := strings.TrimSpace(strings.TrimPrefix(line, prefix))
		if text != "" {
			pool = append(pool, text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return pool, nil
}
