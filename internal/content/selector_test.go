package content

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/testutil"
)

func TestSelector_CuriosityFor(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("same currency and day always pick the same line", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "curiosidades.txt", testutil.CuriosityFixture)
		selector := NewSelector(path)

		first := selector.CuriosityFor(model.USD, day)
		if first == CuriosityUnavailable {
			t.Fatal("Expected a curiosity line, got the unavailable sentinel")
		}
		for i := 0; i < 5; i++ {
			if got := selector.CuriosityFor(model.USD, day); got != first {
				t.Errorf("Expected stable pick within one day, got %q then %q", first, got)
			}
		}
	})

	t.Run("different days may rotate across the pool", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "curiosidades.txt", testutil.CuriosityFixture)
		selector := NewSelector(path)

		seen := map[string]bool{}
		for i := 0; i < 30; i++ {
			seen[selector.CuriosityFor(model.USD, day.AddDate(0, 0, i))] = true
		}
		// The USD pool has two lines; a month of days should hit both.
		if len(seen) < 2 {
			t.Errorf("Expected the day seed to reach more than one line, saw %d", len(seen))
		}
	})

	t.Run("lines of other currencies are never selected", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "curiosidades.txt", testutil.CuriosityFixture)
		selector := NewSelector(path)

		for i := 0; i < 10; i++ {
			line := selector.CuriosityFor(model.BRL, day.AddDate(0, 0, i))
			if strings.Contains(line, "dólar") || strings.Contains(line, "euro") {
				t.Errorf("BRL pick leaked another currency's line: %q", line)
			}
		}
	})

	t.Run("missing resource file yields the sentinel, not an error", func(t *testing.T) {
		selector := NewSelector(filepath.Join(t.TempDir(), "missing.txt"))

		if got := selector.CuriosityFor(model.USD, day); got != CuriosityUnavailable {
			t.Errorf("Expected sentinel, got %q", got)
		}
	})

	t.Run("empty pool for a currency yields the sentinel", func(t *testing.T) {
		path := testutil.WriteTempFile(t, "curiosidades.txt", "EUR: só euro aqui.\n\n")
		selector := NewSelector(path)

		if got := selector.CuriosityFor(model.USD, day); got != CuriosityUnavailable {
			t.Errorf("Expected sentinel for empty pool, got %q", got)
		}
	})
}

func TestSelector_TipFor(t *testing.T) {
	selector := NewSelector("")

	t.Run("returns a tip from the currency and language pool", func(t *testing.T) {
		tip := selector.TipFor(model.BRL, "pt")
		if tip == "" {
			t.Fatal("Expected a tip, got empty string")
		}
		found := false
		for _, candidate := range tips[model.BRL][LangPT] {
			if candidate == tip {
				found = true
			}
		}
		if !found {
			t.Errorf("Tip %q is not from the BRL/pt pool", tip)
		}
	})

	t.Run("unrecognized language falls back to English", func(t *testing.T) {
		tip := selector.TipFor(model.USD, "de")
		found := false
		for _, candidate := range tips[model.USD][LangEN] {
			if candidate == tip {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected an English tip, got %q", tip)
		}
	})

	t.Run("region-qualified tags map onto their pool", func(t *testing.T) {
		tip := selector.TipFor(model.EUR, "pt_BR")
		found := false
		for _, candidate := range tips[model.EUR][LangPT] {
			if candidate == tip {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected a Portuguese tip for pt_BR, got %q", tip)
		}
	})
}

func TestNormalizeLanguage(t *testing.T) {
	cases := map[string]string{
		"pt":    LangPT,
		"pt_BR": LangPT,
		"es":    LangES,
		"es-AR": LangES,
		"en":    LangEN,
		"fr":    LangEN,
		"":      LangEN,
	}

	for input, want := range cases {
		if got := NormalizeLanguage(input); got != want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", input, got, want)
		}
	}
}
