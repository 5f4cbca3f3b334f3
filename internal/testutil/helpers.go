// Package testutil provides shared helpers for tests: an in-memory session
// store, a mock rate client and small file fixtures.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTempFile writes content to a file inside a per-test temp directory and
// returns its path. The file disappears with the test's temp dir.
func WriteTempFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write temp file %s: %v", name, err)
	}
	return path
}

// CuriosityFixture is a small curiosity resource with two lines per currency.
const CuriosityFixture = `USD: O dólar americano é a moeda de reserva mais usada no mundo.
USD: As notas de dólar são feitas de 75% algodão e 25% linho.

EUR: O euro é usado oficialmente por 20 países da União Europeia.
EUR: As moedas de euro têm uma face comum e uma face nacional.

BRL: O real foi introduzido em 1994 pelo Plano Real.
BRL: O Brasil já teve oito moedas diferentes desde 1942.
`
