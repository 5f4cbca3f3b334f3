package testutil

import (
	"database/sql"
	"testing"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/database"
)

// SetupSessionDB creates an in-memory session store for testing.
// The store is automatically closed when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupSessionDB(t)
//	    // db is ready to use with schema created
//	}
func SetupSessionDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.OpenSession()
	if err != nil {
		t.Fatalf("Failed to open test session store: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
