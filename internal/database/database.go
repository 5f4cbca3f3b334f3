package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver
)

// OpenSession opens the in-memory SQLite store holding session state (the
// conversion ledger). The store lives exactly as long as the process; nothing
// is ever persisted to disk.
func OpenSession() (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	// The store must behave as one logical database, not one per connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping session store: %w", err)
	}

	if err := createSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}

// HealthCheck performs a simple health check on the session store
func HealthCheck(db *sql.DB) error {
	return db.Ping()
}

// createSchema creates the session tables. The store is ephemeral, so schema
// setup happens at open rather than through migrations.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS conversion_history (
			id VARCHAR(36) NOT NULL PRIMARY KEY,
			seq INTEGER NOT NULL,
			amount FLOAT NOT NULL,
			source VARCHAR(3) NOT NULL,
			target VARCHAR(3) NOT NULL,
			result FLOAT NOT NULL,
			line TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_conversion_history_seq ON conversion_history(seq);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create session schema: %w", err)
	}

	return nil
}
