// Package repository provides data access to the in-memory session store.
package repository

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
)

// HistoryRepository is the bounded, append-only conversion ledger. Appends
// beyond the retention bound evict the oldest entries; entries are never
// mutated after append and there is no other removal operation.
type HistoryRepository struct {
	db    *sql.DB
	limit int

	mu  sync.Mutex
	seq int64
}

// NewHistoryRepository creates a ledger over the session store with the given
// retention bound. A non-positive limit falls back to 50.
func NewHistoryRepository(db *sql.DB, limit int) *HistoryRepository {
	if limit <= 0 {
		limit = 50
	}
	return &HistoryRepository{db: db, limit: limit}
}

// Limit returns the retention bound.
func (r *HistoryRepository) Limit() int {
	return r.limit
}

// Append records a completed conversion at the tail of the ledger and evicts
// entries beyond the retention bound, oldest first.
func (r *HistoryRepository) Append(entry model.HistoryEntry) (model.HistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	entry.ID = uuid.New().String()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.Exec(`
		INSERT INTO conversion_history (id, seq, amount, source, target, result, line, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		entry.ID,
		r.seq,
		entry.Amount,
		entry.Source.String(),
		entry.Target.String(),
		entry.Result,
		entry.Line,
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return model.HistoryEntry{}, fmt.Errorf("failed to append history entry: %w", err)
	}

	_, err = r.db.Exec(`
		DELETE FROM conversion_history
		WHERE seq NOT IN (
			SELECT seq FROM conversion_history ORDER BY seq DESC LIMIT ?
		)
	`, r.limit)
	if err != nil {
		return model.HistoryEntry{}, fmt.Errorf("failed to evict history entries: %w", err)
	}

	return entry, nil
}

// Recent returns up to n entries in reverse-append order (newest first). The
// retention bound caps the result regardless of n.
func (r *HistoryRepository) Recent(n int) ([]model.HistoryEntry, error) {
	if n <= 0 || n > r.limit {
		n = r.limit
	}

	rows, err := r.db.Query(`
		SELECT id, amount, source, target, result, line, created_at
		FROM conversion_history
		ORDER BY seq DESC
		LIMIT ?
	`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query conversion history: %w", err)
	}
	defer rows.Close()

	entries := make([]model.HistoryEntry, 0, n)
	for rows.Next() {
		var entry model.HistoryEntry
		var source, target, createdAt string

		err := rows.Scan(
			&entry.ID,
			&entry.Amount,
			&source,
			&target,
			&entry.Result,
			&entry.Line,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}

		entry.Source = model.CurrencyCode(source)
		entry.Target = model.CurrencyCode(target)
		entry.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse history timestamp: %w", err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read conversion history: %w", err)
	}

	return entries, nil
}
