package model

import "time"

// HistoryEntry is a completed conversion rendered to its fixed textual form
// and retained in the session ledger. Entries are never mutated after append.
type HistoryEntry struct {
	ID        string       `json:"id"`
	Line      string       `json:"line"`
	Amount    float64      `json:"amount"`
	Result    float64      `json:"result"`
	Source    CurrencyCode `json:"source"`
	Target    CurrencyCode `json:"target"`
	CreatedAt time.Time    `json:"created_at"`
}
