package domain

import "time"

// ImportRecord is one dataset load into the SQLite store.
type ImportRecord struct {
	ID           string
	Source       string
	Format       string
	ItemCount    int
	WarningCount int
	Replaced     bool
	ImportedAt   time.Time
}
