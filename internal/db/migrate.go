package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS items (
		page        TEXT NOT NULL,
		id          TEXT NOT NULL,
		category    TEXT NOT NULL,
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status      TEXT NOT NULL DEFAULT '',
		fields      TEXT NOT NULL DEFAULT '{}',
		numbers     TEXT NOT NULL DEFAULT '{}',
		position    INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		PRIMARY KEY (page, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_page_position ON items(page, position)`,
	`CREATE TABLE IF NOT EXISTS imports (
		id          TEXT PRIMARY KEY,
		source      TEXT NOT NULL,
		format      TEXT NOT NULL CHECK(format IN ('yaml','jsonc')),
		item_count  INTEGER NOT NULL DEFAULT 0,
		replaced    INTEGER NOT NULL DEFAULT 0,
		imported_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_imports_imported_at ON imports(imported_at)`,
	// warning_count came after the first imports schema.
	`ALTER TABLE imports ADD COLUMN warning_count INTEGER NOT NULL DEFAULT 0`,
}
