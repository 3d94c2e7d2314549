package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/campus/internal/db"
	"github.com/alexanderramin/campus/internal/domain"
)

// importedAtLayout has fixed-width fractional seconds so that imported_at
// sorts correctly as text.
const importedAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// SQLiteImportRepo records dataset imports.
type SQLiteImportRepo struct {
	db db.DBTX
}

func NewSQLiteImportRepo(conn db.DBTX) *SQLiteImportRepo {
	return &SQLiteImportRepo{db: conn}
}

func (r *SQLiteImportRepo) Create(ctx context.Context, rec *domain.ImportRecord) error {
	query := `INSERT INTO imports (id, source, format, item_count, warning_count, replaced, imported_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		rec.Source,
		rec.Format,
		rec.ItemCount,
		rec.WarningCount,
		boolToInt(rec.Replaced),
		rec.ImportedAt.UTC().Format(importedAtLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting import record: %w", err)
	}
	return nil
}

// ListRecent returns the newest imports first. A limit of 0 or less returns
// every record.
func (r *SQLiteImportRepo) ListRecent(ctx context.Context, limit int) ([]domain.ImportRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `SELECT id, source, format, item_count, warning_count, replaced, imported_at
		FROM imports ORDER BY imported_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing imports: %w", err)
	}
	defer rows.Close()

	var recs []domain.ImportRecord
	for rows.Next() {
		var rec domain.ImportRecord
		var replaced int
		var importedAt string
		if err := rows.Scan(&rec.ID, &rec.Source, &rec.Format, &rec.ItemCount,
			&rec.WarningCount, &replaced, &importedAt); err != nil {
			return nil, fmt.Errorf("scanning import row: %w", err)
		}
		rec.Replaced = intToBool(replaced)
		t, err := time.Parse(importedAtLayout, importedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing imported_at %q: %w", importedAt, err)
		}
		rec.ImportedAt = t
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating imports: %w", err)
	}
	return recs, nil
}
