package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/campus/internal/db"
	"github.com/alexanderramin/campus/internal/domain"
)

const itemColumns = `page, id, category, title, description, status, fields, numbers, position`

// SQLiteItemRepo implements ItemRepo using a SQLite database.
type SQLiteItemRepo struct {
	db db.DBTX
}

// NewSQLiteItemRepo creates a new SQLiteItemRepo. conn may be a *sql.DB or
// a transaction handed out by a UnitOfWork.
func NewSQLiteItemRepo(conn db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: conn}
}

func (r *SQLiteItemRepo) Create(ctx context.Context, it *domain.Item) error {
	fields, err := encodeMap(it.Fields)
	if err != nil {
		return fmt.Errorf("item %s: %w", it.ID, err)
	}
	numbers, err := encodeMap(it.Numbers)
	if err != nil {
		return fmt.Errorf("item %s: %w", it.ID, err)
	}

	query := `INSERT INTO items (` + itemColumns + `, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		it.Page,
		it.ID,
		it.Category,
		it.Title,
		it.Description,
		it.Status,
		fields,
		numbers,
		it.Position,
		nowUTC(),
	)
	if err != nil {
		return fmt.Errorf("inserting item %s/%s: %w", it.Page, it.ID, err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, page, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE page = ? AND id = ?`
	row := r.db.QueryRowContext(ctx, query, page, id)
	it, err := scanItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("item %s/%s: %w", page, id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning item: %w", err)
	}
	return &it, nil
}

func (r *SQLiteItemRepo) ListByPage(ctx context.Context, page string) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE page = ? ORDER BY position, created_at, id`
	rows, err := r.db.QueryContext(ctx, query, page)
	if err != nil {
		return nil, fmt.Errorf("listing items by page: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item row: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

func (r *SQLiteItemRepo) CountByPage(ctx context.Context) ([]PageCount, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT page, COUNT(*) FROM items GROUP BY page ORDER BY page`)
	if err != nil {
		return nil, fmt.Errorf("counting items by page: %w", err)
	}
	defer rows.Close()

	var counts []PageCount
	for rows.Next() {
		var pc PageCount
		if err := rows.Scan(&pc.Page, &pc.Count); err != nil {
			return nil, fmt.Errorf("scanning page count: %w", err)
		}
		counts = append(counts, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating page counts: %w", err)
	}
	return counts, nil
}

// NextPosition returns the position that appends an item after every stored
// item of the page.
func (r *SQLiteItemRepo) NextPosition(ctx context.Context, page string) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(position), -1) + 1 FROM items WHERE page = ?`, page).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("reading next position for %s: %w", page, err)
	}
	return next, nil
}

func (r *SQLiteItemRepo) DeleteByPage(ctx context.Context, page string) (int, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE page = ?`, page)
	if err != nil {
		return 0, fmt.Errorf("deleting items of %s: %w", page, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted items of %s: %w", page, err)
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(s rowScanner) (domain.Item, error) {
	var it domain.Item
	var fieldsJSON, numbersJSON string
	err := s.Scan(
		&it.Page, &it.ID, &it.Category, &it.Title, &it.Description, &it.Status,
		&fieldsJSON, &numbersJSON, &it.Position,
	)
	if err != nil {
		return domain.Item{}, err
	}
	if it.Fields, err = decodeMap[string](fieldsJSON); err != nil {
		return domain.Item{}, fmt.Errorf("item %s/%s fields: %w", it.Page, it.ID, err)
	}
	if it.Numbers, err = decodeMap[float64](numbersJSON); err != nil {
		return domain.Item{}, fmt.Errorf("item %s/%s numbers: %w", it.Page, it.ID, err)
	}
	return it, nil
}
