package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/campus/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) (*db.SQLiteUnitOfWork, func(page string) int) {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	count := func(page string) int {
		var n int
		require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM items WHERE page = ?`, page).Scan(&n))
		return n
	}
	return db.NewSQLiteUnitOfWork(database), count
}

func insertItem(ctx context.Context, tx db.DBTX, page, id string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO items (page, id, category, title, created_at) VALUES (?, ?, 'Core', 'Course', '2026-01-01T00:00:00Z')`,
		page, id)
	return err
}

func TestWithinTx_CommitOnSuccess(t *testing.T) {
	uow, count := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertItem(ctx, tx, "academic", "c1"); err != nil {
			return err
		}
		return insertItem(ctx, tx, "academic", "c2")
	})
	require.NoError(t, err)
	assert.Equal(t, 2, count("academic"))
}

func TestWithinTx_RollbackOnError(t *testing.T) {
	uow, count := newUoW(t)
	failure := errors.New("validation failed halfway")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertItem(ctx, tx, "academic", "c1"); err != nil {
			return err
		}
		return failure
	})
	require.ErrorIs(t, err, failure)
	assert.Equal(t, 0, count("academic"), "insert should be rolled back")
}

func TestWithinTx_RollbackOnConstraintViolation(t *testing.T) {
	uow, count := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := insertItem(ctx, tx, "fees", "f1"); err != nil {
			return err
		}
		return insertItem(ctx, tx, "fees", "f1")
	})
	require.Error(t, err)
	assert.Equal(t, 0, count("fees"))
}

func TestWithinTx_RollbackOnPanic(t *testing.T) {
	uow, count := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertItem(ctx, tx, "library", "b1")
			panic("boom")
		})
	})
	assert.Equal(t, 0, count("library"), "insert should be rolled back after panic")
}
