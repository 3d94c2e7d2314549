package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/campus/internal/db"
)

// FailingUoW runs the callback in a real transaction but makes the Nth write
// (1-based) return Err. Reads are not counted. Used to check that a failed
// import leaves the store untouched.
type FailingUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error

	// Writes is the number of ExecContext calls seen by the last transaction.
	Writes int
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	w := &failingTx{DBTX: tx, uow: u}
	u.Writes = 0
	if err := fn(ctx, w); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	uow *FailingUoW
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.uow.Writes++
	if f.uow.Writes == f.uow.FailOn {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
