package testutil

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/remsodo/internal/db"
)

// FailingWriteUoW runs transactions whose writes all fail with Err, so tests
// can check that a store's read-modify-write leaves the old value in place.
type FailingWriteUoW struct {
	DB  *sql.DB
	Err error
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(ctx, failingWrites{DBTX: tx, err: u.Err}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingWrites struct {
	db.DBTX
	err error
}

func (f failingWrites) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, f.err
}
