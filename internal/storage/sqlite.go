package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/remsodo/internal/db"
)

// SQLiteStore keeps values in the local_storage table.
type SQLiteStore struct {
	db  db.DBTX
	uow db.UnitOfWork
}

// NewSQLiteStore returns a store over conn. uow scopes Update to one
// transaction; with a nil uow Update runs the read and write unguarded.
func NewSQLiteStore(conn db.DBTX, uow db.UnitOfWork) *SQLiteStore {
	return &SQLiteStore{db: conn, uow: uow}
}

func (s *SQLiteStore) Get(ctx context.Context, key string) (string, bool, error) {
	return get(ctx, s.db, key)
}

func (s *SQLiteStore) Set(ctx context.Context, key, value string) error {
	return set(ctx, s.db, key, value)
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM local_storage WHERE key = ?`, key); err != nil {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	// substr rather than LIKE: keys contain '_' and '%' is legal in emails.
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM local_storage WHERE substr(key, 1, length(?)) = ? ORDER BY key`,
		prefix, prefix)
	if err != nil {
		return nil, fmt.Errorf("listing keys %q: %w", prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scanning key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *SQLiteStore) Update(ctx context.Context, key string, fn UpdateFunc) error {
	if s.uow == nil {
		return update(ctx, s.db, key, fn)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return update(ctx, tx, key, fn)
	})
}

func update(ctx context.Context, q db.DBTX, key string, fn UpdateFunc) error {
	cur, ok, err := get(ctx, q, key)
	if err != nil {
		return err
	}
	next, err := fn(cur, ok)
	if errors.Is(err, ErrAbort) {
		return nil
	}
	if err != nil {
		return err
	}
	return set(ctx, q, key, next)
}

func get(ctx context.Context, q db.DBTX, key string) (string, bool, error) {
	var v string
	err := q.QueryRowContext(ctx, `SELECT value FROM local_storage WHERE key = ?`, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}
	return v, true, nil
}

func set(ctx context.Context, q db.DBTX, key, value string) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO local_storage (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
