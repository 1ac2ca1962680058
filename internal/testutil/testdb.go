package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/remsodo/internal/db"
	"github.com/alexanderramin/remsodo/internal/storage"
)

// NewTestDB opens a migrated in-memory SQLite database closed at test end.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

// NewTestStore returns a SQLite-backed store over a fresh in-memory database.
func NewTestStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	database := NewTestDB(t)
	return storage.NewSQLiteStore(database, db.NewSQLiteUnitOfWork(database))
}
