package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/repstreak/internal/db"
)

// NewTestDB opens a fresh in-memory journal that is closed when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenJournal()
	if err != nil {
		t.Fatalf("failed to open test journal: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

// NewTestUoW creates a UnitOfWork backed by the given test database.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
