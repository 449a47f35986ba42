package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database that disappears when closed.
const MemoryDSN = ":memory:"

// OpenJournal opens the in-memory session journal and applies the schema.
//
// Every connection to ":memory:" gets its own empty database, so the pool is
// pinned to a single connection for the lifetime of the handle.
func OpenJournal() (*sql.DB, error) {
	db, err := sql.Open("sqlite", MemoryDSN)
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
