package db

import (
	"database/sql"
	"fmt"
)

// Migrate creates the journal schema. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS session_records (
		seq          INTEGER PRIMARY KEY AUTOINCREMENT,
		id           TEXT NOT NULL UNIQUE,
		session_date TEXT NOT NULL,
		duration_min INTEGER NOT NULL CHECK(duration_min >= 1),
		category     TEXT NOT NULL,
		created_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_session_records_category ON session_records(category)`,
	`CREATE INDEX IF NOT EXISTS idx_session_records_date ON session_records(session_date)`,
}
