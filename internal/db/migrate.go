package db

import (
	"database/sql"
	"fmt"
)

// migrations are idempotent and run in order on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS plans (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		document TEXT NOT NULL,
		locked_document TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_plans_updated_at ON plans(updated_at)`,
}

// Migrate brings the schema up to date.
func Migrate(database *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
