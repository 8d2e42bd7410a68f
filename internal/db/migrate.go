package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// migrations holds the full schema, oldest statement first. Statements are
// idempotent (IF NOT EXISTS / tolerated duplicate-column errors) so the
// whole list re-runs on every open.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS trips (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS scheduled_items (
		id TEXT PRIMARY KEY,
		trip_id TEXT NOT NULL REFERENCES trips(id) ON DELETE CASCADE,
		kind TEXT NOT NULL CHECK (kind IN ('lodging', 'transportation', 'activity')),
		name TEXT NOT NULL,
		start_at TEXT NOT NULL,
		end_at TEXT NOT NULL,
		start_zone TEXT NOT NULL DEFAULT 'UTC',
		end_zone TEXT NOT NULL DEFAULT 'UTC',
		cost_amount REAL,
		cost_currency TEXT,
		transport_mode TEXT,
		transport_origin TEXT,
		transport_dest TEXT,
		lodging_address TEXT,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_items_trip ON scheduled_items(trip_id)`,
	`CREATE INDEX IF NOT EXISTS idx_items_start ON scheduled_items(trip_id, start_at)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
