package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent; ALTER TABLE
// "duplicate column name" errors are tolerated because the whole slice re-runs
// on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	// Single-row table holding the stable anonymous device-user identifier.
	`CREATE TABLE IF NOT EXISTS device_identity (
		id             TEXT PRIMARY KEY CHECK(id = 'default'),
		device_user_id TEXT NOT NULL,
		created_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS check_ins (
		id             TEXT PRIMARY KEY,
		device_user_id TEXT NOT NULL,
		date           TEXT NOT NULL,
		sleep_hours    REAL NOT NULL CHECK(sleep_hours BETWEEN 0 AND 12),
		stress         INTEGER NOT NULL CHECK(stress BETWEEN 1 AND 10),
		workload       INTEGER NOT NULL CHECK(workload BETWEEN 1 AND 10),
		mood           INTEGER NOT NULL CHECK(mood BETWEEN 1 AND 10),
		notes          TEXT NOT NULL DEFAULT '',
		burnout_score  INTEGER NOT NULL CHECK(burnout_score BETWEEN 0 AND 100),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL,
		UNIQUE(device_user_id, date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_check_ins_device_user ON check_ins(device_user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_check_ins_date ON check_ins(device_user_id, date)`,

	// Contacts are installation-global: no device_user_id column.
	`CREATE TABLE IF NOT EXISTS emergency_contacts (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		phone      TEXT NOT NULL DEFAULT '',
		email      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
}
