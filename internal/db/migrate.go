package db

import (
	"database/sql"
	"fmt"
	"strings"
)

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

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profile_drafts (
		id             TEXT PRIMARY KEY DEFAULT 'default',
		degree         TEXT NOT NULL DEFAULT '',
		gpa            TEXT NOT NULL DEFAULT '',
		major          TEXT NOT NULL DEFAULT '',
		budget_max     INTEGER NOT NULL DEFAULT 2500000,
		priority       TEXT NOT NULL DEFAULT 'High ROI',
		funding_source TEXT NOT NULL DEFAULT '',
		countries      TEXT NOT NULL DEFAULT '',
		target_intake  TEXT NOT NULL DEFAULT '',
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS submission_log (
		id              TEXT PRIMARY KEY,
		submitted_at    TEXT NOT NULL,
		degree          TEXT NOT NULL DEFAULT '',
		major           TEXT NOT NULL DEFAULT '',
		budget_lakhs    REAL NOT NULL DEFAULT 0,
		result_shape    TEXT NOT NULL DEFAULT '',
		option_count    INTEGER NOT NULL DEFAULT 0,
		top_country     TEXT NOT NULL DEFAULT '',
		failed          INTEGER NOT NULL DEFAULT 0,
		failure_reason  TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_submission_log_at ON submission_log(submitted_at)`,
}
