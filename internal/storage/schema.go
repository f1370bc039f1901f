package storage

import (
	"database/sql"
	"fmt"
)

const migration001 = `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS solves (
	solve_id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	scramble TEXT NOT NULL,
	solution TEXT NOT NULL,
	solver TEXT NOT NULL,
	htm INTEGER NOT NULL,
	qtm INTEGER NOT NULL,
	active_ms INTEGER NOT NULL,
	tps REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_solves_created_at ON solves(created_at);

INSERT INTO schema_version (version, applied_at) VALUES (1, datetime('now'));
`

// migrations is an ordered list of migration SQL statements.
var migrations = []struct {
	version int
	sql     string
}{
	{1, migration001},
}

// applyMigrations applies all pending migrations.
func applyMigrations(db *sql.DB) error {
	currentVersion := 0

	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type='table' AND name='schema_version'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to check schema version table: %w", err)
	}

	if count > 0 {
		err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := db.Exec(m.sql); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.version, err)
		}
	}

	return nil
}
