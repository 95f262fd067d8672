package store

import (
	"fmt"

	"go.uber.org/zap"
)

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	// Create the schema_version table if it does not exist.
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		db.log.Debug("applying migration", zap.Int("version", 1))
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS journal_entries (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id            TEXT NOT NULL,
			text               TEXT NOT NULL,
			created_at         TEXT NOT NULL,
			external_sentiment REAL
		)`,

		`CREATE TABLE IF NOT EXISTS mind_weather_scores (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id         TEXT NOT NULL,
			computed_on     TEXT NOT NULL,
			computed_at     TEXT NOT NULL,
			overall_score   REAL NOT NULL,
			burnout_risk    TEXT NOT NULL,
			trend_direction TEXT NOT NULL,
			payload         TEXT NOT NULL,
			UNIQUE (user_id, computed_on)
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_entries_user_created ON journal_entries(user_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_scores_user_computed ON mind_weather_scores(user_id, computed_at)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	// Set schema version.
	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
