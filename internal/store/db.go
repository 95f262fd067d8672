// Package store provides SQLite persistence for journal entries and computed
// mind-weather scores.
package store

import (
	"database/sql"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

// DB wraps a sql.DB connection to the mindweather SQLite database.
type DB struct {
	conn *sql.DB
	log  *zap.Logger
}

// Option configures a DB.
type Option func(*DB)

// WithLogger attaches a logger for migration and write diagnostics.
func WithLogger(log *zap.Logger) Option {
	return func(db *DB) {
		if log != nil {
			db.log = log
		}
	}
}

// Open opens or creates the SQLite database at the given path.
// It creates the parent directory if it does not exist.
func Open(dbPath string, opts ...Option) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", fileDSN(dbPath))
	if err != nil {
		return nil, err
	}

	return initialize(conn, opts)
}

// fileDSN applies the connection pragmas through the DSN so that every pooled
// connection gets them, not only the first. busy_timeout comes first so the
// WAL switch itself waits on a locked file.
func fileDSN(dbPath string) string {
	return dbPath + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
}

// OpenInMemory opens an in-memory SQLite database, useful for testing.
func OpenInMemory(opts ...Option) (*DB, error) {
	conn, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	// Each pooled connection would get its own empty in-memory database.
	conn.SetMaxOpenConns(1)

	return initialize(conn, opts)
}

func initialize(conn *sql.DB, opts []Option) (*DB, error) {
	db := &DB{conn: conn, log: zap.NewNop()}
	for _, opt := range opts {
		opt(db)
	}

	// Run migrations on open.
	if err := db.Migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}
