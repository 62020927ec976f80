// Package store persists the answer log. SQLite (pure Go driver, no
// CGO) is the default backing for the single-user CLI; Postgres via pgx
// serves the shared server deployment.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Database drivers, selected by name at Open time.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver names accepted by Open.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// Store wraps the answer-log database.
type Store struct {
	db     *sql.DB
	driver string
}

// Open connects to the database named by driver and dsn, applies the
// SQLite pragmas where relevant, and creates the schema.
func Open(driver, dsn string) (*Store, error) {
	switch driver {
	case DriverSQLite, DriverPostgres:
	default:
		return nil, fmt.Errorf("unknown driver %q (want %q or %q)", driver, DriverSQLite, DriverPostgres)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if driver == DriverSQLite {
		if err := applyPragmas(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply pragmas: %w", err)
		}
	}

	s := &Store{db: db, driver: driver}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS answers (
	id          TEXT PRIMARY KEY,
	category    TEXT NOT NULL,
	pattern     TEXT NOT NULL DEFAULT '',
	difficulty  TEXT NOT NULL,
	target      TEXT NOT NULL,
	correct     BOOLEAN NOT NULL,
	answered_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_answers_category ON answers (category);
`

func (s *Store) migrate() error {
	_, err := s.db.Exec(schema)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. INFINITEDRILL_DB environment variable
// 2. $XDG_DATA_HOME/infinitedrill/drill.db
// 3. ~/.local/share/infinitedrill/drill.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("INFINITEDRILL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "infinitedrill", "drill.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
