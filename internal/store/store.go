// Package store persists generated lesson plans and LLM call records in
// SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store provides access to the lesson-plan database.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for optimal single-user performance.
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

// migrate creates the schema if it does not exist.
func migrate(db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec schema: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS lesson_plans (
		id             TEXT PRIMARY KEY,
		topic          TEXT NOT NULL,
		subject        TEXT NOT NULL,
		class_level    TEXT NOT NULL,
		language       TEXT NOT NULL,
		duration_mins  INTEGER NOT NULL,
		num_sessions   INTEGER NOT NULL,
		formatted_text TEXT NOT NULL,
		links_json     TEXT NOT NULL DEFAULT '{}',
		created_at     TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS lesson_sessions (
		plan_id       TEXT NOT NULL REFERENCES lesson_plans(id) ON DELETE CASCADE,
		number        INTEGER NOT NULL,
		duration      TEXT NOT NULL,
		competency    TEXT NOT NULL,
		elo           TEXT NOT NULL,
		activities    TEXT NOT NULL,
		resources_tlm TEXT NOT NULL,
		worksheet_ref TEXT NOT NULL,
		assessment    TEXT NOT NULL,
		PRIMARY KEY (plan_id, number)
	)`,
	`CREATE TABLE IF NOT EXISTS worksheets (
		plan_id       TEXT NOT NULL REFERENCES lesson_plans(id) ON DELETE CASCADE,
		number        INTEGER NOT NULL,
		title         TEXT NOT NULL,
		objective     TEXT NOT NULL,
		duration      TEXT NOT NULL,
		content       TEXT NOT NULL,
		sections_json TEXT NOT NULL DEFAULT '{}',
		PRIMARY KEY (plan_id, number)
	)`,
	`CREATE TABLE IF NOT EXISTS llm_calls (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		provider      TEXT NOT NULL,
		model         TEXT NOT NULL,
		purpose       TEXT NOT NULL,
		latency_ms    INTEGER NOT NULL,
		success       INTEGER NOT NULL,
		input_tokens  INTEGER NOT NULL,
		output_tokens INTEGER NOT NULL,
		request_body  TEXT NOT NULL,
		response_body TEXT NOT NULL,
		error_message TEXT NOT NULL,
		created_at    TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_lesson_plans_created ON lesson_plans(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_llm_calls_created ON llm_calls(created_at)`,
}

// DefaultDBPath resolves the database file path in priority order:
// 1. LESSONFORGE_DB environment variable
// 2. $XDG_DATA_HOME/lessonforge/lessonforge.db
// 3. ~/.local/share/lessonforge/lessonforge.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("LESSONFORGE_DB"); p != "" {
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

	p := filepath.Join(dataHome, "lessonforge", "lessonforge.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
