package database

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// migration is one forward-only schema step. Steps are additive only.
type migration struct {
	version int
	apply   func(tx *sqlx.Tx) error
}

var migrations = []migration{
	{version: 1, apply: createBaseSchema},
	{version: 2, apply: createDailyIndexes},
}

// CurrentVersion returns the highest applied schema version, 0 for a fresh
// database.
func (d *Database) CurrentVersion() (int, error) {
	var version int
	err := d.get(&version, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// ensureSchema applies every not-yet-applied migration in ascending version
// order, each inside its own transaction, recording the version in the
// schema_version ledger. Safe to call on every start.
func (d *Database) ensureSchema() error {
	if _, err := d.exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	current, err := d.CurrentVersion()
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		err := d.WithTx(func(tx *sqlx.Tx) error {
			if err := m.apply(tx); err != nil {
				return err
			}
			_, err := tx.Exec(
				"INSERT INTO schema_version (version, applied_at) VALUES (?, ?)",
				m.version, time.Now().UTC().Format(time.RFC3339),
			)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to apply schema version %d: %w", m.version, err)
		}
	}
	return nil
}

// createBaseSchema is version 1: the full relational schema. Every child
// table cascades from users, making user deletion remove all owned rows.
func createBaseSchema(tx *sqlx.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			avatar TEXT NOT NULL,
			created_at TEXT NOT NULL,
			last_active_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			settings_json TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_stats (
			user_id INTEGER PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			total_practice_time INTEGER NOT NULL DEFAULT 0,
			total_words_typed INTEGER NOT NULL DEFAULT 0,
			average_wpm REAL NOT NULL DEFAULT 0,
			average_accuracy REAL NOT NULL DEFAULT 0,
			average_true_accuracy REAL NOT NULL DEFAULT 0,
			total_keystrokes INTEGER NOT NULL DEFAULT 0,
			total_backspaces INTEGER NOT NULL DEFAULT 0,
			total_correct_keystrokes INTEGER NOT NULL DEFAULT 0,
			lessons_completed INTEGER NOT NULL DEFAULT 0,
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			last_practice_date TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS problem_keys (
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			key_char TEXT NOT NULL,
			error_count INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, key_char)
		)`,
		`CREATE TABLE IF NOT EXISTS lesson_progress (
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			lesson_id TEXT NOT NULL,
			completed_tasks INTEGER NOT NULL DEFAULT 0,
			total_tasks INTEGER NOT NULL DEFAULT 0,
			best_wpm REAL NOT NULL DEFAULT 0,
			average_accuracy REAL NOT NULL DEFAULT 0,
			last_task_index INTEGER,
			task_results_json TEXT NOT NULL DEFAULT '[]',
			PRIMARY KEY (user_id, lesson_id)
		)`,
		`CREATE TABLE IF NOT EXISTS course_progress (
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			course_id TEXT NOT NULL,
			current_stage_id TEXT,
			completed_stages_json TEXT NOT NULL DEFAULT '[]',
			skipped_stages_json TEXT NOT NULL DEFAULT '[]',
			enrolled_at TEXT NOT NULL,
			completed_at TEXT,
			PRIMARY KEY (user_id, course_id)
		)`,
		`CREATE TABLE IF NOT EXISTS custom_snippets (
			id TEXT PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			name TEXT NOT NULL,
			content TEXT NOT NULL,
			language TEXT,
			mode TEXT NOT NULL,
			created_at TEXT NOT NULL,
			practice_count INTEGER NOT NULL DEFAULT 0,
			best_wpm REAL,
			best_accuracy REAL
		)`,
		`CREATE TABLE IF NOT EXISTS daily_test_results (
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date TEXT NOT NULL,
			wpm REAL NOT NULL DEFAULT 0,
			accuracy REAL NOT NULL DEFAULT 0,
			true_accuracy REAL NOT NULL DEFAULT 0,
			duration INTEGER NOT NULL DEFAULT 0,
			completed_at INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS daily_activity (
			user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			date TEXT NOT NULL,
			practice_time INTEGER NOT NULL DEFAULT 0,
			characters INTEGER NOT NULL DEFAULT 0,
			sessions INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (user_id, date)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_custom_snippets_user ON custom_snippets(user_id)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// createDailyIndexes is version 2: date-ordered read indexes for the daily
// tables.
func createDailyIndexes(tx *sqlx.Tx) error {
	stmts := []string{
		`CREATE INDEX IF NOT EXISTS idx_daily_test_results_date ON daily_test_results(date)`,
		`CREATE INDEX IF NOT EXISTS idx_daily_activity_date ON daily_activity(date)`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
