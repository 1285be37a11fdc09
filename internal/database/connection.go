package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Database is the single storage handle shared by all repositories. SQLite
// supports one writer at a time, so every operation runs under the mutex.
type Database struct {
	mu sync.Mutex
	db *sqlx.DB
}

// Connect opens the database file, creating it and its parent directory if
// needed, and brings the schema up to date. A schema migration failure closes
// the connection and is returned as-is: the process must not run against a
// partially migrated store.
func Connect(path string) (*Database, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Cascade deletes depend on this pragma
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// SQLite doesn't support multiple writers
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &Database{db: db}
	if err := d.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}
	return d, nil
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	return d.db.Close()
}

// WithTx runs fn inside one transaction, holding the write lock for the
// duration. Any error from fn rolls the transaction back.
func (d *Database) WithTx(fn func(tx *sqlx.Tx) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	tx, err := d.db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (d *Database) get(dest interface{}, query string, args ...interface{}) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db.Get(dest, query, args...)
}

func (d *Database) selectAll(dest interface{}, query string, args ...interface{}) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db.Select(dest, query, args...)
}

func (d *Database) exec(query string, args ...interface{}) (sql.Result, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db.Exec(query, args...)
}
