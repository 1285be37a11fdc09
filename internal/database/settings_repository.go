package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// SettingsRepository handles the per-user settings blob. The blob is opaque
// to this layer; it is stored and returned verbatim.
type SettingsRepository struct {
	db *Database
}

// NewSettingsRepository creates a new repository instance
func NewSettingsRepository(db *Database) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the stored settings blob, or nil when the user never saved one
func (r *SettingsRepository) Get(userID int64) (*string, error) {
	var blob string
	err := r.db.get(&blob, "SELECT settings_json FROM settings WHERE user_id = ?", userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return &blob, nil
}

// Save stores the settings blob, replacing any previous value
func (r *SettingsRepository) Save(userID int64, settingsJSON string) error {
	_, err := r.db.exec(`
		INSERT INTO settings (user_id, settings_json)
		VALUES (?, ?)
		ON CONFLICT(user_id) DO UPDATE SET settings_json = excluded.settings_json
	`, userID, settingsJSON)
	if err != nil {
		return wrapErr("failed to save settings", err)
	}
	return nil
}

// ImportTx inserts a settings row within tx unless the user already has one
func (r *SettingsRepository) ImportTx(tx *sqlx.Tx, userID int64, settingsJSON string) error {
	_, err := tx.Exec(`
		INSERT OR IGNORE INTO settings (user_id, settings_json)
		VALUES (?, ?)
	`, userID, settingsJSON)
	if err != nil {
		return wrapErr("failed to import settings", err)
	}
	return nil
}
