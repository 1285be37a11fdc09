package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/typist/pkg/models"
)

// ActivityRepository handles per-day practice activity rows
type ActivityRepository struct {
	db *Database
}

// NewActivityRepository creates a new repository instance
func NewActivityRepository(db *Database) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// GetAllForUser returns every activity row for a user ordered by date
func (r *ActivityRepository) GetAllForUser(userID int64) ([]models.DailyActivity, error) {
	var items []models.DailyActivity
	err := r.db.selectAll(&items, `
		SELECT date, practice_time, characters, sessions
		FROM daily_activity
		WHERE user_id = ?
		ORDER BY date ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return items, nil
}

// SaveAll replaces the user's entire activity set with items
func (r *ActivityRepository) SaveAll(userID int64, items []models.DailyActivity) error {
	return r.db.WithTx(func(tx *sqlx.Tx) error {
		if _, err := tx.Exec("DELETE FROM daily_activity WHERE user_id = ?", userID); err != nil {
			return wrapErr("failed to clear activity", err)
		}
		for _, item := range items {
			_, err := tx.Exec(`
				INSERT INTO daily_activity (user_id, date, practice_time, characters, sessions)
				VALUES (?, ?, ?, ?, ?)
			`, userID, item.Date, item.PracticeTime, item.Characters, item.Sessions)
			if err != nil {
				return wrapErr("failed to save activity", err)
			}
		}
		return nil
	})
}

// DeleteAllForUser removes every activity row for a user
func (r *ActivityRepository) DeleteAllForUser(userID int64) error {
	if _, err := r.db.exec("DELETE FROM daily_activity WHERE user_id = ?", userID); err != nil {
		return wrapErr("failed to delete activity", err)
	}
	return nil
}

// ImportTx inserts one activity row within tx unless one exists for the
// same user and date
func (r *ActivityRepository) ImportTx(tx *sqlx.Tx, userID int64, item models.DailyActivity) error {
	_, err := tx.Exec(`
		INSERT OR IGNORE INTO daily_activity (user_id, date, practice_time, characters, sessions)
		VALUES (?, ?, ?, ?, ?)
	`, userID, item.Date, item.PracticeTime, item.Characters, item.Sessions)
	if err != nil {
		return wrapErr("failed to import activity", err)
	}
	return nil
}
