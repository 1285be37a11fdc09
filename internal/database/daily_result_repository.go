package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/typist/pkg/models"
)

// DailyResultRepository handles daily typing test results. Unlike the other
// sets these are saved globally: the frontend owns the whole table.
type DailyResultRepository struct {
	db *Database
}

// NewDailyResultRepository creates a new repository instance
func NewDailyResultRepository(db *Database) *DailyResultRepository {
	return &DailyResultRepository{db: db}
}

// GetAll returns every daily test result across all users
func (r *DailyResultRepository) GetAll() ([]models.DailyTestResult, error) {
	var items []models.DailyTestResult
	err := r.db.selectAll(&items, `
		SELECT user_id, date, wpm, accuracy, true_accuracy, duration, completed_at
		FROM daily_test_results
		ORDER BY date ASC, user_id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily results: %w", err)
	}
	return items, nil
}

// SaveAll replaces the entire table with items
func (r *DailyResultRepository) SaveAll(items []models.DailyTestResult) error {
	return r.db.WithTx(func(tx *sqlx.Tx) error {
		if _, err := tx.Exec("DELETE FROM daily_test_results"); err != nil {
			return wrapErr("failed to clear daily results", err)
		}
		for _, item := range items {
			_, err := tx.Exec(`
				INSERT INTO daily_test_results (
					user_id, date, wpm, accuracy, true_accuracy, duration, completed_at
				) VALUES (?, ?, ?, ?, ?, ?, ?)
			`, item.UserID, item.Date, item.Wpm, item.Accuracy,
				item.TrueAccuracy, item.Duration, item.CompletedAt)
			if err != nil {
				return wrapErr("failed to save daily result", err)
			}
		}
		return nil
	})
}

// ImportTx inserts one daily result within tx unless one exists for the
// same user and date
func (r *DailyResultRepository) ImportTx(tx *sqlx.Tx, item models.DailyTestResult) error {
	_, err := tx.Exec(`
		INSERT OR IGNORE INTO daily_test_results (
			user_id, date, wpm, accuracy, true_accuracy, duration, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, item.UserID, item.Date, item.Wpm, item.Accuracy,
		item.TrueAccuracy, item.Duration, item.CompletedAt)
	if err != nil {
		return wrapErr("failed to import daily result", err)
	}
	return nil
}
