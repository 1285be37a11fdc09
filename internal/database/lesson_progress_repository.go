package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/typist/pkg/models"
)

// LessonProgressRepository handles per-lesson progress rows
type LessonProgressRepository struct {
	db *Database
}

// NewLessonProgressRepository creates a new repository instance
func NewLessonProgressRepository(db *Database) *LessonProgressRepository {
	return &LessonProgressRepository{db: db}
}

// GetAllForUser returns every lesson progress row for a user
func (r *LessonProgressRepository) GetAllForUser(userID int64) ([]models.LessonProgress, error) {
	var items []models.LessonProgress
	err := r.db.selectAll(&items, `
		SELECT lesson_id, completed_tasks, total_tasks, best_wpm,
		       average_accuracy, last_task_index, task_results_json
		FROM lesson_progress
		WHERE user_id = ?
		ORDER BY lesson_id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson progress: %w", err)
	}
	return items, nil
}

// SaveAll replaces the user's entire lesson progress set with items. The
// caller always supplies the full authoritative set; rows it omits are gone.
func (r *LessonProgressRepository) SaveAll(userID int64, items []models.LessonProgress) error {
	return r.db.WithTx(func(tx *sqlx.Tx) error {
		if _, err := tx.Exec("DELETE FROM lesson_progress WHERE user_id = ?", userID); err != nil {
			return wrapErr("failed to clear lesson progress", err)
		}
		for _, item := range items {
			_, err := tx.Exec(`
				INSERT INTO lesson_progress (
					user_id, lesson_id, completed_tasks, total_tasks,
					best_wpm, average_accuracy, last_task_index, task_results_json
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			`, userID, item.LessonID, item.CompletedTasks, item.TotalTasks,
				item.BestWpm, item.AverageAccuracy, item.LastTaskIndex, item.TaskResultsJSON)
			if err != nil {
				return wrapErr("failed to save lesson progress", err)
			}
		}
		return nil
	})
}

// ImportTx inserts one lesson progress row within tx unless it exists
func (r *LessonProgressRepository) ImportTx(tx *sqlx.Tx, userID int64, item models.LessonProgress) error {
	_, err := tx.Exec(`
		INSERT OR IGNORE INTO lesson_progress (
			user_id, lesson_id, completed_tasks, total_tasks,
			best_wpm, average_accuracy, last_task_index, task_results_json
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, userID, item.LessonID, item.CompletedTasks, item.TotalTasks,
		item.BestWpm, item.AverageAccuracy, item.LastTaskIndex, item.TaskResultsJSON)
	if err != nil {
		return wrapErr("failed to import lesson progress", err)
	}
	return nil
}
