package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/typist/pkg/models"
)

// CourseProgressRepository handles per-course progress rows
type CourseProgressRepository struct {
	db *Database
}

// NewCourseProgressRepository creates a new repository instance
func NewCourseProgressRepository(db *Database) *CourseProgressRepository {
	return &CourseProgressRepository{db: db}
}

// GetAllForUser returns every course progress row for a user
func (r *CourseProgressRepository) GetAllForUser(userID int64) ([]models.CourseProgress, error) {
	var items []models.CourseProgress
	err := r.db.selectAll(&items, `
		SELECT course_id, current_stage_id, completed_stages_json,
		       skipped_stages_json, enrolled_at, completed_at
		FROM course_progress
		WHERE user_id = ?
		ORDER BY course_id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get course progress: %w", err)
	}
	return items, nil
}

// SaveAll replaces the user's entire course progress set with items
func (r *CourseProgressRepository) SaveAll(userID int64, items []models.CourseProgress) error {
	return r.db.WithTx(func(tx *sqlx.Tx) error {
		if _, err := tx.Exec("DELETE FROM course_progress WHERE user_id = ?", userID); err != nil {
			return wrapErr("failed to clear course progress", err)
		}
		for _, item := range items {
			_, err := tx.Exec(`
				INSERT INTO course_progress (
					user_id, course_id, current_stage_id, completed_stages_json,
					skipped_stages_json, enrolled_at, completed_at
				) VALUES (?, ?, ?, ?, ?, ?, ?)
			`, userID, item.CourseID, item.CurrentStageID, item.CompletedStagesJSON,
				item.SkippedStagesJSON, item.EnrolledAt, item.CompletedAt)
			if err != nil {
				return wrapErr("failed to save course progress", err)
			}
		}
		return nil
	})
}

// Delete removes one course progress row
func (r *CourseProgressRepository) Delete(userID int64, courseID string) error {
	_, err := r.db.exec(
		"DELETE FROM course_progress WHERE user_id = ? AND course_id = ?",
		userID, courseID,
	)
	if err != nil {
		return wrapErr("failed to delete course progress", err)
	}
	return nil
}

// DeleteAllForUser removes every course progress row for a user
func (r *CourseProgressRepository) DeleteAllForUser(userID int64) error {
	if _, err := r.db.exec("DELETE FROM course_progress WHERE user_id = ?", userID); err != nil {
		return wrapErr("failed to delete course progress", err)
	}
	return nil
}

// ImportTx inserts one course progress row within tx unless it exists
func (r *CourseProgressRepository) ImportTx(tx *sqlx.Tx, userID int64, item models.CourseProgress) error {
	_, err := tx.Exec(`
		INSERT OR IGNORE INTO course_progress (
			user_id, course_id, current_stage_id, completed_stages_json,
			skipped_stages_json, enrolled_at, completed_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, userID, item.CourseID, item.CurrentStageID, item.CompletedStagesJSON,
		item.SkippedStagesJSON, item.EnrolledAt, item.CompletedAt)
	if err != nil {
		return wrapErr("failed to import course progress", err)
	}
	return nil
}
