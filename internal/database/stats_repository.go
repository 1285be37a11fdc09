package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/typist/pkg/models"
)

// StatsRepository handles aggregate user statistics and the owned set of
// problem keys.
type StatsRepository struct {
	db *Database
}

// NewStatsRepository creates a new repository instance
func NewStatsRepository(db *Database) *StatsRepository {
	return &StatsRepository{db: db}
}

// Get returns a user's stats with problem keys attached, or nil when the
// user has never saved stats.
func (r *StatsRepository) Get(userID int64) (*models.UserStats, error) {
	var stats models.UserStats
	err := r.db.get(&stats, `
		SELECT total_practice_time, total_words_typed, average_wpm,
		       average_accuracy, average_true_accuracy, total_keystrokes,
		       total_backspaces, total_correct_keystrokes, lessons_completed,
		       current_streak, longest_streak, last_practice_date
		FROM user_stats
		WHERE user_id = ?
	`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	err = r.db.selectAll(&stats.ProblemKeys, `
		SELECT key_char, error_count
		FROM problem_keys
		WHERE user_id = ?
		ORDER BY error_count DESC, key_char ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get problem keys: %w", err)
	}
	return &stats, nil
}

// Save upserts the stats row and replaces the user's whole problem-key set
// in one transaction.
func (r *StatsRepository) Save(userID int64, stats *models.UserStats) error {
	return r.db.WithTx(func(tx *sqlx.Tx) error {
		if err := r.upsertTx(tx, userID, stats); err != nil {
			return err
		}
		if _, err := tx.Exec("DELETE FROM problem_keys WHERE user_id = ?", userID); err != nil {
			return wrapErr("failed to clear problem keys", err)
		}
		for _, pk := range stats.ProblemKeys {
			_, err := tx.Exec(`
				INSERT INTO problem_keys (user_id, key_char, error_count)
				VALUES (?, ?, ?)
			`, userID, pk.KeyChar, pk.ErrorCount)
			if err != nil {
				return wrapErr("failed to save problem key", err)
			}
		}
		return nil
	})
}

func (r *StatsRepository) upsertTx(tx *sqlx.Tx, userID int64, stats *models.UserStats) error {
	_, err := tx.Exec(`
		INSERT INTO user_stats (
			user_id, total_practice_time, total_words_typed, average_wpm,
			average_accuracy, average_true_accuracy, total_keystrokes,
			total_backspaces, total_correct_keystrokes, lessons_completed,
			current_streak, longest_streak, last_practice_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			total_practice_time = excluded.total_practice_time,
			total_words_typed = excluded.total_words_typed,
			average_wpm = excluded.average_wpm,
			average_accuracy = excluded.average_accuracy,
			average_true_accuracy = excluded.average_true_accuracy,
			total_keystrokes = excluded.total_keystrokes,
			total_backspaces = excluded.total_backspaces,
			total_correct_keystrokes = excluded.total_correct_keystrokes,
			lessons_completed = excluded.lessons_completed,
			current_streak = excluded.current_streak,
			longest_streak = excluded.longest_streak,
			last_practice_date = excluded.last_practice_date
	`,
		userID, stats.TotalPracticeTime, stats.TotalWordsTyped, stats.AverageWpm,
		stats.AverageAccuracy, stats.AverageTrueAccuracy, stats.TotalKeystrokes,
		stats.TotalBackspaces, stats.TotalCorrectKeystrokes, stats.LessonsCompleted,
		stats.CurrentStreak, stats.LongestStreak, stats.LastPracticeDate,
	)
	if err != nil {
		return wrapErr("failed to save user stats", err)
	}
	return nil
}

// ImportTx inserts a stats row and its problem keys within tx unless the
// user already has stats. Problem keys insert independently so re-imports
// never duplicate them.
func (r *StatsRepository) ImportTx(tx *sqlx.Tx, userID int64, stats *models.UserStats) error {
	_, err := tx.Exec(`
		INSERT OR IGNORE INTO user_stats (
			user_id, total_practice_time, total_words_typed, average_wpm,
			average_accuracy, average_true_accuracy, total_keystrokes,
			total_backspaces, total_correct_keystrokes, lessons_completed,
			current_streak, longest_streak, last_practice_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		userID, stats.TotalPracticeTime, stats.TotalWordsTyped, stats.AverageWpm,
		stats.AverageAccuracy, stats.AverageTrueAccuracy, stats.TotalKeystrokes,
		stats.TotalBackspaces, stats.TotalCorrectKeystrokes, stats.LessonsCompleted,
		stats.CurrentStreak, stats.LongestStreak, stats.LastPracticeDate,
	)
	if err != nil {
		return wrapErr("failed to import user stats", err)
	}
	for _, pk := range stats.ProblemKeys {
		_, err := tx.Exec(`
			INSERT OR IGNORE INTO problem_keys (user_id, key_char, error_count)
			VALUES (?, ?, ?)
		`, userID, pk.KeyChar, pk.ErrorCount)
		if err != nil {
			return wrapErr("failed to import problem key", err)
		}
	}
	return nil
}
