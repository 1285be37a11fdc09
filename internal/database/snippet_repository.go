package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/typist/pkg/models"
)

// SnippetRepository handles user-provided practice snippets
type SnippetRepository struct {
	db *Database
}

// NewSnippetRepository creates a new repository instance
func NewSnippetRepository(db *Database) *SnippetRepository {
	return &SnippetRepository{db: db}
}

// GetAllForUser returns every snippet owned by a user
func (r *SnippetRepository) GetAllForUser(userID int64) ([]models.CustomSnippet, error) {
	var items []models.CustomSnippet
	err := r.db.selectAll(&items, `
		SELECT id, user_id, name, content, language, mode,
		       created_at, practice_count, best_wpm, best_accuracy
		FROM custom_snippets
		WHERE user_id = ?
		ORDER BY created_at ASC, id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get snippets: %w", err)
	}
	return items, nil
}

// SaveAll replaces the user's entire snippet set with items. The user_id
// column always comes from userID, not the item.
func (r *SnippetRepository) SaveAll(userID int64, items []models.CustomSnippet) error {
	return r.db.WithTx(func(tx *sqlx.Tx) error {
		if _, err := tx.Exec("DELETE FROM custom_snippets WHERE user_id = ?", userID); err != nil {
			return wrapErr("failed to clear snippets", err)
		}
		for _, item := range items {
			_, err := tx.Exec(`
				INSERT INTO custom_snippets (
					id, user_id, name, content, language, mode,
					created_at, practice_count, best_wpm, best_accuracy
				) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			`, item.ID, userID, item.Name, item.Content, item.Language, item.Mode,
				item.CreatedAt, item.PracticeCount, item.BestWpm, item.BestAccuracy)
			if err != nil {
				return wrapErr("failed to save snippet", err)
			}
		}
		return nil
	})
}

// ImportTx inserts one snippet within tx unless its id already exists
func (r *SnippetRepository) ImportTx(tx *sqlx.Tx, userID int64, item models.CustomSnippet) error {
	_, err := tx.Exec(`
		INSERT OR IGNORE INTO custom_snippets (
			id, user_id, name, content, language, mode,
			created_at, practice_count, best_wpm, best_accuracy
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, item.ID, userID, item.Name, item.Content, item.Language, item.Mode,
		item.CreatedAt, item.PracticeCount, item.BestWpm, item.BestAccuracy)
	if err != nil {
		return wrapErr("failed to import snippet", err)
	}
	return nil
}
