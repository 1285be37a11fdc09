package database

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/example/typist/pkg/models"
)

// UserRepository handles database operations for user profiles
type UserRepository struct {
	db *Database
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db *Database) *UserRepository {
	return &UserRepository{db: db}
}

// GetAll returns all user profiles ordered by creation time
func (r *UserRepository) GetAll() ([]models.UserProfile, error) {
	var users []models.UserProfile
	err := r.db.selectAll(&users, `
		SELECT id, name, avatar, created_at, last_active_at
		FROM users
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

// Create inserts a new user profile. Creating an id that already exists
// fails with ErrConstraint; there is no implicit upsert for users.
func (r *UserRepository) Create(user *models.UserProfile) error {
	_, err := r.db.exec(`
		INSERT INTO users (id, name, avatar, created_at, last_active_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.ID, user.Name, user.Avatar, user.CreatedAt, user.LastActiveAt)
	if err != nil {
		return wrapErr("failed to create user", err)
	}
	return nil
}

// Update applies only the supplied fields; nil fields keep their stored
// values. A fully empty update is a no-op.
func (r *UserRepository) Update(id int64, update models.UserUpdate) error {
	var sets []string
	var args []interface{}

	if update.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *update.Name)
	}
	if update.Avatar != nil {
		sets = append(sets, "avatar = ?")
		args = append(args, *update.Avatar)
	}
	if update.LastActiveAt != nil {
		sets = append(sets, "last_active_at = ?")
		args = append(args, *update.LastActiveAt)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	query := fmt.Sprintf("UPDATE users SET %s WHERE id = ?", strings.Join(sets, ", "))
	if _, err := r.db.exec(query, args...); err != nil {
		return wrapErr("failed to update user", err)
	}
	return nil
}

// Delete removes a user profile. Foreign keys cascade the delete to every
// row the user owns.
func (r *UserRepository) Delete(id int64) error {
	if _, err := r.db.exec("DELETE FROM users WHERE id = ?", id); err != nil {
		return wrapErr("failed to delete user", err)
	}
	return nil
}

// Count returns the number of user profiles
func (r *UserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.get(&count, "SELECT COUNT(*) FROM users"); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// ImportTx inserts a profile within tx unless one with the same id already
// exists. Existing profiles are left untouched.
func (r *UserRepository) ImportTx(tx *sqlx.Tx, user models.UserProfile) error {
	_, err := tx.Exec(`
		INSERT OR IGNORE INTO users (id, name, avatar, created_at, last_active_at)
		VALUES (?, ?, ?, ?, ?)
	`, user.ID, user.Name, user.Avatar, user.CreatedAt, user.LastActiveAt)
	if err != nil {
		return wrapErr("failed to import user", err)
	}
	return nil
}
