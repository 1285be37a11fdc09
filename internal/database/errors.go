package database

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

// ErrConstraint marks uniqueness and foreign-key violations. Callers that
// pre-validate ids can test for it with errors.Is.
var ErrConstraint = errors.New("constraint violation")

// IsConstraint reports whether err was caused by a constraint violation.
func IsConstraint(err error) bool {
	return errors.Is(err, ErrConstraint)
}

// wrapErr annotates a storage failure, surfacing driver constraint errors
// as ErrConstraint.
func wrapErr(op string, err error) error {
	var sqlErr sqlite3.Error
	if errors.As(err, &sqlErr) && sqlErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%s: %w: %v", op, ErrConstraint, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
