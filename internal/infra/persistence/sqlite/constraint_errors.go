package sqlite

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for SQLite error checking
func isUniqueConstraintViolation(err error) bool {
	// TranslateError maps SQLITE_CONSTRAINT_UNIQUE to GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Fall back to the raw driver message in case translation was bypassed
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}
