package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation recognizes duplicate keys from GORM's translated errors, PostgreSQL
// (SQLSTATE 23505) and SQLite.
func isUniqueConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint") ||
		strings.Contains(errMsg, "23505")
}

// isNotFound reports whether a First/Take query matched no row.
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
