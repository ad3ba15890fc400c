package postgres

import (
	"strings"

	domainerrors "shopseva/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// SQLSTATE 23505 when the dialector does not translate errors.
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "23505") || strings.Contains(msg, "duplicate key")
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	return strings.Contains(err.Error(), "23514")
}

// mapNotFound turns gorm's not-found into the domain sentinel and anything
// else into a DatabaseExecuteError.
func mapNotFound(err error, notFound *domainerrors.BaseError, details string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
