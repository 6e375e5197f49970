package postgres

import (
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Only set when the dialector runs with TranslateError
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	return hasPgErrorCode(err, pgerrcode.UniqueViolation)
}

func isNotNullConstraintViolation(err error) bool {
	if hasPgErrorCode(err, pgerrcode.NotNullViolation) {
		return true
	}

	// Drivers that do not surface *pgconn.PgError still carry the message
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value in column") ||
		strings.Contains(errMsg, "violates not-null constraint")
}

func hasPgErrorCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	return pgErr.Code == code
}
