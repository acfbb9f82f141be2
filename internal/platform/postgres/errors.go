package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/quickcache/internal/store"
)

// SQLSTATE codes translated by MapError.
const (
	CodeUniqueViolation  = "23505"
	CodeCheckViolation   = "23514"
	CodeNotNullViolation = "23502"
)

// HasCode reports whether err wraps a PostgreSQL error with the given
// SQLSTATE code.
func HasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// MapError translates driver errors into store sentinels so callers can use
// errors.Is without knowing the backend. The driver error stays in the
// message. Errors without a translation are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case CodeUniqueViolation:
		return fmt.Errorf("%w (%s): %v", store.ErrDuplicate, pgErr.ConstraintName, err)
	case CodeCheckViolation:
		return fmt.Errorf("%w: check constraint violation (%s): %v", store.ErrInvalidEntity, pgErr.ConstraintName, err)
	case CodeNotNullViolation:
		return fmt.Errorf("%w: not null violation (%s): %v", store.ErrInvalidEntity, pgErr.ColumnName, err)
	default:
		return err
	}
}
