package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/flipwise/flipwise/internal/store"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	// uniqueViolationCode is raised by duplicate deck names and duplicate
	// category names within a deck.
	uniqueViolationCode = "23505"

	// foreignKeyViolationCode is raised when a category or word references
	// a parent row that does not exist.
	foreignKeyViolationCode = "23503"

	// checkViolationCode is raised by CHECK constraints such as the deck code format.
	checkViolationCode = "23514"

	// notNullViolationCode is raised when a required column is missing.
	notNullViolationCode = "23502"
)

// MapError maps a database error onto the store error vocabulary.
// The original error stays in the chain for logging, while callers match
// on store.ErrNotFound, store.ErrDuplicate or store.ErrInvalidEntity.
// Stores that need entity-specific sentinels (ErrDeckNotFound and the like)
// check IsUniqueViolation or IsForeignKeyViolation before falling back here.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	// A QueryRow scan with no result
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	// Constraint violations reported by the server
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return fmt.Errorf("%w: %v", store.ErrDuplicate, err)
		case foreignKeyViolationCode:
			return fmt.Errorf("%w: foreign key violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ConstraintName, err)
		case checkViolationCode:
			return fmt.Errorf("%w: check constraint violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ConstraintName, err)
		case notNullViolationCode:
			return fmt.Errorf("%w: not null violation (%s): %v",
				store.ErrInvalidEntity, pgErr.ColumnName, err)
		}
	}

	// Anything else (connection loss, syntax errors) is returned unchanged
	return err
}

// IsUniqueViolation reports whether err is a unique constraint violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// IsForeignKeyViolation reports whether err is a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// CheckRowsAffected turns a zero-row UPDATE or DELETE into notFound.
// A nil notFound falls back to store.ErrNotFound.
func CheckRowsAffected(result sql.Result, notFound error) error {
	if result == nil {
		return fmt.Errorf("nil result provided to CheckRowsAffected")
	}

	// pgx's stdlib driver always reports affected rows for DML
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		if notFound == nil {
			return store.ErrNotFound
		}
		return notFound
	}
	return nil
}
