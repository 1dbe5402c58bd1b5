package errors

import (
	"database/sql"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
)

// PostgreSQL error codes
const (
	// Check violation (constraint failed)
	PgErrorCodeCheckViolation = "23514"
	// Unique violation
	PgErrorCodeUniqueViolation = "23505"
	// Foreign key violation
	PgErrorCodeForeignKeyViolation = "23503"
	// Not null violation
	PgErrorCodeNotNullViolation = "23502"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("record not found")

// ConflictError represents a uniqueness or reference conflict
type ConflictError struct {
	Operation string `json:"operation"`
	Message   string `json:"message"`
}

func (e *ConflictError) Error() string {
	return e.Message
}

// InvalidDataError represents a constraint violation caused by bad input
type InvalidDataError struct {
	Operation string `json:"operation"`
	Message   string `json:"message"`
}

func (e *InvalidDataError) Error() string {
	return e.Message
}

// HandleDatabaseError converts PostgreSQL errors to business-specific errors
func HandleDatabaseError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return handlePostgreSQLError(pgErr, operation)
	}

	return errors.Wrapf(err, "database error during %s", operation)
}

// handlePostgreSQLError handles specific PostgreSQL error codes
func handlePostgreSQLError(pgErr *pgconn.PgError, operation string) error {
	switch pgErr.Code {
	case PgErrorCodeUniqueViolation:
		return &ConflictError{
			Operation: operation,
			Message:   "duplicate record: " + pgErr.Message,
		}

	case PgErrorCodeForeignKeyViolation:
		return &ConflictError{
			Operation: operation,
			Message:   "invalid reference: " + pgErr.Message,
		}

	case PgErrorCodeCheckViolation, PgErrorCodeNotNullViolation:
		return &InvalidDataError{
			Operation: operation,
			Message:   "constraint violation: " + pgErr.Message,
		}

	default:
		return errors.Errorf("database error during %s: %s", operation, pgErr.Message)
	}
}

// IsNotFound checks if error means the row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if error is a conflict error
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsInvalidData checks if error is an invalid data error
func IsInvalidData(err error) bool {
	var invalidErr *InvalidDataError
	return errors.As(err, &invalidErr)
}
