package apperror

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE classes postgres raises when concurrent transactions cannot be
// serialized.
const (
	sqlstateSerializationFailure = "40001"
	sqlstateDeadlockDetected     = "40P01"
)

// WrapStorage classifies a storage error: serialization failures and deadlocks
// become CodeConcurrencyConflict, which callers may retry; everything else is
// CodeUnavailable.
func WrapStorage(message string, err error) *AppError {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case sqlstateSerializationFailure, sqlstateDeadlockDetected:
			return Wrap(CodeConcurrencyConflict, message, err)
		}
	}
	return Wrap(CodeUnavailable, message, err)
}
