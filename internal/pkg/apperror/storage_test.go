package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapStorageClassifiesSerializationFailures(t *testing.T) {
	serialization := &pgconn.PgError{Code: "40001", Message: "could not serialize access"}
	err := WrapStorage("failed to adjust counters", serialization)
	assert.Equal(t, CodeConcurrencyConflict, CodeOf(err))

	deadlock := fmt.Errorf("update: %w", &pgconn.PgError{Code: "40P01", Message: "deadlock detected"})
	err = WrapStorage("failed to group question", deadlock)
	assert.Equal(t, CodeConcurrencyConflict, CodeOf(err))
}

func TestWrapStorageDefaultsToUnavailable(t *testing.T) {
	err := WrapStorage("failed to commit", errors.New("connection reset"))
	assert.Equal(t, CodeUnavailable, CodeOf(err))

	constraint := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	assert.Equal(t, CodeUnavailable, CodeOf(WrapStorage("failed to store", constraint)))
}
