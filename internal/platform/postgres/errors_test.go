package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/subtrackr/subtrackr-api/internal/store"
)

func uniqueViolation(constraint string) *pgconn.PgError {
	return &pgconn.PgError{
		Code:           uniqueViolationCode,
		ConstraintName: constraint,
		Message:        "duplicate key value violates unique constraint",
	}
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, store.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("query: %w", sql.ErrNoRows), store.ErrNotFound},
		{"unique violation", uniqueViolation("users_email_key"), store.ErrDuplicate},
		{
			"not null violation",
			&pgconn.PgError{Code: notNullViolationCode, ColumnName: "email"},
			store.ErrInvalidEntity,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mapped := MapError(tc.err)
			if tc.sentinel == nil {
				assert.Equal(t, tc.err, mapped)
				return
			}
			assert.ErrorIs(t, mapped, tc.sentinel)
		})
	}
}

func TestMapError_PassesThroughUnknownErrors(t *testing.T) {
	t.Parallel()

	unknown := errors.New("connection reset by peer")
	assert.Equal(t, unknown, MapError(unknown))

	// Other pg error codes are not translated either.
	serialization := &pgconn.PgError{Code: "40001"}
	assert.Equal(t, error(serialization), MapError(serialization))
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(uniqueViolation("users_email_key")))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", uniqueViolation("users_email_key"))))

	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("boom")))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: notNullViolationCode}))
}

func TestMapUniqueViolation(t *testing.T) {
	t.Parallel()

	mapped := MapUniqueViolation(uniqueViolation("users_email_key"), store.ErrEmailExists)
	assert.ErrorIs(t, mapped, store.ErrEmailExists)
	assert.ErrorIs(t, mapped, store.ErrDuplicate)

	// Non-violation errors come back unchanged.
	plain := errors.New("boom")
	assert.Equal(t, plain, MapUniqueViolation(plain, store.ErrEmailExists))
}
