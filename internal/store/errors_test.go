package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	t.Parallel()

	// Entity-specific sentinels unwrap to their generic kind.
	assert.ErrorIs(t, ErrUserNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrEmailExists, ErrDuplicate)

	assert.True(t, IsNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("lookup: %w", ErrUserNotFound)))
	assert.False(t, IsNotFoundError(ErrEmailExists))

	assert.True(t, IsDuplicateError(ErrEmailExists))
	assert.True(t, IsDuplicateError(fmt.Errorf("insert: %w", ErrEmailExists)))
	assert.False(t, IsDuplicateError(ErrUserNotFound))

	assert.False(t, IsNotFoundError(errors.New("boom")))
	assert.False(t, IsDuplicateError(nil))
}

func TestTransactionFailedWrapping(t *testing.T) {
	t.Parallel()

	// Commit failures keep both the sentinel and the driver error visible.
	driverErr := errors.New("broken pipe")
	err := fmt.Errorf("%w: commit: %w", ErrTransactionFailed, driverErr)

	assert.ErrorIs(t, err, ErrTransactionFailed)
	assert.ErrorIs(t, err, driverErr)
}
