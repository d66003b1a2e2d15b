package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/subtrackr/subtrackr-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
//
// Update/delete semantics are deliberately absent: accounts are only ever
// created by registration.
type UserStore interface {
	// Create saves a new user to the store. The user must already carry its
	// hashed credential; the plaintext password is never persisted.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist. The lookup is
	// byte-wise exact; email is the uniqueness key.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithTx returns a UserStore that executes against the provided
	// transaction, so multiple operations can share one unit of work.
	// The transaction is created and managed by the caller (typically via
	// a TxRunner).
	WithTx(tx *sql.Tx) UserStore
}
