package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	user, err := NewUser("Ada", "ada@example.com", "s3cret!")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, "s3cret!", user.Password)
	assert.Empty(t, user.HashedPassword)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestNewUser_TrimsWhitespace(t *testing.T) {
	t.Parallel()

	user, err := NewUser("  Ada ", " ada@example.com ", "s3cret!")
	require.NoError(t, err)

	assert.Equal(t, "Ada", user.Name)
	assert.Equal(t, "ada@example.com", user.Email)
}

func TestNewUser_ValidationErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		wantErr  error
	}{
		{"empty name", "", "ada@example.com", "s3cret!", ErrEmptyName},
		{"empty email", "Ada", "", "s3cret!", ErrEmptyEmail},
		{"email without at", "Ada", "ada.example.com", "s3cret!", ErrInvalidEmail},
		{"email without domain dot", "Ada", "ada@example", "s3cret!", ErrInvalidEmail},
		{"email with trailing at", "Ada", "ada@", "s3cret!", ErrInvalidEmail},
		{"email with space", "Ada", "ada @example.com", "s3cret!", ErrInvalidEmail},
		{"empty password", "Ada", "ada@example.com", "", ErrEmptyPassword},
		{"oversized password", "Ada", "ada@example.com", strings.Repeat("x", 73), ErrPasswordTooLong},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			user, err := NewUser(tc.userName, tc.email, tc.password)
			assert.Nil(t, user)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUserValidate_StoredUser(t *testing.T) {
	t.Parallel()

	// A user loaded from the store has no plaintext password, only the hash.
	user := &User{
		ID:             uuid.New(),
		Name:           "Ada",
		Email:          "ada@example.com",
		HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
	}
	assert.NoError(t, user.Validate())

	user.HashedPassword = ""
	assert.ErrorIs(t, user.Validate(), ErrEmptyPassword)
}

func TestIsValidationError(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidationError(ErrInvalidEmail))
	assert.True(t, IsValidationError(NewValidationError("id", "has invalid format", ErrValidation)))
	assert.False(t, IsValidationError(ErrUnauthorized))
}
