package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subtrackr/subtrackr-api/internal/domain"
	"github.com/subtrackr/subtrackr-api/internal/service/auth"
	"github.com/subtrackr/subtrackr-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"expired token", auth.ErrExpiredToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{
			"wrapped email exists",
			fmt.Errorf("registering: %w", store.ErrEmailExists),
			http.StatusConflict,
		},
		{"validation", domain.ErrInvalidEmail, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"transaction failed", store.ErrTransactionFailed, http.StatusInternalServerError},
		{"token generation", auth.ErrTokenGeneration, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"email exists", store.ErrEmailExists, "User already exists"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{
			"transaction failed",
			fmt.Errorf("%w: commit: broken pipe", store.ErrTransactionFailed),
			"Service temporarily unavailable",
		},
		{"token generation", auth.ErrTokenGeneration, "Failed to generate authentication token"},
		{"unknown", errors.New("pq: something leaked"), "An unexpected error occurred"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, GetSafeErrorMessage(tc.err))
		})
	}
}

func TestGetSafeErrorMessage_NeverEchoesInternals(t *testing.T) {
	t.Parallel()

	internal := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	msg := GetSafeErrorMessage(fmt.Errorf("%w: %v", store.ErrTransactionFailed, internal))

	assert.NotContains(t, msg, "10.0.0.5")
	assert.NotContains(t, msg, "5432")
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	validate := validator.New()

	err := validate.Struct(SignUpRequest{Name: "Ada", Password: "s3cret!"})
	require.Error(t, err)
	assert.Equal(t, "Invalid Email: required field", SanitizeValidationError(err))

	err = validate.Struct(SignUpRequest{Name: "Ada", Email: "nope", Password: "s3cret!"})
	require.Error(t, err)
	assert.Equal(t, "Invalid Email: invalid email format", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("opaque")))
}
