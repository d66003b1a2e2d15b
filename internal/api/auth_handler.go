// Package api implements the HTTP boundary: handlers, request models, and
// error translation.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/subtrackr/subtrackr-api/internal/api/shared"
	"github.com/subtrackr/subtrackr-api/internal/service"
	"github.com/subtrackr/subtrackr-api/internal/service/auth"
	"github.com/subtrackr/subtrackr-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	userService service.UserService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(userService service.UserService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		validator:   validator.New(),
		logger:      logger.With("component", "auth_handler"),
	}
}

// SignUp handles POST /api/v1/auth/sign-up.
// On success it responds 201 with {success, message, data: {token, user}}.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest

	if err := DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	result, err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailExists):
			shared.RespondWithError(w, r, http.StatusConflict, "User already exists")
		case errors.Is(err, auth.ErrTokenGeneration):
			HandleAPIError(w, r, err, "Failed to generate authentication token")
		default:
			HandleAPIError(w, r, err, "")
		}
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, "User created successfully", AuthData{
		Token: result.Token,
		User:  toUserResponse(result.User),
	})
}

// Login handles POST /api/v1/auth/login. Not implemented yet.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotImplemented, "Login is not implemented")
}

// SignOut handles POST /api/v1/auth/sign-out. Not implemented yet.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithError(w, r, http.StatusNotImplemented, "Sign out is not implemented")
}
