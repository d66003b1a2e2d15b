package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/subtrackr/subtrackr-api/internal/domain"
)

// Common request/response structures

// SignUpRequest defines the payload for the user registration endpoint.
// The password bound here is the raw secret; it is never persisted or logged.
type SignUpRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
}

// UserResponse is the account representation returned to clients.
// It never carries the raw secret or the credential hash.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AuthData is the data payload of a successful sign-up response.
type AuthData struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func toUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
