package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/subtrackr/subtrackr-api/internal/api/shared"
	"github.com/subtrackr/subtrackr-api/internal/service"
)

// UserHandler holds the user resource endpoints. Apart from Get, which reads
// real accounts, these are placeholders matching the subscription stubs.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger.With("component", "user_handler"),
	}
}

// List handles GET /api/v1/user.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, "Get all users", nil)
}

// Get handles GET /api/v1/user/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, "Get user details", toUserResponse(user))
}

// Create handles POST /api/v1/user. Accounts are only created through
// sign-up, so this remains a placeholder.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, "Create a user", nil)
}

// Update handles PUT /api/v1/user/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, "Update user", nil)
}

// Delete handles DELETE /api/v1/user/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, "Delete user", nil)
}
