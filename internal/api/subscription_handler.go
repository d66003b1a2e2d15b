package api

import (
	"log/slog"
	"net/http"

	"github.com/subtrackr/subtrackr-api/internal/api/shared"
)

// SubscriptionHandler holds the placeholder subscription endpoints.
// Subscription business logic is out of scope for now; each handler reports
// what it will eventually do so the route surface is wired end to end.
type SubscriptionHandler struct {
	logger *slog.Logger
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		logger: logger.With("component", "subscription_handler"),
	}
}

func (h *SubscriptionHandler) stub(title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, title, nil)
	}
}

// List handles GET /api/v1/subscription.
func (h *SubscriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	h.stub("Get all subscriptions")(w, r)
}

// Get handles GET /api/v1/subscription/{id}.
func (h *SubscriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.stub("Get subscription details")(w, r)
}

// Create handles POST /api/v1/subscription.
func (h *SubscriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	h.stub("Create subscription")(w, r)
}

// Update handles PUT /api/v1/subscription/{id}.
func (h *SubscriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	h.stub("Update subscription")(w, r)
}

// Delete handles DELETE /api/v1/subscription/{id}.
func (h *SubscriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.stub("Delete subscription")(w, r)
}

// Cancel handles PUT /api/v1/subscription/{id}/cancel.
func (h *SubscriptionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.stub("Cancel subscription")(w, r)
}

// ListForUser handles GET /api/v1/subscription/user/{id}.
func (h *SubscriptionHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	h.stub("Get all user subscriptions")(w, r)
}

// UpcomingRenewals handles GET /api/v1/subscription/upcoming-renewals.
func (h *SubscriptionHandler) UpcomingRenewals(w http.ResponseWriter, r *http.Request) {
	h.stub("Get upcoming renewals")(w, r)
}
