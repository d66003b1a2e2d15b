package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/subtrackr/subtrackr-api/internal/api"
	apiMiddleware "github.com/subtrackr/subtrackr-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.userService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	subscriptionHandler := api.NewSubscriptionHandler(app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api/v1", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/sign-up", authHandler.SignUp)
		r.Post("/auth/login", authHandler.Login)
		r.Post("/auth/sign-out", authHandler.SignOut)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			// User endpoints
			r.Get("/user", userHandler.List)
			r.Get("/user/{id}", userHandler.Get)
			r.Post("/user", userHandler.Create)
			r.Put("/user/{id}", userHandler.Update)
			r.Delete("/user/{id}", userHandler.Delete)

			// Subscription endpoints
			r.Get("/subscription", subscriptionHandler.List)
			r.Get("/subscription/upcoming-renewals", subscriptionHandler.UpcomingRenewals)
			r.Get("/subscription/{id}", subscriptionHandler.Get)
			r.Post("/subscription", subscriptionHandler.Create)
			r.Put("/subscription/{id}", subscriptionHandler.Update)
			r.Delete("/subscription/{id}", subscriptionHandler.Delete)
			r.Put("/subscription/{id}/cancel", subscriptionHandler.Cancel)
			r.Get("/subscription/user/{id}", subscriptionHandler.ListForUser)
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
