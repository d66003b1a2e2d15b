package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/subtrackr/subtrackr-api/internal/config"
	"github.com/subtrackr/subtrackr-api/internal/platform/postgres"
	"github.com/subtrackr/subtrackr-api/internal/service"
	"github.com/subtrackr/subtrackr-api/internal/service/auth"
	"github.com/subtrackr/subtrackr-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore store.UserStore
	txRunner  store.TxRunner

	// Service interfaces
	jwtService     auth.JWTService
	passwordHasher auth.PasswordHasher
	userService    service.UserService
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts core dependencies like configuration, logger, and
// database connection that must be established before application
// initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.userStore = postgres.NewUserStore(db)
	app.txRunner = store.NewTxRunner(db)

	app.userService = service.NewUserService(
		app.userStore,
		app.txRunner,
		app.passwordHasher,
		app.jwtService,
		logger,
	)

	return app, nil
}

// cleanup releases application resources during shutdown.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
