// Package main implements the entry point for the subscription tracker API
// server, which provisions accounts and issues session tokens.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/subtrackr/subtrackr-api/internal/config"
	"github.com/subtrackr/subtrackr-api/internal/platform/logger"
)

// main initializes configuration, logging, the database, and the dependency
// graph, then runs the HTTP server until shutdown.
func main() {
	if err := run(); err != nil {
		log.Fatalf("failed to start application: %v", err)
	}
}

func run() error {
	// Missing or invalid configuration (signing secret, token lifetime,
	// hash cost, database URL) is fatal here, never per-request.
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	ctx := context.Background()
	if err := runMigrations(ctx, db, appLogger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	router := app.setupRouter()
	return app.startHTTPServer(ctx, router)
}
