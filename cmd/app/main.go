package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/edurift/levelmap-server/internal/account"
	"github.com/edurift/levelmap-server/internal/config"
	"github.com/edurift/levelmap-server/internal/database"
	"github.com/edurift/levelmap-server/internal/database/postgres"
	"github.com/edurift/levelmap-server/internal/database/schema"
	"github.com/edurift/levelmap-server/internal/game"
	"github.com/edurift/levelmap-server/internal/identity"
	"github.com/edurift/levelmap-server/internal/logger"
	"github.com/edurift/levelmap-server/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logger.Setup(cfg.LogLevel)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	ctx := context.Background()

	dbPool, err := database.NewPool(cfg.GetDBConnString())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if err := schema.Ensure(ctx, dbPool); err != nil {
		slog.Error("Failed to ensure database schema", "error", err)
		os.Exit(1)
	}

	catalog, err := account.LoadCatalog(cfg.CoursesFile)
	if err != nil {
		slog.Error("Failed to load course catalog", "error", err, "path", cfg.CoursesFile)
		os.Exit(1)
	}

	identityClient := identity.NewClient(cfg.IdentityURL, cfg.IdentityAnonKey, cfg.IdentityServiceKey)

	accountRepo := postgres.NewAccountRepository(dbPool)
	gameRepo := postgres.NewGameRepository(dbPool)

	accountService := account.NewService(accountRepo, identityClient, catalog, cfg.GameBaseURL)
	gameService := game.NewService(accountRepo, gameRepo)

	srv := server.NewServer(cfg.Port, dbPool, accountService, gameService)

	// Run the server in the background so we can wait on signals
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()

		if err := srv.Stop(shutdownCtx); err != nil {
			slog.Error("Server forced to shutdown", "error", err)
		}
	}

	slog.Info("Server stopped")
}
