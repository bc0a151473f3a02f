package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"finance-tracker/internal/app"
	"finance-tracker/internal/config"
	"finance-tracker/internal/server"
	"finance-tracker/internal/services"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger := cfg.Log.SetupLogger(os.Stdout)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	a, err := app.Open(cfg, prometheus.DefaultRegisterer)
	if err != nil {
		logger.Error("failed to open transaction store", "error", err)
		os.Exit(1)
	}

	opts := server.Options{Logger: logger}
	if cfg.AuthEnabled() {
		opts.TokenService = services.NewTokenService(&cfg.Auth)
	} else {
		logger.Warn("AUTH_TOKEN_SECRET not set, API is unauthenticated")
	}

	e := server.New(a, opts)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("server starting", "address", cfg.Address(), "environment", cfg.Server.Environment, "storage", cfg.Storage.Backend)
	runErr := server.Run(ctx, e, cfg.Address(), cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout)

	if err := a.Close(); err != nil {
		logger.Error("failed to close storage", "error", err)
	}
	if runErr != nil {
		logger.Error("server stopped", "error", runErr)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
