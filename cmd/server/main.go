package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdugdh24/profiles-backend/internal/config"
	"github.com/gdugdh24/profiles-backend/internal/infrastructure/container"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize dependency injection container
	app, err := container.NewContainer(ctx, cfg)
	if err != nil {
		slog.Error("failed to initialize application", "err", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			app.Logger.Error("error closing application", "err", err)
		}
	}()

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Server.Start()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			app.Logger.Error("server error", "err", err)
		}
	}

	// Graceful shutdown; the server applies its own timeout.
	if err := app.Server.Shutdown(context.Background()); err != nil {
		app.Logger.Error("server shutdown error", "err", err)
		os.Exit(1)
	}

	app.Logger.Info("server exited properly")
}
