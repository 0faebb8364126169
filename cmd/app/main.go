package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/runfall/CheatKeeper_Go/internal/config"
	"github.com/runfall/CheatKeeper_Go/internal/handler"
	"github.com/runfall/CheatKeeper_Go/internal/random"
	"github.com/runfall/CheatKeeper_Go/internal/server"
	"github.com/runfall/CheatKeeper_Go/internal/session"
	"github.com/runfall/CheatKeeper_Go/internal/unlock"
	"github.com/runfall/CheatKeeper_Go/internal/validation"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	handler.InitValidator()

	specs, err := loadCatalogSpec(cfg)
	if err != nil {
		slog.Error("Catalog load failed", "error", err)
		os.Exit(1)
	}

	manager, err := session.NewManager(specs, cfg.SessionCacheSize, sourceFactory(cfg))
	if err != nil {
		slog.Error("Session manager setup failed", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.Version, manager)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced shutdown", "error", err)
	}
	slog.Info("Server stopped")
}

// loadCatalogSpec reads the authored catalog file when one is configured
// and present, otherwise falls back to the built-in catalog.
func loadCatalogSpec(cfg *config.Config) ([]unlock.Spec, error) {
	if cfg.CatalogPath == "" {
		return unlock.DefaultSpec(), nil
	}
	if _, err := os.Stat(cfg.CatalogPath); os.IsNotExist(err) {
		slog.Info("Catalog file not found, using built-in catalog", "path", cfg.CatalogPath)
		return unlock.DefaultSpec(), nil
	}

	sv := validation.NewSchemaValidator()
	specs, err := unlock.LoadSpec(cfg.CatalogPath, config.SchemaPathAbilities, sv)
	if err != nil {
		return nil, err
	}
	slog.Info("Catalog loaded", "path", cfg.CatalogPath, "abilities", len(specs))
	return specs, nil
}

// sourceFactory returns the per-session random source constructor. A
// non-zero seed makes every session reproducible, offset so sessions do
// not mirror each other. The counter is atomic: the factory is called
// from concurrent session-create handlers.
func sourceFactory(cfg *config.Config) func() random.Source {
	if cfg.RandomSeed == 0 {
		return nil // manager default: shared auto-seeded generator
	}
	seed := cfg.RandomSeed
	var n atomic.Uint64
	return func() random.Source {
		return random.NewSeeded(seed + n.Add(1))
	}
}
