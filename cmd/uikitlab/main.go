// Package main is the entry point for the playground server.
// It loads configuration, connects to the optional backing services,
// sets up routing, and starts the HTTP server with graceful shutdown
// support.
package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uikitlab/internal/cache"
	"uikitlab/internal/config"
	"uikitlab/internal/database"
	"uikitlab/internal/datasource"
	"uikitlab/internal/handlers"
	"uikitlab/internal/imaging"
	"uikitlab/internal/render"
	"uikitlab/internal/router"
	"uikitlab/internal/session"
	"uikitlab/internal/state"
	"uikitlab/internal/storage"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
		"remote_store", cfg.UseRemote(),
	)

	// Connect to PostgreSQL when the remote backing is selected. A
	// failure here degrades to the seeded in-memory backing instead of
	// aborting: the playground must start with no services at all.
	var db *sql.DB
	if cfg.UseRemote() {
		db, err = database.Open(cfg.DSN())
		if err != nil {
			slog.Warn("remote store unavailable, using in-memory backing", "error", err)
			db = nil
		} else {
			defer db.Close()
			if err := database.Migrate(db); err != nil {
				slog.Warn("migrations failed, reads will fall back to seed data", "error", err)
			}
		}
	}

	src := datasource.Select(cfg, db)

	// Catalog state. The initial load populates it from the active
	// backing; on remote errors the reads already fall back to seed.
	st := state.New(src)
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 10*time.Second)
	if err := st.LoadAll(loadCtx); err != nil {
		slog.Warn("initial catalog load failed", "error", err)
	}
	cancelLoad()

	// Connect to Valkey (export cache + session drafts). Optional.
	var (
		sessionStore *session.Store
		exportCache  *cache.ExportCache
	)
	if cfg.UseValkey() {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Warn("valkey unavailable, drafts and export cache disabled", "error", err)
		} else {
			defer valkeyClient.Close()
			sessionStore = session.NewStore(valkeyClient)
			exportCache = cache.NewExportCache(valkeyClient, cache.DefaultExportTTL)
		}
	} else {
		slog.Info("valkey not configured, drafts and export cache disabled")
	}

	// Connect to S3-compatible object storage (optional).
	storageClient, err := storage.New(cfg)
	if err != nil {
		slog.Error("failed to initialize object storage", "error", err)
		os.Exit(1)
	}
	if storageClient != nil {
		imaging.Startup(0)
		defer imaging.Shutdown()
		slog.Info("object storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("object storage not configured, thumbnail uploads disabled")
	}

	// Initialize the HTML template renderer.
	renderer, err := render.New(cfg.IsDev())
	if err != nil {
		slog.Error("failed to initialize template renderer", "error", err)
		os.Exit(1)
	}

	pg := handlers.NewPlayground(renderer, st, sessionStore, exportCache, storageClient)

	r := router.New(pg, router.Options{
		SecureCookies: !cfg.IsDev(),
		WriteLimit:    120,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
