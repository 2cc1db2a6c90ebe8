// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

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

	"github.com/spf13/cobra"

	"sitesmith/internal/cache"
	"sitesmith/internal/database"
	"sitesmith/internal/generator"
	"sitesmith/internal/handlers"
	"sitesmith/internal/metrics"
	"sitesmith/internal/middleware"
	"sitesmith/internal/router"
	"sitesmith/internal/storage"
	"sitesmith/internal/store"
	"sitesmith/internal/uploads"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start an HTTP server that accepts business profiles, generates their sites and serves the results.",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	ctx := cmd.Context()

	reg := metrics.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(reg)
	checks := map[string]router.HealthCheck{}

	// PostgreSQL is optional: without it profiles are not persisted.
	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	var profiles handlers.ProfileRepository
	var sites handlers.SiteRepository
	if db != nil {
		defer db.Close()
		if cfg.IsDev() {
			if err := database.Seed(db); err != nil {
				return err
			}
		}
		profiles = store.NewProfileStore(db)
		sites = store.NewSiteStore(db)
		checks["database"] = db.PingContext
	} else {
		slog.Warn("postgres not configured, profiles will not be persisted")
	}

	// Valkey is optional: without it every request renders from scratch.
	var siteCache generator.Cache
	valkeyClient, err := openValkey(ctx, cfg)
	if err != nil {
		return err
	}
	if valkeyClient != nil {
		defer valkeyClient.Close()
		siteCache = cache.NewSiteCache(valkeyClient, cfg.CacheTTL)
		checks["valkey"] = func(ctx context.Context) error { return valkeyClient.Ping(ctx).Err() }
	} else {
		slog.Warn("valkey not configured, site cache disabled")
	}

	// S3 is optional: without it sites are only served locally.
	var publisher handlers.Publisher
	storageClient, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
	if err != nil {
		return err
	}
	if storageClient != nil {
		publisher = storageClient
		slog.Info("s3 publishing enabled", "endpoint", cfg.S3Endpoint, "bucket", storageClient.Bucket())
	}

	gen, err := newGenerator(cfg, cfg.SitesDir, cfg.UploadsDir, siteCache, recorder)
	if err != nil {
		return err
	}

	siteHandlers := handlers.NewSites(handlers.SitesConfig{
		Generator:      gen,
		Uploads:        uploads.NewStore(cfg.UploadsDir),
		Profiles:       profiles,
		Sites:          sites,
		Publisher:      publisher,
		Recorder:       recorder,
		MaxUploadBytes: cfg.MaxUploadBytes(),
	})

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Minute)
	defer limiter.Stop()

	r := router.New(router.Config{
		Sites:        siteHandlers,
		Metrics:      metrics.HTTPHandler(reg),
		Limiter:      limiter,
		FormRelayURL: cfg.FormRelayURL,
		HealthChecks: checks,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", cfg.Addr(), "sites_dir", cfg.SitesDir)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	slog.Info("server stopped gracefully")
	return nil
}
