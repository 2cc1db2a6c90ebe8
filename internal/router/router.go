// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// sitesmith server: the JSON API, static serving of generated sites, health
// and metrics.
package router

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/go-chi/chi/v5"

	"sitesmith/internal/handlers"
	"sitesmith/internal/middleware"
)

// HealthCheck probes one backing service.
type HealthCheck func(ctx context.Context) error

// Config holds what the router wires together. Metrics, Limiter and
// HealthChecks are optional.
type Config struct {
	Sites        *handlers.Sites
	Metrics      http.Handler
	Limiter      *middleware.RateLimiter
	FormRelayURL string
	HealthChecks map[string]HealthCheck
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(cfg Config) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.Get("/health", healthHandler(cfg.HealthChecks))
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/industries", cfg.Sites.Industries)

		r.Route("/sites", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				if cfg.Limiter != nil {
					r.Use(cfg.Limiter.Middleware)
				}
				r.Post("/", cfg.Sites.Create)
			})
			r.Get("/{id}", cfg.Sites.Get)
			r.Get("/{id}/download", cfg.Sites.Download)
			r.Delete("/{id}", cfg.Sites.Delete)
		})
	})

	// Generated sites, served as static files.
	r.Route(cfg.Sites.URLPrefix(), func(r chi.Router) {
		r.Use(middleware.SiteCSP(cfg.FormRelayURL))
		r.Get("/{id}", cfg.Sites.ServeIndex)
		r.Get("/{id}/", cfg.Sites.ServeIndex)
		r.Get("/{id}/{file}", cfg.Sites.Serve)
	})

	return r
}

// healthHandler reports "ok" when every check passes and "degraded" with
// 503 otherwise, listing each check's result.
func healthHandler(checks map[string]HealthCheck) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status := "ok"
		code := http.StatusOK
		results := make(map[string]string, len(names))
		for _, name := range names {
			if err := checks[name](ctx); err != nil {
				results[name] = err.Error()
				status = "degraded"
				code = http.StatusServiceUnavailable
				continue
			}
			results[name] = "ok"
		}

		body := map[string]any{"status": status}
		if len(results) > 0 {
			body["checks"] = results
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(body)
	}
}
