// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"
)

var allKeys = []string{
	"APP_HOST", "APP_PORT", "APP_ENV", "LOG_LEVEL",
	"SITES_DIR", "UPLOADS_DIR", "STYLESHEET_PATH", "PLACEHOLDER_DIR", "CLASS_STYLE",
	"FORM_RELAY_URL", "CACHE_TTL",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD", "VALKEY_DB",
	"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_PUBLIC_URL",
	"RATE_LIMIT", "MAX_UPLOAD_MB",
}

// clearEnv sets every key Load reads to the empty string, which
// envOrDefault treats the same as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range allKeys {
		t.Setenv(key, "")
	}
}

// TestLoad_Defaults verifies that Load returns sensible development defaults
// when no environment variables are set.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	defaults := map[string][2]string{
		"Host":         {cfg.Host, "0.0.0.0"},
		"Port":         {cfg.Port, "8080"},
		"Env":          {cfg.Env, "development"},
		"LogLevel":     {cfg.LogLevel, "info"},
		"SitesDir":     {cfg.SitesDir, "generated_sites"},
		"UploadsDir":   {cfg.UploadsDir, "uploads"},
		"ClassStyle":   {cfg.ClassStyle, "bem"},
		"FormRelayURL": {cfg.FormRelayURL, "https://formsubmit.co/"},
		"DBHost":       {cfg.DBHost, ""},
		"DBUser":       {cfg.DBUser, "sitesmith"},
		"DBPassword":   {cfg.DBPassword, "changeme"},
		"DBName":       {cfg.DBName, "sitesmith"},
		"ValkeyHost":   {cfg.ValkeyHost, ""},
		"ValkeyPort":   {cfg.ValkeyPort, "6379"},
		"S3Endpoint":   {cfg.S3Endpoint, ""},
		"S3Bucket":     {cfg.S3Bucket, "sitesmith-sites"},
	}
	for field, v := range defaults {
		if v[0] != v[1] {
			t.Errorf("%s = %q, want %q", field, v[0], v[1])
		}
	}

	if cfg.CacheTTL != time.Hour {
		t.Errorf("CacheTTL = %v, want 1h", cfg.CacheTTL)
	}
	if cfg.RateLimit != 10 {
		t.Errorf("RateLimit = %d, want 10", cfg.RateLimit)
	}
	if cfg.MaxUploadMB != 16 || cfg.MaxUploadBytes() != 16<<20 {
		t.Errorf("MaxUploadMB = %d, bytes = %d", cfg.MaxUploadMB, cfg.MaxUploadBytes())
	}
	if cfg.DatabaseEnabled() || cfg.CacheEnabled() {
		t.Error("database and cache should be disabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "3000")
	t.Setenv("SITES_DIR", "/srv/sites")
	t.Setenv("CLASS_STYLE", "semantic")
	t.Setenv("CACHE_TTL", "15m")
	t.Setenv("POSTGRES_HOST", "db.internal")
	t.Setenv("VALKEY_HOST", "cache.internal")
	t.Setenv("VALKEY_DB", "3")
	t.Setenv("RATE_LIMIT", "60")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "3000" || cfg.SitesDir != "/srv/sites" || cfg.ClassStyle != "semantic" {
		t.Errorf("string overrides not applied: %+v", cfg)
	}
	if cfg.CacheTTL != 15*time.Minute {
		t.Errorf("CacheTTL = %v", cfg.CacheTTL)
	}
	if cfg.ValkeyDB != 3 || cfg.RateLimit != 60 {
		t.Errorf("ValkeyDB = %d, RateLimit = %d", cfg.ValkeyDB, cfg.RateLimit)
	}
	if !cfg.DatabaseEnabled() || !cfg.CacheEnabled() {
		t.Error("database and cache should be enabled")
	}
}

func TestLoad_InvalidNumbers(t *testing.T) {
	tests := []struct {
		key, val string
	}{
		{"CACHE_TTL", "soon"},
		{"CACHE_TTL", "-1m"},
		{"RATE_LIMIT", "many"},
		{"MAX_UPLOAD_MB", "-4"},
		{"VALKEY_DB", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.val, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.key) {
				t.Errorf("error should mention %s, got: %v", tt.key, err)
			}
		})
	}
}

func TestLoad_ProductionRequiresPassword(t *testing.T) {
	t.Run("default password rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("POSTGRES_HOST", "db.internal")

		_, err := Load()
		if err == nil {
			t.Fatal("expected error in production with default password")
		}
		if !strings.Contains(err.Error(), "POSTGRES_PASSWORD") {
			t.Errorf("error should mention POSTGRES_PASSWORD, got: %v", err)
		}
	})

	t.Run("custom password accepted", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")
		t.Setenv("POSTGRES_HOST", "db.internal")
		t.Setenv("POSTGRES_PASSWORD", "s3cur3-pr0d-p@ssw0rd")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if cfg.DBPassword != "s3cur3-pr0d-p@ssw0rd" {
			t.Errorf("DBPassword = %q", cfg.DBPassword)
		}
	})

	t.Run("no database configured", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("APP_ENV", "production")

		if _, err := Load(); err != nil {
			t.Errorf("production without a database should load, got: %v", err)
		}
	})
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "h", DBPort: "5432", DBName: "d"}
	want := "postgres://u:p@h:5432/d?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}

func TestAddr(t *testing.T) {
	tests := []struct {
		host, port, want string
	}{
		{"0.0.0.0", "8080", "0.0.0.0:8080"},
		{"localhost", "3000", "localhost:3000"},
		{"", "8080", ":8080"},
	}
	for _, tt := range tests {
		cfg := &Config{Host: tt.host, Port: tt.port}
		if got := cfg.Addr(); got != tt.want {
			t.Errorf("Addr() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsDev(t *testing.T) {
	for env, want := range map[string]bool{"development": true, "production": false, "testing": false} {
		if got := (&Config{Env: env}).IsDev(); got != want {
			t.Errorf("IsDev() = %v, want %v (env=%q)", got, want, env)
		}
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := (&Config{LogLevel: tt.level}).SlogLevel(); got != tt.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tt.level, got, tt.want)
		}
	}
}
