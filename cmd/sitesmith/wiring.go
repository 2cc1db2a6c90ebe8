// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/redis/go-redis/v9"

	"sitesmith/internal/assets"
	"sitesmith/internal/cache"
	"sitesmith/internal/config"
	"sitesmith/internal/database"
	"sitesmith/internal/generator"
	"sitesmith/internal/metrics"
	"sitesmith/internal/theme"
)

// newGenerator builds a generator from configuration. siteCache and rec may
// be nil.
func newGenerator(c *config.Config, sitesDir, uploadsDir string, siteCache generator.Cache, rec metrics.Recorder) (*generator.Generator, error) {
	classes, err := theme.ForStyle(c.ClassStyle)
	if err != nil {
		return nil, err
	}
	if _, err := theme.Load(c.StylesheetPath); err != nil {
		return nil, fmt.Errorf("stylesheet: %w", err)
	}

	resolver, err := assets.NewResolver(uploadsDir, c.PlaceholderDir)
	if err != nil {
		return nil, err
	}

	return generator.New(generator.Config{
		SitesDir:     sitesDir,
		Theme:        theme.Options{Path: c.StylesheetPath, Classes: classes},
		FormRelayURL: c.FormRelayURL,
		Assets:       resolver,
		Cache:        siteCache,
		Recorder:     rec,
	}), nil
}

// openDatabase connects and migrates when persistence is configured. It
// returns nil when it is not.
func openDatabase(c *config.Config) (*sql.DB, error) {
	if !c.DatabaseEnabled() {
		return nil, nil
	}
	db, err := database.Connect(c.DSN())
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// openValkey connects when caching is configured. It returns nil when it
// is not.
func openValkey(ctx context.Context, c *config.Config) (*redis.Client, error) {
	if !c.CacheEnabled() {
		return nil, nil
	}
	return cache.ConnectValkey(ctx, c.ValkeyHost, c.ValkeyPort, c.ValkeyPassword, c.ValkeyDB)
}
