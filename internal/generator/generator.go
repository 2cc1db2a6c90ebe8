// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generator runs the site generation pipeline for one business
// profile: select industry copy, derive theme colors, assemble the HTML and
// stylesheet, write them with the image assets into the site directory, and
// return the manifest.
package generator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/natefinch/atomic"

	"sitesmith/internal/assets"
	"sitesmith/internal/color"
	"sitesmith/internal/content"
	"sitesmith/internal/engine"
	"sitesmith/internal/metrics"
	"sitesmith/internal/models"
	"sitesmith/internal/theme"
)

// renderVersion is part of every cache key. Bump it when templates or the
// base stylesheet change in a way that must not be served from cache.
const renderVersion = 1

// DefaultURLPrefix is where generated sites are served from.
const DefaultURLPrefix = "/generated_sites"

// ErrInvalidID is returned for ids that are not a single path element.
var ErrInvalidID = errors.New("invalid site id")

// Cache stores rendered documents by content key. Implementations treat
// their own failures as misses.
type Cache interface {
	Get(ctx context.Context, key string) (models.RenderedSite, bool)
	Set(ctx context.Context, key string, rs models.RenderedSite)
}

// Config holds the dependencies of a Generator. Only SitesDir and Assets are
// required.
type Config struct {
	SitesDir     string
	URLPrefix    string
	Theme        theme.Options
	FormRelayURL string
	Assets       *assets.Resolver
	Cache        Cache
	Recorder     metrics.Recorder
	Now          func() time.Time
}

// Generator produces sites. It holds no per-call state and is safe for
// concurrent use with distinct profile ids.
type Generator struct {
	sitesDir  string
	urlPrefix string
	theme     theme.Options
	relayURL  string
	assets    *assets.Resolver
	cache     Cache
	recorder  metrics.Recorder
	now       func() time.Time
}

// New creates a Generator from cfg, filling defaults for optional fields.
func New(cfg Config) *Generator {
	g := &Generator{
		sitesDir:  cfg.SitesDir,
		urlPrefix: cfg.URLPrefix,
		theme:     cfg.Theme,
		relayURL:  cfg.FormRelayURL,
		assets:    cfg.Assets,
		cache:     cfg.Cache,
		recorder:  cfg.Recorder,
		now:       cfg.Now,
	}
	if g.urlPrefix == "" {
		g.urlPrefix = DefaultURLPrefix
	}
	if g.assets == nil {
		g.assets = &assets.Resolver{}
	}
	if g.recorder == nil {
		g.recorder = metrics.NoopRecorder{}
	}
	if g.now == nil {
		g.now = time.Now
	}
	return g
}

// SitesDir returns the root directory sites are written under.
func (g *Generator) SitesDir() string {
	return g.sitesDir
}

// URLPrefix returns the path generated sites are served under.
func (g *Generator) URLPrefix() string {
	return g.urlPrefix
}

// SiteURL returns the index page URL of the site with the given id.
func (g *Generator) SiteURL(id string) string {
	return path.Join(g.urlPrefix, id, models.FileIndex)
}

// Generate writes the site for p into <SitesDir>/<p.ID> and returns its
// manifest. Only a failure to create the directory, render the page or write
// the two documents is returned as an error; image problems degrade to
// placeholders.
func (g *Generator) Generate(ctx context.Context, p *models.BusinessProfile) (*models.GeneratedSite, error) {
	began := time.Now()
	site, err := g.generate(ctx, p, g.now())
	outcome := metrics.OutcomeSuccess
	if err != nil {
		outcome = metrics.OutcomeFailed
	}
	g.recorder.ObserveGeneration(time.Since(began), outcome)
	return site, err
}

func (g *Generator) generate(ctx context.Context, p *models.BusinessProfile, now time.Time) (*models.GeneratedSite, error) {
	if !ValidID(p.ID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, p.ID)
	}
	dir := filepath.Join(g.sitesDir, p.ID)
	// The mkdir error is returned as is, typically an *fs.PathError naming
	// the directory.
	if err := os.MkdirAll(dir, 0o755); err != nil {
		slog.Error("create site directory failed", "profile_id", p.ID, "dir", dir, "error", err)
		return nil, err
	}

	year := now.Year()
	base := theme.LoadBase(g.theme.Path)
	key, err := g.cacheKey(p, year, base)
	if err != nil {
		slog.Warn("cache key unavailable, rendering without cache", "profile_id", p.ID, "error", err)
	}

	// A fallback render stands in for a stylesheet that could not be read.
	// It is neither served from nor stored in the cache.
	lookupKey := key
	if base.Fallback {
		lookupKey = ""
	}
	rendered, hit := g.lookup(ctx, lookupKey)
	if !hit {
		rendered, err = g.render(p, year, base)
		if err != nil {
			return nil, err
		}
		if g.cache != nil && lookupKey != "" {
			g.cache.Set(ctx, lookupKey, rendered)
		}
	}

	if err := writeFile(filepath.Join(dir, models.FileIndex), rendered.HTML); err != nil {
		return nil, err
	}
	if err := writeFile(filepath.Join(dir, models.FileStylesheet), rendered.CSS); err != nil {
		return nil, err
	}

	sources, err := g.assets.ResolveAll(p, dir)
	if err != nil {
		slog.Warn("some site images could not be written", "profile_id", p.ID, "error", err)
	}
	for role, src := range sources {
		g.recorder.IncAssetSource(string(role), string(src))
	}

	site := &models.GeneratedSite{
		SiteURL:     g.SiteURL(p.ID),
		Files:       append([]string{models.FileIndex, models.FileStylesheet}, assets.DestNames()...),
		Directory:   dir,
		CacheKey:    key,
		GeneratedAt: now.UTC(),
	}
	slog.Info("site generated", "profile_id", p.ID, "industry", p.Industry, "cache_hit", hit, "dir", dir)
	return site, nil
}

// Render produces the HTML and CSS for p without touching the filesystem.
func (g *Generator) Render(p *models.BusinessProfile, year int) (models.RenderedSite, error) {
	return g.render(p, year, theme.LoadBase(g.theme.Path))
}

func (g *Generator) render(p *models.BusinessProfile, year int, base theme.Base) (models.RenderedSite, error) {
	entry := content.Select(p.Industry)
	tokens := color.Derive(p.PrimaryColor)

	html, err := engine.Assemble(p, entry, engine.Options{
		Year:         year,
		FormRelayURL: g.relayURL,
		Classes:      g.theme.Classes,
	})
	if err != nil {
		return models.RenderedSite{}, fmt.Errorf("assemble html: %w", err)
	}
	css := base.Stylesheet(g.theme.Classes, tokens)
	return models.RenderedSite{HTML: string(html), CSS: css}, nil
}

func (g *Generator) lookup(ctx context.Context, key string) (models.RenderedSite, bool) {
	if g.cache == nil || key == "" {
		g.recorder.IncCacheLookup(metrics.CacheDisabled)
		return models.RenderedSite{}, false
	}
	rs, ok := g.cache.Get(ctx, key)
	if ok {
		g.recorder.IncCacheLookup(metrics.CacheHit)
	} else {
		g.recorder.IncCacheLookup(metrics.CacheMiss)
	}
	return rs, ok
}

// keyInput is everything the rendered documents depend on.
type keyInput struct {
	Version    int                    `json:"version"`
	Profile    models.BusinessProfile `json:"profile"`
	Year       int                    `json:"year"`
	Relay      string                 `json:"relay"`
	Stylesheet string                 `json:"stylesheet"` // digest of the base content
	Classes    theme.ClassMap         `json:"classes,omitempty"`
}

// CacheKey returns the content hash of p for the given footer year and the
// current base stylesheet. The id is excluded, so two profiles that differ
// only in id share a key.
func (g *Generator) CacheKey(p *models.BusinessProfile, year int) (string, error) {
	return g.cacheKey(p, year, theme.LoadBase(g.theme.Path))
}

func (g *Generator) cacheKey(p *models.BusinessProfile, year int, base theme.Base) (string, error) {
	anon := *p
	anon.ID = ""
	// encoding/json writes struct fields in declaration order and map keys
	// sorted, which makes the encoding canonical.
	data, err := json.Marshal(keyInput{
		Version:    renderVersion,
		Profile:    anon,
		Year:       year,
		Relay:      g.relayURL,
		Stylesheet: base.Digest(),
		Classes:    g.theme.Classes,
	})
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// ValidID reports whether id can name a site directory: a single, non-empty
// path element.
func ValidID(id string) bool {
	return id != "" && id != "." && id != ".." &&
		!strings.ContainsAny(id, `/\`) && filepath.Base(id) == id
}

func writeFile(path, data string) error {
	if err := atomic.WriteFile(path, strings.NewReader(data)); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
