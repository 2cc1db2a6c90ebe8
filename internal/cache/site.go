// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// site.go provides a Valkey-backed cache of rendered sites. Generation is a
// pure function of the profile content, so the assembled HTML and CSS are
// stored under a hash of that content and reused on the next identical
// request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"sitesmith/internal/models"
)

const (
	// siteKeyPrefix is the Valkey key prefix for rendered sites.
	siteKeyPrefix = "site:"

	// DefaultSiteTTL is how long a rendered site stays cached.
	DefaultSiteTTL = time.Hour
)

// SiteCache stores rendered sites in Valkey as JSON.
type SiteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSiteCache creates a new site cache backed by the given Valkey client.
func NewSiteCache(client *redis.Client, ttl time.Duration) *SiteCache {
	if ttl == 0 {
		ttl = DefaultSiteTTL
	}
	return &SiteCache{client: client, ttl: ttl}
}

// Get retrieves a rendered site. Errors and corrupt entries count as a miss.
func (sc *SiteCache) Get(ctx context.Context, key string) (models.RenderedSite, bool) {
	val, err := sc.client.Get(ctx, siteKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.RenderedSite{}, false
	}
	if err != nil {
		slog.Warn("site cache get error", "key", key, "error", err)
		return models.RenderedSite{}, false
	}

	var rs models.RenderedSite
	if err := json.Unmarshal(val, &rs); err != nil {
		slog.Warn("site cache entry corrupt", "key", key, "error", err)
		return models.RenderedSite{}, false
	}
	slog.Debug("site cache hit", "key", key)
	return rs, true
}

// Set stores a rendered site with the configured TTL.
func (sc *SiteCache) Set(ctx context.Context, key string, rs models.RenderedSite) {
	val, err := json.Marshal(rs)
	if err != nil {
		slog.Warn("site cache encode error", "key", key, "error", err)
		return
	}
	if err := sc.client.Set(ctx, siteKeyPrefix+key, val, sc.ttl).Err(); err != nil {
		slog.Warn("site cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single rendered site.
func (sc *SiteCache) Invalidate(ctx context.Context, key string) {
	if err := sc.client.Del(ctx, siteKeyPrefix+key).Err(); err != nil {
		slog.Warn("site cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("site cache invalidated", "key", key)
}

// InvalidateAll removes every rendered site by scanning for the prefix and
// returns how many entries were deleted.
func (sc *SiteCache) InvalidateAll(ctx context.Context) (int, error) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := sc.client.Scan(ctx, cursor, siteKeyPrefix+"*", 100).Result()
		if err != nil {
			return deleted, err
		}
		if len(keys) > 0 {
			if err := sc.client.Del(ctx, keys...).Err(); err != nil {
				return deleted, err
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("site cache cleared", "deleted", deleted)
	}
	return deleted, nil
}
