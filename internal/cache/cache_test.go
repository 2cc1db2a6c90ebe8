// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"sitesmith/internal/models"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, siteKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(context.Background(), host, port, os.Getenv("VALKEY_PASSWORD"), 15)
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestSiteCacheSetAndGet(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSiteCache(client, time.Minute)
	ctx := context.Background()

	want := models.RenderedSite{HTML: "<!DOCTYPE html><p>hi</p>", CSS: ":root{--color-accent: 0 0% 0%;}"}
	sc.Set(ctx, "abc", want)

	got, ok := sc.Get(ctx, "abc")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if got != want {
		t.Errorf("Get = %+v, want %+v", got, want)
	}

	ttl, err := client.TTL(ctx, siteKeyPrefix+"abc").Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("ttl = %v", ttl)
	}
}

func TestSiteCacheMiss(t *testing.T) {
	sc := NewSiteCache(testValkeyClient(t), time.Minute)
	if _, ok := sc.Get(context.Background(), "missing"); ok {
		t.Error("expected miss")
	}
}

func TestSiteCacheCorruptEntryIsMiss(t *testing.T) {
	client := testValkeyClient(t)
	ctx := context.Background()
	if err := client.Set(ctx, siteKeyPrefix+"bad", "not json", time.Minute).Err(); err != nil {
		t.Fatal(err)
	}

	if _, ok := NewSiteCache(client, time.Minute).Get(ctx, "bad"); ok {
		t.Error("corrupt entry returned as hit")
	}
}

func TestSiteCacheInvalidate(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSiteCache(client, time.Minute)
	ctx := context.Background()

	sc.Set(ctx, "one", models.RenderedSite{HTML: "1"})
	sc.Set(ctx, "two", models.RenderedSite{HTML: "2"})
	sc.Invalidate(ctx, "one")

	if _, ok := sc.Get(ctx, "one"); ok {
		t.Error("invalidated entry still cached")
	}
	if _, ok := sc.Get(ctx, "two"); !ok {
		t.Error("unrelated entry removed")
	}
}

func TestSiteCacheInvalidateAll(t *testing.T) {
	client := testValkeyClient(t)
	sc := NewSiteCache(client, time.Minute)
	ctx := context.Background()

	sc.Set(ctx, "a", models.RenderedSite{HTML: "a"})
	sc.Set(ctx, "b", models.RenderedSite{HTML: "b"})
	if err := client.Set(ctx, "other:key", "keep", time.Minute).Err(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { client.Del(ctx, "other:key") })

	n, err := sc.InvalidateAll(ctx)
	if err != nil {
		t.Fatalf("InvalidateAll: %v", err)
	}
	if n < 2 {
		t.Errorf("deleted = %d, want at least 2", n)
	}
	if _, ok := sc.Get(ctx, "a"); ok {
		t.Error("entry a survived InvalidateAll")
	}
	if v, _ := client.Get(ctx, "other:key").Result(); v != "keep" {
		t.Error("InvalidateAll removed a key outside the prefix")
	}
}

func TestNewSiteCacheDefaultTTL(t *testing.T) {
	sc := NewSiteCache(nil, 0)
	if sc.ttl != DefaultSiteTTL {
		t.Errorf("ttl = %v, want %v", sc.ttl, DefaultSiteTTL)
	}
}
