// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"sitesmith/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the rendered-site cache",
}

var cacheFlushCmd = &cobra.Command{
	Use:   "flush",
	Short: "Remove every cached rendering",
	Args:  cobra.NoArgs,
	RunE:  runCacheFlush,
}

func init() {
	cacheCmd.AddCommand(cacheFlushCmd)
	rootCmd.AddCommand(cacheCmd)
}

func runCacheFlush(cmd *cobra.Command, _ []string) error {
	if !cfg.CacheEnabled() {
		return errors.New("VALKEY_HOST is not set")
	}

	client, err := openValkey(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer client.Close()

	n, err := cache.NewSiteCache(client, cfg.CacheTTL).InvalidateAll(cmd.Context())
	if err != nil {
		return fmt.Errorf("flush site cache: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "removed %d cached sites\n", n)
	return nil
}
