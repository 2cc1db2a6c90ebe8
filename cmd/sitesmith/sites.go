// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"sitesmith/internal/store"
)

var sitesLimit int

var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Inspect stored business profiles",
}

var sitesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the most recent business profiles",
	Args:  cobra.NoArgs,
	RunE:  runSitesList,
}

func init() {
	sitesListCmd.Flags().IntVarP(&sitesLimit, "limit", "n", 20, "Maximum number of profiles to list")
	sitesCmd.AddCommand(sitesListCmd)
	rootCmd.AddCommand(sitesCmd)
}

func runSitesList(cmd *cobra.Command, _ []string) error {
	if !cfg.DatabaseEnabled() {
		return errors.New("POSTGRES_HOST is not set")
	}
	if sitesLimit <= 0 {
		return fmt.Errorf("invalid --limit %d", sitesLimit)
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	profiles, err := store.NewProfileStore(db).List(sitesLimit)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tBUSINESS\tINDUSTRY\tCREATED")
	for _, p := range profiles {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.BusinessName, p.Industry, p.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}
