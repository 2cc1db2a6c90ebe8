// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"sitesmith/internal/database"
)

var (
	migrateSeed   bool
	migrateStatus bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

func init() {
	migrateCmd.Flags().BoolVar(&migrateSeed, "seed", false, "Insert the demo profile when the database is empty")
	migrateCmd.Flags().BoolVar(&migrateStatus, "status", false, "Print migration status after applying")
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	if !cfg.DatabaseEnabled() {
		return errors.New("POSTGRES_HOST is not set")
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if migrateSeed {
		if err := database.Seed(db); err != nil {
			return err
		}
	}
	if migrateStatus {
		return database.Status(db)
	}
	return nil
}
