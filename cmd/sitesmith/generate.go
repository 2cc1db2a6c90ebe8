// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"sitesmith/internal/models"
	"sitesmith/internal/slug"
)

var (
	generateProfile string
	generateOut     string
	generateUploads string
	generateID      string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one site from a profile file",
	Long: `Generate a site from a YAML or JSON business profile and print its manifest as JSON.

The site is written to <out>/<id>. The id defaults to the profile's id, or a
slug of the business name.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generateProfile, "profile", "p", "", "Path to the profile file (YAML or JSON)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Root output directory (default SITES_DIR)")
	generateCmd.Flags().StringVar(&generateUploads, "uploads", "", "Uploads directory (default UPLOADS_DIR)")
	generateCmd.Flags().StringVar(&generateID, "id", "", "Site id, overriding the profile's")
	_ = generateCmd.MarkFlagRequired("profile")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	p, err := readProfile(generateProfile)
	if err != nil {
		return err
	}
	if generateID != "" {
		p.ID = generateID
	}
	if p.ID == "" {
		p.ID = slug.OrDefault(p.BusinessName, "site")
	}
	if err := p.Validate(); err != nil {
		return err
	}

	out := generateOut
	if out == "" {
		out = cfg.SitesDir
	}
	uploadsDir := generateUploads
	if uploadsDir == "" {
		uploadsDir = cfg.UploadsDir
	}

	gen, err := newGenerator(cfg, out, uploadsDir, nil, nil)
	if err != nil {
		return err
	}
	site, err := gen.Generate(cmd.Context(), p)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(site)
}

// readProfile decodes a profile file. YAML is a superset of JSON, so one
// decoder reads both.
func readProfile(path string) (*models.BusinessProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile: %w", err)
	}
	var p models.BusinessProfile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return &p, nil
}
