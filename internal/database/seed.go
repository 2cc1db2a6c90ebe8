// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"sitesmith/internal/models"
)

// DemoProfileID is the id of the profile created by Seed.
const DemoProfileID = "demo"

// DemoProfile returns the sample business used for local development.
func DemoProfile() *models.BusinessProfile {
	return &models.BusinessProfile{
		ID:               DemoProfileID,
		BusinessName:     "Riverside Plumbing Co.",
		Industry:         "plumbing",
		Email:            "hello@riverside-plumbing.example",
		Phone:            "(555) 123-4567",
		Address:          "48 Canal Street, Riverside",
		MissionStatement: "Honest plumbing work for the homes and businesses of Riverside.",
		Values:           "Honest Pricing\nOn-Time Arrival\nClean Work Sites",
		Goals:            "Be the first call for every plumbing emergency in town.",
		Services:         "Emergency Repairs\nDrain Cleaning\nWater Heaters\nLeak Detection",
		BusinessStory:    "Started in **1998** with one van and a toolbox.",
		OwnerName:        "Sam Rivera",
		YearsExperience:  "25",
		PrimaryColor:     "#1E6FD9",
	}
}

// Seed inserts the demo profile when no profiles exist yet.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM business_profiles").Scan(&count); err != nil {
		return fmt.Errorf("seed check profiles: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	p := DemoProfile()
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("seed encode profile: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO business_profiles (id, business_name, industry, email, data)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`, p.ID, p.BusinessName, p.Industry, p.Email, data)
	if err != nil {
		return fmt.Errorf("seed insert profile: %w", err)
	}

	slog.Info("database seeded with demo profile", "id", p.ID, "business", p.BusinessName)
	return nil
}
