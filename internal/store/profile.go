// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the PostgreSQL persistence of business profiles
// and the records of the sites generated from them.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sitesmith/internal/models"
)

// ProfileStore handles business profile database operations. The full
// profile is kept as JSONB; the columns beside it exist for listing.
type ProfileStore struct {
	db *sql.DB
}

// NewProfileStore creates a new ProfileStore.
func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// ProfileSummary is one row of a profile listing.
type ProfileSummary struct {
	ID           string    `json:"id"`
	BusinessName string    `json:"business_name"`
	Industry     string    `json:"industry"`
	CreatedAt    time.Time `json:"created_at"`
}

// Save inserts or replaces a profile. A profile without an id is given a new
// UUID, which is written back to p.
func (s *ProfileStore) Save(p *models.BusinessProfile) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO business_profiles (id, business_name, industry, email, data)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			industry = EXCLUDED.industry,
			email = EXCLUDED.email,
			data = EXCLUDED.data,
			updated_at = now()
	`, p.ID, p.BusinessName, p.Industry, p.Email, data)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// FindByID retrieves a profile by id. Returns nil, nil if not found.
func (s *ProfileStore) FindByID(id string) (*models.BusinessProfile, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM business_profiles WHERE id = $1`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find profile by id: %w", err)
	}

	var p models.BusinessProfile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decode profile %s: %w", id, err)
	}
	p.ID = id
	return &p, nil
}

// List returns the most recently created profiles, newest first.
func (s *ProfileStore) List(limit int) ([]ProfileSummary, error) {
	rows, err := s.db.Query(`
		SELECT id, business_name, industry, created_at
		FROM business_profiles
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var out []ProfileSummary
	for rows.Next() {
		var ps ProfileSummary
		if err := rows.Scan(&ps.ID, &ps.BusinessName, &ps.Industry, &ps.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		out = append(out, ps)
	}
	return out, rows.Err()
}

// Delete removes a profile and, by cascade, its generated-site record.
func (s *ProfileStore) Delete(id string) error {
	_, err := s.db.Exec(`DELETE FROM business_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	return nil
}
