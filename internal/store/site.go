// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"sitesmith/internal/models"
)

// SiteRecord is the persisted state of the last generation for a profile.
type SiteRecord struct {
	ProfileID string `json:"profile_id"`
	models.GeneratedSite
	PublicURL string `json:"public_url,omitempty"`
}

// SiteStore handles generated-site records.
type SiteStore struct {
	db *sql.DB
}

// NewSiteStore creates a new SiteStore.
func NewSiteStore(db *sql.DB) *SiteStore {
	return &SiteStore{db: db}
}

// MarkGenerated records that the site for profileID was generated. A later
// generation of the same profile replaces the record. publicURL is empty
// when the site was not published.
func (s *SiteStore) MarkGenerated(profileID string, site *models.GeneratedSite, publicURL string) error {
	files, err := json.Marshal(site.Files)
	if err != nil {
		return fmt.Errorf("encode site files: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO generated_sites (profile_id, site_url, directory, files, cache_key, public_url, generated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7)
		ON CONFLICT (profile_id) DO UPDATE SET
			site_url = EXCLUDED.site_url,
			directory = EXCLUDED.directory,
			files = EXCLUDED.files,
			cache_key = EXCLUDED.cache_key,
			public_url = EXCLUDED.public_url,
			generated_at = EXCLUDED.generated_at
	`, profileID, site.SiteURL, site.Directory, files, site.CacheKey, publicURL, site.GeneratedAt)
	if err != nil {
		return fmt.Errorf("mark site generated: %w", err)
	}
	return nil
}

// FindByProfileID retrieves the site record of a profile. Returns nil, nil
// if the profile has never been generated.
func (s *SiteStore) FindByProfileID(profileID string) (*SiteRecord, error) {
	rec := &SiteRecord{}
	var files []byte
	var publicURL sql.NullString
	err := s.db.QueryRow(`
		SELECT profile_id, site_url, directory, files, cache_key, public_url, generated_at
		FROM generated_sites WHERE profile_id = $1
	`, profileID).Scan(&rec.ProfileID, &rec.SiteURL, &rec.Directory, &files, &rec.CacheKey, &publicURL, &rec.GeneratedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find site by profile id: %w", err)
	}

	if err := json.Unmarshal(files, &rec.Files); err != nil {
		return nil, fmt.Errorf("decode site files: %w", err)
	}
	rec.PublicURL = publicURL.String
	return rec, nil
}
