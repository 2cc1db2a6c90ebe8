// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// Output file names of a generated site.
const (
	FileIndex      = "index.html"
	FileStylesheet = "styles.css"
)

// GeneratedSite is the manifest returned for one generation call. It
// describes where the site's files live and how to reach them.
type GeneratedSite struct {
	SiteURL     string    `json:"site_url"`
	Files       []string  `json:"files"`
	Directory   string    `json:"directory"`
	CacheKey    string    `json:"cache_key,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// RenderedSite holds the generated documents of a site before they are
// written to disk. It is what the render cache stores.
type RenderedSite struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
}
