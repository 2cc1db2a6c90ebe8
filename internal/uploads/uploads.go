// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package uploads stores the images a business submits with its profile.
// Files land in <dir>/<profileID>/<role>.<ext>, which is where the asset
// resolver looks for them.
package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"sitesmith/internal/imaging"
	"sitesmith/internal/models"
	"sitesmith/internal/slug"
)

// AllowedExtensions lists the accepted image extensions.
var AllowedExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

var (
	// ErrExtension is returned for files whose extension is not allowed.
	ErrExtension = errors.New("file type not allowed")
	// ErrRole is returned for unknown image roles.
	ErrRole = errors.New("unknown image role")
	// ErrContent is returned for files that are not a readable image.
	ErrContent = errors.New("file is not a valid image")
	// ErrProfileID is returned for ids that cannot name a directory.
	ErrProfileID = errors.New("invalid profile id")
)

// Store saves uploads under a root directory.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the root upload directory.
func (s *Store) Dir() string {
	return s.dir
}

// Allowed reports whether filename has an accepted image extension.
func Allowed(filename string) bool {
	return AllowedExtensions[slug.Extension(filename)]
}

// Save writes r as the image for role and returns the stored file name,
// <role>.<ext>. The client-supplied filename only contributes its extension.
// The content must decode as a supported image; see imaging.Inspect.
func (s *Store) Save(profileID string, role models.ImageRole, filename string, r io.Reader) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("%w: %q", ErrRole, role)
	}
	if profileID == "" || filepath.Base(profileID) != profileID || profileID == "." || profileID == ".." {
		return "", fmt.Errorf("%w: %q", ErrProfileID, profileID)
	}
	ext := slug.Extension(filename)
	if !AllowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", ErrExtension, filename)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	info, err := imaging.Inspect(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContent, err)
	}

	dir := filepath.Join(s.dir, profileID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	name := string(role) + "." + ext
	if err := atomic.WriteFile(filepath.Join(dir, name), bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("save upload %s: %w", name, err)
	}

	slog.Debug("upload saved", "profile_id", profileID, "role", role, "file", name,
		"format", info.Format, "width", info.Width, "height", info.Height)
	return name, nil
}

// Remove deletes every upload of a profile.
func (s *Store) Remove(profileID string) error {
	if profileID == "" || filepath.Base(profileID) != profileID {
		return fmt.Errorf("%w: %q", ErrProfileID, profileID)
	}
	if err := os.RemoveAll(filepath.Join(s.dir, profileID)); err != nil {
		return fmt.Errorf("remove uploads: %w", err)
	}
	return nil
}
