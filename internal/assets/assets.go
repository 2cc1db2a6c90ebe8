// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package assets places the four image files every generated site references.
// Each role is filled from the business's upload when there is one, then from
// a bundled placeholder, then from a tiny stub file so the page never points
// at a missing file.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"

	"sitesmith/internal/models"
	"sitesmith/web"
)

// Source reports where a resolved asset came from.
type Source string

const (
	SourceUpload      Source = "upload"
	SourcePlaceholder Source = "placeholder"
	SourceStub        Source = "stub"
)

// StubContent is written when neither an upload nor a placeholder is usable.
const StubContent = "placeholder"

type roleFiles struct {
	dest        string
	placeholder string
}

var files = map[models.ImageRole]roleFiles{
	models.RoleLogo:       {dest: "logo.png", placeholder: "logo_placeholder.png"},
	models.RoleHeroImage:  {dest: "hero-background.jpg", placeholder: "hero_image_with_icon.png"},
	models.RoleAboutImage: {dest: "about-image.jpg", placeholder: "about_us_image_placeholder.png"},
	models.RoleTeamImage:  {dest: "team-image.jpg", placeholder: "team_image_placeholder.png"},
}

// DestName returns the file name the page uses for role.
func DestName(role models.ImageRole) string {
	return files[role].dest
}

// DestNames returns the file names of every role, in models.AllImageRoles
// order.
func DestNames() []string {
	out := make([]string, len(models.AllImageRoles))
	for i, role := range models.AllImageRoles {
		out[i] = DestName(role)
	}
	return out
}

// Resolver copies role images into a site directory.
type Resolver struct {
	// UploadsDir holds uploads as <UploadsDir>/<profile id>/<file>.
	UploadsDir string
	// Placeholders holds the fallback images; nil means the embedded set.
	Placeholders fs.FS
}

// NewResolver returns a Resolver reading placeholders from dir, or from the
// embedded set when dir is empty.
func NewResolver(uploadsDir, placeholderDir string) (*Resolver, error) {
	r := &Resolver{UploadsDir: uploadsDir}
	if placeholderDir != "" {
		info, err := os.Stat(placeholderDir)
		if err != nil {
			return nil, fmt.Errorf("stat placeholder dir: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("placeholder path %s is not a directory", placeholderDir)
		}
		r.Placeholders = os.DirFS(placeholderDir)
	}
	return r, nil
}

func (r *Resolver) placeholders() fs.FS {
	if r.Placeholders != nil {
		return r.Placeholders
	}
	sub, err := fs.Sub(web.Assets, web.PlaceholderDir)
	if err != nil {
		// Only fails for an invalid path literal.
		panic(err)
	}
	return sub
}

// Resolve writes the image for role into outDir and reports its source. An
// error is returned only when not even the stub could be written.
func (r *Resolver) Resolve(role models.ImageRole, p *models.BusinessProfile, outDir string) (Source, error) {
	rf, ok := files[role]
	if !ok {
		return "", fmt.Errorf("unknown image role %q", role)
	}
	dest := filepath.Join(outDir, rf.dest)

	if path, ok := r.uploadPath(role, p); ok {
		err := copyFile(dest, path)
		if err == nil {
			return SourceUpload, nil
		}
		slog.Warn("upload unusable, falling back to placeholder", "profile_id", p.ID, "role", role, "error", err)
	}

	data, err := fs.ReadFile(r.placeholders(), rf.placeholder)
	if err == nil {
		if err = atomic.WriteFile(dest, bytes.NewReader(data)); err == nil {
			return SourcePlaceholder, nil
		}
	}
	slog.Warn("placeholder unavailable, writing stub", "profile_id", p.ID, "role", role, "error", err)

	if err := atomic.WriteFile(dest, strings.NewReader(StubContent)); err != nil {
		return "", fmt.Errorf("write stub %s: %w", rf.dest, err)
	}
	return SourceStub, nil
}

// ResolveAll resolves every role. A failing role does not stop the others;
// the returned error joins all failures.
func (r *Resolver) ResolveAll(p *models.BusinessProfile, outDir string) (map[models.ImageRole]Source, error) {
	sources := make(map[models.ImageRole]Source, len(models.AllImageRoles))
	var errs []error
	for _, role := range models.AllImageRoles {
		src, err := r.Resolve(role, p, outDir)
		if err != nil {
			errs = append(errs, fmt.Errorf("resolve %s: %w", role, err))
			continue
		}
		sources[role] = src
	}
	return sources, errors.Join(errs...)
}

// uploadPath returns the on-disk location of the role's upload. Names that are
// not a single path element are ignored.
func (r *Resolver) uploadPath(role models.ImageRole, p *models.BusinessProfile) (string, bool) {
	name, ok := p.Upload(role)
	if !ok || r.UploadsDir == "" {
		return "", false
	}
	if !singleElement(name) || !singleElement(p.ID) {
		slog.Warn("ignoring upload with unsafe name", "profile_id", p.ID, "role", role, "file", name)
		return "", false
	}
	return filepath.Join(r.UploadsDir, p.ID, name), true
}

func singleElement(name string) bool {
	return name != "" && name != "." && name != ".." &&
		!strings.ContainsAny(name, `/\`) && filepath.Base(name) == name
}

func copyFile(dest, src string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", src)
	}
	return atomic.WriteFile(dest, f)
}
