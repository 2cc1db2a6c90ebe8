// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP handlers of the sitesmith API: site
// submission, lookup, download and static serving of generated sites.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sitesmith/internal/bundle"
	"sitesmith/internal/content"
	"sitesmith/internal/generator"
	"sitesmith/internal/metrics"
	"sitesmith/internal/models"
	"sitesmith/internal/store"
	"sitesmith/internal/uploads"
)

// ProfileRepository persists business profiles.
type ProfileRepository interface {
	Save(p *models.BusinessProfile) error
	FindByID(id string) (*models.BusinessProfile, error)
	Delete(id string) error
}

// SiteRepository persists generation records.
type SiteRepository interface {
	MarkGenerated(profileID string, site *models.GeneratedSite, publicURL string) error
	FindByProfileID(profileID string) (*store.SiteRecord, error)
}

// Publisher copies a generated site to public hosting.
type Publisher interface {
	PublishSite(ctx context.Context, siteID, dir string) (string, error)
	UnpublishSite(ctx context.Context, siteID string) error
}

// SitesConfig holds the dependencies of the Sites handlers. Generator and
// Uploads are required; the rest are optional and leave their feature off
// when nil.
type SitesConfig struct {
	Generator      *generator.Generator
	Uploads        *uploads.Store
	Profiles       ProfileRepository
	Sites          SiteRepository
	Publisher      Publisher
	Recorder       metrics.Recorder
	MaxUploadBytes int64
}

// Sites groups the site API handlers.
type Sites struct {
	gen       *generator.Generator
	uploads   *uploads.Store
	profiles  ProfileRepository
	sites     SiteRepository
	publisher Publisher
	recorder  metrics.Recorder
	maxUpload int64
}

// NewSites creates the site handlers.
func NewSites(cfg SitesConfig) *Sites {
	s := &Sites{
		gen:       cfg.Generator,
		uploads:   cfg.Uploads,
		profiles:  cfg.Profiles,
		sites:     cfg.Sites,
		publisher: cfg.Publisher,
		recorder:  cfg.Recorder,
		maxUpload: cfg.MaxUploadBytes,
	}
	if s.recorder == nil {
		s.recorder = metrics.NoopRecorder{}
	}
	if s.maxUpload <= 0 {
		s.maxUpload = 16 << 20
	}
	return s
}

// createResponse is the body of a successful submission.
type createResponse struct {
	ID          string                `json:"id"`
	Site        *models.GeneratedSite `json:"site"`
	PublicURL   string                `json:"public_url,omitempty"`
	DownloadURL string                `json:"download_url"`
}

// Create handles POST /api/sites: validate the profile, store uploads,
// persist, generate, publish and reply 201 with the manifest.
func (s *Sites) Create(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUpload)

	sub, err := decodeSubmission(r, s.maxUpload)
	if errors.Is(err, errBodyTooLarge) {
		writeError(w, fmt.Sprintf("Request too large. Maximum size is %d MB.", s.maxUpload>>20), http.StatusRequestEntityTooLarge)
		return
	}
	if err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	p := sub.profile

	if err := p.Validate(); err != nil {
		var ve *models.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":  "Please fill in the required fields.",
				"fields": ve.Fields,
			})
			return
		}
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	p.ID = uuid.NewString()
	if err := s.saveUploads(p, sub); err != nil {
		s.discard(p.ID, false)
		if errors.Is(err, uploads.ErrExtension) || errors.Is(err, uploads.ErrContent) {
			writeError(w, err.Error(), http.StatusBadRequest)
			return
		}
		slog.Error("save uploads failed", "profile_id", p.ID, "error", err)
		writeError(w, "Failed to store uploaded images.", http.StatusInternalServerError)
		return
	}

	if s.profiles != nil {
		if err := s.profiles.Save(p); err != nil {
			slog.Error("save profile failed", "profile_id", p.ID, "error", err)
			s.discard(p.ID, false)
			writeError(w, "Failed to save business profile.", http.StatusInternalServerError)
			return
		}
	}

	site, err := s.gen.Generate(r.Context(), p)
	if err != nil {
		slog.Error("site generation failed", "profile_id", p.ID, "error", err)
		s.discard(p.ID, true)
		writeError(w, "Failed to generate website.", http.StatusInternalServerError)
		return
	}

	publicURL := s.publish(r.Context(), p.ID, site.Directory)

	if s.sites != nil {
		if err := s.sites.MarkGenerated(p.ID, site, publicURL); err != nil {
			slog.Error("record generated site failed", "profile_id", p.ID, "error", err)
		}
	}

	w.Header().Set("Location", "/api/sites/"+p.ID)
	writeJSON(w, http.StatusCreated, createResponse{
		ID:          p.ID,
		Site:        site,
		PublicURL:   publicURL,
		DownloadURL: "/api/sites/" + p.ID + "/download",
	})
}

// saveUploads stores submitted images and records their names on p.
func (s *Sites) saveUploads(p *models.BusinessProfile, sub *submission) error {
	for _, role := range models.AllImageRoles {
		fh, ok := sub.files[role]
		if !ok {
			continue
		}
		f, err := fh.Open()
		if err != nil {
			return fmt.Errorf("open upload %s: %w", role, err)
		}
		name, err := s.uploads.Save(p.ID, role, fh.Filename, f)
		f.Close()
		if err != nil {
			return err
		}
		if p.UploadedFiles == nil {
			p.UploadedFiles = make(map[models.ImageRole]string)
		}
		p.UploadedFiles[role] = name
	}
	return nil
}

// discard removes what a failed submission left behind: its uploads, any
// partly written site files and, when stored is set, the saved profile.
// Failures are logged only.
func (s *Sites) discard(id string, stored bool) {
	if err := s.uploads.Remove(id); err != nil {
		slog.Warn("remove uploads failed", "profile_id", id, "error", err)
	}
	if err := os.RemoveAll(filepath.Join(s.gen.SitesDir(), id)); err != nil {
		slog.Warn("remove site files failed", "profile_id", id, "error", err)
	}
	if stored && s.profiles != nil {
		if err := s.profiles.Delete(id); err != nil {
			slog.Warn("delete profile failed", "profile_id", id, "error", err)
		}
	}
}

// publish uploads the site when a publisher is configured. Failures are
// logged and leave the site available locally.
func (s *Sites) publish(ctx context.Context, id, dir string) string {
	if s.publisher == nil {
		return ""
	}
	url, err := s.publisher.PublishSite(ctx, id, dir)
	s.recorder.IncPublish(err == nil)
	if err != nil {
		slog.Warn("site publish failed", "profile_id", id, "error", err)
		return ""
	}
	return url
}

// Get handles GET /api/sites/{id}. With persistence enabled it returns the
// stored record; otherwise it reports the site if its files exist.
func (s *Sites) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !generator.ValidID(id) {
		writeError(w, "Invalid site id.", http.StatusBadRequest)
		return
	}

	if s.sites != nil {
		rec, err := s.sites.FindByProfileID(id)
		if err != nil {
			slog.Error("find site failed", "profile_id", id, "error", err)
			writeError(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		if rec == nil {
			writeError(w, "Site not found.", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, rec)
		return
	}

	dir := filepath.Join(s.gen.SitesDir(), id)
	info, err := os.Stat(filepath.Join(dir, models.FileIndex))
	if err != nil {
		writeError(w, "Site not found.", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, store.SiteRecord{
		ProfileID: id,
		GeneratedSite: models.GeneratedSite{
			SiteURL:     s.gen.SiteURL(id),
			Directory:   dir,
			GeneratedAt: info.ModTime().UTC(),
		},
	})
}

// Download handles GET /api/sites/{id}/download by streaming a ZIP of the
// site directory.
func (s *Sites) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !generator.ValidID(id) {
		writeError(w, "Invalid site id.", http.StatusBadRequest)
		return
	}

	dir := filepath.Join(s.gen.SitesDir(), id)
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		writeError(w, "Website files not found.", http.StatusNotFound)
		return
	}

	name := ""
	if s.profiles != nil {
		if p, err := s.profiles.FindByID(id); err != nil {
			slog.Warn("download name lookup failed", "profile_id", id, "error", err)
		} else if p != nil {
			name = p.BusinessName
		}
	}

	w.Header().Set("Content-Type", bundle.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, bundle.Filename(name)))
	if err := bundle.Write(w, dir); err != nil {
		// Headers are already sent; the client sees a truncated archive.
		slog.Error("write site bundle failed", "profile_id", id, "error", err)
	}
}

// Delete handles DELETE /api/sites/{id}. It removes the published copy, the
// site directory, the uploaded images and the stored profile.
func (s *Sites) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !generator.ValidID(id) {
		writeError(w, "Invalid site id.", http.StatusBadRequest)
		return
	}

	dir := filepath.Join(s.gen.SitesDir(), id)
	_, statErr := os.Stat(dir)
	found := statErr == nil
	if s.profiles != nil {
		p, err := s.profiles.FindByID(id)
		if err != nil {
			slog.Error("find profile failed", "profile_id", id, "error", err)
			writeError(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}
		found = found || p != nil
	}
	if !found {
		writeError(w, "Site not found.", http.StatusNotFound)
		return
	}

	if s.publisher != nil {
		if err := s.publisher.UnpublishSite(r.Context(), id); err != nil {
			slog.Warn("site unpublish failed", "profile_id", id, "error", err)
		}
	}
	if err := os.RemoveAll(dir); err != nil {
		slog.Error("remove site files failed", "profile_id", id, "error", err)
		writeError(w, "Failed to delete website files.", http.StatusInternalServerError)
		return
	}
	if err := s.uploads.Remove(id); err != nil {
		slog.Error("remove uploads failed", "profile_id", id, "error", err)
		writeError(w, "Failed to delete uploaded images.", http.StatusInternalServerError)
		return
	}
	if s.profiles != nil {
		if err := s.profiles.Delete(id); err != nil {
			slog.Error("delete profile failed", "profile_id", id, "error", err)
			writeError(w, "Failed to delete business profile.", http.StatusInternalServerError)
			return
		}
	}

	slog.Info("site deleted", "profile_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// Serve handles GET /generated_sites/{id}/{file}.
func (s *Sites) Serve(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	file := chi.URLParam(r, "file")
	if !generator.ValidID(id) || !generator.ValidID(file) {
		http.NotFound(w, r)
		return
	}

	// ServeContent rather than ServeFile: the latter redirects every
	// request for index.html to its directory.
	f, err := os.Open(filepath.Join(s.gen.SitesDir(), id, file))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, file, info.ModTime(), f)
}

// ServeIndex handles GET /generated_sites/{id}/ by redirecting to the
// site's index page.
func (s *Sites) ServeIndex(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !generator.ValidID(id) {
		http.NotFound(w, r)
		return
	}
	http.Redirect(w, r, s.gen.SiteURL(id), http.StatusFound)
}

// URLPrefix returns the path generated sites are served under.
func (s *Sites) URLPrefix() string {
	return s.gen.URLPrefix()
}

// Industries handles GET /api/industries.
func (s *Sites) Industries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"industries": content.Industries()})
}
