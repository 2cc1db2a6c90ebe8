// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"sitesmith/internal/models"
)

// errBodyTooLarge is returned when a submission exceeds the upload limit.
var errBodyTooLarge = errors.New("request body too large")

// submission is a decoded site request: the profile plus any image files
// sent with a multipart form.
type submission struct {
	profile *models.BusinessProfile
	files   map[models.ImageRole]*multipart.FileHeader
}

// formFields maps multipart field names to profile fields.
func formFields(p *models.BusinessProfile) map[string]*string {
	return map[string]*string{
		"business_name":     &p.BusinessName,
		"industry":          &p.Industry,
		"email":             &p.Email,
		"phone":             &p.Phone,
		"address":           &p.Address,
		"mission_statement": &p.MissionStatement,
		"values":            &p.Values,
		"goals":             &p.Goals,
		"services":          &p.Services,
		"business_story":    &p.BusinessStory,
		"owner_name":        &p.OwnerName,
		"years_experience":  &p.YearsExperience,
		"primary_color":     &p.PrimaryColor,
	}
}

// decodeSubmission reads a profile from a JSON body or a multipart form.
// Client-supplied ids and upload names are discarded: both are assigned by
// the server.
func decodeSubmission(r *http.Request, maxBytes int64) (*submission, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var sub *submission
	var err error
	switch mediaType {
	case "multipart/form-data":
		sub, err = decodeMultipart(r, maxBytes)
	case "application/json", "":
		sub, err = decodeJSON(r)
	default:
		return nil, fmt.Errorf("unsupported content type %q", mediaType)
	}
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) || errors.Is(err, multipart.ErrMessageTooLarge) {
			return nil, errBodyTooLarge
		}
		return nil, err
	}

	sub.profile.ID = ""
	sub.profile.UploadedFiles = nil
	return sub, nil
}

func decodeJSON(r *http.Request) (*submission, error) {
	var p models.BusinessProfile
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &submission{profile: &p}, nil
}

func decodeMultipart(r *http.Request, maxBytes int64) (*submission, error) {
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		return nil, fmt.Errorf("parse form: %w", err)
	}

	p := &models.BusinessProfile{}
	for name, field := range formFields(p) {
		*field = strings.ReplaceAll(r.FormValue(name), "\r\n", "\n")
	}

	files := make(map[models.ImageRole]*multipart.FileHeader)
	for _, role := range models.AllImageRoles {
		fhs := r.MultipartForm.File[string(role)]
		if len(fhs) > 0 && fhs[0].Filename != "" && fhs[0].Size > 0 {
			files[role] = fhs[0]
		}
	}
	return &submission{profile: p, files: files}, nil
}
