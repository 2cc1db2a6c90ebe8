// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ImageRole identifies one of the fixed image slots of a generated site.
type ImageRole string

const (
	RoleLogo       ImageRole = "logo"
	RoleHeroImage  ImageRole = "hero_image"
	RoleAboutImage ImageRole = "about_image"
	RoleTeamImage  ImageRole = "team_image"
)

// AllImageRoles lists every image role in resolution order.
var AllImageRoles = []ImageRole{RoleLogo, RoleHeroImage, RoleAboutImage, RoleTeamImage}

// Valid reports whether r is one of the known image roles.
func (r ImageRole) Valid() bool {
	switch r {
	case RoleLogo, RoleHeroImage, RoleAboutImage, RoleTeamImage:
		return true
	}
	return false
}

// BusinessProfile is the structured description of one business that a site
// is generated from. Values and Services are newline-delimited lists.
// The generator treats a profile as read-only.
type BusinessProfile struct {
	ID               string               `json:"id" yaml:"id"`
	BusinessName     string               `json:"business_name" yaml:"business_name" validate:"required,max=200"`
	Industry         string               `json:"industry" yaml:"industry" validate:"required,max=100"`
	Email            string               `json:"email" yaml:"email" validate:"required,email"`
	Phone            string               `json:"phone,omitempty" yaml:"phone,omitempty" validate:"max=50"`
	Address          string               `json:"address,omitempty" yaml:"address,omitempty" validate:"max=300"`
	MissionStatement string               `json:"mission_statement,omitempty" yaml:"mission_statement,omitempty" validate:"max=2000"`
	Values           string               `json:"values,omitempty" yaml:"values,omitempty" validate:"max=2000"`
	Goals            string               `json:"goals,omitempty" yaml:"goals,omitempty" validate:"max=2000"`
	Services         string               `json:"services,omitempty" yaml:"services,omitempty" validate:"max=4000"`
	BusinessStory    string               `json:"business_story,omitempty" yaml:"business_story,omitempty" validate:"max=10000"`
	OwnerName        string               `json:"owner_name,omitempty" yaml:"owner_name,omitempty" validate:"max=200"`
	YearsExperience  string               `json:"years_experience,omitempty" yaml:"years_experience,omitempty" validate:"max=20"`
	PrimaryColor     string               `json:"primary_color,omitempty" yaml:"primary_color,omitempty"`
	UploadedFiles    map[ImageRole]string `json:"uploaded_files,omitempty" yaml:"uploaded_files,omitempty"`
}

// ValuesList returns the non-blank, trimmed lines of the values field.
func (p *BusinessProfile) ValuesList() []string {
	return SplitLines(p.Values)
}

// ServicesList returns the non-blank, trimmed lines of the services field.
func (p *BusinessProfile) ServicesList() []string {
	return SplitLines(p.Services)
}

// HasTeam reports whether the profile names an owner. The team section of a
// generated site is rendered only when it does.
func (p *BusinessProfile) HasTeam() bool {
	return strings.TrimSpace(p.OwnerName) != ""
}

// Upload returns the stored filename for a role, if any.
func (p *BusinessProfile) Upload(role ImageRole) (string, bool) {
	name, ok := p.UploadedFiles[role]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}

// SplitLines splits free text on newlines, trimming each line and dropping
// blank ones. Order is preserved.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// ValidationError lists the profile fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s", strings.Join(e.Fields, ", "))
}

var validate = validator.New()

// Validate checks the fields an upstream form must supply before a site is
// generated: business name, industry and a well-formed email.
func (p *BusinessProfile) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return p.validateUploads()
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate profile: %w", err)
	}
	ve := &ValidationError{}
	for _, fe := range verrs {
		ve.Fields = append(ve.Fields, fe.Field())
	}
	return ve
}

func (p *BusinessProfile) validateUploads() error {
	ve := &ValidationError{}
	for role := range p.UploadedFiles {
		if !role.Valid() {
			ve.Fields = append(ve.Fields, "UploadedFiles."+string(role))
		}
	}
	if len(ve.Fields) > 0 {
		sort.Strings(ve.Fields)
		return ve
	}
	return nil
}
