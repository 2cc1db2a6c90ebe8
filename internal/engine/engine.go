// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package engine assembles the single-page HTML document of a generated site.
// The page is built from embedded html/templates, one per section, so every
// profile-derived value is contextually escaped. Class names in the markup go
// through the same theme.ClassMap as the stylesheet.
package engine

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"strings"
	"unicode"

	"sitesmith/internal/content"
	"sitesmith/internal/markdown"
	"sitesmith/internal/models"
	"sitesmith/internal/theme"
)

// Caps on the number of cards rendered per section.
const (
	MaxFeatures = 3
	MaxServices = 6
	MaxReviews  = 3
)

const (
	DefaultYears    = "10+"
	DefaultRelayURL = "https://formsubmit.co/"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// base is parsed once and never executed; Assemble executes clones that bind
// the class map of the call.
var base = template.Must(template.New("site").Funcs(template.FuncMap{
	"cls":   theme.ClassMap(nil).Classes,
	"lower": strings.ToLower,
}).ParseFS(templateFS, "templates/*.tmpl"))

var fallbackFeatures = []string{"Quality Service", "Professional Team", "Customer Satisfaction"}

// Feature icons, cycled across feature cards.
var featureIcons = []template.HTML{
	`<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M20 6L9 17l-5-5"/></svg>`,
	`<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><path d="M12 2l3.09 6.26L22 9.27l-5 4.87L7 21l1.18-6.86L2 9.27l6.91-1.01L12 2z"/></svg>`,
	`<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2"><circle cx="12" cy="12" r="10"/><path d="M12 6v6l4 2"/></svg>`,
}

// Options controls the parts of the page that do not come from the profile.
type Options struct {
	// Year is printed in the footer. Callers pass it in so output stays
	// deterministic.
	Year int
	// FormRelayURL is the form-relay endpoint; the business email is
	// appended to it. Empty means DefaultRelayURL.
	FormRelayURL string
	// Classes maps class names; nil keeps the base BEM names.
	Classes theme.ClassMap
}

type page struct {
	Name          string
	Tagline       string
	Headline      string
	Promise       string
	Description   string
	Features      []feature
	Mission       string
	Goals         string
	Story         template.HTML
	Services      []string
	Featured      *review
	Reviews       []review
	Team          *team
	Phone         string
	Email         string
	Address       string
	Form          form
	FooterTagline string
	Year          int
}

type feature struct {
	Title string
	Icon  template.HTML
}

type review struct {
	Text     string
	Author   string
	Initials string
}

type team struct {
	Owner string
	Years string
	Bio   string
}

type form struct {
	Action       string
	Subject      string
	AutoResponse string
}

// Assemble renders the complete document for p using the industry copy in
// entry. p is only read.
func Assemble(p *models.BusinessProfile, entry content.Entry, opts Options) ([]byte, error) {
	data := buildPage(p, entry, opts)

	tmpl, err := base.Clone()
	if err != nil {
		return nil, fmt.Errorf("clone templates: %w", err)
	}
	tmpl.Funcs(template.FuncMap{"cls": opts.Classes.Classes})

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "page", data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

func buildPage(p *models.BusinessProfile, entry content.Entry, opts Options) *page {
	name := orDefault(p.BusinessName, "Business")
	mission := strings.TrimSpace(p.MissionStatement)

	story, err := markdown.Story(p.BusinessStory)
	if err != nil {
		// The story is optional copy; a conversion failure drops it.
		slog.Warn("business story conversion failed", "profile_id", p.ID, "error", err)
		story = ""
	}

	data := &page{
		Name:          name,
		Tagline:       entry.Tagline,
		Headline:      entry.Headline,
		Promise:       entry.Promise,
		Description:   orDefault(mission, "Professional services for your needs"),
		Features:      features(p.ValuesList()),
		Mission:       orDefault(mission, "Providing quality services to our community"),
		Goals:         strings.TrimSpace(p.Goals),
		Story:         story,
		Services:      services(p.ServicesList(), entry.DefaultServices),
		Phone:         strings.TrimSpace(p.Phone),
		Email:         strings.TrimSpace(p.Email),
		Address:       strings.TrimSpace(p.Address),
		FooterTagline: orDefault(mission, "Quality service you can trust"),
		Year:          opts.Year,
		Form: form{
			Action:       formAction(opts.FormRelayURL, p.Email),
			Subject:      "New inquiry from website",
			AutoResponse: entry.AutoResponseFor(p.BusinessName),
		},
	}

	quotes := entry.TestimonialsFor(p.BusinessName)
	if len(quotes) > 0 {
		featured := toReview(quotes[0])
		data.Featured = &featured
		for _, q := range quotes[1:min(len(quotes), MaxReviews+1)] {
			data.Reviews = append(data.Reviews, toReview(q))
		}
	}

	if p.HasTeam() {
		data.Team = &team{
			Owner: strings.TrimSpace(p.OwnerName),
			Years: orDefault(p.YearsExperience, DefaultYears),
			Bio:   orDefault(mission, "Committed to excellence and customer satisfaction."),
		}
	}
	return data
}

func features(values []string) []feature {
	if len(values) == 0 {
		values = fallbackFeatures
	}
	values = values[:min(len(values), MaxFeatures)]
	out := make([]feature, len(values))
	for i, v := range values {
		out[i] = feature{Title: v, Icon: featureIcons[i%len(featureIcons)]}
	}
	return out
}

func services(listed, defaults []string) []string {
	if len(listed) == 0 {
		listed = defaults
	}
	return listed[:min(len(listed), MaxServices)]
}

func toReview(t content.Testimonial) review {
	return review{Text: t.Text, Author: t.Author, Initials: Initials(t.Author)}
}

// Initials returns the upper-cased first letters of the first two words of
// name.
func Initials(name string) string {
	var b strings.Builder
	for i, word := range strings.Fields(name) {
		if i == 2 {
			break
		}
		r := []rune(word)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// formAction builds the relay endpoint for the business email.
func formAction(relay, email string) string {
	if relay == "" {
		relay = DefaultRelayURL
	}
	if !strings.HasSuffix(relay, "/") {
		relay += "/"
	}
	return relay + url.PathEscape(strings.TrimSpace(email))
}

func orDefault(s, def string) string {
	if s = strings.TrimSpace(s); s != "" {
		return s
	}
	return def
}
