// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package content

import (
	"slices"
	"strings"
)

// businessToken is replaced with the business name in testimonial and
// auto-response copy.
const businessToken = "{business}"

// Testimonial is a canned customer quote.
type Testimonial struct {
	Text   string
	Author string
}

// Entry is the copy associated with one industry.
type Entry struct {
	Industry        Industry
	Tagline         string
	Headline        string
	Promise         string
	DefaultServices []string
	Testimonials    []Testimonial
	AutoResponse    string
}

// Select returns the copy for an industry tag. Unknown tags resolve to the
// default entry; this is the expected path for custom industries, not an error.
func Select(tag string) Entry {
	return For(ParseIndustry(tag))
}

// For returns the copy for an industry. The returned entry owns its slices.
func For(ind Industry) Entry {
	var e Entry
	switch ind {
	case IndustryPlumbing:
		e = plumbing
	case IndustryElectrical:
		e = electrical
	case IndustryConstruction:
		e = construction
	case IndustryLandscaping:
		e = landscaping
	case IndustryAutomotive:
		e = automotive
	case IndustryCleaning:
		e = cleaning
	case IndustryRetail:
		e = retail
	case IndustryHealthcare:
		e = healthcare
	case IndustryRestaurant:
		e = restaurant
	case IndustryProfessionalServices:
		e = professionalServices
	case IndustryOther:
		e = fallback
	default:
		e = fallback
	}
	e.DefaultServices = slices.Clone(e.DefaultServices)
	e.Testimonials = slices.Clone(e.Testimonials)
	return e
}

// TestimonialsFor returns the entry's testimonials with the business name
// filled in.
func (e Entry) TestimonialsFor(businessName string) []Testimonial {
	name := businessName
	if name == "" {
		name = "they"
	}
	out := make([]Testimonial, len(e.Testimonials))
	for i, t := range e.Testimonials {
		out[i] = Testimonial{Text: strings.ReplaceAll(t.Text, businessToken, name), Author: t.Author}
	}
	return out
}

// AutoResponseFor returns the contact form auto-response with the business
// name filled in.
func (e Entry) AutoResponseFor(businessName string) string {
	name := businessName
	if name == "" {
		name = "Our Team"
	}
	return strings.ReplaceAll(e.AutoResponse, businessToken, name)
}
