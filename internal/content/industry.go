// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package content holds the static, per-industry marketing copy used to fill
// a generated site: taglines, hero copy, default services and testimonials.
// Lookups never fail; unrecognised industries resolve to IndustryOther.
package content

// Industry is the closed set of industries with dedicated copy.
type Industry int

const (
	IndustryOther Industry = iota
	IndustryPlumbing
	IndustryElectrical
	IndustryConstruction
	IndustryLandscaping
	IndustryAutomotive
	IndustryCleaning
	IndustryRetail
	IndustryHealthcare
	IndustryRestaurant
	IndustryProfessionalServices
)

// industryTags maps the form values to industries. Tags are case-sensitive.
var industryTags = map[string]Industry{
	"plumbing":              IndustryPlumbing,
	"electrical":            IndustryElectrical,
	"construction":          IndustryConstruction,
	"landscaping":           IndustryLandscaping,
	"automotive":            IndustryAutomotive,
	"cleaning":              IndustryCleaning,
	"retail":                IndustryRetail,
	"healthcare":            IndustryHealthcare,
	"restaurant":            IndustryRestaurant,
	"professional_services": IndustryProfessionalServices,
}

// ParseIndustry maps a free-text tag to an Industry. Any tag without
// dedicated copy, including the empty string, yields IndustryOther.
func ParseIndustry(tag string) Industry {
	if ind, ok := industryTags[tag]; ok {
		return ind
	}
	return IndustryOther
}

// String returns the form tag of the industry, or "other".
func (i Industry) String() string {
	switch i {
	case IndustryPlumbing:
		return "plumbing"
	case IndustryElectrical:
		return "electrical"
	case IndustryConstruction:
		return "construction"
	case IndustryLandscaping:
		return "landscaping"
	case IndustryAutomotive:
		return "automotive"
	case IndustryCleaning:
		return "cleaning"
	case IndustryRetail:
		return "retail"
	case IndustryHealthcare:
		return "healthcare"
	case IndustryRestaurant:
		return "restaurant"
	case IndustryProfessionalServices:
		return "professional_services"
	default:
		return "other"
	}
}

// Industries returns the tags of every industry with dedicated copy, in
// declaration order.
func Industries() []string {
	out := make([]string, 0, len(industryTags))
	for i := IndustryPlumbing; i <= IndustryProfessionalServices; i++ {
		out = append(out, i.String())
	}
	return out
}
