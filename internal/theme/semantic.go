// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package theme

import "fmt"

// Class naming conventions accepted by ForStyle.
const (
	StyleBEM      = "bem"
	StyleSemantic = "semantic"
)

// ForStyle returns the class map for a naming convention. BEM is the base
// convention and maps to nil.
func ForStyle(style string) (ClassMap, error) {
	switch style {
	case "", StyleBEM:
		return nil, nil
	case StyleSemantic:
		return Semantic, nil
	default:
		return nil, fmt.Errorf("unknown class style %q", style)
	}
}

// Semantic maps the base BEM classes to section-oriented names. Several
// section headings share "section-title".
var Semantic = ClassMap{
	"header":          "site-header",
	"header__content": "header-content",
	"header__brand":   "brand",
	"header__logo":    "brand-logo",
	"header__name":    "brand-name",

	"nav":               "main-nav",
	"nav__list":         "nav-list",
	"nav__list--active": "nav-open",
	"nav__item":         "nav-item",
	"nav__link":         "nav-link",
	"nav__toggle":       "mobile-menu-toggle",
	"nav__toggle-line":  "hamburger-line",

	"button--primary":   "cta-button",
	"button--secondary": "secondary-button",

	"hero":             "hero-section",
	"hero__background": "hero-background",
	"hero__image":      "hero-image",
	"hero__content":    "hero-content",
	"hero__title":      "hero-title",
	"hero__subtitle":   "hero-subtitle",

	"features":                  "features-section",
	"features__grid":            "features-grid",
	"feature-card__icon":        "feature-icon",
	"feature-card__title":       "feature-title",
	"feature-card__description": "feature-description",

	"about":              "about-section",
	"about__content":     "about-content",
	"about__text":        "about-text",
	"about__title":       "section-title",
	"about__description": "about-description",
	"about__story":       "about-story",
	"about__media":       "about-media",
	"about__image":       "about-image",

	"services":                  "services-section",
	"services__title":           "section-title",
	"services__grid":            "services-grid",
	"service-card__title":       "service-title",
	"service-card__description": "service-description",
	"service-card__features":    "service-features",
	"service-card__feature":     "service-feature",

	"testimonials":              "testimonials-section",
	"testimonials__title":       "section-title",
	"testimonials__featured":    "featured-testimonial",
	"testimonials__quote":       "testimonial-quote",
	"testimonials__author":      "testimonial-author",
	"testimonials__grid":        "reviews-grid",
	"testimonial-card":          "review-card",
	"testimonial-card__content": "review-quote",
	"testimonial-card__footer":  "review-footer",
	"testimonial-card__avatar":  "reviewer-avatar",
	"testimonial-card__author":  "reviewer-name",
	"testimonial-card__rating":  "review-rating",

	"team":              "team-section",
	"team__title":       "section-title",
	"team__content":     "team-content",
	"team__info":        "team-info",
	"team__member-name": "team-member-name",
	"team__member-role": "team-member-role",
	"team__bio":         "team-bio",
	"team__credentials": "team-credentials",
	"team__media":       "team-media",
	"team__image":       "team-image",

	"contact":               "contact-section",
	"contact__title":        "section-title",
	"contact__content":      "contact-content",
	"contact__info":         "contact-info",
	"contact__description":  "contact-description",
	"contact__details":      "contact-details",
	"contact__item":         "contact-detail",
	"contact__icon":         "contact-icon",
	"contact__text":         "contact-text",
	"contact__form-wrapper": "contact-form",

	"form__group":    "form-group",
	"form__label":    "form-label",
	"form__input":    "form-input",
	"form__textarea": "form-textarea",
	"form__button":   "form-submit",

	"footer":             "site-footer",
	"footer__content":    "footer-content",
	"footer__brand":      "footer-brand",
	"footer__logo":       "footer-logo",
	"footer__logo-image": "footer-logo-image",
	"footer__name":       "footer-name",
	"footer__tagline":    "brand-tagline",
	"footer__section":    "footer-section",
	"footer__heading":    "footer-heading",
	"footer__list":       "footer-list",
	"footer__link":       "footer-link",
	"footer__contact":    "footer-contact",
	"footer__bottom":     "footer-bottom",
	"footer__copyright":  "copyright",
}
