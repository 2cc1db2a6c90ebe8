// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package theme produces the stylesheet of a generated site. The base
// stylesheet declares two custom properties, --color-accent and
// --color-accent-dark, whose values are replaced with the HSL tokens derived
// from the business brand color. Everything else in the base is copied as is,
// except class selectors when a ClassMap is in use.
package theme

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strings"

	"sitesmith/internal/color"
	"sitesmith/web"
)

// Custom property names carrying the accent tokens.
const (
	PropAccent     = "--color-accent"
	PropAccentDark = "--color-accent-dark"
)

// Each pattern matches one declaration of the property: it must start at a
// declaration boundary and be followed by a colon, so --color-accent never
// matches --color-accent-dark and var(--color-accent) references are left
// alone. Patterns only ever see declaration segments reported by scan, never
// comments or strings.
var (
	accentDecl     = declPattern(PropAccent)
	accentDarkDecl = declPattern(PropAccentDark)
)

func declPattern(prop string) *regexp.Regexp {
	return regexp.MustCompile(`(^|[{;\s])` + regexp.QuoteMeta(prop) + `\s*:[^;}]*(;?)`)
}

// Render returns base with the accent declarations set to tokens. When base
// declares neither property, a :root block carrying both is prepended so the
// stylesheet always exposes the site's colors.
func Render(base string, tokens color.Tokens) string {
	var b strings.Builder
	b.Grow(len(base))
	n := 0
	scan(base, func(seg string, kind segKind) {
		if kind == segDecl {
			var k int
			seg, k = replaceDecl(seg, accentDecl, PropAccent, tokens.Accent)
			n += k
			seg, k = replaceDecl(seg, accentDarkDecl, PropAccentDark, tokens.AccentDark)
			n += k
		}
		b.WriteString(seg)
	})
	if n == 0 {
		slog.Warn("stylesheet declares no accent properties, prepending :root block")
		return rootBlock(tokens) + "\n" + b.String()
	}
	return b.String()
}

func replaceDecl(css string, re *regexp.Regexp, prop string, value color.HSL) (string, int) {
	n := 0
	out := re.ReplaceAllStringFunc(css, func(match string) string {
		n++
		sub := re.FindStringSubmatch(match)
		return sub[1] + prop + ": " + value.String() + ";"
	})
	return out, n
}

func rootBlock(tokens color.Tokens) string {
	return fmt.Sprintf(":root {\n  %s: %s;\n  %s: %s;\n}\n",
		PropAccent, tokens.Accent, PropAccentDark, tokens.AccentDark)
}

// Load reads the base stylesheet from path, or the embedded one when path is
// empty.
func Load(path string) (string, error) {
	if path == "" {
		data, err := fs.ReadFile(web.Assets, web.StylesheetPath)
		if err != nil {
			return "", fmt.Errorf("reading embedded stylesheet: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading stylesheet %s: %w", path, err)
	}
	return string(data), nil
}

// Options controls Stylesheet.
type Options struct {
	// Path overrides the embedded base stylesheet when set.
	Path string
	// Classes remaps class selectors; nil keeps the base class names.
	Classes ClassMap
}

// Base is a loaded base stylesheet.
type Base struct {
	CSS string
	// Fallback is set when the configured stylesheet could not be read and
	// Fallback output stands in for it.
	Fallback bool
}

// LoadBase loads the stylesheet at path, or the embedded one when path is
// empty. An unreadable file degrades to the fallback rather than failing.
func LoadBase(path string) Base {
	css, err := Load(path)
	if err != nil {
		slog.Warn("base stylesheet unavailable, using fallback", "path", path, "error", err)
		return Base{Fallback: true}
	}
	return Base{CSS: css}
}

// Digest returns the hex SHA-256 of the base content. The fallback has its
// own fixed digest, distinct from that of any loaded file.
func (b Base) Digest() string {
	if b.Fallback {
		return "fallback"
	}
	sum := sha256.Sum256([]byte(b.CSS))
	return hex.EncodeToString(sum[:])
}

// Stylesheet injects tokens into the base and applies the class remap.
func (b Base) Stylesheet(classes ClassMap, tokens color.Tokens) string {
	if b.Fallback {
		return classes.Rewrite(Fallback(tokens))
	}
	return classes.Rewrite(Render(b.CSS, tokens))
}

// Stylesheet loads the base stylesheet named by opts and renders it for
// tokens. The second result reports whether the fallback was used.
func Stylesheet(opts Options, tokens color.Tokens) (string, bool) {
	base := LoadBase(opts.Path)
	return base.Stylesheet(opts.Classes, tokens), base.Fallback
}

// Fallback returns a minimal self-contained stylesheet that still carries the
// accent color.
func Fallback(tokens color.Tokens) string {
	var b strings.Builder
	b.WriteString(rootBlock(tokens))
	b.WriteString(fallbackRules)
	return b.String()
}

const fallbackRules = `
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, sans-serif; line-height: 1.6; color: #1f2933; }
img { max-width: 100%; display: block; }
a { color: hsl(var(--color-accent)); }
.container { max-width: 1200px; margin: 0 auto; padding: 0 1.25rem; }
.header { padding: 1rem 0; border-bottom: 1px solid #e4e7eb; }
.hero { padding: 4rem 0; background: hsl(var(--color-accent)); color: #fff; }
.button { display: inline-block; padding: 0.75rem 1.5rem; border-radius: 0.5rem; text-decoration: none; }
.button--primary { background: hsl(var(--color-accent)); color: #fff; }
.button--primary:hover { background: hsl(var(--color-accent-dark)); }
.footer { padding: 2rem 0; background: #1f2933; color: #fff; }
`
