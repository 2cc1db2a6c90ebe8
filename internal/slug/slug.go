// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug derives filename-safe names from business names and
// client-supplied upload names.
package slug

import (
	"path"
	"regexp"
	"strings"
)

var (
	// unsafe matches anything that isn't a letter, digit, separator or hyphen.
	unsafe = regexp.MustCompile(`[^a-z0-9\s_-]`)
	// separators collapses whitespace, underscores and hyphens into one hyphen.
	separators = regexp.MustCompile(`[\s_-]+`)
	// extension accepts a short alphanumeric file extension.
	extension = regexp.MustCompile(`^[a-z0-9]{1,10}$`)
)

// Generate creates a lowercase, hyphen-separated slug from s.
// Example: "Joe's Plumbing & Heating" → "joes-plumbing-heating"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = unsafe.ReplaceAllString(result, "")
	result = separators.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// OrDefault returns Generate(s), or fallback when s has no usable characters.
func OrDefault(s, fallback string) string {
	if g := Generate(s); g != "" {
		return g
	}
	return fallback
}

// Extension returns the lowercase extension of a client-supplied file name,
// without the dot. Directory components are ignored. It returns "" when the
// name has no extension or the extension contains anything but letters and
// digits.
func Extension(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || i == len(base)-1 {
		return ""
	}
	ext := strings.ToLower(base[i+1:])
	if !extension.MatchString(ext) {
		return ""
	}
	return ext
}
