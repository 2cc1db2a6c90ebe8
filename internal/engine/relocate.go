// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package engine

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// windowsPath matches drive-letter paths such as C:\ or D:/.
var windowsPath = regexp.MustCompile(`^[A-Za-z]:[\\/]`)

// CheckRelocatable reports references in doc that would break once the site
// directory is moved or served from another prefix: absolute filesystem
// paths, root-relative paths and file: URLs. Fragment links, relative files
// and absolute http(s) URLs are fine.
func CheckRelocatable(doc []byte) error {
	d, err := goquery.NewDocumentFromReader(bytes.NewReader(doc))
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}

	var bad []string
	d.Find("[src], [href], [action]").Each(func(_ int, s *goquery.Selection) {
		for _, attr := range []string{"src", "href", "action"} {
			v, ok := s.Attr(attr)
			if !ok {
				continue
			}
			if !relocatable(v) {
				bad = append(bad, fmt.Sprintf("%s=%q", attr, v))
			}
		}
	})
	if len(bad) > 0 {
		return fmt.Errorf("non-relocatable references: %s", strings.Join(bad, ", "))
	}
	return nil
}

func relocatable(ref string) bool {
	ref = strings.TrimSpace(ref)
	switch {
	case strings.HasPrefix(ref, "//"):
		return true
	case strings.HasPrefix(ref, "/"), strings.HasPrefix(ref, `\`):
		return false
	case strings.HasPrefix(strings.ToLower(ref), "file:"):
		return false
	case windowsPath.MatchString(ref):
		return false
	}
	return true
}
