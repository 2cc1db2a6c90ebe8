// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package color converts a brand color from sRGB hex notation into the HSL
// triples used as CSS theme tokens.
package color

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
)

const (
	// DefaultHex is the brand blue used when no usable color is supplied.
	DefaultHex = "#0077CC"

	// darkDelta is how many lightness points the dark variant drops.
	darkDelta = 10
	// darkFloor is the minimum lightness of the dark variant.
	darkFloor = 20
)

// HSL is a color as integer hue degrees [0,360), saturation and lightness
// percentages [0,100].
type HSL struct {
	H int
	S int
	L int
}

// String formats the color the way CSS custom properties expect it:
// "<hue> <saturation>% <lightness>%".
func (c HSL) String() string {
	return fmt.Sprintf("%d %d%% %d%%", c.H, c.S, c.L)
}

// Dark returns the hover/active variant: lightness reduced by 10 points,
// never below 20%.
func (c HSL) Dark() HSL {
	l := c.L - darkDelta
	if l < darkFloor {
		l = darkFloor
	}
	return HSL{H: c.H, S: c.S, L: l}
}

// Tokens is the set of theme colors derived from one brand color.
type Tokens struct {
	Accent     HSL
	AccentDark HSL
}

// Derive computes the theme tokens for a hex color, falling back to
// DefaultHex when the input is missing or malformed.
func Derive(hex string) Tokens {
	accent := Parse(hex)
	return Tokens{Accent: accent, AccentDark: accent.Dark()}
}

// Parse converts hex to HSL and never fails: missing or malformed input
// yields the HSL of DefaultHex.
func Parse(hex string) HSL {
	c, err := HexToHSL(hex)
	if err != nil {
		if strings.TrimSpace(hex) != "" {
			slog.Warn("invalid primary color, using default", "color", hex, "error", err)
		}
		c, _ = HexToHSL(DefaultHex)
	}
	return c
}

// HexToHSL converts "#RRGGBB" (or "RRGGBB", or the "#RGB" shorthand) into
// HSL. Each component is rounded half away from zero.
func HexToHSL(hex string) (HSL, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return HSL{}, err
	}

	maxV := math.Max(r, math.Max(g, b))
	minV := math.Min(r, math.Min(g, b))
	diff := maxV - minV
	l := (maxV + minV) / 2

	var h, s float64
	if diff != 0 {
		if l > 0.5 {
			s = diff / (2 - maxV - minV)
		} else {
			s = diff / (maxV + minV)
		}

		switch maxV {
		case r:
			h = (g - b) / diff
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/diff + 2
		default:
			h = (r-g)/diff + 4
		}
		h /= 6
	}

	hue := int(math.Round(h * 360))
	if hue == 360 {
		hue = 0
	}
	return HSL{
		H: hue,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}, nil
}

// parseHex returns the channels of a hex color normalised to [0,1].
func parseHex(hex string) (r, g, b float64, err error) {
	s := strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return 0, 0, 0, fmt.Errorf("parse hex color %q: want 6 hex digits", hex)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("parse hex color %q: %w", hex, err)
	}
	r = float64((v>>16)&0xFF) / 255
	g = float64((v>>8)&0xFF) / 255
	b = float64(v&0xFF) / 255
	return r, g, b, nil
}
