// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package imaging inspects uploaded images without fully decoding them. It
// confirms a file really is a PNG, JPEG, GIF or WebP image and rejects
// decompression bombs before the file is stored.
package imaging

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"

	_ "golang.org/x/image/webp" // register WebP decoder
)

// MaxPixels is the largest accepted image area.
const MaxPixels = 40_000_000

var (
	// ErrNotImage is returned for content no registered decoder accepts.
	ErrNotImage = errors.New("not a supported image")
	// ErrTooLarge is returned for images above MaxPixels.
	ErrTooLarge = errors.New("image dimensions too large")
)

// Info describes an inspected image.
type Info struct {
	Format string // "png", "jpeg", "gif" or "webp"
	Width  int
	Height int
}

// Inspect reads only the image header from r.
func Inspect(r io.Reader) (Info, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %v", ErrNotImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Info{}, fmt.Errorf("%w: empty dimensions", ErrNotImage)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPixels {
		return Info{}, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrTooLarge, cfg.Width, cfg.Height, MaxPixels)
	}
	return Info{Format: format, Width: cfg.Width, Height: cfg.Height}, nil
}
