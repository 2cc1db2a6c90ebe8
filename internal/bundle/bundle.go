// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package bundle packages a generated site directory as a ZIP archive for
// download.
package bundle

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"sitesmith/internal/slug"
)

// ContentType is the MIME type of a bundle.
const ContentType = "application/zip"

// Write streams a deflated ZIP of every regular file under dir to w. Entry
// names are relative to dir and use forward slashes.
func Write(w io.Writer, dir string) error {
	zw := zip.NewWriter(w)

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		return addFile(zw, filepath.ToSlash(rel), p)
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("bundle %s: %w", dir, err)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("finish bundle: %w", err)
	}
	return nil
}

func addFile(zw *zip.Writer, name, src string) error {
	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}
	hdr, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	hdr.Name = name
	hdr.Method = zip.Deflate

	dst, err := zw.CreateHeader(hdr)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, f)
	return err
}

// Filename returns the download name for a business's bundle, such as
// "joes-plumbing-website.zip".
func Filename(businessName string) string {
	return slug.OrDefault(businessName, "website") + "-website.zip"
}
