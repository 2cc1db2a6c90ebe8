package bundle

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestWrite(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"index.html":     "<!DOCTYPE html>",
		"styles.css":     ":root{}",
		"img/nested.png": "png",
		"logo.png":       "placeholder",
	}
	for name, body := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var buf bytes.Buffer
	if err := Write(&buf, dir); err != nil {
		t.Fatalf("Write: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("open zip: %v", err)
	}

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("open %s: %v", f.Name, err)
		}
		body, _ := io.ReadAll(rc)
		rc.Close()
		if string(body) != files[f.Name] {
			t.Errorf("%s = %q, want %q", f.Name, body, files[f.Name])
		}
		if f.Method != zip.Deflate {
			t.Errorf("%s not deflated", f.Name)
		}
	}
	sort.Strings(names)
	want := []string{"img/nested.png", "index.html", "logo.png", "styles.css"}
	if len(names) != len(want) {
		t.Fatalf("entries = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestWriteMissingDir(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Joe's Plumbing", "joes-plumbing-website.zip"},
		{"Bright Smile Dental", "bright-smile-dental-website.zip"},
		{"", "website-website.zip"},
		{"../../etc", "etc-website.zip"},
	}
	for _, tt := range tests {
		if got := Filename(tt.name); got != tt.want {
			t.Errorf("Filename(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
