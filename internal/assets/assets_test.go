package assets

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"sitesmith/internal/models"
	"sitesmith/web"
)

func writeUpload(t *testing.T, uploads, id, name string, data []byte) {
	t.Helper()
	dir := filepath.Join(uploads, id)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestResolveUpload(t *testing.T) {
	uploads, out := t.TempDir(), t.TempDir()
	writeUpload(t, uploads, "p1", "logo.webp", []byte("uploaded-bytes"))

	r := &Resolver{UploadsDir: uploads}
	p := &models.BusinessProfile{ID: "p1", UploadedFiles: map[models.ImageRole]string{models.RoleLogo: "logo.webp"}}

	src, err := r.Resolve(models.RoleLogo, p, out)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if src != SourceUpload {
		t.Errorf("source = %s, want upload", src)
	}
	got, err := os.ReadFile(filepath.Join(out, "logo.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "uploaded-bytes" {
		t.Errorf("logo.png = %q", got)
	}
}

func TestResolveEmbeddedPlaceholder(t *testing.T) {
	out := t.TempDir()
	r := &Resolver{UploadsDir: t.TempDir()}
	p := &models.BusinessProfile{ID: "p1"}

	src, err := r.Resolve(models.RoleHeroImage, p, out)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if src != SourcePlaceholder {
		t.Errorf("source = %s, want placeholder", src)
	}

	want, err := fs.ReadFile(web.Assets, web.PlaceholderDir+"/hero_image_with_icon.png")
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(filepath.Join(out, "hero-background.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Error("placeholder bytes differ")
	}
}

func TestResolveMissingUploadFallsBack(t *testing.T) {
	out := t.TempDir()
	r := &Resolver{UploadsDir: t.TempDir()}
	p := &models.BusinessProfile{ID: "p1", UploadedFiles: map[models.ImageRole]string{models.RoleAboutImage: "gone.jpg"}}

	src, err := r.Resolve(models.RoleAboutImage, p, out)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if src != SourcePlaceholder {
		t.Errorf("source = %s, want placeholder", src)
	}
}

func TestResolveStub(t *testing.T) {
	out := t.TempDir()
	r := &Resolver{Placeholders: fstest.MapFS{}}
	p := &models.BusinessProfile{ID: "p1"}

	src, err := r.Resolve(models.RoleTeamImage, p, out)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if src != SourceStub {
		t.Errorf("source = %s, want stub", src)
	}
	got, err := os.ReadFile(filepath.Join(out, "team-image.jpg"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != StubContent {
		t.Errorf("stub = %q", got)
	}
}

func TestResolveRejectsPathSeparators(t *testing.T) {
	uploads, out := t.TempDir(), t.TempDir()
	writeUpload(t, uploads, "p1", "secret.png", []byte("secret"))

	tests := []struct {
		name string
		id   string
		file string
	}{
		{name: "parent traversal", id: "p2", file: "../p1/secret.png"},
		{name: "nested path", id: "p1", file: "sub/secret.png"},
		{name: "backslash", id: "p1", file: `..\secret.png`},
		{name: "dot dot", id: "p1", file: ".."},
		{name: "unsafe id", id: "../p1", file: "secret.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &Resolver{UploadsDir: uploads, Placeholders: fstest.MapFS{
				"logo_placeholder.png": {Data: []byte("ph")},
			}}
			p := &models.BusinessProfile{ID: tt.id, UploadedFiles: map[models.ImageRole]string{models.RoleLogo: tt.file}}

			src, err := r.Resolve(models.RoleLogo, p, out)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if src != SourcePlaceholder {
				t.Errorf("source = %s, want placeholder", src)
			}
		})
	}
}

func TestResolveAll(t *testing.T) {
	uploads, out := t.TempDir(), t.TempDir()
	writeUpload(t, uploads, "p1", "team.jpg", []byte("team"))

	r := &Resolver{UploadsDir: uploads, Placeholders: fstest.MapFS{
		"logo_placeholder.png":     {Data: []byte("logo")},
		"hero_image_with_icon.png": {Data: []byte("hero")},
	}}
	p := &models.BusinessProfile{ID: "p1", UploadedFiles: map[models.ImageRole]string{models.RoleTeamImage: "team.jpg"}}

	sources, err := r.ResolveAll(p, out)
	if err != nil {
		t.Fatalf("ResolveAll: %v", err)
	}
	want := map[models.ImageRole]Source{
		models.RoleLogo:       SourcePlaceholder,
		models.RoleHeroImage:  SourcePlaceholder,
		models.RoleAboutImage: SourceStub,
		models.RoleTeamImage:  SourceUpload,
	}
	for role, w := range want {
		if sources[role] != w {
			t.Errorf("%s: source = %s, want %s", role, sources[role], w)
		}
	}
	for _, name := range DestNames() {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestResolveAllContinuesAfterFailure(t *testing.T) {
	out := filepath.Join(t.TempDir(), "missing-dir")
	r := &Resolver{Placeholders: fstest.MapFS{}}

	sources, err := r.ResolveAll(&models.BusinessProfile{ID: "p1"}, out)
	if err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
	if len(sources) != 0 {
		t.Errorf("sources = %v", sources)
	}
}

func TestNewResolver(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "logo_placeholder.png"), []byte("disk"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := NewResolver("", dir)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	out := t.TempDir()
	if _, err := r.Resolve(models.RoleLogo, &models.BusinessProfile{ID: "p1"}, out); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(filepath.Join(out, "logo.png"))
	if string(got) != "disk" {
		t.Errorf("logo.png = %q, want placeholder from disk", got)
	}

	if _, err := NewResolver("", filepath.Join(dir, "nope")); err == nil {
		t.Error("expected error for missing placeholder dir")
	}
}

func TestDestNames(t *testing.T) {
	want := []string{"logo.png", "hero-background.jpg", "about-image.jpg", "team-image.jpg"}
	got := DestNames()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("DestNames()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}
