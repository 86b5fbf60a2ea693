// fetch_test.go tests [Fetch] for each source kind, including the remote to
// cache fallback.

package palette

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"tools.zach/dev/colorsets/internal/paths"
)

const samplePalette = `version = 1

[Brand]
brand500 = { light = "#34C759", dark = "#2FB551" }
brand900 = "#165425"
`

func TestFetchBuiltin(t *testing.T) {
	for _, kind := range []string{SourceBuiltin, ""} {
		tbl, err := Fetch(context.Background(), Source{Kind: kind})
		if err != nil {
			t.Fatalf("Fetch(%q): %v", kind, err)
		}
		if tbl.Len() != Builtin().Len() {
			t.Errorf("Fetch(%q) Len() = %d", kind, tbl.Len())
		}
	}
}

func TestFetchFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.toml")
	if err := os.WriteFile(path, []byte(samplePalette), 0o644); err != nil {
		t.Fatal(err)
	}
	tbl, err := Fetch(context.Background(), Source{Kind: SourceFile, File: path})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if tbl.Len() != 2 || !tbl.Families[0].Variants[0].HasDark() {
		t.Errorf("unexpected table: %+v", tbl)
	}
}

func TestFetchFileMissing(t *testing.T) {
	_, err := Fetch(context.Background(), Source{Kind: SourceFile, File: filepath.Join(t.TempDir(), "nope.toml")})
	if err == nil {
		t.Fatal("expected error for missing palette file")
	}
}

func TestFetchUnknownKind(t *testing.T) {
	if _, err := Fetch(context.Background(), Source{Kind: "ftp"}); err == nil {
		t.Fatal("expected error for unknown source")
	}
}

func TestFetchURLWritesCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(samplePalette))
	}))
	defer srv.Close()

	cacheDir := filepath.Join(t.TempDir(), "cache")
	tbl, err := Fetch(context.Background(), Source{Kind: SourceURL, URL: srv.URL, CacheDir: cacheDir})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tbl.Len())
	}

	cached, err := os.ReadFile(paths.CacheDir{Root: cacheDir}.Palette())
	if err != nil {
		t.Fatalf("cache not written: %v", err)
	}
	if string(cached) != samplePalette {
		t.Errorf("cache content = %q", cached)
	}
}

func TestFetchURLFallsBackToCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	if err := os.WriteFile(paths.CacheDir{Root: cacheDir}.Palette(), []byte(samplePalette), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Fetch(context.Background(), Source{Kind: SourceURL, URL: srv.URL, CacheDir: cacheDir})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if tbl.Families[0].Name != "Brand" {
		t.Errorf("expected cached Brand family, got %+v", tbl.Families)
	}
}

func TestFetchURLBadBodyFallsBackToCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("[[[ not toml"))
	}))
	defer srv.Close()

	cacheDir := t.TempDir()
	if err := os.WriteFile(paths.CacheDir{Root: cacheDir}.Palette(), []byte(samplePalette), 0o644); err != nil {
		t.Fatal(err)
	}

	tbl, err := Fetch(context.Background(), Source{Kind: SourceURL, URL: srv.URL, CacheDir: cacheDir})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if tbl.Len() != 2 {
		t.Errorf("Len() = %d, want 2 from cache", tbl.Len())
	}
}

func TestFetchURLNoCache(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := Fetch(context.Background(), Source{Kind: SourceURL, URL: srv.URL, CacheDir: t.TempDir()})
	if err == nil {
		t.Fatal("expected error when remote and cache both fail")
	}
}
