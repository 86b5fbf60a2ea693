// fetch.go resolves a palette [Source] into a [Table].
//
// URL sources use a double-fallback strategy: remote document first, then
// the last good copy cached on disk. Builtin and file sources have no
// fallback; a broken palette file is an error the user must fix.

package palette

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"tools.zach/dev/colorsets/internal/atomicfile"
	"tools.zach/dev/colorsets/internal/paths"
)

// Source kinds.
const (
	SourceBuiltin = "builtin"
	SourceFile    = "file"
	SourceURL     = "url"
)

// maxPaletteBytes bounds remote palette documents.
const maxPaletteBytes = 1 << 20

var (
	httpClient     *retryablehttp.Client
	httpClientOnce sync.Once
)

// getHTTPClient returns the shared retryable HTTP client, initializing it on
// first call.
func getHTTPClient() *retryablehttp.Client {
	httpClientOnce.Do(func() {
		httpClient = retryablehttp.NewClient()
		httpClient.RetryMax = 2
		httpClient.RetryWaitMin = 200 * time.Millisecond
		httpClient.RetryWaitMax = 2 * time.Second
		httpClient.HTTPClient.Timeout = 10 * time.Second
		httpClient.Logger = nil
	})
	return httpClient
}

// Source describes where a palette comes from.
type Source struct {
	// Kind is one of SourceBuiltin, SourceFile, SourceURL.
	Kind string
	// File is the palette path for SourceFile.
	File string
	// URL is the palette endpoint for SourceURL.
	URL string
	// CacheDir holds the last good remote palette for SourceURL.
	CacheDir string
}

// ///////////////////////////////////////////////
// Public API
// ///////////////////////////////////////////////

// Fetch loads the table described by src. For URL sources a cached copy is
// returned when the remote fetch fails; the returned error is nil in that
// case and the fallback is logged.
func Fetch(ctx context.Context, src Source) (*Table, error) {
	switch src.Kind {
	case SourceBuiltin, "":
		return Builtin(), nil
	case SourceFile:
		return LoadFile(src.File)
	case SourceURL:
		return fetchWithFallback(ctx, src)
	default:
		return nil, fmt.Errorf("unknown palette source %q", src.Kind)
	}
}

// LoadFile reads and decodes a palette file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read palette file: %w", err)
	}
	t, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ///////////////////////////////////////////////
// Remote + Cache
// ///////////////////////////////////////////////

// fetchWithFallback tries the remote URL, then the cache.
func fetchWithFallback(ctx context.Context, src Source) (*Table, error) {
	cache := paths.CacheDir{Root: src.CacheDir}

	body, err := fetchURL(ctx, src.URL)
	if err == nil {
		t, decErr := Decode(body)
		if decErr == nil {
			writeCache(cache, body)
			return t, nil
		}
		err = fmt.Errorf("decode %s: %w", src.URL, decErr)
	}
	slog.Warn("palette fetch failed, trying cache", "url", src.URL, "error", err)

	t, cacheErr := readCache(cache)
	if cacheErr != nil {
		return nil, fmt.Errorf("all palette sources failed: remote: %w; cache: %w", err, cacheErr)
	}
	slog.Info("using cached palette", "path", cache.Palette())
	return t, nil
}

// fetchURL downloads a palette document.
func fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	resp, err := getHTTPClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPaletteBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	if len(body) > maxPaletteBytes {
		return nil, fmt.Errorf("response from %s exceeds %d bytes", url, maxPaletteBytes)
	}
	return body, nil
}

// writeCache stores a good remote palette. Failures are logged only.
func writeCache(cache paths.CacheDir, body []byte) {
	if err := os.MkdirAll(cache.Root, 0o755); err != nil {
		slog.Debug("failed to create palette cache dir", "error", err)
		return
	}
	if err := atomicfile.Write(cache.Palette(), body, 0o644); err != nil {
		slog.Debug("failed to write palette cache", "error", err)
	}
}

// readCache loads the cached remote palette.
func readCache(cache paths.CacheDir) (*Table, error) {
	b, err := os.ReadFile(cache.Palette())
	if err != nil {
		return nil, fmt.Errorf("reading palette cache: %w", err)
	}
	t, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("parsing palette cache: %w", err)
	}
	return t, nil
}
