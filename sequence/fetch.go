package sequence

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/webp"
)

// Fetcher opens the raw bytes behind a frame locator.
type Fetcher interface {
	Fetch(ctx context.Context, locator string) (io.ReadCloser, error)
}

// NewFetcher picks an HTTP fetcher for http(s) locators and a filesystem
// fetcher for everything else. Locators are expected to be complete paths or
// URLs (the base path is already part of them).
func NewFetcher(base string) Fetcher {
	if isHTTP(base) {
		return &HTTPFetcher{Client: http.DefaultClient}
	}
	return DirFetcher{}
}

func isHTTP(s string) bool {
	s = strings.ToLower(s)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// DirFetcher reads locators as paths on the local filesystem. Relative paths
// are resolved against Root when it is set.
type DirFetcher struct {
	Root string
}

func (d DirFetcher) Fetch(ctx context.Context, locator string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := locator
	if d.Root != "" && !filepath.IsAbs(path) {
		path = filepath.Join(d.Root, path)
	}
	return os.Open(path)
}

// FSFetcher reads locators from an fs.FS, such as an embedded asset tree.
type FSFetcher struct {
	FS fs.FS
}

func (f FSFetcher) Fetch(ctx context.Context, locator string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.FS == nil {
		return nil, fmt.Errorf("sequence: nil filesystem")
	}
	return f.FS.Open(strings.TrimPrefix(filepath.ToSlash(locator), "/"))
}

// HTTPFetcher downloads locators that are absolute http(s) URLs.
type HTTPFetcher struct {
	Client *http.Client
}

func (h *HTTPFetcher) Fetch(ctx context.Context, locator string) (io.ReadCloser, error) {
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, locator, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("sequence: get %s: %s", locator, resp.Status)
	}
	return resp.Body, nil
}

// fetchAndDecode loads one locator to a decoded image.
func fetchAndDecode(ctx context.Context, fetcher Fetcher, locator string) (image.Image, error) {
	rc, err := fetcher.Fetch(ctx, locator)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	b, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", locator, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", locator, err)
	}
	return img, nil
}
