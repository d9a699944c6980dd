// Package http provides an HTTP-based implementation of yakumd.Fetcher
// for fetching article pages that don't require JavaScript rendering.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/yakumd/yakumd"
)

// DefaultFetchTimeout bounds the worst-case latency of a single fetch.
const DefaultFetchTimeout = 30 * time.Second

// userAgent is a desktop-browser identity. Some sites serve empty or
// blocked responses to unknown clients, so we present a common one.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

// Ensure Fetcher implements yakumd.Fetcher at compile time.
var _ yakumd.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static pages only. It performs one request per Fetch: no retries,
// no caching.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// Any transport failure or HTTP status >= 400 yields an EFETCH error;
// callers must not retry.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", yakumd.Errorf(yakumd.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", yakumd.Errorf(yakumd.EFETCH, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	// Redirects are followed by the client, so anything >= 400 is a
	// failed fetch.
	if resp.StatusCode >= http.StatusBadRequest {
		return "", yakumd.Errorf(yakumd.EFETCH, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", yakumd.Errorf(yakumd.EFETCH, "reading response from %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
