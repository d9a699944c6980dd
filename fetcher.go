package yakumd

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle
// JavaScript-rendered content.
type Fetcher interface {
	// Fetch performs a single GET for the URL and returns the page HTML.
	// It fails with an EFETCH error on transport failure or an HTTP
	// error status; it never retries. The context controls timeout and
	// cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
