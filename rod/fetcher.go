// Package rod provides a browser-based implementation of yakumd.Fetcher
// for article pages that require JavaScript rendering.
package rod

import (
	"context"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/yakumd/yakumd"
)

// Ensure Fetcher implements yakumd.Fetcher at compile time.
var _ yakumd.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher creates a new Fetcher that launches a headless Chrome
// browser. Close must be called when the Fetcher is no longer needed.
//
// Returns an ECONFIG error if Chrome/Chromium cannot be found or
// launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, yakumd.Errorf(yakumd.ECONFIG, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, yakumd.Errorf(yakumd.ECONFIG, "connecting to browser: %v", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", yakumd.Errorf(yakumd.EFETCH, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", yakumd.Errorf(yakumd.EFETCH, "navigating to %s: %v", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", yakumd.Errorf(yakumd.EFETCH, "waiting for %s to load: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", yakumd.Errorf(yakumd.EFETCH, "reading rendered HTML: %v", err)
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
