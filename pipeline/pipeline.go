// Package pipeline composes fetching, extraction, conversion and
// translation into the two entry flows exposed to front ends: from a
// URL and from already-Markdown text.
package pipeline

import (
	"context"
	"time"

	"github.com/yakumd/yakumd"
)

// Pipeline runs content extraction, markdown conversion and
// translation in sequence. It holds no state across calls; each
// invocation is independent, performing at most one fetch and one
// translation call. The first stage failure aborts the run and
// propagates that stage's error unchanged; no partial output is ever
// returned.
type Pipeline struct {
	Fetcher    yakumd.Fetcher
	Extractor  yakumd.Extractor
	Converter  yakumd.Converter
	Translator yakumd.Translator
}

// RunFromURL fetches the page, extracts the primary content, converts
// it to Markdown and translates it to Japanese.
func (p *Pipeline) RunFromURL(ctx context.Context, url string) (string, error) {
	html, err := p.Fetcher.Fetch(ctx, url)
	if err != nil {
		return "", err
	}

	doc := &yakumd.Document{
		URL:       url,
		HTML:      html,
		FetchedAt: time.Now(),
	}

	content, err := p.Extractor.Extract(doc.HTML)
	if err != nil {
		return "", err
	}

	markdown, err := p.Converter.Convert(content.ContentHTML)
	if err != nil {
		return "", err
	}

	return p.Translator.Translate(ctx, markdown)
}

// RunFromText translates Markdown text directly; the input is assumed
// to already be Markdown.
func (p *Pipeline) RunFromText(ctx context.Context, markdown string) (string, error) {
	return p.Translator.Translate(ctx, markdown)
}
