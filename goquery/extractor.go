// Package goquery provides the default yakumd.Extractor: a prioritized
// CSS-selector heuristic over a parsed DOM. Semantic and ARIA markers
// are trusted over conventional class names, and the whole body is the
// last resort since it risks including residual boilerplate.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yakumd/yakumd"
)

// boilerplateSelector matches elements that never carry article content
// and often corrupt translation quality or length. They are removed
// unconditionally before content selection.
const boilerplateSelector = "script, style, nav, header, footer, aside"

// contentSelectors are tried in order; the first match's subtree wins.
var contentSelectors = []string{
	"article",
	"main",
	`[role="main"]`,
	".content",
	".post-content",
	".entry-content",
	".article-content",
}

// Ensure Extractor implements yakumd.Extractor at compile time.
var _ yakumd.Extractor = (*Extractor)(nil)

// Extractor selects the primary content of a page with an ordered list
// of selectors, falling back to the body and finally the whole
// document. It has no error path beyond empty or unparseable input.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*yakumd.ExtractResult, error) {
	if rawHTML == "" {
		return nil, yakumd.Errorf(yakumd.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, yakumd.Errorf(yakumd.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(boilerplateSelector).Remove()

	title := strings.TrimSpace(doc.Find("title").First().Text())

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		contentHTML, err := goquery.OuterHtml(sel)
		if err != nil {
			return nil, yakumd.Errorf(yakumd.EINTERNAL, "serializing content: %v", err)
		}
		return &yakumd.ExtractResult{Title: title, ContentHTML: contentHTML}, nil
	}

	// No named selector matched; fall back to the body. The HTML5
	// parser synthesizes a body for any input, so the whole-document
	// branch below should be unreachable.
	if body := doc.Find("body").First(); body.Length() > 0 {
		contentHTML, err := goquery.OuterHtml(body)
		if err != nil {
			return nil, yakumd.Errorf(yakumd.EINTERNAL, "serializing body: %v", err)
		}
		return &yakumd.ExtractResult{Title: title, ContentHTML: contentHTML}, nil
	}

	contentHTML, err := doc.Html()
	if err != nil {
		return nil, yakumd.Errorf(yakumd.EINTERNAL, "serializing document: %v", err)
	}
	return &yakumd.ExtractResult{Title: title, ContentHTML: contentHTML}, nil
}
