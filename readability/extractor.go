// Package readability provides an alternate yakumd.Extractor backed by
// go-readability's article extraction.
package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/yakumd/yakumd"
)

// Ensure Extractor implements yakumd.Extractor at compile time.
var _ yakumd.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
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

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, yakumd.Errorf(yakumd.EINVALID, "extracting content: %v", err)
	}

	return &yakumd.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
