// Package trafilatura provides an alternate yakumd.Extractor backed by
// go-trafilatura's content extraction, for pages where the selector
// heuristic picks up too much boilerplate.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"github.com/yakumd/yakumd"
	"golang.org/x/net/html"
)

// Ensure Extractor implements yakumd.Extractor at compile time.
var _ yakumd.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, yakumd.Errorf(yakumd.EINVALID, "extracting content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, yakumd.Errorf(yakumd.EINTERNAL, "serializing content: %v", err)
		}
	}

	return &yakumd.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
