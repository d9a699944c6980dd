// Package htmltomarkdown provides the yakumd.Converter implementation
// over JohannesKaufmann/html-to-markdown. The output style is fixed:
// ATX headings, hyphen bullets, fenced code blocks.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/yakumd/yakumd"
)

// Ensure Converter implements yakumd.Converter at compile time.
var _ yakumd.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
// Conversion is pure and deterministic: identical input always yields
// identical output.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", yakumd.Errorf(yakumd.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", yakumd.Errorf(yakumd.EINTERNAL, "converting to markdown: %v", err)
	}

	return result, nil
}
