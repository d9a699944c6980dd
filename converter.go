package yakumd

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown using a fixed
	// style: ATX headings, hyphen bullets, fenced code blocks preserved
	// verbatim. It is deterministic and performs no I/O.
	Convert(html string) (string, error)
}
