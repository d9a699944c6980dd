package yakumd

// ExtractResult holds the primary content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title, when the backend can surface one.
	Title string

	// ContentHTML is the subtree most likely to be the article body,
	// serialized as HTML. It never contains script, style, nav, header,
	// footer, or aside elements.
	ContentHTML string
}

// Extractor selects the primary content of an HTML page, stripping
// boilerplate. Extraction degrades gracefully: implementations fall
// back to broader and broader subtrees rather than failing, so any
// non-empty parseable input yields some fragment.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
