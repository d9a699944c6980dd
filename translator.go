package yakumd

import "context"

// Translator translates Markdown prose into Japanese while preserving
// the Markdown structure. Headings, lists, links and code fences come
// back unchanged; URLs and code-block contents are opaque passthrough
// spans.
type Translator interface {
	// Translate sends the whole document to the generation service in a
	// single round trip and returns the translated Markdown. It fails
	// with an ETRANSLATE error on any service failure and never retries.
	Translate(ctx context.Context, markdown string) (string, error)
}
