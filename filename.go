package yakumd

import (
	"net/url"
	"strings"
	"unicode"
)

// DeriveFilename builds a filesystem-safe Markdown filename from a URL.
// The host (minus a leading "www.") and the path are joined with
// underscores, path separators become underscores, and any rune outside
// letters, digits, '-', '_' and '.' is replaced with an underscore.
//
// Example: https://www.example.com/blog/post-1 → example.com_blog_post-1.md
func DeriveFilename(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return sanitizeFilename(rawURL) + ".md"
	}

	host := strings.TrimPrefix(u.Host, "www.")
	path := strings.Trim(u.Path, "/")
	path = strings.ReplaceAll(path, "/", "_")

	name := host
	if path != "" {
		name = host + "_" + path
	}

	return sanitizeFilename(name) + ".md"
}

func sanitizeFilename(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
