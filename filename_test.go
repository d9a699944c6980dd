package yakumd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yakumd/yakumd"
)

func TestDeriveFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "host and path",
			url:  "https://www.example.com/blog/post-1",
			want: "example.com_blog_post-1.md",
		},
		{
			name: "host only",
			url:  "https://example.com",
			want: "example.com.md",
		},
		{
			name: "trailing slash",
			url:  "https://example.com/docs/",
			want: "example.com_docs.md",
		},
		{
			name: "www prefix stripped",
			url:  "https://www.example.co.jp/news",
			want: "example.co.jp_news.md",
		},
		{
			name: "unsafe characters replaced",
			url:  "https://example.com/a b/c?d",
			want: "example.com_a_b_c.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, yakumd.DeriveFilename(tt.url))
		})
	}
}
