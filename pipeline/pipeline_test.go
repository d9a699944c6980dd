package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yakumd/yakumd"
	"github.com/yakumd/yakumd/mock"
	"github.com/yakumd/yakumd/pipeline"
)

func TestPipeline_RunFromURL(t *testing.T) {
	t.Parallel()

	t.Run("feeds each stage's output into the next", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					assert.Equal(t, "https://example.com/post", url)
					return "<html><article>raw</article></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*yakumd.ExtractResult, error) {
					assert.Equal(t, "<html><article>raw</article></html>", html)
					return &yakumd.ExtractResult{ContentHTML: "<article>raw</article>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) {
					assert.Equal(t, "<article>raw</article>", html)
					return "# raw", nil
				},
			},
			Translator: &mock.Translator{
				TranslateFn: func(ctx context.Context, markdown string) (string, error) {
					assert.Equal(t, "# raw", markdown)
					return "# 生", nil
				},
			},
		}

		out, err := p.RunFromURL(context.Background(), "https://example.com/post")

		require.NoError(t, err)
		assert.Equal(t, "# 生", out)
	})

	t.Run("fetch failure aborts before extraction", func(t *testing.T) {
		t.Parallel()

		extractCalled := false
		translateCalled := false

		p := &pipeline.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "", yakumd.Errorf(yakumd.EFETCH, "HTTP 404 for %s", url)
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*yakumd.ExtractResult, error) {
					extractCalled = true
					return &yakumd.ExtractResult{}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) { return "", nil },
			},
			Translator: &mock.Translator{
				TranslateFn: func(ctx context.Context, markdown string) (string, error) {
					translateCalled = true
					return "", nil
				},
			},
		}

		_, err := p.RunFromURL(context.Background(), "https://example.com/missing")

		require.Error(t, err)
		assert.Equal(t, yakumd.EFETCH, yakumd.ErrorCode(err))
		assert.False(t, extractCalled, "extraction must not run after a fetch failure")
		assert.False(t, translateCalled, "translation must not run after a fetch failure")
	})

	t.Run("translation failure propagates with its cause", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					return "<html></html>", nil
				},
			},
			Extractor: &mock.Extractor{
				ExtractFn: func(html string) (*yakumd.ExtractResult, error) {
					return &yakumd.ExtractResult{ContentHTML: "<p>x</p>"}, nil
				},
			},
			Converter: &mock.Converter{
				ConvertFn: func(html string) (string, error) { return "x", nil },
			},
			Translator: &mock.Translator{
				TranslateFn: func(ctx context.Context, markdown string) (string, error) {
					return "", yakumd.Errorf(yakumd.ETRANSLATE, "quota exceeded")
				},
			},
		}

		_, err := p.RunFromURL(context.Background(), "https://example.com/post")

		require.Error(t, err)
		assert.Equal(t, yakumd.ETRANSLATE, yakumd.ErrorCode(err))
		assert.Contains(t, yakumd.ErrorMessage(err), "quota exceeded")
	})
}

func TestPipeline_RunFromText(t *testing.T) {
	t.Parallel()

	t.Run("translates directly without fetching", func(t *testing.T) {
		t.Parallel()

		fetchCalled := false
		p := &pipeline.Pipeline{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					fetchCalled = true
					return "", nil
				},
			},
			Translator: &mock.Translator{
				TranslateFn: func(ctx context.Context, markdown string) (string, error) {
					assert.Equal(t, "# Hello", markdown)
					return "# こんにちは", nil
				},
			},
		}

		out, err := p.RunFromText(context.Background(), "# Hello")

		require.NoError(t, err)
		assert.Equal(t, "# こんにちは", out)
		assert.False(t, fetchCalled)
	})

	t.Run("translation failure propagates with its cause", func(t *testing.T) {
		t.Parallel()

		p := &pipeline.Pipeline{
			Translator: &mock.Translator{
				TranslateFn: func(ctx context.Context, markdown string) (string, error) {
					return "", yakumd.Errorf(yakumd.ETRANSLATE, "model unavailable")
				},
			},
		}

		_, err := p.RunFromText(context.Background(), "text")

		require.Error(t, err)
		assert.Equal(t, yakumd.ETRANSLATE, yakumd.ErrorCode(err))
		assert.Contains(t, yakumd.ErrorMessage(err), "model unavailable")
	})
}
