// Package gemini provides the yakumd.Translator implementation over the
// Google Gemini API. The whole document is translated in one round
// trip: keeping the full document in context makes cross-references
// between sections consistent, at the cost of being bounded by the
// model's context window.
package gemini

import (
	"context"

	"github.com/yakumd/yakumd"
	"google.golang.org/genai"
)

// DefaultModel is the generation model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// systemInstruction pins the markup-preserving translation behavior:
// only prose is translated, Markdown tokens stay intact, URLs and code
// block contents pass through unchanged, and unlabeled code fences get
// an inferred language annotation.
const systemInstruction = `あなたはMarkdown文書の翻訳者です。与えられたMarkdownコンテンツを自然な日本語に翻訳してください。
Markdownの書式（#、*、[]()など）は保持し、テキスト部分のみを翻訳してください。
技術的な用語や固有名詞は適切に日本語化してください。
URLやコードブロックの内容はそのまま保持してください。
ただしコードブロックの言語が明記されていない場合は、言語を推測して明記してください。
翻訳したMarkdownのみを出力し、前置きや説明は付けないでください。`

// Ensure Translator implements yakumd.Translator at compile time.
var _ yakumd.Translator = (*Translator)(nil)

// Translator implements yakumd.Translator using Google Gemini.
type Translator struct {
	client *genai.Client
	model  string
}

// Option configures a Translator.
type Option func(*Translator)

// WithModel overrides the generation model.
func WithModel(model string) Option {
	return func(t *Translator) {
		if model != "" {
			t.model = model
		}
	}
}

// NewTranslator creates a new Translator.
func NewTranslator(client *genai.Client, opts ...Option) *Translator {
	t := &Translator{client: client, model: DefaultModel}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate sends the Markdown document to Gemini and returns the
// Japanese translation. Any service failure yields an ETRANSLATE error;
// retry policy, if any, belongs to the caller.
//
// An empty response is returned as an empty string rather than an
// error, matching the upstream service contract for blocked or
// contentless generations.
func (t *Translator) Translate(ctx context.Context, markdown string) (string, error) {
	if markdown == "" {
		return "", yakumd.Errorf(yakumd.EINVALID, "empty markdown input")
	}

	result, err := t.client.Models.GenerateContent(ctx, t.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: markdown}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", yakumd.Errorf(yakumd.ETRANSLATE, "translating with %s: %v", t.model, err)
	}
	if result == nil {
		return "", yakumd.Errorf(yakumd.ETRANSLATE, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for translation calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
	}
}
