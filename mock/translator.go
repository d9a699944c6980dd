package mock

import (
	"context"

	"github.com/yakumd/yakumd"
)

var _ yakumd.Translator = (*Translator)(nil)

// Translator is a mock implementation of yakumd.Translator.
type Translator struct {
	TranslateFn func(ctx context.Context, markdown string) (string, error)
}

func (t *Translator) Translate(ctx context.Context, markdown string) (string, error) {
	return t.TranslateFn(ctx, markdown)
}
