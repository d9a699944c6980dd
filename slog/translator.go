package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/yakumd/yakumd"
)

// Ensure LoggingTranslator implements yakumd.Translator.
var _ yakumd.Translator = (*LoggingTranslator)(nil)

// LoggingTranslator wraps a Translator with logging.
type LoggingTranslator struct {
	next   yakumd.Translator
	logger *slog.Logger
}

// NewLoggingTranslator creates a new LoggingTranslator.
func NewLoggingTranslator(next yakumd.Translator, logger *slog.Logger) *LoggingTranslator {
	return &LoggingTranslator{next: next, logger: logger}
}

// Translate delegates to the wrapped translator and logs the operation.
func (t *LoggingTranslator) Translate(ctx context.Context, markdown string) (out string, err error) {
	defer func(begin time.Time) {
		t.logger.Info("translate",
			"chars_in", len(markdown),
			"chars_out", len(out),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return t.next.Translate(ctx, markdown)
}
