package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdesk"
)

// Ensure LoggingGenerator implements newsdesk.Generator.
var _ newsdesk.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging.
type LoggingGenerator struct {
	next   newsdesk.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next newsdesk.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the result counts.
func (g *LoggingGenerator) Generate(ctx context.Context, article *newsdesk.Article) (analysis *newsdesk.Analysis, err error) {
	defer func(begin time.Time) {
		var captions, questions int
		if analysis != nil {
			captions = len(analysis.Captions)
			questions = len(analysis.Questions)
		}
		g.logger.Info("generate",
			"captions", captions,
			"questions", questions,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, article)
}
