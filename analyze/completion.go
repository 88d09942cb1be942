package analyze

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/newsdesk"
)

// Ensure CompletionGenerator implements newsdesk.Generator at compile time.
var _ newsdesk.Generator = (*CompletionGenerator)(nil)

// CompletionGenerator asks a completion service for the analysis and falls
// back to Fallback when the call fails, the reply cannot be parsed, or the
// completer panics. It never returns the completion error to the caller.
type CompletionGenerator struct {
	Completer newsdesk.Completer
	Fallback  newsdesk.Generator
	Logger    *slog.Logger
}

// NewCompletionGenerator creates a new CompletionGenerator. A nil logger
// discards the fallback warnings.
func NewCompletionGenerator(completer newsdesk.Completer, fallback newsdesk.Generator, logger *slog.Logger) *CompletionGenerator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CompletionGenerator{
		Completer: completer,
		Fallback:  fallback,
		Logger:    logger,
	}
}

// Generate returns the parsed completion, or the fallback analysis.
func (g *CompletionGenerator) Generate(ctx context.Context, article *newsdesk.Article) (*newsdesk.Analysis, error) {
	analysis, err := g.complete(ctx, article)
	if err != nil {
		g.Logger.Warn("completion failed, using fallback analysis", "err", err)
		return g.Fallback.Generate(ctx, article)
	}
	return analysis, nil
}

func (g *CompletionGenerator) complete(ctx context.Context, article *newsdesk.Article) (analysis *newsdesk.Analysis, err error) {
	defer func() {
		if r := recover(); r != nil {
			analysis = nil
			err = newsdesk.Errorf(newsdesk.EINTERNAL, "completion panicked: %v", r)
		}
	}()

	reply, err := g.Completer.Complete(ctx, BuildPrompt(article))
	if err != nil {
		return nil, err
	}
	return ParseCompletion(reply)
}
