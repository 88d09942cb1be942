package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/newsdesk"
)

// Ensure LoggingCompleter implements newsdesk.Completer.
var _ newsdesk.Completer = (*LoggingCompleter)(nil)

// LoggingCompleter wraps a Completer with logging. Prompt and reply text
// are not logged, only their sizes.
type LoggingCompleter struct {
	next   newsdesk.Completer
	logger *slog.Logger
}

// NewLoggingCompleter creates a new LoggingCompleter.
func NewLoggingCompleter(next newsdesk.Completer, logger *slog.Logger) *LoggingCompleter {
	return &LoggingCompleter{next: next, logger: logger}
}

// Complete delegates to the wrapped completer and logs the operation.
func (c *LoggingCompleter) Complete(ctx context.Context, prompt newsdesk.Prompt) (reply string, err error) {
	defer func(begin time.Time) {
		c.logger.Info("completion",
			"prompt_bytes", len(prompt.System)+len(prompt.User),
			"reply_bytes", len(reply),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Complete(ctx, prompt)
}
