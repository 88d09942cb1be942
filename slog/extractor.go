package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/newsdesk"
)

// Ensure LoggingExtractor implements newsdesk.Extractor.
var _ newsdesk.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
type LoggingExtractor struct {
	next   newsdesk.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next newsdesk.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the article size.
func (e *LoggingExtractor) Extract(html string) (article *newsdesk.Article, err error) {
	defer func(begin time.Time) {
		var title string
		var size int
		if article != nil {
			title = article.Title
			size = len(article.Body)
		}
		e.logger.Info("extract",
			"title", title,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(html)
}
