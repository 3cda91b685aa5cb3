package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagesum"
)

// Ensure LoggingExtractor implements pagesum.Extractor.
var _ pagesum.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging of element counts.
type LoggingExtractor struct {
	next   pagesum.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagesum.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs what was found.
func (e *LoggingExtractor) Extract(html string) (summary *pagesum.Summary) {
	defer func(begin time.Time) {
		if summary == nil {
			return
		}
		e.logger.Info("extract",
			"title", summary.Title,
			"text_bytes", len(summary.MainContent),
			"buttons", len(summary.Buttons),
			"videos", len(summary.Videos),
			"audios", len(summary.Audios),
			"interactive", len(summary.InteractiveElements),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(html)
}
