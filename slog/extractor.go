package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/lauds"
)

// Ensure LoggingExtractor implements lauds.Extractor.
var _ lauds.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs every section that fell back
// to its placeholder.
type LoggingExtractor struct {
	next   lauds.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next lauds.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor.
func (e *LoggingExtractor) Extract(date time.Time, pages *lauds.Pages) (record *lauds.Record) {
	day := date.Format(lauds.DateLayout)
	defer func(begin time.Time) {
		for _, f := range record.Failures {
			e.logger.Warn("section fallback",
				"date", day,
				"section", f.Section,
				"code", f.Code,
				"err", f.Message,
			)
		}
		e.logger.Info("extract",
			"date", day,
			"bytes", pages.Size(),
			"failures", len(record.Failures),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Extract(date, pages)
}
