// Package slog provides logging decorators for the lauds services. Each
// decorator logs one line per call through log/slog and otherwise delegates
// unchanged.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lauds"
)

// levelFor returns ok for successful calls and Warn for failed ones.
func levelFor(err error, ok slog.Level) slog.Level {
	if err != nil {
		return slog.LevelWarn
	}
	return ok
}

// Ensure LoggingFetcher implements lauds.Fetcher.
var _ lauds.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs every request at Debug level, or
// at Warn level when it fails.
type LoggingFetcher struct {
	next   lauds.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next lauds.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Log(ctx, levelFor(err, slog.LevelDebug), "fetch",
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

// Ensure LoggingSource implements lauds.PageSource.
var _ lauds.PageSource = (*LoggingSource)(nil)

// LoggingSource wraps a PageSource and logs each date acquired.
type LoggingSource struct {
	next   lauds.PageSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next lauds.PageSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// FetchPages delegates to the wrapped source.
func (s *LoggingSource) FetchPages(ctx context.Context, date time.Time) (pages *lauds.Pages, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"date", date.Format(lauds.DateLayout),
			"bytes", pages.Size(),
			"duration", time.Since(begin),
			"err", err,
		}
		if pages != nil && pages.Readings == "" {
			attrs = append(attrs, "readings", "missing")
		}
		s.logger.Log(ctx, levelFor(err, slog.LevelInfo), "fetch pages", attrs...)
	}(time.Now())
	return s.next.FetchPages(ctx, date)
}

// Close delegates to the wrapped source.
func (s *LoggingSource) Close() error {
	return s.next.Close()
}
