// Package slog provides logging decorators for bodytext services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bodytext"
)

// Ensure LoggingFetcher implements bodytext.Fetcher.
var _ bodytext.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   bodytext.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next bodytext.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *bodytext.FetchResult, err error) {
	defer func(begin time.Time) {
		status := 0
		bytes := 0
		if res != nil {
			status = res.StatusCode
			bytes = len(res.HTML)
		}
		f.logger.Info("fetch",
			"url", url,
			"status", status,
			"bytes", bytes,
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
