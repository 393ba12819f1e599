package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/bodytext"
)

// Ensure LoggingSource implements bodytext.URLSource.
var _ bodytext.URLSource = (*LoggingSource)(nil)

// LoggingSource wraps a URLSource with debug logging.
type LoggingSource struct {
	next   bodytext.URLSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next bodytext.URLSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Load delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Load(path string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("load urls",
			"path", path,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(path)
}
