package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdndoc"
)

// Ensure LoggingMimeService implements mdndoc.MimeService.
var _ mdndoc.MimeService = (*LoggingMimeService)(nil)

// LoggingMimeService wraps a MimeService with logging.
type LoggingMimeService struct {
	next   mdndoc.MimeService
	logger *slog.Logger
}

// NewLoggingMimeService creates a new LoggingMimeService.
func NewLoggingMimeService(next mdndoc.MimeService, logger *slog.Logger) *LoggingMimeService {
	return &LoggingMimeService{next: next, logger: logger}
}

// FindMime delegates to the wrapped service and logs the operation.
func (s *LoggingMimeService) FindMime(ctx context.Context, ext string) (result *mdndoc.MimeResult, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find mime",
			"ext", ext,
			"found", result != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindMime(ctx, ext)
}
