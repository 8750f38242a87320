package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdndoc"
)

// Ensure LoggingDefinitionService implements mdndoc.DefinitionService.
var _ mdndoc.DefinitionService = (*LoggingDefinitionService)(nil)

// LoggingDefinitionService wraps a DefinitionService with logging.
type LoggingDefinitionService struct {
	next   mdndoc.DefinitionService
	logger *slog.Logger
}

// NewLoggingDefinitionService creates a new LoggingDefinitionService.
func NewLoggingDefinitionService(next mdndoc.DefinitionService, logger *slog.Logger) *LoggingDefinitionService {
	return &LoggingDefinitionService{next: next, logger: logger}
}

// SearchDefinition delegates to the wrapped service and logs whether the
// search resolved or how many candidates it returned.
func (s *LoggingDefinitionService) SearchDefinition(ctx context.Context, typ, method string) (outcome *mdndoc.SearchOutcome, err error) {
	defer func(begin time.Time) {
		var candidates int
		if outcome != nil {
			candidates = len(outcome.Candidates)
		}
		s.logger.Info("search definition",
			"type", typ,
			"method", method,
			"found", outcome.Found(),
			"candidates", candidates,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchDefinition(ctx, typ, method)
}

// GetDefinition delegates to the wrapped service and logs the operation.
// Definitions resolved inside SearchDefinition do not pass through here, so
// only direct callers produce a "get definition" record.
func (s *LoggingDefinitionService) GetDefinition(ctx context.Context, path string) (def *mdndoc.Definition, err error) {
	defer func(begin time.Time) {
		s.logger.Info("get definition",
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.GetDefinition(ctx, path)
}
