// Package slog provides log/slog decorators for mdndoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mdndoc"
)

// Ensure LoggingFetcher implements mdndoc.Fetcher.
var _ mdndoc.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher and logs one "fetch" record per page with
// the url, the size of the returned HTML in bytes, the duration and any error.
type LoggingFetcher struct {
	next   mdndoc.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next mdndoc.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		f.logger.Info("fetch",
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
