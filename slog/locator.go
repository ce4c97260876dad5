// Package slog provides log/slog decorators for rsdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/rsdoc"
)

// Ensure LoggingLocator implements rsdoc.RootLocator.
var _ rsdoc.RootLocator = (*LoggingLocator)(nil)

// LoggingLocator wraps a RootLocator with logging.
type LoggingLocator struct {
	next   rsdoc.RootLocator
	logger *slog.Logger
}

// NewLoggingLocator creates a new LoggingLocator.
func NewLoggingLocator(next rsdoc.RootLocator, logger *slog.Logger) *LoggingLocator {
	return &LoggingLocator{next: next, logger: logger}
}

// Locate delegates to the wrapped locator and logs the roots found.
func (l *LoggingLocator) Locate(ctx context.Context, start string) (roots []string) {
	defer func(begin time.Time) {
		l.logger.Info("locate roots",
			"start", start,
			"roots", roots,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return l.next.Locate(ctx, start)
}
