package slog

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/rsdoc"
)

// Ensure LoggingItemSource implements rsdoc.ItemSource.
var _ rsdoc.ItemSource = (*LoggingItemSource)(nil)

// LoggingItemSource wraps an ItemSource and logs each completed iteration.
type LoggingItemSource struct {
	next   rsdoc.ItemSource
	logger *slog.Logger
}

// NewLoggingItemSource creates a new LoggingItemSource.
func NewLoggingItemSource(next rsdoc.ItemSource, logger *slog.Logger) *LoggingItemSource {
	return &LoggingItemSource{next: next, logger: logger}
}

// Items delegates to the wrapped source. The log line is written when the
// consumer finishes or abandons the sequence.
func (s *LoggingItemSource) Items(ctx context.Context, root string) iter.Seq2[rsdoc.Item, error] {
	return func(yield func(rsdoc.Item, error) bool) {
		count := 0
		stopped := false
		var walkErr error
		defer func(begin time.Time) {
			s.logger.Info("items",
				"root", root,
				"count", count,
				"stopped", stopped,
				"duration", time.Since(begin),
				"err", walkErr,
			)
		}(time.Now())

		for item, err := range s.next.Items(ctx, root) {
			if err != nil {
				walkErr = err
				yield(item, err)
				return
			}
			count++
			if !yield(item, nil) {
				stopped = true
				return
			}
		}
	}
}
