package slog

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fwojciec/rsdoc"
)

// Ensure LoggingCommandRunner implements rsdoc.CommandRunner.
var _ rsdoc.CommandRunner = (*LoggingCommandRunner)(nil)

// LoggingCommandRunner wraps a CommandRunner with logging.
type LoggingCommandRunner struct {
	next   rsdoc.CommandRunner
	logger *slog.Logger
}

// NewLoggingCommandRunner creates a new LoggingCommandRunner.
func NewLoggingCommandRunner(next rsdoc.CommandRunner, logger *slog.Logger) *LoggingCommandRunner {
	return &LoggingCommandRunner{next: next, logger: logger}
}

// Run delegates to the wrapped runner and logs the outcome.
func (r *LoggingCommandRunner) Run(ctx context.Context, name string, args ...string) (res rsdoc.CommandResult) {
	defer func(begin time.Time) {
		r.logger.Info("run command",
			"cmd", strings.Join(append([]string{name}, args...), " "),
			"success", res.Success,
			"bytes", len(res.Stdout),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return r.next.Run(ctx, name, args...)
}
