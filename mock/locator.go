package mock

import (
	"context"

	"github.com/fwojciec/rsdoc"
)

var _ rsdoc.RootLocator = (*RootLocator)(nil)

// RootLocator is a mock implementation of rsdoc.RootLocator.
type RootLocator struct {
	LocateFn func(ctx context.Context, start string) []string
}

func (l *RootLocator) Locate(ctx context.Context, start string) []string {
	return l.LocateFn(ctx, start)
}

var _ rsdoc.CommandRunner = (*CommandRunner)(nil)

// CommandRunner is a mock implementation of rsdoc.CommandRunner.
type CommandRunner struct {
	RunFn func(ctx context.Context, name string, args ...string) rsdoc.CommandResult
}

func (r *CommandRunner) Run(ctx context.Context, name string, args ...string) rsdoc.CommandResult {
	return r.RunFn(ctx, name, args...)
}

var _ rsdoc.Workspace = (*Workspace)(nil)

// Workspace is a mock implementation of rsdoc.Workspace.
type Workspace struct {
	BufferNameFn func() string
	CwdFn        func() string
}

func (w *Workspace) BufferName() string {
	return w.BufferNameFn()
}

func (w *Workspace) Cwd() string {
	return w.CwdFn()
}
