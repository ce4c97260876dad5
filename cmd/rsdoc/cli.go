package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/fs"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Probe     *fs.Probe
	Locator   rsdoc.RootLocator
	Items     rsdoc.ItemSource
	Snapshots rsdoc.SnapshotService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Debug   bool     `help:"Log discovery and walks to stderr"`
	DB      string   `name:"db" env:"RSDOC_DB" help:"Database path (default ~/.rsdoc/rsdoc.db)"`
	Exclude []string `default:"src/**" help:"Glob patterns of doc paths to skip (repeatable)"`

	List      ListCmd      `cmd:"" help:"Stream picker entries for the located doc roots"`
	Roots     RootsCmd     `cmd:"" help:"Show the located doc roots"`
	Index     IndexCmd     `cmd:"" help:"Walk the located doc roots and store a snapshot of each"`
	Search    SearchCmd    `cmd:"" help:"Search stored items by name prefix"`
	Snapshots SnapshotsCmd `cmd:"" help:"List stored snapshots"`
}

// WorkspaceFlags selects the position discovery starts from.
// It implements rsdoc.Workspace.
type WorkspaceFlags struct {
	Buffer string `short:"b" help:"Current buffer name, absolute or relative to --cwd"`
	Dir    string `name:"cwd" help:"Working directory (default: current directory)" type:"path"`
}

// BufferName returns the buffer flag.
func (f WorkspaceFlags) BufferName() string { return f.Buffer }

// Cwd returns the --cwd flag or the process working directory.
func (f WorkspaceFlags) Cwd() string {
	if f.Dir != "" {
		return f.Dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}
	return wd
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Workspace WorkspaceFlags `embed:""`
	JSON      bool           `name:"json" help:"Write one JSON entry per line"`
}

// RootsCmd is the "roots" subcommand.
type RootsCmd struct {
	Workspace WorkspaceFlags `embed:""`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Workspace WorkspaceFlags `embed:""`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Name  string `arg:"" help:"Item name prefix"`
	Kind  string `short:"k" help:"Only items of this kind (fn, struct, trait, ...)"`
	Root  string `help:"Only items under this doc root"`
	Limit int    `short:"n" default:"50" help:"Maximum number of results"`
	JSON  bool   `name:"json" help:"Write one JSON entry per line"`
}

// SnapshotsCmd is the "snapshots" subcommand.
type SnapshotsCmd struct{}
