package rsdoc

import (
	"context"
	"path/filepath"
)

// RootLocator finds the doc roots relevant to a position in the filesystem.
type RootLocator interface {
	// Locate returns existing doc roots in priority order: standard library
	// docs first, then the enclosing project's docs. It never fails; roots
	// that cannot be found are simply omitted.
	Locate(ctx context.Context, start string) []string
}

// CommandResult is the outcome of running an external command.
type CommandResult struct {
	Success bool
	Stdout  string
}

// CommandRunner runs an external command without stdin and captures stdout.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) CommandResult
}

// Workspace exposes the host editor's notion of where the user is.
type Workspace interface {
	BufferName() string
	Cwd() string
}

// StartPath joins the workspace cwd and buffer name into the path used for
// project discovery. An absolute buffer name is returned unchanged.
func StartPath(ws Workspace) string {
	name := ws.BufferName()
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(ws.Cwd(), name)
}

// Manifest describes the Cargo.toml found at a project root.
type Manifest struct {
	// Name is the package name, empty for a virtual workspace manifest.
	Name    string
	Version string
	// Members lists workspace members when the manifest declares a workspace.
	Members []string
}
