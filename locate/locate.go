// Package locate finds the rustdoc output directories relevant to a position
// in the filesystem: the standard library docs of the installed rustup
// toolchain and the target/doc directory of the enclosing Cargo project.
package locate

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/fs"
)

// Ensure Locator implements rsdoc.RootLocator at compile time.
var _ rsdoc.RootLocator = (*Locator)(nil)

// Toolchain layout constants.
const (
	// ManifestName marks a Cargo project directory.
	ManifestName = "Cargo.toml"

	stablePrefix  = "stable-"
	nightlyPrefix = "nightly-"
)

var (
	// toolchainsDir is relative to the home directory.
	toolchainsDir = filepath.Join(".rustup", "toolchains")
	// stdDocDir is relative to a toolchain directory.
	stdDocDir = filepath.Join("share", "doc", "rust", "html")
	// projectDocDir is relative to a Cargo project directory.
	projectDocDir = filepath.Join("target", "doc")
)

// Locator implements rsdoc.RootLocator.
type Locator struct {
	Runner rsdoc.CommandRunner
	Probe  *fs.Probe

	// Getenv reads environment variables. Defaults to os.Getenv.
	Getenv func(key string) string
}

// NewLocator creates a Locator that asks runner for the standard library
// doc path before falling back to the rustup toolchain directory.
func NewLocator(runner rsdoc.CommandRunner, probe *fs.Probe) *Locator {
	return &Locator{
		Runner: runner,
		Probe:  probe,
		Getenv: os.Getenv,
	}
}

// Locate returns the existing doc roots for start: the standard library
// root first, then the project root. Duplicates are collapsed.
func (l *Locator) Locate(ctx context.Context, start string) []string {
	var roots []string
	if root, ok := l.StdRoot(ctx); ok {
		roots = append(roots, root)
	}
	if root, ok := l.ProjectRoot(start); ok && !contains(roots, root) {
		roots = append(roots, root)
	}
	return roots
}

// StdRoot returns the standard library doc root if it can be found and
// exists on disk.
func (l *Locator) StdRoot(ctx context.Context) (string, bool) {
	root, ok := l.stdRootFromCommand(ctx)
	if !ok {
		root, ok = l.stdRootFromToolchains()
	}
	if !ok || !l.Probe.Exists(root) {
		return "", false
	}
	return root, true
}

// stdRootFromCommand asks rustup for the path of the std index page.
func (l *Locator) stdRootFromCommand(ctx context.Context) (string, bool) {
	if l.Runner == nil {
		return "", false
	}
	res := l.Runner.Run(ctx, "rustup", "doc", "--path")
	if !res.Success {
		return "", false
	}
	index := strings.TrimSpace(res.Stdout)
	if index == "" {
		return "", false
	}
	return filepath.Dir(index), true
}

// stdRootFromToolchains picks a toolchain under ~/.rustup/toolchains. The
// first stable toolchain wins; otherwise the last nightly one is used.
func (l *Locator) stdRootFromToolchains() (string, bool) {
	home := l.getenv("HOME")
	if home == "" {
		return "", false
	}

	dir := filepath.Join(home, toolchainsDir)
	entries := l.Probe.ReadDir(dir)

	name := ""
	for _, e := range entries {
		if e.IsDir && strings.HasPrefix(e.Name, stablePrefix) {
			name = e.Name
			break
		}
	}
	if name == "" {
		for _, e := range entries {
			if e.IsDir && strings.HasPrefix(e.Name, nightlyPrefix) {
				name = e.Name
			}
		}
	}
	if name == "" {
		return "", false
	}
	return filepath.Join(dir, name, stdDocDir), true
}

// ProjectDir returns the closest ancestor of start holding a Cargo.toml.
func (l *Locator) ProjectDir(start string) (string, bool) {
	return l.Probe.FindUp(start, ManifestName)
}

// ProjectRoot returns the target/doc directory of the project enclosing
// start if it exists.
func (l *Locator) ProjectRoot(start string) (string, bool) {
	dir, ok := l.ProjectDir(start)
	if !ok {
		return "", false
	}
	root := DocDir(dir)
	if !l.Probe.Exists(root) {
		return "", false
	}
	return root, true
}

// DocDir returns the rustdoc output directory of the Cargo project in dir.
func DocDir(dir string) string {
	return filepath.Join(dir, projectDocDir)
}

func (l *Locator) getenv(key string) string {
	if l.Getenv == nil {
		return os.Getenv(key)
	}
	return l.Getenv(key)
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
