package main_test

import (
	"bytes"
	"context"
	"iter"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rsdoc"
	main "github.com/fwojciec/rsdoc/cmd/rsdoc"
	"github.com/fwojciec/rsdoc/fs"
	"github.com/fwojciec/rsdoc/mock"
	"github.com/stretchr/testify/require"
)

// newDeps returns Dependencies writing to fresh buffers.
func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.DiscardHandler),
		Probe:  fs.NewProbe(),
	}, stdout, stderr
}

// fixedRoots returns a locator that always reports roots.
func fixedRoots(roots ...string) *mock.RootLocator {
	return &mock.RootLocator{
		LocateFn: func(_ context.Context, _ string) []string {
			return roots
		},
	}
}

// itemsByRoot returns an item source replaying byRoot.
func itemsByRoot(byRoot map[string][]rsdoc.Item) *mock.ItemSource {
	return &mock.ItemSource{
		ItemsFn: func(_ context.Context, root string) iter.Seq2[rsdoc.Item, error] {
			return func(yield func(rsdoc.Item, error) bool) {
				for _, item := range byRoot[root] {
					if !yield(item, nil) {
						return
					}
				}
			}
		},
	}
}

// writeFile creates path with its parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
