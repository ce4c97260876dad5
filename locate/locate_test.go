package locate_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/fs"
	"github.com/fwojciec/rsdoc/locate"
	"github.com/fwojciec/rsdoc/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkdirs(t *testing.T, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0755))
	}
}

func touch(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		full := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.NoError(t, os.WriteFile(full, nil, 0644))
	}
}

// failingRunner reports failure for every command and records the calls.
func failingRunner(calls *[]string) *mock.CommandRunner {
	return &mock.CommandRunner{
		RunFn: func(_ context.Context, name string, args ...string) rsdoc.CommandResult {
			*calls = append(*calls, name)
			return rsdoc.CommandResult{}
		},
	}
}

func newLocator(runner rsdoc.CommandRunner, home string) *locate.Locator {
	l := locate.NewLocator(runner, fs.NewProbe())
	l.Getenv = func(key string) string {
		if key == "HOME" {
			return home
		}
		return ""
	}
	return l
}

// Story: Finding the standard library docs

func TestLocator_StdRoot(t *testing.T) {
	t.Parallel()

	t.Run("uses the parent of the path reported by rustup", func(t *testing.T) {
		t.Parallel()

		// Given rustup reports an index page that exists
		html := filepath.Join(t.TempDir(), "share", "doc", "rust", "html")
		mkdirs(t, html)
		var gotName string
		var gotArgs []string
		runner := &mock.CommandRunner{
			RunFn: func(_ context.Context, name string, args ...string) rsdoc.CommandResult {
				gotName, gotArgs = name, args
				return rsdoc.CommandResult{Success: true, Stdout: filepath.Join(html, "index.html") + "\n"}
			},
		}

		// When I look for the std root
		root, ok := newLocator(runner, "").StdRoot(context.Background())

		// Then the directory of the reported page is used
		require.True(t, ok)
		assert.Equal(t, html, root)
		assert.Equal(t, "rustup", gotName)
		assert.Equal(t, []string{"doc", "--path"}, gotArgs)
	})

	t.Run("falls back to the first stable toolchain", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		mkdirs(t, home,
			".rustup/toolchains/nightly-x86_64-unknown-linux-gnu/share/doc/rust/html",
			".rustup/toolchains/stable-aarch64-apple-darwin/share/doc/rust/html",
			".rustup/toolchains/stable-x86_64-unknown-linux-gnu/share/doc/rust/html",
		)
		var calls []string

		root, ok := newLocator(failingRunner(&calls), home).StdRoot(context.Background())

		require.True(t, ok)
		assert.Equal(t, filepath.Join(home, ".rustup", "toolchains", "stable-aarch64-apple-darwin", "share", "doc", "rust", "html"), root)
		assert.Equal(t, []string{"rustup"}, calls)
	})

	t.Run("falls back to the last nightly toolchain when no stable exists", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		mkdirs(t, home,
			".rustup/toolchains/nightly-2024-01-01-x86_64/share/doc/rust/html",
			".rustup/toolchains/nightly-2024-06-01-x86_64/share/doc/rust/html",
		)
		touch(t, home, ".rustup/toolchains/stable-not-a-directory")
		var calls []string

		root, ok := newLocator(failingRunner(&calls), home).StdRoot(context.Background())

		require.True(t, ok)
		assert.Equal(t, filepath.Join(home, ".rustup", "toolchains", "nightly-2024-06-01-x86_64", "share", "doc", "rust", "html"), root)
	})

	t.Run("ignores empty output from a successful command", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		mkdirs(t, home, ".rustup/toolchains/stable-x86_64/share/doc/rust/html")
		runner := &mock.CommandRunner{
			RunFn: func(context.Context, string, ...string) rsdoc.CommandResult {
				return rsdoc.CommandResult{Success: true, Stdout: "  \n"}
			},
		}

		root, ok := newLocator(runner, home).StdRoot(context.Background())

		require.True(t, ok)
		assert.Equal(t, filepath.Join(home, ".rustup", "toolchains", "stable-x86_64", "share", "doc", "rust", "html"), root)
	})

	t.Run("absent without home", func(t *testing.T) {
		t.Parallel()

		var calls []string

		_, ok := newLocator(failingRunner(&calls), "").StdRoot(context.Background())

		assert.False(t, ok)
	})

	t.Run("absent without any toolchain", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		mkdirs(t, home, ".rustup/toolchains/beta-x86_64/share/doc/rust/html")
		var calls []string

		_, ok := newLocator(failingRunner(&calls), home).StdRoot(context.Background())

		assert.False(t, ok)
	})

	t.Run("absent when the toolchain has no docs installed", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		mkdirs(t, home, ".rustup/toolchains/stable-x86_64/bin")
		var calls []string

		_, ok := newLocator(failingRunner(&calls), home).StdRoot(context.Background())

		assert.False(t, ok)
	})

	t.Run("absent without a runner or home", func(t *testing.T) {
		t.Parallel()

		l := &locate.Locator{Probe: fs.NewProbe(), Getenv: func(string) string { return "" }}

		_, ok := l.StdRoot(context.Background())

		assert.False(t, ok)
	})
}

// Story: Finding the project docs

func TestLocator_ProjectRoot(t *testing.T) {
	t.Parallel()

	t.Run("finds target/doc of the enclosing project", func(t *testing.T) {
		t.Parallel()

		project := t.TempDir()
		touch(t, project, "Cargo.toml", "src/net/mod.rs")
		mkdirs(t, project, "target/doc")

		root, ok := newLocator(nil, "").ProjectRoot(filepath.Join(project, "src", "net", "mod.rs"))

		require.True(t, ok)
		assert.Equal(t, filepath.Join(project, "target", "doc"), root)
	})

	t.Run("absent when docs were never built", func(t *testing.T) {
		t.Parallel()

		project := t.TempDir()
		touch(t, project, "Cargo.toml", "src/lib.rs")

		_, ok := newLocator(nil, "").ProjectRoot(filepath.Join(project, "src", "lib.rs"))

		assert.False(t, ok)
	})

	t.Run("closest manifest wins even without docs", func(t *testing.T) {
		t.Parallel()

		// Given a workspace whose docs live at the top but a member manifest is closer
		ws := t.TempDir()
		touch(t, ws, "Cargo.toml", "member/Cargo.toml", "member/src/lib.rs")
		mkdirs(t, ws, "target/doc")

		dir, dirOK := newLocator(nil, "").ProjectDir(filepath.Join(ws, "member", "src", "lib.rs"))
		_, rootOK := newLocator(nil, "").ProjectRoot(filepath.Join(ws, "member", "src", "lib.rs"))

		require.True(t, dirOK)
		assert.Equal(t, filepath.Join(ws, "member"), dir)
		assert.False(t, rootOK)
	})
}

func TestLocator_Locate(t *testing.T) {
	t.Parallel()

	t.Run("returns std root before project root", func(t *testing.T) {
		t.Parallel()

		home := t.TempDir()
		mkdirs(t, home, ".rustup/toolchains/stable-x86_64/share/doc/rust/html")
		project := t.TempDir()
		touch(t, project, "Cargo.toml")
		mkdirs(t, project, "target/doc")
		var calls []string

		roots := newLocator(failingRunner(&calls), home).Locate(context.Background(), filepath.Join(project, "src", "main.rs"))

		assert.Equal(t, []string{
			filepath.Join(home, ".rustup", "toolchains", "stable-x86_64", "share", "doc", "rust", "html"),
			filepath.Join(project, "target", "doc"),
		}, roots)
	})

	t.Run("returns nothing when neither root exists", func(t *testing.T) {
		t.Parallel()

		var calls []string

		roots := newLocator(failingRunner(&calls), t.TempDir()).Locate(context.Background(), t.TempDir())

		assert.Empty(t, roots)
	})

	t.Run("collapses duplicate roots", func(t *testing.T) {
		t.Parallel()

		project := t.TempDir()
		touch(t, project, "Cargo.toml")
		doc := filepath.Join(project, "target", "doc")
		mkdirs(t, doc)
		runner := &mock.CommandRunner{
			RunFn: func(context.Context, string, ...string) rsdoc.CommandResult {
				return rsdoc.CommandResult{Success: true, Stdout: filepath.Join(doc, "index.html")}
			},
		}

		roots := newLocator(runner, "").Locate(context.Background(), project)

		assert.Equal(t, []string{doc}, roots)
	})
}
