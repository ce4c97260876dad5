package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/rsdoc/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe_Exists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeTree(t, dir, "Cargo.toml")
	p := fs.NewProbe()

	assert.True(t, p.Exists(filepath.Join(dir, "Cargo.toml")))
	assert.True(t, p.Exists(dir))
	assert.False(t, p.Exists(filepath.Join(dir, "missing")))
	assert.True(t, p.IsDir(dir))
	assert.False(t, p.IsDir(filepath.Join(dir, "Cargo.toml")))
}

func TestProbe_ExistsTreatsStatErrorsAsAbsent(t *testing.T) {
	t.Parallel()

	p := &fs.Probe{Stat: func(string) (os.FileInfo, error) {
		return nil, os.ErrPermission
	}}

	assert.False(t, p.Exists("/anything"))
}

func TestProbe_ReadDir(t *testing.T) {
	t.Parallel()

	t.Run("lists entries in name order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, "stable-x86_64"), 0755))
		require.NoError(t, os.Mkdir(filepath.Join(dir, "nightly-x86_64"), 0755))
		writeTree(t, dir, "settings.toml")

		entries := fs.NewProbe().ReadDir(dir)

		assert.Equal(t, []fs.DirEntry{
			{Name: "nightly-x86_64", IsDir: true},
			{Name: "settings.toml", IsDir: false},
			{Name: "stable-x86_64", IsDir: true},
		}, entries)
	})

	t.Run("follows symlinks to directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		target := t.TempDir()
		if err := os.Symlink(target, filepath.Join(dir, "stable-linked")); err != nil {
			t.Skipf("symlinks unsupported: %v", err)
		}

		entries := fs.NewProbe().ReadDir(dir)

		assert.Equal(t, []fs.DirEntry{{Name: "stable-linked", IsDir: true}}, entries)
	})

	t.Run("missing directory has no entries", func(t *testing.T) {
		t.Parallel()

		entries := fs.NewProbe().ReadDir(filepath.Join(t.TempDir(), "missing"))

		assert.Empty(t, entries)
	})
}

func TestProbe_FindUp(t *testing.T) {
	t.Parallel()

	t.Run("checks ancestors closest first and stops at the match", func(t *testing.T) {
		t.Parallel()

		// Given a marker only at /a
		var checked []string
		p := &fs.Probe{Stat: func(name string) (os.FileInfo, error) {
			checked = append(checked, name)
			if name == filepath.FromSlash("/a/Cargo.toml") {
				return nil, nil
			}
			return nil, os.ErrNotExist
		}}

		// When I search upward from /a/b/c
		dir, ok := p.FindUp(filepath.FromSlash("/a/b/c"), "Cargo.toml")

		// Then /a/b/c, /a/b and /a are checked in that order
		require.True(t, ok)
		assert.Equal(t, filepath.FromSlash("/a"), dir)
		assert.Equal(t, []string{
			filepath.FromSlash("/a/b/c/Cargo.toml"),
			filepath.FromSlash("/a/b/Cargo.toml"),
			filepath.FromSlash("/a/Cargo.toml"),
		}, checked)
	})

	t.Run("closest ancestor wins", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeTree(t, root, "Cargo.toml", "member/Cargo.toml", "member/src/lib.rs")

		dir, ok := fs.NewProbe().FindUp(filepath.Join(root, "member", "src", "lib.rs"), "Cargo.toml")

		require.True(t, ok)
		assert.Equal(t, filepath.Join(root, "member"), dir)
	})

	t.Run("not found at the filesystem root", func(t *testing.T) {
		t.Parallel()

		p := &fs.Probe{Stat: func(string) (os.FileInfo, error) {
			return nil, os.ErrNotExist
		}}

		_, ok := p.FindUp(filepath.FromSlash("/a/b"), "Cargo.toml")

		assert.False(t, ok)
	})

	t.Run("degenerate paths are not searched", func(t *testing.T) {
		t.Parallel()

		var calls int
		p := &fs.Probe{Stat: func(string) (os.FileInfo, error) {
			calls++
			return nil, nil
		}}

		_, emptyOK := p.FindUp("", "Cargo.toml")
		_, dotOK := p.FindUp(".", "Cargo.toml")

		assert.False(t, emptyOK)
		assert.False(t, dotOK)
		assert.Zero(t, calls)
	})
}
