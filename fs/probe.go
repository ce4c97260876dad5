// Package fs provides filesystem access for locating and walking rustdoc output.
package fs

import (
	"os"
	"path/filepath"
)

// DirEntry is a directory entry reduced to what doc discovery needs.
// IsDir follows symlinks, so linked toolchains count as directories.
type DirEntry struct {
	Name  string
	IsDir bool
}

// Probe answers existence and listing questions about the filesystem.
// Every failure is reported as absence; Probe never returns errors.
type Probe struct {
	// Stat is used for every existence check. Defaults to os.Stat.
	Stat func(name string) (os.FileInfo, error)
}

// NewProbe returns a Probe backed by the operating system.
func NewProbe() *Probe {
	return &Probe{Stat: os.Stat}
}

func (p *Probe) stat(name string) (os.FileInfo, error) {
	if p.Stat == nil {
		return os.Stat(name)
	}
	return p.Stat(name)
}

// Exists reports whether path exists. Stat errors of any kind count as absent.
func (p *Probe) Exists(path string) bool {
	_, err := p.stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func (p *Probe) IsDir(path string) bool {
	info, err := p.stat(path)
	return err == nil && info.IsDir()
}

// ReadDir lists the entries of dir in name order.
// An unreadable or missing directory yields no entries.
func (p *Probe) ReadDir(dir string) []DirEntry {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	out := make([]DirEntry, 0, len(entries))
	for _, e := range entries {
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			isDir = p.IsDir(filepath.Join(dir, e.Name()))
		}
		out = append(out, DirEntry{Name: e.Name(), IsDir: isDir})
	}
	return out
}

// FindUp walks from start toward the filesystem root and returns the first
// directory containing marker. The filesystem root itself and degenerate
// paths ("" and ".") end the search without a match.
func (p *Probe) FindUp(start, marker string) (string, bool) {
	if start == "" {
		return "", false
	}

	dir := filepath.Clean(start)
	for {
		if dir == "." || filepath.Dir(dir) == dir {
			return "", false
		}
		if p.Exists(filepath.Join(dir, marker)) {
			return dir, true
		}
		dir = filepath.Dir(dir)
	}
}
