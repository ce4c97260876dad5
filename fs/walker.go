package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"iter"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/rsdoc"
)

// Ensure Walker implements rsdoc.ItemSource at compile time.
var _ rsdoc.ItemSource = (*Walker)(nil)

// DefaultExclude skips rustdoc's source browser pages.
var DefaultExclude = []string{"src/**"}

// errStopWalk aborts filepath.WalkDir once the consumer stops iterating.
var errStopWalk = errors.New("stop walk")

// Walker walks a rustdoc output directory and parses item records from the
// names and positions of its HTML files.
type Walker struct {
	// Exclude holds doublestar patterns matched against slash-separated
	// paths relative to the doc root.
	Exclude []string
}

// NewWalker creates a Walker with the default exclusions.
func NewWalker() *Walker {
	return &Walker{Exclude: DefaultExclude}
}

// Items returns the items documented under root in walk order.
// Every call walks the directory again. Unreadable subdirectories are
// skipped. A cancelled context ends the sequence with the context's error.
//
// A root that is a symlink is resolved before walking; items still carry
// root as given.
func (w *Walker) Items(ctx context.Context, root string) iter.Seq2[rsdoc.Item, error] {
	return func(yield func(rsdoc.Item, error) bool) {
		base := root
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			base = resolved
		}

		err := filepath.WalkDir(base, func(p string, d iofs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}

			rel, err := filepath.Rel(base, p)
			if err != nil {
				return nil
			}
			rel = filepath.ToSlash(rel)

			if d.IsDir() {
				if rel != "." && w.excluded(rel) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || filepath.Ext(p) != ".html" || w.excluded(rel) {
				return nil
			}

			item, ok := ParsePath(root, rel)
			if !ok {
				return nil
			}
			if !yield(item, nil) {
				return errStopWalk
			}
			return nil
		})
		if err != nil && !errors.Is(err, errStopWalk) {
			yield(rsdoc.Item{}, err)
		}
	}
}

func (w *Walker) excluded(rel string) bool {
	for _, pattern := range w.Exclude {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

// ParsePath classifies an HTML file at the slash-separated path rel under
// root. It returns false for files that do not document an item.
//
// Module pages are rel paths ending in index.html; the containing directory
// names the module. Other items follow the <kind>.<name>.html convention,
// where the first dot-separated segment is the kind and the last is the name.
func ParsePath(root, rel string) (rsdoc.Item, bool) {
	dir, base := path.Split(rel)
	dir = strings.TrimSuffix(dir, "/")

	if base == "index.html" {
		// The root's own index.html is not an item.
		if dir == "" {
			return rsdoc.Item{}, false
		}
		parent, name := path.Split(dir)
		parent = strings.TrimSuffix(parent, "/")

		var module *string
		if parent != "" {
			module = rsdoc.ModulePath(toModule(parent))
		}
		return rsdoc.Item{
			Kind:    rsdoc.KindModule,
			Module:  module,
			Name:    name,
			DocRoot: root,
		}, true
	}

	stem, ok := strings.CutSuffix(base, ".html")
	if !ok {
		return rsdoc.Item{}, false
	}
	segments := strings.Split(stem, ".")
	if len(segments) < 2 {
		return rsdoc.Item{}, false
	}
	kind, name := segments[0], segments[len(segments)-1]
	if kind == "" || name == "" {
		return rsdoc.Item{}, false
	}

	return rsdoc.Item{
		Kind:    rsdoc.Kind(kind),
		Module:  rsdoc.ModulePath(toModule(dir)),
		Name:    name,
		DocRoot: root,
	}, true
}

// toModule converts a slash-separated directory into a module path.
func toModule(dir string) string {
	return strings.ReplaceAll(dir, "/", rsdoc.ModuleSeparator)
}
