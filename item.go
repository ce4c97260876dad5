package rsdoc

import (
	"context"
	"fmt"
	"iter"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ModuleSeparator joins the segments of a module path.
const ModuleSeparator = "::"

// Kind is the item category taken from a rustdoc file name prefix.
type Kind string

// Kind constants for the tags rustdoc is known to emit.
const (
	KindModule     Kind = "module"
	KindStruct     Kind = "struct"
	KindTrait      Kind = "trait"
	KindMacro      Kind = "macro"
	KindFunction   Kind = "fn"
	KindTypeAlias  Kind = "type"
	KindEnum       Kind = "enum"
	KindKeyword    Kind = "keyword"
	KindConstant   Kind = "constant"
	KindPrimitive  Kind = "primitive"
	KindTraitAlias Kind = "traitalias"
)

// Kinds lists every known kind tag.
var Kinds = []Kind{
	KindModule,
	KindStruct,
	KindTrait,
	KindMacro,
	KindFunction,
	KindTypeAlias,
	KindEnum,
	KindKeyword,
	KindConstant,
	KindPrimitive,
	KindTraitAlias,
}

var kindWidth = func() int {
	w := 0
	for _, k := range Kinds {
		w = max(w, len(k))
	}
	return w
}()

// KindWidth returns the length of the longest known kind tag.
func KindWidth() int {
	return kindWidth
}

// Known reports whether k is one of the known kind tags.
// Unknown tags are still valid items; this is informational only.
func (k Kind) Known() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Item represents one documented item found under a doc root.
//
// Module is nil for a top-level module page and an empty string for a
// non-module item at the top level of the doc root. The two cases render
// differently and must not be unified.
type Item struct {
	Kind    Kind    `json:"kind"`
	Module  *string `json:"module"`
	Name    string  `json:"name"`
	DocRoot string  `json:"docRoot"`
}

// ModulePath returns a pointer to path, for building Item.Module values.
func ModulePath(path string) *string {
	return &path
}

// ModuleName returns the module path, or "" when there is none.
func (i Item) ModuleName() string {
	if i.Module == nil {
		return ""
	}
	return *i.Module
}

// Path returns the absolute path of the HTML file documenting the item.
func (i Item) Path() string {
	parts := []string{i.DocRoot}
	if m := i.ModuleName(); m != "" {
		parts = append(parts, strings.Split(m, ModuleSeparator)...)
	}
	if i.Kind == KindModule {
		parts = append(parts, i.Name, "index.html")
	} else {
		parts = append(parts, string(i.Kind)+"."+i.Name+".html")
	}
	return filepath.Join(parts...)
}

// URL returns the file:// URI of the item's HTML file.
func (i Item) URL() string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(i.Path())}
	return u.String()
}

// ID returns a stable identifier derived from the item's file path.
func (i Item) ID() string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(i.Path()))
}

// ItemSource produces the items documented under a doc root.
type ItemSource interface {
	// Items returns a lazy sequence of the items found under root.
	// Each call may walk the root again; caching is left to decorators.
	//
	// A pair with a non-nil error is always the last one and means the
	// sequence was cut short, so the items before it are incomplete.
	// Unreadable files and directories are skipped, not reported.
	Items(ctx context.Context, root string) iter.Seq2[Item, error]
}

// CollectItems gathers seq into a slice. On error it returns the items
// produced before the error along with it.
func CollectItems(seq iter.Seq2[Item, error]) ([]Item, error) {
	var items []Item
	for item, err := range seq {
		if err != nil {
			return items, err
		}
		items = append(items, item)
	}
	return items, nil
}
