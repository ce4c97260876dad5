package picker

import (
	"context"
	"iter"

	"github.com/fwojciec/rsdoc"
)

// Source gathers picker entries for every doc root relevant to a workspace.
type Source struct {
	Locator rsdoc.RootLocator
	Items   rsdoc.ItemSource

	// BatchSize overrides rsdoc.BatchSize when positive.
	BatchSize int
}

// NewSource creates a new Source.
func NewSource(locator rsdoc.RootLocator, items rsdoc.ItemSource) *Source {
	return &Source{Locator: locator, Items: items}
}

// Entries returns the entries of every root located from start, roots in
// locator order and items in source order. Roots are located lazily on the
// first pull. A walk that ends with an error ends the sequence.
func (s *Source) Entries(ctx context.Context, start string) iter.Seq[rsdoc.Entry] {
	return func(yield func(rsdoc.Entry) bool) {
		for _, root := range s.Locator.Locate(ctx, start) {
			for item, err := range s.Items.Items(ctx, root) {
				if err != nil {
					return
				}
				if !yield(rsdoc.NewEntry(item)) {
					return
				}
			}
		}
	}
}

// Gather returns an unstarted stream of entry batches for ws.
func (s *Source) Gather(ctx context.Context, ws rsdoc.Workspace) *Stream[rsdoc.Entry] {
	return NewStream(Batches(s.Entries(ctx, rsdoc.StartPath(ws)), s.BatchSize))
}
