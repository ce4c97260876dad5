package mock

import (
	"context"
	"iter"

	"github.com/fwojciec/rsdoc"
)

var _ rsdoc.ItemSource = (*ItemSource)(nil)

// ItemSource is a mock implementation of rsdoc.ItemSource.
type ItemSource struct {
	ItemsFn func(ctx context.Context, root string) iter.Seq2[rsdoc.Item, error]
}

func (s *ItemSource) Items(ctx context.Context, root string) iter.Seq2[rsdoc.Item, error] {
	return s.ItemsFn(ctx, root)
}
