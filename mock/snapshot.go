package mock

import (
	"context"

	"github.com/fwojciec/rsdoc"
)

var _ rsdoc.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of rsdoc.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn   func(ctx context.Context, root string, items []rsdoc.Item) (*rsdoc.Snapshot, error)
	FindSnapshotByIDFn func(ctx context.Context, id string) (*rsdoc.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter rsdoc.SnapshotFilter) ([]*rsdoc.Snapshot, error)
	DeleteSnapshotFn   func(ctx context.Context, id string) error
	FindItemsFn        func(ctx context.Context, filter rsdoc.ItemFilter) ([]rsdoc.Item, error)
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, root string, items []rsdoc.Item) (*rsdoc.Snapshot, error) {
	return s.CreateSnapshotFn(ctx, root, items)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*rsdoc.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter rsdoc.SnapshotFilter) ([]*rsdoc.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}

func (s *SnapshotService) FindItems(ctx context.Context, filter rsdoc.ItemFilter) ([]rsdoc.Item, error) {
	return s.FindItemsFn(ctx, filter)
}
