package rsdoc

import (
	"context"
	"time"
)

// Snapshot represents the persisted items of one doc root.
type Snapshot struct {
	ID          string    `json:"id"`
	Root        string    `json:"root"`
	ItemCount   int       `json:"itemCount"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.Root == "" {
		return Errorf(EINVALID, "snapshot root required")
	}
	return nil
}

// SnapshotService represents a service for persisting indexed doc roots.
type SnapshotService interface {
	// CreateSnapshot stores items for root, replacing any earlier snapshot
	// of the same root.
	CreateSnapshot(ctx context.Context, root string, items []Item) (*Snapshot, error)

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot and its items.
	// Returns ENOTFOUND if snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error

	// FindItems retrieves persisted items matching the filter.
	FindItems(ctx context.Context, filter ItemFilter) ([]Item, error)
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID   *string `json:"id"`
	Root *string `json:"root"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ItemFilter represents a filter for FindItems.
type ItemFilter struct {
	Root   *string `json:"root"`
	Kind   *Kind   `json:"kind"`
	Module *string `json:"module"`
	// NamePrefix matches items whose name starts with the given text.
	NamePrefix *string `json:"namePrefix"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
