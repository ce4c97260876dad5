package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/rsdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ rsdoc.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements rsdoc.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// hashItems computes the xxHash of the item IDs in order and returns it as hex.
func hashItems(items []rsdoc.Item) string {
	d := xxhash.New()
	for _, item := range items {
		_, _ = d.WriteString(item.ID())
		_, _ = d.WriteString("\n")
	}
	return fmt.Sprintf("%016x", d.Sum64())
}

// CreateSnapshot stores items for root, replacing any earlier snapshot of
// the same root, in a single transaction.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, root string, items []rsdoc.Item) (*rsdoc.Snapshot, error) {
	snap := &rsdoc.Snapshot{
		ID:          uuid.New().String(),
		Root:        root,
		ItemCount:   len(items),
		ContentHash: hashItems(items),
		CreatedAt:   time.Now().UTC(),
	}
	if err := snap.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM snapshots WHERE root = ?`, root); err != nil {
		return nil, fmt.Errorf("failed to delete previous snapshot: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO snapshots (id, root, item_count, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, snap.ID, snap.Root, snap.ItemCount, snap.ContentHash, snap.CreatedAt.Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO items (snapshot_id, id, position, kind, module, name)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	for i, item := range items {
		if item.DocRoot != root {
			return nil, rsdoc.Errorf(rsdoc.EINVALID, "item %s belongs to %q, not %q", item.Name, item.DocRoot, root)
		}
		var module sql.NullString
		if item.Module != nil {
			module = sql.NullString{String: *item.Module, Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, snap.ID, item.ID(), i, string(item.Kind), module, item.Name); err != nil {
			return nil, fmt.Errorf("failed to insert item %s: %w", item.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return snap, nil
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*rsdoc.Snapshot, error) {
	snaps, err := s.FindSnapshots(ctx, rsdoc.SnapshotFilter{ID: &id})
	if err != nil {
		return nil, err
	}
	if len(snaps) == 0 {
		return nil, rsdoc.Errorf(rsdoc.ENOTFOUND, "snapshot not found")
	}
	return snaps[0], nil
}

// FindSnapshots retrieves snapshots matching the filter, newest first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter rsdoc.SnapshotFilter) ([]*rsdoc.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, root, item_count, content_hash, created_at FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Root != nil {
		query.WriteString(" AND root = ?")
		args = append(args, *filter.Root)
	}

	query.WriteString(" ORDER BY created_at DESC, root ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*rsdoc.Snapshot
	for rows.Next() {
		var snap rsdoc.Snapshot
		var createdAt string

		if err := rows.Scan(&snap.ID, &snap.Root, &snap.ItemCount, &snap.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		if snap.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		snaps = append(snaps, &snap)
	}

	return snaps, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot and its items.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return rsdoc.Errorf(rsdoc.ENOTFOUND, "snapshot not found")
	}
	return nil
}

// FindItems retrieves persisted items matching the filter, ordered by root
// and then by walk order. NamePrefix matching is case-insensitive for ASCII.
func (s *SnapshotService) FindItems(ctx context.Context, filter rsdoc.ItemFilter) ([]rsdoc.Item, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`SELECT s.root, i.kind, i.module, i.name
		FROM items i JOIN snapshots s ON s.id = i.snapshot_id
		WHERE 1=1`)

	if filter.Root != nil {
		query.WriteString(" AND s.root = ?")
		args = append(args, *filter.Root)
	}
	if filter.Kind != nil {
		query.WriteString(" AND i.kind = ?")
		args = append(args, string(*filter.Kind))
	}
	if filter.Module != nil {
		query.WriteString(" AND i.module = ?")
		args = append(args, *filter.Module)
	}
	if filter.NamePrefix != nil {
		query.WriteString(` AND i.name LIKE ? ESCAPE '\'`)
		args = append(args, escapeLike(*filter.NamePrefix)+"%")
	}

	query.WriteString(" ORDER BY s.root ASC, i.position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []rsdoc.Item
	for rows.Next() {
		var item rsdoc.Item
		var kind string
		var module sql.NullString

		if err := rows.Scan(&item.DocRoot, &kind, &module, &item.Name); err != nil {
			return nil, err
		}
		item.Kind = rsdoc.Kind(kind)
		if module.Valid {
			item.Module = rsdoc.ModulePath(module.String)
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
