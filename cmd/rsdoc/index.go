package main

import (
	"fmt"

	"github.com/fwojciec/rsdoc"
	"golang.org/x/sync/errgroup"
)

// Run executes the index command. Roots are walked concurrently and each
// one replaces its previous snapshot.
func (c *IndexCmd) Run(deps *Dependencies) error {
	roots := deps.Locator.Locate(deps.Ctx, rsdoc.StartPath(c.Workspace))
	if len(roots) == 0 {
		fmt.Fprintln(deps.Stdout, "No documentation roots found. Nothing to index.")
		return nil
	}

	snapshots := make([]*rsdoc.Snapshot, len(roots))
	g, ctx := errgroup.WithContext(deps.Ctx)
	for i, root := range roots {
		g.Go(func() error {
			items, err := rsdoc.CollectItems(deps.Items.Items(ctx, root))
			if err != nil {
				return fmt.Errorf("walk %s: %w", root, err)
			}

			snap, err := deps.Snapshots.CreateSnapshot(ctx, root, items)
			if err != nil {
				return fmt.Errorf("index %s: %w", root, err)
			}
			snapshots[i] = snap
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		return err
	}

	for _, snap := range snapshots {
		fmt.Fprintf(deps.Stdout, "Indexed %d items from %s\n", snap.ItemCount, snap.Root)
	}
	return nil
}
