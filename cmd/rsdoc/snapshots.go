package main

import (
	"fmt"
	"time"

	"github.com/fwojciec/rsdoc"
)

// Run executes the snapshots command.
func (c *SnapshotsCmd) Run(deps *Dependencies) error {
	snaps, err := deps.Snapshots.FindSnapshots(deps.Ctx, rsdoc.SnapshotFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		return err
	}

	if len(snaps) == 0 {
		fmt.Fprintln(deps.Stdout, "No snapshots found. Use 'rsdoc index' to create one.")
		return nil
	}

	for _, s := range snaps {
		fmt.Fprintf(deps.Stdout, "%s  %s  %d items  %s  %s\n",
			s.ID, s.Root, s.ItemCount, s.ContentHash, s.CreatedAt.Format(time.DateTime))
	}

	return nil
}
