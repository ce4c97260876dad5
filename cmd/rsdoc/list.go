package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/picker"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	stream := picker.NewSource(deps.Locator, deps.Items).Gather(deps.Ctx, c.Workspace)
	stream.Start()
	defer stream.Close()

	enc := json.NewEncoder(deps.Stdout)
	for {
		batch, done, err := stream.Next()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
			return err
		}
		if done {
			return nil
		}

		for _, entry := range batch {
			if c.JSON {
				if err := enc.Encode(entry); err != nil {
					return err
				}
				continue
			}
			fmt.Fprintf(deps.Stdout, "%s\t%s\n", entry.Display, entry.Action.URL)
		}
	}
}
