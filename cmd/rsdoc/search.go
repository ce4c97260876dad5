package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/rsdoc"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	filter := rsdoc.ItemFilter{
		NamePrefix: &c.Name,
		Limit:      c.Limit,
	}
	if c.Kind != "" {
		kind := rsdoc.Kind(c.Kind)
		if !kind.Known() {
			fmt.Fprintf(deps.Stderr, "Hint: %q is not a known kind (%s)\n", c.Kind, knownKinds())
		}
		filter.Kind = &kind
	}
	if c.Root != "" {
		filter.Root = &c.Root
	}

	items, err := deps.Snapshots.FindItems(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", rsdoc.ErrorMessage(err))
		return err
	}

	if len(items) == 0 {
		fmt.Fprintf(deps.Stdout, "No items match %q. Run 'rsdoc index' to store the current doc roots.\n", c.Name)
		return nil
	}

	enc := json.NewEncoder(deps.Stdout)
	for _, item := range items {
		entry := rsdoc.NewEntry(item)
		if c.JSON {
			if err := enc.Encode(entry); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", entry.Display, entry.Action.URL)
	}

	return nil
}

func knownKinds() string {
	names := make([]string, len(rsdoc.Kinds))
	for i, k := range rsdoc.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
