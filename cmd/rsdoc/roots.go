package main

import (
	"fmt"

	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/locate"
)

// Run executes the roots command.
func (c *RootsCmd) Run(deps *Dependencies) error {
	start := rsdoc.StartPath(c.Workspace)
	roots := deps.Locator.Locate(deps.Ctx, start)

	if len(roots) == 0 {
		fmt.Fprintln(deps.Stdout, "No documentation roots found. Install rust-docs with rustup or run 'cargo doc'.")
		return nil
	}

	project, hasProject := deps.Probe.FindUp(start, locate.ManifestName)

	for _, root := range roots {
		if !hasProject || root != locate.DocDir(project) {
			fmt.Fprintf(deps.Stdout, "std      %s\n", root)
			continue
		}

		label := ""
		if m, err := locate.ReadManifest(project); err == nil {
			label = locate.Describe(m)
		} else {
			deps.Logger.Debug("read manifest", "dir", project, "err", err)
		}
		if label == "" {
			fmt.Fprintf(deps.Stdout, "project  %s\n", root)
		} else {
			fmt.Fprintf(deps.Stdout, "project  %s  (%s)\n", root, label)
		}
	}

	return nil
}
