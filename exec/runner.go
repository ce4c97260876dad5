// Package exec runs external commands through os/exec.
package exec

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/fwojciec/rsdoc"
)

// Ensure Runner implements rsdoc.CommandRunner at compile time.
var _ rsdoc.CommandRunner = (*Runner)(nil)

// Runner implements rsdoc.CommandRunner with os/exec.
// A missing binary, a start failure, and a non-zero exit all report
// Success=false; none of them is an error.
type Runner struct {
	// Dir is the working directory for commands. Empty means the current one.
	Dir string
}

// NewRunner creates a new Runner.
func NewRunner() *Runner {
	return &Runner{}
}

// Run executes name with args, with no stdin, and captures stdout.
func (r *Runner) Run(ctx context.Context, name string, args ...string) rsdoc.CommandResult {
	path, err := exec.LookPath(name)
	if err != nil {
		return rsdoc.CommandResult{}
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = r.Dir
	var stdout bytes.Buffer
	cmd.Stdout = &stdout

	if err := cmd.Run(); err != nil {
		return rsdoc.CommandResult{Stdout: stdout.String()}
	}
	return rsdoc.CommandResult{Success: true, Stdout: stdout.String()}
}
