package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/rsdoc"
	"github.com/fwojciec/rsdoc/cache"
	"github.com/fwojciec/rsdoc/exec"
	"github.com/fwojciec/rsdoc/fs"
	"github.com/fwojciec/rsdoc/locate"
	rsslog "github.com/fwojciec/rsdoc/slog"
	"github.com/fwojciec/rsdoc/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db and RSDOC_DB override it.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	SnapshotService rsdoc.SnapshotService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("rsdoc"),
		kong.Description("List rustdoc items from the standard library and the current Cargo project."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'rsdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Debug)
	deps.Logger = logger

	// Wire discovery pipeline
	probe := fs.NewProbe()
	runner := rsslog.NewLoggingCommandRunner(exec.NewRunner(), logger)
	walker := &fs.Walker{Exclude: cli.Exclude}
	deps.Probe = probe
	deps.Locator = rsslog.NewLoggingLocator(locate.NewLocator(runner, probe), logger)
	items := cache.New(rsslog.NewLoggingItemSource(walker, logger))
	deps.Items = items

	// Only the persistence commands touch the database.
	switch kongCtx.Command() {
	case "index", "search <name>", "snapshots":
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set RSDOC_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.SnapshotService = sqlite.NewSnapshotService(m.DB)
		deps.Snapshots = m.SnapshotService
	}

	err = kongCtx.Run(deps)
	logger.Debug("cached roots", "roots", items.Roots())
	return err
}

// newLogger returns a text logger on w when debug is set and a discarding
// logger otherwise.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	if !debug {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func defaultDBPath() string {
	if path := os.Getenv("RSDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "rsdoc.db"
	}
	dir := filepath.Join(home, ".rsdoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "rsdoc.db")
}
