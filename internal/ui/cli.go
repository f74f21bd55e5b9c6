// Package ui implements the dulcinea command line.
package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/config"
	"github.com/javiermolinar/dulcinea/internal/db"
	"github.com/javiermolinar/dulcinea/internal/task"
	"github.com/javiermolinar/dulcinea/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	repo    task.Repository
	owned   bool // repo was opened by the App and must be closed by it
	config  *config.Config
	root    *cobra.Command
	out     io.Writer
	now     func() time.Time
	debug   bool // Enable debug logging
	memory  bool // Run the board without a database
	noColor bool
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened from the configured database path on first use.
func NewApp(repo task.Repository, cfg *config.Config) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{repo: repo, config: cfg, out: color.Output, now: time.Now}

	a.root = &cobra.Command{
		Use:   "dulcinea",
		Short: "A month calendar for multi-day tasks",
		Long: `Dulcinea is a terminal month calendar.

Drag across days to create a task, drag a bar to move it and drag its
ends to change its dates. Tasks are filed under a category and can be
filtered by text, category and how soon they start.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor || !stdoutIsTerminal() {
				DisableColor()
			}
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithOptions(a.repo, a.config, tui.RunOptions{
				Debug:  a.debug,
				Memory: a.memory,
			})
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to temp file)")
	a.root.PersistentFlags().BoolVar(&a.memory, "memory", false, "Keep tasks in memory only, without a database")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.deleteCmd())
	a.root.AddCommand(a.renameCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(a.out, "dulcinea %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ensureRepo opens the configured database unless a repository was given.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := db.Open(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	a.repo = repo
	a.owned = true
	return nil
}

// Close releases the repository if the App opened it.
func (a *App) Close() error {
	if !a.owned || a.repo == nil {
		return nil
	}
	err := a.repo.Close()
	a.repo = nil
	a.owned = false
	return err
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
