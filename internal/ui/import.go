package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/db"
	"github.com/javiermolinar/dulcinea/internal/task"
)

// batchCreator stores many tasks at once. The SQLite store implements it.
type batchCreator interface {
	CreateTasks(ctx context.Context, tasks []*task.Task) error
}

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [database_path]",
		Short: "Import tasks from another database",
		Long: `Import all tasks from another Dulcinea database into the current one.
Imported tasks get new IDs.

Example:
  dulcinea import ~/backup/dulcinea.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			destPath, err := resolvePath(a.config.Storage.DBPath)
			if err != nil {
				return err
			}

			if sourcePath == destPath {
				return fmt.Errorf("source database matches current database")
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source database does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source database: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source database path is a directory: %s", sourcePath)
			}

			count, err := importTasks(context.Background(), a.repo, sourcePath)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(a.out, "Imported %d tasks from %s\n", count, sourcePath)
			return nil
		},
	}

	return cmd
}

// importTasks copies every task of the database at sourcePath into dest.
// Stores that support it receive the whole batch in one transaction.
func importTasks(ctx context.Context, dest task.Repository, sourcePath string) (int, error) {
	sourceRepo, err := db.New(sourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = sourceRepo.Close() }()

	tasks, err := sourceRepo.ListTasks(ctx)
	if err != nil {
		return 0, fmt.Errorf("listing source tasks: %w", err)
	}

	copies := make([]*task.Task, 0, len(tasks))
	for _, t := range tasks {
		c := t.Clone()
		c.ID = 0
		copies = append(copies, c)
	}

	if batch, ok := dest.(batchCreator); ok {
		if err := batch.CreateTasks(ctx, copies); err != nil {
			return 0, fmt.Errorf("importing tasks: %w", err)
		}
		return len(copies), nil
	}

	imported := 0
	for _, c := range copies {
		if err := dest.CreateTask(ctx, c); err != nil {
			return imported, fmt.Errorf("importing task %q: %w", c.Title, err)
		}
		imported++
	}
	return imported, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}

	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
