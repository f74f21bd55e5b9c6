package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/task"
)

func (a *App) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete [task-id]",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		Long: `Delete a task by its ID.

Example:
  dulcinea delete 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			t, err := a.repo.GetTask(ctx, id)
			if err != nil {
				return taskLookupError(id, err)
			}
			if err := a.repo.DeleteTask(ctx, id); err != nil {
				return fmt.Errorf("deleting task: %w", err)
			}

			_, _ = fmt.Fprintf(a.out, "Deleted task #%d: %s\n", id, t.Title)
			return nil
		},
	}
}

func (a *App) renameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [task-id] [title]",
		Short: "Change a task's title",
		Long: `Rename a task by its ID.

Example:
  dulcinea rename 42 "Team offsite"`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			ctx := context.Background()
			title := strings.TrimSpace(args[1])
			if err := a.repo.UpdateTaskTitle(ctx, id, title); err != nil {
				return fmt.Errorf("renaming task: %w", err)
			}

			_, _ = fmt.Fprintf(a.out, "Renamed task #%d: %s\n", id, title)
			return nil
		},
	}
}

func parseTaskID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q", s)
	}
	return id, nil
}

func taskLookupError(id int64, err error) error {
	if errors.Is(err, task.ErrTaskNotFound) {
		return fmt.Errorf("task #%d: %w", id, err)
	}
	return fmt.Errorf("loading task #%d: %w", id, err)
}
