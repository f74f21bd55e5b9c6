package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/task"
)

func (a *App) addCmd() *cobra.Command {
	var (
		start    string
		end      string
		category string
	)

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new task",
		Long: `Add a task spanning one or more days.

Dates accept YYYY-MM-DD, today, tomorrow, yesterday, next-week or a
weekday name. Without --end the task lasts a single day.`,
		Example: `  dulcinea add "Dentist" --start=friday --category=health
  dulcinea add "Conference" --start=2025-09-15 --end=2025-09-17`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			r, err := parseTaskRange(start, end, a.now())
			if err != nil {
				return err
			}

			if category == "" {
				category = string(a.config.Category())
			}
			cat, err := task.ParseCategory(category)
			if err != nil {
				return err
			}

			t, err := task.New(args[0], cat, r)
			if err != nil {
				return err
			}

			ctx := context.Background()
			if err := a.repo.CreateTask(ctx, t); err != nil {
				return fmt.Errorf("creating task: %w", err)
			}

			_, _ = fmt.Fprintf(a.out, "Created task #%d: %s [%s] %s\n",
				t.ID,
				t.Title,
				formatCategory(t.Category),
				formatRange(t.Range()),
			)
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "First day (default: today)")
	cmd.Flags().StringVar(&end, "end", "", "Last day, inclusive (default: start)")
	cmd.Flags().StringVar(&category, "category", "", "Category: work, personal, family, health or other")

	return cmd
}

// parseTaskRange parses CLI date flags relative to now. An empty end means a
// single-day range; an end before the start is rejected.
func parseTaskRange(start, end string, now time.Time) (task.Range, error) {
	s, err := dateutil.ParseRelativeDate(start, now)
	if err != nil {
		return task.Range{}, fmt.Errorf("start date: %w", err)
	}
	if end == "" {
		return task.SingleDay(s), nil
	}
	e, err := dateutil.ParseRelativeDate(end, now)
	if err != nil {
		return task.Range{}, fmt.Errorf("end date: %w", err)
	}
	if e.Before(s) {
		return task.Range{}, task.ErrInvalidRange
	}
	return task.NewRange(s, e), nil
}

// formatRange prints a range as one date or "first → last".
func formatRange(r task.Range) string {
	if r.Days() == 1 {
		return r.Start.Format(dateutil.DateLayout)
	}
	return fmt.Sprintf("%s → %s", r.Start.Format(dateutil.DateLayout), r.End.Format(dateutil.DateLayout))
}
