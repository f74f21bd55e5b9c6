package ui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/filter"
	"github.com/javiermolinar/dulcinea/internal/task"
)

// listOptions holds the list command flags.
type listOptions struct {
	start       string
	end         string
	categories  []string
	search      string
	withinWeeks int
}

func (a *App) listCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks in a date range",
		Long: `List every task overlapping a date range.

Without dates the current month is listed. Filters match the board:
--search matches titles, --category may be repeated and --within-weeks
keeps tasks starting no later than that many weeks from today.`,
		Example: `  dulcinea list
  dulcinea list --start=2025-01-01 --end=2025-03-31
  dulcinea list --category=work --category=health --within-weeks=2`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			now := a.now()
			r, err := listRange(opts.start, opts.end, now)
			if err != nil {
				return err
			}
			f, err := opts.filter(a.now)
			if err != nil {
				return err
			}

			tasks, err := a.repo.ListTasksByDateRange(context.Background(), r.Start, r.End)
			if err != nil {
				return fmt.Errorf("listing tasks: %w", err)
			}
			tasks = f.Apply(tasks)

			if len(tasks) == 0 {
				_, _ = fmt.Fprintln(a.out, "No tasks found in the specified date range.")
				return nil
			}

			writeTaskTable(a.out, tasks, now, termWidth())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "First day (default: first day of this month)")
	cmd.Flags().StringVar(&opts.end, "end", "", "Last day, inclusive (default: end of the start month)")
	cmd.Flags().StringSliceVar(&opts.categories, "category", nil, "Only show these categories (repeatable)")
	cmd.Flags().StringVar(&opts.search, "search", "", "Only show titles containing this text")
	cmd.Flags().IntVar(&opts.withinWeeks, "within-weeks", 0, "Only show tasks starting within N weeks (0: off)")

	return cmd
}

// listRange resolves the list window. A missing start means the current
// month; a missing end runs to the end of the start's month.
func listRange(start, end string, now time.Time) (task.Range, error) {
	today := dateutil.TruncateToDay(now)
	s := dateutil.Date(today.Year(), today.Month(), 1)
	if start != "" {
		var err error
		s, err = dateutil.ParseRelativeDate(start, now)
		if err != nil {
			return task.Range{}, fmt.Errorf("start date: %w", err)
		}
	}

	e := dateutil.Date(s.Year(), s.Month()+1, 0)
	if end != "" {
		var err error
		e, err = dateutil.ParseRelativeDate(end, now)
		if err != nil {
			return task.Range{}, fmt.Errorf("end date: %w", err)
		}
	}
	if e.Before(s) {
		return task.Range{}, dateutil.ErrEndDateBeforeStart
	}
	return task.NewRange(s, e), nil
}

func (o listOptions) filter(now func() time.Time) (filter.Filter, error) {
	f := filter.New()
	f.Text = o.search
	f.WithinWeeks = o.withinWeeks
	f.Now = now
	if o.withinWeeks < 0 {
		return f, fmt.Errorf("--within-weeks must not be negative")
	}
	if len(o.categories) > 0 {
		cats := make([]task.Category, 0, len(o.categories))
		for _, name := range o.categories {
			c, err := task.ParseCategory(name)
			if err != nil {
				return f, fmt.Errorf("%q: %w", name, err)
			}
			cats = append(cats, c)
		}
		f.Categories = filter.NewCategorySet(cats...)
	}
	return f, nil
}

// writeTaskTable prints tasks as an aligned table, highlighting the ones
// running today.
func writeTaskTable(w io.Writer, tasks []*task.Task, now time.Time, width int) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = uint(max(20, width-48))
	tbl.AddRow(formatHeader("ID"), formatHeader("Dates"), formatHeader("Days"), formatHeader("Category"), formatHeader("Title"))

	for _, t := range tasks {
		dates := formatRange(t.Range())
		if t.Range().Contains(now) {
			dates = formatToday(dates)
		}
		tbl.AddRow(
			formatMuted("#"+strconv.FormatInt(t.ID, 10)),
			dates,
			strconv.Itoa(t.Days()),
			formatCategory(t.Category),
			t.Title,
		)
	}

	_, _ = fmt.Fprintln(w, tbl)
}
