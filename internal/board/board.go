// Package board ties the engine together for one displayed month: it feeds
// pointer events to the gesture machine, applies their results to the
// resident task collection and lays out the visible tasks per week.
package board

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/javiermolinar/dulcinea/internal/calendar"
	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/filter"
	"github.com/javiermolinar/dulcinea/internal/gesture"
	"github.com/javiermolinar/dulcinea/internal/layout"
	"github.com/javiermolinar/dulcinea/internal/task"
)

// ErrNoSelection is returned when a task is requested without a committed
// selection to place it on.
var ErrNoSelection = errors.New("no date range selected")

// DefaultMaxSlots is the number of bar lanes shown per week.
const DefaultMaxSlots = 3

// Options configures a Board.
type Options struct {
	WeekStart time.Weekday
	MaxSlots  int
	Now       func() time.Time
	Capture   gesture.Capture
}

// Board is the engine facade used by the presentation layer.
type Board struct {
	tasks   *task.Collection
	grids   *calendar.Cache
	machine *gesture.Machine
	filter  filter.Filter

	year      int
	month     time.Month
	weekStart time.Weekday
	bounds    calendar.Rect
	maxSlots  int
	now       func() time.Time

	pending *task.Range
}

// New creates a board showing the current month.
func New(tasks *task.Collection, opts Options) *Board {
	if tasks == nil {
		tasks = task.NewCollection()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	b := &Board{
		tasks:     tasks,
		grids:     calendar.NewCache(opts.Now),
		filter:    filter.New(),
		weekStart: opts.WeekStart,
		maxSlots:  opts.MaxSlots,
		now:       opts.Now,
	}
	b.filter.Now = opts.Now
	b.machine = gesture.New(b, tasks, opts.Capture)

	today := opts.Now()
	b.year, b.month = today.Year(), today.Month()
	return b
}

// Tasks returns the resident collection.
func (b *Board) Tasks() *task.Collection {
	return b.tasks
}

// Grid returns the memoized grid of the displayed month.
func (b *Board) Grid() *calendar.Grid {
	return b.grids.Grid(b.year, b.month, b.weekStart)
}

// Month returns the displayed year and month.
func (b *Board) Month() (int, time.Month) {
	return b.year, b.month
}

// SetMonth displays another month. An active gesture is cancelled first.
func (b *Board) SetMonth(year int, month time.Month) gesture.Outcome {
	out := b.Cancel()
	norm := dateutil.Date(year, month, 1)
	b.year, b.month = norm.Year(), norm.Month()
	return out
}

// NextMonth displays the following month.
func (b *Board) NextMonth() gesture.Outcome {
	return b.SetMonth(b.year, b.month+1)
}

// PrevMonth displays the previous month.
func (b *Board) PrevMonth() gesture.Outcome {
	return b.SetMonth(b.year, b.month-1)
}

// Today displays the current month.
func (b *Board) Today() gesture.Outcome {
	now := b.now()
	return b.SetMonth(now.Year(), now.Month())
}

// SetBounds records the container rectangle pointer coordinates refer to.
func (b *Board) SetBounds(r calendar.Rect) {
	b.bounds = r
}

// Bounds returns the container rectangle.
func (b *Board) Bounds() calendar.Rect {
	return b.bounds
}

// DateAt resolves a pointer position against the current bounds.
func (b *Board) DateAt(x, y float64) (time.Time, bool) {
	return b.Grid().DateAt(x, y, b.bounds)
}

// MaxSlots returns the visible lane cap; zero or less means unbounded.
func (b *Board) MaxSlots() int {
	return b.maxSlots
}

// SetMaxSlots changes the visible lane cap.
func (b *Board) SetMaxSlots(n int) {
	b.maxSlots = n
}

// Filter returns a copy of the active filter.
func (b *Board) Filter() filter.Filter {
	f := b.filter
	f.Categories = b.filter.Categories.Clone()
	return f
}

// SetFilter replaces the active filter.
func (b *Board) SetFilter(f filter.Filter) {
	if f.Now == nil {
		f.Now = b.now
	}
	if f.Categories == nil {
		f.Categories = filter.NewCategorySet()
	}
	b.filter = f
}

// State returns the gesture state for highlight rendering.
func (b *Board) State() gesture.State {
	return b.machine.State()
}

// Active reports whether a gesture is in progress.
func (b *Board) Active() bool {
	return b.machine.Active()
}

// PointerDown forwards a pointer press to the gesture machine.
func (b *Board) PointerDown(ev gesture.PointerEvent) gesture.Outcome {
	out := b.machine.PointerDown(ev)
	if out.Type == gesture.OutcomeStarted && out.Gesture == gesture.KindSelecting {
		b.pending = nil
	}
	return out
}

// PointerMove forwards pointer motion and applies live previews.
func (b *Board) PointerMove(ev gesture.PointerEvent) gesture.Outcome {
	return b.apply(b.machine.PointerMove(ev))
}

// PointerUp forwards a pointer release and applies commits.
func (b *Board) PointerUp(ev gesture.PointerEvent) gesture.Outcome {
	return b.apply(b.machine.PointerUp(ev))
}

// Cancel abandons the active gesture, restoring a moved or resized task.
func (b *Board) Cancel() gesture.Outcome {
	return b.apply(b.machine.Cancel())
}

func (b *Board) apply(out gesture.Outcome) gesture.Outcome {
	switch out.Type {
	case gesture.OutcomeUpdated, gesture.OutcomeTaskCommitted, gesture.OutcomeCancelled:
		if out.Gesture == gesture.KindMoving || out.Gesture == gesture.KindResizing {
			// The machine only reports tasks that still exist.
			_ = b.tasks.SetRange(out.TaskID, out.Range)
		}
	case gesture.OutcomeSelectionCommitted:
		r := out.Range
		b.pending = &r
	}
	return out
}

// Selection returns the range to highlight as selected: the live drag while
// selecting, otherwise the committed selection awaiting confirmation.
func (b *Board) Selection() (task.Range, bool) {
	if s, ok := b.machine.State().(gesture.Selecting); ok {
		return s.Range(), true
	}
	if b.pending != nil {
		return *b.pending, true
	}
	return task.Range{}, false
}

// PendingSelection returns the committed selection awaiting confirmation.
func (b *Board) PendingSelection() (task.Range, bool) {
	if b.pending == nil {
		return task.Range{}, false
	}
	return *b.pending, true
}

// DiscardSelection drops the pending selection.
func (b *Board) DiscardSelection() {
	b.pending = nil
}

// RequestCreateTask creates a task on the pending selection. The selection
// is consumed whether or not the task passes validation.
func (b *Board) RequestCreateTask(title string, category task.Category) (*task.Task, error) {
	if b.pending == nil {
		return nil, ErrNoSelection
	}
	r := *b.pending
	b.pending = nil

	t, err := task.New(title, category, r)
	if err != nil {
		return nil, err
	}
	return b.tasks.Add(t), nil
}

// RequestDeleteTask removes a task. A gesture targeting it is discarded on
// its next event.
func (b *Board) RequestDeleteTask(id int64) error {
	return b.tasks.Remove(id)
}

// Visible returns the filtered tasks intersecting the displayed grid.
func (b *Board) Visible() []*task.Task {
	g := b.Grid()
	return b.filter.Apply(b.tasks.Intersecting(g.First(), g.Last()))
}

// Weeks lays out the visible tasks for each of the six grid rows.
func (b *Board) Weeks() []layout.Week {
	return layout.AssignGrid(b.Grid(), b.Visible(), b.maxSlots)
}

// Agenda renders the visible tasks of the displayed month as plain text.
func (b *Board) Agenda() string {
	g := b.Grid()
	first := dateutil.Date(g.Year, g.Month, 1)
	last := first.AddDate(0, 1, -1)

	tasks := b.filter.Apply(b.tasks.Intersecting(first, last))
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].Start.Equal(tasks[j].Start) {
			return tasks[i].Start.Before(tasks[j].Start)
		}
		return tasks[i].ID < tasks[j].ID
	})

	var sb strings.Builder
	sb.WriteString(g.Label())
	sb.WriteString("\n")
	if len(tasks) == 0 {
		sb.WriteString("  (no tasks)\n")
		return sb.String()
	}
	for _, t := range tasks {
		when := t.Start.Format(dateutil.DateLayout)
		if !dateutil.SameDay(t.Start, t.End) {
			when = t.Range().String()
		}
		fmt.Fprintf(&sb, "  %-22s %-9s %s\n", when, t.Category.Info().Name, t.Title)
	}
	return sb.String()
}
