// Package calendar maps months to the fixed 6x7 day grid and pointer
// coordinates to cells of that grid.
package calendar

import (
	"time"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
)

// Grid dimensions.
const (
	Rows  = 6
	Cols  = 7
	Cells = Rows * Cols
)

// Cell is a (row, col) coordinate in the grid.
type Cell struct {
	Row int
	Col int
}

// Index returns the position of the cell in the 42-day sequence.
func (c Cell) Index() int {
	return c.Row*Cols + c.Col
}

// Valid reports whether the cell lies inside the grid.
func (c Cell) Valid() bool {
	return c.Row >= 0 && c.Row < Rows && c.Col >= 0 && c.Col < Cols
}

// dateKey identifies a calendar date independently of clock and zone.
type dateKey struct {
	year  int
	month time.Month
	day   int
}

func keyOf(t time.Time) dateKey {
	y, m, d := t.Date()
	return dateKey{year: y, month: m, day: d}
}

// BuildMonthGrid returns the 42 consecutive days displayed for a month,
// starting on the last weekStart weekday on or before the 1st.
func BuildMonthGrid(year int, month time.Month, weekStart time.Weekday) []time.Time {
	first := dateutil.Date(year, month, 1)
	start := dateutil.StartOfWeek(first, weekStart)

	days := make([]time.Time, Cells)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// Grid is the memoized 42-day window of a displayed month with a date index.
type Grid struct {
	Year      int
	Month     time.Month
	WeekStart time.Weekday

	days  []time.Time
	index map[dateKey]Cell
	now   func() time.Time
}

// GridOption configures a Grid.
type GridOption func(*Grid)

// WithClock sets the clock used for the out-of-range "today" fallback.
func WithClock(now func() time.Time) GridOption {
	return func(g *Grid) {
		g.now = now
	}
}

// NewGrid builds the grid for a month.
func NewGrid(year int, month time.Month, weekStart time.Weekday, opts ...GridOption) *Grid {
	// Normalize month overflow such as (2025, 13).
	norm := dateutil.Date(year, month, 1)
	g := &Grid{
		Year:      norm.Year(),
		Month:     norm.Month(),
		WeekStart: weekStart,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.days = BuildMonthGrid(g.Year, g.Month, weekStart)
	g.index = make(map[dateKey]Cell, Cells)
	for i, d := range g.days {
		g.index[keyOf(d)] = Cell{Row: i / Cols, Col: i % Cols}
	}
	return g
}

// Days returns a copy of the 42 displayed days.
func (g *Grid) Days() []time.Time {
	out := make([]time.Time, len(g.days))
	copy(out, g.days)
	return out
}

// First returns the first displayed day.
func (g *Grid) First() time.Time {
	return g.days[0]
}

// Last returns the last displayed day.
func (g *Grid) Last() time.Time {
	return g.days[Cells-1]
}

// Contains reports whether date is displayed.
func (g *Grid) Contains(date time.Time) bool {
	_, ok := g.index[keyOf(date)]
	return ok
}

// InMonth reports whether date belongs to the displayed month rather than
// the leading or trailing days of neighbouring months.
func (g *Grid) InMonth(date time.Time) bool {
	return date.Year() == g.Year && date.Month() == g.Month
}

// CellForDate returns the cell showing date. Time-of-day is ignored.
func (g *Grid) CellForDate(date time.Time) (Cell, bool) {
	c, ok := g.index[keyOf(date)]
	return c, ok
}

// DateForCell returns the date shown at (row, col). Out-of-range coordinates
// fall back to today so pointer tracking survives rounding at the edges.
func (g *Grid) DateForCell(row, col int) time.Time {
	c := Cell{Row: row, Col: col}
	if !c.Valid() {
		return dateutil.TruncateToDay(g.now())
	}
	return g.days[c.Index()]
}

// WeekStartDate returns the first day of the given grid row.
func (g *Grid) WeekStartDate(row int) time.Time {
	return g.DateForCell(row, 0)
}

// DateAt resolves a pointer position inside rect to the date under it.
func (g *Grid) DateAt(x, y float64, rect Rect) (time.Time, bool) {
	c, ok := CellForPoint(x, y, rect, Rows, Cols)
	if !ok {
		return time.Time{}, false
	}
	return g.days[c.Index()], true
}

// Label returns the month header, e.g. "August 2025".
func (g *Grid) Label() string {
	return dateutil.MonthLabel(g.Year, g.Month)
}

// Next returns the grid of the following month.
func (g *Grid) Next() *Grid {
	return NewGrid(g.Year, g.Month+1, g.WeekStart, WithClock(g.now))
}

// Prev returns the grid of the previous month.
func (g *Grid) Prev() *Grid {
	return NewGrid(g.Year, g.Month-1, g.WeekStart, WithClock(g.now))
}
