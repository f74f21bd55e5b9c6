// Package layout assigns task bars in a displayed week to vertical slots so
// that bars sharing a day never share a slot.
package layout

import (
	"sort"
	"time"

	"github.com/javiermolinar/dulcinea/internal/calendar"
	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/task"
)

// DaysPerWeek is the width of a displayed week in day columns.
const DaysPerWeek = 7

// Bar is one task clipped to one displayed week.
type Bar struct {
	Task *task.Task

	Offset int // first column covered, 0..6
	Span   int // number of columns covered, 1..7

	// Proportional position for a 7-column layout.
	Left  float64
	Width float64

	ContinuesBefore bool // the task started in an earlier week
	ContinuesAfter  bool // the task ends in a later week

	Slot int // vertical lane; -1 when the bar overflowed
}

// End returns the last column covered by the bar.
func (b Bar) End() int {
	return b.Offset + b.Span - 1
}

// Covers reports whether the bar occupies column col.
func (b Bar) Covers(col int) bool {
	return col >= b.Offset && col <= b.End()
}

// Overlaps reports whether two bars share a column.
func (b Bar) Overlaps(o Bar) bool {
	return b.Offset <= o.End() && o.Offset <= b.End()
}

// Week is the layout of one displayed week.
type Week struct {
	Start time.Time

	Bars   []Bar // bars with a slot, in assignment order
	Hidden []Bar // bars beyond the slot cap

	Overflow      int              // number of hidden bars
	OverflowByDay [DaysPerWeek]int // hidden bars per column
	SlotsUsed     int              // highest visible slot + 1
}

// BarAt returns the visible bar occupying slot at column col.
func (w Week) BarAt(slot, col int) (Bar, bool) {
	for _, b := range w.Bars {
		if b.Slot == slot && b.Covers(col) {
			return b, true
		}
	}
	return Bar{}, false
}

// BarFor returns the visible bar of the given task.
func (w Week) BarFor(id int64) (Bar, bool) {
	for _, b := range w.Bars {
		if b.Task.ID == id {
			return b, true
		}
	}
	return Bar{}, false
}

// Clip restricts a task to the week starting on weekStart.
// ok is false when the task does not intersect the week.
func Clip(t *task.Task, weekStart time.Time) (Bar, bool) {
	weekStart = dateutil.TruncateToDay(weekStart)
	week := task.Range{Start: weekStart, End: weekStart.AddDate(0, 0, DaysPerWeek-1)}

	r := t.Range()
	clipped, ok := r.Clip(week)
	if !ok {
		return Bar{}, false
	}

	offset := dateutil.DaysBetween(weekStart, clipped.Start)
	span := dateutil.DaysBetween(clipped.Start, clipped.End) + 1
	return Bar{
		Task:            t,
		Offset:          offset,
		Span:            span,
		Left:            float64(offset) / DaysPerWeek,
		Width:           float64(span) / DaysPerWeek,
		ContinuesBefore: r.Start.Before(weekStart),
		ContinuesAfter:  r.End.After(week.End),
		Slot:            -1,
	}, true
}

// AssignWeek lays out the tasks intersecting the week starting on weekStart.
//
// Tasks are processed by ID, ties broken by start date, and each bar takes
// the lowest slot not held by an overlapping bar assigned before it. With
// maxSlots > 0, a bar whose lowest free slot is at or beyond the cap is
// hidden and counted as overflow; maxSlots <= 0 never hides bars.
func AssignWeek(weekStart time.Time, tasks []*task.Task, maxSlots int) Week {
	weekStart = dateutil.TruncateToDay(weekStart)
	w := Week{Start: weekStart}

	var bars []Bar
	for _, t := range tasks {
		if t == nil {
			continue
		}
		if b, ok := Clip(t, weekStart); ok {
			bars = append(bars, b)
		}
	}
	sort.SliceStable(bars, func(i, j int) bool {
		a, b := bars[i].Task, bars[j].Task
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.Start.Before(b.Start)
	})

	// lanes[s] holds the visible bars placed in slot s.
	var lanes [][]Bar
	for _, b := range bars {
		slot := lowestFreeSlot(lanes, b)
		if maxSlots > 0 && slot >= maxSlots {
			w.Hidden = append(w.Hidden, b)
			w.Overflow++
			for col := b.Offset; col <= b.End(); col++ {
				w.OverflowByDay[col]++
			}
			continue
		}
		if slot == len(lanes) {
			lanes = append(lanes, nil)
		}
		b.Slot = slot
		lanes[slot] = append(lanes[slot], b)
		w.Bars = append(w.Bars, b)
	}
	w.SlotsUsed = len(lanes)

	return w
}

func lowestFreeSlot(lanes [][]Bar, b Bar) int {
	for slot, lane := range lanes {
		free := true
		for _, other := range lane {
			if other.Overlaps(b) {
				free = false
				break
			}
		}
		if free {
			return slot
		}
	}
	return len(lanes)
}

// AssignGrid lays out all six weeks of a month grid.
func AssignGrid(g *calendar.Grid, tasks []*task.Task, maxSlots int) []Week {
	weeks := make([]Week, calendar.Rows)
	for row := range weeks {
		weeks[row] = AssignWeek(g.WeekStartDate(row), tasks, maxSlots)
	}
	return weeks
}
