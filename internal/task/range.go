package task

import (
	"time"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
)

// Edge identifies one end of a range.
type Edge int

const (
	EdgeStart Edge = iota
	EdgeEnd
)

// String returns "start" or "end".
func (e Edge) String() string {
	if e == EdgeEnd {
		return "end"
	}
	return "start"
}

// Range is an inclusive span of whole days. Values produced by this package
// always satisfy Start <= End with time-of-day stripped.
type Range struct {
	Start time.Time
	End   time.Time
}

// NewRange builds a range from two dates in any order.
func NewRange(a, b time.Time) Range {
	a = dateutil.TruncateToDay(a)
	b = dateutil.TruncateToDay(b)
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// SingleDay returns the range covering only the given date.
func SingleDay(d time.Time) Range {
	return NewRange(d, d)
}

// Days returns the inclusive day count. A single-day range has one day.
func (r Range) Days() int {
	return dateutil.DaysBetween(r.Start, r.End) + 1
}

// Contains reports whether date falls inside the range.
func (r Range) Contains(date time.Time) bool {
	d := dateutil.TruncateToDay(date)
	return !d.Before(dateutil.TruncateToDay(r.Start)) && !d.After(dateutil.TruncateToDay(r.End))
}

// Overlaps reports whether two ranges share at least one day.
func (r Range) Overlaps(o Range) bool {
	return !r.End.Before(o.Start) && !o.End.Before(r.Start)
}

// Clip restricts the range to bounds. ok is false when they do not intersect.
func (r Range) Clip(bounds Range) (clipped Range, ok bool) {
	if !r.Overlaps(bounds) {
		return Range{}, false
	}
	clipped = r
	if clipped.Start.Before(bounds.Start) {
		clipped.Start = bounds.Start
	}
	if clipped.End.After(bounds.End) {
		clipped.End = bounds.End
	}
	return clipped, true
}

// Equal reports whether both ranges cover the same days.
func (r Range) Equal(o Range) bool {
	return dateutil.SameDay(r.Start, o.Start) && dateutil.SameDay(r.End, o.End)
}

// String formats the range as "2006-01-02..2006-01-02".
func (r Range) String() string {
	return r.Start.Format(dateutil.DateLayout) + ".." + r.End.Format(dateutil.DateLayout)
}

// MoveTo shifts the range so it starts on newStart, keeping the exact
// distance between start and end.
func MoveTo(r Range, newStart time.Time) Range {
	r = NewRange(r.Start, r.End)
	span := dateutil.DaysBetween(r.Start, r.End)
	start := dateutil.TruncateToDay(newStart)
	return Range{Start: start, End: start.AddDate(0, 0, span)}
}

// ResizeStart moves the start edge. A start past the end clamps to the end,
// collapsing the range to a single day instead of inverting it.
func ResizeStart(r Range, newStart time.Time) Range {
	r = NewRange(r.Start, r.End)
	start := dateutil.TruncateToDay(newStart)
	if start.After(r.End) {
		start = r.End
	}
	return Range{Start: start, End: r.End}
}

// ResizeEnd moves the end edge. An end before the start clamps to the start.
func ResizeEnd(r Range, newEnd time.Time) Range {
	r = NewRange(r.Start, r.End)
	end := dateutil.TruncateToDay(newEnd)
	if end.Before(r.Start) {
		end = r.Start
	}
	return Range{Start: r.Start, End: end}
}

// Resize dispatches to ResizeStart or ResizeEnd.
func Resize(r Range, edge Edge, date time.Time) Range {
	if edge == EdgeEnd {
		return ResizeEnd(r, date)
	}
	return ResizeStart(r, date)
}
