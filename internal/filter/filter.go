// Package filter decides which tasks are visible on the board.
package filter

import (
	"strings"
	"time"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/task"
)

// CategorySet is the set of active categories.
type CategorySet map[task.Category]bool

// NewCategorySet creates a set holding the given categories.
func NewCategorySet(cats ...task.Category) CategorySet {
	s := make(CategorySet, len(cats))
	for _, c := range cats {
		s[c] = true
	}
	return s
}

// AllCategories returns a set holding every known category.
func AllCategories() CategorySet {
	return NewCategorySet(task.Categories()...)
}

// Has reports whether c is active.
func (s CategorySet) Has(c task.Category) bool {
	return s[c]
}

// Toggle flips c and returns whether it is now active.
func (s CategorySet) Toggle(c task.Category) bool {
	if s[c] {
		delete(s, c)
		return false
	}
	s[c] = true
	return true
}

// All returns the active categories in display order.
func (s CategorySet) All() []task.Category {
	var out []task.Category
	for _, c := range task.Categories() {
		if s[c] {
			out = append(out, c)
		}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s CategorySet) Clone() CategorySet {
	c := make(CategorySet, len(s))
	for k, v := range s {
		if v {
			c[k] = true
		}
	}
	return c
}

// Filter composes text, category and time-window predicates.
//
// An empty category set matches nothing. WithinWeeks <= 0 disables the time
// window.
type Filter struct {
	Text        string
	Categories  CategorySet
	WithinWeeks int
	Now         func() time.Time
}

// New returns a filter that shows every task.
func New() Filter {
	return Filter{
		Categories: AllCategories(),
		Now:        time.Now,
	}
}

// Matches reports whether t passes all three predicates.
func (f Filter) Matches(t *task.Task) bool {
	if t == nil {
		return false
	}
	return f.matchText(t) && f.matchCategory(t) && f.matchTime(t)
}

func (f Filter) matchText(t *task.Task) bool {
	if f.Text == "" {
		return true
	}
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.Text))
}

func (f Filter) matchCategory(t *task.Task) bool {
	return f.Categories.Has(t.Category)
}

func (f Filter) matchTime(t *task.Task) bool {
	if f.WithinWeeks <= 0 {
		return true
	}
	now := time.Now
	if f.Now != nil {
		now = f.Now
	}
	limit := dateutil.TruncateToDay(now()).AddDate(0, 0, 7*f.WithinWeeks)
	return !dateutil.TruncateToDay(t.Start).After(limit)
}

// Apply returns the matching tasks, preserving order.
func (f Filter) Apply(tasks []*task.Task) []*task.Task {
	var out []*task.Task
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// Active reports whether the filter hides anything beyond the defaults.
func (f Filter) Active() bool {
	return f.Text != "" ||
		f.WithinWeeks > 0 ||
		len(f.Categories.All()) != len(task.Categories())
}
