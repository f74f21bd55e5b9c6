// Package task defines the core domain types for dulcinea.
package task

import (
	"errors"
	"strings"
	"time"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
)

// Validation errors.
var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidCategory = errors.New("category must be one of work, personal, family, health, other")
	ErrInvalidRange    = errors.New("start date must be on or before end date")
)

// Domain errors.
var (
	ErrTaskNotFound = errors.New("task not found")
)

// Task is a titled, categorized span of whole days.
type Task struct {
	ID        int64
	Title     string
	Start     time.Time // midnight of the first day
	End       time.Time // midnight of the last day, inclusive
	Category  Category
	CreatedAt time.Time
}

// New creates a new Task with validation.
// The title is trimmed and must not be empty, the category must be known,
// and the range is normalized so that Start <= End.
func New(title string, category Category, r Range) (*Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}
	r = NewRange(r.Start, r.End)

	return &Task{
		Title:     title,
		Start:     r.Start,
		End:       r.End,
		Category:  category,
		CreatedAt: time.Now(),
	}, nil
}

// Range returns the task's date range.
func (t *Task) Range() Range {
	return NewRange(t.Start, t.End)
}

// SetRange replaces the task's dates. The range is normalized first so the
// Start <= End invariant can never be broken through this method.
func (t *Task) SetRange(r Range) {
	r = NewRange(r.Start, r.End)
	t.Start = r.Start
	t.End = r.End
}

// Days returns the inclusive number of days the task spans.
func (t *Task) Days() int {
	return t.Range().Days()
}

// Color returns the display color derived from the task's category.
func (t *Task) Color() string {
	return t.Category.Info().Color
}

// OccursOn reports whether the task covers the given date.
func (t *Task) OccursOn(date time.Time) bool {
	return t.Range().Contains(date)
}

// Validate checks the invariants of a task loaded from outside the engine.
func (t *Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if !t.Category.Valid() {
		return ErrInvalidCategory
	}
	if dateutil.TruncateToDay(t.End).Before(dateutil.TruncateToDay(t.Start)) {
		return ErrInvalidRange
	}
	return nil
}

// Clone returns a copy of the task.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
