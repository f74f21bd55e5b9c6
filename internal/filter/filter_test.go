package filter

import (
	"testing"
	"time"

	"github.com/javiermolinar/dulcinea/internal/task"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mkTask(title string, cat task.Category, start time.Time) *task.Task {
	return &task.Task{ID: 1, Title: title, Category: cat, Start: start, End: start}
}

func TestMatches_Composition(t *testing.T) {
	f := New()
	f.Categories = NewCategorySet(task.CategoryWork)
	f.Text = "task 2"

	tests := []struct {
		name string
		task *task.Task
		want bool
	}{
		{"title and category match", mkTask("TASK 2", task.CategoryWork, day(2025, 8, 1)), true},
		{"category not in set", mkTask("TASK 2", task.CategoryFamily, day(2025, 8, 1)), false},
		{"text does not match", mkTask("Task 3", task.CategoryWork, day(2025, 8, 1)), false},
		{"substring inside title", mkTask("finish my task 2 report", task.CategoryWork, day(2025, 8, 1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Matches(tt.task); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMatches_EmptyCategorySetMatchesNothing(t *testing.T) {
	f := New()
	f.Categories = NewCategorySet()

	for _, c := range task.Categories() {
		if f.Matches(mkTask("anything", c, day(2025, 8, 1))) {
			t.Errorf("category %s matched an empty set", c)
		}
	}
}

func TestMatches_TimeWindow(t *testing.T) {
	now := time.Date(2025, 8, 7, 15, 30, 0, 0, time.UTC)
	f := New()
	f.Now = func() time.Time { return now }
	f.WithinWeeks = 2

	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"past task", day(2025, 7, 1), true},
		{"today", day(2025, 8, 7), true},
		{"exactly two weeks out", day(2025, 8, 21), true},
		{"one day past the window", day(2025, 8, 22), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Matches(mkTask("x", task.CategoryWork, tt.start)); got != tt.want {
				t.Errorf("Matches() = %v, want %v", got, tt.want)
			}
		})
	}

	f.WithinWeeks = 0
	if !f.Matches(mkTask("x", task.CategoryWork, day(2030, 1, 1))) {
		t.Error("disabled window should match any date")
	}
}

func TestApply(t *testing.T) {
	f := New()
	f.Text = "gym"

	tasks := []*task.Task{
		mkTask("Gym", task.CategoryHealth, day(2025, 8, 1)),
		mkTask("Standup", task.CategoryWork, day(2025, 8, 1)),
		nil,
		mkTask("gym again", task.CategoryHealth, day(2025, 8, 2)),
	}

	got := f.Apply(tasks)
	if len(got) != 2 {
		t.Fatalf("got %d tasks, want 2", len(got))
	}
	if got[0].Title != "Gym" || got[1].Title != "gym again" {
		t.Errorf("order not preserved: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestCategorySet(t *testing.T) {
	s := AllCategories()
	if len(s.All()) != len(task.Categories()) {
		t.Fatalf("AllCategories has %d entries", len(s.All()))
	}

	if s.Toggle(task.CategoryFamily) {
		t.Error("toggling an active category should deactivate it")
	}
	if s.Has(task.CategoryFamily) {
		t.Error("family should be inactive")
	}
	if !s.Toggle(task.CategoryFamily) {
		t.Error("toggling again should reactivate it")
	}

	c := s.Clone()
	c.Toggle(task.CategoryWork)
	if !s.Has(task.CategoryWork) {
		t.Error("clone shares storage with original")
	}

	all := NewCategorySet(task.CategoryOther, task.CategoryWork).All()
	if len(all) != 2 || all[0] != task.CategoryWork || all[1] != task.CategoryOther {
		t.Errorf("All() = %v, want display order", all)
	}
}

func TestActive(t *testing.T) {
	f := New()
	if f.Active() {
		t.Error("default filter should not be active")
	}
	f.Categories.Toggle(task.CategoryWork)
	if !f.Active() {
		t.Error("filter with a hidden category should be active")
	}
}

func TestMatches_TextIsPlainSubstring(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		title string
		want  bool
	}{
		{"trailing space must match", "task ", "mytask", false},
		{"trailing space inside title", "task ", "my task list", true},
		{"spaces only", "  ", "Dentist", false},
		{"spaces only inside title", "  ", "Pack  bags", true},
		{"empty matches all", "", "Dentist", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			f.Text = tt.text
			if got := f.Matches(mkTask(tt.title, task.CategoryWork, day(2025, 8, 1))); got != tt.want {
				t.Errorf("Matches(%q) with text %q = %v, want %v", tt.title, tt.text, got, tt.want)
			}
		})
	}
}
