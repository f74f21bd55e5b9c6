package task

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		category Category
		r        Range
		wantErr  error
	}{
		{
			name:     "valid task",
			title:    "Team Meeting",
			category: CategoryWork,
			r:        Range{Start: date(2025, 8, 15), End: date(2025, 8, 15)},
		},
		{
			name:     "empty title",
			title:    "",
			category: CategoryWork,
			r:        SingleDay(date(2025, 8, 15)),
			wantErr:  ErrEmptyTitle,
		},
		{
			name:     "whitespace title",
			title:    "   \t",
			category: CategoryPersonal,
			r:        SingleDay(date(2025, 8, 15)),
			wantErr:  ErrEmptyTitle,
		},
		{
			name:     "unknown category",
			title:    "Gym",
			category: Category("sport"),
			r:        SingleDay(date(2025, 8, 15)),
			wantErr:  ErrInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := New(tt.title, tt.category, tt.r)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("got error %v, want %v", err, tt.wantErr)
				}
				if got != nil {
					t.Error("expected nil task on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Title != tt.title {
				t.Errorf("title = %q, want %q", got.Title, tt.title)
			}
			if got.Category != tt.category {
				t.Errorf("category = %q, want %q", got.Category, tt.category)
			}
		})
	}
}

func TestNew_NormalizesRange(t *testing.T) {
	reversed := Range{
		Start: time.Date(2025, 8, 15, 17, 45, 0, 0, time.UTC),
		End:   time.Date(2025, 8, 12, 8, 0, 0, 0, time.UTC),
	}

	got, err := New("  Trip  ", CategoryFamily, reversed)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Trip" {
		t.Errorf("title should be trimmed, got %q", got.Title)
	}
	if !got.Start.Equal(date(2025, 8, 12)) || !got.End.Equal(date(2025, 8, 15)) {
		t.Errorf("range = %v..%v, want 2025-08-12..2025-08-15", got.Start, got.End)
	}
	if got.Days() != 4 {
		t.Errorf("Days() = %d, want 4", got.Days())
	}
}

func TestTask_Color(t *testing.T) {
	tsk := &Task{Category: CategoryHealth}
	if tsk.Color() != CategoryHealth.Info().Color {
		t.Errorf("color = %s, want %s", tsk.Color(), CategoryHealth.Info().Color)
	}

	tsk.Category = CategoryWork
	if tsk.Color() != CategoryWork.Info().Color {
		t.Error("color should follow the category")
	}
}

func TestTask_SetRangeKeepsOrder(t *testing.T) {
	tsk := &Task{Title: "x", Category: CategoryOther}
	tsk.SetRange(Range{Start: date(2025, 8, 20), End: date(2025, 8, 18)})

	if tsk.Start.After(tsk.End) {
		t.Fatalf("start %v after end %v", tsk.Start, tsk.End)
	}
}

func TestTask_Validate(t *testing.T) {
	valid := &Task{Title: "ok", Category: CategoryWork, Start: date(2025, 1, 1), End: date(2025, 1, 2)}
	if err := valid.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	inverted := valid.Clone()
	inverted.Start, inverted.End = inverted.End, inverted.Start
	if err := inverted.Validate(); !errors.Is(err, ErrInvalidRange) {
		t.Errorf("got %v, want ErrInvalidRange", err)
	}

	untitled := valid.Clone()
	untitled.Title = " "
	if err := untitled.Validate(); !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("got %v, want ErrEmptyTitle", err)
	}
}

func TestTask_OccursOn(t *testing.T) {
	tsk := &Task{Start: date(2025, 8, 12), End: date(2025, 8, 14)}

	if !tsk.OccursOn(time.Date(2025, 8, 14, 23, 0, 0, 0, time.UTC)) {
		t.Error("should occur on last day regardless of time of day")
	}
	if tsk.OccursOn(date(2025, 8, 15)) {
		t.Error("should not occur after end")
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Family ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != CategoryFamily {
		t.Errorf("got %q, want family", c)
	}

	if _, err := ParseCategory("review"); !errors.Is(err, ErrInvalidCategory) {
		t.Errorf("got %v, want ErrInvalidCategory", err)
	}
}

func TestCategories_Order(t *testing.T) {
	cats := Categories()
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(cats))
	}
	for i, c := range cats {
		if c.Index() != i {
			t.Errorf("%s index = %d, want %d", c, c.Index(), i)
		}
		if c.Info().Name == "" || c.Info().Color == "" {
			t.Errorf("%s is missing display info", c)
		}
	}
	if Category("nope").Info() != CategoryOther.Info() {
		t.Error("unknown category should fall back to Other")
	}
}
