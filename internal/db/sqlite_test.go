package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/dulcinea/internal/task"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTask(title string, cat task.Category, start, end time.Time) *task.Task {
	return &task.Task{
		Title:     title,
		Category:  cat,
		Start:     start,
		End:       end,
		CreatedAt: time.Now(),
	}
}

func TestCreateTask(t *testing.T) {
	repo := newTestRepo(t)

	tsk := newTask("Write unit tests", task.CategoryWork, day(2025, 8, 12), day(2025, 8, 14))
	if err := repo.CreateTask(context.Background(), tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if tsk.ID == 0 {
		t.Error("expected ID to be set after insert")
	}
}

func TestCreateTask_KeepsExplicitID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := newTask("Created in memory", task.CategoryPersonal, day(2025, 8, 1), day(2025, 8, 1))
	tsk.ID = 42
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if tsk.ID != 42 {
		t.Errorf("ID = %d, want 42", tsk.ID)
	}

	next := newTask("Next", task.CategoryPersonal, day(2025, 8, 2), day(2025, 8, 2))
	if err := repo.CreateTask(ctx, next); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	if next.ID <= 42 {
		t.Errorf("auto ID = %d, want > 42", next.ID)
	}

	dup := newTask("Duplicate", task.CategoryPersonal, day(2025, 8, 2), day(2025, 8, 2))
	dup.ID = 42
	if err := repo.CreateTask(ctx, dup); err == nil {
		t.Error("expected an error inserting a duplicate ID")
	}
}

func TestCreateTask_Validation(t *testing.T) {
	repo := newTestRepo(t)

	tests := []struct {
		name    string
		task    *task.Task
		wantErr error
	}{
		{"empty title", newTask("  ", task.CategoryWork, day(2025, 8, 1), day(2025, 8, 1)), task.ErrEmptyTitle},
		{"unknown category", newTask("x", task.Category("chores"), day(2025, 8, 1), day(2025, 8, 1)), task.ErrInvalidCategory},
		{"inverted range", newTask("x", task.CategoryWork, day(2025, 8, 3), day(2025, 8, 1)), task.ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.CreateTask(context.Background(), tt.task)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestGetTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	orig := newTask("Dentist", task.CategoryHealth, day(2025, 8, 7), day(2025, 8, 7))
	if err := repo.CreateTask(ctx, orig); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	got, err := repo.GetTask(ctx, orig.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Title != "Dentist" || got.Category != task.CategoryHealth {
		t.Errorf("got %q/%s", got.Title, got.Category)
	}
	if !got.Start.Equal(day(2025, 8, 7)) || !got.End.Equal(day(2025, 8, 7)) {
		t.Errorf("range = %v..%v, want local midnight 2025-08-07", got.Start, got.End)
	}
	if got.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	if _, err := repo.GetTask(ctx, 9999); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdateTaskRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := newTask("Trip", task.CategoryFamily, day(2025, 8, 12), day(2025, 8, 14))
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	// Reversed endpoints are normalized rather than rejected.
	if err := repo.UpdateTaskRange(ctx, tsk.ID, task.Range{Start: day(2025, 8, 22), End: day(2025, 8, 20)}); err != nil {
		t.Fatalf("UpdateTaskRange failed: %v", err)
	}

	got, err := repo.GetTask(ctx, tsk.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if !got.Range().Equal(task.NewRange(day(2025, 8, 20), day(2025, 8, 22))) {
		t.Errorf("range = %v", got.Range())
	}

	err = repo.UpdateTaskRange(ctx, 9999, task.SingleDay(day(2025, 8, 1)))
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("err = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdateTaskTitle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := newTask("Old", task.CategoryOther, day(2025, 8, 1), day(2025, 8, 1))
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if err := repo.UpdateTaskTitle(ctx, tsk.ID, "  New  "); err != nil {
		t.Fatalf("UpdateTaskTitle failed: %v", err)
	}
	got, _ := repo.GetTask(ctx, tsk.ID)
	if got.Title != "New" {
		t.Errorf("title = %q, want New", got.Title)
	}

	if err := repo.UpdateTaskTitle(ctx, tsk.ID, " "); !errors.Is(err, task.ErrEmptyTitle) {
		t.Errorf("err = %v, want ErrEmptyTitle", err)
	}
}

func TestDeleteTask(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tsk := newTask("Gone soon", task.CategoryWork, day(2025, 8, 1), day(2025, 8, 1))
	if err := repo.CreateTask(ctx, tsk); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if err := repo.DeleteTask(ctx, tsk.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if _, err := repo.GetTask(ctx, tsk.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("task still present: %v", err)
	}
	if err := repo.DeleteTask(ctx, tsk.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("second delete err = %v, want ErrTaskNotFound", err)
	}
}

func TestListTasksByDateRange(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tasks := []*task.Task{
		newTask("Before", task.CategoryWork, day(2025, 7, 1), day(2025, 7, 5)),
		newTask("Crosses start", task.CategoryWork, day(2025, 7, 30), day(2025, 8, 2)),
		newTask("Inside", task.CategoryWork, day(2025, 8, 10), day(2025, 8, 10)),
		newTask("Crosses end", task.CategoryWork, day(2025, 8, 30), day(2025, 9, 3)),
		newTask("Covers all", task.CategoryWork, day(2025, 7, 20), day(2025, 9, 20)),
		newTask("After", task.CategoryWork, day(2025, 9, 10), day(2025, 9, 12)),
	}
	if err := repo.CreateTasks(ctx, tasks); err != nil {
		t.Fatalf("CreateTasks failed: %v", err)
	}

	got, err := repo.ListTasksByDateRange(ctx, day(2025, 8, 1), day(2025, 8, 31))
	if err != nil {
		t.Fatalf("ListTasksByDateRange failed: %v", err)
	}

	want := map[string]bool{"Crosses start": true, "Inside": true, "Crosses end": true, "Covers all": true}
	if len(got) != len(want) {
		t.Fatalf("got %d tasks, want %d", len(got), len(want))
	}
	for _, tsk := range got {
		if !want[tsk.Title] {
			t.Errorf("unexpected task %q", tsk.Title)
		}
	}
	// Ordered by start date.
	if got[0].Title != "Covers all" {
		t.Errorf("first = %q, want Covers all", got[0].Title)
	}
}

func TestListTasks(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	empty, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("got %d tasks from empty db", len(empty))
	}

	for _, title := range []string{"a", "b", "c"} {
		if err := repo.CreateTask(ctx, newTask(title, task.CategoryWork, day(2025, 8, 1), day(2025, 8, 1))); err != nil {
			t.Fatalf("CreateTask failed: %v", err)
		}
	}

	all, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(all) != 3 || all[0].Title != "a" || all[2].Title != "c" {
		t.Errorf("unexpected list: %d tasks", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].ID <= all[i-1].ID {
			t.Error("tasks not ordered by ID")
		}
	}
}

func TestCreateTasks_RollsBackOnValidationError(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tasks := []*task.Task{
		newTask("fine", task.CategoryWork, day(2025, 8, 1), day(2025, 8, 1)),
		newTask("", task.CategoryWork, day(2025, 8, 1), day(2025, 8, 1)),
	}
	if err := repo.CreateTasks(ctx, tasks); !errors.Is(err, task.ErrEmptyTitle) {
		t.Fatalf("err = %v, want ErrEmptyTitle", err)
	}

	all, err := repo.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("got %d tasks, want none", len(all))
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Time
		wantErr bool
	}{
		{"2025-08-07", day(2025, 8, 7), false},
		{"2025-08-07T00:00:00Z", day(2025, 8, 7), false},
		{"07/08/2025", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseDate(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRepositoryInterface(t *testing.T) {
	var _ task.Repository = (*SQLite)(nil)
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}

func TestOpen_CreatesDataDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data", "dulcinea.db")
	repo, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = repo.Close() }()

	if err := repo.CreateTask(context.Background(), newTask("Stored", task.CategoryOther, day(2025, 8, 1), day(2025, 8, 1))); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}

	if _, err := Open(""); err == nil {
		t.Error("Open with an empty path should fail")
	}
}
