package task

import (
	"context"
	"time"
)

// Repository defines the storage interface for tasks.
type Repository interface {
	// CreateTask adds a new task to the repository and sets its ID.
	CreateTask(ctx context.Context, task *Task) error

	// GetTask retrieves a task by ID. Returns ErrTaskNotFound if absent.
	GetTask(ctx context.Context, id int64) (*Task, error)

	// UpdateTaskRange replaces a task's start and end dates.
	UpdateTaskRange(ctx context.Context, id int64, r Range) error

	// UpdateTaskTitle renames a task.
	UpdateTaskTitle(ctx context.Context, id int64, title string) error

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, id int64) error

	// ListTasks returns every task ordered by ID.
	ListTasks(ctx context.Context) ([]*Task, error)

	// ListTasksByDateRange returns all tasks whose range intersects [start, end].
	ListTasksByDateRange(ctx context.Context, start, end time.Time) ([]*Task, error)

	// Close releases any resources held by the repository.
	Close() error
}
