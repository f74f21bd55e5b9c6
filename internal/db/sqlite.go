// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/task"
)

// SQLite implements task.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Open creates the parent directory of path if needed and opens the
// database there.
func Open(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return New(path)
}

const selectColumns = `SELECT id, title, category, start_date, end_date, created_at FROM tasks`

// CreateTask adds a new task to the repository.
// A task with a zero ID gets one assigned; a non-zero ID is kept so tasks
// created in memory first keep their identity once stored.
func (s *SQLite) CreateTask(ctx context.Context, t *task.Task) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	args := []any{
		strings.TrimSpace(t.Title),
		string(t.Category),
		t.Start.Format(dateutil.DateLayout),
		t.End.Format(dateutil.DateLayout),
		t.CreatedAt.Format(time.RFC3339),
	}
	query := `INSERT INTO tasks (title, category, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?)`
	if t.ID != 0 {
		query = `INSERT INTO tasks (id, title, category, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?, ?)`
		args = append([]any{t.ID}, args...)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("getting last insert id: %w", err)
	}
	t.ID = id

	return nil
}

// GetTask retrieves a task by ID.
func (s *SQLite) GetTask(ctx context.Context, id int64) (*task.Task, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, task.ErrTaskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

// UpdateTaskRange replaces a task's dates.
func (s *SQLite) UpdateTaskRange(ctx context.Context, id int64, r task.Range) error {
	r = task.NewRange(r.Start, r.End)

	query := `UPDATE tasks SET start_date = ?, end_date = ? WHERE id = ?`
	result, err := s.db.ExecContext(ctx, query,
		r.Start.Format(dateutil.DateLayout),
		r.End.Format(dateutil.DateLayout),
		id,
	)
	if err != nil {
		return fmt.Errorf("updating task range: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %d: %w", id, task.ErrTaskNotFound)
	}
	return nil
}

// UpdateTaskTitle renames a task.
func (s *SQLite) UpdateTaskTitle(ctx context.Context, id int64, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return task.ErrEmptyTitle
	}

	result, err := s.db.ExecContext(ctx, `UPDATE tasks SET title = ? WHERE id = ?`, title, id)
	if err != nil {
		return fmt.Errorf("updating task title: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %d: %w", id, task.ErrTaskNotFound)
	}
	return nil
}

// DeleteTask removes a task.
func (s *SQLite) DeleteTask(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("task %d: %w", id, task.ErrTaskNotFound)
	}
	return nil
}

// ListTasks returns every stored task ordered by ID.
func (s *SQLite) ListTasks(ctx context.Context) ([]*task.Task, error) {
	return s.queryTasks(ctx, selectColumns+` ORDER BY id`)
}

// ListTasksByDateRange returns all tasks whose range intersects [start, end].
func (s *SQLite) ListTasksByDateRange(ctx context.Context, start, end time.Time) ([]*task.Task, error) {
	window := task.NewRange(start, end)
	query := selectColumns + `
		WHERE start_date <= ? AND end_date >= ?
		ORDER BY start_date, id
	`
	return s.queryTasks(ctx, query,
		window.End.Format(dateutil.DateLayout),
		window.Start.Format(dateutil.DateLayout),
	)
}

// CreateTasks adds multiple tasks in a single transaction.
func (s *SQLite) CreateTasks(ctx context.Context, tasks []*task.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("task %q: %w", t.Title, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO tasks (title, category, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	now := time.Now()
	for _, t := range tasks {
		if t.CreatedAt.IsZero() {
			t.CreatedAt = now
		}
		result, err := stmt.ExecContext(ctx,
			strings.TrimSpace(t.Title),
			string(t.Category),
			t.Start.Format(dateutil.DateLayout),
			t.End.Format(dateutil.DateLayout),
			t.CreatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting task: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("getting last insert id: %w", err)
		}
		t.ID = id
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) queryTasks(ctx context.Context, query string, args ...any) ([]*task.Task, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var tasks []*task.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}

	return tasks, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*task.Task, error) {
	var (
		t         task.Task
		category  string
		startDate string
		endDate   string
		createdAt sql.NullString
	)

	if err := row.Scan(&t.ID, &t.Title, &category, &startDate, &endDate, &createdAt); err != nil {
		return nil, err
	}
	t.Category = task.Category(category)

	var err error
	t.Start, err = parseDate(startDate)
	if err != nil {
		return nil, fmt.Errorf("parsing start date: %w", err)
	}
	t.End, err = parseDate(endDate)
	if err != nil {
		return nil, fmt.Errorf("parsing end date: %w", err)
	}
	if createdAt.Valid {
		t.CreatedAt, err = parseTimestamp(createdAt.String)
		if err != nil {
			return nil, fmt.Errorf("parsing created at: %w", err)
		}
	}

	return &t, nil
}

// parseDate parses a date string in the formats SQLite might return.
// Date-only values are parsed as dateutil days (midnight UTC).
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateutil.DateLayout, s, time.UTC); err == nil {
		return t, nil
	}

	// DATE columns can come back as "2006-01-02T00:00:00Z"; keep the date.
	if len(s) > 10 && s[10] == 'T' {
		if t, err := time.ParseInLocation(dateutil.DateLayout, s[:10], time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}

func parseTimestamp(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05Z",
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp format: %s", s)
}
