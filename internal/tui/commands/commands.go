// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dulcinea/internal/task"
)

// TasksLoadedMsg is sent when the stored tasks are loaded.
type TasksLoadedMsg struct {
	Tasks []*task.Task
}

// TaskSavedMsg is sent when a new task has been stored.
type TaskSavedMsg struct {
	Task *task.Task
}

// RangeSavedMsg is sent when a moved or resized task has been stored.
type RangeSavedMsg struct {
	ID    int64
	Range task.Range
}

// TaskDeletedMsg is sent when a task has been removed from storage.
type TaskDeletedMsg struct {
	ID int64
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// Clipboard writes text to the system clipboard.
type Clipboard func(text string) error

// SystemClipboard is the clipboard used outside tests.
var SystemClipboard Clipboard = clipboard.WriteAll

// LoadTasks loads every stored task. The board keeps all of them resident.
// A nil repository loads nothing.
func LoadTasks(repo task.Repository) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return TasksLoadedMsg{}
		}

		tasks, err := repo.ListTasks(context.Background())
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading tasks: %w", err)}
		}
		return TasksLoadedMsg{Tasks: tasks}
	}
}

// SaveTask stores a task created on the board. The task already carries the
// board's ID so storage keeps it.
func SaveTask(repo task.Repository, t *task.Task) tea.Cmd {
	saved := t.Clone()
	return func() tea.Msg {
		if repo == nil {
			return TaskSavedMsg{Task: saved}
		}

		if err := repo.CreateTask(context.Background(), saved); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving task: %w", err)}
		}
		return TaskSavedMsg{Task: saved}
	}
}

// SaveRange stores the committed range of a moved or resized task.
func SaveRange(repo task.Repository, id int64, r task.Range) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return RangeSavedMsg{ID: id, Range: r}
		}

		if err := repo.UpdateTaskRange(context.Background(), id, r); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving task %d: %w", id, err)}
		}
		return RangeSavedMsg{ID: id, Range: r}
	}
}

// DeleteTask removes a task from storage.
func DeleteTask(repo task.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		if repo == nil {
			return TaskDeletedMsg{ID: id}
		}

		if err := repo.DeleteTask(context.Background(), id); err != nil {
			return ErrMsg{Err: fmt.Errorf("deleting task %d: %w", id, err)}
		}
		return TaskDeletedMsg{ID: id}
	}
}

// CopyText writes text to the clipboard and reports the result as a status.
func CopyText(write Clipboard, text, what string) tea.Cmd {
	return func() tea.Msg {
		if write == nil {
			write = SystemClipboard
		}
		if err := write(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copy failed: %w", err)}
		}
		return StatusMsgCmd{Msg: "Copied " + what}
	}
}
