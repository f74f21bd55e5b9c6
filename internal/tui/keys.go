package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dulcinea/internal/filter"
	"github.com/javiermolinar/dulcinea/internal/gesture"
	"github.com/javiermolinar/dulcinea/internal/task"
	"github.com/javiermolinar/dulcinea/internal/tui/commands"
	"github.com/javiermolinar/dulcinea/internal/tui/input"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys while the board has focus.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit

	case "esc":
		if m.board.Active() {
			cmd := m.settle(m.board.Cancel())
			return m, tea.Batch(cmd, m.setStatus("Cancelled", statusDuration))
		}
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.applyFilter()
		}
		return m, nil

	// Navigation
	case "n", "l", "right":
		return m, m.settle(m.board.NextMonth())
	case "p", "h", "left":
		return m, m.settle(m.board.PrevMonth())
	case "t":
		return m, m.settle(m.board.Today())

	case "/":
		m.setMode(ModeSearch, "search")
		return m, m.search.Focus()

	// Filters
	case "1", "2", "3", "4", "5":
		cats := task.Categories()
		idx := int(key[0] - '1')
		if idx >= len(cats) {
			return m, nil
		}
		c := cats[idx]
		state := "hidden"
		if m.categories.Toggle(c) {
			state = "shown"
		}
		m.applyFilter()
		return m, m.setStatus(fmt.Sprintf("%s %s", c.Info().Name, state), statusDuration)
	case "0":
		m.categories = filter.AllCategories()
		m.applyFilter()
		return m, m.setStatus("All categories shown", statusDuration)
	case "w":
		m.withinWeeks = nextWithinWeeks(m.withinWeeks)
		m.applyFilter()
		if m.withinWeeks == 0 {
			return m, m.setStatus("Time filter off", statusDuration)
		}
		return m, m.setStatus(fmt.Sprintf("Tasks starting within %d weeks", m.withinWeeks), statusDuration)

	case "d":
		return m.confirmDelete()
	case "y":
		return m, commands.CopyText(m.clipboard, m.board.Agenda(), "agenda")
	}
	return m, nil
}

// handleSearchKeys edits the search prompt. The filter follows every
// keystroke.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.search.SetValue("")
		m.search.Blur()
		m.applyFilter()
		m.setMode(ModeNormal, "search cleared")
		return m, nil

	case "enter":
		m.search.Blur()
		m.setMode(ModeNormal, "search kept")
		return m, nil

	case "tab":
		if completed, ok := input.CompleteCategory(m.search.Value()); ok {
			m.search.SetValue(completed)
			m.search.CursorEnd()
			m.applyFilter()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.applyFilter()
	return m, cmd
}

// handleModalKeys handles keys in modal mode.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalTaskForm:
		return m.handleTaskFormKeys(msg)
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ModalInit:
		return m.handleInitKeys(msg)
	default:
		if msg.String() == "esc" {
			m.closeModal("esc")
		}
	}
	return m, nil
}

// handleTaskFormKeys handles the new task form shown after a selection.
func (m Model) handleTaskFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.board.DiscardSelection()
		m.closeModal("form discarded")
		return m, nil

	case "tab":
		m.formCategory = shiftCategory(m.formCategory, 1)
		return m, nil
	case "shift+tab":
		m.formCategory = shiftCategory(m.formCategory, -1)
		return m, nil

	case "enter":
		return m.createTaskFromForm()
	}

	var cmd tea.Cmd
	m.formTitle, cmd = m.formTitle.Update(msg)
	return m, cmd
}

func (m Model) createTaskFromForm() (tea.Model, tea.Cmd) {
	// The board drops the pending selection whether or not the task is made.
	t, err := m.board.RequestCreateTask(m.formTitle.Value(), m.formCategory)
	if errors.Is(err, task.ErrEmptyTitle) {
		m.closeModal("empty title")
		return m, m.setStatus("Title is required, selection discarded", errorDuration)
	}
	m.closeModal("task created")
	if err != nil {
		LogError("create task", err)
		return m, m.setStatus(fmt.Sprintf("Error: %v", err), errorDuration)
	}
	m.focusID = t.ID
	return m, commands.SaveTask(m.repo, t)
}

// confirmDelete opens the delete confirmation for the focused task.
func (m Model) confirmDelete() (tea.Model, tea.Cmd) {
	if m.board.Active() {
		return m, nil
	}
	if _, ok := m.board.Tasks().Task(m.focusID); !ok {
		m.focusID = 0
		return m, m.setStatus("Click a task to select it first", statusDuration)
	}
	m.deleteID = m.focusID
	m.modalType = ModalConfirmDelete
	m.setMode(ModeModal, "confirm delete")
	return m, nil
}

// handleConfirmDeleteKeys handles keys in the delete confirmation modal.
func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "n":
		m.deleteID = 0
		m.closeModal("delete kept")
		return m, nil

	case "enter", "y":
		id := m.deleteID
		t, ok := m.board.Tasks().Task(id)
		m.deleteID = 0
		m.closeModal("delete confirmed")
		if !ok {
			return m, nil
		}
		title := t.Title
		if err := m.board.RequestDeleteTask(id); err != nil {
			LogError("delete task", err)
			return m, m.setStatus(fmt.Sprintf("Error: %v", err), errorDuration)
		}
		if m.focusID == id {
			m.focusID = 0
		}
		return m, tea.Batch(
			commands.DeleteTask(m.repo, id),
			m.setStatus("Deleted: "+title, statusDuration),
		)
	}
	return m, nil
}

// handleInitKeys handles the first-run modal.
func (m Model) handleInitKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m, tea.Quit

	case "enter":
		updated, err := m.initializeStorage()
		if err != nil {
			LogError("initialize storage", err)
			m.initError = err.Error()
			return m, nil
		}
		updated.initError = ""
		updated.initState.NeedsInit = false
		updated.closeModal("initialized")
		return updated, commands.LoadTasks(updated.repo)
	}
	return m, nil
}

// settle flushes terminal mode changes and reacts to the outcome of a
// board call that may have cancelled a gesture.
func (m *Model) settle(out gesture.Outcome) tea.Cmd {
	if out.Changed() {
		LogGesture(out)
	}
	cmd := m.applyOutcome(out)
	return tea.Batch(m.capture.flush(), cmd)
}

// applyFilter rebuilds the board filter from the key toggles and the search
// query. Categories or a window named in the query win over the toggles.
func (m *Model) applyFilter() {
	q := input.ParseQuery(m.search.Value())

	f := filter.New()
	f.Text = q.Text
	f.Categories = m.categories.Clone()
	if len(q.Categories) > 0 {
		f.Categories = filter.NewCategorySet(q.Categories...)
	}
	f.WithinWeeks = m.withinWeeks
	if q.HasWithin {
		f.WithinWeeks = q.WithinWeeks
	}
	f.Now = m.clock
	m.board.SetFilter(f)
}

func (m *Model) openTaskForm() {
	m.search.Blur()
	m.formTitle.SetValue("")
	m.formTitle.Focus()
	m.formCategory = m.config.Category()
	m.modalType = ModalTaskForm
	m.setMode(ModeModal, "selection committed")
}

func (m *Model) closeModal(reason string) {
	m.formTitle.Blur()
	m.modalType = ModalNone
	m.setMode(ModeNormal, reason)
}

func (m *Model) setMode(mode Mode, reason string) {
	if m.mode != mode {
		LogModeChange(m.mode, mode, reason)
	}
	m.mode = mode
}

func shiftCategory(c task.Category, delta int) task.Category {
	cats := task.Categories()
	idx := c.Index()
	if idx < 0 {
		idx = 0
	}
	n := len(cats)
	return cats[((idx+delta)%n+n)%n]
}

func nextWithinWeeks(current int) int {
	for i, w := range withinWeeksSteps {
		if w == current {
			return withinWeeksSteps[(i+1)%len(withinWeeksSteps)]
		}
	}
	return withinWeeksSteps[0]
}
