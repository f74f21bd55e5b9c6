package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dulcinea/internal/tui/commands"
)

const (
	statusDuration = 3 * time.Second
	errorDuration  = 5 * time.Second
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		// Cell geometry changes under the pointer, so a gesture in flight
		// cannot be continued.
		cmd := m.settle(m.board.Cancel())
		m.width = msg.Width
		m.height = msg.Height
		m.geom = computeGeometry(m.width, m.height)
		m.board.SetBounds(m.geom.rect())
		m.board.SetMaxSlots(m.geom.slotCap(m.maxSlots))
		return m, cmd

	case commands.TasksLoadedMsg:
		m.board.Tasks().Merge(msg.Tasks)
		m.loading = false
		return m, nil

	case commands.TaskSavedMsg:
		return m, m.setStatus("Created: "+msg.Task.Title, statusDuration)

	case commands.RangeSavedMsg:
		return m, m.setStatus(fmt.Sprintf("Saved %s", msg.Range), statusDuration)

	case commands.TaskDeletedMsg:
		return m, nil

	case commands.ErrMsg:
		m.err = msg.Err
		m.loading = false
		LogError("command", msg.Err)
		return m, m.setStatus(fmt.Sprintf("Error: %v", msg.Err), errorDuration)

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg, statusDuration)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Cursor blink and other textinput messages
	var cmd tea.Cmd
	switch {
	case m.mode == ModeSearch:
		m.search, cmd = m.search.Update(msg)
	case m.mode == ModeModal && m.modalType == ModalTaskForm:
		m.formTitle, cmd = m.formTitle.Update(msg)
	}
	return m, cmd
}
