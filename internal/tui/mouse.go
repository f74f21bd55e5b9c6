package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/dulcinea/internal/gesture"
	"github.com/javiermolinar/dulcinea/internal/tui/commands"
)

// handleMouseMsg turns terminal mouse events into pointer events for the board.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeModal {
		return m, nil
	}

	ev := gesture.PointerEvent{
		X:      float64(msg.X),
		Y:      float64(msg.Y),
		Button: pointerButton(msg.Button),
	}

	var out gesture.Outcome
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if !m.board.Active() {
				m.board.PrevMonth()
			}
			return m, nil
		case tea.MouseButtonWheelDown:
			if !m.board.Active() {
				m.board.NextMonth()
			}
			return m, nil
		}
		ev.Target = m.hitTest(msg.X, msg.Y)
		out = m.board.PointerDown(ev)
	case tea.MouseActionMotion:
		out = m.board.PointerMove(ev)
	case tea.MouseActionRelease:
		out = m.board.PointerUp(ev)
	default:
		return m, nil
	}

	LogPointer(msg, ev)
	if out.Changed() {
		LogGesture(out)
	}

	cmd := m.applyOutcome(out)
	return m, tea.Batch(m.capture.flush(), cmd)
}

// applyOutcome reacts to what a pointer event or cancel did.
func (m *Model) applyOutcome(out gesture.Outcome) tea.Cmd {
	switch out.Type {
	case gesture.OutcomeStarted:
		if out.TaskID != 0 {
			m.focusID = out.TaskID
			m.dragStart = out.Range
		}

	case gesture.OutcomeTaskCommitted:
		if out.Range.Equal(m.dragStart) {
			return nil
		}
		return commands.SaveRange(m.repo, out.TaskID, out.Range)

	case gesture.OutcomeSelectionCommitted:
		m.openTaskForm()

	case gesture.OutcomeDiscarded:
		if m.focusID == out.TaskID {
			m.focusID = 0
		}
		return m.setStatus(fmt.Sprintf("Task %d no longer exists", out.TaskID), statusDuration)
	}
	return nil
}

func pointerButton(b tea.MouseButton) gesture.Button {
	switch b {
	case tea.MouseButtonLeft:
		return gesture.ButtonPrimary
	case tea.MouseButtonMiddle:
		return gesture.ButtonMiddle
	case tea.MouseButtonRight:
		return gesture.ButtonSecondary
	default:
		return gesture.ButtonNone
	}
}
