package tui

import (
	"github.com/javiermolinar/dulcinea/internal/tui/view"
)

const (
	helpNormal  = "drag days: new task • drag bar: move • drag ends: resize • n/p: month • t: today • /: search • 1-5,0: categories • w: window • d: delete • y: copy • q: quit"
	helpGesture = "release: commit • esc: cancel"
	helpSearch  = "enter: keep • esc: clear • tab: complete #category • +Nw: window"
)

// View renders the TUI.
func (m Model) View() string {
	return view.Render(m.viewState())
}

func (m Model) viewState() view.ViewState {
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
	}

	state := view.ViewState{
		Width:        m.width,
		Height:       m.height,
		Bg:           m.styles.Palette().Bg,
		ModalContent: modal,
		ShowModal:    showModal,
		Overlay:      m.overlay,
	}
	if m.width == 0 || m.height == 0 {
		return state
	}

	state.Title = m.renderTitle()
	state.Header = m.renderHeader()
	state.Grid = m.renderGrid()
	state.Footer = view.RenderFooter(m.footerModel())
	return state
}

func (m Model) footerModel() view.FooterModel {
	return view.FooterModel{
		Width:       m.width,
		StatusText:  m.statusMsgOrDefault(),
		HelpText:    m.helpText(),
		PromptText:  m.search.View(),
		ShowPrompt:  m.mode == ModeSearch,
		StatusStyle: m.styles.StatusStyle,
		HelpStyle:   m.styles.HelpStyle,
		PromptStyle: m.styles.PromptStyle,
	}
}

// statusMsgOrDefault returns the status message or a space to preserve layout.
func (m Model) statusMsgOrDefault() string {
	if m.statusMsg == "" {
		return " "
	}
	return m.statusMsg
}

func (m Model) helpText() string {
	switch {
	case m.mode == ModeSearch:
		return helpSearch
	case m.mode == ModeModal:
		return " "
	case m.board.Active():
		return helpGesture
	default:
		return helpNormal
	}
}
