package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OverlayRenderer renders modal overlays on top of base content.
type OverlayRenderer interface {
	Render(base string, width, height int, content string) string
}

// ViewState contains pre-rendered sections and overlay metadata.
type ViewState struct {
	Width  int
	Height int

	Title  string
	Header string
	Grid   string
	Footer string
	Bg     lipgloss.Color

	ModalContent string
	ShowModal    bool
	Overlay      OverlayRenderer
}

// Render stacks the sections, fills the screen and draws the modal on top.
func Render(state ViewState) string {
	if state.Width == 0 || state.Height == 0 {
		return "Loading..."
	}

	sections := make([]string, 0, 4)
	for _, s := range []string{state.Title, state.Header, state.Grid} {
		if s != "" {
			sections = append(sections, s)
		}
	}
	body := strings.Join(sections, "\n")

	footerLines := 0
	if state.Footer != "" {
		footerLines = lipgloss.Height(state.Footer)
	}
	bodyH := state.Height - footerLines
	if bodyH < 0 {
		bodyH = 0
	}
	base := PadLinesWithBackground(body, state.Width, bodyH, state.Bg)
	if state.Footer != "" {
		base += "\n" + state.Footer
	}

	if state.ShowModal && state.Overlay != nil {
		return state.Overlay.Render(base, state.Width, state.Height, state.ModalContent)
	}
	return base
}
