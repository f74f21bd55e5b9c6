package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterModel contains content and styles for rendering the footer.
type FooterModel struct {
	Width       int
	StatusText  string
	HelpText    string
	PromptText  string // rendered search input
	ShowPrompt  bool
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	PromptStyle lipgloss.Style
}

// FooterHeight is the number of lines RenderFooter produces.
const FooterHeight = 2

// RenderFooter renders the status (or search prompt) line above the help line.
func RenderFooter(model FooterModel) string {
	top := footerLine(model.Width, model.StatusStyle, model.StatusText)
	if model.ShowPrompt {
		top = footerLine(model.Width, model.PromptStyle, model.PromptText)
	}
	return top + "\n" + footerLine(model.Width, model.HelpStyle, model.HelpText)
}

func footerLine(width int, style lipgloss.Style, content string) string {
	frameW, _ := style.GetFrameSize()
	contentWidth := width - frameW
	if contentWidth < 0 {
		contentWidth = 0
	}
	style = style.Width(contentWidth)
	if contentWidth > 0 {
		content = ansi.Truncate(content, contentWidth, "")
	}
	return style.Render(content)
}
