package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// PadLinesWithBackground pads content to width/height with a background color.
func PadLinesWithBackground(content string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return content
	}
	lines := strings.Split(content, "\n")
	paddingStyle := lipgloss.NewStyle().Background(bg)
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		switch {
		case lineWidth > width:
			lines[i] = ansi.Truncate(line, width, "")
		case lineWidth < width:
			lines[i] = line + paddingStyle.Render(strings.Repeat(" ", width-lineWidth))
		}
	}
	return strings.Join(lines, "\n")
}

// FitText cuts plain text to exactly width cells, padding with spaces.
// Text that does not fit ends with tail.
func FitText(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, tail)
	}
	return runewidth.FillRight(s, width)
}
