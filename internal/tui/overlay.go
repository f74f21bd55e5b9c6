package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayModel draws modal content centered on top of the screen.
type OverlayModel struct {
	bgColor lipgloss.Color
}

// NewOverlayModel creates an overlay painting gaps with bg.
func NewOverlayModel(bg lipgloss.Color) OverlayModel {
	return OverlayModel{bgColor: bg}
}

// Render draws content over base. The box is sized to the content and
// clipped to the screen.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return base
	}
	contentLines := trimTrailingEmpty(strings.Split(content, "\n"))
	if len(contentLines) == 0 {
		return base
	}

	boxW := 0
	for _, line := range contentLines {
		if w := lipgloss.Width(line); w > boxW {
			boxW = w
		}
	}
	boxH := len(contentLines)
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxH = height
	}
	if boxW == 0 {
		return base
	}

	top := (height - boxH) / 2
	left := (width - boxW) / 2

	bgSeq := ""
	if o.bgColor != "" {
		bgSeq = ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
	}

	baseLines := normalizeLines(base, width, height)
	for i := 0; i < boxH; i++ {
		line := contentLines[i]
		if w := lipgloss.Width(line); w > boxW {
			line = ansi.Cut(line, 0, boxW)
		} else if w < boxW {
			line += strings.Repeat(" ", boxW-w)
		}
		line = keepBackground(line, bgSeq)

		row := top + i
		baseLine := baseLines[row]
		baseLines[row] = ansi.Cut(baseLine, 0, left) +
			bgSeq + line + ansi.ResetStyle +
			ansi.Cut(baseLine, left+boxW, width)
	}

	return strings.Join(baseLines, "\n")
}

// keepBackground re-applies the overlay background after every reset in
// line so padding inside the box does not show the terminal default.
func keepBackground(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}

func trimTrailingEmpty(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// normalizeLines returns exactly height lines of exactly width cells.
func normalizeLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
