package ui

import (
	"os"

	"github.com/fatih/color"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/javiermolinar/dulcinea/internal/task"
)

// Color definitions for consistent styling across the UI.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Today marker
	colorToday = color.New(color.FgYellow, color.Bold)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// categoryColor returns the category's own color as a terminal color.
func categoryColor(c task.Category) *color.Color {
	hex, err := colorful.Hex(c.Info().Color)
	if err != nil {
		return color.New(color.Reset)
	}
	r, g, b := hex.RGB255()
	return color.RGB(int(r), int(g), int(b))
}

// formatCategory renders the category name in its color.
func formatCategory(c task.Category) string {
	return categoryColor(c).Sprint(c.Info().Name)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

func formatToday(s string) string {
	return colorToday.Sprint(s)
}
