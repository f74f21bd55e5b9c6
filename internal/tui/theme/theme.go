// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when none or an unknown one is configured.
const DefaultName = "mocha"

// builtin lists the embedded themes in display order.
var builtin = []string{"mocha", "macchiato", "frappe", "latte", "light"}

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // grid background
	BgHighlight string `toml:"bg_highlight"` // title bar, weekday header
	BgSelection string `toml:"bg_selection"` // days under a drag selection
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // days outside the displayed month
	Accent      string `toml:"accent"`
	Today       string `toml:"today"`
	Warning     string `toml:"warning"` // errors, "+N more"

	// Modal colors; empty values are derived from the base colors.
	BaseBg      string `toml:"base_bg"`
	ModalBorder string `toml:"modal_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
	Highlight   string `toml:"highlight"`
}

// ModalPalette is the resolved set of modal colors.
type ModalPalette struct {
	BaseBg      string
	ModalBorder string
	TextPrimary string
	TextMuted   string
	Highlight   string
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load returns the named embedded theme. Empty or unknown names load
// DefaultName.
func Load(name string) (*Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !IsAvailable(name) {
		name = DefaultName
	}

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}

	m := t.Modal()
	t.BaseBg, t.ModalBorder, t.TextPrimary, t.TextMuted, t.Highlight =
		m.BaseBg, m.ModalBorder, m.TextPrimary, m.TextMuted, m.Highlight
	return &t, nil
}

// Modal resolves the modal colors, falling back to the base colors.
func (t *Theme) Modal() ModalPalette {
	return ModalPalette{
		BaseBg:      coalesce(t.BaseBg, t.BgHighlight, t.Bg),
		ModalBorder: coalesce(t.ModalBorder, t.Accent),
		TextPrimary: coalesce(t.TextPrimary, t.Fg),
		TextMuted:   coalesce(t.TextMuted, t.FgMuted),
		Highlight:   coalesce(t.Highlight, t.BgSelection, t.Accent),
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns the embedded theme names.
func Available() []string {
	return slices.Clone(builtin)
}

// IsAvailable reports whether a theme name is available, ignoring case.
func IsAvailable(name string) bool {
	return slices.Contains(builtin, strings.ToLower(name))
}
