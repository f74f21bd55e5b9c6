package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/javiermolinar/dulcinea/internal/task"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Today       lipgloss.Color
	Warning     lipgloss.Color

	TextOnAccent    lipgloss.Color
	TextOnWarning   lipgloss.Color
	TextOnToday     lipgloss.Color
	TextOnSelection lipgloss.Color

	Bars map[task.Category]BarColors

	Modal ModalColors
}

// BarColors are the shades used to draw a task bar of one category.
type BarColors struct {
	Bg     lipgloss.Color
	Active lipgloss.Color // bar under an active move or resize
	Text   lipgloss.Color
}

// ModalColors holds modal-specific colors derived from a Theme.
type ModalColors struct {
	Bg          lipgloss.Color
	Border      lipgloss.AdaptiveColor
	Text        lipgloss.AdaptiveColor
	Muted       lipgloss.AdaptiveColor
	Highlight   lipgloss.AdaptiveColor
	Panel       lipgloss.AdaptiveColor
	ReverseText lipgloss.AdaptiveColor
	Backdrop    lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	isLight := isLightTheme(t.Bg)

	bars := make(map[task.Category]BarColors, len(task.Categories()))
	for _, c := range task.Categories() {
		bg := barBg(c.Info().Color, t.Bg, isLight)
		bars[c] = BarColors{
			Bg:     lipgloss.Color(bg),
			Active: lipgloss.Color(activeShade(bg, isLight)),
			Text:   lipgloss.Color(chooseTextColor(bg, t.Fg, t.Bg)),
		}
	}

	modalPalette := t.Modal()
	modalBgHex := coalesce(modalPalette.BaseBg, t.BgHighlight, t.Bg)
	modalTextHex := coalesce(modalPalette.TextPrimary, t.Fg)
	modalPanelHex := coalesce(t.BgSelection, t.BgHighlight, t.Bg)

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Today:       lipgloss.Color(t.Today),
		Warning:     lipgloss.Color(t.Warning),

		TextOnAccent:    lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnWarning:   lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),
		TextOnToday:     lipgloss.Color(chooseTextColor(t.Today, t.Bg, t.Fg)),
		TextOnSelection: lipgloss.Color(chooseTextColor(t.BgSelection, t.Fg, t.Bg)),

		Bars: bars,

		Modal: ModalColors{
			Bg:          lipgloss.Color(modalBgHex),
			Border:      adaptiveColor(coalesce(modalPalette.ModalBorder, t.Accent)),
			Text:        adaptiveColor(modalTextHex),
			Muted:       adaptiveColor(coalesce(modalPalette.TextMuted, t.FgMuted)),
			Highlight:   adaptiveColor(coalesce(modalPalette.Highlight, t.BgSelection, t.Accent)),
			Panel:       adaptiveColor(modalPanelHex),
			ReverseText: reverseTextColor(modalBgHex, modalTextHex),
			Backdrop:    lipgloss.Color(modalPanelHex),
		},
	}
}

// Bar returns the bar colors for a category, falling back to Other.
func (p *Palette) Bar(c task.Category) BarColors {
	if b, ok := p.Bars[c]; ok {
		return b
	}
	return p.Bars[task.CategoryOther]
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// barBg pulls a category color toward the background so bar text stays readable.
func barBg(accent, bg string, isLight bool) string {
	if isLight {
		return blendColors(accent, bg, 0.65)
	}
	return blendColors(accent, bg, 0.45)
}

func activeShade(hex string, isLight bool) string {
	if isLight {
		return blendColors(hex, "#000000", 0.15)
	}
	return blendColors(hex, "#ffffff", 0.25)
}

// blendColors mixes a toward b in Lab space. Unparseable input returns a.
func blendColors(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return ca.BlendLab(cb, ratio).Clamped().Hex()
}

func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func chooseTextColor(bg, lightText, darkText string) string {
	if contrastRatio(bg, lightText) >= contrastRatio(bg, darkText) {
		return lightText
	}
	return darkText
}

func adaptiveColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Dark:  hex,
		Light: hex,
	}
}

func reverseTextColor(darkBg, lightText string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{
		Dark:  darkBg,
		Light: lightText,
	}
}
