package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dulcinea/internal/task"
	"github.com/javiermolinar/dulcinea/internal/tui/theme"
	"github.com/javiermolinar/dulcinea/internal/tui/view"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Title line
	TitleStyle     lipgloss.Style
	MonthStyle     lipgloss.Style
	FilterTagStyle lipgloss.Style

	// Weekday header
	WeekdayStyle lipgloss.Style

	// Day number line of a cell
	DayNumberStyle      lipgloss.Style
	DayNumberMutedStyle lipgloss.Style // outside the displayed month
	DayNumberTodayStyle lipgloss.Style

	// Cell backgrounds
	CellStyle      lipgloss.Style
	SelectionStyle lipgloss.Style

	// "+N more" line
	MoreStyle lipgloss.Style

	// Footer
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	PromptStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalSectionTitleStyle lipgloss.Style
	ModalTagStyle          lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalErrorStyle        lipgloss.Style

	// Category picker
	CategoryActiveStyle   lipgloss.Style
	CategoryInactiveStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	palette := theme.NewPalette(t)
	s := &Styles{palette: palette}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Accent).
		Background(palette.Bg)

	s.MonthStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.FilterTagStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnAccent).
		Background(palette.Accent).
		Padding(0, 1)

	s.WeekdayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.Fg).
		Background(palette.BgHighlight)

	s.DayNumberStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.Bg)

	s.DayNumberMutedStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.DayNumberTodayStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(palette.TextOnToday).
		Background(palette.Today)

	s.CellStyle = lipgloss.NewStyle().
		Background(palette.Bg)

	s.SelectionStyle = lipgloss.NewStyle().
		Foreground(palette.TextOnSelection).
		Background(palette.BgSelection)

	s.MoreStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Background(palette.Bg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Background(palette.Bg).
		Bold(true)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(palette.FgMuted).
		Background(palette.Bg)

	s.PromptStyle = lipgloss.NewStyle().
		Foreground(palette.Fg).
		Background(palette.BgHighlight)

	modal := palette.Modal
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modal.Bg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(1, 1).
		Width(56).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg).
		Padding(0, 1)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modal.Bg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalSectionTitleStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		PaddingLeft(1).
		Background(modal.Bg)

	s.ModalTagStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Panel).
		Bold(true).
		Padding(0, 1)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Bold(true).
		Width(10).
		Background(modal.Bg)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modal.ReverseText).
		Background(modal.Highlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modal.Panel).
		Foreground(modal.Text).
		Padding(0, 2)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(modal.ReverseText).
		Padding(0, 2).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	s.ModalErrorStyle = lipgloss.NewStyle().
		Foreground(palette.Warning).
		Background(modal.Bg).
		Bold(true)

	s.CategoryActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1)

	s.CategoryInactiveStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Panel).
		Padding(0, 1)

	return s
}

// Palette returns the colors the styles were built from.
func (s *Styles) Palette() *theme.Palette {
	return s.palette
}

// BarStyle returns the style of a task bar. active marks the task under a
// move or resize.
func (s *Styles) BarStyle(c task.Category, active bool) lipgloss.Style {
	bar := s.palette.Bar(c)
	bg := bar.Bg
	if active {
		bg = bar.Active
	}
	st := lipgloss.NewStyle().
		Foreground(bar.Text).
		Background(bg)
	if active {
		st = st.Bold(true)
	}
	return st
}

// CategoryStyle returns the picker chip style for a category.
func (s *Styles) CategoryStyle(c task.Category, active bool) lipgloss.Style {
	if !active {
		return s.CategoryInactiveStyle
	}
	bar := s.palette.Bar(c)
	return s.CategoryActiveStyle.
		Foreground(bar.Text).
		Background(bar.Bg)
}

// ModalStyles returns the frame styles used by the view package.
func (s *Styles) ModalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       s.ModalHeaderStyle,
		ModalTitleStyle:        s.ModalTitleStyle,
		ModalFooterStyle:       s.ModalFooterStyle,
		ModalStyle:             s.ModalStyle,
		ModalButtonStyle:       s.ModalButtonStyle,
		ModalButtonActiveStyle: s.ModalButtonActiveStyle,
		ModalBodyStyle:         s.ModalBodyStyle,
	}
}

// ModalStyleSet returns the body styles used by the view package.
func (s *Styles) ModalStyleSet() view.ModalStyleSet {
	return view.ModalStyleSet{
		BodyStyle:         s.ModalBodyStyle,
		SectionTitleStyle: s.ModalSectionTitleStyle,
		TagStyle:          s.ModalTagStyle,
		LabelStyle:        s.ModalLabelStyle,
		HintStyle:         s.ModalHintStyle,
		ErrorStyle:        s.ModalErrorStyle,
	}
}
