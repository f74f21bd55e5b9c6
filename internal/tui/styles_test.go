package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/dulcinea/internal/task"
	"github.com/javiermolinar/dulcinea/internal/tui/theme"
)

func testTheme() *theme.Theme {
	return &theme.Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Today:       "#ffff00",
		Warning:     "#ff00ff",
	}
}

func TestStylesBackgroundCoverage(t *testing.T) {
	th := testTheme()
	styles := NewStyles(th)

	assertBg := func(t *testing.T, name string, style lipgloss.Style, want string) {
		t.Helper()
		bg, ok := style.GetBackground().(lipgloss.Color)
		if !ok {
			t.Fatalf("%s background type = %T, want lipgloss.Color", name, style.GetBackground())
		}
		if bg != lipgloss.Color(want) {
			t.Fatalf("%s background = %q, want %q", name, bg, want)
		}
	}

	assertBg(t, "CellStyle", styles.CellStyle, th.Bg)
	assertBg(t, "DayNumberStyle", styles.DayNumberStyle, th.Bg)
	assertBg(t, "DayNumberMutedStyle", styles.DayNumberMutedStyle, th.Bg)
	assertBg(t, "DayNumberTodayStyle", styles.DayNumberTodayStyle, th.Today)
	assertBg(t, "SelectionStyle", styles.SelectionStyle, th.BgSelection)
	assertBg(t, "WeekdayStyle", styles.WeekdayStyle, th.BgHighlight)
	assertBg(t, "MoreStyle", styles.MoreStyle, th.Bg)
	assertBg(t, "HelpStyle", styles.HelpStyle, th.Bg)
}

func TestBarStyleDistinguishesCategoriesAndActive(t *testing.T) {
	styles := NewStyles(testTheme())

	seen := make(map[lipgloss.TerminalColor]task.Category)
	for _, c := range task.Categories() {
		bg := styles.BarStyle(c, false).GetBackground()
		if prev, dup := seen[bg]; dup {
			t.Errorf("%s and %s share bar background %v", prev, c, bg)
		}
		seen[bg] = c

		active := styles.BarStyle(c, true)
		if active.GetBackground() == bg {
			t.Errorf("%s active bar should use a different background", c)
		}
		if !active.GetBold() {
			t.Errorf("%s active bar should be bold", c)
		}
	}
}

func TestCategoryStyle(t *testing.T) {
	styles := NewStyles(testTheme())

	inactive := styles.CategoryStyle(task.CategoryWork, false)
	if inactive.GetBackground() != styles.CategoryInactiveStyle.GetBackground() {
		t.Error("inactive chip should use the inactive style")
	}
	active := styles.CategoryStyle(task.CategoryWork, true)
	if active.GetBackground() != styles.BarStyle(task.CategoryWork, false).GetBackground() {
		t.Error("active chip should use the category bar color")
	}
}

func TestNewModelAppliesModalInputStyles(t *testing.T) {
	m := newTestModel(t)
	if got, want := m.formTitle.TextStyle.Render("x"), m.styles.ModalInputTextStyle.Render("x"); got != want {
		t.Errorf("TextStyle mismatch: got %q, want %q", got, want)
	}
	if got, want := m.formTitle.Cursor.Style.Render("x"), m.styles.ModalInputCursorStyle.Render("x"); got != want {
		t.Errorf("Cursor style mismatch: got %q, want %q", got, want)
	}
}

func TestBarsRenderInTrueColor(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	styles := NewStyles(testTheme())
	work := styles.BarStyle(task.CategoryWork, false).Render("bar")
	health := styles.BarStyle(task.CategoryHealth, false).Render("bar")
	if !strings.Contains(work, "48;2;") {
		t.Fatalf("bar should carry a 24-bit background, got %q", work)
	}
	if work == health {
		t.Error("categories should render with different colors")
	}

	m := newTestModel(t, testTask(1, "Trip", task.CategoryFamily, 12, 14))
	if view := m.View(); !strings.Contains(view, "48;2;") || !strings.Contains(view, "Trip") {
		t.Error("grid should render the colored bar")
	}
}
