package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dulcinea/internal/task"
)

func testTheme() *Theme {
	return &Theme{
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

func TestNewPalette_BarsPerCategory(t *testing.T) {
	palette := NewPalette(testTheme())

	if len(palette.Bars) != len(task.Categories()) {
		t.Fatalf("got %d bar entries, want %d", len(palette.Bars), len(task.Categories()))
	}
	for _, c := range task.Categories() {
		bar := palette.Bar(c)
		want := blendColors(c.Info().Color, "#101010", 0.45)
		if bar.Bg != lipgloss.Color(want) {
			t.Errorf("%s: Bg = %q, want %q", c, bar.Bg, want)
		}
		if bar.Active == bar.Bg {
			t.Errorf("%s: active shade equals base shade", c)
		}
		// Dark bars on a dark theme read best in the light foreground.
		if bar.Text != lipgloss.Color("#ffffff") {
			t.Errorf("%s: Text = %q, want #ffffff", c, bar.Text)
		}
	}

	if got := palette.Bar(task.Category("chores")); got != palette.Bar(task.CategoryOther) {
		t.Errorf("unknown category = %+v, want Other colors", got)
	}
}

func TestNewPalette_ModalFallbacks(t *testing.T) {
	base := testTheme()
	palette := NewPalette(base)

	if palette.Modal.Bg != lipgloss.Color(base.BgHighlight) {
		t.Fatalf("Modal.Bg = %q, want %q", palette.Modal.Bg, base.BgHighlight)
	}
	if palette.Modal.Border.Dark != base.Accent {
		t.Fatalf("Modal.Border.Dark = %q, want %q", palette.Modal.Border.Dark, base.Accent)
	}
	if palette.Modal.Backdrop != lipgloss.Color(base.BgSelection) {
		t.Fatalf("Modal.Backdrop = %q, want %q", palette.Modal.Backdrop, base.BgSelection)
	}
}

func TestNewPalette_NilThemeUsesMocha(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Bg != lipgloss.Color("#1e1e2e") {
		t.Errorf("Bg = %q, want mocha base", palette.Bg)
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		ratio float64
		want  string
	}{
		{"zero ratio keeps a", "#336699", "#ffffff", 0, "#336699"},
		{"full ratio gives b", "#336699", "#ffffff", 1, "#ffffff"},
		{"ratio clamped high", "#336699", "#000000", 4, "#000000"},
		{"bad input returned as is", "blue", "#000000", 0.5, "blue"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blendColors(tt.a, tt.b, tt.ratio); got != tt.want {
				t.Errorf("blendColors(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.ratio, got, tt.want)
			}
		})
	}
}

func TestIsLightTheme(t *testing.T) {
	for _, name := range []string{"latte", "light"} {
		th, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if !isLightTheme(th.Bg) {
			t.Errorf("%s should be light", name)
		}
	}
	th, _ := Load("mocha")
	if isLightTheme(th.Bg) {
		t.Error("mocha should be dark")
	}
}

func TestChooseTextColor(t *testing.T) {
	if got := chooseTextColor("#000000", "#ffffff", "#111111"); got != "#ffffff" {
		t.Errorf("on black got %q", got)
	}
	if got := chooseTextColor("#ffffff", "#eeeeee", "#111111"); got != "#111111" {
		t.Errorf("on white got %q", got)
	}
}
