package theme

import (
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(strings.ToUpper(name))
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if th.Name != name {
				t.Errorf("Name = %q, want %q", th.Name, name)
			}
		})
	}

	fallbacks := map[string]string{
		"empty name":    "",
		"unknown name":  "nonexistent",
		"padded spaces": "  ",
	}
	for label, name := range fallbacks {
		t.Run(label, func(t *testing.T) {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q): %v", name, err)
			}
			if th.Name != DefaultName {
				t.Errorf("Load(%q).Name = %q, want %q", name, th.Name, DefaultName)
			}
		})
	}
}

func TestLoad_EveryColorIsHex(t *testing.T) {
	for _, name := range Available() {
		th, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		colors := map[string]string{
			"bg": th.Bg, "bg_highlight": th.BgHighlight, "bg_selection": th.BgSelection,
			"fg": th.Fg, "fg_muted": th.FgMuted, "accent": th.Accent,
			"today": th.Today, "warning": th.Warning,
			"base_bg": th.BaseBg, "modal_border": th.ModalBorder,
			"text_primary": th.TextPrimary, "text_muted": th.TextMuted, "highlight": th.Highlight,
		}
		for key, hex := range colors {
			if len(hex) != 7 || hex[0] != '#' {
				t.Errorf("%s.%s = %q, want #rrggbb", name, key, hex)
			}
		}
	}
}

func TestModal_Fallbacks(t *testing.T) {
	th := &Theme{
		Bg:          "#000000",
		BgHighlight: "#111111",
		BgSelection: "#222222",
		Fg:          "#eeeeee",
		FgMuted:     "#777777",
		Accent:      "#ff0000",
	}
	want := ModalPalette{
		BaseBg:      "#111111",
		ModalBorder: "#ff0000",
		TextPrimary: "#eeeeee",
		TextMuted:   "#777777",
		Highlight:   "#222222",
	}
	if got := th.Modal(); got != want {
		t.Errorf("Modal() = %+v, want %+v", got, want)
	}

	th.ModalBorder = "#00ff00"
	if got := th.Modal().ModalBorder; got != "#00ff00" {
		t.Errorf("explicit modal_border = %q, want #00ff00", got)
	}
}

func TestAvailable(t *testing.T) {
	got := Available()
	if len(got) == 0 || got[0] != DefaultName {
		t.Fatalf("Available() = %v, want %q first", got, DefaultName)
	}
	got[0] = "changed"
	if Available()[0] != DefaultName {
		t.Error("Available() must return a copy")
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		theme string
		want  bool
	}{
		{"mocha", true},
		{"Latte", true},
		{"unknown", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsAvailable(tt.theme); got != tt.want {
			t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.want)
		}
	}
}

func TestColor(t *testing.T) {
	if c := Color("#fab387"); string(c) != "#fab387" {
		t.Errorf("Color = %q", string(c))
	}
}
