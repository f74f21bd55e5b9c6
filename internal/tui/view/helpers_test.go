package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestFitText(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"pads", "Trip", 8, "Trip    "},
		{"exact", "Trip", 4, "Trip"},
		{"truncates with tail", "Dentist appointment", 8, "Dentist~"},
		{"wide runes", "日本語", 5, "日本~"},
		{"zero width", "Trip", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FitText(tt.in, tt.width, "~")
			if got != tt.want {
				t.Errorf("FitText(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestPadLinesWithBackground(t *testing.T) {
	out := PadLinesWithBackground("ab\nabcdef", 4, 3, lipgloss.Color(""))
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 4 {
			t.Errorf("line %d width = %d, want 4", i, w)
		}
	}
}
