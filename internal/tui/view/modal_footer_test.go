package view

import (
	"strings"
	"testing"
)

func TestModalFooters(t *testing.T) {
	styles := ModalStyles{}

	tests := []struct {
		name   string
		footer string
		want   []string
	}{
		{"task form", TaskFormFooter(styles), []string{"[Enter] Create", "[Esc] Discard"}},
		{"confirm delete", ConfirmDeleteFooter(styles), []string{"[y/Enter] Delete", "[n/Esc] Keep"}},
		{"init", InitFooter(styles), []string{"[Enter] Create", "[Esc] Quit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.want {
				if !strings.Contains(tt.footer, want) {
					t.Errorf("footer %q missing %q", tt.footer, want)
				}
			}
		})
	}
}
