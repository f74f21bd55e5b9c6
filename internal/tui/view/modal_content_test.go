package view

import (
	"strings"
	"testing"
)

func TestRenderConfirmDeleteBody(t *testing.T) {
	styles := ConfirmDeleteStyles{}

	withTask := RenderConfirmDeleteBody(ConfirmDeleteModel{
		Title:         "Trip",
		RangeLabel:    "Tue Aug 12 - Thu Aug 14",
		CategoryLabel: "Family",
		HasTask:       true,
	}, styles)
	for _, want := range []string{`"Trip"`, "Aug 12", "Family", "Are you sure?"} {
		if !strings.Contains(withTask, want) {
			t.Errorf("body missing %q", want)
		}
	}

	without := RenderConfirmDeleteBody(ConfirmDeleteModel{}, styles)
	if strings.Contains(without, `"`) {
		t.Errorf("expected no task line, got %q", without)
	}
}

func TestRenderInitBody_ListsMissingFiles(t *testing.T) {
	model := InitModalModel{
		ConfigPath:    "/home/u/.config/dulcinea/config.toml",
		DBPath:        "/home/u/.local/share/dulcinea/dulcinea.db",
		ConfigMissing: false,
		DBMissing:     true,
		ErrorMessage:  "permission denied",
	}

	body := RenderInitBody(model, InitModalStyles{})
	if strings.Contains(body, model.ConfigPath) {
		t.Error("config path shown although it exists")
	}
	if !strings.Contains(body, model.DBPath) {
		t.Error("missing database path not shown")
	}
	if !strings.Contains(body, "permission denied") {
		t.Error("error message not shown")
	}
}
