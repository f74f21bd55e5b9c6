package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmDeleteModel contains the fields needed to render the confirm delete body.
type ConfirmDeleteModel struct {
	Title         string
	RangeLabel    string
	CategoryLabel string
	HasTask       bool
}

// ConfirmDeleteStyles groups styles for the confirm delete body.
type ConfirmDeleteStyles struct {
	BodyStyle lipgloss.Style
	TagStyle  lipgloss.Style
}

// RenderConfirmDeleteBody renders the modal body for the delete confirmation.
func RenderConfirmDeleteBody(model ConfirmDeleteModel, styles ConfirmDeleteStyles) string {
	var body strings.Builder

	if model.HasTask {
		body.WriteString(styles.BodyStyle.Render(fmt.Sprintf(" %q", model.Title)) + "\n")
		sep := styles.BodyStyle.Render(" ")
		body.WriteString(" " + styles.TagStyle.Render(model.RangeLabel) + sep + styles.TagStyle.Render(model.CategoryLabel) + "\n\n")
	}
	body.WriteString(styles.BodyStyle.Render(" This removes the task from the calendar.\n Are you sure?"))

	return body.String()
}

// InitModalModel contains the fields needed to render the startup modal.
type InitModalModel struct {
	ConfigPath    string
	DBPath        string
	ConfigMissing bool
	DBMissing     bool
	ErrorMessage  string
}

// InitModalStyles groups styles for the startup modal body.
type InitModalStyles struct {
	BodyStyle  lipgloss.Style
	LabelStyle lipgloss.Style
	HintStyle  lipgloss.Style
	ErrorStyle lipgloss.Style
}

// RenderInitBody renders the modal body asking to create missing files.
func RenderInitBody(model InitModalModel, styles InitModalStyles) string {
	var body strings.Builder

	body.WriteString(styles.BodyStyle.Render(" dulcinea needs to create:") + "\n\n")
	if model.ConfigMissing {
		body.WriteString(" " + styles.LabelStyle.Render("Config") + styles.BodyStyle.Render(model.ConfigPath) + "\n")
	}
	if model.DBMissing {
		body.WriteString(" " + styles.LabelStyle.Render("Database") + styles.BodyStyle.Render(model.DBPath) + "\n")
	}
	body.WriteString("\n" + styles.HintStyle.Render(" Run with --memory to try it without saving."))

	if model.ErrorMessage != "" {
		body.WriteString("\n\n" + styles.ErrorStyle.Render(" "+model.ErrorMessage))
	}

	return body.String()
}
