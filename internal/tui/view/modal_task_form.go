package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CategoryChip is one entry of the category picker.
type CategoryChip struct {
	Label string
	Style lipgloss.Style
}

// TaskFormModel contains the fields needed to render the task form body.
type TaskFormModel struct {
	RangeLabel string
	DaysLabel  string
	TitleInput string // rendered text input
	Categories []CategoryChip
}

// TaskFormStyles groups styles for the task form body.
type TaskFormStyles struct {
	TagStyle          lipgloss.Style
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	HintStyle         lipgloss.Style
}

// RenderTaskFormBody renders the modal body for the task form.
func RenderTaskFormBody(model TaskFormModel, styles TaskFormStyles) string {
	var body strings.Builder
	sep := styles.BodyStyle.Render(" ")

	body.WriteString(styles.TagStyle.Render(model.RangeLabel) + sep + styles.TagStyle.Render(model.DaysLabel) + "\n\n")

	body.WriteString(styles.SectionTitleStyle.Render("TITLE") + "\n")
	body.WriteString(" " + model.TitleInput + "\n\n")

	body.WriteString(styles.SectionTitleStyle.Render("CATEGORY") + "\n")
	chips := make([]string, 0, len(model.Categories))
	for _, c := range model.Categories {
		chips = append(chips, c.Style.Render(c.Label))
	}
	body.WriteString(" " + strings.Join(chips, sep))
	body.WriteString(sep + styles.HintStyle.Render("Tab to change"))

	return body.String()
}
