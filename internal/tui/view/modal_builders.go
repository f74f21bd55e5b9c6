package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dulcinea/internal/task"
)

// TaskFormInput contains the data needed to build a task form model.
type TaskFormInput struct {
	Range      task.Range
	TitleInput string
	Selected   task.Category
	ChipStyle  func(c task.Category, active bool) lipgloss.Style
}

// NewTaskFormModel builds a task form model from input data.
func NewTaskFormModel(input TaskFormInput) TaskFormModel {
	cats := task.Categories()
	chips := make([]CategoryChip, 0, len(cats))
	for _, c := range cats {
		style := lipgloss.NewStyle()
		if input.ChipStyle != nil {
			style = input.ChipStyle(c, c == input.Selected)
		}
		chips = append(chips, CategoryChip{Label: c.Info().Name, Style: style})
	}

	return TaskFormModel{
		RangeLabel: FormatRange(input.Range),
		DaysLabel:  FormatDays(input.Range.Days()),
		TitleInput: input.TitleInput,
		Categories: chips,
	}
}

// NewConfirmDeleteModel builds a delete confirmation model from a task.
func NewConfirmDeleteModel(t *task.Task) ConfirmDeleteModel {
	if t == nil {
		return ConfirmDeleteModel{HasTask: false}
	}
	return ConfirmDeleteModel{
		Title:         t.Title,
		RangeLabel:    FormatRange(t.Range()),
		CategoryLabel: t.Category.Info().Name,
		HasTask:       true,
	}
}
