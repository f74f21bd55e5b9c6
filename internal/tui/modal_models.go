package tui

import (
	"github.com/javiermolinar/dulcinea/internal/tui/view"
)

type taskFormModalViewModel struct {
	Title  string
	Model  view.TaskFormModel
	Styles view.TaskFormStyles
}

func (m Model) taskFormModalViewModel() taskFormModalViewModel {
	r, _ := m.board.PendingSelection()
	title := "New Task"
	if r.Days() > 1 {
		title = "New Multi-day Task"
	}
	return taskFormModalViewModel{
		Title: title,
		Model: view.NewTaskFormModel(view.TaskFormInput{
			Range:      r,
			TitleInput: m.formTitle.View(),
			Selected:   m.formCategory,
			ChipStyle:  m.styles.CategoryStyle,
		}),
		Styles: m.styles.ModalStyleSet().TaskFormStyles(),
	}
}

type confirmDeleteModalViewModel struct {
	Model  view.ConfirmDeleteModel
	Styles view.ConfirmDeleteStyles
}

func (m Model) confirmDeleteModalViewModel() confirmDeleteModalViewModel {
	t, _ := m.board.Tasks().Task(m.deleteID)
	return confirmDeleteModalViewModel{
		Model:  view.NewConfirmDeleteModel(t),
		Styles: m.styles.ModalStyleSet().ConfirmDeleteStyles(),
	}
}

type initModalViewModel struct {
	Model  view.InitModalModel
	Styles view.InitModalStyles
}

func (m Model) initModalViewModel() initModalViewModel {
	return initModalViewModel{
		Model: view.InitModalModel{
			ConfigPath:    m.initState.ConfigPath,
			DBPath:        m.initState.DBPath,
			ConfigMissing: m.initState.ConfigMissing,
			DBMissing:     m.initState.DBMissing,
			ErrorMessage:  m.initError,
		},
		Styles: m.styles.ModalStyleSet().InitModalStyles(),
	}
}
