package tui

import "github.com/javiermolinar/dulcinea/internal/tui/view"

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalTaskForm:
		return m.renderTaskFormModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	case ModalInit:
		return m.renderInitModal()
	default:
		return ""
	}
}

// renderTaskFormModal renders the form shown for a committed selection.
func (m Model) renderTaskFormModal() string {
	vm := m.taskFormModalViewModel()
	body := view.RenderTaskFormBody(vm.Model, vm.Styles)
	footer := view.TaskFormFooter(m.styles.ModalStyles())
	return view.RenderModalFrame(vm.Title, body, footer, m.styles.ModalStyles())
}

// renderConfirmDeleteModal renders the delete confirmation modal.
func (m Model) renderConfirmDeleteModal() string {
	vm := m.confirmDeleteModalViewModel()
	body := view.RenderConfirmDeleteBody(vm.Model, vm.Styles)
	footer := view.ConfirmDeleteFooter(m.styles.ModalStyles())
	return view.RenderModalFrame("Delete Task", body, footer, m.styles.ModalStyles())
}

// renderInitModal renders the startup initialization modal.
func (m Model) renderInitModal() string {
	vm := m.initModalViewModel()
	body := view.RenderInitBody(vm.Model, vm.Styles)
	footer := view.InitFooter(m.styles.ModalStyles())
	return view.RenderModalFrame("Initialize Dulcinea", body, footer, m.styles.ModalStyles())
}
