package view

// TaskFormFooter renders the footer for the task form modal.
func TaskFormFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, 0, "[Enter] Create", "[Esc] Discard")
}

// ConfirmDeleteFooter renders the footer for the confirm delete modal.
func ConfirmDeleteFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, 0, "[y/Enter] Delete", "[n/Esc] Keep")
}

// InitFooter renders the footer for the init modal.
func InitFooter(styles ModalStyles) string {
	return RenderModalButtons(styles, 0, "[Enter] Create", "[Esc] Quit")
}
