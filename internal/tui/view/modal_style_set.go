package view

import "github.com/charmbracelet/lipgloss"

// ModalStyleSet groups modal styles to reduce call-site verbosity.
type ModalStyleSet struct {
	BodyStyle         lipgloss.Style
	SectionTitleStyle lipgloss.Style
	TagStyle          lipgloss.Style
	LabelStyle        lipgloss.Style
	HintStyle         lipgloss.Style
	ErrorStyle        lipgloss.Style
}

// TaskFormStyles returns the modal styles needed for the task form.
func (s ModalStyleSet) TaskFormStyles() TaskFormStyles {
	return TaskFormStyles{
		TagStyle:          s.TagStyle,
		BodyStyle:         s.BodyStyle,
		SectionTitleStyle: s.SectionTitleStyle,
		HintStyle:         s.HintStyle,
	}
}

// ConfirmDeleteStyles returns the modal styles needed for delete confirmation.
func (s ModalStyleSet) ConfirmDeleteStyles() ConfirmDeleteStyles {
	return ConfirmDeleteStyles{
		BodyStyle: s.BodyStyle,
		TagStyle:  s.TagStyle,
	}
}

// InitModalStyles returns the modal styles needed for initialization.
func (s ModalStyleSet) InitModalStyles() InitModalStyles {
	return InitModalStyles{
		BodyStyle:  s.BodyStyle,
		LabelStyle: s.LabelStyle,
		HintStyle:  s.HintStyle,
		ErrorStyle: s.ErrorStyle,
	}
}
