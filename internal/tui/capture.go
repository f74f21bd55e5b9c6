package tui

import tea "github.com/charmbracelet/bubbletea"

// mouseCapture switches the terminal to all-motion mouse tracking while a
// gesture holds it, so drags keep reporting after the pointer leaves the
// grid. The mode changes are queued and handed to bubbletea by flush.
type mouseCapture struct {
	held    bool
	pending []tea.Cmd
}

// Acquire implements gesture.Capture.
func (c *mouseCapture) Acquire() func() {
	c.held = true
	c.pending = append(c.pending, tea.EnableMouseAllMotion)
	LogCapture(true)
	return func() {
		c.held = false
		c.pending = append(c.pending, tea.EnableMouseCellMotion)
		LogCapture(false)
	}
}

// Held reports whether a gesture currently holds the capture.
func (c *mouseCapture) Held() bool {
	return c.held
}

// flush returns the queued terminal mode changes in order.
func (c *mouseCapture) flush() tea.Cmd {
	if len(c.pending) == 0 {
		return nil
	}
	cmds := c.pending
	c.pending = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}
