package tui

import (
	"github.com/javiermolinar/dulcinea/internal/calendar"
	"github.com/javiermolinar/dulcinea/internal/gesture"
	"github.com/javiermolinar/dulcinea/internal/task"
	"github.com/javiermolinar/dulcinea/internal/tui/view"
)

const (
	titleLines  = 1
	headerLines = 1
	gridTop     = titleLines + headerLines

	minColWidth = 6
	minRowLines = 3 // day number, one bar lane, "+N more"
)

// gridGeometry is the terminal-cell layout of the month grid. Every day
// cell is colWidth columns by rowLines lines, so the grid divides evenly.
type gridGeometry struct {
	colWidth int
	rowLines int
	lanes    int // bar lines per week row
}

func computeGeometry(width, height int) gridGeometry {
	colWidth := width / calendar.Cols
	if colWidth < minColWidth {
		colWidth = minColWidth
	}
	rowLines := (height - gridTop - view.FooterHeight) / calendar.Rows
	if rowLines < minRowLines {
		rowLines = minRowLines
	}
	return gridGeometry{
		colWidth: colWidth,
		rowLines: rowLines,
		lanes:    rowLines - 2,
	}
}

// rect is the container rectangle in terminal cells.
func (g gridGeometry) rect() calendar.Rect {
	return calendar.Rect{
		X:      0,
		Y:      gridTop,
		Width:  float64(g.colWidth * calendar.Cols),
		Height: float64(g.rowLines * calendar.Rows),
	}
}

// locate splits a terminal position into grid row and column plus the line
// inside the row and the offset inside the column.
func (g gridGeometry) locate(x, y int) (row, col, line, offset int, ok bool) {
	if g.colWidth <= 0 || g.rowLines <= 0 || x < 0 || y < gridTop {
		return 0, 0, 0, 0, false
	}
	col, offset = x/g.colWidth, x%g.colWidth
	row, line = (y-gridTop)/g.rowLines, (y-gridTop)%g.rowLines
	if row >= calendar.Rows || col >= calendar.Cols {
		return 0, 0, 0, 0, false
	}
	return row, col, line, offset, true
}

// slotCap is the number of lanes handed to the layout.
func (g gridGeometry) slotCap(configured int) int {
	if configured > 0 && configured < g.lanes {
		return configured
	}
	return g.lanes
}

// hitTest reports what lies under a terminal position. The first and last
// cell of a bar that starts or ends in this week are its resize handles.
func (m Model) hitTest(x, y int) gesture.Target {
	row, col, line, offset, ok := m.geom.locate(x, y)
	if !ok {
		return gesture.GridTarget()
	}
	slot := line - 1
	if slot < 0 || slot >= m.geom.slotCap(m.maxSlots) {
		return gesture.GridTarget()
	}

	weeks := m.board.Weeks()
	bar, ok := weeks[row].BarAt(slot, col)
	if !ok {
		return gesture.GridTarget()
	}
	id := bar.Task.ID
	if col == bar.Offset && offset == 0 && !bar.ContinuesBefore {
		return gesture.EdgeTarget(id, task.EdgeStart)
	}
	if col == bar.End() && offset == m.geom.colWidth-1 && !bar.ContinuesAfter {
		return gesture.EdgeTarget(id, task.EdgeEnd)
	}
	return gesture.BodyTarget(id)
}
