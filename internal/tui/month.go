package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/dulcinea/internal/calendar"
	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/filter"
	"github.com/javiermolinar/dulcinea/internal/gesture"
	"github.com/javiermolinar/dulcinea/internal/layout"
	"github.com/javiermolinar/dulcinea/internal/task"
	"github.com/javiermolinar/dulcinea/internal/tui/view"
)

// Bar glyphs. Handles mark ends that can be dragged; arrows mark a task
// running on from a neighbouring week.
const (
	glyphStart     = "▌"
	glyphEnd       = "▐"
	glyphContinues = "‹"
	glyphContinued = "›"
	titleTail      = "…"
)

// monthFrame is everything one render of the grid needs.
type monthFrame struct {
	grid     *calendar.Grid
	weeks    []layout.Week
	today    time.Time
	sel      task.Range
	hasSel   bool
	activeID int64
}

func (m Model) newMonthFrame() monthFrame {
	f := monthFrame{
		grid:  m.board.Grid(),
		weeks: m.board.Weeks(),
		today: dateutil.TruncateToDay(m.clock()),
	}
	f.sel, f.hasSel = m.board.Selection()
	if _, id, ok := gesture.Highlight(m.board.State()); ok {
		f.activeID = id
	}
	return f
}

func (f monthFrame) selected(date time.Time) bool {
	return f.hasSel && f.sel.Contains(date)
}

// renderHeader renders the weekday names above the grid.
func (m Model) renderHeader() string {
	w := m.geom.colWidth
	labels := view.WeekdayLabels(m.board.Grid().WeekStart, w-1)
	var sb strings.Builder
	for _, label := range labels {
		sb.WriteString(m.styles.WeekdayStyle.Render(view.FitText(" "+label, w, "")))
	}
	return sb.String()
}

// renderGrid renders the six week rows of the displayed month.
func (m Model) renderGrid() string {
	f := m.newMonthFrame()
	lines := make([]string, 0, calendar.Rows*m.geom.rowLines)
	for row := 0; row < calendar.Rows; row++ {
		lines = append(lines, m.renderWeek(f, row)...)
	}
	return strings.Join(lines, "\n")
}

// renderWeek renders one grid row: the day numbers, the bar lanes and the
// overflow line.
func (m Model) renderWeek(f monthFrame, row int) []string {
	var week layout.Week
	if row < len(f.weeks) {
		week = f.weeks[row]
	}

	lines := make([]string, 0, m.geom.rowLines)
	lines = append(lines, m.renderDayNumbers(f, row))
	for slot := 0; slot < m.geom.lanes; slot++ {
		lines = append(lines, m.renderLane(f, row, week, slot))
	}
	lines = append(lines, m.renderOverflow(f, row, week))
	return lines
}

func (m Model) renderDayNumbers(f monthFrame, row int) string {
	var sb strings.Builder
	for col := 0; col < calendar.Cols; col++ {
		date := f.grid.DateForCell(row, col)
		style := m.styles.DayNumberStyle
		switch {
		case f.selected(date):
			style = m.styles.SelectionStyle
		case dateutil.SameDay(date, f.today):
			style = m.styles.DayNumberTodayStyle
		case !f.grid.InMonth(date):
			style = m.styles.DayNumberMutedStyle
		}
		label := fmt.Sprintf(" %d", date.Day())
		if date.Day() == 1 {
			label = " " + date.Format("Jan 2")
		}
		sb.WriteString(style.Render(view.FitText(label, m.geom.colWidth, "")))
	}
	return sb.String()
}

func (m Model) renderLane(f monthFrame, row int, week layout.Week, slot int) string {
	var sb strings.Builder
	for col := 0; col < calendar.Cols; {
		bar, ok := week.BarAt(slot, col)
		if !ok {
			sb.WriteString(m.emptyCell(f, row, col))
			col++
			continue
		}
		sb.WriteString(m.renderBar(f, bar))
		col = bar.End() + 1
	}
	return sb.String()
}

// renderBar renders a bar across every column it covers. The first and last
// cell are the resize handles the hit test looks for.
func (m Model) renderBar(f monthFrame, bar layout.Bar) string {
	width := bar.Span * m.geom.colWidth
	start, end := glyphStart, glyphEnd
	if bar.ContinuesBefore {
		start = glyphContinues
	}
	if bar.ContinuesAfter {
		end = glyphContinued
	}

	t := bar.Task
	active := f.activeID != 0 && t.ID == f.activeID
	style := m.styles.BarStyle(t.Category, active)
	if !active && t.ID == m.focusID {
		style = style.Underline(true)
	}
	return style.Render(start + view.FitText(t.Title, width-2, titleTail) + end)
}

func (m Model) renderOverflow(f monthFrame, row int, week layout.Week) string {
	var sb strings.Builder
	for col := 0; col < calendar.Cols; col++ {
		n := week.OverflowByDay[col]
		if n == 0 {
			sb.WriteString(m.emptyCell(f, row, col))
			continue
		}
		sb.WriteString(m.styles.MoreStyle.Render(view.FitText(fmt.Sprintf(" +%d more", n), m.geom.colWidth, "")))
	}
	return sb.String()
}

func (m Model) emptyCell(f monthFrame, row, col int) string {
	style := m.styles.CellStyle
	if f.selected(f.grid.DateForCell(row, col)) {
		style = m.styles.SelectionStyle
	}
	return style.Render(strings.Repeat(" ", m.geom.colWidth))
}

// renderTitle renders the month label followed by the active filters.
func (m Model) renderTitle() string {
	parts := []string{
		m.styles.TitleStyle.Render(" dulcinea "),
		m.styles.MonthStyle.Render(" " + m.board.Grid().Label() + " "),
	}
	for _, tag := range filterTags(m.board.Filter()) {
		parts = append(parts, m.styles.CellStyle.Render(" "), m.styles.FilterTagStyle.Render(tag))
	}
	if m.loading {
		parts = append(parts, m.styles.HelpStyle.Render(" loading"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// filterTags describes the parts of f that hide tasks.
func filterTags(f filter.Filter) []string {
	var tags []string
	if text := strings.TrimSpace(f.Text); text != "" {
		tags = append(tags, "/"+text)
	}
	cats := f.Categories.All()
	if len(cats) != len(task.Categories()) {
		names := make([]string, 0, len(cats))
		for _, c := range cats {
			names = append(names, c.Info().Name)
		}
		if len(names) == 0 {
			names = append(names, "no categories")
		}
		tags = append(tags, strings.Join(names, " "))
	}
	if f.WithinWeeks > 0 {
		tags = append(tags, fmt.Sprintf("+%dw", f.WithinWeeks))
	}
	return tags
}
