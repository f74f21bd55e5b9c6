package view

import "time"

// longestWeekday is the rune count of "Wednesday".
const longestWeekday = 9

// WeekdayLabels returns the seven column labels starting at weekStart.
// Full names are used only when every one of them fits; otherwise all labels
// are cut to three runes, or to width (minimum two) when narrower.
func WeekdayLabels(weekStart time.Weekday, width int) []string {
	width = max(width, 2)
	cut := 0
	if width < longestWeekday {
		cut = min(width, 3)
	}
	labels := make([]string, 7)
	for i := range labels {
		name := time.Weekday((int(weekStart) + i) % 7).String()
		if cut > 0 {
			name = name[:cut]
		}
		labels[i] = name
	}
	return labels
}
