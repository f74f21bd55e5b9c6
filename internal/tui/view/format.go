// Package view provides rendering helpers for the TUI.
package view

import (
	"fmt"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
	"github.com/javiermolinar/dulcinea/internal/task"
)

const shortDateLayout = "Mon Jan 2"

// FormatDays formats a day count as "1 day" or "N days".
func FormatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

// FormatRange formats a range as "Mon Jan 2" or "Mon Jan 2 - Wed Jan 4".
func FormatRange(r task.Range) string {
	if dateutil.SameDay(r.Start, r.End) {
		return r.Start.Format(shortDateLayout)
	}
	return r.Start.Format(shortDateLayout) + " - " + r.End.Format(shortDateLayout)
}
