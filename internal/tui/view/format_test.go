package view

import (
	"testing"
	"time"

	"github.com/javiermolinar/dulcinea/internal/task"
)

func TestFormatDays(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "1 day"},
		{2, "2 days"},
		{31, "31 days"},
	}
	for _, tt := range tests {
		if got := FormatDays(tt.n); got != tt.want {
			t.Errorf("FormatDays(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestFormatRange(t *testing.T) {
	d := func(m time.Month, day int) time.Time {
		return time.Date(2025, m, day, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name string
		r    task.Range
		want string
	}{
		{"single day", task.SingleDay(d(8, 7)), "Thu Aug 7"},
		{"span", task.NewRange(d(8, 30), d(9, 2)), "Sat Aug 30 - Tue Sep 2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatRange(tt.r); got != tt.want {
				t.Errorf("FormatRange = %q, want %q", got, tt.want)
			}
		})
	}
}
