package calendar

import (
	"testing"
	"time"
)

func TestCellForPoint(t *testing.T) {
	rect := Rect{X: 10, Y: 20, Width: 700, Height: 600} // cells are 100x100

	tests := []struct {
		name    string
		x, y    float64
		want    Cell
		wantHit bool
	}{
		{"top left corner", 10, 20, Cell{0, 0}, true},
		{"inside first cell", 109.9, 119.9, Cell{0, 0}, true},
		{"second column", 110, 20, Cell{0, 1}, true},
		{"bottom right", 709, 619, Cell{5, 6}, true},
		{"right edge is outside", 710, 100, Cell{}, false},
		{"bottom edge is outside", 100, 620, Cell{}, false},
		{"left of grid", 9.5, 100, Cell{}, false},
		{"above grid", 100, 19, Cell{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CellForPoint(tt.x, tt.y, rect, Rows, Cols)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if ok && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCellForPoint_DegenerateRect(t *testing.T) {
	if _, ok := CellForPoint(0, 0, Rect{Width: 0, Height: 100}, Rows, Cols); ok {
		t.Error("zero-width rect should never hit")
	}
	if _, ok := CellForPoint(0, 0, Rect{Width: 100, Height: 100}, 0, Cols); ok {
		t.Error("zero rows should never hit")
	}
}

func TestGrid_DateAt(t *testing.T) {
	g := NewGrid(2025, time.August, time.Sunday)
	rect := Rect{Width: 70, Height: 60}

	got, ok := g.DateAt(45, 15, rect) // row 1, col 4
	if !ok {
		t.Fatal("expected a hit")
	}
	if !got.Equal(day(2025, 8, 7)) {
		t.Errorf("got %v, want 2025-08-07", got)
	}

	if _, ok := g.DateAt(-1, 15, rect); ok {
		t.Error("expected a miss outside the container")
	}
}
