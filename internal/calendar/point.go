package calendar

import "math"

// Rect is the bounding box of the grid container in device coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Empty reports whether the rect has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// CellForPoint divides rect into rows x cols uniform cells and returns the
// cell under (x, y). ok is false when the point falls outside the grid.
func CellForPoint(x, y float64, rect Rect, rows, cols int) (Cell, bool) {
	if rect.Empty() || rows <= 0 || cols <= 0 {
		return Cell{}, false
	}
	cellW := rect.Width / float64(cols)
	cellH := rect.Height / float64(rows)

	col := int(math.Floor((x - rect.X) / cellW))
	row := int(math.Floor((y - rect.Y) / cellH))
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return Cell{}, false
	}
	return Cell{Row: row, Col: col}, true
}
