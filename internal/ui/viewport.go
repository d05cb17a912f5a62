package ui

import "github.com/samdwyer/squish/internal/world"

// Viewport maps game pixels onto terminal cells.
type Viewport struct {
	Cols, Rows    int // Terminal size
	Width, Height int // Game screen size in pixels
}

// ToCell returns the cell containing pixel (x, y).
func (v Viewport) ToCell(x, y int) (col, row int) {
	return floorDiv(x*v.Cols, v.Width), floorDiv(y*v.Rows, v.Height)
}

// PixelX returns the pixel x coordinate at the center of column col.
func (v Viewport) PixelX(col int) int {
	if v.Cols <= 0 {
		return 0
	}
	return (2*col + 1) * v.Width / (2 * v.Cols)
}

// CellRect returns the cells covered by pixel rectangle r.
// Any rectangle with area covers at least one cell.
func (v Viewport) CellRect(r world.Rect) world.Rect {
	if r.Empty() {
		return world.Rect{}
	}
	left, top := v.ToCell(r.Left(), r.Top())
	right, bottom := v.ToCell(r.Right()-1, r.Bottom()-1)
	return world.Rect{X: left, Y: top, W: right - left + 1, H: bottom - top + 1}
}

// Scale converts a pixel size to cells, never below one cell.
func (v Viewport) Scale(w, h int) (cols, rows int) {
	cols = max(1, w*v.Cols/v.Width)
	rows = max(1, h*v.Rows/v.Height)
	return cols, rows
}

// floorDiv divides rounding toward negative infinity, so pixels above or
// left of the screen map to negative cells.
func floorDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
