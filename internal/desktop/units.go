package desktop

import (
	"github.com/Gaurav-Gosain/retrodesk/internal/geometry"
	"github.com/Gaurav-Gosain/retrodesk/internal/layout"
)

// Units maps terminal cells to the pixel space the window core works in.
type Units struct {
	CellWidth  int
	CellHeight int
}

// CellRect is a rectangle in terminal cells.
type CellRect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r CellRect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// ToPixels returns the pixel position of the top-left corner of a cell.
func (u Units) ToPixels(col, row int) (int, int) {
	return col * u.CellWidth, row * u.CellHeight
}

// Viewport returns the pixel size of a cols x rows terminal.
func (u Units) Viewport(cols, rows int) (int, int) {
	return cols * u.CellWidth, rows * u.CellHeight
}

// ToCells converts a pixel rectangle to cells. Positions round toward
// negative infinity so partially off-screen windows keep their offset;
// sizes round down with a floor of one cell.
func (u Units) ToCells(r geometry.Rect) CellRect {
	return CellRect{
		X: floorDiv(r.Left, u.CellWidth),
		Y: floorDiv(r.Top, u.CellHeight),
		W: max(r.Width/u.CellWidth, 1),
		H: max(r.Height/u.CellHeight, 1),
	}
}

// TaskbarRows is the number of rows covering the taskbar reservation.
func (u Units) TaskbarRows() int {
	return (layout.TaskbarHeight + u.CellHeight - 1) / u.CellHeight
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
