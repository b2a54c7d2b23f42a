package layout

import (
	"umlbox/core"
	"umlbox/render"
)

// Grid arranges elements left to right in rows of a fixed number of columns.
// Each row is as tall as its tallest element and each column is as wide as
// its widest element, so boxes line up regardless of their size.
type Grid struct {
	Columns int
	Gap     int
}

// NewGrid creates a grid layout. Non-positive columns put every element on a
// single row and a negative gap is treated as zero.
func NewGrid(columns, gap int) Grid {
	return Grid{Columns: columns, Gap: max(gap, 0)}
}

// Arrange positions the elements starting at the origin.
func (g Grid) Arrange(elements []render.Element) {
	if len(elements) == 0 {
		return
	}

	columns := g.Columns
	if columns <= 0 || columns > len(elements) {
		columns = len(elements)
	}
	gap := max(g.Gap, 0)

	colWidths := make([]int, columns)
	rowHeights := make([]int, (len(elements)+columns-1)/columns)
	for i, e := range elements {
		col, row := i%columns, i/columns
		colWidths[col] = max(colWidths[col], e.Width())
		rowHeights[row] = max(rowHeights[row], e.Height())
	}

	y := 0
	for row, height := range rowHeights {
		x := 0
		for col := 0; col < columns; col++ {
			i := row*columns + col
			if i >= len(elements) {
				break
			}
			elements[i].Move(core.NewPosition(x, y))
			x += colWidths[col] + gap
		}
		y += height + gap
	}
}

// Name returns the name of this layout algorithm.
func (Grid) Name() string {
	return "grid"
}
