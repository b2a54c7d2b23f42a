package presenter

import "umlbox/canvas"

// ViewModel is the stringifiable snapshot of a rendered grid.
type ViewModel struct {
	cells [][]rune
}

// NewViewModel wraps a grid snapshot. The caller must not modify cells afterwards.
func NewViewModel(cells [][]rune) ViewModel {
	return ViewModel{cells: cells}
}

// EmptyViewModel is the view of a diagram with nothing to draw.
func EmptyViewModel() ViewModel {
	return ViewModel{}
}

// Cells returns the rows of the rendering.
func (v ViewModel) Cells() [][]rune {
	return v.cells
}

// IsEmpty reports whether nothing was drawn.
func (v ViewModel) IsEmpty() bool {
	return len(v.cells) == 0
}

// String joins the rows with newlines.
func (v ViewModel) String() string {
	return canvas.CellsString(v.cells)
}
