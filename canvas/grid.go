package canvas

import (
	"fmt"
	"strings"

	"umlbox/core"
)

// Grid is a dynamically growing rune matrix addressed by core.Position.
//
// Coordinate System:
//   - Origin (0,0) is top-left
//   - X increases rightward
//   - Y increases downward
//   - All coordinates are in character cells and must be non-negative
//
// Growth:
// Writing past the current bounds grows the grid. New rows start empty and
// gaps opened inside an existing row are padded with a plain space, not with
// the grid's fill character. Reads outside the written area return the fill
// character.
//
// Grid is NOT thread-safe. A single draw pass owns it for its whole duration.
type Grid struct {
	fill rune
	rows [][]rune
}

// NewGrid creates an empty grid with the given fill character.
func NewGrid(fill rune) *Grid {
	return &Grid{fill: fill}
}

// FromCells creates a grid pre-populated with a copy of cells.
func FromCells(fill rune, cells [][]rune) *Grid {
	return &Grid{fill: fill, rows: copyCells(cells)}
}

// FillChar returns the grid's configured fill character.
func (g *Grid) FillChar() rune {
	return g.fill
}

// PutChar writes ch at p, growing the backing storage as needed.
// Negative coordinates violate the caller contract and panic.
func (g *Grid) PutChar(ch rune, p core.Position) {
	if p.X < 0 || p.Y < 0 {
		panic(fmt.Sprintf("canvas: negative position %s", p))
	}

	for len(g.rows) <= p.Y {
		g.rows = append(g.rows, []rune{})
	}

	row := g.rows[p.Y]
	for len(row) <= p.X {
		row = append(row, ' ')
	}
	row[p.X] = ch
	g.rows[p.Y] = row
}

// Get returns the character at p, or the fill character if p has never
// been reached by a write.
func (g *Grid) Get(p core.Position) rune {
	if p.Y < 0 || p.Y >= len(g.rows) || p.X < 0 || p.X >= len(g.rows[p.Y]) {
		return g.fill
	}
	return g.rows[p.Y][p.X]
}

// Size returns the width of the widest row and the number of rows.
func (g *Grid) Size() (width, height int) {
	for _, row := range g.rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width, len(g.rows)
}

// Cells returns a snapshot of the grid. Later writes do not affect it.
func (g *Grid) Cells() [][]rune {
	return copyCells(g.rows)
}

// String returns the rows joined by newlines, without a trailing newline.
func (g *Grid) String() string {
	return CellsString(g.rows)
}

// CellsString renders a cell matrix as newline-joined rows.
func CellsString(cells [][]rune) string {
	var sb strings.Builder
	for y, row := range cells {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

func copyCells(cells [][]rune) [][]rune {
	out := make([][]rune, len(cells))
	for i, row := range cells {
		out[i] = make([]rune, len(row))
		copy(out[i], row)
	}
	return out
}
