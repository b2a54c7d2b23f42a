// Package validation checks rendered diagrams for box-drawing glyphs that do
// not join up with their neighbours.
package validation

import (
	"fmt"
	"slices"
	"strings"

	"umlbox/render"
)

// direction is a bit set of the sides a glyph connects to.
type direction uint8

const (
	north direction = 1 << iota
	east
	south
	west
)

func (d direction) opposite() direction {
	switch d {
	case north:
		return south
	case south:
		return north
	case east:
		return west
	default:
		return east
	}
}

func (d direction) String() string {
	switch d {
	case north:
		return "north"
	case east:
		return "east"
	case south:
		return "south"
	default:
		return "west"
	}
}

var sides = []struct {
	dir    direction
	dx, dy int
}{
	{north, 0, -1},
	{east, 1, 0},
	{south, 0, 1},
	{west, -1, 0},
}

// weight groups glyphs that can be joined in strict mode.
type weight uint8

const (
	light weight = iota
	heavy
	double
	ascii
)

func (w weight) String() string {
	switch w {
	case light:
		return "light"
	case heavy:
		return "heavy"
	case double:
		return "double"
	default:
		return "ascii"
	}
}

type glyph struct {
	connects direction
	weight   weight
}

// glyphs lists the sides each Unicode line glyph connects to. Border glyphs
// come from the render box styles.
var glyphs = withBoxStyles(map[rune]glyph{
	'├': {north | south | east, light},
	'┤': {north | south | west, light},
	'┬': {east | west | south, light},
	'┴': {east | west | north, light},
	'┼': {north | east | south | west, light},
}, light, heavy, double)

// asciiGlyphs are only treated as lines when ASCII is allowed. '+' is used
// for every ASCII corner, so it connects in any direction.
var asciiGlyphs = withBoxStyles(map[rune]glyph{}, ascii)

// styleWeights gives the line weight of every render box style.
var styleWeights = map[string]weight{
	"rounded": light,
	"sharp":   light,
	"thick":   heavy,
	"double":  double,
	"ascii":   ascii,
}

// withBoxStyles adds the border glyphs of the box styles of the given weights
// to table. A glyph used in several places connects in all of their directions.
func withBoxStyles(table map[rune]glyph, weights ...weight) map[rune]glyph {
	for name, style := range render.BoxStyles {
		w, ok := styleWeights[name]
		if !ok || !slices.Contains(weights, w) {
			continue
		}
		for _, part := range []struct {
			char     rune
			connects direction
		}{
			{style.TopLeft, east | south},
			{style.TopRight, west | south},
			{style.BottomLeft, east | north},
			{style.BottomRight, west | north},
			{style.Horizontal, east | west},
			{style.Vertical, north | south},
		} {
			table[part.char] = glyph{connects: table[part.char].connects | part.connects, weight: w}
		}
	}
	return table
}

// LineValidator validates that rendered diagrams follow proper line drawing rules.
// It checks that adjacent characters are compatible according to box-drawing logic.
type LineValidator struct {
	errors     []ValidationError
	allowASCII bool // Treat -, | and + as line glyphs
	strictMode bool // Reject joins between glyphs of different line weights
}

// ValidationError represents a validation error with location information.
type ValidationError struct {
	X, Y    int
	Char    rune
	Context string
	Message string
}

// NewLineValidator creates a new validator with default settings.
func NewLineValidator() *LineValidator {
	return &LineValidator{allowASCII: true}
}

// SetStrictMode enables or disables strict validation.
func (v *LineValidator) SetStrictMode(strict bool) {
	v.strictMode = strict
}

// SetAllowASCII controls whether -, | and + are checked as lines.
func (v *LineValidator) SetAllowASCII(allow bool) {
	v.allowASCII = allow
}

// Validate checks a rendered diagram for line drawing errors.
func (v *LineValidator) Validate(diagram string) []ValidationError {
	lines := strings.Split(strings.TrimRight(diagram, "\n"), "\n")
	grid := make([][]rune, len(lines))
	for i, line := range lines {
		grid[i] = []rune(line)
	}
	return v.ValidateCells(grid)
}

// ValidateCells checks a rendered grid for line drawing errors.
func (v *LineValidator) ValidateCells(grid [][]rune) []ValidationError {
	v.errors = nil

	for y := range grid {
		for x, char := range grid[y] {
			g, ok := v.lookup(char)
			if !ok {
				continue
			}
			v.checkCharacter(grid, x, y, char, g)
		}
	}

	return v.errors
}

// checkCharacter validates one glyph against its four neighbours. Every side
// the glyph connects to must face either a non-line character or a glyph
// connecting back.
func (v *LineValidator) checkCharacter(grid [][]rune, x, y int, char rune, g glyph) {
	for _, side := range sides {
		if g.connects&side.dir == 0 {
			continue
		}
		neighbor := getChar(grid, x+side.dx, y+side.dy)
		other, isLine := v.lookup(neighbor)
		if !isLine {
			continue
		}

		context := fmt.Sprintf("%s=%c", side.dir, neighbor)
		switch {
		case other.connects&side.dir.opposite() == 0:
			v.addError(x, y, char, context,
				"%c cannot connect to %c on the %s", char, neighbor, side.dir)
		case v.strictMode && other.weight != g.weight:
			v.addError(x, y, char, context,
				"%s line joins %s line on the %s", g.weight, other.weight, side.dir)
		}
	}
}

func (v *LineValidator) lookup(char rune) (glyph, bool) {
	if g, ok := glyphs[char]; ok {
		return g, true
	}
	if v.allowASCII {
		if g, ok := asciiGlyphs[char]; ok {
			return g, true
		}
	}
	return glyph{}, false
}

// getChar safely gets a character from the grid.
func getChar(grid [][]rune, x, y int) rune {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return ' '
	}
	return grid[y][x]
}

// addError adds a validation error.
func (v *LineValidator) addError(x, y int, char rune, context, format string, args ...any) {
	v.errors = append(v.errors, ValidationError{
		X:       x,
		Y:       y,
		Char:    char,
		Context: context,
		Message: fmt.Sprintf(format, args...),
	})
}

// String formats validation errors as a string.
func (e ValidationError) String() string {
	return fmt.Sprintf("(%d,%d) '%c' [%s]: %s", e.X, e.Y, e.Char, e.Context, e.Message)
}
