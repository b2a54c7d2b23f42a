package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umlbox/canvas"
	"umlbox/core"
	"umlbox/render"
)

func TestLineValidator_BasicLines(t *testing.T) {
	tests := []struct {
		name       string
		diagram    string
		wantErrors int
		errMsg     string
	}{
		{
			name:    "valid horizontal line",
			diagram: "─────",
		},
		{
			name:    "valid vertical line",
			diagram: "│\n│\n│",
		},
		{
			name:    "text between lines",
			diagram: "──ab──\n\n│x│",
		},
		{
			name:       "broken horizontal line",
			diagram:    "──│──",
			wantErrors: 2,
			errMsg:     "─ cannot connect to │ on the east",
		},
		{
			name:       "broken vertical line",
			diagram:    "│\n─\n│",
			wantErrors: 2,
			errMsg:     "│ cannot connect to ─ on the south",
		},
		{
			name:       "corner facing the wrong way",
			diagram:    "╭╭",
			wantErrors: 1,
			errMsg:     "╭ cannot connect to ╭ on the east",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := NewLineValidator().Validate(tt.diagram)

			require.Len(t, errs, tt.wantErrors, "errors: %v", errs)
			if tt.errMsg != "" {
				assert.Equal(t, tt.errMsg, errs[0].Message)
			}
		})
	}
}

func TestLineValidator_RenderedBoxes(t *testing.T) {
	for _, name := range render.BoxStyleNames() {
		t.Run(name, func(t *testing.T) {
			style, err := render.LookupBoxStyle(name)
			require.NoError(t, err)

			g := canvas.NewGrid(' ')
			b := render.NewBordered(render.NewText(core.Position{}, "Some\nmultiline\ntext"), core.Position{}, 2, 1, ' ')
			b.SetStyle(style)
			b.Draw(g)

			v := NewLineValidator()
			v.SetStrictMode(true)
			assert.Empty(t, v.ValidateCells(g.Cells()))
		})
	}
}

func TestLineValidator_OverlappingBoxes(t *testing.T) {
	diagram := strings.Join([]string{
		"╭─╮────╮",
		"│S│nger│",
		"╰─╯────╯",
	}, "\n")

	errs := NewLineValidator().Validate(diagram)

	require.Len(t, errs, 2)
	assert.Equal(t, 3, errs[0].X)
	assert.Equal(t, 0, errs[0].Y)
	assert.Equal(t, "west=╮", errs[0].Context)
	assert.Equal(t, 3, errs[1].X)
	assert.Equal(t, 2, errs[1].Y)
}

func TestLineValidator_AdjacentBoxes(t *testing.T) {
	diagram := "╭─╮╭─╮\n│A││B│\n╰─╯╰─╯"
	assert.Empty(t, NewLineValidator().Validate(diagram))
}

func TestLineValidator_StrictMode(t *testing.T) {
	diagram := "╭──━━╮"

	assert.Empty(t, NewLineValidator().Validate(diagram))

	v := NewLineValidator()
	v.SetStrictMode(true)
	errs := v.Validate(diagram)

	require.Len(t, errs, 4)
	assert.Equal(t, "light line joins heavy line on the east", errs[0].Message)
	assert.Equal(t, "heavy line joins light line on the west", errs[1].Message)
}

func TestLineValidator_ASCII(t *testing.T) {
	diagram := "+--+\n|ok|\n+--+\n\n-|"

	errs := NewLineValidator().Validate(diagram)
	require.Len(t, errs, 1)
	assert.Equal(t, "- cannot connect to | on the east", errs[0].Message)

	v := NewLineValidator()
	v.SetAllowASCII(false)
	assert.Empty(t, v.Validate(diagram))
}

func TestValidationError_String(t *testing.T) {
	e := ValidationError{X: 1, Y: 2, Char: '─', Context: "east=│", Message: "broken"}
	assert.Equal(t, "(1,2) '─' [east=│]: broken", e.String())
}

func TestBoxStyleGlyphs(t *testing.T) {
	for _, name := range render.BoxStyleNames() {
		_, ok := styleWeights[name]
		assert.True(t, ok, "box style %q needs a line weight", name)
	}

	tests := []struct {
		char rune
		want glyph
	}{
		{'╭', glyph{east | south, light}},
		{'┘', glyph{west | north, light}},
		{'━', glyph{east | west, heavy}},
		{'║', glyph{north | south, double}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, glyphs[tt.char], "%c", tt.char)
	}
	assert.Equal(t, glyph{north | east | south | west, ascii}, asciiGlyphs['+'])
	assert.Equal(t, glyph{east | west, ascii}, asciiGlyphs['-'])
}
