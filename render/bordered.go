package render

import (
	"umlbox/canvas"
	"umlbox/core"
)

// Bordered decorates another element with padding and a one-cell border.
type Bordered struct {
	wrapped           Element
	position          core.Position
	horizontalPadding int
	verticalPadding   int
	fillChar          rune
	style             BoxStyle
}

// NewBordered wraps an element. Paddings must be non-negative. The rounded
// DefaultBoxStyle is used until SetStyle is called.
func NewBordered(wrapped Element, position core.Position, horizontalPadding, verticalPadding int, fillChar rune) *Bordered {
	return &Bordered{
		wrapped:           wrapped,
		position:          position,
		horizontalPadding: horizontalPadding,
		verticalPadding:   verticalPadding,
		fillChar:          fillChar,
		style:             DefaultBoxStyle,
	}
}

// SetStyle changes the border characters.
func (b *Bordered) SetStyle(style BoxStyle) {
	b.style = style
}

// Wrapped returns the decorated element.
func (b *Bordered) Wrapped() Element {
	return b.wrapped
}

// Draw paints the border and the padding fill over the whole bounding box, then
// moves the wrapped element inside the padding and lets it draw itself.
func (b *Bordered) Draw(g *canvas.Grid) {
	origin := b.position
	width := b.Width()
	height := b.Height()

	left, top := origin.X, origin.Y
	right, bottom := origin.X+width-1, origin.Y+height-1

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			g.PutChar(b.borderChar(x, y, left, top, right, bottom), core.NewPosition(x, y))
		}
	}

	contentStart := origin.Add(core.NewPosition(b.horizontalPadding+1, b.verticalPadding+1))
	b.wrapped.Move(contentStart)
	b.wrapped.Draw(g)
}

// borderChar picks the character for one cell, corners first.
func (b *Bordered) borderChar(x, y, left, top, right, bottom int) rune {
	switch {
	case x == left && y == top:
		return b.style.TopLeft
	case x == left && y == bottom:
		return b.style.BottomLeft
	case x == right && y == top:
		return b.style.TopRight
	case x == right && y == bottom:
		return b.style.BottomRight
	case y == top || y == bottom:
		return b.style.Horizontal
	case x == left || x == right:
		return b.style.Vertical
	default:
		return b.fillChar
	}
}

// Position returns the top-left border corner.
func (b *Bordered) Position() core.Position {
	return b.position
}

// Width returns the wrapped width plus padding on both sides plus the border.
func (b *Bordered) Width() int {
	return b.wrapped.Width() + 2*b.horizontalPadding + 2
}

// Height returns the wrapped height plus padding on both sides plus the border.
func (b *Bordered) Height() int {
	return b.wrapped.Height() + 2*b.verticalPadding + 2
}

// Move replaces the anchor. The wrapped element is repositioned on the next Draw.
func (b *Bordered) Move(p core.Position) {
	b.position = p
}
