// Package render implements the drawable element tree that is painted onto a
// canvas.Grid: text leaves, bordered decorators and groups.
package render

import (
	"umlbox/canvas"
	"umlbox/core"
)

// Element is anything that can paint itself onto a grid.
//
// Implementations are Text, Bordered and Group. Each element is owned by exactly
// one parent; the tree is built for a single draw pass and thrown away after.
// Width and Height are computed from the current content on every call.
type Element interface {
	// Draw paints the element, and any descendants, onto g. Writing to g is the
	// only side effect an element may have.
	Draw(g *canvas.Grid)

	// Position returns the element's top-left anchor.
	Position() core.Position

	// Width returns the element's bounding box width in cells.
	Width() int

	// Height returns the element's bounding box height in cells.
	Height() int

	// Move relocates the element so that its anchor is p.
	Move(p core.Position)
}
