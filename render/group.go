package render

import (
	"umlbox/canvas"
	"umlbox/core"
)

// Group is a composite of child elements drawn in insertion order.
//
// Children share a common origin unless moved individually, so the group's
// size is the largest child size rather than the union of child boxes.
type Group struct {
	components []Element
}

// NewGroup creates a group owning the given children.
func NewGroup(components ...Element) *Group {
	return &Group{components: components}
}

// Add appends a child; it is drawn after the existing ones.
func (g *Group) Add(e Element) {
	g.components = append(g.components, e)
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.components)
}

// Children returns the children in draw order.
func (g *Group) Children() []Element {
	return g.components
}

// Draw draws every child, earliest added first.
func (g *Group) Draw(grid *canvas.Grid) {
	for _, c := range g.components {
		c.Draw(grid)
	}
}

// Position returns the smallest child position in row-major order, or the
// origin for an empty group.
func (g *Group) Position() core.Position {
	if len(g.components) == 0 {
		return core.Position{}
	}
	top := g.components[0].Position()
	for _, c := range g.components[1:] {
		if p := c.Position(); p.Before(top) {
			top = p
		}
	}
	return top
}

// Width returns the widest child's width.
func (g *Group) Width() int {
	width := 0
	for _, c := range g.components {
		width = max(width, c.Width())
	}
	return width
}

// Height returns the tallest child's height.
func (g *Group) Height() int {
	height := 0
	for _, c := range g.components {
		height = max(height, c.Height())
	}
	return height
}

// Move shifts every child by the same delta so that the group's position
// becomes p, preserving the children's relative offsets.
func (g *Group) Move(p core.Position) {
	delta := p.Sub(g.Position())
	for _, c := range g.components {
		c.Move(c.Position().Add(delta))
	}
}
