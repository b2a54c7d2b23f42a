package layout

import "umlbox/render"

// Overlap leaves every element where it is. Freshly created elements all sit
// at the origin, so they are drawn on top of each other and the last one wins
// wherever they overlap.
type Overlap struct{}

// Arrange does nothing.
func (Overlap) Arrange([]render.Element) {}

// Name returns the name of this layout algorithm.
func (Overlap) Name() string {
	return "overlap"
}
