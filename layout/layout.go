// Package layout provides algorithms for positioning elements in 2D space.
package layout

import (
	"fmt"
	"sort"

	"umlbox/render"
)

// Layout positions a set of elements in place.
type Layout interface {
	// Arrange moves the elements. Element order is preserved.
	Arrange(elements []render.Element)
	// Name returns the name of this layout algorithm.
	Name() string
}

// Default configuration for the grid layout.
const (
	DefaultColumns = 3
	DefaultGap     = 2
)

// Lookup returns the layout registered under name. The grid settings are
// ignored by layouts that do not use them.
func Lookup(name string, columns, gap int) (Layout, error) {
	switch name {
	case "overlap":
		return Overlap{}, nil
	case "grid":
		return NewGrid(columns, gap), nil
	default:
		return nil, fmt.Errorf("unknown layout %q (available: %v)", name, Names())
	}
}

// Names lists the available layout names in alphabetical order.
func Names() []string {
	names := []string{"grid", "overlap"}
	sort.Strings(names)
	return names
}
