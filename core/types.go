// Package core contains the fundamental types used throughout the umlbox renderer.
package core

import "fmt"

// Position represents a 2D coordinate on the character grid.
// Origin (0,0) is top-left, X grows rightward and Y grows downward.
type Position struct {
	X, Y int
}

// NewPosition creates a position at (x, y).
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns p translated by the given offset.
func (p Position) Add(offset Position) Position {
	return Position{X: p.X + offset.X, Y: p.Y + offset.Y}
}

// Sub returns the offset that moves other onto p.
func (p Position) Sub(other Position) Position {
	return Position{X: p.X - other.X, Y: p.Y - other.Y}
}

// Before reports whether p comes before other in row-major order
// (first by row, then by column).
func (p Position) Before(other Position) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// String returns the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
