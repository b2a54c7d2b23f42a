package render

import (
	"strings"
	"unicode/utf8"

	"umlbox/canvas"
	"umlbox/core"
)

// Text is a leaf element holding possibly multi-line content.
type Text struct {
	position core.Position
	content  string
}

// NewText creates a text element anchored at position.
func NewText(position core.Position, content string) *Text {
	return &Text{position: position, content: content}
}

// Content returns the text as given.
func (t *Text) Content() string {
	return t.content
}

// Draw writes each character row-major starting at the anchor, one rune per column.
func (t *Text) Draw(g *canvas.Grid) {
	for y, line := range Lines(t.content) {
		x := 0
		for _, ch := range line {
			g.PutChar(ch, t.position.Add(core.NewPosition(x, y)))
			x++
		}
	}
}

// Position returns the anchor.
func (t *Text) Position() core.Position {
	return t.position
}

// Width returns the rune length of the longest line.
func (t *Text) Width() int {
	width := 0
	for _, line := range Lines(t.content) {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}
	return width
}

// Height returns the number of lines.
func (t *Text) Height() int {
	return len(Lines(t.content))
}

// Move replaces the anchor.
func (t *Text) Move(p core.Position) {
	t.position = p
}

// Lines splits s into lines the way Text measures it: empty content has no
// lines, a trailing newline does not start a new line, and a "\r" before a
// newline is dropped.
func Lines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.TrimSuffix(s, "\n")
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
