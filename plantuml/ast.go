package plantuml

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in runes
	Offset int // 0-based byte offset into source
}

// ElementKind discriminates the Element tagged union.
type ElementKind string

const (
	ElementComponent ElementKind = "component"
)

// Element is one declaration inside a diagram. Kind determines which fields are
// meaningful; a component uses Name and, optionally, Alias.
type Element struct {
	Kind  ElementKind
	Name  string
	Alias string // empty when the declaration has no alias
	Pos   Position
}

// NewComponent returns a component element. Pass an empty alias for none.
func NewComponent(name, alias string) Element {
	return Element{Kind: ElementComponent, Name: name, Alias: alias}
}

// HasAlias reports whether the declaration used "as <alias>".
func (e Element) HasAlias() bool {
	return e.Alias != ""
}

// Diagram is the parsed form of a PlantUML source: its declarations in source order.
type Diagram struct {
	Elements []Element
}

// Components returns the component declarations in source order.
func (d *Diagram) Components() []Element {
	var out []Element
	for _, e := range d.Elements {
		if e.Kind == ElementComponent {
			out = append(out, e)
		}
	}
	return out
}
