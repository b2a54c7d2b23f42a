// Package presenter turns a diagram model into a tree of drawable elements,
// draws it and packages the result as a ViewModel.
package presenter

import (
	"umlbox/canvas"
	"umlbox/core"
	"umlbox/diagram"
	"umlbox/layout"
	"umlbox/render"
)

// Defaults for the box drawn around every node.
const (
	DefaultHorizontalPadding = 2
	DefaultVerticalPadding   = 2
	DefaultFillChar          = ' '
)

// Presenter builds and draws the visual tree for a diagram.
type Presenter struct {
	layout            layout.Layout
	horizontalPadding int
	verticalPadding   int
	fillChar          rune
	style             render.BoxStyle
}

// Option configures a Presenter.
type Option func(*Presenter)

// WithLayout sets the policy used to place nodes before drawing.
func WithLayout(l layout.Layout) Option {
	return func(p *Presenter) {
		if l != nil {
			p.layout = l
		}
	}
}

// WithPadding sets the padding between a node's name and its border.
// Negative values are clamped to zero.
func WithPadding(horizontal, vertical int) Option {
	return func(p *Presenter) {
		p.horizontalPadding = max(horizontal, 0)
		p.verticalPadding = max(vertical, 0)
	}
}

// WithFillChar sets the character painted inside each box.
func WithFillChar(fill rune) Option {
	return func(p *Presenter) {
		p.fillChar = fill
	}
}

// WithBoxStyle sets the border glyphs.
func WithBoxStyle(style render.BoxStyle) Option {
	return func(p *Presenter) {
		p.style = style
	}
}

// New creates a presenter. Without options every node is drawn at the origin
// with a padding of 2 and a blank interior.
func New(opts ...Option) *Presenter {
	p := &Presenter{
		layout:            layout.Overlap{},
		horizontalPadding: DefaultHorizontalPadding,
		verticalPadding:   DefaultVerticalPadding,
		fillChar:          DefaultFillChar,
		style:             render.DefaultBoxStyle,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ProcessDiagram draws the diagram onto a fresh grid and returns the result.
func (p *Presenter) ProcessDiagram(d *diagram.Diagram) ViewModel {
	grid := canvas.NewGrid(' ')
	p.Build(d).Draw(grid)
	return NewViewModel(grid.Cells())
}

// Build returns the visual tree for d without drawing it: one bordered name
// per node, in node order, placed by the configured layout.
func (p *Presenter) Build(d *diagram.Diagram) *render.Group {
	group := render.NewGroup()
	if d == nil {
		return group
	}

	for _, node := range d.Nodes {
		group.Add(p.nodeElement(node))
	}
	p.layout.Arrange(group.Children())
	return group
}

func (p *Presenter) nodeElement(node diagram.Node) render.Element {
	switch node.Type.Kind {
	case diagram.NodeKindComponent:
		box := render.NewBordered(
			render.NewText(core.Position{}, node.Type.Name),
			core.Position{},
			p.horizontalPadding,
			p.verticalPadding,
			p.fillChar,
		)
		box.SetStyle(p.style)
		return box
	default:
		return render.NewText(core.Position{}, node.DisplayName())
	}
}
