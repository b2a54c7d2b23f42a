package importer

import (
	"umlbox/diagram"
	"umlbox/plantuml"
)

// ToDiagram maps parsed declarations onto the diagram model. Node order follows
// declaration order. The grammar has no title or connection syntax yet, so the
// result is always untitled and edgeless. Duplicate ids are passed through as is.
func ToDiagram(parsed *plantuml.Diagram) *diagram.Diagram {
	d := &diagram.Diagram{
		Nodes: []diagram.Node{},
		Edges: []diagram.Edge{},
	}
	if parsed == nil {
		return d
	}

	for _, elem := range parsed.Elements {
		if node, ok := ToNode(elem); ok {
			d.Nodes = append(d.Nodes, node)
		}
	}
	return d
}

// ToNode maps a single declaration. A component's id is its alias when it has
// one and its name otherwise.
func ToNode(elem plantuml.Element) (diagram.Node, bool) {
	switch elem.Kind {
	case plantuml.ElementComponent:
		id := elem.Name
		if elem.HasAlias() {
			id = elem.Alias
		}
		return diagram.NewNode(id, diagram.Component(elem.Name)), true
	default:
		return diagram.Node{}, false
	}
}
