// Package diagram contains the language-agnostic diagram model produced by importers
// and consumed by presenters and exporters.
package diagram

// NodeKind identifies which variant a NodeType holds.
type NodeKind string

const (
	// NodeKindComponent is a named component box.
	NodeKindComponent NodeKind = "component"
)

// NodeType describes what a node represents. Only components exist today.
type NodeType struct {
	Kind NodeKind `json:"kind"`
	Name string   `json:"name"`
}

// Component returns the component node type with the given display name.
func Component(name string) NodeType {
	return NodeType{Kind: NodeKindComponent, Name: name}
}

// IsComponent reports whether t is a component.
func (t NodeType) IsComponent() bool {
	return t.Kind == NodeKindComponent
}

// Node represents a vertex in the diagram.
type Node struct {
	ID   string   `json:"id"`
	Type NodeType `json:"type"`
}

// NewNode creates a node.
func NewNode(id string, t NodeType) Node {
	return Node{ID: id, Type: t}
}

// DisplayName returns the text a presenter shows for the node.
func (n Node) DisplayName() string {
	return n.Type.Name
}

// EdgeStyle describes how one end of an edge is drawn.
type EdgeStyle int

const (
	EdgeSolid     EdgeStyle = iota // ---
	EdgeArrow                      // -->
	EdgeOpenArrow                  // --<
)

// String returns the string representation of an EdgeStyle.
func (s EdgeStyle) String() string {
	switch s {
	case EdgeSolid:
		return "solid"
	case EdgeArrow:
		return "arrow"
	case EdgeOpenArrow:
		return "open-arrow"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s EdgeStyle) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Edge connects two nodes by id. An empty Label means no label.
type Edge struct {
	FromID    string    `json:"from"`
	ToID      string    `json:"to"`
	StyleFrom EdgeStyle `json:"style_from"`
	StyleTo   EdgeStyle `json:"style_to"`
	Label     string    `json:"label,omitempty"`
}

// Diagram is a complete diagram. An empty Title means the diagram is untitled.
type Diagram struct {
	Title string `json:"title,omitempty"`
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// New creates a diagram.
func New(title string, nodes []Node, edges []Edge) *Diagram {
	return &Diagram{Title: title, Nodes: nodes, Edges: edges}
}

// NodeByID returns the first node with the given id.
func (d *Diagram) NodeByID(id string) (Node, bool) {
	for _, n := range d.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// DuplicateIDs returns every node id that appears more than once, in order of
// its second appearance. Nothing in the import path rejects duplicates.
func (d *Diagram) DuplicateIDs() []string {
	seen := make(map[string]int, len(d.Nodes))
	var dups []string
	for _, n := range d.Nodes {
		seen[n.ID]++
		if seen[n.ID] == 2 {
			dups = append(dups, n.ID)
		}
	}
	return dups
}
