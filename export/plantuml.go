package export

import (
	"fmt"
	"strings"

	"umlbox/diagram"
	"umlbox/plantuml"
)

// PlantUMLExporter exports diagrams to PlantUML syntax.
//
// A diagram without title or edges is written in the subset the plantuml
// package parses, so exporting and re-importing yields the same nodes.
type PlantUMLExporter struct{}

// NewPlantUMLExporter creates a new PlantUML exporter
func NewPlantUMLExporter() *PlantUMLExporter {
	return &PlantUMLExporter{}
}

// Export converts the diagram to PlantUML syntax
func (e *PlantUMLExporter) Export(d *diagram.Diagram) (string, error) {
	if d == nil {
		return "", fmt.Errorf("diagram is nil")
	}

	var sb strings.Builder
	sb.WriteString("@startuml\n")

	if d.Title != "" {
		fmt.Fprintf(&sb, "title %s\n", d.Title)
	}

	for _, node := range d.Nodes {
		if !node.Type.IsComponent() {
			return "", fmt.Errorf("node %q: unsupported node kind %q", node.ID, node.Type.Kind)
		}
		if node.Type.Name == "" || node.ID == "" {
			return "", fmt.Errorf("node %q: PlantUML cannot express an empty name or id", node.ID)
		}
		sb.WriteString(e.componentLine(node))
		sb.WriteByte('\n')
	}

	if len(d.Edges) > 0 {
		sb.WriteByte('\n')
	}
	for _, edge := range d.Edges {
		sb.WriteString(e.edgeLine(edge))
		sb.WriteByte('\n')
	}

	sb.WriteString("@enduml\n")
	return sb.String(), nil
}

// componentLine writes the shortest declaration that maps back to node.
func (e *PlantUMLExporter) componentLine(node diagram.Node) string {
	name := node.Type.Name
	if node.ID == name && plantuml.IsIdentifier(name) {
		return "component " + name
	}
	return fmt.Sprintf("component %s as %s", quoteName(name), e.idRef(node.ID))
}

func (e *PlantUMLExporter) idRef(id string) string {
	if plantuml.IsIdentifier(id) {
		return id
	}
	return quoteName(id)
}

func (e *PlantUMLExporter) edgeLine(edge diagram.Edge) string {
	arrow := headFrom(edge.StyleFrom) + "--" + headTo(edge.StyleTo)
	line := fmt.Sprintf("%s %s %s", e.idRef(edge.FromID), arrow, e.idRef(edge.ToID))
	if edge.Label != "" {
		line += " : " + edge.Label
	}
	return line
}

// quoteName delimits a name with double quotes, or with brackets when the
// name itself contains a double quote.
func quoteName(name string) string {
	if strings.Contains(name, `"`) && !strings.Contains(name, "]") {
		return "[" + name + "]"
	}
	return `"` + name + `"`
}

func headFrom(s diagram.EdgeStyle) string {
	switch s {
	case diagram.EdgeArrow:
		return "<"
	case diagram.EdgeOpenArrow:
		return "<|"
	default:
		return ""
	}
}

func headTo(s diagram.EdgeStyle) string {
	switch s {
	case diagram.EdgeArrow:
		return ">"
	case diagram.EdgeOpenArrow:
		return "|>"
	default:
		return ""
	}
}

func (e *PlantUMLExporter) Extension() string {
	return ".puml"
}
