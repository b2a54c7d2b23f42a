package importer

import (
	"fmt"
	"strings"

	"umlbox/diagram"
	"umlbox/plantuml"
)

// PlantUMLImporter reads PlantUML component diagrams.
type PlantUMLImporter struct {
	parser plantuml.Parser
}

// NewPlantUMLImporter creates an importer backed by plantuml.DefaultParser.
func NewPlantUMLImporter() *PlantUMLImporter {
	return NewPlantUMLImporterWithParser(plantuml.DefaultParser)
}

// NewPlantUMLImporterWithParser creates an importer backed by parser.
func NewPlantUMLImporterWithParser(parser plantuml.Parser) *PlantUMLImporter {
	return &PlantUMLImporter{parser: parser}
}

// ParseFromContent parses content and maps the declarations onto a diagram.
// Parse failures are wrapped, so the parser's typed errors stay reachable
// through errors.As.
func (p *PlantUMLImporter) ParseFromContent(content string) (*diagram.Diagram, error) {
	parsed, err := p.parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parsing PlantUML: %w", err)
	}
	return ToDiagram(parsed), nil
}

func (p *PlantUMLImporter) Name() string {
	return "PlantUML"
}

// Recognizes reports whether content starts with @startuml.
func (p *PlantUMLImporter) Recognizes(content string) bool {
	return strings.HasPrefix(strings.TrimSpace(content), "@startuml")
}

func (p *PlantUMLImporter) Extensions() []string {
	return []string{".puml", ".plantuml", ".pu", ".iuml"}
}

func (p *PlantUMLImporter) Languages() []string {
	return []string{"plantuml", "puml", "uml"}
}
