package export

import (
	"encoding/json"
	"fmt"

	"umlbox/diagram"
)

// JSONExporter writes the diagram model as indented JSON.
type JSONExporter struct {
	Indent string
}

func NewJSONExporter() *JSONExporter {
	return &JSONExporter{Indent: "  "}
}

func (e *JSONExporter) Export(d *diagram.Diagram) (string, error) {
	if d == nil {
		return "", fmt.Errorf("diagram is nil")
	}
	data, err := json.MarshalIndent(d, "", e.Indent)
	if err != nil {
		return "", fmt.Errorf("encoding diagram: %w", err)
	}
	return string(data) + "\n", nil
}

func (e *JSONExporter) Extension() string {
	return ".json"
}
