// Package export writes diagrams in text-based formats.
package export

import (
	"fmt"
	"strings"

	"umlbox/diagram"
)

// Format names an export format.
type Format string

const (
	FormatASCII    Format = "ascii"
	FormatPlantUML Format = "plantuml"
	FormatJSON     Format = "json"
)

// Exporter converts a diagram to one format.
type Exporter interface {
	// Export converts a diagram. A nil diagram is an error.
	Export(d *diagram.Diagram) (string, error)
	// Extension is the file extension for the output, with the leading dot.
	Extension() string
}

type formatInfo struct {
	aliases     []string
	description string
	create      func() Exporter
}

// formatOrder lists the formats in the order they are shown to users.
var formatOrder = []Format{FormatASCII, FormatPlantUML, FormatJSON}

var formats = map[Format]formatInfo{
	FormatASCII: {
		aliases:     []string{"text", "txt"},
		description: "Box-drawing art (umlbox native format)",
		create:      func() Exporter { return NewASCIIExporter(nil) },
	},
	FormatPlantUML: {
		aliases:     []string{"puml"},
		description: "PlantUML component diagram syntax",
		create:      func() Exporter { return NewPlantUMLExporter() },
	},
	FormatJSON: {
		description: "Diagram model as JSON",
		create:      func() Exporter { return NewJSONExporter() },
	},
}

// NewExporter creates an exporter for format. The ASCII exporter draws with
// the default presenter; use NewASCIIExporter to configure it.
func NewExporter(format Format) (Exporter, error) {
	info, ok := formats[format]
	if !ok {
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
	return info.create(), nil
}

// ParseFormat resolves a format name or alias, ignoring case.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(s)
	for _, f := range formatOrder {
		if s == string(f) {
			return f, nil
		}
		for _, alias := range formats[f].aliases {
			if s == alias {
				return f, nil
			}
		}
	}
	return "", fmt.Errorf("unknown format: %q", s)
}

// GetAvailableFormats returns every format in display order.
func GetAvailableFormats() []Format {
	return append([]Format(nil), formatOrder...)
}

// GetFormatDescriptions returns a one-line description per format.
func GetFormatDescriptions() map[Format]string {
	descriptions := make(map[Format]string, len(formats))
	for f, info := range formats {
		descriptions[f] = info.description
	}
	return descriptions
}
