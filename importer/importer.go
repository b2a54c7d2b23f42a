// Package importer turns diagram description sources into diagram.Diagram values.
package importer

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"umlbox/diagram"
)

// DiagramRepository parses raw source text into a diagram model.
type DiagramRepository interface {
	ParseFromContent(content string) (*diagram.Diagram, error)
}

// Importer is a DiagramRepository for one description language.
type Importer interface {
	DiagramRepository

	// Name is the language name shown to users.
	Name() string

	// Recognizes reports whether content looks like this language. It is a
	// cheap check on the header, not a full parse.
	Recognizes(content string) bool

	// Extensions lists file extensions, lower case with the leading dot.
	Extensions() []string

	// Languages lists the Markdown fence languages, lower case.
	Languages() []string
}

// Registry picks an importer by file extension, fence language or content.
// The first registered importer is the fallback.
type Registry struct {
	importers []Importer
}

// NewRegistry creates a registry of the given importers in priority order,
// or of the PlantUML importer alone when none are given.
func NewRegistry(importers ...Importer) *Registry {
	if len(importers) == 0 {
		importers = []Importer{NewPlantUMLImporter()}
	}
	return &Registry{importers: importers}
}

// ForPath returns the importer that handles the extension of path.
func (r *Registry) ForPath(path string) (Importer, error) {
	ext := strings.ToLower(filepath.Ext(path))
	for _, imp := range r.importers {
		if slices.Contains(imp.Extensions(), ext) {
			return imp, nil
		}
	}
	return nil, fmt.Errorf("no importer for file extension %q", ext)
}

// ForLanguage returns the importer for a Markdown fence language.
func (r *Registry) ForLanguage(lang string) (Importer, error) {
	lang = strings.ToLower(lang)
	for _, imp := range r.importers {
		if slices.Contains(imp.Languages(), lang) {
			return imp, nil
		}
	}
	return nil, fmt.Errorf("no importer for language %q (available: %s)", lang, strings.Join(r.Names(), ", "))
}

// ParseFromContent parses content with the first importer that recognizes
// it. Unrecognized content goes to the fallback importer so that its parser
// reports what is wrong.
func (r *Registry) ParseFromContent(content string) (*diagram.Diagram, error) {
	for _, imp := range r.importers {
		if imp.Recognizes(content) {
			return imp.ParseFromContent(content)
		}
	}
	return r.importers[0].ParseFromContent(content)
}

// Names returns the importer names in priority order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.importers))
	for i, imp := range r.importers {
		names[i] = imp.Name()
	}
	return names
}
