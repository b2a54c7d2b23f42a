package importer

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umlbox/diagram"
	"umlbox/plantuml"
)

// fakeImporter recognizes content starting with its name.
type fakeImporter struct {
	name string
}

func (f fakeImporter) ParseFromContent(string) (*diagram.Diagram, error) {
	return diagram.New(f.name, nil, nil), nil
}

func (f fakeImporter) Name() string { return f.name }

func (f fakeImporter) Recognizes(content string) bool { return strings.HasPrefix(content, f.name) }

func (f fakeImporter) Extensions() []string { return []string{"." + f.name} }

func (f fakeImporter) Languages() []string { return []string{f.name} }

func TestRegistry_ParseFromContent(t *testing.T) {
	r := NewRegistry()

	d, err := r.ParseFromContent("@startuml\ncomponent A\n@enduml")
	require.NoError(t, err)
	assert.Len(t, d.Nodes, 1)

	// Unrecognized content is handed to the PlantUML parser, which explains
	// what is missing.
	_, err = r.ParseFromContent("digraph G {}")
	var parseErr *plantuml.ParseError
	assert.True(t, errors.As(err, &parseErr), "got %v", err)
}

func TestRegistry_ParseFromContentPicksRecognizer(t *testing.T) {
	r := NewRegistry(NewPlantUMLImporter(), fakeImporter{name: "mermaid"})

	d, err := r.ParseFromContent("mermaid graph")
	require.NoError(t, err)
	assert.Equal(t, "mermaid", d.Title)
}

func TestRegistry_ForPath(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		path    string
		wantErr bool
	}{
		{"diagram.puml", false},
		{"diagram.PlantUML", false},
		{"dir/diagram.pu", false},
		{"diagram.txt", true},
		{"diagram", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			imp, err := r.ForPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "PlantUML", imp.Name())
		})
	}
}

func TestRegistry_ForLanguage(t *testing.T) {
	r := NewRegistry(NewPlantUMLImporter(), fakeImporter{name: "mermaid"})

	for _, lang := range []string{"plantuml", "puml", "UML"} {
		imp, err := r.ForLanguage(lang)
		require.NoError(t, err, lang)
		assert.Equal(t, "PlantUML", imp.Name())
	}

	imp, err := r.ForLanguage("mermaid")
	require.NoError(t, err)
	assert.Equal(t, "mermaid", imp.Name())

	_, err = r.ForLanguage("dot")
	assert.EqualError(t, err, `no importer for language "dot" (available: PlantUML, mermaid)`)
}

func TestRegistry_Names(t *testing.T) {
	assert.Equal(t, []string{"PlantUML"}, NewRegistry().Names())
}
