package export

import (
	"fmt"

	"umlbox/diagram"
	"umlbox/presenter"
)

// ASCIIExporter exports diagrams to box-drawing art
type ASCIIExporter struct {
	presenter *presenter.Presenter
}

// NewASCIIExporter creates an ASCII exporter drawing with p, or with the
// default presenter when p is nil.
func NewASCIIExporter(p *presenter.Presenter) *ASCIIExporter {
	if p == nil {
		p = presenter.New()
	}
	return &ASCIIExporter{presenter: p}
}

// Export draws the diagram
func (e *ASCIIExporter) Export(d *diagram.Diagram) (string, error) {
	if d == nil {
		return "", fmt.Errorf("diagram is nil")
	}
	return e.presenter.ProcessDiagram(d).String(), nil
}

// Extension returns ".txt".
func (e *ASCIIExporter) Extension() string {
	return ".txt"
}
