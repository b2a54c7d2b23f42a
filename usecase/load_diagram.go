// Package usecase sequences loading a source file, parsing it and presenting
// the resulting diagram.
package usecase

import (
	"errors"
	"fmt"
	"log/slog"

	"umlbox/diagram"
	"umlbox/files"
	"umlbox/importer"
	"umlbox/presenter"
)

// ErrorKind tells which step of loading failed.
type ErrorKind int

const (
	// KindFileLoad means the source could not be read.
	KindFileLoad ErrorKind = iota
	// KindParse means the source was read but is not a valid diagram.
	KindParse
)

func (k ErrorKind) String() string {
	switch k {
	case KindFileLoad:
		return "file load"
	case KindParse:
		return "parse"
	default:
		return "unknown"
	}
}

// MsgFileNotFound is the LoadError message for a missing source file.
const MsgFileNotFound = "given file does not exist"

// LoadError is returned by LoadDiagram for every failure.
type LoadError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// LoadDiagram reads a diagram source and parses it.
type LoadDiagram struct {
	files    files.FileRepository
	diagrams importer.DiagramRepository
	logger   *slog.Logger
}

// NewLoadDiagram creates the use case. A nil logger discards log output.
func NewLoadDiagram(fileRepo files.FileRepository, diagramRepo importer.DiagramRepository, logger *slog.Logger) *LoadDiagram {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LoadDiagram{files: fileRepo, diagrams: diagramRepo, logger: logger}
}

// Execute loads and parses the diagram at path.
func (u *LoadDiagram) Execute(path string) (*diagram.Diagram, error) {
	u.logger.Debug("Loading diagram", "path", path)

	content, err := u.files.GetFileContent(path)
	if err != nil {
		return nil, fileLoadError(err)
	}

	return u.Parse(content)
}

// Parse parses already loaded source text.
func (u *LoadDiagram) Parse(content string) (*diagram.Diagram, error) {
	d, err := u.diagrams.ParseFromContent(content)
	if err != nil {
		return nil, &LoadError{Kind: KindParse, Message: err.Error(), Err: err}
	}

	for _, id := range d.DuplicateIDs() {
		u.logger.Warn("Duplicate node id", "id", id)
	}
	u.logger.Debug("Parsed diagram", "nodes", len(d.Nodes), "edges", len(d.Edges))
	return d, nil
}

// Render loads the diagram at path and draws it with p.
func (u *LoadDiagram) Render(path string, p *presenter.Presenter) (presenter.ViewModel, error) {
	d, err := u.Execute(path)
	if err != nil {
		return presenter.EmptyViewModel(), err
	}
	return p.ProcessDiagram(d), nil
}

func fileLoadError(err error) *LoadError {
	if errors.Is(err, files.ErrFileNotFound) {
		return &LoadError{Kind: KindFileLoad, Message: MsgFileNotFound, Err: err}
	}

	msg := err.Error()
	var unknown *files.UnknownError
	if errors.As(err, &unknown) {
		msg = unknown.Err.Error()
	}
	return &LoadError{Kind: KindFileLoad, Message: msg, Err: err}
}
