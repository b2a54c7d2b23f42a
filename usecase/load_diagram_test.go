package usecase

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umlbox/diagram"
	"umlbox/files"
	"umlbox/importer"
	"umlbox/plantuml"
	"umlbox/presenter"
)

type fileRepositoryStub struct {
	content string
	err     error
}

func (s fileRepositoryStub) GetFileContent(string) (string, error) {
	return s.content, s.err
}

type diagramRepositoryStub struct {
	t      *testing.T
	result *diagram.Diagram
	err    error
	called bool
}

func (s *diagramRepositoryStub) ParseFromContent(string) (*diagram.Diagram, error) {
	if s.result == nil && s.err == nil {
		s.t.Fatal("unexpected call to ParseFromContent")
	}
	s.called = true
	return s.result, s.err
}

func TestExecute_FileLoadFailure(t *testing.T) {
	tests := []struct {
		name    string
		fileErr error
		message string
	}{
		{
			name:    "Unknown error",
			fileErr: &files.UnknownError{Path: "some_file.puml", Err: errors.New("some unknown error")},
			message: "some unknown error",
		},
		{
			name:    "Missing file",
			fileErr: files.ErrFileNotFound,
			message: MsgFileNotFound,
		},
		{
			name:    "Untyped error",
			fileErr: errors.New("disk on fire"),
			message: "disk on fire",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diagrams := &diagramRepositoryStub{t: t}
			u := NewLoadDiagram(fileRepositoryStub{err: tt.fileErr}, diagrams, nil)

			d, err := u.Execute("some_file.puml")

			assert.Nil(t, d)
			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, KindFileLoad, loadErr.Kind)
			assert.Equal(t, tt.message, loadErr.Message)
			assert.ErrorIs(t, err, tt.fileErr)
			assert.False(t, diagrams.called)
		})
	}
}

func TestExecute_ParseFailure(t *testing.T) {
	parseErr := errors.New("some unknown error")
	diagrams := &diagramRepositoryStub{t: t, err: parseErr}
	u := NewLoadDiagram(fileRepositoryStub{content: "Some content"}, diagrams, nil)

	_, err := u.Execute("invalid_content_file.puml")

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, KindParse, loadErr.Kind)
	assert.Equal(t, "some unknown error", loadErr.Message)
	assert.Equal(t, "parse error: some unknown error", err.Error())
	assert.ErrorIs(t, err, parseErr)
}

func TestExecute_Success(t *testing.T) {
	want := diagram.New("", nil, nil)
	diagrams := &diagramRepositoryStub{t: t, result: want}
	u := NewLoadDiagram(fileRepositoryStub{content: "Valid content"}, diagrams, nil)

	got, err := u.Execute("valid_content_file.puml")

	require.NoError(t, err)
	assert.Same(t, want, got)
}

func TestExecute_WarnsOnDuplicateIDs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))
	d := diagram.New("", []diagram.Node{
		diagram.NewNode("a", diagram.Component("A")),
		diagram.NewNode("a", diagram.Component("Other A")),
	}, nil)
	u := NewLoadDiagram(fileRepositoryStub{}, &diagramRepositoryStub{t: t, result: d}, logger)

	_, err := u.Execute("dup.puml")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Duplicate node id")
	assert.Contains(t, buf.String(), "id=a")
}

func TestRender_EndToEnd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "single.puml")
	require.NoError(t, os.WriteFile(path, []byte("@startuml\ncomponent SomeComponent\n@enduml\n"), 0o644))

	u := NewLoadDiagram(files.NewLocalFileRepository(), importer.NewPlantUMLImporter(), nil)
	vm, err := u.Render(path, presenter.New())

	require.NoError(t, err)
	assert.Equal(t, "│  SomeComponent  │", string(vm.Cells()[3]))
}

func TestRender_ParseErrorKeepsSyntaxDetails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.puml")
	require.NoError(t, os.WriteFile(path, []byte("component A\n"), 0o644))

	u := NewLoadDiagram(files.NewLocalFileRepository(), importer.NewPlantUMLImporter(), nil)
	vm, err := u.Render(path, presenter.New())

	assert.True(t, vm.IsEmpty())
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, KindParse, loadErr.Kind)
	var parseErr *plantuml.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestRender_MissingFile(t *testing.T) {
	u := NewLoadDiagram(files.NewLocalFileRepository(), importer.NewPlantUMLImporter(), nil)

	_, err := u.Render(filepath.Join(t.TempDir(), "nope.puml"), presenter.New())

	assert.EqualError(t, err, "file load error: given file does not exist")
}
