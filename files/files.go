// Package files provides access to diagram sources on the local file system.
package files

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrFileNotFound is returned when the requested file does not exist.
var ErrFileNotFound = errors.New("file does not exist")

// UnknownError wraps any other failure to produce the file's text.
type UnknownError struct {
	Path string
	Err  error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}

// ErrInvalidUTF8 is wrapped in an UnknownError when the content is not text.
var ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")

// FileRepository returns the text content of a file.
type FileRepository interface {
	GetFileContent(path string) (string, error)
}

// LocalFileRepository reads files from the local file system.
type LocalFileRepository struct {
	fsys fs.FS
}

// NewLocalFileRepository reads paths as given, relative to the working directory.
func NewLocalFileRepository() *LocalFileRepository {
	return &LocalFileRepository{}
}

// NewFSRepository reads paths from fsys instead of the operating system.
func NewFSRepository(fsys fs.FS) *LocalFileRepository {
	return &LocalFileRepository{fsys: fsys}
}

// GetFileContent returns the file's content as NFC-normalised UTF-8 without
// a leading byte order mark. UTF-16 content is accepted when it starts with a
// byte order mark. A missing file yields ErrFileNotFound; any other failure
// yields an *UnknownError.
func (r *LocalFileRepository) GetFileContent(path string) (string, error) {
	raw, err := r.readFile(path)
	if err != nil {
		return "", err
	}
	if !hasUTF16BOM(raw) && !utf8.Valid(raw) {
		return "", &UnknownError{Path: path, Err: ErrInvalidUTF8}
	}

	text, err := Decode(raw)
	if err != nil {
		return "", &UnknownError{Path: path, Err: err}
	}
	return text, nil
}

// GetRawContent returns the file's bytes unchanged, for callers that write
// the document back. The content must be UTF-8; errors are as for
// GetFileContent.
func (r *LocalFileRepository) GetRawContent(path string) (string, error) {
	raw, err := r.readFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(raw) {
		return "", &UnknownError{Path: path, Err: ErrInvalidUTF8}
	}
	return string(raw), nil
}

func (r *LocalFileRepository) readFile(path string) ([]byte, error) {
	raw, err := r.read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFileNotFound
		}
		return nil, &UnknownError{Path: path, Err: err}
	}
	return raw, nil
}

func (r *LocalFileRepository) read(path string) ([]byte, error) {
	if r.fsys != nil {
		return fs.ReadFile(r.fsys, path)
	}
	return os.ReadFile(path)
}

func hasUTF16BOM(raw []byte) bool {
	return bytes.HasPrefix(raw, []byte{0xFE, 0xFF}) || bytes.HasPrefix(raw, []byte{0xFF, 0xFE})
}

// Decode normalises the text to NFC, so a composed character always occupies
// a single grid cell. A UTF-8 byte order mark is dropped and a UTF-16 one
// switches decoding to UTF-16. Invalid UTF-8 is not rejected here; it
// decodes to U+FFFD.
func Decode(raw []byte) (string, error) {
	t := transform.Chain(unicode.BOMOverride(unicode.UTF8.NewDecoder()), norm.NFC)
	out, _, err := transform.Bytes(t, raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
