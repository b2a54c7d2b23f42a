// Package markdown finds PlantUML code blocks in Markdown documents and
// writes their renderings back next to them.
package markdown

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// RenderingInfo is the info string of the fence holding a rendering. A block
// with this info string directly after a diagram block is replaced, not
// duplicated, when the diagram is rendered again.
const RenderingInfo = "text umlbox"

// DiagramBlock represents a diagram code block found in markdown
type DiagramBlock struct {
	Lang        string // plantuml, puml or uml
	Content     string // The diagram content with the fence indentation removed
	StartLine   int    // Line of the opening fence (0-based)
	EndLine     int    // Line of the closing fence
	Indent      string // Indentation before the code fence
	ContentHash string // SHA256 hash of the original content for validation
}

// Scanner finds and extracts diagram blocks from markdown content
type Scanner struct {
	content string
	lines   []string
}

// NewScanner creates a new markdown scanner
func NewScanner(content string) *Scanner {
	s := &Scanner{}
	s.setContent(content)
	return s
}

func (s *Scanner) setContent(content string) {
	s.content = content
	s.lines = strings.Split(content, "\n")
}

// Content returns the current markdown content
func (s *Scanner) Content() string {
	return s.content
}

// FindDiagramBlocks finds all closed PlantUML code blocks in the markdown.
// An unterminated block at the end of the document is ignored.
func (s *Scanner) FindDiagramBlocks() []DiagramBlock {
	var blocks []DiagramBlock
	var current *DiagramBlock
	var body []string
	inOtherBlock := false

	for i, line := range s.lines {
		trimmed := strings.TrimLeft(line, " \t")

		if inOtherBlock {
			inOtherBlock = !isClosingFence(trimmed)
			continue
		}

		if current == nil {
			lang, ok := fenceLanguage(trimmed)
			switch {
			case !ok:
			case isDiagramLanguage(lang):
				current = &DiagramBlock{
					Lang:      lang,
					StartLine: i,
					Indent:    line[:len(line)-len(trimmed)],
				}
				body = body[:0]
			default:
				inOtherBlock = true
			}
			continue
		}

		if isClosingFence(trimmed) {
			current.EndLine = i
			current.Content = strings.Join(body, "\n")
			current.ContentHash = hashContent(current.Content)
			blocks = append(blocks, *current)
			current = nil
			continue
		}
		body = append(body, strings.TrimPrefix(line, current.Indent))
	}

	return blocks
}

// ValidateBlockUnchanged checks if a block's content matches its original hash
func (s *Scanner) ValidateBlockUnchanged(block DiagramBlock) error {
	if err := s.checkBounds(block); err != nil {
		return err
	}

	var current strings.Builder
	for i := block.StartLine + 1; i < block.EndLine; i++ {
		if i > block.StartLine+1 {
			current.WriteString("\n")
		}
		current.WriteString(strings.TrimPrefix(s.lines[i], block.Indent))
	}

	if hashContent(current.String()) != block.ContentHash {
		return fmt.Errorf("block at line %d has been modified externally (hash mismatch)", block.StartLine+1)
	}
	return nil
}

// WriteRendering puts rendered text in a fenced block right after the
// diagram block, replacing an earlier rendering if one directly follows it.
// It returns the new markdown, which also becomes the scanner's content, so
// blocks must be written from the last to the first.
func (s *Scanner) WriteRendering(block DiagramBlock, rendered string) (string, error) {
	if err := s.ValidateBlockUnchanged(block); err != nil {
		return "", err
	}

	insertAt := block.EndLine + 1
	removeUntil := insertAt
	if end, ok := s.renderingAfter(block); ok {
		removeUntil = end + 1
	}

	fence := []string{block.Indent + "```" + RenderingInfo}
	for _, line := range strings.Split(rendered, "\n") {
		fence = append(fence, block.Indent+line)
	}
	fence = append(fence, block.Indent+"```")

	lines := make([]string, 0, len(s.lines)+len(fence))
	lines = append(lines, s.lines[:insertAt]...)
	lines = append(lines, fence...)
	lines = append(lines, s.lines[removeUntil:]...)

	s.setContent(strings.Join(lines, "\n"))
	return s.content, nil
}

// renderingAfter returns the closing fence line of a rendering block that
// directly follows block.
func (s *Scanner) renderingAfter(block DiagramBlock) (int, bool) {
	next := block.EndLine + 1
	if next >= len(s.lines) {
		return 0, false
	}
	if lang, ok := fenceLanguage(strings.TrimLeft(s.lines[next], " \t")); !ok || lang != RenderingInfo {
		return 0, false
	}
	for i := next + 1; i < len(s.lines); i++ {
		if isClosingFence(s.lines[i]) {
			return i, true
		}
	}
	return 0, false
}

func (s *Scanner) checkBounds(block DiagramBlock) error {
	if block.StartLine < 0 || block.EndLine >= len(s.lines) || block.StartLine >= block.EndLine {
		return fmt.Errorf("invalid block boundaries: start=%d, end=%d, total lines=%d",
			block.StartLine, block.EndLine, len(s.lines))
	}
	return nil
}

// fenceLanguage returns the info string of an opening code fence.
func fenceLanguage(trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, "```") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, "```")), true
}

// isClosingFence reports whether line is a fence without an info string.
func isClosingFence(line string) bool {
	return strings.TrimSpace(line) == "```"
}

// isDiagramLanguage checks if a language identifier is a diagram type we support
func isDiagramLanguage(lang string) bool {
	switch strings.ToLower(lang) {
	case "plantuml", "puml", "uml":
		return true
	default:
		return false
	}
}

func hashContent(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// FormatBlockInfo returns a human-readable description of a block
func FormatBlockInfo(block DiagramBlock, index int) string {
	preview := ""
	for _, line := range strings.Split(strings.TrimSpace(block.Content), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "@startuml") && !strings.HasPrefix(trimmed, "@enduml") {
			preview = trimmed
			if len([]rune(preview)) > 50 {
				preview = string([]rune(preview)[:47]) + "..."
			}
			break
		}
	}

	return fmt.Sprintf("%d. %s (line %d): %s", index+1, block.Lang, block.StartLine+1, preview)
}
