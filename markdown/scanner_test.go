package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(lines ...string) string {
	return strings.Join(lines, "\n")
}

func TestFindDiagramBlocks(t *testing.T) {
	content := doc(
		"# Title",
		"",
		"```plantuml",
		"@startuml",
		"component A",
		"@enduml",
		"```",
		"text",
		"```go",
		"```plantuml",
		"```",
		"  ```puml",
		"  @startuml",
		"  @enduml",
		"  ```",
		"```mermaid",
		"graph TD",
		"```",
	)

	blocks := NewScanner(content).FindDiagramBlocks()

	require.Len(t, blocks, 2)

	assert.Equal(t, "plantuml", blocks[0].Lang)
	assert.Equal(t, "@startuml\ncomponent A\n@enduml", blocks[0].Content)
	assert.Equal(t, 2, blocks[0].StartLine)
	assert.Equal(t, 6, blocks[0].EndLine)
	assert.Equal(t, "", blocks[0].Indent)

	assert.Equal(t, "puml", blocks[1].Lang)
	assert.Equal(t, "@startuml\n@enduml", blocks[1].Content)
	assert.Equal(t, 11, blocks[1].StartLine)
	assert.Equal(t, 14, blocks[1].EndLine)
	assert.Equal(t, "  ", blocks[1].Indent)
}

func TestFindDiagramBlocks_Unterminated(t *testing.T) {
	blocks := NewScanner(doc("```plantuml", "@startuml")).FindDiagramBlocks()
	assert.Empty(t, blocks)
}

func TestValidateBlockUnchanged(t *testing.T) {
	content := doc("```uml", "@startuml", "@enduml", "```")
	s := NewScanner(content)
	blocks := s.FindDiagramBlocks()
	require.Len(t, blocks, 1)

	assert.NoError(t, s.ValidateBlockUnchanged(blocks[0]))

	changed := NewScanner(doc("```uml", "@startuml", "component B", "```"))
	assert.ErrorContains(t, changed.ValidateBlockUnchanged(blocks[0]), "hash mismatch")

	bad := blocks[0]
	bad.EndLine = 10
	assert.ErrorContains(t, s.ValidateBlockUnchanged(bad), "invalid block boundaries")
}

func TestWriteRendering(t *testing.T) {
	content := doc(
		"intro",
		"```plantuml",
		"@startuml",
		"@enduml",
		"```",
		"outro",
	)

	s := NewScanner(content)
	blocks := s.FindDiagramBlocks()
	require.Len(t, blocks, 1)

	got, err := s.WriteRendering(blocks[0], "╭╮\n╰╯")
	require.NoError(t, err)
	assert.Equal(t, doc(
		"intro",
		"```plantuml",
		"@startuml",
		"@enduml",
		"```",
		"```text umlbox",
		"╭╮",
		"╰╯",
		"```",
		"outro",
	), got)
	assert.Equal(t, got, s.Content())

	// Rendering again replaces the previous output.
	again := NewScanner(got)
	blocks = again.FindDiagramBlocks()
	require.Len(t, blocks, 1)

	got, err = again.WriteRendering(blocks[0], "X")
	require.NoError(t, err)
	assert.Equal(t, doc(
		"intro",
		"```plantuml",
		"@startuml",
		"@enduml",
		"```",
		"```text umlbox",
		"X",
		"```",
		"outro",
	), got)
}

func TestWriteRendering_KeepsIndentAndOrder(t *testing.T) {
	content := doc(
		"- item",
		"  ```puml",
		"  @startuml",
		"  @enduml",
		"  ```",
		"```puml",
		"@startuml",
		"@enduml",
		"```",
	)

	s := NewScanner(content)
	blocks := s.FindDiagramBlocks()
	require.Len(t, blocks, 2)

	// Last block first so earlier line numbers stay valid.
	_, err := s.WriteRendering(blocks[1], "two")
	require.NoError(t, err)
	got, err := s.WriteRendering(blocks[0], "one")
	require.NoError(t, err)

	assert.Equal(t, doc(
		"- item",
		"  ```puml",
		"  @startuml",
		"  @enduml",
		"  ```",
		"  ```text umlbox",
		"  one",
		"  ```",
		"```puml",
		"@startuml",
		"@enduml",
		"```",
		"```text umlbox",
		"two",
		"```",
	), got)
}

func TestWriteRendering_RejectsModifiedBlock(t *testing.T) {
	s := NewScanner(doc("```puml", "@startuml", "@enduml", "```"))
	block := s.FindDiagramBlocks()[0]
	block.ContentHash = hashContent("something else")

	_, err := s.WriteRendering(block, "x")
	assert.Error(t, err)
}

func TestFormatBlockInfo(t *testing.T) {
	block := DiagramBlock{
		Lang:      "plantuml",
		Content:   "@startuml\n\ncomponent " + strings.Repeat("x", 60) + "\n@enduml",
		StartLine: 4,
	}

	info := FormatBlockInfo(block, 0)

	assert.True(t, strings.HasPrefix(info, "1. plantuml (line 5): component xxx"))
	assert.True(t, strings.HasSuffix(info, "..."))
	assert.Len(t, []rune(strings.SplitN(info, ": ", 2)[1]), 50)
}
