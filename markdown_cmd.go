package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"umlbox/files"
	"umlbox/markdown"
	"umlbox/usecase"
)

func newMarkdownCmd(a *app) *cobra.Command {
	var (
		block int
		write bool
	)

	cmd := &cobra.Command{
		Use:   "markdown <file.md>",
		Short: "Render the PlantUML blocks of a Markdown file",
		Long: "Render every ```plantuml, ```puml or ```uml block of a Markdown file. " +
			"With --write the drawings are stored in the file, each in a ```" + markdown.RenderingInfo +
			" block right after its diagram.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			// The document is written back as is, so only block contents are normalised.
			content, err := a.files.GetRawContent(path)
			if err != nil {
				return fmt.Errorf("reading markdown file: %w", err)
			}

			scanner := markdown.NewScanner(content)
			blocks := scanner.FindDiagramBlocks()
			if len(blocks) == 0 {
				return fmt.Errorf("no diagram blocks found in %s", path)
			}
			indexes, err := selectBlocks(len(blocks), block)
			if err != nil {
				return err
			}

			p, err := a.presenter()
			if err != nil {
				return err
			}
			rendered := make(map[int]string, len(indexes))
			for _, i := range indexes {
				imp, err := a.registry.ForLanguage(blocks[i].Lang)
				if err != nil {
					return fmt.Errorf("block %d (line %d): %w", i+1, blocks[i].StartLine+1, err)
				}
				source, err := files.Decode([]byte(blocks[i].Content))
				if err != nil {
					return fmt.Errorf("block %d (line %d): %w", i+1, blocks[i].StartLine+1, err)
				}
				d, err := usecase.NewLoadDiagram(a.files, imp, a.logger).Parse(source)
				if err != nil {
					return fmt.Errorf("block %d (line %d): %w", i+1, blocks[i].StartLine+1, err)
				}
				rendered[i] = p.ProcessDiagram(d).String()
			}

			if !write {
				for _, i := range indexes {
					fmt.Fprintln(cmd.OutOrStdout(), markdown.FormatBlockInfo(blocks[i], i))
					fmt.Fprintln(cmd.OutOrStdout(), rendered[i])
					fmt.Fprintln(cmd.OutOrStdout())
				}
				return nil
			}

			// Later blocks first so the line numbers of earlier ones stay valid.
			for j := len(indexes) - 1; j >= 0; j-- {
				i := indexes[j]
				if _, err := scanner.WriteRendering(blocks[i], rendered[i]); err != nil {
					return fmt.Errorf("block %d: %w", i+1, err)
				}
			}
			if err := os.WriteFile(path, []byte(scanner.Content()), 0o644); err != nil {
				return fmt.Errorf("writing markdown file: %w", err)
			}
			a.logger.Info("Updated markdown", "path", path, "blocks", len(indexes))
			return nil
		},
	}

	cmd.Flags().IntVar(&block, "block", 0, "Only render this diagram block (1-based, 0 = all)")
	cmd.Flags().BoolVar(&write, "write", false, "Write the drawings into the Markdown file")
	return cmd
}

// selectBlocks returns the 0-based indexes to render.
func selectBlocks(count, block int) ([]int, error) {
	if block < 0 || block > count {
		return nil, fmt.Errorf("block index %d is out of range (found %d blocks)", block, count)
	}
	if block > 0 {
		return []int{block - 1}, nil
	}
	indexes := make([]int, count)
	for i := range indexes {
		indexes[i] = i
	}
	return indexes, nil
}
