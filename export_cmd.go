package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"umlbox/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		format string
		output string
		save   bool
	)

	descriptions := export.GetFormatDescriptions()
	formats := make([]string, 0, len(descriptions))
	var long strings.Builder
	long.WriteString("Convert a diagram to another format.\n\nFormats:\n")
	for _, f := range export.GetAvailableFormats() {
		formats = append(formats, string(f))
		fmt.Fprintf(&long, "  %-10s %s\n", f, descriptions[f])
	}

	cmd := &cobra.Command{
		Use:   "export <file.puml>",
		Short: "Convert a diagram to another format",
		Long:  long.String(),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(formats, ", "))
			}
			exporter, err := a.exporter(f)
			if err != nil {
				return err
			}

			path := args[0]
			if save {
				if output != "" {
					return fmt.Errorf("--save and --output cannot be used together")
				}
				output = strings.TrimSuffix(path, filepath.Ext(path)) + exporter.Extension()
				if output == path {
					return fmt.Errorf("refusing to overwrite the input file %s", path)
				}
			}

			d, err := a.loaderFor(path).Execute(path)
			if err != nil {
				return err
			}
			out, err := exporter.Export(d)
			if err != nil {
				return fmt.Errorf("exporting diagram: %w", err)
			}
			return a.writeOutput(cmd, output, strings.TrimSuffix(out, "\n"))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(export.FormatASCII), "Export format: "+strings.Join(formats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&save, "save", false, "Write next to the input file, using the format's extension")
	return cmd
}

// exporter returns the exporter for f; ASCII output follows the configuration.
func (a *app) exporter(f export.Format) (export.Exporter, error) {
	if f != export.FormatASCII {
		return export.NewExporter(f)
	}
	p, err := a.presenter()
	if err != nil {
		return nil, err
	}
	return export.NewASCIIExporter(p), nil
}
