package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"umlbox/presenter"
	"umlbox/usecase"
	"umlbox/validation"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		output   string
		validate bool
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "render <file.puml>",
		Short: "Draw a diagram as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.presenter()
			if err != nil {
				return err
			}
			vm, err := a.loaderFor(args[0]).Render(args[0], p)
			if err != nil {
				return err
			}
			if err := a.writeOutput(cmd, output, vm.String()); err != nil {
				return err
			}
			if validate || strict {
				return a.validate(vm, strict)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().BoolVar(&validate, "validate", false, "Check the drawing for lines that do not join up")
	cmd.Flags().BoolVar(&strict, "strict", false, "Validate, also rejecting joins between light, heavy and double lines")
	return cmd
}

// loaderFor picks the importer by the file extension of path and falls back
// to detecting the language from the content.
func (a *app) loaderFor(path string) *usecase.LoadDiagram {
	imp, err := a.registry.ForPath(path)
	if err != nil {
		a.logger.Debug("Detecting diagram language from content", "path", path, "reason", err)
		return a.loader
	}
	a.logger.Debug("Importer chosen by extension", "path", path, "importer", imp.Name())
	return usecase.NewLoadDiagram(a.files, imp, a.logger)
}

// newValidator checks ASCII glyphs only for the ascii style, where they are
// the border. Elsewhere a - or | belongs to a name.
func newValidator(boxStyle string, strict bool) *validation.LineValidator {
	v := validation.NewLineValidator()
	v.SetAllowASCII(boxStyle == "ascii")
	v.SetStrictMode(strict)
	return v
}

// validate logs every broken line and fails with exit code 2 if there are any.
func (a *app) validate(vm presenter.ViewModel, strict bool) error {
	problems := newValidator(a.cfg.BoxStyle, strict).ValidateCells(vm.Cells())
	for _, p := range problems {
		a.logger.Warn("Broken line", "x", p.X, "y", p.Y, "char", string(p.Char), "problem", p.Message)
	}
	if len(problems) > 0 {
		return &exitError{code: 2, err: fmt.Errorf("validation found %d problem(s)", len(problems))}
	}
	return nil
}
