package main

import (
	"github.com/spf13/cobra"

	"umlbox/presenter"
	"umlbox/terminal"
)

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <file.puml>",
		Short: "Show a diagram in a scrollable full-screen view",
		Long:  "Show a diagram in a scrollable full-screen view. Press r to reload the file and q to quit.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			p, err := a.presenter()
			if err != nil {
				return err
			}
			vm, err := a.loaderFor(path).Render(path, p)
			if err != nil {
				return err
			}
			return terminal.Show(path, vm, func() (presenter.ViewModel, error) {
				return a.loaderFor(path).Render(path, p)
			})
		},
	}
}
