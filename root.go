package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"umlbox/config"
	"umlbox/files"
	"umlbox/importer"
	"umlbox/logging"
	"umlbox/presenter"
	"umlbox/usecase"
)

// app holds what every command needs once flags and environment are read.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	files    *files.LocalFileRepository
	registry *importer.Registry
	loader   *usecase.LoadDiagram
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	config.SetDefaults(v)
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "umlbox",
		Short: "Render PlantUML component diagrams as box-drawing text",
		Long: "umlbox parses PlantUML component declarations and draws every component " +
			"as a box of Unicode line-drawing characters.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd, v)
		},
	}

	d := config.Default()
	flags := rootCmd.PersistentFlags()
	flags.String("env-file", "", "Env file to load (default: $"+config.EnvFileVar+" or .env)")
	flags.String("log-level", d.LogLevel, "Log level: debug, info, warn, error")
	flags.String("layout", d.Layout, "Node placement: grid or overlap")
	flags.Int("columns", d.Columns, "Boxes per row in the grid layout")
	flags.Int("gap", d.Gap, "Blank cells between boxes in the grid layout")
	flags.Int("padding-x", d.HorizontalPadding, "Blank columns between a name and its border")
	flags.Int("padding-y", d.VerticalPadding, "Blank rows between a name and its border")
	flags.String("fill", d.FillChar, "Character painted inside boxes")
	flags.String("style", d.BoxStyle, "Border style: ascii, double, rounded, sharp, thick")

	_ = v.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
	_ = v.BindPFlag(config.KeyLayout, flags.Lookup("layout"))
	_ = v.BindPFlag(config.KeyColumns, flags.Lookup("columns"))
	_ = v.BindPFlag(config.KeyGap, flags.Lookup("gap"))
	_ = v.BindPFlag(config.KeyHorizontalPadding, flags.Lookup("padding-x"))
	_ = v.BindPFlag(config.KeyVerticalPadding, flags.Lookup("padding-y"))
	_ = v.BindPFlag(config.KeyFillChar, flags.Lookup("fill"))
	_ = v.BindPFlag(config.KeyBoxStyle, flags.Lookup("style"))

	rootCmd.AddCommand(
		newRenderCmd(a),
		newPreviewCmd(a),
		newExportCmd(a),
		newMarkdownCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

func (a *app) init(cmd *cobra.Command, v *viper.Viper) error {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadEnvFile(envFile); err != nil {
		return err
	}
	config.BindEnv(v)

	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	level, _ := logging.ParseLevel(cfg.LogLevel)

	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), level)
	a.files = files.NewLocalFileRepository()
	a.registry = importer.NewRegistry()
	a.loader = usecase.NewLoadDiagram(a.files, a.registry, a.logger)

	a.logger.Debug("Configuration loaded",
		"layout", cfg.Layout,
		"style", cfg.BoxStyle,
		"padding", []int{cfg.HorizontalPadding, cfg.VerticalPadding})
	return nil
}

func (a *app) presenter() (*presenter.Presenter, error) {
	opts, err := a.cfg.PresenterOptions()
	if err != nil {
		return nil, err
	}
	return presenter.New(opts...), nil
}

// writeOutput prints s to the command's output, or writes it to path.
func (a *app) writeOutput(cmd *cobra.Command, path, s string) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), s)
		return err
	}
	if err := os.WriteFile(path, []byte(s+"\n"), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	a.logger.Info("Wrote output", "path", path)
	return nil
}
