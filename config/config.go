// Package config holds the settings of the command line tool. Values come from
// flags, UMLBOX_* environment variables and an optional .env file, in that
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"umlbox/layout"
	"umlbox/logging"
	"umlbox/presenter"
	"umlbox/render"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "UMLBOX"

// EnvFileVar names the variable holding the path of the .env file.
const EnvFileVar = EnvPrefix + "_ENV_FILE"

// Keys used with viper.
const (
	KeyLogLevel          = "log_level"
	KeyLayout            = "layout"
	KeyHorizontalPadding = "horizontal_padding"
	KeyVerticalPadding   = "vertical_padding"
	KeyFillChar          = "fill_char"
	KeyColumns           = "columns"
	KeyGap               = "gap"
	KeyBoxStyle          = "box_style"
)

// Config is the resolved configuration.
type Config struct {
	LogLevel          string
	Layout            string
	HorizontalPadding int
	VerticalPadding   int
	FillChar          string
	Columns           int
	Gap               int
	BoxStyle          string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		LogLevel:          "info",
		Layout:            "grid",
		HorizontalPadding: presenter.DefaultHorizontalPadding,
		VerticalPadding:   presenter.DefaultVerticalPadding,
		FillChar:          string(presenter.DefaultFillChar),
		Columns:           layout.DefaultColumns,
		Gap:               layout.DefaultGap,
		BoxStyle:          "rounded",
	}
}

// SetDefaults registers Default() with v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLayout, d.Layout)
	v.SetDefault(KeyHorizontalPadding, d.HorizontalPadding)
	v.SetDefault(KeyVerticalPadding, d.VerticalPadding)
	v.SetDefault(KeyFillChar, d.FillChar)
	v.SetDefault(KeyColumns, d.Columns)
	v.SetDefault(KeyGap, d.Gap)
	v.SetDefault(KeyBoxStyle, d.BoxStyle)
}

// BindEnv makes v read UMLBOX_* variables.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
}

// LoadEnvFile loads variables from path into the process environment
// without overriding variables that are already set. An empty path means
// $UMLBOX_ENV_FILE, or ".env" when that is unset. A missing file is not an
// error.
func LoadEnvFile(path string) error {
	if path == "" {
		path = os.Getenv(EnvFileVar)
	}
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading env file %s: %w", path, err)
	}
	return nil
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (Config, error) {
	c := Config{
		LogLevel:          v.GetString(KeyLogLevel),
		Layout:            v.GetString(KeyLayout),
		HorizontalPadding: v.GetInt(KeyHorizontalPadding),
		VerticalPadding:   v.GetInt(KeyVerticalPadding),
		FillChar:          v.GetString(KeyFillChar),
		Columns:           v.GetInt(KeyColumns),
		Gap:               v.GetInt(KeyGap),
		BoxStyle:          v.GetString(KeyBoxStyle),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if _, err := layout.Lookup(c.Layout, c.Columns, c.Gap); err != nil {
		errs = append(errs, err)
	}
	if c.HorizontalPadding < 0 || c.VerticalPadding < 0 {
		errs = append(errs, fmt.Errorf("padding must not be negative (got %d, %d)", c.HorizontalPadding, c.VerticalPadding))
	}
	if utf8.RuneCountInString(c.FillChar) != 1 {
		errs = append(errs, fmt.Errorf("fill char must be exactly one character (got %q)", c.FillChar))
	}
	if c.Columns <= 0 {
		errs = append(errs, fmt.Errorf("columns must be positive (got %d)", c.Columns))
	}
	if c.Gap < 0 {
		errs = append(errs, fmt.Errorf("gap must not be negative (got %d)", c.Gap))
	}
	if _, err := render.LookupBoxStyle(c.BoxStyle); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Fill returns the fill character as a rune.
func (c Config) Fill() rune {
	r, _ := utf8.DecodeRuneInString(c.FillChar)
	return r
}

// PresenterOptions translates the drawing settings. c must be valid.
func (c Config) PresenterOptions() ([]presenter.Option, error) {
	l, err := layout.Lookup(c.Layout, c.Columns, c.Gap)
	if err != nil {
		return nil, err
	}
	style, err := render.LookupBoxStyle(c.BoxStyle)
	if err != nil {
		return nil, err
	}
	return []presenter.Option{
		presenter.WithLayout(l),
		presenter.WithPadding(c.HorizontalPadding, c.VerticalPadding),
		presenter.WithFillChar(c.Fill()),
		presenter.WithBoxStyle(style),
	}, nil
}
