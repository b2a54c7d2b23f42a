package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"umlbox/diagram"
	"umlbox/presenter"
)

func newViper() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	BindEnv(v)
	return v
}

func TestDefault_IsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(newViper())

	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("UMLBOX_LAYOUT", "overlap")
	t.Setenv("UMLBOX_FILL_CHAR", "·")
	t.Setenv("UMLBOX_HORIZONTAL_PADDING", "0")
	t.Setenv("UMLBOX_BOX_STYLE", "double")

	c, err := Load(newViper())

	require.NoError(t, err)
	assert.Equal(t, "overlap", c.Layout)
	assert.Equal(t, '·', c.Fill())
	assert.Equal(t, 0, c.HorizontalPadding)
	assert.Equal(t, 2, c.VerticalPadding)
	assert.Equal(t, "double", c.BoxStyle)
}

func TestLoad_Invalid(t *testing.T) {
	v := newViper()
	v.Set(KeyFillChar, "ab")
	v.Set(KeyColumns, 0)

	_, err := Load(v)

	assert.ErrorContains(t, err, "fill char must be exactly one character")
	assert.ErrorContains(t, err, "columns must be positive")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		errMsg string
	}{
		{"Log level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"Layout", func(c *Config) { c.Layout = "spiral" }, `unknown layout "spiral"`},
		{"Padding", func(c *Config) { c.VerticalPadding = -1 }, "padding must not be negative"},
		{"Empty fill", func(c *Config) { c.FillChar = "" }, "fill char must be exactly one character"},
		{"Gap", func(c *Config) { c.Gap = -2 }, "gap must not be negative"},
		{"Box style", func(c *Config) { c.BoxStyle = "wavy" }, `unknown box style "wavy"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(&c)
			assert.ErrorContains(t, c.Validate(), tt.errMsg)
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "umlbox.env")
	require.NoError(t, os.WriteFile(path, []byte("UMLBOX_GAP=5\nUMLBOX_COLUMNS=4\n"), 0o644))

	// Variables loaded from the file must not leak into other tests.
	t.Setenv("UMLBOX_GAP", "")
	os.Unsetenv("UMLBOX_GAP")
	t.Setenv("UMLBOX_COLUMNS", "7")

	require.NoError(t, LoadEnvFile(path))

	c, err := Load(newViper())
	require.NoError(t, err)
	assert.Equal(t, 5, c.Gap)
	assert.Equal(t, 7, c.Columns, "existing variables win over the file")
}

func TestLoadEnvFile_FromVariable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.env")
	require.NoError(t, os.WriteFile(path, []byte("UMLBOX_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv(EnvFileVar, path)
	t.Setenv("UMLBOX_LOG_LEVEL", "")
	os.Unsetenv("UMLBOX_LOG_LEVEL")

	require.NoError(t, LoadEnvFile(""))

	assert.Equal(t, "debug", os.Getenv("UMLBOX_LOG_LEVEL"))
}

func TestLoadEnvFile_Missing(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
}

func TestPresenterOptions(t *testing.T) {
	c := Default()
	c.HorizontalPadding, c.VerticalPadding = 0, 0
	c.BoxStyle = "ascii"

	opts, err := c.PresenterOptions()
	require.NoError(t, err)

	d := diagram.New("", []diagram.Node{
		diagram.NewNode("a", diagram.Component("a")),
		diagram.NewNode("b", diagram.Component("b")),
	}, nil)
	vm := presenter.New(opts...).ProcessDiagram(d)

	assert.Equal(t, "+-+  +-+\n|a|  |b|\n+-+  +-+", vm.String())
}
