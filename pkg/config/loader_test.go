package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/unitconv/pkg/errors"
)

// isolate points every config source at an empty temp dir
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvConfigPath, "")
	t.Setenv("UNITCONV_OUTPUT_COLOR", "")
	t.Setenv("UNITCONV_OUTPUT_FORMAT", "")
	t.Setenv("UNITCONV_LOG_FILE", "")
	os.Unsetenv("UNITCONV_OUTPUT_COLOR")
	os.Unsetenv("UNITCONV_OUTPUT_FORMAT")
	os.Unsetenv("UNITCONV_LOG_FILE")
	os.Unsetenv(EnvConfigPath)
	return dir
}

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad(t *testing.T) {
	t.Run("defaults_only", func(t *testing.T) {
		isolate(t)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, ColorAuto, cfg.Output.Color)
		assert.Equal(t, FormatText, cfg.Output.Format)
		assert.False(t, cfg.Log.File)
	})

	t.Run("default_location_file", func(t *testing.T) {
		dir := isolate(t)
		writeConfig(t, filepath.Join(dir, "unitconv", "config.toml"), `
[output]
color = "never"
format = "json"
`)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, ColorNever, cfg.Output.Color)
		assert.Equal(t, FormatJSON, cfg.Output.Format)
		assert.False(t, cfg.Log.File, "keys missing from the file keep their defaults")
	})

	t.Run("explicit_path", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "custom.toml")
		writeConfig(t, path, "[log]\nfile = true\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.True(t, cfg.Log.File)
	})

	t.Run("config_path_from_env", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "from-env.toml")
		writeConfig(t, path, "[output]\nformat = \"yaml\"\n")
		t.Setenv(EnvConfigPath, path)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, FormatYAML, cfg.Output.Format)
	})

	t.Run("explicit_path_missing", func(t *testing.T) {
		dir := isolate(t)

		_, err := Load(filepath.Join(dir, "missing.toml"))
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad), "got %v", err)
	})

	t.Run("default_path_unreadable", func(t *testing.T) {
		dir := isolate(t)
		// A regular file where a directory is expected fails stat with ENOTDIR
		blocker := filepath.Join(dir, "plain")
		writeConfig(t, blocker, "")
		t.Setenv(EnvConfigPath, filepath.Join(blocker, "config.toml"))

		_, err := Load("")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad), "got %v", err)
		assert.Contains(t, errors.Message(err), "cannot access config file")
	})

	t.Run("malformed_file", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "bad.toml")
		writeConfig(t, path, "[output\ncolor = ")

		_, err := Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
	})

	t.Run("env_overrides_file", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "config.toml")
		writeConfig(t, path, "[output]\ncolor = \"always\"\n")
		t.Setenv("UNITCONV_OUTPUT_COLOR", "NEVER")
		t.Setenv("UNITCONV_LOG_FILE", "true")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ColorNever, cfg.Output.Color, "env values are normalized")
		assert.True(t, cfg.Log.File, "env strings decode into bools")
	})

	t.Run("invalid_color", func(t *testing.T) {
		dir := isolate(t)
		path := filepath.Join(dir, "config.toml")
		writeConfig(t, path, "[output]\ncolor = \"sometimes\"\n")

		_, err := Load(path)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
	})

	t.Run("invalid_format", func(t *testing.T) {
		isolate(t)
		t.Setenv("UNITCONV_OUTPUT_FORMAT", "csv")

		_, err := Load("")
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
	})
}

func TestDefaultPath(t *testing.T) {
	isolate(t)
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, filepath.FromSlash("/custom/config/unitconv/config.toml"), DefaultPath())

	t.Setenv(EnvConfigPath, "/etc/unitconv.toml")
	assert.Equal(t, "/etc/unitconv.toml", DefaultPath())
}

func TestParseFormat(t *testing.T) {
	for _, f := range Formats {
		got, err := ParseFormat(" " + string(f) + " ")
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat("XML")
	require.NoError(t, err)
	assert.Equal(t, FormatXML, got)

	_, err = ParseFormat("csv")
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestDefaultContent(t *testing.T) {
	content := DefaultContent()
	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, `color = "auto"`)
	assert.Contains(t, content, "[log]")
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "unitconv.yaml")
	writeConfig(t, path, "output:\n  format: xml\nlog:\n  file: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatXML, cfg.Output.Format)
	assert.True(t, cfg.Log.File)
	assert.Equal(t, ColorAuto, cfg.Output.Color)
}

func TestLoadWithOverrides(t *testing.T) {
	t.Run("overrides beat environment", func(t *testing.T) {
		isolate(t)
		t.Setenv("UNITCONV_OUTPUT_COLOR", "always")

		cfg, err := LoadWithOverrides("", map[string]interface{}{"output.color": "never"})
		require.NoError(t, err)
		assert.Equal(t, ColorNever, cfg.Output.Color)
	})

	t.Run("invalid override", func(t *testing.T) {
		isolate(t)

		_, err := LoadWithOverrides("", map[string]interface{}{"output.format": "csv"})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)
	})

	t.Run("nil overrides", func(t *testing.T) {
		isolate(t)

		cfg, err := LoadWithOverrides("", nil)
		require.NoError(t, err)
		assert.Equal(t, ColorAuto, cfg.Output.Color)
	})
}
