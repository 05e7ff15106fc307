package config

import (
	"strings"

	"github.com/arthur-debert/unitconv/pkg/errors"
)

// ColorMode controls when output is styled
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Format is an encoding for the conversion table
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatXML  Format = "xml"
)

// Formats lists every supported table encoding
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatTOML, FormatXML}

// Config is the merged configuration
type Config struct {
	Output OutputConfig `koanf:"output"`
	Log    LogConfig    `koanf:"log"`
}

// OutputConfig controls how results are written
type OutputConfig struct {
	Color  ColorMode `koanf:"color"`
	Format Format    `koanf:"format"`
}

// LogConfig controls logging side outputs
type LogConfig struct {
	File bool `koanf:"file"`
}

// ParseFormat normalizes s and checks it names a supported format
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Newf(errors.ErrConfigValid, "unknown output format %q", s).
		WithDetail("format", s)
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return errors.Newf(errors.ErrConfigValid, "output.color must be auto, always or never, got %q", c.Output.Color).
			WithDetail("key", "output.color")
	}
	if _, err := ParseFormat(string(c.Output.Format)); err != nil {
		return err
	}
	return nil
}
