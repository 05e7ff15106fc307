package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/unitconv/pkg/errors"
	"github.com/arthur-debert/unitconv/pkg/logging"
	"github.com/arthur-debert/unitconv/pkg/paths"
)

const (
	// EnvPrefix prefixes every configuration environment variable
	EnvPrefix = "UNITCONV_"

	// EnvConfigPath overrides the configuration file location
	EnvConfigPath = "UNITCONV_CONFIG"
)

// Load merges the embedded defaults, the configuration file and the
// environment. An explicit path must exist; the default location is
// optional.
func Load(path string) (*Config, error) {
	return LoadWithOverrides(path, nil)
}

// LoadWithOverrides is Load with a final layer of dotted keys, such as
// {"output.color": "never"}, set from command line flags.
func LoadWithOverrides(path string, overrides map[string]interface{}) (*Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. Config file
	explicit := path != ""
	if explicit {
		path = paths.ExpandHome(path)
	} else {
		path = DefaultPath()
	}
	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded config file")
	case os.IsNotExist(err) && !explicit:
		logger.Debug().Str("path", path).Msg("No config file, using defaults")
	case os.IsNotExist(err):
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "config file %s not found", path).
			WithDetail("path", path)
	default:
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "cannot access config file %s", path).
			WithDetail("path", path)
	}

	// 3. Environment
	err = k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Flag overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	// 5. Unmarshal
	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				normalizeEnumHookFunc(),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("color", string(cfg.Output.Color)).
		Str("format", string(cfg.Output.Format)).
		Bool("logFile", cfg.Log.File).
		Msg("Configuration loaded")

	return &cfg, nil
}

// DefaultPath returns the configuration file location used when no path is
// given: $UNITCONV_CONFIG, else $XDG_CONFIG_HOME/unitconv/config.toml.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return paths.ExpandHome(p)
	}
	return paths.ConfigFile()
}

// parserFor picks the file parser by extension. Files are TOML unless they
// end in .yaml or .yml.
func parserFor(path string) koanf.Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser()
	default:
		return toml.Parser()
	}
}

// normalizeEnumHookFunc lower-cases and trims strings decoded into the
// enumerated setting types.
func normalizeEnumHookFunc() mapstructure.DecodeHookFunc {
	colorType := reflect.TypeOf(ColorMode(""))
	formatType := reflect.TypeOf(Format(""))
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || (t != colorType && t != formatType) {
			return data, nil
		}
		return strings.ToLower(strings.TrimSpace(reflect.ValueOf(data).String())), nil
	}
}
