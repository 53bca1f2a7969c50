// Package config provides configuration management for skillcheck using Viper.
package config

import (
	"io/fs"

	"github.com/spf13/viper"

	"github.com/thoreinstein/skillcheck/internal/errors"
	"github.com/thoreinstein/skillcheck/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides (SKILLCHECK_COLOR, ...).
const EnvPrefix = "SKILLCHECK"

// Color modes for report output.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version   int    `mapstructure:"version" yaml:"version" toml:"version"`
	Color     string `mapstructure:"color" yaml:"color" toml:"color"`
	LogFormat string `mapstructure:"log_format" yaml:"log_format" toml:"log_format"`
}

// Init resets Viper and installs search paths, environment binding and defaults.
// Call this once at application startup before Load.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Only the tool's own directory; a config.yaml next to the files being
	// checked belongs to something else.
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix(EnvPrefix)
	viper.AutomaticEnv()

	viper.SetDefault("version", 1)
	viper.SetDefault("color", ColorAuto)
	viper.SetDefault("log_format", "text")
}

// Load reads the configuration file and validates it.
// If path is provided, it reads from that specific file and a missing file
// is an error. If path is empty, the search paths are used and a missing
// file falls back to defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// defaults apply
		case errors.As(err, &notFound), errors.Is(err, fs.ErrNotExist):
			return nil, errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:   1,
		Color:     ColorAuto,
		LogFormat: "text",
	}
}
