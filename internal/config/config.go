package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Output formats understood by the shells commands.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatTOML  = "toml"
)

// Config holds runtime configuration for a seismo invocation.
// Values are populated from .seismo.yaml, SEISMO_* env vars, and CLI flags.
type Config struct {
	Format  string `mapstructure:"format"`
	Color   bool   `mapstructure:"color"`
	Verbose bool   `mapstructure:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("format", FormatTable)
	viper.SetDefault("color", true)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := ValidateFormat(cfg.Format); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ValidateFormat returns an error if format is not a known output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatTable, FormatJSON, FormatTOML:
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be one of table, json, toml", format)
	}
}
