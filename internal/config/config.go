// Package config loads pagerect CLI settings from defaults, an optional
// config file, PAGERECT_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tsawler/pagerect/font"
	"github.com/tsawler/pagerect/sources"
)

// Output formats for converted sources.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds CLI settings.
type Config struct {
	Match   string `mapstructure:"match"`
	Output  string `mapstructure:"output"`
	Font    string `mapstructure:"font"`
	Verbose bool   `mapstructure:"verbose"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Match:   sources.MatchStrict.String(),
		Output:  OutputJSON,
		Font:    font.DefaultFont,
		Verbose: false,
	}
}

// Load resolves settings. Later sources override earlier ones: defaults,
// the config file, environment variables, then any flags that were set.
// An empty cfgFile searches ./pagerect.yaml and ~/.pagerect/pagerect.yaml;
// a missing file is not an error.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("match", defaults.Match)
	v.SetDefault("output", defaults.Output)
	v.SetDefault("font", defaults.Font)
	v.SetDefault("verbose", defaults.Verbose)

	// Environment variables with PAGERECT_ prefix
	v.SetEnvPrefix("PAGERECT")
	v.AutomaticEnv()

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("pagerect")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.pagerect")
	}

	// Try to read config file (not required)
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if flags != nil {
		for _, key := range []string{"match", "output", "font", "verbose"} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every setting holds a usable value.
func (c *Config) Validate() error {
	if _, err := sources.ParseMatchMode(c.Match); err != nil {
		return fmt.Errorf("invalid match: %w", err)
	}
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("invalid output %q (want %s or %s)", c.Output, OutputJSON, OutputYAML)
	}
	if _, err := font.ParseFont(c.Font); err != nil {
		return fmt.Errorf("invalid font: %w", err)
	}
	return nil
}

// MatchMode returns the configured match policy.
func (c *Config) MatchMode() sources.MatchMode {
	m, _ := sources.ParseMatchMode(c.Match)
	return m
}
