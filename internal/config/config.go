// Package config loads defaults for the nash_pareto command from the environment.
package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the command defaults. Command line flags override it.
type Config struct {
	// Output format: "text" or "yaml".
	Format string `env:"NASH_PARETO_FORMAT" envDefault:"text"`
	// YAML game file to read instead of stdin.
	Game string `env:"NASH_PARETO_GAME"`
}

// Load parses the Config from environment variables. It does not
// validate: flags may still override the values.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse env")
	}

	return cfg, nil
}

// Override replaces each field with the corresponding non-empty value.
func (c Config) Override(format, game string) Config {
	if format != "" {
		c.Format = format
	}
	if game != "" {
		c.Game = game
	}

	return c
}

// Validate checks that the output format is known.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatYAML:
		return nil
	}

	return errors.Errorf("unknown output format %q", c.Format)
}
