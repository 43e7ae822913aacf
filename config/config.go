// SPDX-License-Identifier: MIT
// Package config loads the socialnet YAML configuration and builds the
// zap logger it describes.
//
// Loading order: built-in defaults, then the YAML file (fields it omits keep
// their defaults), then validation. A missing path means "defaults only".
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/socialgraph/centrality"
	"github.com/katalvlaran/socialgraph/network"
)

// ErrInvalidConfig wraps every parse or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration document.
type Config struct {
	Log        LogConfig        `yaml:"log"`
	Centrality CentralityConfig `yaml:"centrality"`
	Suggest    SuggestConfig    `yaml:"suggest"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// LogConfig selects the zap logger flavor and level.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// CentralityConfig tunes eigenvector power iteration.
type CentralityConfig struct {
	MaxIterations int     `yaml:"max_iterations" validate:"gt=0"`
	Tolerance     float64 `yaml:"tolerance" validate:"gt=0"`
}

// SuggestConfig caps the number of friend suggestions (0 = unlimited).
type SuggestConfig struct {
	Limit int `yaml:"limit" validate:"gte=0"`
}

// MetricsConfig names the Prometheus namespace.
type MetricsConfig struct {
	Namespace string `yaml:"namespace" validate:"required,alphanum"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Log:        LogConfig{Level: "info"},
		Centrality: CentralityConfig{MaxIterations: centrality.DefaultMaxIterations, Tolerance: centrality.DefaultTolerance},
		Suggest:    SuggestConfig{Limit: 0},
		Metrics:    MetricsConfig{Namespace: "socialnet"},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// NetworkOptions translates the configuration into network.New options.
func (c *Config) NetworkOptions() []network.Option {
	return []network.Option{
		network.WithSuggestLimit(c.Suggest.Limit),
		network.WithEigenOptions(
			centrality.WithMaxIterations(c.Centrality.MaxIterations),
			centrality.WithTolerance(c.Centrality.Tolerance),
		),
	}
}
