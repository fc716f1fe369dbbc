// Package config provides configuration loading and management for
// dicomstack. It handles loading configuration from YAML files and provides
// default values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"dicomstack/pkg/geom"
	"dicomstack/pkg/stack"
)

// Config represents the application configuration loaded from YAML.
type Config struct {
	// Combine parameters mirror the stack.Combine options.
	Combine struct {
		// Tolerance is the relative tolerance for attribute and spacing
		// comparisons.
		Tolerance float64 `yaml:"tolerance"`

		// Rescale applies each slice's slope/intercept before stacking.
		Rescale bool `yaml:"rescale"`

		// SortByInstance orders slices by instance number instead of
		// projected spatial position.
		SortByInstance bool `yaml:"sortByInstance"`

		// SkipSorting trusts the caller-provided slice order.
		SkipSorting bool `yaml:"skipSorting"`

		// EnforceSliceSpacing rejects non-uniform inter-slice gaps.
		EnforceSliceSpacing bool `yaml:"enforceSliceSpacing"`

		// COrderAxes emits the slice axis first instead of last.
		COrderAxes bool `yaml:"cOrderAxes"`
	} `yaml:"combine"`

	// Output parameters
	Output struct {
		// Verbose controls the level of logging output.
		Verbose bool `yaml:"verbose"`
	} `yaml:"output"`
}

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Combine.Tolerance = geom.DefaultTolerance
	cfg.Combine.EnforceSliceSpacing = true

	cfg.Output.Verbose = true

	return cfg
}

// Options lowers the configuration to the option list understood by
// stack.Combine.
func (c *Config) Options() []stack.Option {
	var opts []stack.Option
	if c.Combine.Tolerance > 0 {
		opts = append(opts, stack.WithTolerance(c.Combine.Tolerance))
	}
	if c.Combine.Rescale {
		opts = append(opts, stack.WithRescale())
	}
	if c.Combine.SortByInstance {
		opts = append(opts, stack.WithInstanceOrder())
	}
	if c.Combine.SkipSorting {
		opts = append(opts, stack.WithPresortedInput())
	}
	if !c.Combine.EnforceSliceSpacing {
		opts = append(opts, stack.WithoutSpacingEnforcement())
	}
	if c.Combine.COrderAxes {
		opts = append(opts, stack.WithCOrderAxes())
	}
	return opts
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist, it returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to a YAML file.
func SaveConfig(cfg *Config, configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}

	return nil
}

// CreateDefaultConfigFile creates a default configuration file at the
// specified path.
func CreateDefaultConfigFile(configPath string) error {
	return SaveConfig(DefaultConfig(), configPath)
}
