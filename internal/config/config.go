// Package config provides configuration management for inktally.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultDataFile is the data file used when nothing else is configured.
const DefaultDataFile = "article_data.txt"

// EnvDataFile overrides the data file path when set.
const EnvDataFile = "INKTALLY_DATA_FILE"

// EnvConfigFile overrides the config file path when set and no --config
// flag is given.
const EnvConfigFile = "INKTALLY_CONFIG"

// Config represents the application configuration.
type Config struct {
	DataFile    string  `yaml:"data_file"`    // Path to the flat data file
	WindowDays  int     `yaml:"window_days"`  // Trailing analysis window, in days
	CVThreshold float64 `yaml:"cv_threshold"` // CV above this switches analysis to IQR
	UnderRatio  float64 `yaml:"under_ratio"`  // Fraction of average below which a count is "under"
}

// Default returns the standard configuration.
func Default() *Config {
	return &Config{
		DataFile:    DefaultDataFile,
		WindowDays:  180,
		CVThreshold: 0.2,
		UnderRatio:  0.8,
	}
}

// Load reads and parses a configuration file. A missing file is not an
// error: defaults apply, so a config file is always optional. Fields
// left out of the file keep their default values, and environment
// variables take precedence over both.
func Load(path string) (*Config, error) {
	config := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	if config.DataFile == "" {
		config.DataFile = DefaultDataFile
	}

	// Env vars take precedence
	if dataFile := os.Getenv(EnvDataFile); dataFile != "" {
		config.DataFile = dataFile
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data_file cannot be empty")
	}
	if c.WindowDays < 1 {
		return fmt.Errorf("window_days must be at least 1, got %d", c.WindowDays)
	}
	if c.CVThreshold < 0 {
		return fmt.Errorf("cv_threshold must not be negative, got %.2f", c.CVThreshold)
	}
	if c.UnderRatio < 0 || c.UnderRatio > 1 {
		return fmt.Errorf("under_ratio must be between 0.0 and 1.0, got %.2f", c.UnderRatio)
	}
	return nil
}
