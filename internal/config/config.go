// Package config handles engine configuration loading and management.
package config

import "fmt"

// Config holds all engine settings.
type Config struct {
	Engine  EngineConfig  `yaml:"engine"`
	Logging LoggingConfig `yaml:"logging"`
}

// EngineConfig holds shape-derivation settings.
type EngineConfig struct {
	// HorizontalThreshold is the bound on the vertical component of a
	// unit normal above which a face counts as horizontal.
	HorizontalThreshold float64 `yaml:"horizontal_threshold"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			HorizontalThreshold: 0.70711,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks the loaded values for consistency.
func (c *Config) Validate() error {
	t := c.Engine.HorizontalThreshold
	if t <= 0 || t >= 1 {
		return fmt.Errorf("horizontal_threshold %g outside (0, 1)", t)
	}
	return nil
}
