// Package config loads cubesim application settings from a YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds user-tunable application settings.
type Config struct {
	// Animation timing
	MoveDurationMs   int `yaml:"move_duration_ms"`
	InterMoveDelayMs int `yaml:"inter_move_delay_ms"`

	// Scrambling
	ScrambleLength int `yaml:"scramble_length"`

	// Solver selection: "reverse" or "two_phase"
	Solver        string `yaml:"solver"`
	SolverCommand string `yaml:"solver_command"`

	// Storage
	Database string `yaml:"database"`

	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		MoveDurationMs:   250,
		InterMoveDelayMs: 100,
		ScrambleLength:   25,
		Solver:           "reverse",
		SolverCommand:    "kociemba",
		LogLevel:         "info",
	}
}

// DefaultPath returns the config file path in the user's home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubesim", "config.yaml"), nil
}

// Load reads the config file at path, overlaying it on the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Solver {
	case "reverse", "two_phase":
	default:
		return fmt.Errorf("config: unknown solver %q (want reverse or two_phase)", c.Solver)
	}
	if c.MoveDurationMs < 0 || c.InterMoveDelayMs < 0 {
		return fmt.Errorf("config: timing values must not be negative")
	}
	if c.ScrambleLength <= 0 {
		return fmt.Errorf("config: scramble_length must be positive")
	}
	return nil
}
