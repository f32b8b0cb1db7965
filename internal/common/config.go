// Package common provides shared utilities for Folio
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for Folio
type Config struct {
	Environment string        `toml:"environment"`
	Input       InputConfig   `toml:"input"`
	Output      OutputConfig  `toml:"output"`
	Chart       ChartConfig   `toml:"chart"`
	Logging     LoggingConfig `toml:"logging"`
}

// InputConfig holds portfolio input configuration
type InputConfig struct {
	Path string `toml:"path"` // Path to the portfolio JSON file
}

// OutputConfig holds report output configuration
type OutputConfig struct {
	Dir         string `toml:"dir"`          // Directory for generated reports
	OpenBrowser bool   `toml:"open_browser"` // Open the HTML report in the default browser
}

// ChartConfig holds chart rendering configuration
type ChartConfig struct {
	Width   int      `toml:"width"`
	Height  int      `toml:"height"`
	Palette []string `toml:"palette"` // Hex colors, cycled across slices
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "console" or "json"
}

// DefaultPalette is the slice color cycle used when no palette is configured.
var DefaultPalette = []string{
	"FFE08F", "C0C0C0", "98FB98", "FFDAB9", "ADD8E6", "D8BFD8", "FFB6C1",
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Input: InputConfig{
			Path: "investments.json",
		},
		Output: OutputConfig{
			Dir:         "reports",
			OpenBrowser: true,
		},
		Chart: ChartConfig{
			Width:   512,
			Height:  512,
			Palette: append([]string(nil), DefaultPalette...),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	// Apply environment overrides
	applyEnvOverrides(config)

	// Normalize chart settings
	validateChart(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("FOLIO_ENV"); env != "" {
		config.Environment = env
	}

	if path := os.Getenv("FOLIO_INPUT"); path != "" {
		config.Input.Path = path
	}

	if dir := os.Getenv("FOLIO_OUTPUT_DIR"); dir != "" {
		config.Output.Dir = dir
	}

	if open := os.Getenv("FOLIO_OPEN_BROWSER"); open != "" {
		if b, err := strconv.ParseBool(open); err == nil {
			config.Output.OpenBrowser = b
		}
	}

	if level := os.Getenv("FOLIO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// validateChart ensures chart dimensions and palette are usable.
func validateChart(config *Config) {
	if config.Chart.Width <= 0 {
		config.Chart.Width = 512
	}
	if config.Chart.Height <= 0 {
		config.Chart.Height = 512
	}
	if len(config.Chart.Palette) == 0 {
		config.Chart.Palette = append([]string(nil), DefaultPalette...)
	}
}
