// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/user/designlibre/pkg/fonts"
	"github.com/user/designlibre/pkg/ports"
)

// Config represents the full configuration for the backend.
type Config struct {
	LogLevel string `yaml:"log_level"`

	// Root confines design-file paths to a directory. Empty means the
	// whole filesystem.
	Root string `yaml:"root"`

	Gateway GatewayConfig `yaml:"gateway"`
	Fonts   FontsConfig   `yaml:"fonts"`
	Preview PreviewConfig `yaml:"preview"`
}

// GatewayConfig configures the WebSocket bridge.
type GatewayConfig struct {
	Addr  string `yaml:"addr"`
	Token string `yaml:"token"`
}

// FontsConfig configures font discovery.
type FontsConfig struct {
	ExtraDirs          []string `yaml:"extra_dirs"`
	LegacyLinuxListing bool     `yaml:"legacy_linux_listing"`
	WarnOnSkip         bool     `yaml:"warn_on_skip"`
}

// PreviewConfig holds defaults for font sample rendering.
type PreviewConfig struct {
	Text     string  `yaml:"text"`
	Size     float64 `yaml:"size"`
	MaxWidth int     `yaml:"max_width"`
}

// Defaults returns a Config with default values.
func Defaults() Config {
	return Config{
		LogLevel: "info",
		Gateway: GatewayConfig{
			Addr: "127.0.0.1:0",
		},
		Preview: PreviewConfig{
			Text:     "The quick brown fox jumps over the lazy dog",
			Size:     32,
			MaxWidth: 1024,
		},
	}
}

// LoadFromFile loads configuration from a YAML file over the defaults.
func LoadFromFile(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "quiet":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, quiet (got %q)", c.LogLevel)
	}
	if c.Preview.Size < 0 || c.Preview.Size > fonts.MaxPreviewSize {
		return fmt.Errorf("preview.size must be between 0 and %g (got %g)", fonts.MaxPreviewSize, c.Preview.Size)
	}
	if c.Preview.MaxWidth < 0 {
		return fmt.Errorf("preview.max_width must not be negative")
	}
	if c.Root != "" {
		info, err := os.Stat(c.Root)
		if err != nil {
			return fmt.Errorf("root: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("root %s is not a directory", c.Root)
		}
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() ports.LogLevel {
	return ports.ParseLogLevel(c.LogLevel)
}
