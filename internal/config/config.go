// Package config loads CLI configuration from a YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-md2docx/internal/fileutil"
	"github.com/alnah/go-md2docx/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// DefaultFileName is the config file searched for when no path is given,
// tried with .yaml then .yml.
const DefaultFileName = ".md2docx"

// Config holds all configuration for document generation.
type Config struct {
	Output   OutputConfig   `yaml:"output"`
	Diagrams DiagramsConfig `yaml:"diagrams"`
	Images   ImagesConfig   `yaml:"images"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = ./output)
}

// DiagramsConfig defines mermaid diagram rendering options.
type DiagramsConfig struct {
	Mode           string `yaml:"mode"`           // "degrade" (default) or "strict"
	TimeoutSeconds int    `yaml:"timeoutSeconds"` // Per-diagram subprocess timeout (default 30)
}

// ImagesConfig defines image scaling options.
type ImagesConfig struct {
	Fit string `yaml:"fit"` // "box" (default) or "width"
}

// LoggingConfig defines diagnostic output options.
type LoggingConfig struct {
	Level string `yaml:"level"` // "debug", "info" (default), "warn", "error"
}

// Validate checks that enumerated fields carry known values.
// Called automatically by Load, but available for consumers who construct
// Config manually.
func (c *Config) Validate() error {
	switch c.Diagrams.Mode {
	case "", "degrade", "strict":
	default:
		return fmt.Errorf("diagrams.mode: invalid value %q (must be degrade or strict)", c.Diagrams.Mode)
	}
	if c.Diagrams.TimeoutSeconds < 0 {
		return fmt.Errorf("diagrams.timeoutSeconds: must be non-negative, got %d", c.Diagrams.TimeoutSeconds)
	}
	switch c.Images.Fit {
	case "", "box", "width":
	default:
		return fmt.Errorf("images.fit: invalid value %q (must be box or width)", c.Images.Fit)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level: invalid value %q (must be debug, info, warn, or error)", c.Logging.Level)
	}
	return nil
}

// Default returns the neutral configuration: everything at its zero value,
// letting the converter apply its own defaults.
func Default() *Config {
	return &Config{}
}

// Load loads configuration from an explicit file path.
// Returns error if the file is not found (no silent fallback).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Discover looks for the default config file in the working directory, then
// in the user config directory. A missing file is not an error: it returns
// the default config so the CLI works without any setup.
func Discover() (*Config, error) {
	for _, path := range candidatePaths() {
		if fileutil.FileExists(path) {
			return Load(path)
		}
	}
	return Default(), nil
}

// candidatePaths lists discovery locations in priority order.
func candidatePaths() []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, DefaultFileName+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-md2docx", DefaultFileName+ext))
		}
	}

	return paths
}
