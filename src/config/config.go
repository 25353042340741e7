package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	OutputText = "text"
	OutputYAML = "yaml"
)

type Config struct {
	Output         string `yaml:"output"`
	ShowTree       bool   `yaml:"show-tree"`
	SkipWhitespace bool   `yaml:"skip-whitespace"`
	Verify         bool   `yaml:"verify"`
	LogLevel       string `yaml:"log-level"`

	// where the config was loaded from, and where Write puts it
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Output:   OutputText,
		LogLevel: "warn",
	}
}

// LoadConfig reads the YAML file at path on top of the defaults. A missing
// file returns an error matching fs.ErrNotExist.
func LoadConfig(path string) (*Config, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		// best effort, the relative path is still usable
		absPath = path
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", absPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(content, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
	}
	config.Path = absPath

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", absPath, err)
	}
	return config, nil
}

// Validate checks the enumerated values.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return fmt.Errorf("unknown output format '%s', expected %s or %s", c.Output, OutputText, OutputYAML)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level '%s': %w", c.LogLevel, err)
	}
	return level, nil
}

// Write stores the config as YAML at c.Path.
func (c *Config) Write() error {
	if c.Path == "" {
		return fmt.Errorf("config has no path")
	}

	content, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.Path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", c.Path, err)
	}
	// WriteFile keeps the mode of an existing file
	if err := os.Chmod(c.Path, 0644); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", c.Path, err)
	}
	return nil
}
