// Package config loads the optional waterlog.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where the application looks for its settings.
const DefaultPath = "waterlog.yaml"

const (
	DriverCSV    = "csv"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config is the whole application configuration.
type Config struct {
	Storage    StorageConfig    `yaml:"storage"`
	Suggestion SuggestionConfig `yaml:"suggestion"`
	Chart      ChartConfig      `yaml:"chart"`
	Log        LogConfig        `yaml:"log"`
}

// StorageConfig selects the dataset backend.
type StorageConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
}

// SuggestionConfig tunes how suggested water is computed.
type SuggestionConfig struct {
	// MinWaterFloor enables the legacy rule that a session animal always gets
	// at least 1 mL in total.
	MinWaterFloor bool `yaml:"min_water_floor"`
	// RequireBaseline rejects non-baseline entries for subjects with no baseline.
	RequireBaseline bool `yaml:"require_baseline"`
}

// ChartConfig controls the weight chart.
type ChartConfig struct {
	Points int `yaml:"points"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{Driver: DriverCSV, Path: "water-log_VR.csv"},
		Chart:   ChartConfig{Points: 20},
		Log:     LogConfig{Path: "waterlog.log", Level: "info"},
	}
}

// LoadConfig reads configuration from the specified YAML file. Keys missing
// from the file keep their defaults; a missing file yields Default().
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot use.
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverCSV, DriverSQLite, DriverMemory:
	default:
		return fmt.Errorf("storage.driver: unknown driver %q", c.Storage.Driver)
	}
	if c.Storage.Driver != DriverMemory && strings.TrimSpace(c.Storage.Path) == "" {
		return errors.New("storage.path is required")
	}
	if c.Chart.Points <= 0 {
		return fmt.Errorf("chart.points must be positive, got %d", c.Chart.Points)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
