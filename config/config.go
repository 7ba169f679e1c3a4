// Package config loads roadmap run settings from YAML or TOML files.
//
// The format is chosen by file extension (.yaml/.yml or .toml). Decoded
// values are checked with go-playground/validator struct tags. Input and
// Output may be left empty in the file and supplied on the command line,
// so Load validates everything except those two and Validate checks the
// merged result.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds one run's settings.
type Config struct {
	// Input is the road map file to analyze.
	Input string `yaml:"input" toml:"input" validate:"required"`

	// Output is the report file to write.
	Output string `yaml:"output" toml:"output" validate:"required"`

	Log LogConfig `yaml:"log" toml:"log"`
}

// LogConfig configures the run logger. When File is set, output is written
// there with size and age based rotation.
type LogConfig struct {
	Level      string `yaml:"level" toml:"level" validate:"oneof=debug info warn error"`
	File       string `yaml:"file" toml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" toml:"max_size_mb" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" toml:"max_age_days" validate:"gte=0"`
}

// Default returns the settings used when no config file is given.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxAgeDays: 7,
		},
	}
}

// Load reads path over Default() and validates every field except
// Input and Output.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %q: %w", path, err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: decode yaml %q: %w", path, err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("config: decode toml %q: %w", path, err)
		}
	default:
		return cfg, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	if err := validate.StructExcept(cfg, "Input", "Output"); err != nil {
		return cfg, fmt.Errorf("config: invalid %q: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the complete configuration, including Input and Output.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// SlogLevel maps Level onto slog. An empty level means info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("config: log level: %w", err)
	}

	return lvl, nil
}
