// Package config loads the run configuration of the opsearch CLI from YAML,
// applies environment overrides and converts it into engine options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/katalvlaran/opsearch/calibrate"
	"github.com/katalvlaran/opsearch/operator"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Environment variables that override file values.
const (
	EnvOperators      = "OPSEARCH_OPERATORS"
	EnvStrategy       = "OPSEARCH_STRATEGY"
	EnvWorkers        = "OPSEARCH_WORKERS"
	EnvMaxAssignments = "OPSEARCH_MAX_ASSIGNMENTS"
	EnvLogLevel       = "OPSEARCH_LOG_LEVEL"
)

// Config holds all opsearch settings.
type Config struct {
	// Operators is the alphabet, e.g. [add, mul, concat].
	Operators []string `yaml:"operators"`

	// Strategy is "exhaustive" or "pruned".
	Strategy string `yaml:"strategy"`

	// Workers is the number of equations searched concurrently.
	Workers int `yaml:"workers"`

	// MaxAssignments rejects equations with more kⁿ candidates; 0 = unlimited.
	MaxAssignments uint64 `yaml:"max_assignments"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Operators:      []string{"add", "mul"},
		Strategy:       calibrate.Exhaustive.String(),
		Workers:        runtime.GOMAXPROCS(0),
		MaxAssignments: 0,
		LogLevel:       "info",
	}
}

// Load reads configuration from a YAML file on top of Default.
// A missing file yields the defaults. Environment overrides are applied
// after the file and the result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			// defaults
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}

	return data, nil
}

// applyEnvOverrides replaces file values with non-empty environment values.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv(EnvOperators); v != "" {
		c.Operators = strings.Split(v, ",")
	}
	if v := os.Getenv(EnvStrategy); v != "" {
		c.Strategy = v
	}
	if v := os.Getenv(EnvWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvWorkers, v, err)
		}
		c.Workers = n
	}
	if v := os.Getenv(EnvMaxAssignments); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %w", ErrInvalid, EnvMaxAssignments, v, err)
		}
		c.MaxAssignments = n
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}

	return nil
}

// Validate checks every field can be converted to its engine type.
func (c *Config) Validate() error {
	if _, err := c.Alphabet(); err != nil {
		return fmt.Errorf("%w: operators: %w", ErrInvalid, err)
	}
	if _, err := c.SearchStrategy(); err != nil {
		return fmt.Errorf("%w: strategy: %w", ErrInvalid, err)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("%w: log_level: %w", ErrInvalid, err)
	}

	return nil
}

// Alphabet parses Operators.
func (c *Config) Alphabet() (operator.Alphabet, error) {
	return operator.ParseNames(c.Operators)
}

// SearchStrategy parses Strategy.
func (c *Config) SearchStrategy() (calibrate.Strategy, error) {
	return calibrate.ParseStrategy(c.Strategy)
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

// EngineOptions converts the configuration into calibrate options that log
// through logger. Call Validate first; invalid fields are skipped here.
func (c *Config) EngineOptions(logger *zap.Logger) []calibrate.Option {
	opts := []calibrate.Option{
		calibrate.WithLogger(logger),
		calibrate.WithMaxAssignments(c.MaxAssignments),
	}
	if s, err := c.SearchStrategy(); err == nil {
		opts = append(opts, calibrate.WithStrategy(s))
	}
	if c.Workers > 0 {
		opts = append(opts, calibrate.WithWorkers(c.Workers))
	}

	return opts
}
