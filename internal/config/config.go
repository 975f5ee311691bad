// Package config loads the optional YAML settings file of the aoc command.
//
// Example:
//
//	workers: 8
//	bench_iterations: 10
//	log_level: debug
//	verify: true
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc2024/internal/logging"
)

// ErrInvalidConfig indicates a value outside its accepted range.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config holds the tunable settings. Zero values are replaced by defaults.
type Config struct {
	// Workers bounds concurrent report evaluation.
	Workers int `yaml:"workers"`
	// BenchIterations is the number of timed runs for --bench; 0 disables timing.
	BenchIterations int `yaml:"bench_iterations"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// Verify cross-checks bitmask verdicts against the naive evaluator.
	Verify bool `yaml:"verify"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:         runtime.GOMAXPROCS(0),
		BenchIterations: 0,
		LogLevel:        "info",
		Verify:          false,
	}
}

// Load reads path and overlays it on Default. An empty path returns Default.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks ranges and the log level name.
func (c Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.BenchIterations < 0 {
		return fmt.Errorf("%w: bench_iterations must be ≥ 0, got %d", ErrInvalidConfig, c.BenchIterations)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}
