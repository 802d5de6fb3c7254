package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tzaman/advent2021/pathsolver"
)

var (
	// ErrNoInput indicates no input file was configured.
	ErrNoInput = errors.New("chiton: input file is required")
	// ErrBadTile indicates a tile factor below 1.
	ErrBadTile = errors.New("chiton: tile factor must be at least 1")
	// ErrBadWorkers indicates a worker count below 1.
	ErrBadWorkers = errors.New("chiton: workers must be at least 1")
)

// Config holds the run settings. It is loaded from an optional YAML file and
// then overridden by any command-line flag that was set explicitly.
type Config struct {
	Input    string `yaml:"input"`
	Tile     int    `yaml:"tile"`
	Strategy string `yaml:"strategy"`
	Workers  int    `yaml:"workers"`
	Verbose  bool   `yaml:"verbose"`
	Path     bool   `yaml:"path"`
}

// DefaultConfig mirrors the puzzle: tile ×5, sequential relaxation.
func DefaultConfig() Config {
	return Config{
		Tile:     5,
		Strategy: pathsolver.StrategyRelax.String(),
		Workers:  1,
	}
}

// LoadConfig reads path as YAML on top of DefaultConfig.
// Unknown keys are rejected so typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("chiton: reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("chiton: parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and returns the parsed strategy.
func (c Config) Validate() (pathsolver.Strategy, error) {
	if c.Input == "" {
		return 0, ErrNoInput
	}
	if c.Tile < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadTile, c.Tile)
	}
	if c.Workers < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrBadWorkers, c.Workers)
	}
	return pathsolver.ParseStrategy(c.Strategy)
}

// options translates the config into solver options.
func (c Config) options(strategy pathsolver.Strategy) []pathsolver.Option {
	opts := []pathsolver.Option{
		pathsolver.WithStrategy(strategy),
		pathsolver.WithWorkers(c.Workers),
		pathsolver.WithLogger(log),
	}
	if c.Path {
		opts = append(opts, pathsolver.WithReturnPath())
	}
	return opts
}
