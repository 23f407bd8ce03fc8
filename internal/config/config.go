package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"PmergeMe/FordJohnson/chain"
)

var ErrInvalid = errors.New("invalid configuration")

// Config holds all pmergeme settings. Command-line flags override it.
type Config struct {
	// Containers to run the sort on, in order: vector, deque
	Containers []string `yaml:"containers"`

	Display DisplayConfig `yaml:"display"`
	Bench   BenchConfig   `yaml:"bench"`
	History HistoryConfig `yaml:"history"`
	Logging LoggingConfig `yaml:"logging"`
}

type DisplayConfig struct {
	MaxElements int    `yaml:"max_elements"` // values printed before " [...]"
	Color       string `yaml:"color"`        // auto, always, never
}

type BenchConfig struct {
	Sizes    []int `yaml:"sizes"`
	Runs     int   `yaml:"runs"`
	Seed     int64 `yaml:"seed"`
	MaxValue int   `yaml:"max_value"`
}

// HistoryConfig points at the bbolt file benchmark sessions are stored in.
// An empty path disables history.
type HistoryConfig struct {
	Path string `yaml:"path"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

func DefaultConfig() *Config {
	return &Config{
		Containers: []string{chain.KindVector.String(), chain.KindDeque.String()},
		Display: DisplayConfig{
			MaxElements: 10,
			Color:       "auto",
		},
		Bench: BenchConfig{
			Sizes:    []int{1000, 3000},
			Runs:     3,
			Seed:     42,
			MaxValue: 1000000,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Kinds resolves Containers.
func (c *Config) Kinds() ([]chain.Kind, error) {
	kinds := make([]chain.Kind, 0, len(c.Containers))
	for _, name := range c.Containers {
		k, err := chain.ParseKind(name)
		if err != nil {
			return nil, fmt.Errorf("%w: containers: %w", ErrInvalid, err)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func (c *Config) Validate() error {
	if len(c.Containers) == 0 {
		return fmt.Errorf("%w: containers must not be empty", ErrInvalid)
	}
	if _, err := c.Kinds(); err != nil {
		return err
	}
	if c.Display.MaxElements < 1 {
		return fmt.Errorf("%w: display.max_elements must be positive, got %d", ErrInvalid, c.Display.MaxElements)
	}
	switch strings.ToLower(c.Display.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: display.color must be auto, always or never, got %q", ErrInvalid, c.Display.Color)
	}
	if len(c.Bench.Sizes) == 0 {
		return fmt.Errorf("%w: bench.sizes must not be empty", ErrInvalid)
	}
	for _, n := range c.Bench.Sizes {
		if n < 1 {
			return fmt.Errorf("%w: bench.sizes must be positive, got %d", ErrInvalid, n)
		}
	}
	if c.Bench.Runs < 1 {
		return fmt.Errorf("%w: bench.runs must be positive, got %d", ErrInvalid, c.Bench.Runs)
	}
	if c.Bench.MaxValue < 1 {
		return fmt.Errorf("%w: bench.max_value must be positive, got %d", ErrInvalid, c.Bench.MaxValue)
	}
	return nil
}
