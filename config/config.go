// Package config loads the lvlgrid command-line settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// Config is the top-level lvlgrid.yaml document.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Workers  int    `yaml:"workers"`
	Color    bool   `yaml:"color"`
	// Cache is the progress database path; empty disables caching.
	Cache string `yaml:"cache"`

	HeatLoss HeatLossSpec `yaml:"heatloss"`
	Cycle    CycleSpec    `yaml:"cycle"`
	Garden   GardenSpec   `yaml:"garden"`
	Trails   TrailsSpec   `yaml:"trails"`
	Expand   ExpandSpec   `yaml:"expand"`
}

// RunSpec bounds a straight run in the heat-loss search.
type RunSpec struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

type HeatLossSpec struct {
	PartA RunSpec `yaml:"part_a"`
	PartB RunSpec `yaml:"part_b"`
}

type CycleSpec struct {
	Limit   int  `yaml:"limit"`
	Hashing bool `yaml:"hashing"`
	Spins   int  `yaml:"spins"`
}

type GardenSpec struct {
	Steps         int `yaml:"steps"`
	InfiniteSteps int `yaml:"infinite_steps"`
}

type TrailsSpec struct {
	Start int `yaml:"start"`
	Peak  int `yaml:"peak"`
}

type ExpandSpec struct {
	PartA int `yaml:"part_a"`
	PartB int `yaml:"part_b"`
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return Parse(b)
}

// Parse decodes a YAML document over the defaults and validates it.
// Unknown keys are rejected.
func Parse(b []byte) (Config, error) {
	cfg := Default()
	if err := checkSchema(b); err != nil {
		return cfg, fmt.Errorf("lvlgrid.yaml: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("lvlgrid.yaml: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("lvlgrid.yaml: %w", err)
	}
	return cfg, nil
}

// Default returns the settings matching the puzzle statements.
func Default() Config {
	return Config{
		LogLevel: "info",
		Workers:  0,
		Color:    true,
		HeatLoss: HeatLossSpec{
			PartA: RunSpec{Min: 1, Max: 3},
			PartB: RunSpec{Min: 4, Max: 10},
		},
		Cycle:  CycleSpec{Limit: 1_000_000, Hashing: true, Spins: 1_000_000_000},
		Garden: GardenSpec{Steps: 64, InfiniteSteps: 26_501_365},
		Trails: TrailsSpec{Start: 0, Peak: 9},
		Expand: ExpandSpec{PartA: 2, PartB: 1_000_000},
	}
}

// Normalize canonicalises free-form fields.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate reports the first out-of-range setting.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers=%d", ErrInvalid, c.Workers)
	}
	runs := []struct {
		name string
		spec RunSpec
	}{
		{"heatloss.part_a", c.HeatLoss.PartA},
		{"heatloss.part_b", c.HeatLoss.PartB},
	}
	for _, r := range runs {
		if r.spec.Min < 1 || (r.spec.Max != 0 && r.spec.Max < r.spec.Min) {
			return fmt.Errorf("%w: %s=%d..%d", ErrInvalid, r.name, r.spec.Min, r.spec.Max)
		}
	}
	if c.Cycle.Limit <= 0 {
		return fmt.Errorf("%w: cycle.limit=%d", ErrInvalid, c.Cycle.Limit)
	}
	if c.Cycle.Spins < 0 {
		return fmt.Errorf("%w: cycle.spins=%d", ErrInvalid, c.Cycle.Spins)
	}
	if c.Garden.Steps < 0 || c.Garden.InfiniteSteps < 0 {
		return fmt.Errorf("%w: garden steps must be non-negative", ErrInvalid)
	}
	if c.Trails.Peak < c.Trails.Start {
		return fmt.Errorf("%w: trails.peak=%d below start=%d", ErrInvalid, c.Trails.Peak, c.Trails.Start)
	}
	if c.Expand.PartA < 1 || c.Expand.PartB < 1 {
		return fmt.Errorf("%w: expansion factors must be at least 1", ErrInvalid)
	}
	return nil
}
