package flightconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/avionops/crateplan/instancegen"
)

// GenerateConfig mirrors instancegen's Option set for the CLI's generate
// subcommand, so a config file can drive synthetic-instance generation
// without hand-written flags for every knob.
type GenerateConfig struct {
	Cities        int     `yaml:"cities"`
	Planes        int     `yaml:"planes"`
	DemandDensity float64 `yaml:"demandDensity"`
	MaxCellDemand int64   `yaml:"maxCellDemand"`
}

// Config is the only recognized configuration surface (spec.md §6):
// Capacity and an optional Seed for the planner, plus an optional
// Generate block for the generate subcommand.
type Config struct {
	Capacity int64           `yaml:"capacity"`
	Seed     *int64          `yaml:"seed,omitempty"`
	Generate *GenerateConfig `yaml:"generate,omitempty"`
}

// Load reads path, unmarshals it as YAML, and validates the result.
// Capacity <= 0 is rejected here rather than defaulted, since spec.md §7
// classifies it as malformed input that must surface at the boundary,
// not silently substituted.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("flightconfig: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("flightconfig: parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flightconfig: validating %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks every field against spec.md §6/§7's recognized-option
// and malformed-input rules.
func (c *Config) Validate() error {
	if c.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	if c.Generate != nil {
		if err := c.Generate.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks GenerateConfig's fields against instancegen's
// acceptance rules, duplicated here (rather than deferred to
// instancegen.Generate) so a malformed config file is rejected at load
// time instead of at first use.
func (g *GenerateConfig) Validate() error {
	if g.Cities <= 0 {
		return ErrInvalidGenerateCities
	}
	if g.Planes < 0 {
		return ErrInvalidGeneratePlanes
	}
	if g.DemandDensity < 0 || g.DemandDensity > 1 {
		return ErrInvalidGenerateDensity
	}
	if g.MaxCellDemand <= 0 {
		return ErrInvalidGenerateMaxCellDemand
	}
	return nil
}

// Options translates a validated GenerateConfig into instancegen.Option
// values, so cmd/crateplan's generate subcommand doesn't need to know
// instancegen's option names.
func (g *GenerateConfig) Options(capacity int64) []instancegen.Option {
	return []instancegen.Option{
		instancegen.WithCities(g.Cities),
		instancegen.WithPlanes(g.Planes),
		instancegen.WithCapacity(capacity),
		instancegen.WithDemandDensity(g.DemandDensity),
		instancegen.WithMaxCellDemand(g.MaxCellDemand),
	}
}
