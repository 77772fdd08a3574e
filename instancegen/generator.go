package instancegen

import (
	"math/rand"

	"github.com/avionops/crateplan/core"
)

// Option customizes a Config before Generate runs. Mutates cfg; later
// options override earlier ones, same evaluation order as
// lvlath/builder's BuilderOption.
type Option func(cfg *Config)

// Config holds the parameters Generate samples an Instance from. There
// is no core.Graph here to populate (unlike builder's Config) — Generate
// draws a dense demand matrix and a plane-start assignment directly from
// these knobs.
type Config struct {
	nCities       int
	nPlanes       int
	capacity      int64
	demandDensity float64 // probability any given (i,j), i!=j, carries demand
	maxCellDemand int64   // inclusive upper bound on crates[i][j] when nonzero
}

// defaultConfig matches the smallest instance spec.md's worked examples
// use: two cities, one plane, capacity 30.
func defaultConfig() Config {
	return Config{
		nCities:       2,
		nPlanes:       1,
		capacity:      30,
		demandDensity: 1.0,
		maxCellDemand: 30,
	}
}

// WithCities sets the number of cities. A non-positive n is stored as
// given and rejected by Generate via ErrTooFewCities.
func WithCities(n int) Option {
	return func(cfg *Config) { cfg.nCities = n }
}

// WithPlanes sets the number of planes.
func WithPlanes(k int) Option {
	return func(cfg *Config) { cfg.nPlanes = k }
}

// WithCapacity sets the per-edge cargo capacity.
func WithCapacity(c int64) Option {
	return func(cfg *Config) { cfg.capacity = c }
}

// WithDemandDensity sets the probability that a given ordered city pair
// (i, j), i != j, carries any demand at all.
func WithDemandDensity(p float64) Option {
	return func(cfg *Config) { cfg.demandDensity = p }
}

// WithMaxCellDemand sets the inclusive upper bound on crates[i][j] for a
// pair selected to carry demand.
func WithMaxCellDemand(m int64) Option {
	return func(cfg *Config) { cfg.maxCellDemand = m }
}

func newConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// validate mirrors RandomSparse's upfront-validation shape: every
// malformed parameter gets its own sentinel error, checked before any
// sampling happens.
func (cfg Config) validate() error {
	if cfg.nCities < 1 {
		return ErrTooFewCities
	}
	if cfg.nPlanes < 0 {
		return ErrTooFewPlanes
	}
	if cfg.capacity <= 0 {
		return ErrInvalidCapacity
	}
	if cfg.demandDensity < 0 || cfg.demandDensity > 1 {
		return ErrInvalidDensity
	}
	if cfg.maxCellDemand <= 0 {
		return ErrInvalidMaxCellDemand
	}
	return nil
}

// Generate samples a core.Instance from opts using rng for every random
// decision: which (i, j) pairs carry demand, how much, and which city
// each plane starts at. Deterministic for a fixed rng stream and fixed
// options, the same guarantee RandomSparse makes for a fixed seed.
//
// Vertex/pair iteration is in ascending (i, j) order, the same
// stable-trial-order discipline RandomSparse documents, so the only
// source of variation across calls is the *rand.Rand sequence itself.
func Generate(rng *rand.Rand, opts ...Option) (*core.Instance, error) {
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, ErrNeedRandSource
	}

	m, err := core.NewMatrix(cfg.nCities)
	if err != nil {
		return nil, err
	}

	for i := 0; i < cfg.nCities; i++ {
		for j := 0; j < cfg.nCities; j++ {
			if i == j {
				continue
			}
			if rng.Float64() >= cfg.demandDensity {
				continue
			}
			amount := int64(rng.Intn(int(cfg.maxCellDemand))) + 1
			m.Set(core.City(i), core.City(j), amount)
		}
	}

	planeStart := make([]core.City, cfg.nPlanes)
	for p := 0; p < cfg.nPlanes; p++ {
		planeStart[p] = core.City(rng.Intn(cfg.nCities))
	}

	return core.NewInstance(cfg.capacity, m, planeStart)
}
