package flightconfig

import "errors"

// Sentinel errors for configuration loading and validation.
var (
	// ErrInvalidCapacity indicates a non-positive capacity.
	ErrInvalidCapacity = errors.New("flightconfig: capacity must be > 0")

	// ErrInvalidGenerateCities indicates a non-positive generate.cities.
	ErrInvalidGenerateCities = errors.New("flightconfig: generate.cities must be > 0")

	// ErrInvalidGeneratePlanes indicates a negative generate.planes.
	ErrInvalidGeneratePlanes = errors.New("flightconfig: generate.planes must be >= 0")

	// ErrInvalidGenerateDensity indicates generate.demandDensity outside [0,1].
	ErrInvalidGenerateDensity = errors.New("flightconfig: generate.demandDensity must be in [0,1]")

	// ErrInvalidGenerateMaxCellDemand indicates a non-positive generate.maxCellDemand.
	ErrInvalidGenerateMaxCellDemand = errors.New("flightconfig: generate.maxCellDemand must be > 0")
)
