package instancegen

import "errors"

// ErrTooFewCities indicates NCities is smaller than the minimum of 1.
var ErrTooFewCities = errors.New("instancegen: too few cities")

// ErrTooFewPlanes indicates NPlanes is negative.
var ErrTooFewPlanes = errors.New("instancegen: planes must be non-negative")

// ErrInvalidCapacity indicates Capacity is not strictly positive.
var ErrInvalidCapacity = errors.New("instancegen: capacity must be positive")

// ErrInvalidDensity indicates DemandDensity is outside the closed
// interval [0,1].
var ErrInvalidDensity = errors.New("instancegen: demand density out of range")

// ErrInvalidMaxCellDemand indicates MaxCellDemand is not strictly
// positive.
var ErrInvalidMaxCellDemand = errors.New("instancegen: max cell demand must be positive")

// ErrNeedRandSource indicates Generate was called with a nil *rand.Rand.
var ErrNeedRandSource = errors.New("instancegen: rng is required")
