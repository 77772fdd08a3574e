package core

import "errors"

// Sentinel errors for core construction and validation. Callers branch on
// these with errors.Is; the planner never returns an ad hoc error for a
// classifiable malformed-input condition.
var (
	// ErrInvalidDimensions indicates a non-positive matrix dimension.
	ErrInvalidDimensions = errors.New("core: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates a row or column index outside [0, n).
	ErrIndexOutOfBounds = errors.New("core: index out of bounds")

	// ErrInvalidCapacity indicates a non-positive plane capacity.
	ErrInvalidCapacity = errors.New("core: capacity must be > 0")

	// ErrNegativeDemand indicates a negative crate count in the matrix.
	ErrNegativeDemand = errors.New("core: crate counts must be non-negative")

	// ErrNonZeroDiagonal indicates crates[i][i] != 0 for some city i.
	ErrNonZeroDiagonal = errors.New("core: demand diagonal must be zero")

	// ErrPlaneOutOfRange indicates a plane's start city is outside [0, n).
	ErrPlaneOutOfRange = errors.New("core: plane start city out of range")

	// ErrNoPlanes indicates an instance with demand but no planes to fly it.
	ErrNoPlanes = errors.New("core: instance has demand but no planes")
)
