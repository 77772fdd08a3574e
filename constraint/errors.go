package constraint

import "errors"

var (
	// ErrSelfConstraint indicates an attempt to add (a, a).
	ErrSelfConstraint = errors.New("constraint: a and b must differ")

	// ErrCycle indicates an attempt to add (a, b) when (b, a) is already
	// present — the store's own defense of acyclicity at the boundary
	// with callers that have not already verified it.
	ErrCycle = errors.New("constraint: adding this pair would create a cycle")
)
