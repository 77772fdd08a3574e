package edgestore

import "errors"

var (
	// ErrLoopEdge indicates an attempt to add an edge from a city to itself.
	ErrLoopEdge = errors.New("edgestore: from and to must differ")

	// ErrNonPositiveAmount indicates a non-positive cargo amount on Add.
	ErrNonPositiveAmount = errors.New("edgestore: amount must be > 0")

	// ErrCapacityExceeded indicates an Add/Increment would push an edge
	// over capacity.
	ErrCapacityExceeded = errors.New("edgestore: amount exceeds remaining capacity")

	// ErrEdgeNotFound indicates an out-of-range edge index.
	ErrEdgeNotFound = errors.New("edgestore: edge index not found")

	// ErrSelfCargo indicates a destination equal to the edge's own origin,
	// which cargo vectors never carry (an edge never routes cargo back to
	// the city it started from).
	ErrSelfCargo = errors.New("edgestore: cargo destination must differ from edge origin")
)
