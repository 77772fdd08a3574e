package core

// Instance is the input to the planner: a capacity, a crate demand
// matrix, and the initial city of each plane. Instance is immutable once
// constructed — NewInstance validates and stores a defensive clone of
// crates, and nothing in this package ever mutates Crates again. Callers
// that plan against an Instance (flightplan.Run) clone Crates
// themselves before decrementing a working copy.
type Instance struct {
	Capacity   int64
	NCities    int
	Crates     *Matrix
	PlaneStart []City
}

// NewInstance validates crates and planeStart against capacity/NCities
// and returns a new Instance holding an independent copy of crates, so
// the caller's matrix is never observed mutated by the planner.
//
// Malformed input (spec §7) is rejected here, at the boundary:
//   - capacity <= 0
//   - any crates[i][j] < 0
//   - crates[i][i] != 0 for some i
//   - any planeStart[p] outside [0, NCities)
//   - nonzero demand with zero planes (spec §9, Open Question 2)
func NewInstance(capacity int64, crates *Matrix, planeStart []City) (*Instance, error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	n := crates.N()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := crates.At(City(i), City(j))
			if v < 0 {
				return nil, ErrNegativeDemand
			}
			if i == j && v != 0 {
				return nil, ErrNonZeroDiagonal
			}
		}
	}
	for _, p := range planeStart {
		if int(p) < 0 || int(p) >= n {
			return nil, ErrPlaneOutOfRange
		}
	}
	if len(planeStart) == 0 {
		for i := 0; i < n; i++ {
			if crates.RowSum(City(i)) != 0 {
				return nil, ErrNoPlanes
			}
		}
	}

	return &Instance{
		Capacity:   capacity,
		NCities:    n,
		Crates:     crates.Clone(),
		PlaneStart: append([]City(nil), planeStart...),
	}, nil
}

// NPlanes returns the number of planes in the instance.
func (in *Instance) NPlanes() int { return len(in.PlaneStart) }

// LowerBound returns the trivial lower bound on total flight count: the
// larger of the per-origin and per-destination capacity-packing bounds.
// It is a quality yardstick for tests (spec §4.A, P8), never a planning
// input.
func (in *Instance) LowerBound() int64 {
	var byOrigin, byDest int64
	for c := 0; c < in.NCities; c++ {
		byOrigin += ceilDiv(in.Crates.RowSum(City(c)), in.Capacity)
		byDest += ceilDiv(in.Crates.ColSum(City(c)), in.Capacity)
	}
	if byOrigin > byDest {
		return byOrigin
	}
	return byDest
}

func ceilDiv(a, b int64) int64 {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}
