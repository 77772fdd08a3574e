package edgestore

import (
	"sync"

	"github.com/avionops/crateplan/core"
)

// Edge is a single flight slot: a directed (From, To) arc carrying a
// cargo vector indexed by final destination. Cargo[From] is always zero;
// sum(Cargo) never exceeds the store's capacity.
type Edge struct {
	Index int
	From  core.City
	To    core.City
	Cargo []int64
}

// remaining returns capacity - sum(cargo).
func (e Edge) remaining(capacity int64) int64 {
	var sum int64
	for _, v := range e.Cargo {
		sum += v
	}
	return capacity - sum
}

// Store is the append-only multigraph of flight slots grown by edgeplan
// and read by planeplan. A single RWMutex guards both the edge catalog
// and the per-city adjacency index; unlike core.Matrix (a pure value
// type needing no lock) this store is shared between the two planning
// stages and mutated only by edgeplan, read concurrently by nothing else
// in this version — the lock exists for the same defensive reason the
// teacher's graph guards adjacency mutation, not because crateplan
// itself plans across goroutines today.
type Store struct {
	mu       sync.RWMutex
	capacity int64
	nCities  int
	edges    []Edge
	outEdges [][]int // outEdges[c] = indices of edges leaving c, insertion order
	inEdges  [][]int // inEdges[c] = indices of edges arriving at c, insertion order
}

// NewStore allocates an empty Store for nCities cities and the given
// per-edge capacity.
func NewStore(capacity int64, nCities int) *Store {
	return &Store{
		capacity: capacity,
		nCities:  nCities,
		outEdges: make([][]int, nCities),
		inEdges:  make([][]int, nCities),
	}
}

// Add appends a new edge (i, j) whose cargo vector is zero except
// Cargo[j] = amount. Requires i != j and 0 < amount <= capacity.
func (s *Store) Add(i, j core.City, amount int64) (int, error) {
	if i == j {
		return 0, ErrLoopEdge
	}
	if amount <= 0 {
		return 0, ErrNonPositiveAmount
	}
	if amount > s.capacity {
		return 0, ErrCapacityExceeded
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cargo := make([]int64, s.nCities)
	cargo[j] = amount

	idx := len(s.edges)
	s.edges = append(s.edges, Edge{Index: idx, From: i, To: j, Cargo: cargo})
	s.outEdges[i] = append(s.outEdges[i], idx)
	s.inEdges[j] = append(s.inEdges[j], idx)
	return idx, nil
}

// Increment adds amount crates destined for d to an existing edge. The
// caller (edgeplan, which computes amount from the path's minimum
// remaining capacity) is responsible for ensuring the edge has enough
// slack; Increment still checks and returns ErrCapacityExceeded rather
// than silently overflowing, and ErrSelfCargo if d is the edge's own
// origin.
func (s *Store) Increment(idx int, d core.City, amount int64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx < 0 || idx >= len(s.edges) {
		return ErrEdgeNotFound
	}
	e := &s.edges[idx]
	if d == e.From {
		return ErrSelfCargo
	}
	if e.remaining(s.capacity) < amount {
		return ErrCapacityExceeded
	}
	e.Cargo[d] += amount
	return nil
}

// Remaining returns capacity - sum(cargo) for the edge at idx.
func (s *Store) Remaining(idx int) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.edges[idx].remaining(s.capacity)
}

// Edge returns a copy of the edge at idx. The returned Cargo slice is
// independent of the store's internal state; callers may not mutate an
// edge through this method.
func (s *Store) Edge(idx int) Edge {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e := s.edges[idx]
	cargo := make([]int64, len(e.Cargo))
	copy(cargo, e.Cargo)
	e.Cargo = cargo
	return e
}

// Len returns the number of edges in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.edges)
}

// OutEdges returns a snapshot of edge indices leaving city c, in
// insertion (ascending index) order.
func (s *Store) OutEdges(c core.City) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int(nil), s.outEdges[c]...)
}

// InEdges returns a snapshot of edge indices arriving at city c, in
// insertion (ascending index) order.
func (s *Store) InEdges(c core.City) []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]int(nil), s.inEdges[c]...)
}

// Capacity returns the per-edge cargo capacity the store enforces.
func (s *Store) Capacity() int64 {
	return s.capacity
}

// NCities returns the number of cities the store was sized for.
func (s *Store) NCities() int {
	return s.nCities
}
