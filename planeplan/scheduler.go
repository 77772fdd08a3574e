package planeplan

import (
	"sort"

	"github.com/avionops/crateplan/constraint"
	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/edgestore"
)

// scheduler holds the mutable availability bookkeeping of spec.md §4.E:
// the full incidence sets per city (allOut/allIn), the subsets whose
// every predecessor has already been visited (availOut/availIn), and
// the visited set itself.
type scheduler struct {
	store *edgestore.Store
	cons  *constraint.Store

	allOut [][]int // allOut[c]: every edge index leaving c, ascending
	allIn  [][]int // allIn[c]: every edge index arriving at c, ascending

	availOut []map[int]struct{} // availOut[c]: edges leaving c with all predecessors visited
	availIn  []map[int]struct{} // availIn[c]: edges arriving at c with all predecessors visited

	visited map[int]struct{}

	planePos []core.City
	flights  []core.Flight
}

func newScheduler(store *edgestore.Store, cons *constraint.Store, planeStart []core.City) *scheduler {
	n := store.NCities()
	s := &scheduler{
		store:    store,
		cons:     cons,
		allOut:   make([][]int, n),
		allIn:    make([][]int, n),
		availOut: make([]map[int]struct{}, n),
		availIn:  make([]map[int]struct{}, n),
		visited:  make(map[int]struct{}),
		planePos: append([]core.City(nil), planeStart...),
	}
	for c := 0; c < n; c++ {
		s.allOut[c] = store.OutEdges(core.City(c))
		s.allIn[c] = store.InEdges(core.City(c))
		s.availOut[c] = make(map[int]struct{})
		s.availIn[c] = make(map[int]struct{})
	}

	for idx := 0; idx < store.Len(); idx++ {
		if s.isAvailable(idx) {
			e := store.Edge(idx)
			s.availOut[e.From][idx] = struct{}{}
			s.availIn[e.To][idx] = struct{}{}
		}
	}
	return s
}

func (s *scheduler) isAvailable(idx int) bool {
	for _, p := range s.cons.PredecessorsOf(idx) {
		if _, ok := s.visited[p]; !ok {
			return false
		}
	}
	return true
}

// visit marks idx visited, removes it from its cities' availability
// sets, and promotes any newly-available successor edges leaving the
// edge's destination city.
func (s *scheduler) visit(idx int) {
	e := s.store.Edge(idx)
	delete(s.availOut[e.From], idx)
	delete(s.availIn[e.To], idx)
	s.visited[idx] = struct{}{}

	for _, cand := range s.allOut[e.To] {
		if _, ok := s.visited[cand]; ok {
			continue
		}
		if _, ok := s.availOut[e.To][cand]; ok {
			continue
		}
		if s.isAvailable(cand) {
			ce := s.store.Edge(cand)
			s.availOut[e.To][cand] = struct{}{}
			s.availIn[ce.To][cand] = struct{}{}
		}
	}
}

func (s *scheduler) anyAvailable() bool {
	for c := range s.availOut {
		if len(s.availOut[c]) > 0 {
			return true
		}
	}
	return false
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
