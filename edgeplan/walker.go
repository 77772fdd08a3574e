package edgeplan

import (
	"sort"

	"github.com/avionops/crateplan/constraint"
	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/edgestore"
)

// pathItem pairs a discovered city with the edge indices used to reach
// it from the search's origin.
type pathItem struct {
	city core.City
	path []int
}

// pathWalker is a breadth-first search over the edge graph: nodes are
// cities, arcs are existing edges with slack. Modeled on the teacher's
// bfs.walker (queueItem/loop/dequeue/visit split), generalized with an
// edge usability predicate that consults both remaining capacity and
// the constraint store, since not every edge with slack may legally
// extend a given path.
type pathWalker struct {
	store   *edgestore.Store
	cons    *constraint.Store
	target  core.City
	queue   []pathItem
	visited map[core.City]bool
}

func newPathWalker(store *edgestore.Store, cons *constraint.Store, target core.City) *pathWalker {
	return &pathWalker{store: store, cons: cons, target: target}
}

// search runs a constrained BFS from the given city to w.target and
// returns the ordered list of edge indices forming the path, or
// (nil, false) if no usable path exists. First discovery wins; ties
// among candidate edges from the same city are broken by destination
// city index.
func (w *pathWalker) search(from core.City) ([]int, bool) {
	w.queue = []pathItem{{city: from}}
	w.visited = map[core.City]bool{from: true}

	for len(w.queue) > 0 {
		item := w.dequeue()
		for _, e := range w.candidates(item) {
			if w.visited[e.To] {
				continue
			}
			next := append(append([]int(nil), item.path...), e.Index)
			if e.To == w.target {
				return next, true
			}
			w.visited[e.To] = true
			w.queue = append(w.queue, pathItem{city: e.To, path: next})
		}
	}
	return nil, false
}

func (w *pathWalker) dequeue() pathItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// candidates returns the usable out-edges of item.city sorted by
// destination city index, so neighbor discovery order is deterministic.
func (w *pathWalker) candidates(item pathItem) []edgestore.Edge {
	indices := w.store.OutEdges(item.city)
	out := make([]edgestore.Edge, 0, len(indices))
	for _, idx := range indices {
		if !w.usable(idx, item.path) {
			continue
		}
		out = append(out, w.store.Edge(idx))
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].To < out[b].To })
	return out
}

// usable reports whether edge idx may extend a path whose edges so far
// are pathSoFar: it must have remaining capacity, and for every edge e
// already on the path, (idx, e) must not already be a constraint —
// otherwise committing this path would require (e, idx) later while
// (idx, e) already exists, a cycle. This is the forward-only check
// spec.md's Open Question 1 calls for, deliberately not strengthened to
// also check (e, idx) for intermediate e.
func (w *pathWalker) usable(idx int, pathSoFar []int) bool {
	if w.store.Remaining(idx) <= 0 {
		return false
	}
	for _, e := range pathSoFar {
		if w.cons.Contains(idx, e) {
			return false
		}
	}
	return true
}
