package planeplan

import (
	"fmt"
	"math/rand"

	"github.com/avionops/crateplan/constraint"
	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/edgestore"
)

// Planner assigns edgestore's edges to concrete planes via the two-phase
// extend/jump schedule of spec.md §4.E. rng is supplied by the caller —
// grounded on lvlath/builder's constructor-injected *rand.Rand pattern —
// so there is never package-global random state to make a Schedule call
// non-reproducible.
type Planner struct {
	store    *edgestore.Store
	cons     *constraint.Store
	planePos []core.City
	rng      *rand.Rand
}

// New returns a Planner scheduling store's edges for planes starting at
// planeStart, using rng for the extend phase's uniform-random tie-break.
func New(store *edgestore.Store, cons *constraint.Store, planeStart []core.City, rng *rand.Rand) *Planner {
	return &Planner{store: store, cons: cons, planePos: planeStart, rng: rng}
}

// Schedule runs the extend/jump loop to completion and returns the
// ordered plane-flight sequence. Schedule asserts every edge was
// visited before returning, per spec.md §4.E's "the implementation
// asserts this" — an edge left stranded indicates a cycle or
// availability bug upstream, not a recoverable condition.
func (p *Planner) Schedule() ([]core.Flight, error) {
	s := newScheduler(p.store, p.cons, p.planePos)

	for {
		p.extendPhase(s)
		if !s.anyAvailable() {
			break
		}
		p.jumpOnce(s)
	}

	if len(s.visited) != p.store.Len() {
		panic(fmt.Sprintf("planeplan: schedule terminated with %d of %d edges visited", len(s.visited), p.store.Len()))
	}
	return s.flights, nil
}

// extendPhase round-robins over planes, draining each plane's current
// city of available out-edges before moving to the next plane, and
// repeats the full round-robin until a pass makes no progress anywhere
// — a later plane's extension can make an earlier plane's city newly
// available.
func (p *Planner) extendPhase(s *scheduler) {
	for {
		progressed := false
		for plane := 0; plane < len(s.planePos); plane++ {
			for {
				city := s.planePos[plane]
				avail := sortedKeys(s.availOut[city])
				if len(avail) == 0 {
					break
				}
				idx := avail[p.rng.Intn(len(avail))]
				e := s.store.Edge(idx)
				s.visit(idx)
				s.flights = append(s.flights, core.Flight{
					Plane: core.PlaneID(plane),
					From:  e.From,
					To:    e.To,
					Cargo: e.Cargo,
				})
				s.planePos[plane] = e.To
				progressed = true
			}
		}
		if !progressed {
			return
		}
	}
}

// jumpOnce emits one zero-cargo repositioning flight, moving the plane
// with the least remaining local work to the city with the most
// stranded supply.
func (p *Planner) jumpOnce(s *scheduler) {
	jumpCity, ok := p.pickJumpCity(s)
	if !ok {
		return
	}
	plane := p.pickJumpingPlane(s)

	from := s.planePos[plane]
	nCities := len(s.allOut)
	s.flights = append(s.flights, core.Flight{
		Plane: core.PlaneID(plane),
		From:  from,
		To:    jumpCity,
		Cargo: make([]int64, nCities),
	})
	s.planePos[plane] = jumpCity
}

// pickJumpCity chooses the city c with available_out[c] non-empty that
// maximizes |available_out[c]| - |available_in[c]|, ties broken by city
// index ascending.
func (p *Planner) pickJumpCity(s *scheduler) (core.City, bool) {
	best := -1
	bestScore := 0
	found := false
	for c := 0; c < len(s.availOut); c++ {
		if len(s.availOut[c]) == 0 {
			continue
		}
		score := len(s.availOut[c]) - len(s.availIn[c])
		if !found || score > bestScore {
			best, bestScore, found = c, score, true
		}
	}
	return core.City(best), found
}

// pickJumpingPlane chooses the plane positioned where the least
// unvisited local work remains, ties broken by plane index ascending.
func (p *Planner) pickJumpingPlane(s *scheduler) int {
	best := 0
	bestRemaining := -1
	for plane := 0; plane < len(s.planePos); plane++ {
		remaining := 0
		for _, idx := range s.allOut[s.planePos[plane]] {
			if _, ok := s.visited[idx]; !ok {
				remaining++
			}
		}
		if bestRemaining == -1 || remaining < bestRemaining {
			best, bestRemaining = plane, remaining
		}
	}
	return best
}
