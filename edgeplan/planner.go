package edgeplan

import (
	"fmt"
	"sort"

	"github.com/avionops/crateplan/constraint"
	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/edgestore"
)

// Planner realizes a demand matrix into edges and precedence
// constraints. It owns no state of its own beyond the store and
// constraint store it grows; those are supplied by the caller
// (flightplan.Run) and outlive a single Plan call.
type Planner struct {
	store    *edgestore.Store
	cons     *constraint.Store
	instance *core.Instance
}

// New returns a Planner that grows store and cons against instance's
// capacity and city count.
func New(store *edgestore.Store, cons *constraint.Store, instance *core.Instance) *Planner {
	return &Planner{store: store, cons: cons, instance: instance}
}

type demandPair struct {
	i, j   core.City
	amount int64
}

// Plan realizes crates into edges, decrementing crates to the zero
// matrix. crates is a working copy owned by the caller (flightplan.Run
// clones Instance.Crates before calling Plan) — this method mutates it
// in place.
//
// Pairs are processed in descending order of their original demand,
// ties broken by (i, j) ascending, per spec.md §4.D: this biases large
// flows toward dedicated full-capacity edges and leaves the long tail
// of small flows to reuse slack left behind by earlier pairs.
func (p *Planner) Plan(crates *core.Matrix) error {
	pairs := p.orderedPairs(crates)
	for _, pr := range pairs {
		if err := p.planPair(crates, pr.i, pr.j); err != nil {
			return err
		}
	}
	return nil
}

func (p *Planner) orderedPairs(crates *core.Matrix) []demandPair {
	n := p.instance.NCities
	pairs := make([]demandPair, 0, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			amount := crates.At(core.City(i), core.City(j))
			if amount == 0 {
				continue
			}
			pairs = append(pairs, demandPair{i: core.City(i), j: core.City(j), amount: amount})
		}
	}
	sort.Slice(pairs, func(a, b int) bool {
		if pairs[a].amount != pairs[b].amount {
			return pairs[a].amount > pairs[b].amount
		}
		if pairs[a].i != pairs[b].i {
			return pairs[a].i < pairs[b].i
		}
		return pairs[a].j < pairs[b].j
	})
	return pairs
}

func (p *Planner) planPair(crates *core.Matrix, i, j core.City) error {
	capacity := p.store.Capacity()

	// 1. Bulk direct flights.
	for crates.At(i, j) >= capacity {
		if _, err := p.store.Add(i, j, capacity); err != nil {
			panic(fmt.Errorf("edgeplan: bulk Add(%d,%d,%d): %w", i, j, capacity, err))
		}
		crates.Add(i, j, -capacity)
	}

	// 2. Transshipment reuse.
	walker := newPathWalker(p.store, p.cons, j)
	for crates.At(i, j) > 0 {
		path, ok := walker.search(i)
		if !ok {
			break
		}

		pathCap := p.store.Remaining(path[0])
		for _, idx := range path[1:] {
			if r := p.store.Remaining(idx); r < pathCap {
				pathCap = r
			}
		}
		amount := pathCap
		if remaining := crates.At(i, j); remaining < amount {
			amount = remaining
		}

		for _, idx := range path {
			if err := p.store.Increment(idx, j, amount); err != nil {
				panic(fmt.Errorf("edgeplan: Increment(%d,%d,%d): %w", idx, j, amount, err))
			}
		}
		for k := 0; k+1 < len(path); k++ {
			if err := p.cons.Add(path[k], path[k+1]); err != nil {
				panic(fmt.Errorf("edgeplan: constraints.Add(%d,%d): %w", path[k], path[k+1], err))
			}
		}
		crates.Add(i, j, -amount)
	}

	// 3. Residual direct flight.
	if residual := crates.At(i, j); residual > 0 {
		if _, err := p.store.Add(i, j, residual); err != nil {
			panic(fmt.Errorf("edgeplan: residual Add(%d,%d,%d): %w", i, j, residual, err))
		}
		crates.Add(i, j, -residual)
	}

	return nil
}
