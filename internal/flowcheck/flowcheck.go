package flowcheck

import "github.com/avionops/crateplan/core"

// ConservationHolds reports whether flights, restricted to their
// d-bound cargo, carry exactly instance.Crates.ColSum(d) units of flow
// from origins to d. It builds a super-source node feeding each origin
// i with capacity instance.Crates.At(i, d), one arc per flight with
// capacity flight.Cargo[d] (repositioning flights contribute zero, so
// no filtering is needed), and runs Edmonds-Karp (BFS augmenting paths
// over the residual graph, grounded on lvlath/flow's algorithm) from the
// super-source to d.
//
// flights may be either a Plan's full flight sequence or the edge set a
// planner produced directly (P7 guarantees they carry the same cargo
// multiset) — flowcheck only reads From/To/Cargo.
func ConservationHolds(instance *core.Instance, flights []core.Flight, d core.City) bool {
	n := instance.NCities
	superSource := n // node index n is the synthetic super-source

	capacity := make([][]int64, n+1)
	for i := range capacity {
		capacity[i] = make([]int64, n+1)
	}

	var expected int64
	for i := 0; i < n; i++ {
		if core.City(i) == d {
			continue
		}
		amount := instance.Crates.At(core.City(i), d)
		if amount > 0 {
			capacity[superSource][i] += amount
			expected += amount
		}
	}

	for _, f := range flights {
		amount := f.Cargo[d]
		if amount > 0 {
			capacity[f.From][f.To] += amount
		}
	}

	return maxFlow(capacity, superSource, int(d)) == expected
}

// maxFlow runs Edmonds-Karp over a dense residual capacity matrix,
// returning the maximum flow from source to sink.
func maxFlow(capacity [][]int64, source, sink int) int64 {
	n := len(capacity)
	residual := make([][]int64, n)
	for i := range residual {
		residual[i] = make([]int64, n)
		copy(residual[i], capacity[i])
	}

	var total int64
	for {
		parent, bottleneck := augmentingPath(residual, source, sink)
		if parent == nil {
			break
		}
		for v := sink; v != source; {
			u := parent[v]
			residual[u][v] -= bottleneck
			residual[v][u] += bottleneck
			v = u
		}
		total += bottleneck
	}
	return total
}

// augmentingPath runs a BFS for the shortest augmenting path from
// source to sink in the residual graph, returning the parent array and
// the path's bottleneck capacity, or (nil, 0) if sink is unreachable.
func augmentingPath(residual [][]int64, source, sink int) ([]int, int64) {
	n := len(residual)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}
	parent[source] = source

	queue := []int{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < n; v++ {
			if residual[u][v] > 0 && parent[v] == -1 {
				parent[v] = u
				if v == sink {
					return parent, bottleneckOf(residual, parent, source, sink)
				}
				queue = append(queue, v)
			}
		}
	}
	return nil, 0
}

func bottleneckOf(residual [][]int64, parent []int, source, sink int) int64 {
	var bottleneck int64 = -1
	for v := sink; v != source; {
		u := parent[v]
		if bottleneck == -1 || residual[u][v] < bottleneck {
			bottleneck = residual[u][v]
		}
		v = u
	}
	return bottleneck
}
