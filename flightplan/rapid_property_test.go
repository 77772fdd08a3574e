package flightplan_test

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"

	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/flightplan"
	"github.com/avionops/crateplan/instancegen"
	"github.com/avionops/crateplan/internal/flowcheck"
)

// TestRun_PropertyBased generates random instances via rapid, in the
// style of dungo's TestProperty_GraphConnectivity (pkg/graph/graph_test.go):
// draw the generation parameters with rapid, build the artifact, then
// assert the invariants hold regardless of what rapid drew. Here the
// artifact is a flightplan.Plan and the invariants are P1 (capacity),
// P3 (origin-flow conservation via flowcheck), and P6 (plane geography).
func TestRun_PropertyBased(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nCities := rapid.IntRange(2, 6).Draw(t, "nCities")
		nPlanes := rapid.IntRange(1, 4).Draw(t, "nPlanes")
		capacity := rapid.Int64Range(1, 20).Draw(t, "capacity")
		density := rapid.Float64Range(0, 1).Draw(t, "density")
		maxCell := rapid.Int64Range(1, 25).Draw(t, "maxCell")
		seed := rapid.Int64().Draw(t, "seed")

		genRng := rand.New(rand.NewSource(seed))
		inst, err := instancegen.Generate(genRng,
			instancegen.WithCities(nCities),
			instancegen.WithPlanes(nPlanes),
			instancegen.WithCapacity(capacity),
			instancegen.WithDemandDensity(density),
			instancegen.WithMaxCellDemand(maxCell),
		)
		if err != nil {
			t.Fatalf("instancegen.Generate: %v", err)
		}

		plan, err := flightplan.Run(inst, seed)
		if err != nil {
			t.Fatalf("flightplan.Run: %v", err)
		}

		for _, f := range plan.Flights {
			var sum int64
			for _, v := range f.Cargo {
				sum += v
			}
			if sum > inst.Capacity {
				t.Fatalf("P1 violated: flight %+v carries %d > capacity %d", f, sum, inst.Capacity)
			}
		}

		for d := 0; d < inst.NCities; d++ {
			if !flowcheck.ConservationHolds(inst, plan.Flights, core.City(d)) {
				t.Fatalf("P3 violated: conservation fails for destination %d", d)
			}
		}

		perPlane := map[core.PlaneID][]core.Flight{}
		for _, f := range plan.Flights {
			perPlane[f.Plane] = append(perPlane[f.Plane], f)
		}
		for plane, flights := range perPlane {
			for k := 0; k+1 < len(flights); k++ {
				if flights[k].To != flights[k+1].From {
					t.Fatalf("P6 violated for plane %d at step %d", plane, k)
				}
			}
		}
	})
}
