package flightplan

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/avionops/crateplan/constraint"
	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/edgeplan"
	"github.com/avionops/crateplan/edgestore"
	"github.com/avionops/crateplan/planeplan"
)

// Plan is the full output of a planning run: the ordered flight
// sequence, stamped with a RunID so repeated CLI invocations against
// the same instance can be told apart in logs and output files.
type Plan struct {
	RunID   uuid.UUID
	Flights []core.Flight
}

// Run builds an edge store and constraint store from instance, runs the
// edge planner against a cloned working copy of its demand matrix, then
// schedules the resulting edges onto planes with a PRNG seeded from
// seed. instance.Crates is never observed mutated.
func Run(instance *core.Instance, seed int64) (*Plan, error) {
	if instance == nil {
		return nil, ErrNilInstance
	}

	store := edgestore.NewStore(instance.Capacity, instance.NCities)
	cons := constraint.NewStore()

	working := instance.Crates.Clone()
	if err := edgeplan.New(store, cons, instance).Plan(working); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	flights, err := planeplan.New(store, cons, instance.PlaneStart, rng).Schedule()
	if err != nil {
		return nil, err
	}

	return &Plan{RunID: uuid.New(), Flights: flights}, nil
}
