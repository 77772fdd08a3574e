package main

import (
	"flag"
	"fmt"

	"github.com/avionops/crateplan/core"
	"github.com/avionops/crateplan/flightio"
	"github.com/avionops/crateplan/internal/flowcheck"
)

// runValidate re-checks a plan against its instance for every property
// that is recoverable from the Instance/Plan pair alone (spec.md §8):
// P1 (capacity), P2/P3 (destination conservation, via flowcheck), and
// P6 (plane geography). P4/P5/P7 require the edge store and constraint
// store that produced the plan, which the on-disk format does not carry
// (spec.md §6: "the on-disk textual format... is not part of the
// core") — those properties are exercised directly against the planner
// packages in their own test suites instead.
func runValidate(args []string) error {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	instancePath := fs.String("instance", "", "Path to instance JSON file (required)")
	planPath := fs.String("plan", "", "Path to plan JSON file (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *instancePath == "" || *planPath == "" {
		return fmt.Errorf("validate: -instance and -plan are required")
	}

	inst, err := flightio.ReadInstance(*instancePath)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	plan, err := flightio.ReadPlan(*planPath, inst.NCities)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	if err := checkCapacity(inst, plan.Flights); err != nil {
		return fmt.Errorf("validate: P1 capacity: %w", err)
	}
	if err := checkConservation(inst, plan.Flights); err != nil {
		return fmt.Errorf("validate: P2/P3 conservation: %w", err)
	}
	if err := checkGeography(plan.Flights); err != nil {
		return fmt.Errorf("validate: P6 geography: %w", err)
	}

	fmt.Println("validate: OK")
	return nil
}

func checkCapacity(inst *core.Instance, flights []core.Flight) error {
	for i, f := range flights {
		var sum int64
		for _, v := range f.Cargo {
			sum += v
		}
		if sum > inst.Capacity {
			return fmt.Errorf("flight %d carries %d > capacity %d", i, sum, inst.Capacity)
		}
	}
	return nil
}

func checkConservation(inst *core.Instance, flights []core.Flight) error {
	for d := 0; d < inst.NCities; d++ {
		if !flowcheck.ConservationHolds(inst, flights, core.City(d)) {
			return fmt.Errorf("destination %d: flow does not equal demand", d)
		}
	}
	return nil
}

func checkGeography(flights []core.Flight) error {
	perPlane := map[core.PlaneID][]core.Flight{}
	for _, f := range flights {
		perPlane[f.Plane] = append(perPlane[f.Plane], f)
	}
	for plane, pf := range perPlane {
		for k := 0; k+1 < len(pf); k++ {
			if pf[k].To != pf[k+1].From {
				return fmt.Errorf("plane %d: flight %d ends at %d but flight %d starts at %d",
					plane, k, pf[k].To, k+1, pf[k+1].From)
			}
		}
	}
	return nil
}
