package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/avionops/crateplan/flightio"
	"github.com/avionops/crateplan/flightplan"
)

func runPlan(args []string) error {
	fs := flag.NewFlagSet("plan", flag.ExitOnError)
	instancePath := fs.String("instance", "", "Path to instance JSON file (required)")
	outPath := fs.String("out", "", "Path to write the resulting plan JSON (required)")
	seed := fs.Int64("seed", 0, "PRNG seed for the extend phase")
	verbose := fs.Bool("verbose", false, "Enable progress diagnostics")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *instancePath == "" || *outPath == "" {
		return fmt.Errorf("plan: -instance and -out are required")
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "plan: loading instance from %s\n", *instancePath)
	}
	inst, err := flightio.ReadInstance(*instancePath)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "plan: running planner with seed=%d\n", *seed)
	}
	plan, err := flightplan.Run(inst, *seed)
	if err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	if err := flightio.WritePlan(*outPath, plan); err != nil {
		return fmt.Errorf("plan: %w", err)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "plan: wrote %d flights to %s (run %s)\n", len(plan.Flights), *outPath, plan.RunID)
	}
	return nil
}
