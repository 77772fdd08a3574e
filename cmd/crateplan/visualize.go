package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/avionops/crateplan/flightio"
	"github.com/avionops/crateplan/flightsvg"
)

func runVisualize(args []string) error {
	fs := flag.NewFlagSet("visualize", flag.ExitOnError)
	instancePath := fs.String("instance", "", "Path to instance JSON file (required)")
	planPath := fs.String("plan", "", "Path to plan JSON file (required)")
	outPath := fs.String("out", "", "Path to write the SVG file (required)")
	title := fs.String("title", "Flight Plan", "Title drawn on the SVG")
	verbose := fs.Bool("verbose", false, "Enable progress diagnostics")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *instancePath == "" || *planPath == "" || *outPath == "" {
		return fmt.Errorf("visualize: -instance, -plan, and -out are required")
	}

	inst, err := flightio.ReadInstance(*instancePath)
	if err != nil {
		return fmt.Errorf("visualize: %w", err)
	}
	plan, err := flightio.ReadPlan(*planPath, inst.NCities)
	if err != nil {
		return fmt.Errorf("visualize: %w", err)
	}

	opts := flightsvg.DefaultOptions()
	opts.Title = *title
	data, err := flightsvg.Render(inst, plan, opts)
	if err != nil {
		return fmt.Errorf("visualize: %w", err)
	}

	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		return fmt.Errorf("visualize: writing %s: %w", *outPath, err)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "visualize: wrote %d bytes to %s\n", len(data), *outPath)
	}
	return nil
}
