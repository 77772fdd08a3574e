package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/avionops/crateplan/flightconfig"
	"github.com/avionops/crateplan/flightio"
	"github.com/avionops/crateplan/instancegen"
)

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to YAML config with a generate block (required)")
	outPath := fs.String("out", "", "Path to write the generated instance JSON (required)")
	seed := fs.Int64("seed", 0, "PRNG seed for generation")
	verbose := fs.Bool("verbose", false, "Enable progress diagnostics")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configPath == "" || *outPath == "" {
		return fmt.Errorf("generate: -config and -out are required")
	}

	cfg, err := flightconfig.Load(*configPath)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if cfg.Generate == nil {
		return fmt.Errorf("generate: config has no generate block")
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "generate: cities=%d planes=%d capacity=%d seed=%d\n",
			cfg.Generate.Cities, cfg.Generate.Planes, cfg.Capacity, *seed)
	}

	rng := rand.New(rand.NewSource(*seed))
	inst, err := instancegen.Generate(rng, cfg.Generate.Options(cfg.Capacity)...)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if err := flightio.WriteInstance(*outPath, inst); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "generate: wrote instance to %s\n", *outPath)
	}
	return nil
}
