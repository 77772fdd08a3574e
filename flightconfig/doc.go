// Package flightconfig loads the YAML configuration recognized by
// cmd/crateplan: the planner's capacity/seed knobs from spec.md §6, plus
// instancegen generation parameters for the CLI's generate subcommand.
//
// It follows dungo's pkg/dungeon/config.go shape: yaml-tagged struct
// fields, a dedicated Validate, and Load reading + unmarshaling +
// validating in one call so a malformed config file is rejected before
// any planning or generation starts.
package flightconfig
