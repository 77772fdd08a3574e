// Command crateplan is the CLI wrapping the planning core: plan,
// generate, visualize, and validate subcommands, each owning its own
// flag.FlagSet — the pattern dungo's cmd/dungeongen/main.go uses for a
// single flag-based binary. Exit code 0 on success, 1 plus a
// diagnostic on invalid input, per spec.md §6.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "plan":
		err = runPlan(os.Args[2:])
	case "generate":
		err = runGenerate(os.Args[2:])
	case "visualize":
		err = runVisualize(os.Args[2:])
	case "validate":
		err = runValidate(os.Args[2:])
	case "-help", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "crateplan: unknown subcommand %q\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "crateplan: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: crateplan <plan|generate|visualize|validate> [flags]")
	fmt.Fprintln(os.Stderr, "  crateplan plan      -instance FILE -out FILE [-seed N]")
	fmt.Fprintln(os.Stderr, "  crateplan generate  -config FILE -out FILE [-seed N]")
	fmt.Fprintln(os.Stderr, "  crateplan visualize -instance FILE -plan FILE -out FILE.svg")
	fmt.Fprintln(os.Stderr, "  crateplan validate  -instance FILE -plan FILE")
}
