// SPDX-License-Identifier: MIT

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

var (
	colorMode = flag.String("color", "auto",
		"Colour negative matrix values: auto, always or never")
	debug = flag.Bool("debug", false, "If true, trace at debug level")
	fill  = flag.Int("fill", 0,
		"Constant to fill the matrix with (used when -random=false)")
	insertAt = flag.Int("insertAt", -1,
		"Index at which the list command inserts -insertValue (-1: skip)")
	insertValue = flag.Int("insertValue", 0, "Value inserted by -insertAt")
	maxValue    = flag.Int("max", 9, "Largest random value (inclusive)")
	minValue    = flag.Int("min", 0, "Smallest random value (inclusive)")
	random      = flag.Bool("random", true,
		"If true, fill the matrix with random values in [min, max]")
	removeAt = flag.Int("removeAt", -1,
		"Index the list command removes (-1: skip)")
	seed = flag.Int64("seed", 0,
		"Seed for random fills (0: shared clock-seeded generator)")
	size = flag.Int("size", 4, "Dimension of the square matrix")
)

type command struct {
	name    string
	args    string
	minArgs int
	maxArgs int
	run     func(args []string, w io.Writer) error
}

var subcommands = []command{
	{"list", "value...", 0, -1, listSubcommand},
	{"matrix", "", 0, 0, matrixSubcommand},
}

func printUsage() {
	w := flag.CommandLine.Output()
	fmt.Fprintln(w, "Usage: workshop [flags...] command [args...]")
	fmt.Fprintln(w, "Common flags:")
	flag.PrintDefaults()
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range subcommands {
		if cmd.args == "" {
			fmt.Fprintf(w, "  %s\n", cmd.name)
		} else {
			fmt.Fprintf(w, "  %s %s\n", cmd.name, cmd.args)
		}
	}
}

func runCommand(args []string, w io.Writer) int {
	for _, cmd := range subcommands {
		if cmd.name != args[0] {
			continue
		}
		cmdArgs := args[1:]
		if len(cmdArgs) < cmd.minArgs ||
			(cmd.maxArgs >= 0 && len(cmdArgs) > cmd.maxArgs) {
			printUsage()
			return 2
		}
		if err := cmd.run(cmdArgs, w); err != nil {
			fmt.Fprintf(os.Stderr, "Error running %s: %s\n", cmd.name, err)
			return 1
		}
		return 0
	}
	printUsage()
	return 2
}

func doMain() int {
	flag.Usage = printUsage
	flag.Parse()
	if flag.NArg() < 1 {
		printUsage()
		return 2
	}
	setupTracing(os.Stderr)
	return runCommand(flag.Args(), colorable.NewColorableStdout())
}

// setupTracing installs a log-backed core tracer writing to w when -debug
// is set. Without -debug the core tracer stays a no-op.
func setupTracing(w io.Writer) {
	if !*debug {
		return
	}
	tr := gologadapter.New()
	tr.SetOutput(w)
	tr.SetTraceLevel(tracing.LevelDebug)
	gtrace.CoreTracer = tr
}

func main() {
	os.Exit(doMain())
}
