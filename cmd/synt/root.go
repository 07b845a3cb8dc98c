// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	heading = color.New(color.FgCyan, color.Bold)
	passed  = color.New(color.FgGreen)
)

var rootCmd = &cobra.Command{
	Use:   "synt",
	Short: "BDD-based combinational logic synthesis",
	Long: `Convert Boolean functions into gate-level netlists and SystemVerilog.

A function enters the pipeline as a sum-of-minterms specification file, a
Boolean expression, or a randomly generated specification. Each output
function is turned into a canonical binary decision diagram, lowered to a
gate-level netlist, and emitted as a structural SystemVerilog module with an
exhaustive testbench.

Examples:
  synt synth spec.txt -n 4                 # synthesize every function of a spec file
  synt random -n 3 -m 2 --seed 42          # generate a random spec and synthesize it
  synt expr "x0 && (x1 != x2)" -n 3        # synthesize a Boolean expression`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
