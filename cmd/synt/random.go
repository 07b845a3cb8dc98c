// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dalzilio/synt/spec"
)

var (
	randInputs  int
	randOutputs int
	randOn      float64
	randDC      float64
	randSeed    int64
	randSpecOut string
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Generate a random specification and synthesize it",
	Long: `Generate a random sum-of-minterms specification, write it to a file for
reference, then run the full synthesis flow on it. The same seed always
produces the same specification.

Examples:
  synt random -n 3 -m 1 --on 0.5 --dc 0.2
  synt random -n 4 --seed 42`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().IntVarP(&randInputs, "inputs", "n", 4, "number of input variables")
	randomCmd.Flags().IntVarP(&randOutputs, "outputs", "m", 1, "number of output functions")
	randomCmd.Flags().Float64Var(&randOn, "on", 0.35, "probability of a minterm being in the ON-set")
	randomCmd.Flags().Float64Var(&randDC, "dc", 0.15, "probability of a minterm being a don't-care")
	randomCmd.Flags().Int64Var(&randSeed, "seed", 0, "random seed")
	randomCmd.Flags().StringVar(&randSpecOut, "spec-out", "random_spec.txt", "file the generated specification is written to")
	randomCmd.Flags().StringVarP(&outputDir, "output", "o", "output", "directory for generated files")
	randomCmd.Flags().BoolVar(&dumpYAML, "yaml", false, "also dump each netlist in YAML form")
}

func runRandom(cmd *cobra.Command, args []string) error {
	if randOn > 0.5 {
		fmt.Fprintln(os.Stderr, "Warning: --on > 0.5 is clamped to 0.5.")
	}
	s := spec.Random(randInputs, randOutputs, randOn, randDC, randSeed)

	f, err := os.Create(randSpecOut)
	if err != nil {
		return err
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Generated random spec: %s\n\n", randSpecOut)

	return synthesize(s, randInputs, stem(randSpecOut))
}
