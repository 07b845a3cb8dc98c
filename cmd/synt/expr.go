// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"github.com/spf13/cobra"

	"github.com/dalzilio/synt/spec"
)

var (
	exprInputs int
	exprName   string
)

var exprCmd = &cobra.Command{
	Use:   "expr <expression>",
	Short: "Synthesize a Boolean expression",
	Long: `Build the truth table of a Boolean expression over inputs x0..x<n-1> and
run the synthesis flow on it. Expressions use the usual operators: && || !
and != for exclusive or.

Examples:
  synt expr "x0 && x1" -n 2
  synt expr "x0 && (x1 != x2)" -n 3 --name parity`,
	Args: cobra.ExactArgs(1),
	RunE: runExpr,
}

func init() {
	rootCmd.AddCommand(exprCmd)

	exprCmd.Flags().IntVarP(&exprInputs, "inputs", "n", 3, "number of input variables")
	exprCmd.Flags().StringVar(&exprName, "name", "out", "name of the output function")
	exprCmd.Flags().StringVarP(&outputDir, "output", "o", "output", "directory for generated files")
	exprCmd.Flags().BoolVar(&dumpYAML, "yaml", false, "also dump each netlist in YAML form")
}

func runExpr(cmd *cobra.Command, args []string) error {
	inputs := spec.DefaultNames(exprInputs)
	table, err := spec.FromExpr(args[0], inputs)
	if err != nil {
		return err
	}
	// rephrase the table as a one-function specification so the shared flow
	// applies unchanged
	f := spec.Func{Name: exprName}
	for i, v := range table {
		if v == 1 {
			f.On = append(f.On, i)
		}
	}
	s := &spec.File{Funcs: []spec.Func{f}}
	return synthesize(s, exprInputs, "expr")
}
