// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dalzilio/synt"
	"github.com/dalzilio/synt/netlist"
	"github.com/dalzilio/synt/spec"
	"github.com/dalzilio/synt/verilog"
)

var (
	numInputs int
	outputDir string
	dumpYAML  bool
)

var synthCmd = &cobra.Command{
	Use:   "synth <spec-file>",
	Short: "Synthesize every function of a sum-of-minterms specification file",
	Long: `Parse a specification file and run the full synthesis flow on each of its
output functions: truth table, canonical BDD, gate-level netlist, and
SystemVerilog module plus testbench.

Examples:
  synt synth spec.txt -n 4
  synt synth -v --yaml -o build spec.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runSynth,
}

func init() {
	rootCmd.AddCommand(synthCmd)

	synthCmd.Flags().IntVarP(&numInputs, "inputs", "n", 3, "number of input variables")
	synthCmd.Flags().StringVarP(&outputDir, "output", "o", "output", "directory for generated files")
	synthCmd.Flags().BoolVar(&dumpYAML, "yaml", false, "also dump each netlist in YAML form")
}

func runSynth(cmd *cobra.Command, args []string) error {
	parser, err := spec.NewParser()
	if err != nil {
		return err
	}
	s, err := parser.ParseFile(args[0])
	if err != nil {
		return err
	}
	return synthesize(s, numInputs, stem(args[0]))
}

// stem extracts the file name without directory and extension, used to prefix
// generated module names.
func stem(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	if base == "" {
		return "run"
	}
	return base
}

// synthesize runs the complete flow on every function of the specification.
// Each output gets its own manager and netlist; there is no state shared
// between functions.
func synthesize(s *spec.File, n int, moduleStem string) error {
	inputs := spec.DefaultNames(n)

	heading.Printf("Synthesizing %d function(s) over %d input(s)\n\n", len(s.Funcs), n)
	if err := spec.WriteTable(os.Stdout, n, inputs, s); err != nil {
		return err
	}
	fmt.Println()

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	for _, f := range s.Funcs {
		heading.Printf("--- %s ---\n", f.Name)
		fmt.Printf("ON-set: %v\n", f.On)
		fmt.Printf("DC-set: %v\n", f.DC)

		b, err := synt.New(n)
		if err != nil {
			return err
		}
		root, err := b.FromMinterms(f.On, f.DC, synt.DontCareZero)
		if err != nil {
			return err
		}
		fmt.Printf("BDD nodes: %d total, %d internal\n", b.NodeCount(), b.InternalCount())
		if verbose {
			fmt.Println(b.Stats())
			b.PrintSet(root)
		}

		nl := netlist.New(inputs)
		if err := nl.Build(b, root, f.Name); err != nil {
			return err
		}
		fmt.Printf("\nNetlist (%d gates):\n%s", len(nl.Gates), nl)
		for kind, count := range nl.Counts() {
			fmt.Printf("  %s: %d\n", kind, count)
		}

		module := fmt.Sprintf("%s_%s", moduleStem, f.Name)
		table, err := f.Table(n)
		if err != nil {
			return err
		}
		expected := make([]int, len(table))
		for i, v := range table {
			if v == 1 {
				expected[i] = 1 // don't-cares resolved to 0, as in the BDD
			}
		}
		if err := emit(nl, module, expected); err != nil {
			return err
		}
		fmt.Println()
	}
	passed.Println("Synthesis complete.")
	fmt.Printf("Output files in: %s/\n", outputDir)
	return nil
}

// emit writes the SystemVerilog module, its testbench and, on demand, the
// YAML netlist dump.
func emit(nl *netlist.Netlist, module string, expected []int) error {
	gen := verilog.New(nl, module)

	modPath := filepath.Join(outputDir, module+".sv")
	if err := writeFile(modPath, func(f *os.File) error { return gen.WriteModule(f) }); err != nil {
		return err
	}
	fmt.Printf("Module:    %s\n", modPath)

	tbPath := filepath.Join(outputDir, module+"_tb.sv")
	if err := writeFile(tbPath, func(f *os.File) error { return gen.WriteTestbench(f, expected) }); err != nil {
		return err
	}
	fmt.Printf("Testbench: %s\n", tbPath)

	if dumpYAML {
		yamlPath := filepath.Join(outputDir, module+".yaml")
		if err := writeFile(yamlPath, func(f *os.File) error { return nl.EncodeYAML(f) }); err != nil {
			return err
		}
		fmt.Printf("Netlist:   %s\n", yamlPath)
	}
	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
