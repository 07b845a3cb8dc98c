// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

/*
Package verilog renders a gate-level netlist as structural SystemVerilog: one
continuous assignment per gate, plus an exhaustive testbench that drives every
input combination and compares the output against the expected truth table.
*/
package verilog

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dalzilio/synt/netlist"
)

// Generator emits SystemVerilog for one netlist.
type Generator struct {
	Netlist *netlist.Netlist
	Module  string // module name
}

// New returns a generator for the given netlist and module name.
func New(nl *netlist.Netlist, module string) *Generator {
	return &Generator{Netlist: nl, Module: module}
}

// WriteModule emits the structural module: ports, internal wire declarations,
// constant aliases when the netlist references a constant literal, and one
// assign per gate.
func (g *Generator) WriteModule(w io.Writer) error {
	nl := g.Netlist

	fmt.Fprintf(w, "// Generated SystemVerilog module from BDD netlist\n")
	fmt.Fprintf(w, "// Inputs: %s\n", strings.Join(nl.Inputs, ", "))
	fmt.Fprintf(w, "// Gates: %d\n\n", len(nl.Gates))

	fmt.Fprintf(w, "module %s (\n", g.Module)
	for _, in := range nl.Inputs {
		fmt.Fprintf(w, "    input  logic %s,\n", in)
	}
	fmt.Fprintf(w, "    output logic %s\n", nl.Output)
	fmt.Fprintf(w, ");\n\n")

	if nl.Const != "" {
		// constant function: the whole module is one assignment
		fmt.Fprintf(w, "    assign %s = %s;\n\n", nl.Output, nl.Const)
		_, err := fmt.Fprintln(w, "endmodule")
		return err
	}

	wires := make([]string, 0, len(nl.Gates))
	for _, gate := range nl.Gates {
		if gate.Output != nl.Output {
			wires = append(wires, gate.Output)
		}
	}
	sort.Strings(wires)
	if len(wires) > 0 {
		fmt.Fprintln(w, "    // Internal wires")
		for _, wire := range wires {
			fmt.Fprintf(w, "    logic %s;\n", wire)
		}
		fmt.Fprintln(w)
	}

	hasZero, hasOne := false, false
	for _, gate := range nl.Gates {
		for _, in := range gate.Inputs {
			hasZero = hasZero || in == netlist.ConstZero
			hasOne = hasOne || in == netlist.ConstOne
		}
	}
	if hasZero || hasOne {
		fmt.Fprintln(w, "    // Constants")
		if hasZero {
			fmt.Fprintln(w, "    logic const_0 = 1'b0;")
		}
		if hasOne {
			fmt.Fprintln(w, "    logic const_1 = 1'b1;")
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "    // Gate instances")
	for _, gate := range nl.Gates {
		if err := writeAssign(w, gate); err != nil {
			return err
		}
	}
	fmt.Fprintln(w)
	_, err := fmt.Fprintln(w, "endmodule")
	return err
}

// writeAssign emits one continuous assignment. The switch is exhaustive over
// the closed gate set.
func writeAssign(w io.Writer, g netlist.Gate) error {
	in := make([]string, len(g.Inputs))
	for k, s := range g.Inputs {
		switch s {
		case netlist.ConstZero:
			in[k] = "const_0"
		case netlist.ConstOne:
			in[k] = "const_1"
		default:
			in[k] = s
		}
	}
	var expr string
	switch g.Kind {
	case netlist.Buffer:
		expr = in[0]
	case netlist.Not:
		expr = fmt.Sprintf("~%s", in[0])
	case netlist.And:
		expr = fmt.Sprintf("%s & %s", in[0], in[1])
	case netlist.Or:
		expr = fmt.Sprintf("%s | %s", in[0], in[1])
	case netlist.Nand:
		expr = fmt.Sprintf("~(%s & %s)", in[0], in[1])
	case netlist.Nor:
		expr = fmt.Sprintf("~(%s | %s)", in[0], in[1])
	case netlist.Xor:
		expr = fmt.Sprintf("%s ^ %s", in[0], in[1])
	case netlist.Xnor:
		expr = fmt.Sprintf("~(%s ^ %s)", in[0], in[1])
	case netlist.Mux:
		expr = fmt.Sprintf("%s ? %s : %s", in[0], in[1], in[2])
	default:
		return fmt.Errorf("unknown gate kind %d", g.Kind)
	}
	_, err := fmt.Fprintf(w, "    assign %s = %s;\n", g.Output, expr)
	return err
}

// WriteTestbench emits an exhaustive testbench. expected holds the truth
// table of the function, one entry per input combination; don't-care rows
// must already be resolved.
func (g *Generator) WriteTestbench(w io.Writer, expected []int) error {
	nl := g.Netlist
	n := len(nl.Inputs)
	if len(expected) != 1<<n {
		return fmt.Errorf("expected table size %d is not 2^%d", len(expected), n)
	}

	fmt.Fprintf(w, "// Testbench for %s\n", g.Module)
	fmt.Fprintf(w, "// Exhaustive simulation of all %d input combinations\n\n", 1<<n)
	fmt.Fprintf(w, "module %s_tb;\n\n", g.Module)

	fmt.Fprintln(w, "    // Testbench signals")
	for _, in := range nl.Inputs {
		fmt.Fprintf(w, "    logic %s;\n", in)
	}
	fmt.Fprintf(w, "    logic %s;\n", nl.Output)
	fmt.Fprintln(w, "    logic expected;")
	fmt.Fprintln(w, "    int errors = 0;")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "    // DUT instantiation")
	fmt.Fprintf(w, "    %s dut (\n", g.Module)
	for _, in := range nl.Inputs {
		fmt.Fprintf(w, "        .%s(%s),\n", in, in)
	}
	fmt.Fprintf(w, "        .%s(%s)\n", nl.Output, nl.Output)
	fmt.Fprintln(w, "    );")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "    // Test stimulus")
	fmt.Fprintln(w, "    initial begin")
	fmt.Fprintf(w, "        $display(\"Testing %d input combinations\");\n", 1<<n)
	for i := 0; i < 1<<n; i++ {
		fmt.Fprintf(w, "\n        // Test case %d\n", i)
		for j, in := range nl.Inputs {
			fmt.Fprintf(w, "        %s = 1'b%d;\n", in, (i>>(n-1-j))&1)
		}
		fmt.Fprintf(w, "        expected = 1'b%d;\n", expected[i])
		fmt.Fprintln(w, "        #10;")
		fmt.Fprintf(w, "        if (%s !== expected) begin\n", nl.Output)
		fmt.Fprintln(w, "            errors++;")
		fmt.Fprintf(w, "            $display(\"FAIL case %d: %s=%%b expected=%%b\", %s, expected);\n",
			i, nl.Output, nl.Output)
		fmt.Fprintln(w, "        end")
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "        if (errors == 0)")
	fmt.Fprintln(w, "            $display(\"*** TEST PASSED ***\");")
	fmt.Fprintln(w, "        else")
	fmt.Fprintf(w, "            $display(\"*** TEST FAILED: %%0d errors ***\", errors);\n")
	fmt.Fprintln(w, "        $finish;")
	fmt.Fprintln(w, "    end")
	fmt.Fprintln(w)
	_, err := fmt.Fprintln(w, "endmodule")
	return err
}
