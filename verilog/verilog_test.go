// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package verilog

import (
	"strings"
	"testing"

	"github.com/dalzilio/synt"
	"github.com/dalzilio/synt/netlist"
	"github.com/dalzilio/synt/spec"
)

func buildNetlist(t *testing.T, varnum int, table []int) *netlist.Netlist {
	t.Helper()
	b, err := synt.New(varnum)
	if err != nil {
		t.Fatal(err)
	}
	root, err := b.FromTruthTable(table)
	if err != nil {
		t.Fatal(err)
	}
	nl := netlist.New(spec.DefaultNames(varnum))
	if err := nl.Build(b, root, "out"); err != nil {
		t.Fatal(err)
	}
	return nl
}

func TestWriteModuleAnd(t *testing.T) {
	nl := buildNetlist(t, 2, []int{0, 0, 0, 1})
	var buf strings.Builder
	if err := New(nl, "and2").WriteModule(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"module and2 (",
		"input  logic x0,",
		"input  logic x1,",
		"output logic out",
		"logic n0;",
		"logic n1;",
		"assign n0 = x1;",
		"assign n1 = x0 & n0;",
		"assign out = n1;",
		"endmodule",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("module output misses %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "const_") {
		t.Errorf("no constant alias expected:\n%s", out)
	}
}

func TestWriteModuleConstant(t *testing.T) {
	nl := buildNetlist(t, 2, []int{1, 1, 1, 1})
	var buf strings.Builder
	if err := New(nl, "one").WriteModule(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "assign out = 1'b1;") {
		t.Errorf("constant module misses the single assignment:\n%s", out)
	}
	if strings.Contains(out, "logic n0;") {
		t.Errorf("constant module declares internal wires:\n%s", out)
	}
}

func TestWriteModuleConstAlias(t *testing.T) {
	// f = !x0 & x1 keeps a mux whose then-branch is the zero literal, so the
	// module must declare the const_0 alias
	nl := buildNetlist(t, 2, []int{0, 1, 0, 0})
	var buf strings.Builder
	if err := New(nl, "m").WriteModule(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "logic const_0 = 1'b0;") {
		t.Errorf("module misses the const_0 alias:\n%s", out)
	}
	if !strings.Contains(out, "? const_0 :") {
		t.Errorf("mux assignment does not reference const_0:\n%s", out)
	}
}

func TestWriteTestbench(t *testing.T) {
	nl := buildNetlist(t, 2, []int{0, 0, 0, 1})
	g := New(nl, "and2")
	var buf strings.Builder
	if err := g.WriteTestbench(&buf, []int{0, 0, 0, 1}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"module and2_tb;",
		"and2 dut (",
		".x0(x0),",
		".out(out)",
		"// Test case 3",
		"expected = 1'b1;",
		"$display(\"*** TEST FAILED: %0d errors ***\", errors);",
		"$finish;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("testbench misses %q:\n%s", want, out)
		}
	}
	if n := strings.Count(out, "// Test case"); n != 4 {
		t.Errorf("expected 4 test cases, actual %d", n)
	}
}

func TestWriteTestbenchBadTable(t *testing.T) {
	nl := buildNetlist(t, 2, []int{0, 0, 0, 1})
	var buf strings.Builder
	if err := New(nl, "and2").WriteTestbench(&buf, []int{0, 1}); err == nil {
		t.Errorf("table of length 2 for 2 inputs: expected an error")
	}
}
