// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package netlist

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dalzilio/synt"
)

func buildDiagram(t *testing.T, varnum int, table []int) (*synt.BDD, synt.Node) {
	t.Helper()
	b, err := synt.New(varnum)
	if err != nil {
		t.Fatal(err)
	}
	root, err := b.FromTruthTable(table)
	if err != nil {
		t.Fatal(err)
	}
	return b, root
}

func TestBuildAnd(t *testing.T) {
	b, root := buildDiagram(t, 2, []int{0, 0, 0, 1})
	nl := New([]string{"x0", "x1"})
	if err := nl.Build(b, root, "out"); err != nil {
		t.Fatal(err)
	}
	expected := []Gate{
		{Kind: Buffer, Output: "n0", Inputs: []string{"x1"}, ID: 0},
		{Kind: And, Output: "n1", Inputs: []string{"x0", "n0"}, ID: 1},
		{Kind: Buffer, Output: "out", Inputs: []string{"n1"}, ID: 2},
	}
	if diff := cmp.Diff(expected, nl.Gates); diff != "" {
		t.Errorf("gate sequence mismatch (-expected +actual):\n%s", diff)
	}
	if nl.Const != "" {
		t.Errorf("non-constant function bound to %q", nl.Const)
	}
}

func TestBuildXor(t *testing.T) {
	// the conservative matcher does not detect xor from complementary
	// signals: the top vertex lowers to a mux
	b, root := buildDiagram(t, 2, []int{0, 1, 1, 0})
	nl := New([]string{"x0", "x1"})
	if err := nl.Build(b, root, "out"); err != nil {
		t.Fatal(err)
	}
	expected := []Gate{
		{Kind: Buffer, Output: "n0", Inputs: []string{"x1"}, ID: 0},
		{Kind: Not, Output: "n1", Inputs: []string{"x1"}, ID: 1},
		{Kind: Mux, Output: "n2", Inputs: []string{"x0", "n1", "n0"}, ID: 2},
		{Kind: Buffer, Output: "out", Inputs: []string{"n2"}, ID: 3},
	}
	if diff := cmp.Diff(expected, nl.Gates); diff != "" {
		t.Errorf("gate sequence mismatch (-expected +actual):\n%s", diff)
	}
}

func TestBuildConstant(t *testing.T) {
	b, root := buildDiagram(t, 2, []int{0, 0, 0, 0})
	nl := New([]string{"x0", "x1"})
	if err := nl.Build(b, root, "out"); err != nil {
		t.Fatal(err)
	}
	if len(nl.Gates) != 0 {
		t.Errorf("constant function: expected 0 gates, actual %d", len(nl.Gates))
	}
	if nl.Const != ConstZero {
		t.Errorf("expected output bound to %s, actual %q", ConstZero, nl.Const)
	}
	if nl.String() != "out = 1'b0\n" {
		t.Errorf("unexpected listing %q", nl.String())
	}
}

func TestBuildDeterminism(t *testing.T) {
	table := []int{0, 1, 1, 0, 1, 0, 0, 1}
	inputs := []string{"x0", "x1", "x2"}

	b1, root1 := buildDiagram(t, 3, table)
	nl1 := New(inputs)
	if err := nl1.Build(b1, root1, "out"); err != nil {
		t.Fatal(err)
	}
	b2, root2 := buildDiagram(t, 3, table)
	nl2 := New(inputs)
	if err := nl2.Build(b2, root2, "out"); err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(nl1.Gates, nl2.Gates); diff != "" {
		t.Errorf("two builds differ (-first +second):\n%s", diff)
	}
	if nl1.String() != nl2.String() {
		t.Errorf("two builds print differently:\n%s\nvs\n%s", nl1, nl2)
	}
	if diff := cmp.Diff(nl1.Signals, nl2.Signals); diff != "" {
		t.Errorf("signal maps differ (-first +second):\n%s", diff)
	}
}

func TestNoDuplication(t *testing.T) {
	// three-input parity shares both x2 vertices between the two x1 vertices;
	// the netlist must still hold exactly one gate per internal node plus the
	// trailing output buffer
	b, root := buildDiagram(t, 3, []int{0, 1, 1, 0, 1, 0, 0, 1})
	nl := New([]string{"x0", "x1", "x2"})
	if err := nl.Build(b, root, "out"); err != nil {
		t.Fatal(err)
	}
	if expected := b.InternalCount() + 1; len(nl.Gates) != expected {
		t.Errorf("expected %d gates, actual %d", expected, len(nl.Gates))
	}
	// every visited node is bound exactly once
	if len(nl.Signals) != b.NodeCount() {
		t.Errorf("expected %d bound signals, actual %d", b.NodeCount(), len(nl.Signals))
	}
}

func TestRebuildRejected(t *testing.T) {
	// a netlist holds the result of exactly one build, including a build that
	// emits no gate because the root is a constant
	var rebuildTests = []struct {
		name  string
		table []int
	}{
		{"gates", []int{0, 0, 0, 1}},
		{"constant root", []int{0, 0, 0, 0}},
	}
	for _, tt := range rebuildTests {
		b, root := buildDiagram(t, 2, tt.table)
		nl := New([]string{"x0", "x1"})
		if err := nl.Build(b, root, "out"); err != nil {
			t.Fatalf("%s: %s", tt.name, err)
		}
		if err := nl.Build(b, root, "out"); err == nil {
			t.Errorf("%s: second build on the same netlist: expected an error", tt.name)
		}
	}
}

func TestBuildInputMismatch(t *testing.T) {
	b, root := buildDiagram(t, 3, []int{0, 1, 1, 0, 1, 0, 0, 1})
	nl := New([]string{"x0", "x1"})
	if err := nl.Build(b, root, "out"); err == nil {
		t.Errorf("2 input names for 3 variables: expected an error")
	}
}

func TestCounts(t *testing.T) {
	b, root := buildDiagram(t, 2, []int{0, 1, 1, 0})
	nl := New([]string{"x0", "x1"})
	if err := nl.Build(b, root, "out"); err != nil {
		t.Fatal(err)
	}
	expected := map[Kind]int{Buffer: 2, Not: 1, Mux: 1}
	if diff := cmp.Diff(expected, nl.Counts()); diff != "" {
		t.Errorf("counts mismatch (-expected +actual):\n%s", diff)
	}
}
