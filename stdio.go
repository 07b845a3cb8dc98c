// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package synt

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
)

// Stats returns information about the manager: number of variables, size of
// the arena and cache performance counters.
func (b *BDD) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", b.varnum)
	res += fmt.Sprintf("Nodes:      %d\n", len(b.nodes))
	res += fmt.Sprintf("Internal:   %d\n", len(b.nodes)-2)
	res += "==============\n"
	res += fmt.Sprintf("Unique Access:  %d\n", b.uniqueAccess)
	res += fmt.Sprintf("Unique Hit:     %d\n", b.uniqueHit)
	res += fmt.Sprintf("Unique Miss:    %d\n", b.uniqueMiss)
	res += fmt.Sprintf("Operator Hits:  %d\n", b.opHit)
	res += fmt.Sprintf("Operator Miss:  %d", b.opMiss)
	return res
}

// Print returns a one-line description of node n.
func (b *BDD) Print(n Node) string {
	if n == 0 {
		return "False"
	}
	if n == 1 {
		return "True"
	}
	if n < 0 || int(n) >= len(b.nodes) {
		return fmt.Sprintf("Error (%d not a valid id)", n)
	}
	return fmt.Sprintf("(%d[%d] ? %d : %d)", n, b.level(int(n)), b.high(int(n)), b.low(int(n)))
}

// PrintSet outputs a textual representation of the diagram rooted at n on the
// standard output, one node per line.
func (b *BDD) PrintSet(n Node) {
	b.print(os.Stdout, n)
}

func (b *BDD) print(w io.Writer, n Node) {
	if n < 2 {
		fmt.Fprintln(w, b.Print(n))
		return
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	seen := make(map[int]bool)
	var walk func(id int)
	walk = func(id int) {
		if id < 2 || seen[id] {
			return
		}
		seen[id] = true
		fmt.Fprintf(tw, "%d\tx%d\t? %d\t: %d\n", id, b.level(id), b.high(id), b.low(id))
		walk(b.low(id))
		walk(b.high(id))
	}
	walk(int(n))
	tw.Flush()
}

// Dot writes a graph description of the diagram rooted at n in Graphviz's DOT
// format. Solid edges are high (then) branches and dashed edges low (else)
// branches.
func (b *BDD) Dot(w io.Writer, n Node) error {
	if _, err := fmt.Fprintln(w, "digraph G {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "0 [shape=box, label=\"0\", style=filled, height=0.3, width=0.3];")
	fmt.Fprintln(w, "1 [shape=box, label=\"1\", style=filled, height=0.3, width=0.3];")
	seen := make(map[int]bool)
	var walk func(id int)
	walk = func(id int) {
		if id < 2 || seen[id] {
			return
		}
		seen[id] = true
		fmt.Fprintf(w, "%d [label=\"x%d\"];\n", id, b.level(id))
		fmt.Fprintf(w, "%d -> %d [style=dashed];\n", id, b.low(id))
		fmt.Fprintf(w, "%d -> %d [style=filled];\n", id, b.high(id))
		walk(b.low(id))
		walk(b.high(id))
	}
	walk(int(n))
	_, err := fmt.Fprintln(w, "}")
	return err
}
