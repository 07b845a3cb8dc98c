// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

/*
Package netlist lowers a binary decision diagram into an ordered gate-level
netlist. The builder walks the DAG exactly once in post-order, maps every
internal vertex (var ? high : low) to a gate through the ITE pattern matcher,
and binds each visited node id to a signal. The result is deterministic: the
same diagram and variable names always produce the same gate sequence, wire
numbering and signal map.
*/
package netlist

import (
	"fmt"
	"strings"

	"github.com/dalzilio/synt"
)

// Netlist is the ordered list of gates produced by one traversal of one
// diagram root, together with the mapping from node ids to signals. Wire and
// gate counters are owned by the instance; a Netlist is populated by exactly
// one call to Build and then handed off for emission.
type Netlist struct {
	Inputs  []string       // primary input names, indexed by variable level
	Gates   []Gate         // gates in emission order
	Signals map[int]string // visited node id -> signal or constant literal
	Output  string         // output port label
	Const   string         // set to the constant literal when the output is a constant

	nextWire int
	nextGate int
}

// New returns an empty netlist over the given primary input names.
func New(inputs []string) *Netlist {
	return &Netlist{
		Inputs:  inputs,
		Signals: make(map[int]string),
	}
}

// wirename allocates the next internal wire name, in first-seen-first-numbered
// order.
func (nl *Netlist) wirename() string {
	name := fmt.Sprintf("n%d", nl.nextWire)
	nl.nextWire++
	return name
}

func (nl *Netlist) gateid() int {
	id := nl.nextGate
	nl.nextGate++
	return id
}

// Build populates the netlist from the diagram rooted at root, with the output
// connected to the port named output. Every distinct node id is visited at
// most once, so shared subexpressions yield exactly one gate; the low (else)
// subgraph of a node is processed before its high (then) subgraph, and a node
// is emitted once both children are bound.
//
// The terminals are pre-bound to the constant literals and never receive a
// gate. A non-constant root is connected to the output port by one trailing
// buffer; a constant root binds the output directly to that constant and
// emits no gate at all.
func (nl *Netlist) Build(b *synt.BDD, root synt.Node, output string) error {
	if len(nl.Inputs) < b.Varnum() {
		return fmt.Errorf("%d input names for %d variables", len(nl.Inputs), b.Varnum())
	}
	// Signals is populated on every build, even one that emits no gate at
	// all because the root is a constant.
	if len(nl.Signals) > 0 {
		return fmt.Errorf("netlist already built")
	}
	nl.Output = output
	nl.Signals[0] = ConstZero
	nl.Signals[1] = ConstOne

	// Post-order traversal with an explicit stack; recursion depth would
	// otherwise be bounded only by the number of nodes. A node appears twice:
	// once to expand its children, once (expand == true) to emit its gate.
	type frame struct {
		id     int
		expand bool
	}
	stack := []frame{{id: int(root)}}
	for len(stack) > 0 {
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, done := nl.Signals[fr.id]; done {
			continue
		}
		n := synt.Node(fr.id)
		if !fr.expand {
			stack = append(stack,
				frame{id: fr.id, expand: true},
				frame{id: int(b.High(n))},
				frame{id: int(b.Low(n))},
			)
			continue
		}
		low := nl.Signals[int(b.Low(n))]
		high := nl.Signals[int(b.High(n))]
		sel := nl.Inputs[b.Level(n)]
		wire := nl.wirename()
		nl.Signals[fr.id] = wire
		// high is the "then" branch of the vertex: ite(var, high, low)
		nl.Gates = append(nl.Gates, GateForITE(sel, high, low, wire, nl.gateid()))
	}

	rootsig := nl.Signals[int(root)]
	if IsConst(rootsig) {
		nl.Const = rootsig
		return nil
	}
	nl.Gates = append(nl.Gates, Gate{
		Kind:   Buffer,
		Output: output,
		Inputs: []string{rootsig},
		ID:     nl.gateid(),
	})
	return nil
}

// Counts returns the number of gates per kind.
func (nl *Netlist) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, g := range nl.Gates {
		counts[g.Kind]++
	}
	return counts
}

// String lists the gates of the netlist, one per line, in emission order.
func (nl *Netlist) String() string {
	var sb strings.Builder
	if nl.Const != "" {
		fmt.Fprintf(&sb, "%s = %s\n", nl.Output, nl.Const)
		return sb.String()
	}
	for _, g := range nl.Gates {
		sb.WriteString(g.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
