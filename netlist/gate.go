// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package netlist

import (
	"fmt"
	"strings"
)

// Kind identifies the type of a logic gate. The set is closed: the pattern
// matcher and the code emitters switch exhaustively over it, so adding a kind
// is a compile-time-checked change.
type Kind int

const (
	Buffer Kind = iota // pass-through
	Not
	And
	Or
	Nand
	Nor
	Xor
	Xnor
	Mux // 2-to-1 multiplexer, out = sel ? in1 : in0
)

var kindnames = [...]string{
	Buffer: "BUF",
	Not:    "NOT",
	And:    "AND",
	Or:     "OR",
	Nand:   "NAND",
	Nor:    "NOR",
	Xor:    "XOR",
	Xnor:   "XNOR",
	Mux:    "MUX",
}

func (k Kind) String() string {
	return kindnames[k]
}

// The two Boolean constant literals. Signals bound to a constant use these
// exact strings, so classification and emission can test for them directly.
const (
	ConstZero = "1'b0"
	ConstOne  = "1'b1"
)

// IsConst reports whether signal s is one of the two constant literals.
func IsConst(s string) bool {
	return s == ConstZero || s == ConstOne
}

// Gate is one logic-gate instance of a netlist. Inputs are ordered and refer
// to a declared variable, a synthesized wire, or a constant literal.
type Gate struct {
	Kind   Kind
	Output string
	Inputs []string
	ID     int
}

func (g Gate) String() string {
	return fmt.Sprintf("%s = %s(%s)", g.Output, g.Kind, strings.Join(g.Inputs, ", "))
}
