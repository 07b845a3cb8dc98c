// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package netlist

// GateForITE classifies the triple ite(f, g, h) = (f & g) | (!f & h) into a
// gate, given the three operand signals. Rules are tried first-match:
//
//  g        h        condition       gate     inputs
//  1'b1     1'b0     f is a signal   BUF      [f]
//  1'b0     1'b1     f is a signal   NOT      [f]
//  signal   1'b0     f is a signal   AND      [f, g]
//  1'b1     signal   f is a signal   OR       [f, h]
//  g == h, both the same signal      BUF      [g]
//  anything else                     MUX      [f, g, h]
//
// Only constant-operand patterns are special-cased. Triples that happen to be
// NAND, NOR, XOR, XNOR or an order relation because two operands are
// complementary signals are not detected and fall back to MUX; the matcher
// always terminates in a classification and never fails.
func GateForITE(f, g, h string, output string, id int) Gate {
	fsig := !IsConst(f)
	switch {
	case g == ConstOne && h == ConstZero && fsig:
		return Gate{Kind: Buffer, Output: output, Inputs: []string{f}, ID: id}
	case g == ConstZero && h == ConstOne && fsig:
		return Gate{Kind: Not, Output: output, Inputs: []string{f}, ID: id}
	case !IsConst(g) && h == ConstZero && fsig:
		return Gate{Kind: And, Output: output, Inputs: []string{f, g}, ID: id}
	case g == ConstOne && !IsConst(h) && fsig:
		return Gate{Kind: Or, Output: output, Inputs: []string{f, h}, ID: id}
	case g == h && !IsConst(g):
		return Gate{Kind: Buffer, Output: output, Inputs: []string{g}, ID: id}
	}
	return Gate{Kind: Mux, Output: output, Inputs: []string{f, g, h}, ID: id}
}
