// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package synt

import "fmt"

// DontCare selects how don't-care minterms are resolved before a diagram is
// built. Diagrams are always fully specified: don't-cares are materialized to
// a constant, never kept symbolic.
type DontCare int

const (
	// DontCareZero resolves every don't-care minterm to 0. This is the
	// canonical policy used by the synthesis pipeline.
	DontCareZero DontCare = iota
	// DontCareOne resolves every don't-care minterm to 1.
	DontCareOne
)

// FromTruthTable builds the diagram of the function described by a fully
// specified truth table using Shannon decomposition. Index i of the table
// corresponds to the binary representation of the input assignment, variable
// 0 carried by the most significant bit. A value of 0 denotes false, any
// other value denotes true.
//
// We return an error, before any node is allocated, if the length of the
// table is not exactly 2^Varnum.
func (b *BDD) FromTruthTable(values []int) (Node, error) {
	if len(values) != 1<<b.varnum {
		return b.False(), fmt.Errorf("truth table size %d is not 2^%d", len(values), b.varnum)
	}
	return Node(b.build(values, 0)), nil
}

// build recursively splits the current index range in half on the next
// variable. A constant half-range returns the matching terminal immediately,
// without inspecting the remaining variables.
func (b *BDD) build(values []int, level int32) int {
	first := values[0] != 0
	uniform := true
	for _, v := range values[1:] {
		if (v != 0) != first {
			uniform = false
			break
		}
	}
	if uniform {
		if first {
			return 1
		}
		return 0
	}
	mid := len(values) / 2
	low := b.build(values[:mid], level+1)
	high := b.build(values[mid:], level+1)
	return b.makenode(level, low, high)
}

// FromMinterms builds the diagram of the function whose ON-set and don't-care
// set are given as minterm indices; every index absent from both sets is 0.
// Don't-cares are resolved to a constant according to policy before the
// diagram is built. We return an error, before any node is allocated, if an
// index falls outside the range [0..2^Varnum).
func (b *BDD) FromMinterms(on, dc []int, policy DontCare) (Node, error) {
	size := 1 << b.varnum
	values := make([]int, size)
	for _, i := range on {
		if i < 0 || i >= size {
			return b.False(), fmt.Errorf("ON minterm %d out of range [0..%d)", i, size)
		}
		values[i] = 1
	}
	for _, i := range dc {
		if i < 0 || i >= size {
			return b.False(), fmt.Errorf("don't-care minterm %d out of range [0..%d)", i, size)
		}
		// ON wins over don't-care when an index appears in both sets, so
		// DontCareZero has nothing to do here.
		if policy == DontCareOne {
			values[i] = 1
		}
	}
	return b.FromTruthTable(values)
}
