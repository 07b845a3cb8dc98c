// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package synt

import "fmt"

// Operator describes the binary operations available in a call to Apply.
type Operator int

const (
	OPand   Operator = iota // Boolean conjunction
	OPxor                   // Exclusive or
	OPor                    // Disjunction
	OPnand                  // Negation of and
	OPnor                   // Negation of or
	OPimp                   // Implication
	OPbiimp                 // Equivalence
)

var opnames = [...]string{
	OPand:   "and",
	OPxor:   "xor",
	OPor:    "or",
	OPnand:  "nand",
	OPnor:   "nor",
	OPimp:   "imp",
	OPbiimp: "biimp",
}

func (op Operator) String() string {
	return opnames[op]
}

// Ithvar returns a node representing the i'th variable. The requested
// variable must be in the range [0..Varnum); the function panics otherwise
// since this is necessarily a programming error.
func (b *BDD) Ithvar(i int) Node {
	if i < 0 || i >= int(b.varnum) {
		panic(fmt.Sprintf("variable index out of range (%d)", i))
	}
	return Node(b.makenode(int32(i), 0, 1))
}

// NIthvar returns a node representing the negation of the i'th variable. See
// Ithvar for further info.
func (b *BDD) NIthvar(i int) Node {
	if i < 0 || i >= int(b.varnum) {
		panic(fmt.Sprintf("variable index out of range (%d)", i))
	}
	return Node(b.makenode(int32(i), 1, 0))
}

// Not returns the negation (!n) of expression n. It negates a BDD by
// exchanging all references to the zero-terminal with references to the
// one-terminal and vice versa.
func (b *BDD) Not(n Node) Node {
	return Node(b.not(int(n)))
}

func (b *BDD) not(n int) int {
	if n == 0 {
		return 1
	}
	if n == 1 {
		return 0
	}
	// The cache key for a not operation is simply n
	if res, ok := b.notcache[n]; ok {
		b.opHit++
		return res
	}
	b.opMiss++
	low := b.not(b.low(n))
	high := b.not(b.high(n))
	res := b.makenode(b.level(n), low, high)
	b.notcache[n] = res
	return res
}

// Ite, short for if-then-else operator, computes the BDD for the expression
// [(f & g) | (!f & h)] more efficiently than doing the three operations
// separately. It is the universal connective: every binary operation in Apply
// is a special case of Ite.
func (b *BDD) Ite(f, g, h Node) Node {
	return Node(b.ite(int(f), int(g), int(h)))
}

func (b *BDD) ite(f, g, h int) int {
	// Shortcut cases are resolved before any cache lookup and are never
	// memoized; only the general recursive case below goes through the cache.
	switch {
	case f == 1:
		return g
	case f == 0:
		return h
	case g == h:
		return g
	case (g == 1) && (h == 0):
		return f
	case (g == 0) && (h == 1):
		return b.not(f)
	}
	key := [3]int{f, g, h}
	if res, ok := b.itecache[key]; ok {
		b.opHit++
		return res
	}
	b.opMiss++
	p := b.level(f)
	q := b.level(g)
	r := b.level(h)
	low := b.ite(b.ite_low(p, q, r, f), b.ite_low(q, p, r, g), b.ite_low(r, p, q, h))
	high := b.ite(b.ite_high(p, q, r, f), b.ite_high(q, p, r, g), b.ite_high(r, p, q, h))
	res := b.makenode(min3(p, q, r), low, high)
	b.itecache[key] = res
	return res
}

// ite_low returns n if p is strictly higher than q or r, otherwise it returns
// n.low. This is used in function ite to know which node to follow: we always
// cofactor at the topmost level, and a node below that level (terminals
// included, since they carry the highest level) is independent of it.
func (b *BDD) ite_low(p, q, r int32, n int) int {
	if (p > q) || (p > r) {
		return n
	}
	return b.low(n)
}

func (b *BDD) ite_high(p, q, r int32, n int) int {
	if (p > q) || (p > r) {
		return n
	}
	return b.high(n)
}

// min3 returns the smallest value between p, q and r. This is used in function
// ite to compute the topmost level.
func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r { // p <= q && p <= r
			return p
		}
		return r // r < p <= q
	}
	if q <= r { // q < p && q <= r
		return q
	}
	return r // r < q < p
}

// Apply performs the basic binary operations on BDD nodes, such as AND, OR
// etc. Each operation is expressed through Ite:
//
//  Identifier    Description         Definition
//
//  OPand         logical and         ite(l, r, 0)
//  OPxor         logical xor         ite(l, !r, r)
//  OPor          logical or          ite(l, 1, r)
//  OPnand        logical not-and     ite(l, !r, 1)
//  OPnor         logical not-or      ite(l, 0, !r)
//  OPimp         implication         ite(l, r, 1)
//  OPbiimp       equivalence         ite(l, r, !r)
func (b *BDD) Apply(left, right Node, op Operator) Node {
	l, r := int(left), int(right)
	switch op {
	case OPand:
		return Node(b.ite(l, r, 0))
	case OPxor:
		return Node(b.ite(l, b.not(r), r))
	case OPor:
		return Node(b.ite(l, 1, r))
	case OPnand:
		return Node(b.ite(l, b.not(r), 1))
	case OPnor:
		return Node(b.ite(l, 0, b.not(r)))
	case OPimp:
		return Node(b.ite(l, r, 1))
	case OPbiimp:
		return Node(b.ite(l, r, b.not(r)))
	}
	panic(fmt.Sprintf("unknown operator (%d) in call to Apply", op))
}

// And returns the logical 'and' of a sequence of nodes.
func (b *BDD) And(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return b.True()
	}
	return b.Apply(n[0], b.And(n[1:]...), OPand)
}

// Or returns the logical 'or' of a sequence of nodes.
func (b *BDD) Or(n ...Node) Node {
	if len(n) == 1 {
		return n[0]
	}
	if len(n) == 0 {
		return b.False()
	}
	return b.Apply(n[0], b.Or(n[1:]...), OPor)
}

// Equal tests equivalence between nodes. Within one manager this is a plain
// id comparison, a direct consequence of canonicity.
func (b *BDD) Equal(n1, n2 Node) bool {
	return n1 == n2
}
