// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package synt

import (
	"fmt"
)

// keysize is the number of bytes needed to serialize a (level, low, high)
// triplet: 12 on 32-bit and 20 on 64-bit architectures (adapted from uintSize
// in the math/bits package).
const keysize = (2*(32<<(^uint(0)>>32&1)) + 32) / 8

// _MAXVAR is the maximal number of levels in a BDD. We use int32 for levels,
// so we make sure the value is the same on every architecture.
const _MAXVAR int32 = 0x1FFFFF

// node is a vertex of the diagram. Terminal nodes, always stored at ids 0 and
// 1, carry level == varnum so that level comparisons never need to
// special-case constants.
type node struct {
	level int32 // Order of the variable in the BDD
	low   int   // Id of the false branch
	high  int   // Id of the true branch
}

// Node is a reference to an element of a BDD. It is a stable integer id,
// assigned once at creation; nodes are immutable and two nodes with equal id
// always denote the same function within one manager.
type Node int

// BDD is a manager for one Boolean function synthesis run. It owns the node
// arena, the unicity table that makes the diagram canonical, and the operator
// caches. A BDD must not be shared between goroutines; independent managers
// are fully isolated from one another.
type BDD struct {
	varnum   int32             // number of BDD variables
	nodes    []node            // arena of all nodes, ids 0 and 1 are the constants
	unique   map[[keysize]byte]int // unicity table, one node per (level, low, high)
	itecache map[[3]int]int    // memoized results for the general ite case
	notcache map[int]int       // memoized results for negation
	hbuff    [keysize]byte     // scratch buffer for unicity keys

	uniqueAccess int // accesses to the unique node table
	uniqueHit    int // entries actually found in the unique node table
	uniqueMiss   int // entries not found in the unique node table
	opHit        int // entries found in the operator caches
	opMiss       int // entries not found in the operator caches
}

// New initializes a BDD manager with varnum variables. Available options are
// Nodesize and Cachesize. We return an error if varnum is negative or exceeds
// the maximal supported number of levels.
func New(varnum int, options ...func(*configs)) (*BDD, error) {
	if varnum < 0 || varnum > int(_MAXVAR) {
		return nil, fmt.Errorf("bad number of variables (%d)", varnum)
	}
	c := makeconfigs(varnum)
	for _, f := range options {
		f(c)
	}
	b := &BDD{varnum: int32(varnum)}
	b.nodes = make([]node, 2, c.nodesize)
	// Constants always have the highest level.
	b.nodes[0] = node{level: int32(varnum), low: 0, high: 0}
	b.nodes[1] = node{level: int32(varnum), low: 1, high: 1}
	b.unique = make(map[[keysize]byte]int, c.nodesize)
	b.itecache = make(map[[3]int]int, c.cachesize)
	b.notcache = make(map[int]int, c.cachesize)
	return b, nil
}

// hashkey serializes a triplet into the scratch buffer used as unicity-table
// key.
func (b *BDD) hashkey(level int32, low, high int) {
	b.hbuff[0] = byte(level)
	b.hbuff[1] = byte(level >> 8)
	b.hbuff[2] = byte(level >> 16)
	b.hbuff[3] = byte(level >> 24)
	b.hbuff[4] = byte(low)
	b.hbuff[5] = byte(low >> 8)
	b.hbuff[6] = byte(low >> 16)
	b.hbuff[7] = byte(low >> 24)
	if keysize == 20 {
		// 64 bits machine
		b.hbuff[8] = byte(low >> 32)
		b.hbuff[9] = byte(low >> 40)
		b.hbuff[10] = byte(low >> 48)
		b.hbuff[11] = byte(low >> 56)
		b.hbuff[12] = byte(high)
		b.hbuff[13] = byte(high >> 8)
		b.hbuff[14] = byte(high >> 16)
		b.hbuff[15] = byte(high >> 24)
		b.hbuff[16] = byte(high >> 32)
		b.hbuff[17] = byte(high >> 40)
		b.hbuff[18] = byte(high >> 48)
		b.hbuff[19] = byte(high >> 56)
		return
	}
	// 32 bits machine
	b.hbuff[8] = byte(high)
	b.hbuff[9] = byte(high >> 8)
	b.hbuff[10] = byte(high >> 16)
	b.hbuff[11] = byte(high >> 24)
}

// makenode is the only way to build a non-terminal node. It applies the
// reduction rule (a node with equal children is replaced by that child) then
// consults the unicity table, so that no two nodes ever share the same
// (level, low, high) triplet. The arena is append-only: the id of a new node
// is simply the next free index.
func (b *BDD) makenode(level int32, low, high int) int {
	b.uniqueAccess++
	if low == high {
		return low
	}
	b.hashkey(level, low, high)
	if res, ok := b.unique[b.hbuff]; ok {
		b.uniqueHit++
		return res
	}
	b.uniqueMiss++
	b.nodes = append(b.nodes, node{level: level, low: low, high: high})
	res := len(b.nodes) - 1
	b.unique[b.hbuff] = res
	return res
}

func (b *BDD) level(n int) int32 {
	return b.nodes[n].level
}

func (b *BDD) low(n int) int {
	return b.nodes[n].low
}

func (b *BDD) high(n int) int {
	return b.nodes[n].high
}

// Varnum returns the number of defined variables.
func (b *BDD) Varnum() int {
	return int(b.varnum)
}

// True returns the Node for the constant true.
func (b *BDD) True() Node {
	return 1
}

// False returns the Node for the constant false.
func (b *BDD) False() Node {
	return 0
}

// From returns a (constant) Node from a boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return 1
	}
	return 0
}

// IsConst reports whether n is one of the two terminal nodes.
func (b *BDD) IsConst(n Node) bool {
	return n < 2
}

// Level returns the variable index of node n. The two terminals carry the
// level Varnum.
func (b *BDD) Level(n Node) int {
	return int(b.level(int(n)))
}

// Low returns the false branch of node n.
func (b *BDD) Low(n Node) Node {
	return Node(b.low(int(n)))
}

// High returns the true branch of node n.
func (b *BDD) High(n Node) Node {
	return Node(b.high(int(n)))
}

// NodeCount returns the total number of nodes in the manager, including the
// two terminals.
func (b *BDD) NodeCount() int {
	return len(b.nodes)
}

// InternalCount returns the number of non-terminal nodes in the manager.
func (b *BDD) InternalCount() int {
	return len(b.nodes) - 2
}
