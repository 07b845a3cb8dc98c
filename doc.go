// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

/*
Package synt implements combinational logic synthesis based on Binary Decision
Diagrams (BDD), a data structure used to efficiently represent Boolean
functions over a fixed set of variables.

Basics

Each BDD has a fixed number of variables, Varnum, declared when it is
initialized (using the function New) and each variable is represented by an
(integer) index in the interval [0..Varnum), called a level. The library
supports the creation of multiple BDD with possibly different number of
variables.

Most operations over a BDD return a Node; that is the integer id of a "vertex"
in the BDD that includes a variable level, and the id of the low and high
branch for this node. We use the convention that 1 (respectively 0) is the id
of the constant function True (respectively False). Ids are assigned once at
node creation and never reused: two nodes with equal id denote the same
Boolean function over the manager's variable ordering, which makes equivalence
testing a simple integer comparison.

A function can be entered as a fully specified truth table (FromTruthTable) or
as a set of ON and don't-care minterm indices (FromMinterms); construction is
a Shannon decomposition that only ever goes through makenode, so the diagram
is reduced and canonical by construction. Arbitrary Boolean combinations are
available through Ite, the ternary if-then-else operator, which is the
universal primitive every other connective is expressed with.

The sibling packages lower a diagram to hardware: netlist walks the DAG once
and maps each vertex to a logic gate, and verilog renders the resulting gate
list as a structural SystemVerilog module together with an exhaustive
testbench.

Memory management

Data structures and algorithms in this package are an adaptation of those
found in the C-library BuDDy, developed by Jorn Lind-Nielsen, restricted to
the needs of one-shot synthesis runs. A manager allocates nodes monotonically
in an id-indexed arena and never frees them individually; the whole arena is
dropped together when a run completes. As a consequence there is no garbage
collection, no reference counting, and no locking: a manager is exclusively
owned by the computation that created it, and independent managers can be
used from different goroutines without any shared state.
*/
package synt
