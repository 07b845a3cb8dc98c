// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

/*
Package spec handles the textual "sum of minterms" specification format and
the other ways a Boolean function can enter the synthesis pipeline: random
generation and Boolean expressions.

A specification file declares one output function per line, as the set of
minterm indices where the function is 1 and, optionally, the set of don't-care
indices:

	# three-input example
	f1 = m(1, 3, 5) + d(2, 7)
	f2 = m(0, 6)

Lines starting with '#' or '//' are comments. Minterm indices refer to rows of
the truth table over n inputs, variable 0 carried by the most significant bit.
*/
package spec

import (
	"fmt"
	"io"
	"sort"
)

// Func is one output function, given by its ON-set and don't-care set of
// minterm indices. Both sets are sorted and duplicate-free; an index present
// in both is treated as ON.
type Func struct {
	Name string
	On   []int
	DC   []int
}

// File is a parsed specification: an ordered list of output functions.
type File struct {
	Funcs []Func
}

// Table expands the function into a fully specified truth table over n
// inputs. Don't-care rows are marked with -1; callers resolve them before
// building a diagram.
func (f Func) Table(n int) ([]int, error) {
	size := 1 << n
	table := make([]int, size)
	for _, i := range f.On {
		if i < 0 || i >= size {
			return nil, fmt.Errorf("%s: minterm %d out of range [0..%d)", f.Name, i, size)
		}
		table[i] = 1
	}
	for _, i := range f.DC {
		if i < 0 || i >= size {
			return nil, fmt.Errorf("%s: don't-care %d out of range [0..%d)", f.Name, i, size)
		}
		if table[i] == 0 {
			table[i] = -1
		}
	}
	return table, nil
}

// Write serializes the specification back to the textual format.
func (s *File) Write(w io.Writer) error {
	for _, f := range s.Funcs {
		if _, err := fmt.Fprintf(w, "%s = m(%s)", f.Name, joinInts(f.On)); err != nil {
			return err
		}
		if len(f.DC) > 0 {
			if _, err := fmt.Fprintf(w, " + d(%s)", joinInts(f.DC)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func joinInts(xs []int) string {
	res := ""
	for k, x := range xs {
		if k > 0 {
			res += ", "
		}
		res += fmt.Sprintf("%d", x)
	}
	return res
}

// normalize sorts a set of indices and removes duplicates.
func normalize(xs []int) []int {
	sort.Ints(xs)
	res := xs[:0]
	for k, x := range xs {
		if k == 0 || x != xs[k-1] {
			res = append(res, x)
		}
	}
	return res
}

// DefaultNames returns the conventional input names x0..x<n-1>.
func DefaultNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("x%d", i)
	}
	return names
}
