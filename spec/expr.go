// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package spec

import (
	"fmt"

	"github.com/expr-lang/expr"
)

// FromExpr builds the truth table of a Boolean expression over the given
// input names, for example "x0 && (x1 != x2)". The expression is compiled
// once and evaluated for each of the 2^n assignments; variable 0 is carried
// by the most significant bit of the row index, matching the minterm
// numbering used everywhere else.
func FromExpr(src string, inputs []string) ([]int, error) {
	n := len(inputs)
	program, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	table := make([]int, 1<<n)
	env := make(map[string]interface{}, n)
	for i := range table {
		for j, name := range inputs {
			env[name] = (i>>(n-1-j))&1 == 1
		}
		out, err := expr.Run(program, env)
		if err != nil {
			return nil, fmt.Errorf("evaluate %q on minterm %d: %w", src, i, err)
		}
		if out.(bool) {
			table[i] = 1
		}
	}
	return table, nil
}
