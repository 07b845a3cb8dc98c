// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package spec

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTable prints the aligned truth table of the specification over n
// inputs, one row per minterm. Don't-care entries show as '-'.
func WriteTable(w io.Writer, n int, inputs []string, s *File) error {
	tables := make([][]int, len(s.Funcs))
	for k, f := range s.Funcs {
		t, err := f.Table(n)
		if err != nil {
			return err
		}
		tables[k] = t
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	header := strings.Join(inputs, "\t")
	for _, f := range s.Funcs {
		header += "\t| " + f.Name
	}
	fmt.Fprintln(tw, header)
	for i := 0; i < 1<<n; i++ {
		row := make([]string, 0, n+len(s.Funcs))
		for j := 0; j < n; j++ {
			row = append(row, fmt.Sprintf("%d", (i>>(n-1-j))&1))
		}
		for _, t := range tables {
			switch t[i] {
			case -1:
				row = append(row, "| -")
			default:
				row = append(row, fmt.Sprintf("| %d", t[i]))
			}
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
