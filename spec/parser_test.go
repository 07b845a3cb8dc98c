// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package spec

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatal(err)
	}
	input := `# three-input sample
f1 = m(1, 3, 5) + d(2, 7)
// duplicates and out-of-order indices are normalized
f2 = m(6, 0, 6)
f3 = m() + d(4)
`
	actual, err := p.ParseString(input)
	if err != nil {
		t.Fatal(err)
	}
	expected := &File{Funcs: []Func{
		{Name: "f1", On: []int{1, 3, 5}, DC: []int{2, 7}},
		{Name: "f2", On: []int{0, 6}},
		{Name: "f3", DC: []int{4}},
	}}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("parse mismatch (-expected +actual):\n%s", diff)
	}
}

func TestParseSingleLine(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatal(err)
	}
	actual, err := p.ParseString("g = d(0) + m(1) + m(2)")
	if err != nil {
		t.Fatal(err)
	}
	expected := &File{Funcs: []Func{{Name: "g", On: []int{1, 2}, DC: []int{0}}}}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("parse mismatch (-expected +actual):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatal(err)
	}
	var parseTests = []struct {
		name  string
		input string
	}{
		{"duplicate name", "f = m(1)\nf = m(2)\n"},
		{"empty spec", "# only a comment\n"},
		{"missing parentheses", "f = m 1, 2\n"},
		{"bad term kind", "f = q(1)\n"},
	}
	for _, tt := range parseTests {
		if _, err := p.ParseString(tt.input); err == nil {
			t.Errorf("%s: expected an error for %q", tt.name, tt.input)
		}
	}
}

func TestWriteRoundTrip(t *testing.T) {
	p, err := NewParser()
	if err != nil {
		t.Fatal(err)
	}
	orig := &File{Funcs: []Func{
		{Name: "f1", On: []int{1, 3, 5}, DC: []int{2, 7}},
		{Name: "f2", On: []int{0, 6}},
	}}
	var buf strings.Builder
	if err := orig.Write(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := p.ParseString(buf.String())
	if err != nil {
		t.Fatalf("reparse of %q: %s", buf.String(), err)
	}
	if diff := cmp.Diff(orig, back); diff != "" {
		t.Errorf("round trip mismatch (-written +reparsed):\n%s", diff)
	}
}

func TestTable(t *testing.T) {
	f := Func{Name: "f", On: []int{1, 3}, DC: []int{2}}
	table, err := f.Table(2)
	if err != nil {
		t.Fatal(err)
	}
	expected := []int{0, 1, -1, 1}
	if diff := cmp.Diff(expected, table); diff != "" {
		t.Errorf("table mismatch (-expected +actual):\n%s", diff)
	}
	if _, err := (Func{Name: "f", On: []int{4}}).Table(2); err == nil {
		t.Errorf("minterm 4 over 2 inputs: expected an error")
	}
}
