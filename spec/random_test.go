// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package spec

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRandomDeterminism(t *testing.T) {
	s1 := Random(4, 3, 0.35, 0.15, 42)
	s2 := Random(4, 3, 0.35, 0.15, 42)
	if diff := cmp.Diff(s1, s2); diff != "" {
		t.Errorf("same seed, different specifications (-first +second):\n%s", diff)
	}
}

func TestRandomShape(t *testing.T) {
	s := Random(5, 4, 0.35, 0.15, 7)
	if len(s.Funcs) != 4 {
		t.Fatalf("expected 4 functions, actual %d", len(s.Funcs))
	}
	for _, f := range s.Funcs {
		if len(f.On) == 0 {
			t.Errorf("%s: empty ON-set", f.Name)
		}
		dc := make(map[int]bool)
		for _, i := range f.DC {
			dc[i] = true
		}
		for _, i := range f.On {
			if i < 0 || i >= 1<<5 {
				t.Errorf("%s: minterm %d out of range", f.Name, i)
			}
			if dc[i] {
				t.Errorf("%s: minterm %d both ON and don't-care", f.Name, i)
			}
		}
	}
}

func TestRandomDisjointAfterForcedOn(t *testing.T) {
	// with onRatio 0 the ON-set is forced to a single minterm, which must be
	// withdrawn from the don't-care set when they collide; scan a few seeds
	for seed := int64(0); seed < 50; seed++ {
		s := Random(3, 1, 0, 0.9, seed)
		f := s.Funcs[0]
		if len(f.On) != 1 {
			t.Fatalf("seed %d: expected a single forced ON minterm, actual %v", seed, f.On)
		}
		for _, d := range f.DC {
			if d == f.On[0] {
				t.Errorf("seed %d: forced minterm %d still in the don't-care set", seed, f.On[0])
			}
		}
	}
}
