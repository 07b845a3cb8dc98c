// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package spec

import (
	"fmt"
	"math/rand"
)

// Random generates a specification with m output functions over n inputs.
// Each minterm is drawn into the ON-set with probability onRatio and into the
// don't-care set with probability dcRatio; the two sets are disjoint by
// construction and every function has a non-empty ON-set. onRatio is clamped
// to 0.5 so that random functions keep a useful OFF-set. The result is
// deterministic for a given seed.
func Random(n, m int, onRatio, dcRatio float64, seed int64) *File {
	if onRatio > 0.5 {
		onRatio = 0.5
	}
	rng := rand.New(rand.NewSource(seed))
	size := 1 << n
	res := &File{}
	for k := 0; k < m; k++ {
		f := Func{Name: fmt.Sprintf("f%d", k+1)}
		for i := 0; i < size; i++ {
			r := rng.Float64()
			switch {
			case r < onRatio:
				f.On = append(f.On, i)
			case r < onRatio+dcRatio:
				f.DC = append(f.DC, i)
			}
		}
		if len(f.On) == 0 {
			i := rng.Intn(size)
			f.On = append(f.On, i)
			for k, d := range f.DC {
				if d == i {
					f.DC = append(f.DC[:k], f.DC[k+1:]...)
					break
				}
			}
		}
		res.Funcs = append(res.Funcs, f)
	}
	return res
}
