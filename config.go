// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package synt

// configs stores the values of the different sizing parameters of a BDD.
type configs struct {
	varnum    int // number of BDD variables
	nodesize  int // initial capacity of the node arena
	cachesize int // initial capacity of the operator caches
}

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	// enough room for the constants and one node per literal
	c.nodesize = 2*varnum + 2
	c.cachesize = 1000
	return c
}

// Nodesize is a configuration option (function). Used as a parameter in New it
// sets a preferred initial capacity for the node arena. The arena grows during
// computation whatever the initial value; a good guess simply avoids
// reallocations. By default we reserve enough nodes for the two constants and
// the positive and negative form of each variable.
func Nodesize(size int) func(*configs) {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Cachesize is a configuration option (function). Used as a parameter in New
// it sets the initial capacity of the operation caches. The default value is
// 1000. Typical values go up to 1 000 000 entries for large examples.
func Cachesize(size int) func(*configs) {
	return func(c *configs) {
		if size > 0 {
			c.cachesize = size
		}
	}
}
