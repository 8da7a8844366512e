package dsu

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is the panic value (wrapped) for an element outside [0, n).
var ErrIndexOutOfRange = errors.New("dsu: index out of range")

// DisjointSet partitions n elements into disjoint components.
// The zero value is an empty set of zero elements.
type DisjointSet struct {
	parent []int // parent[v] == v iff v is a root
	rank   []uint8
	size   []int // meaningful at roots only
	count  int   // number of components
}

// check panics if v is not a valid element.
func (d *DisjointSet) check(v int) {
	if v < 0 || v >= len(d.parent) {
		panic(fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, v, len(d.parent)))
	}
}
