package fenwick

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is the panic value (wrapped) for an invalid position.
var ErrIndexOutOfRange = errors.New("fenwick: index out of range")

// Tree is a 1-indexed Fenwick tree over T.
type Tree[T any] struct {
	ft      []T // len(ft) == n+1; ft[0] is unused
	op      func(a, b T) T
	initial T
}

func outOfRange(k, lo, hi int) error {
	return fmt.Errorf("%w: %d not in [%d, %d]", ErrIndexOutOfRange, k, lo, hi)
}
