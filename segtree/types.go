package segtree

import "errors"

// Sentinel errors returned by SegTree.
var (
	// ErrInvalidSize indicates a construction with zero or negative size.
	ErrInvalidSize = errors.New("segtree: the size must be greater than zero")

	// ErrSizeMismatch indicates the declared size differs from the input length.
	ErrSizeMismatch = errors.New("segtree: declared size does not match the number of values")

	// ErrDegenerateRange indicates a query with l > r.
	ErrDegenerateRange = errors.New("segtree: the range is degenerated")

	// ErrOutOfRange indicates an index outside [0, size).
	ErrOutOfRange = errors.New("segtree: index out of bounds")
)

// Monoid is the capability bundle a SegTree is built on. Merge must be
// associative and Neutral its two-sided identity; neither law is checked.
// Any algebra.Monoid satisfies it.
type Monoid[T any] interface {
	Neutral() T
	Merge(a, b T) T
}

// SegTree is a fixed-size segment tree over T.
type SegTree[T any] struct {
	n     int
	cells []T // len == 2n; leaves at [n, 2n), root at 1
	m     Monoid[T]
}
