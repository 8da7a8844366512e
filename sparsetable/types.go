package sparsetable

import "errors"

// Sentinel panic values (wrapped) for contract violations.
var (
	// ErrEmptyInput indicates construction from an empty sequence.
	ErrEmptyInput = errors.New("sparsetable: input sequence must be non-empty")

	// ErrInvalidRange indicates a query range outside 0 <= l <= r < n.
	ErrInvalidRange = errors.New("sparsetable: invalid query range")
)

// Table is a sparse table over T built with a single binary operator.
type Table[T any] struct {
	st [][]T // st[i][j] = op over [j, j+2^i); len(st[i]) == n-2^i+1
	op func(a, b T) T
}
