package sparsetable

import (
	"fmt"
	"math/bits"
)

// New builds a Table over a copy of values combined with op.
// It panics with ErrEmptyInput if values is empty.
//
// Complexity: O(n log n) time and memory.
func New[T any](values []T, op func(a, b T) T) *Table[T] {
	n := len(values)
	if n == 0 {
		panic(ErrEmptyInput)
	}
	lg := bits.Len(uint(n))

	st := make([][]T, lg)
	st[0] = append([]T(nil), values...)
	for i := 1; i < lg; i++ {
		half := 1 << (i - 1)
		prev := st[i-1]
		row := make([]T, n-(1<<i)+1)
		for j := range row {
			row[j] = op(prev[j], prev[j+half])
		}
		st[i] = row
	}

	return &Table[T]{st: st, op: op}
}

// Query returns op over [l, r] using two possibly overlapping windows.
// op must be idempotent; for other operators use Fold.
func (t *Table[T]) Query(l, r int) T {
	t.check(l, r)
	k := bits.Len(uint(r-l+1)) - 1

	return t.op(t.st[k][l], t.st[k][r+1-(1<<k)])
}

// Fold returns op folded over [l, r] left to right, seeded with initial,
// using disjoint windows only. initial must be an identity of op.
func (t *Table[T]) Fold(initial T, l, r int) T {
	t.check(l, r)
	answer := initial
	for length, i := uint(r-l+1), 0; length != 0; length, i = length>>1, i+1 {
		if length&1 == 1 {
			answer = t.op(answer, t.st[i][l])
			l += 1 << i
		}
	}

	return answer
}

// Len returns the length of the underlying sequence.
func (t *Table[T]) Len() int { return len(t.st[0]) }

// Levels returns the number of rows, the bit length of Len().
func (t *Table[T]) Levels() int { return len(t.st) }

func (t *Table[T]) check(l, r int) {
	if l < 0 || l > r || r >= len(t.st[0]) {
		panic(fmt.Errorf("%w: [%d, %d] with length %d", ErrInvalidRange, l, r, len(t.st[0])))
	}
}
