package segtree

import "fmt"

// New returns a SegTree of n leaves, every cell set to m.Neutral().
// Returns ErrInvalidSize if n <= 0.
func New[T any](n int, m Monoid[T]) (*SegTree[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}
	cells := make([]T, 2*n)
	neutral := m.Neutral()
	for i := range cells {
		cells[i] = neutral
	}

	return &SegTree[T]{n: n, cells: cells, m: m}, nil
}

// FromSlice returns a SegTree whose leaves are a copy of values.
// Returns ErrInvalidSize if values is empty.
//
// Complexity: O(n).
func FromSlice[T any](values []T, m Monoid[T]) (*SegTree[T], error) {
	return FromSized(len(values), values, m)
}

// FromSized is FromSlice with an explicitly declared size, which must equal
// len(values). Returns ErrInvalidSize or ErrSizeMismatch.
func FromSized[T any](n int, values []T, m Monoid[T]) (*SegTree[T], error) {
	if n != len(values) && n > 0 {
		return nil, fmt.Errorf("%w: declared %d, got %d values", ErrSizeMismatch, n, len(values))
	}
	st, err := New(n, m)
	if err != nil {
		return nil, err
	}
	copy(st.cells[n:], values)
	for i := n - 1; i > 0; i-- {
		st.cells[i] = m.Merge(st.cells[i<<1], st.cells[i<<1|1])
	}

	return st, nil
}

// Query returns the merge of leaves l..r inclusive, in index order.
// Returns ErrDegenerateRange if l > r, ErrOutOfRange if l < 0 or r >= Len().
func (st *SegTree[T]) Query(l, r int) (T, error) {
	resultLeft := st.m.Neutral()
	resultRight := st.m.Neutral()

	if l > r {
		return resultLeft, fmt.Errorf("%w: [%d, %d]", ErrDegenerateRange, l, r)
	}
	if l < 0 || r >= st.n {
		return resultLeft, fmt.Errorf("%w: [%d, %d] with size %d", ErrOutOfRange, l, r, st.n)
	}

	for l, r = l+st.n, r+st.n; l <= r; l, r = l>>1, r>>1 {
		if l&1 == 1 {
			resultLeft = st.m.Merge(resultLeft, st.cells[l])
			l++
		}
		if r&1 == 0 {
			resultRight = st.m.Merge(st.cells[r], resultRight)
			r--
		}
	}

	return st.m.Merge(resultLeft, resultRight), nil
}

// Update overwrites leaf k with value and recomputes its ancestors.
// Returns ErrOutOfRange if k is outside [0, Len()).
func (st *SegTree[T]) Update(k int, value T) error {
	if k < 0 || k >= st.n {
		return fmt.Errorf("%w: %d with size %d", ErrOutOfRange, k, st.n)
	}
	k += st.n
	st.cells[k] = value
	for k >>= 1; k > 0; k >>= 1 {
		st.cells[k] = st.m.Merge(st.cells[k<<1], st.cells[k<<1|1])
	}

	return nil
}

// Get returns leaf k. Returns ErrOutOfRange if k is outside [0, Len()).
func (st *SegTree[T]) Get(k int) (T, error) {
	if k < 0 || k >= st.n {
		var zero T
		return zero, fmt.Errorf("%w: %d with size %d", ErrOutOfRange, k, st.n)
	}

	return st.cells[k+st.n], nil
}

// All returns the merge of every leaf.
func (st *SegTree[T]) All() T {
	v, _ := st.Query(0, st.n-1)

	return v
}

// Len returns the number of leaves.
func (st *SegTree[T]) Len() int { return st.n }
