package fenwick

// New returns a Tree of n positions, every cell holding initial.
// A negative n is treated as 0.
//
// Complexity: O(n).
func New[T any](n int, op func(a, b T) T, initial T) *Tree[T] {
	if n < 0 {
		n = 0
	}
	ft := make([]T, n+1)
	for i := range ft {
		ft[i] = initial
	}

	return &Tree[T]{ft: ft, op: op, initial: initial}
}

// FromSlice returns a Tree whose position i+1 has had values[i] folded in.
// It builds in linear time by pushing each cell into its parent once.
//
// Complexity: O(n).
func FromSlice[T any](values []T, op func(a, b T) T, initial T) *Tree[T] {
	t := New(len(values), op, initial)
	for i, v := range values {
		t.ft[i+1] = op(t.ft[i+1], v)
	}
	for i := 1; i < len(t.ft); i++ {
		if p := i + i&-i; p < len(t.ft) {
			t.ft[p] = op(t.ft[p], t.ft[i])
		}
	}

	return t
}

// Update folds value into position k, k ∈ [1, Len()].
func (t *Tree[T]) Update(k int, value T) {
	if k < 1 || k >= len(t.ft) {
		panic(outOfRange(k, 1, len(t.ft)-1))
	}
	for i := k; i < len(t.ft); i += i & -i {
		t.ft[i] = t.op(t.ft[i], value)
	}
}

// Query returns the fold of positions [1, k], k ∈ [0, Len()], seeded with
// the initial value. Query(0) returns the initial value.
func (t *Tree[T]) Query(k int) T {
	if k < 0 || k >= len(t.ft) {
		panic(outOfRange(k, 0, len(t.ft)-1))
	}
	answer := t.initial
	for i := k; i > 0; i -= i & -i {
		answer = t.op(answer, t.ft[i])
	}

	return answer
}

// Len returns the number of positions n.
func (t *Tree[T]) Len() int { return len(t.ft) - 1 }
