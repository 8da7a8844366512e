package algebra

// Op is an associative binary operator over T.
type Op[T any] func(a, b T) T

// Monoid bundles an associative Merge with its two-sided identity Neutral.
// Implementations must satisfy the laws listed in the package documentation.
type Monoid[T any] interface {
	// Neutral returns the identity element of Merge.
	Neutral() T
	// Merge combines a and b, a on the left.
	Merge(a, b T) T
}

// Funcs adapts a pair of plain functions to the Monoid interface.
type Funcs[T any] struct {
	NeutralFn func() T
	MergeFn   func(a, b T) T
}

// Neutral calls NeutralFn.
func (f Funcs[T]) Neutral() T { return f.NeutralFn() }

// Merge calls MergeFn.
func (f Funcs[T]) Merge(a, b T) T { return f.MergeFn(a, b) }

// monoid is the Monoid returned by MonoidOf.
type monoid[T any] struct {
	op      Op[T]
	neutral T
}

func (m monoid[T]) Neutral() T     { return m.neutral }
func (m monoid[T]) Merge(a, b T) T { return m.op(a, b) }

// MonoidOf builds a Monoid from an operator and its identity element.
func MonoidOf[T any](op Op[T], neutral T) Monoid[T] {
	return monoid[T]{op: op, neutral: neutral}
}

// Fold combines values left to right starting from m.Neutral().
// It is the reference semantics every range query must reproduce.
//
// Complexity: O(len(values)).
func Fold[T any](m Monoid[T], values ...T) T {
	acc := m.Neutral()
	for _, v := range values {
		acc = m.Merge(acc, v)
	}

	return acc
}
