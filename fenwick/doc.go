// Package fenwick provides a generic Fenwick tree (binary indexed tree) over
// an arbitrary associative operator.
//
// What & Why
//
//	A Fenwick tree keeps n+1 buffer cells, 1-indexed. Cell i aggregates the
//	power-of-two-aligned range (i - lowbit(i), i], so any prefix [1, k] is
//	the fold of O(log n) cells and any point update touches O(log n) cells.
//
// Operations
//
//	| method  | effect                                      | time     |
//	|---------|---------------------------------------------|----------|
//	| Update  | fold value into position k (k ∈ [1, n])     | O(log n) |
//	| Query   | fold of positions [1, k] (k ∈ [0, n])       | O(log n) |
//
// Operator contract
//
//	op must be associative and initial must be its identity. Update folds
//	value into existing cells (cell = op(cell, value)), so the structure
//	supports accumulate-style updates: sum, xor, min, max. It does NOT
//	support overwriting a position, range updates, or range queries for
//	operators without an inverse. Query folds cells from the highest index
//	down, so op must additionally be commutative for the result to equal the
//	left-to-right fold; sum, xor, min, max and gcd all qualify.
//
// Preconditions
//
//	Indices outside their documented range are programmer errors: the
//	structure panics with an error wrapping ErrIndexOutOfRange.
//
// Not safe for concurrent use.
package fenwick
