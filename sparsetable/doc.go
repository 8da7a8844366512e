// Package sparsetable provides an immutable sparse table answering range
// queries over a static sequence.
//
// What & Why
//
//	Row 0 of the table is the input; row i, column j holds the aggregate of
//	the half-open window [j, j+2^i). Building takes O(n log n) time and
//	space; afterwards two query modes are available:
//
//	| method | operator requirement            | time     |
//	|--------|---------------------------------|----------|
//	| Query  | associative and idempotent      | O(1)     |
//	| Fold   | associative, identity supplied  | O(log n) |
//
//	Query covers [l, r] with two overlapping power-of-two windows, which is
//	only sound when op(x, x) == x (min, max, gcd, bitwise and/or). Fold
//	walks the binary decomposition of the range length from the least
//	significant bit, using disjoint windows left to right, so it is sound
//	for any associative operator (sum, xor, products, concatenation).
//
// The number of rows is the bit length of n, so the last row covers the
// largest power of two not exceeding n.
//
// Preconditions
//
//	The input must be non-empty and every range must satisfy
//	0 <= l <= r < n. Violations are programmer errors: the table panics
//	with an error wrapping ErrEmptyInput or ErrInvalidRange.
//
// A built Table is never mutated, so concurrent queries are safe as long
// as op itself is.
package sparsetable
