// Package segtree provides an iterative, bottom-up segment tree over a monoid.
//
// What & Why
//
//	A SegTree stores n values as the leaves [n, 2n) of a 2n-cell array. Every
//	internal cell i holds Merge(cell[2i], cell[2i+1]), so any closed range
//	[l, r] is the merge of O(log n) cells and a point update rewrites the
//	O(log n) ancestors of one leaf.
//
// Operations
//
//	| method     | effect                                  | time     |
//	|------------|-----------------------------------------|----------|
//	| New        | n neutral leaves                        | O(n)     |
//	| FromSlice  | leaves from values, internal cells built | O(n)    |
//	| Query      | merge over the closed range [l, r]      | O(log n) |
//	| Update     | overwrite leaf k, recompute ancestors   | O(log n) |
//
// Ordering
//
//	Query walks both ends of the range toward the root, keeping two
//	accumulators: the left one grows left-to-right, the right one grows
//	right-to-left, and they are merged once at the end. The result therefore
//	equals the left-to-right fold of the range even when Merge is not
//	commutative (string concatenation, matrix products, affine maps).
//
// Errors
//
//	Input validation failures are returned, not panicked:
//	  - ErrInvalidSize      n == 0 (or negative) at construction.
//	  - ErrSizeMismatch     declared size differs from the number of values.
//	  - ErrDegenerateRange  l > r.
//	  - ErrOutOfRange       an index outside [0, n).
//
// Not safe for concurrent use.
package segtree
