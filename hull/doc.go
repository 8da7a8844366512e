// Package hull provides a dynamic convex-hull-trick line container: insert
// lines y = m·x + b in any order and ask for the maximum (or minimum) value
// over all inserted lines at a query point.
//
// What & Why
//
//	Many DP recurrences take the form dp[i] = max_j (m_j · x_i + b_j). When
//	neither slopes nor query points arrive sorted, a Hull answers each query
//	in O(log n) amortized by keeping only the lines on the upper envelope.
//
// How it works
//
//   - Lines are kept in a B-tree (github.com/google/btree) ordered by slope;
//     equal slopes keep only the better intercept.
//   - Each stored line links to its slope-order neighbours. A line y between
//     x and z is dominated when
//     (x.b - y.b)·(z.m - y.m) >= (y.b - z.b)·(y.m - x.m),
//     i.e. x and z meet at or above y. A new dominated line is discarded;
//     otherwise dominated neighbours are erased outward from it.
//   - A query at x = a/b descends the same B-tree with a per-call pivot: a
//     stored line sorts before the pivot iff its successor is strictly
//     better at x. The first line not before the pivot is optimal. All
//     comparisons cross-multiply, so no floating point is involved.
//   - Min mode stores (-m, -b) and negates results.
//
// Operations
//
//	| method | effect                                        | time            |
//	|--------|-----------------------------------------------|-----------------|
//	| Insert | add a line, prune the envelope                | O(log n) amort. |
//	| Best   | optimal line at x = a/b                       | O(log n)        |
//	| Query  | envelope value at x = a/b, floored            | O(log n)        |
//	| Eval   | envelope value at integer x                   | O(log n)        |
//	| Lines  | envelope from left to right along the x-axis  | O(n)            |
//
// Overflow: the dominance test multiplies differences of slopes and
// intercepts, and queries multiply slopes by the numerator. Callers must
// keep those products inside int64.
//
// Preconditions: querying an empty hull or using a zero denominator panics
// with ErrEmptyHull or ErrZeroDenominator.
//
// A Hull is not safe for concurrent use. Query state lives in the call, so
// distinct Hulls may be used from different goroutines.
package hull
