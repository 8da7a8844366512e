// Package cpkit is a toolbox of classic competitive-programming data
// structures: compact, index-based, allocation-light, and generic where the
// structure allows it.
//
// What is in the box?
//
//	• dsu: disjoint-set union with path compression, union by rank, sizes
//	• fenwick: binary indexed tree over any associative operator
//	• segtree: iterative segment tree over a monoid, order-preserving
//	• sparsetable: O(1) idempotent range queries, O(log n) general folds
//	• hull: dynamic convex-hull trick (max or min of lines)
//	• matching: Hopcroft–Karp maximum bipartite matching
//	• algebra: ready-made operators and monoids (Sum, Min, Max, Xor, GCD…)
//
// Conventions shared by every package:
//
//   - Errors are package-prefixed sentinels ("segtree: ...") wrapped with
//     context via %w; match them with errors.Is.
//   - Recoverable input problems are returned as errors (segtree); contract
//     violations such as an index out of range panic with an error value
//     wrapping the sentinel.
//   - Nothing logs, nothing does I/O, and no structure is safe for
//     concurrent use. Distinct instances are fully independent.
//
// Quick example, prefix sums:
//
//	ft := fenwick.New(5, algebra.Sum[int], 0)
//	ft.Update(1, 5)
//	ft.Update(3, 2)
//	ft.Query(3) // 7
//
// Runnable scenarios live under examples/.
//
//	go get github.com/katalvlaran/cpkit
package cpkit
