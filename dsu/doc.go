// Package dsu provides a fixed-size disjoint-set (union–find) structure with
// path compression, union by rank and per-component sizes.
//
// What & Why
//
//	A DisjointSet partitions the elements 0..n-1 into components. It answers
//	"are u and v connected?" and "how large is v's component?" after any
//	sequence of merges, in amortized near-constant time. Typical uses:
//	Kruskal's MST, connectivity under edge insertions, grouping equivalent
//	items, offline LCA.
//
// Operations
//
//	| method   | effect                                       | amortized |
//	|----------|----------------------------------------------|-----------|
//	| Find     | canonical root of v, compressing the path    | O(α(n))   |
//	| Unite    | merge the components of u and v              | O(α(n))   |
//	| Same     | Find(u) == Find(v)                           | O(α(n))   |
//	| SizeOf   | element count of v's component               | O(α(n))   |
//	| Count    | number of components                         | O(1)      |
//	| Sets     | materialize all components                   | O(n log n)|
//
// Find is iterative (one pass to the root, one pass re-pointing every visited
// element at it), so deep trees never grow the call stack.
//
// Preconditions
//
//	Every index must lie in [0, n). Violations are programmer errors: the
//	structure panics with an error wrapping ErrIndexOutOfRange.
//
// Not safe for concurrent use.
package dsu
