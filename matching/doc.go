// Package matching computes maximum matchings in bipartite graphs with the
// Hopcroft–Karp algorithm.
//
// What & Why
//
//	Given a left part 1..m, a right part 1..n and edges u–v between them, a
//	matching is a set of edges with no shared endpoint. Hopcroft–Karp finds
//	a maximum one by augmenting along many vertex-disjoint shortest paths per
//	phase, which bounds the number of phases by O(√V). Typical uses:
//	assignment problems, minimum vertex cover in bipartite graphs (König),
//	scheduling with unit capacities.
//
// Algorithm
//
//  1. BFS from every free left vertex, layering left vertices by the length
//     of the shortest alternating path that reaches them. Vertex 0 stands for
//     "unmatched" and doubles as the sink: its layer is the length of the
//     shortest augmenting path, or INF if none exists.
//  2. For each free left vertex, DFS along edges u–v with
//     dist[pairV[v]] == dist[u]+1. Reaching vertex 0 flips the path. A vertex
//     whose DFS fails is marked INF so later searches in the same phase
//     skip it.
//  3. Repeat until the BFS finds no augmenting path.
//
// Complexity
//
//	| phase   | cost      |
//	|---------|-----------|
//	| AddEdge | O(1) amortized |
//	| Run     | O(E·√V)   |
//	| Memory  | O(V + E)  |
//
// Preconditions
//
//	Left vertices lie in [1, m], right vertices in [1, n]. AddEdge panics with
//	an error wrapping ErrVertexOutOfRange otherwise. Parallel edges are
//	allowed and harmless.
//
// Run may be called again after more edges are added; it resumes from the
// current matching and returns only the pairs it adds.
//
// Not safe for concurrent use.
package matching
