package dsu

// New returns a DisjointSet of n singleton components 0..n-1.
// A negative n is treated as 0.
//
// Complexity: O(n).
func New(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	d := &DisjointSet{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		size:   make([]int, n),
		count:  n,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d
}

// Find returns the root of v's component and points every element on the
// way directly at it.
//
// Steps:
//  1. Walk parent links up to the root.
//  2. Walk the same path again, re-pointing each element at the root.
func (d *DisjointSet) Find(v int) int {
	d.check(v)
	root := v
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[v] != root {
		next := d.parent[v]
		d.parent[v] = root
		v = next
	}

	return root
}

// Unite merges the components of u and v. It reports false, and changes
// nothing, if they were already the same component.
//
// The lower-rank root is attached under the higher-rank one; on a tie the
// surviving root's rank grows by one. The surviving root accumulates size.
func (d *DisjointSet) Unite(u, v int) bool {
	u, v = d.Find(u), d.Find(v)
	if u == v {
		return false
	}
	if d.rank[u] > d.rank[v] {
		u, v = v, u
	}
	// v survives
	d.parent[u] = v
	d.size[v] += d.size[u]
	if d.rank[u] == d.rank[v] {
		d.rank[v]++
	}
	d.count--

	return true
}

// Same reports whether u and v belong to the same component.
func (d *DisjointSet) Same(u, v int) bool {
	return d.Find(u) == d.Find(v)
}

// SizeOf returns the number of elements in v's component.
func (d *DisjointSet) SizeOf(v int) int {
	return d.size[d.Find(v)]
}

// Len returns the number of elements.
func (d *DisjointSet) Len() int { return len(d.parent) }

// Count returns the number of components.
func (d *DisjointSet) Count() int { return d.count }

// Sets returns every component as a sorted slice of its elements.
// Components are ordered by their smallest element, so the result is
// deterministic for a given partition.
//
// Complexity: O(n·α(n)).
func (d *DisjointSet) Sets() [][]int {
	index := make(map[int]int, d.count) // root -> position in out
	out := make([][]int, 0, d.count)
	// Elements are visited in increasing order, so every component is
	// created at its smallest element and filled in sorted order.
	for v := range d.parent {
		root := d.Find(v)
		i, ok := index[root]
		if !ok {
			i = len(out)
			index[root] = i
			out = append(out, make([]int, 0, d.size[root]))
		}
		out[i] = append(out[i], v)
	}

	return out
}

// Roots returns the current root of every component in increasing order.
func (d *DisjointSet) Roots() []int {
	roots := make([]int, 0, d.count)
	for v, p := range d.parent {
		if v == p {
			roots = append(roots, v)
		}
	}

	return roots
}
