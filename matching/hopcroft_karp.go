package matching

import (
	"fmt"

	"github.com/emirpasic/gods/queues/arrayqueue"
)

// HopcroftKarp holds a bipartite graph and its current matching.
type HopcroftKarp struct {
	adj   [][]int // adj[u]: right neighbours of left vertex u
	pairU []int   // pairU[u]: right partner of u, 0 if free
	pairV []int   // pairV[v]: left partner of v, 0 if free
	dist  []int   // BFS layer of left vertices; dist[0] is the sink layer
	m, n  int
	size  int
}

// New returns an empty graph with left vertices 1..m and right vertices 1..n.
// It panics if m or n is negative or an Option is invalid.
func New(m, n int, opts ...Option) *HopcroftKarp {
	if m < 0 || n < 0 {
		panic(fmt.Errorf("%w: negative part size (%d, %d)", ErrVertexOutOfRange, m, n))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		panic(o.err)
	}

	adj := make([][]int, m+1)
	if o.CapacityHint > 0 {
		for u := 1; u <= m; u++ {
			adj[u] = make([]int, 0, o.CapacityHint)
		}
	}

	return &HopcroftKarp{
		adj:   adj,
		pairU: make([]int, m+1),
		pairV: make([]int, n+1),
		dist:  make([]int, m+1),
		m:     m,
		n:     n,
	}
}

// AddEdge connects left vertex u with right vertex v.
func (h *HopcroftKarp) AddEdge(u, v int) {
	if u < 1 || u > h.m {
		panic(fmt.Errorf("%w: left vertex %d not in [1, %d]", ErrVertexOutOfRange, u, h.m))
	}
	if v < 1 || v > h.n {
		panic(fmt.Errorf("%w: right vertex %d not in [1, %d]", ErrVertexOutOfRange, v, h.n))
	}
	h.adj[u] = append(h.adj[u], v)
}

// Run augments the current matching until it is maximum and returns the
// number of pairs added by this call.
func (h *HopcroftKarp) Run() int {
	added := 0
	for h.bfs() {
		for u := 1; u <= h.m; u++ {
			if h.pairU[u] == 0 && h.dfs(u) {
				added++
			}
		}
	}
	h.size += added

	return added
}

// bfs layers the left vertices from the free ones and reports whether an
// augmenting path exists.
func (h *HopcroftKarp) bfs() bool {
	q := arrayqueue.New()
	for u := 1; u <= h.m; u++ {
		if h.pairU[u] == 0 {
			h.dist[u] = 0
			q.Enqueue(u)
		} else {
			h.dist[u] = inf
		}
	}
	h.dist[0] = inf

	for !q.Empty() {
		item, _ := q.Dequeue()
		u := item.(int)
		if h.dist[u] >= h.dist[0] {
			continue
		}
		for _, v := range h.adj[u] {
			w := h.pairV[v]
			if h.dist[w] == inf {
				h.dist[w] = h.dist[u] + 1
				if w != 0 {
					q.Enqueue(w)
				}
			}
		}
	}

	return h.dist[0] != inf
}

// dfs looks for an augmenting path from left vertex u inside the layered
// graph and flips it on success.
func (h *HopcroftKarp) dfs(u int) bool {
	if u == 0 {
		return true
	}
	for _, v := range h.adj[u] {
		w := h.pairV[v]
		if h.dist[w] == h.dist[u]+1 && h.dfs(w) {
			h.pairV[v] = u
			h.pairU[u] = v

			return true
		}
	}
	h.dist[u] = inf

	return false
}

// Size returns the size of the current matching.
func (h *HopcroftKarp) Size() int { return h.size }

// Left returns m, the number of left vertices.
func (h *HopcroftKarp) Left() int { return h.m }

// Right returns n, the number of right vertices.
func (h *HopcroftKarp) Right() int { return h.n }

// PairU returns a copy of the left-side partners, indexed 0..m; entry 0 is
// unused and 0 means unmatched.
func (h *HopcroftKarp) PairU() []int {
	out := make([]int, len(h.pairU))
	copy(out, h.pairU)

	return out
}

// PairV returns a copy of the right-side partners, indexed 0..n.
func (h *HopcroftKarp) PairV() []int {
	out := make([]int, len(h.pairV))
	copy(out, h.pairV)

	return out
}

// Pairs lists the matched edges as {u, v}, sorted by u.
func (h *HopcroftKarp) Pairs() [][2]int {
	out := make([][2]int, 0, h.size)
	for u := 1; u <= h.m; u++ {
		if v := h.pairU[u]; v != 0 {
			out = append(out, [2]int{u, v})
		}
	}

	return out
}
