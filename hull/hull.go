package hull

import (
	"fmt"

	"github.com/google/btree"
)

// node is a stored line in internal (max) orientation, or a query pivot.
type node struct {
	m, b       int64
	prev, next *node // slope-order neighbours on the envelope

	// pivot fields; set only on the per-call query node
	query    bool
	num, den int64 // x = num/den, den > 0
}

// beatenAt reports whether l's successor is strictly better at the pivot's x.
func (l *node) beatenAt(q *node) bool {
	s := l.next
	if s == nil {
		return false
	}

	return (l.b-s.b)*q.den < (s.m-l.m)*q.num
}

// less orders stored lines by slope. Against a query pivot a stored line is
// smaller iff its successor beats it, which is monotone along the envelope.
func less(a, b *node) bool {
	switch {
	case b.query:
		return a.beatenAt(b)
	case a.query:
		return !b.beatenAt(a)
	default:
		return a.m < b.m
	}
}

// bad reports whether y, lying between x and z by slope, is never strictly
// above both of them.
func bad(x, y, z *node) bool {
	return (x.b-y.b)*(z.m-y.m) >= (y.b-z.b)*(y.m-x.m)
}

// Hull is a dynamic line container for max or min queries.
type Hull struct {
	tree *btree.BTreeG[*node]
	mode Mode
}

// New returns an empty Hull. It panics with ErrOptionViolation on an invalid Option.
func New(opts ...Option) *Hull {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		panic(o.err)
	}

	return &Hull{
		tree: btree.NewG[*node](o.Degree, less),
		mode: o.Mode,
	}
}

// Insert adds the line y = m·x + b.
//
// Steps:
//  1. Orient the line (negate in Min mode).
//  2. If a line of equal slope exists, keep whichever has the larger
//     intercept.
//  3. Find the slope-order neighbours x < y < z. If y is dominated by them,
//     discard it.
//  4. Store y, link it between x and z, then erase now-dominated lines to the
//     right and to the left of y.
func (h *Hull) Insert(m, b int64) {
	if h.mode == Min {
		m, b = -m, -b
	}
	y := &node{m: m, b: b}

	if old, ok := h.tree.Get(y); ok {
		if old.b >= b {
			return
		}
		h.remove(old)
	}

	var x, z *node
	h.tree.DescendLessOrEqual(y, func(n *node) bool {
		x = n
		return false
	})
	h.tree.AscendGreaterOrEqual(y, func(n *node) bool {
		z = n
		return false
	})
	if x != nil && z != nil && bad(x, y, z) {
		return
	}

	h.tree.ReplaceOrInsert(y)
	y.prev, y.next = x, z
	if x != nil {
		x.next = y
	}
	if z != nil {
		z.prev = y
	}

	for y.next != nil && y.next.next != nil && bad(y, y.next, y.next.next) {
		h.remove(y.next)
	}
	for y.prev != nil && y.prev.prev != nil && bad(y.prev.prev, y.prev, y) {
		h.remove(y.prev)
	}
}

// remove unlinks n from the envelope and the tree.
func (h *Hull) remove(n *node) {
	h.tree.Delete(n)
	if n.prev != nil {
		n.prev.next = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.prev, n.next = nil, nil
}

// best returns the optimal stored line (internal orientation) at x = a/b.
func (h *Hull) best(a, b int64) *node {
	if b == 0 {
		panic(fmt.Errorf("%w: %d/%d", ErrZeroDenominator, a, b))
	}
	if h.tree.Len() == 0 {
		panic(ErrEmptyHull)
	}
	if b < 0 {
		a, b = -a, -b
	}
	pivot := &node{query: true, num: a, den: b}

	var found *node
	h.tree.AscendGreaterOrEqual(pivot, func(n *node) bool {
		found = n
		return false
	})

	return found
}

// orient converts a stored line back to the caller's sign convention.
func (h *Hull) orient(n *node) Line {
	if h.mode == Min {
		return Line{M: -n.m, B: -n.b}
	}

	return Line{M: n.m, B: n.b}
}

// Best returns a line that is optimal (maximal in Max mode, minimal in Min
// mode) at x = a/b. A negative b is normalized by negating a and b.
func (h *Hull) Best(a, b int64) Line {
	return h.orient(h.best(a, b))
}

// Query returns the envelope value at x = a/b, rounded toward negative
// infinity. For b == 1 this is exactly max (or min) of m·a + c.
func (h *Hull) Query(a, b int64) int64 {
	l := h.Best(a, b)
	if b < 0 {
		a, b = -a, -b
	}

	return floorDiv(l.M*a+l.B*b, b)
}

// Eval returns the envelope value at integer x.
func (h *Hull) Eval(x int64) int64 {
	return h.Best(x, 1).At(x)
}

// Len returns the number of lines on the envelope.
func (h *Hull) Len() int { return h.tree.Len() }

// Mode returns the envelope kind.
func (h *Hull) Mode() Mode { return h.mode }

// Lines returns the envelope from left to right along the x-axis: the line
// optimal as x → -∞ first.
func (h *Hull) Lines() []Line {
	out := make([]Line, 0, h.tree.Len())
	h.tree.Ascend(func(n *node) bool {
		out = append(out, h.orient(n))
		return true
	})

	return out
}

// floorDiv returns ⌊p/q⌋ for q > 0.
func floorDiv(p, q int64) int64 {
	d := p / q
	if p%q != 0 && p < 0 {
		d--
	}

	return d
}
