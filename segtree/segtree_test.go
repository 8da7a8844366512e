package segtree_test

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/cpkit/algebra"
	"github.com/katalvlaran/cpkit/segtree"
)

// concat is associative but not commutative, which exposes any accumulator
// ordering mistake in Query.
var concat = algebra.Funcs[string]{
	NeutralFn: func() string { return "" },
	MergeFn:   func(a, b string) string { return a + b },
}

// SegTreeSuite exercises SegTree under various scenarios.
type SegTreeSuite struct {
	suite.Suite
}

// TestMinExample reproduces the canonical range-minimum walkthrough.
func (s *SegTreeSuite) TestMinExample() {
	st, err := segtree.FromSlice[int]([]int{5, 2, 8, 1, 9}, algebra.MinMonoid(math.MaxInt))
	require.NoError(s.T(), err)

	v, err := st.Query(1, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, v)

	require.NoError(s.T(), st.Update(3, 0))
	v, err = st.Query(1, 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, v)

	v, err = st.Query(4, 4)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 9, v)
	require.Equal(s.T(), 0, st.All())
	require.Equal(s.T(), 5, st.Len())
}

// TestNeutralConstruction checks that New fills every leaf with Neutral.
func (s *SegTreeSuite) TestNeutralConstruction() {
	st, err := segtree.New[int](7, algebra.SumMonoid[int]())
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, st.All())

	require.NoError(s.T(), st.Update(6, 4))
	require.NoError(s.T(), st.Update(0, 3))
	v, err := st.Query(0, 6)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 7, v)

	leaf, err := st.Get(6)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 4, leaf)
}

// TestNonCommutativeOrder compares every range against a left-to-right fold
// for several sizes, including non powers of two.
func (s *SegTreeSuite) TestNonCommutativeOrder() {
	for _, n := range []int{1, 2, 3, 5, 8, 13, 26} {
		letters := make([]string, n)
		for i := range letters {
			letters[i] = string(rune('a' + i))
		}
		st, err := segtree.FromSlice[string](letters, concat)
		require.NoError(s.T(), err)
		for l := 0; l < n; l++ {
			for r := l; r < n; r++ {
				got, err := st.Query(l, r)
				require.NoError(s.T(), err)
				require.Equal(s.T(), strings.Join(letters[l:r+1], ""), got, "n=%d [%d, %d]", n, l, r)
			}
		}
	}
}

// TestRandomUpdates interleaves updates and queries against a plain slice.
func (s *SegTreeSuite) TestRandomUpdates() {
	r := rand.New(rand.NewSource(3))
	const n = 37
	plain := make([]string, n)
	for i := range plain {
		plain[i] = "."
	}
	st, err := segtree.FromSlice[string](plain, concat)
	require.NoError(s.T(), err)

	for step := 0; step < 300; step++ {
		k := r.Intn(n)
		v := string(rune('a' + r.Intn(26)))
		require.NoError(s.T(), st.Update(k, v))
		plain[k] = v

		l := r.Intn(n)
		rr := l + r.Intn(n-l)
		got, err := st.Query(l, rr)
		require.NoError(s.T(), err)
		require.Equal(s.T(), strings.Join(plain[l:rr+1], ""), got)
	}
}

// TestErrors covers every recoverable input-validation failure.
func (s *SegTreeSuite) TestErrors() {
	_, err := segtree.New[int](0, algebra.SumMonoid[int]())
	require.ErrorIs(s.T(), err, segtree.ErrInvalidSize)

	_, err = segtree.FromSlice[int](nil, algebra.SumMonoid[int]())
	require.ErrorIs(s.T(), err, segtree.ErrInvalidSize)

	_, err = segtree.FromSized[int](4, []int{1, 2, 3}, algebra.SumMonoid[int]())
	require.ErrorIs(s.T(), err, segtree.ErrSizeMismatch)

	st, err := segtree.FromSized[int](3, []int{1, 2, 3}, algebra.SumMonoid[int]())
	require.NoError(s.T(), err)

	_, err = st.Query(2, 1)
	require.ErrorIs(s.T(), err, segtree.ErrDegenerateRange)

	_, err = st.Query(0, 3)
	require.ErrorIs(s.T(), err, segtree.ErrOutOfRange)

	_, err = st.Query(-1, 1)
	require.ErrorIs(s.T(), err, segtree.ErrOutOfRange)

	require.ErrorIs(s.T(), st.Update(3, 9), segtree.ErrOutOfRange)
	_, err = st.Get(-1)
	require.ErrorIs(s.T(), err, segtree.ErrOutOfRange)

	// Failed calls leave the tree untouched.
	require.Equal(s.T(), 6, st.All())
}

func TestSegTreeSuite(t *testing.T) {
	suite.Run(t, new(SegTreeSuite))
}
