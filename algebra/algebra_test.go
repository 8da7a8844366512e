package algebra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpkit/algebra"
)

// TestOperators checks each operator on small hand-computed inputs.
func TestOperators(t *testing.T) {
	assert.Equal(t, 7, algebra.Sum(3, 4))
	assert.Equal(t, 2.5, algebra.Sum(1.0, 1.5))
	assert.Equal(t, 3, algebra.Min(3, 4))
	assert.Equal(t, "abc", algebra.Min("abc", "abd"))
	assert.Equal(t, 4, algebra.Max(3, 4))
	assert.Equal(t, 6, algebra.Xor(5, 3))
	assert.Equal(t, 1, algebra.And(5, 3))
	assert.Equal(t, 7, algebra.Or(5, 3))
	assert.Equal(t, 6, algebra.GCD(12, 18))
	assert.Equal(t, 6, algebra.GCD(-12, 18))
	assert.Equal(t, 5, algebra.GCD(0, 5))
	assert.Equal(t, 0, algebra.GCD(0, 0))
	assert.Equal(t, uint8(4), algebra.GCD[uint8](8, 12))
}

// TestIdentityLaws verifies that each provided monoid's Neutral is a two-sided identity.
func TestIdentityLaws(t *testing.T) {
	samples := []int{-7, 0, 1, 42, math.MaxInt32}
	monoids := map[string]algebra.Monoid[int]{
		"sum": algebra.SumMonoid[int](),
		"xor": algebra.XorMonoid[int](),
		"min": algebra.MinMonoid(math.MaxInt),
		"max": algebra.MaxMonoid(math.MinInt),
	}
	for name, m := range monoids {
		for _, v := range samples {
			require.Equal(t, v, m.Merge(m.Neutral(), v), "%s: left identity on %d", name, v)
			require.Equal(t, v, m.Merge(v, m.Neutral()), "%s: right identity on %d", name, v)
		}
	}

	g := algebra.GCDMonoid[int]()
	for _, v := range []int{0, 1, 9, 42} {
		require.Equal(t, v, g.Merge(g.Neutral(), v))
	}
}

// TestFoldKeepsOrder uses string concatenation, which is associative but not commutative.
func TestFoldKeepsOrder(t *testing.T) {
	concat := algebra.Funcs[string]{
		NeutralFn: func() string { return "" },
		MergeFn:   func(a, b string) string { return a + b },
	}
	assert.Equal(t, "abc", algebra.Fold[string](concat, "a", "b", "c"))
	assert.Equal(t, "", algebra.Fold[string](concat))

	m := algebra.MonoidOf[string](func(a, b string) string { return a + b }, "")
	assert.Equal(t, "xyz", algebra.Fold(m, "x", "y", "z"))
}
