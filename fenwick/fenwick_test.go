package fenwick_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cpkit/algebra"
	"github.com/katalvlaran/cpkit/fenwick"
)

// TestFenwick_SumExample reproduces the canonical prefix-sum walkthrough.
func TestFenwick_SumExample(t *testing.T) {
	ft := fenwick.New(5, algebra.Sum[int], 0)
	ft.Update(1, 5)
	ft.Update(3, 2)

	assert.Equal(t, 7, ft.Query(3))
	assert.Equal(t, 5, ft.Query(1))
	assert.Equal(t, 5, ft.Query(2))
	assert.Equal(t, 7, ft.Query(5))
	assert.Equal(t, 0, ft.Query(0), "empty prefix yields the initial value")
	assert.Equal(t, 5, ft.Len())
}

// TestFenwick_PrefixMin uses min with +Inf-like identity.
func TestFenwick_PrefixMin(t *testing.T) {
	ft := fenwick.New(6, algebra.Min[int], math.MaxInt)
	for k, v := range map[int]int{2: 9, 4: 3, 6: 1} {
		ft.Update(k, v)
	}
	assert.Equal(t, math.MaxInt, ft.Query(1))
	assert.Equal(t, 9, ft.Query(3))
	assert.Equal(t, 3, ft.Query(5))
	assert.Equal(t, 1, ft.Query(6))
}

// TestFenwick_RandomAgainstBruteForce checks sum and xor trees against a
// plain slice under random updates.
func TestFenwick_RandomAgainstBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	const n = 64
	sum := fenwick.New(n, algebra.Sum[int64], 0)
	xor := fenwick.New(n, algebra.Xor[uint32], 0)
	plainSum := make([]int64, n+1)
	plainXor := make([]uint32, n+1)

	for step := 0; step < 500; step++ {
		k := 1 + r.Intn(n)
		v := r.Int63n(2000) - 1000
		x := r.Uint32()
		sum.Update(k, v)
		xor.Update(k, x)
		plainSum[k] += v
		plainXor[k] ^= x

		q := r.Intn(n + 1)
		var wantSum int64
		var wantXor uint32
		for i := 1; i <= q; i++ {
			wantSum += plainSum[i]
			wantXor ^= plainXor[i]
		}
		require.Equal(t, wantSum, sum.Query(q), "sum prefix %d", q)
		require.Equal(t, wantXor, xor.Query(q), "xor prefix %d", q)
	}
}

// TestFenwick_FromSliceMatchesUpdates ensures the linear build equals n updates.
func TestFenwick_FromSliceMatchesUpdates(t *testing.T) {
	values := []int{3, -1, 4, 1, -5, 9, 2, 6, 5, 3, 5}
	built := fenwick.FromSlice(values, algebra.Sum[int], 0)
	manual := fenwick.New(len(values), algebra.Sum[int], 0)
	for i, v := range values {
		manual.Update(i+1, v)
	}
	for k := 0; k <= len(values); k++ {
		require.Equal(t, manual.Query(k), built.Query(k), "prefix %d", k)
	}
}

// TestFenwick_IndexPanics checks the fail-fast preconditions.
func TestFenwick_IndexPanics(t *testing.T) {
	ft := fenwick.New(4, algebra.Sum[int], 0)
	assert.PanicsWithError(t, "fenwick: index out of range: 0 not in [1, 4]", func() { ft.Update(0, 1) })
	assert.PanicsWithError(t, "fenwick: index out of range: 5 not in [1, 4]", func() { ft.Update(5, 1) })
	assert.PanicsWithError(t, "fenwick: index out of range: 5 not in [0, 4]", func() { ft.Query(5) })
	assert.Panics(t, func() { ft.Query(-1) })
	assert.NotPanics(t, func() { ft.Query(4) })
}
