package playbp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func intVector(vs ...int64) Vector {
	out := make(Vector, 0, len(vs))
	for _, v := range vs {
		out = append(out, NewElement().SetInt64(v))
	}
	return out
}

func TestVectorInnerProduct(t *testing.T) {
	v := intVector(1, 2, 3, 4)
	w := intVector(5, 6, 7, 8)
	// 5 + 12 + 21 + 32
	require.True(t, v.InnerProduct(w).Equal(NewElement().SetInt64(70)))
	require.Panics(t, func() { v.InnerProduct(w[:2]) })
}

func TestVectorHadamard(t *testing.T) {
	v := intVector(1, 2, 3)
	w := intVector(4, 5, 6)
	h := v.Hadamard(w)
	expected := intVector(4, 10, 18)
	for i := range h {
		require.True(t, h[i].Equal(expected[i]))
	}
}

func TestPowers(t *testing.T) {
	p := Powers(NewElement().SetInt64(2), 5)
	expected := intVector(1, 2, 4, 8, 16)
	require.Len(t, p, 5)
	for i := range p {
		require.True(t, p[i].Equal(expected[i]))
	}
}

func TestBatchInvert(t *testing.T) {
	xs := RandomVector(7, oracle("batch-invert-test"))
	inv, allinv := batchInvert(xs)
	prod := one.Clone()
	for i := range xs {
		require.True(t, one.Equal(NewElement().Mul(xs[i], inv[i])), "inverse %d", i)
		prod = prod.Mul(prod, inv[i])
	}
	require.True(t, allinv.Equal(prod))

	// empty input: no inverses and a neutral product
	inv, allinv = batchInvert(nil)
	require.Len(t, inv, 0)
	require.True(t, allinv.Equal(one))
}

func TestMultiScalarMul(t *testing.T) {
	n := 6
	scalars := RandomVector(n, oracle("msm-test"))
	points := DeriveGenerators("msm-test", n)
	expected := NewCommit()
	for i := range scalars {
		expected = expected.Add(expected, Group.Point().Mul(scalars[i], points[i]))
	}
	require.True(t, multiScalarMul(scalars, points).Equal(expected))
	require.Panics(t, func() { multiScalarMul(scalars[:2], points) })
}

func TestDeriveGenerators(t *testing.T) {
	gs := DeriveGenerators("derive-test", 4)
	gs2 := DeriveGenerators("derive-test", 4)
	other := DeriveGenerators("derive-test-other", 4)
	for i := range gs {
		require.True(t, gs[i].Equal(gs2[i]))
		require.False(t, gs[i].Equal(other[i]))
		for j := i + 1; j < len(gs); j++ {
			require.False(t, gs[i].Equal(gs[j]))
		}
	}
}
