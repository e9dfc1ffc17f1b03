package interval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyalg/kernel/interval"
	"github.com/polyalg/kernel/ring"
)

func iv(lo int64, loT interval.BoundType, hi int64, hiT interval.BoundType) *interval.Interval {
	return interval.New(ring.Q, q(lo, 1), loT, q(hi, 1), hiT)
}

func TestAddPropagatesBoundTypeJoin(t *testing.T) {
	// S4: I=[-1,2], J=(0,3] => I+J = (-1, 5].
	i := iv(-1, interval.Weak, 2, interval.Weak)
	j := iv(0, interval.Strict, 3, interval.Weak)
	sum := interval.Add(i, j)
	require.True(t, ring.Q.Equal(sum.Lo, q(-1, 1)))
	require.Equal(t, interval.Strict, sum.LoType)
	require.True(t, ring.Q.Equal(sum.Hi, q(5, 1)))
	require.Equal(t, interval.Weak, sum.HiType)
}

func TestNegSwapsEndpointsAndBoundTypes(t *testing.T) {
	j := iv(0, interval.Strict, 3, interval.Weak)
	n := interval.Neg(j)
	require.True(t, ring.Q.Equal(n.Lo, q(-3, 1)))
	require.Equal(t, interval.Weak, n.LoType)
	require.True(t, ring.Q.Equal(n.Hi, q(0, 1)))
	require.Equal(t, interval.Strict, n.HiType)
}

func TestSubViaAddNeg(t *testing.T) {
	i := iv(-1, interval.Weak, 2, interval.Weak)
	j := iv(0, interval.Strict, 3, interval.Weak)
	diff := interval.Sub(i, j)
	require.True(t, ring.Q.Equal(diff.Lo, q(-4, 1)))
	require.Equal(t, interval.Weak, diff.LoType)
	require.True(t, ring.Q.Equal(diff.Hi, q(2, 1)))
	require.Equal(t, interval.Strict, diff.HiType)
}

func TestMulBothPositive(t *testing.T) {
	i := iv(1, interval.Weak, 2, interval.Weak)
	j := iv(3, interval.Weak, 4, interval.Weak)
	prod := interval.Mul(i, j)
	require.True(t, ring.Q.Equal(prod.Lo, q(3, 1)))
	require.True(t, ring.Q.Equal(prod.Hi, q(8, 1)))
}

func TestMulBothNegative(t *testing.T) {
	i := iv(-2, interval.Weak, -1, interval.Weak)
	j := iv(-4, interval.Weak, -3, interval.Weak)
	prod := interval.Mul(i, j)
	require.True(t, ring.Q.Equal(prod.Lo, q(3, 1)))
	require.True(t, ring.Q.Equal(prod.Hi, q(8, 1)))
}

func TestMulBothStraddleZero(t *testing.T) {
	i := iv(-1, interval.Weak, 2, interval.Weak)
	prod := interval.Mul(i, i)
	require.True(t, ring.Q.Equal(prod.Lo, q(-2, 1)))
	require.True(t, ring.Q.Equal(prod.Hi, q(4, 1)))
}

func TestSquareKeepsZeroLowerBoundWhenStraddling(t *testing.T) {
	i := iv(-1, interval.Weak, 2, interval.Weak)
	sq := interval.Square(i)
	require.True(t, ring.Q.Equal(sq.Lo, q(0, 1)))
	require.Equal(t, interval.Weak, sq.LoType)
	require.True(t, ring.Q.Equal(sq.Hi, q(4, 1)))
}

func TestMulWithEmptyIsEmpty(t *testing.T) {
	empty := interval.Empty(ring.Q)
	i := iv(1, interval.Weak, 2, interval.Weak)
	require.True(t, interval.Mul(i, empty).IsEmpty())
	require.True(t, interval.Add(i, empty).IsEmpty())
}
