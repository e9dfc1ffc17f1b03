package interval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyalg/kernel/interval"
	"github.com/polyalg/kernel/ring"
)

func TestIntersectTakesTighterBounds(t *testing.T) {
	i := iv(-1, interval.Weak, 2, interval.Weak)
	j := iv(0, interval.Strict, 3, interval.Weak)
	got := interval.Intersect(i, j)
	require.True(t, ring.Q.Equal(got.Lo, q(0, 1)))
	require.Equal(t, interval.Strict, got.LoType)
	require.True(t, ring.Q.Equal(got.Hi, q(2, 1)))
	require.Equal(t, interval.Weak, got.HiType)
}

func TestIntersectDisjointIsEmpty(t *testing.T) {
	i := iv(0, interval.Weak, 1, interval.Weak)
	j := iv(2, interval.Weak, 3, interval.Weak)
	require.True(t, interval.Intersect(i, j).IsEmpty())
}

func TestUnionOverlapping(t *testing.T) {
	i := iv(-1, interval.Weak, 2, interval.Weak)
	j := iv(0, interval.Strict, 3, interval.Weak)
	u, err := interval.Union(i, j)
	require.NoError(t, err)
	require.True(t, ring.Q.Equal(u.Lo, q(-1, 1)))
	require.Equal(t, interval.Weak, u.LoType)
	require.True(t, ring.Q.Equal(u.Hi, q(3, 1)))
	require.Equal(t, interval.Weak, u.HiType)
}

func TestUnionOfDisjointIntervalsErrors(t *testing.T) {
	i := iv(0, interval.Weak, 1, interval.Strict)
	j := iv(2, interval.Weak, 3, interval.Weak)
	_, err := interval.Union(i, j)
	require.ErrorIs(t, err, interval.ErrDisjointUnion)
}

func TestUnionOfTouchingIntervalsJoins(t *testing.T) {
	i := iv(0, interval.Weak, 1, interval.Weak)
	j := iv(1, interval.Weak, 2, interval.Weak)
	u, err := interval.Union(i, j)
	require.NoError(t, err)
	require.True(t, ring.Q.Equal(u.Lo, q(0, 1)))
	require.True(t, ring.Q.Equal(u.Hi, q(2, 1)))
}

func TestDifferenceCutsLowerEnd(t *testing.T) {
	i := iv(0, interval.Weak, 5, interval.Weak)
	j := iv(0, interval.Weak, 2, interval.Weak)
	parts := interval.Difference(i, j)
	require.Len(t, parts, 1)
	require.True(t, ring.Q.Equal(parts[0].Lo, q(2, 1)))
	require.Equal(t, interval.Strict, parts[0].LoType)
	require.True(t, ring.Q.Equal(parts[0].Hi, q(5, 1)))
}

func TestDifferenceSplitsIntoTwoPieces(t *testing.T) {
	i := iv(0, interval.Weak, 5, interval.Weak)
	j := iv(1, interval.Weak, 2, interval.Weak)
	parts := interval.Difference(i, j)
	require.Len(t, parts, 2)
	require.True(t, ring.Q.Equal(parts[0].Lo, q(0, 1)))
	require.True(t, ring.Q.Equal(parts[0].Hi, q(1, 1)))
	require.Equal(t, interval.Strict, parts[0].HiType)
	require.True(t, ring.Q.Equal(parts[1].Lo, q(2, 1)))
	require.Equal(t, interval.Strict, parts[1].LoType)
	require.True(t, ring.Q.Equal(parts[1].Hi, q(5, 1)))
}

func TestDifferenceOfIdenticalIsEmpty(t *testing.T) {
	i := iv(0, interval.Weak, 5, interval.Weak)
	require.Empty(t, interval.Difference(i, i))
}

func TestEqualIgnoresEmptyRepresentation(t *testing.T) {
	a := interval.New(ring.Q, q(1, 1), interval.Strict, q(1, 1), interval.Weak)
	b := interval.Empty(ring.Q)
	require.True(t, a.Equal(b))
}

func TestSplitProducesAdjoiningPieces(t *testing.T) {
	i := iv(0, interval.Weak, 6, interval.Weak)
	parts, err := interval.Split(i, 3)
	require.NoError(t, err)
	require.Len(t, parts, 3)
	require.True(t, ring.Q.Equal(parts[0].Lo, q(0, 1)))
	require.True(t, ring.Q.Equal(parts[2].Hi, q(6, 1)))
	for k := 0; k < len(parts)-1; k++ {
		require.True(t, ring.Q.Equal(parts[k].Hi, parts[k+1].Lo))
	}
}

func TestSplitRejectsNonPositiveN(t *testing.T) {
	i := iv(0, interval.Weak, 6, interval.Weak)
	_, err := interval.Split(i, 0)
	require.ErrorIs(t, err, interval.ErrInvalidSplit)
}

func TestSplitRejectsUnbounded(t *testing.T) {
	u := interval.Unbounded(ring.Q)
	_, err := interval.Split(u, 2)
	require.ErrorIs(t, err, interval.ErrUnboundedSplit)
}
