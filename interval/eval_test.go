package interval_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyalg/kernel/interval"
	"github.com/polyalg/kernel/mvpoly"
	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/uvpoly"
	"github.com/polyalg/kernel/variable"
)

func TestEvaluateLinearPolynomial(t *testing.T) {
	x := variable.NewReal("eval-x")
	xPoly, err := mvpoly.FromVariable(ring.Q, order.GradedLexicographic, x)
	require.NoError(t, err)
	one := mvpoly.FromConstant(ring.Q, order.GradedLexicographic, ring.NewRat(1, 1))
	p, err := xPoly.Add(one) // p = x + 1
	require.NoError(t, err)

	box := iv(0, interval.Weak, 2, interval.Weak)
	got, err := interval.Evaluate(p, map[variable.Variable]*interval.Interval{x: box})
	require.NoError(t, err)
	require.True(t, ring.Q.Equal(got.Lo, q(1, 1)))
	require.True(t, ring.Q.Equal(got.Hi, q(3, 1)))
}

func TestEvaluateMissingAssignmentErrors(t *testing.T) {
	x := variable.NewReal("eval-missing")
	xPoly, err := mvpoly.FromVariable(ring.Q, order.GradedLexicographic, x)
	require.NoError(t, err)
	_, err = interval.Evaluate(xPoly, map[variable.Variable]*interval.Interval{})
	require.ErrorIs(t, err, interval.ErrMissingAssignment)
}

func TestEvaluateUnivariateHorner(t *testing.T) {
	x := variable.NewReal("eval-uv")
	// p = x^2 - 1
	p := uvpoly.FromCoeffs(ring.Q, x, []ring.Elem{ring.NewRat(-1, 1), ring.NewRat(0, 1), ring.NewRat(1, 1)})
	box := iv(-1, interval.Weak, 2, interval.Weak)
	got := interval.EvaluateUnivariate(p, box)
	// Horner: ([1]*[-1,2] + 0)*[-1,2] = [-1,2]*[-1,2] = [-2,4], minus 1
	// => [-3,3] (plain multiplication, not Square, so the dependency
	// between the two factors is lost).
	require.True(t, ring.Q.Equal(got.Lo, q(-3, 1)))
	require.True(t, ring.Q.Equal(got.Hi, q(3, 1)))
}

func TestContractNarrowsAwayFromZeroDerivative(t *testing.T) {
	x := variable.NewReal("eval-contract")
	// p = x - 2, p' = 1 everywhere: a single Newton step should land close to 2.
	p := uvpoly.FromCoeffs(ring.Q, x, []ring.Elem{ring.NewRat(-2, 1), ring.NewRat(1, 1)})
	box := iv(0, interval.Weak, 10, interval.Weak)
	contracted, ok, err := interval.Contract(p, box)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, contracted.Contains(q(2, 1)))
}

func TestContractFallsBackWhenDerivativeSpansZero(t *testing.T) {
	x := variable.NewReal("eval-flat")
	// p = x^3, p' = 3x^2, which spans zero over [-1,1].
	p := uvpoly.FromCoeffs(ring.Q, x, []ring.Elem{ring.NewRat(0, 1), ring.NewRat(0, 1), ring.NewRat(0, 1), ring.NewRat(1, 1)})
	box := iv(-1, interval.Weak, 1, interval.Weak)
	_, ok, err := interval.Contract(p, box)
	require.NoError(t, err)
	require.False(t, ok)
}
