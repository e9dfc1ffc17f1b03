package uvpoly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/uvpoly"
	"github.com/polyalg/kernel/variable"
)

func TestFromCoeffsTrimsTrailingZeros(t *testing.T) {
	x := variable.NewReal("x")
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1), ring.NewInt(0), ring.NewInt(0)})
	require.Equal(t, 0, p.Degree())
	require.False(t, p.IsZero())
}

func TestZeroPolynomialDegree(t *testing.T) {
	x := variable.NewReal("x")
	z := uvpoly.Zero(ring.Z, x)
	require.True(t, z.IsZero())
	require.Equal(t, -1, z.Degree())
	_, err := z.LeadingCoeff()
	require.ErrorIs(t, err, uvpoly.ErrZeroPolynomial)
}

func TestCoeffAtOutOfRangeIsZero(t *testing.T) {
	x := variable.NewReal("x")
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1), ring.NewInt(2)})
	require.True(t, ring.Z.Equal(p.CoeffAt(5), ring.Z.Zero()))
	require.True(t, ring.Z.Equal(p.CoeffAt(-1), ring.Z.Zero()))
}

func TestAddSubMulEval(t *testing.T) {
	x := variable.NewReal("x")
	// p = x + 1, q = x - 1 => p*q = x^2 - 1
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1), ring.NewInt(1)})
	q := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(-1), ring.NewInt(1)})

	sum, err := p.Add(q)
	require.NoError(t, err)
	require.True(t, sum.Equal(uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(0), ring.NewInt(2)})))

	diff, err := p.Sub(q)
	require.NoError(t, err)
	require.True(t, diff.Equal(uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(2), ring.NewInt(0)})))

	prod, err := p.Mul(q)
	require.NoError(t, err)
	expected := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(-1), ring.NewInt(0), ring.NewInt(1)})
	require.True(t, prod.Equal(expected))

	require.True(t, ring.Z.Equal(prod.Eval(ring.NewInt(3)), ring.NewInt(8)))
}

func TestMainVariableMismatchRejected(t *testing.T) {
	x := variable.NewReal("x")
	y := variable.NewReal("y")
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1)})
	q := uvpoly.FromCoeffs(ring.Z, y, []ring.Elem{ring.NewInt(1)})
	_, err := p.Add(q)
	require.ErrorIs(t, err, uvpoly.ErrMainVariableMismatch)
}

func TestDerivative(t *testing.T) {
	x := variable.NewReal("x")
	// p = x^3 - x  =>  p' = 3x^2 - 1
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(0), ring.NewInt(-1), ring.NewInt(0), ring.NewInt(1)})
	dp, err := p.Derivative(1)
	require.NoError(t, err)
	expected := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(-1), ring.NewInt(0), ring.NewInt(3)})
	require.True(t, dp.Equal(expected))
}

func TestMulScalar(t *testing.T) {
	x := variable.NewReal("x")
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1), ring.NewInt(2)})
	scaled := p.MulScalar(ring.NewInt(3))
	expected := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(3), ring.NewInt(6)})
	require.True(t, scaled.Equal(expected))
	require.True(t, p.MulScalar(ring.NewInt(0)).IsZero())
}

func TestToAndFromMultivariateRoundTrip(t *testing.T) {
	x := variable.NewReal("x")
	// p = x^2 + 1 (gappy: no x^1 term) exercises the fixed coeffElem path.
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1), ring.NewInt(0), ring.NewInt(1)})
	mv, err := p.ToMultivariate(order.GradedLexicographic)
	require.NoError(t, err)

	back, err := uvpoly.FromMultivariate(mv, x, ring.Z, false)
	require.NoError(t, err)
	require.True(t, back.Equal(p))
}
