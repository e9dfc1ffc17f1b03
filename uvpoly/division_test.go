package uvpoly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/uvpoly"
	"github.com/polyalg/kernel/variable"
)

func TestS2QuoRemExactDivision(t *testing.T) {
	x := variable.NewReal("x")
	// p = x^4 - 1, divisor = x^2 - 1 => quotient x^2 + 1, remainder 0.
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(-1), ring.NewInt(0), ring.NewInt(0), ring.NewInt(0), ring.NewInt(1)})
	divisor := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(-1), ring.NewInt(0), ring.NewInt(1)})

	quo, rem, err := p.QuoRem(divisor)
	require.NoError(t, err)
	require.True(t, rem.IsZero())
	expected := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1), ring.NewInt(0), ring.NewInt(1)})
	require.True(t, quo.Equal(expected))

	exact, err := p.Div(divisor)
	require.NoError(t, err)
	require.True(t, exact.Equal(expected))
}

func TestDivNotDivisible(t *testing.T) {
	x := variable.NewReal("x")
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1), ring.NewInt(1)}) // x+1
	divisor := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(0), ring.NewInt(2)}) // 2x
	_, err := p.Div(divisor)
	require.ErrorIs(t, err, uvpoly.ErrNotDivisible)
}

func TestQuoRemDivisionByZero(t *testing.T) {
	x := variable.NewReal("x")
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1)})
	zero := uvpoly.Zero(ring.Z, x)
	_, _, err := p.QuoRem(zero)
	require.ErrorIs(t, err, uvpoly.ErrDivisionByZero)
}

func TestQuoRemDegreeLessThanDivisor(t *testing.T) {
	x := variable.NewReal("x")
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1)})
	divisor := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1), ring.NewInt(1)})
	quo, rem, err := p.QuoRem(divisor)
	require.NoError(t, err)
	require.True(t, quo.IsZero())
	require.True(t, rem.Equal(p))
}

func TestShiftUp(t *testing.T) {
	x := variable.NewReal("x")
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(1), ring.NewInt(2)})
	shifted := p.ShiftUp(2)
	expected := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(0), ring.NewInt(0), ring.NewInt(1), ring.NewInt(2)})
	require.True(t, shifted.Equal(expected))
	require.True(t, p.ShiftUp(0).Equal(p))
}

func TestPseudoDivide(t *testing.T) {
	x := variable.NewReal("x")
	// Cohen's example: p = x^2, divisor = 2x - 1 over Z.
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(0), ring.NewInt(0), ring.NewInt(1)})
	divisor := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(-1), ring.NewInt(2)})

	q, r, err := p.PseudoDivide(divisor)
	require.NoError(t, err)
	// lc(divisor)^e * p = q*divisor + r, e = deg(p)-deg(divisor)+1 = 2.
	lhs := p.MulScalar(ring.NewInt(4)) // 2^2
	qd, err := q.Mul(divisor)
	require.NoError(t, err)
	rhs, err := qd.Add(r)
	require.NoError(t, err)
	require.True(t, lhs.Equal(rhs))
	require.True(t, r.Degree() < divisor.Degree())
}

func TestPseudoRemainder(t *testing.T) {
	x := variable.NewReal("x")
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(0), ring.NewInt(0), ring.NewInt(1)})
	divisor := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(-1), ring.NewInt(2)})
	_, r1, err := p.PseudoDivide(divisor)
	require.NoError(t, err)
	r2, err := p.PseudoRemainder(divisor)
	require.NoError(t, err)
	require.True(t, r1.Equal(r2))
}

func TestSignedPseudoRemainderScalesByExtraLeadingCoeffWhenExponentOdd(t *testing.T) {
	x := variable.NewReal("x")
	// p = x^3, divisor = 2x - 1: deg(p)-deg(divisor)+1 = 3, odd, so the
	// signed variant scales the plain pseudo-remainder by one extra
	// factor of lc(divisor) = 2 to reach the even exponent 4.
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(0), ring.NewInt(0), ring.NewInt(0), ring.NewInt(1)})
	divisor := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(-1), ring.NewInt(2)})

	plain, err := p.PseudoRemainder(divisor)
	require.NoError(t, err)
	signed, err := p.SignedPseudoRemainder(divisor)
	require.NoError(t, err)

	expected := plain.MulScalar(ring.NewInt(2))
	require.True(t, expected.Equal(signed))
}
