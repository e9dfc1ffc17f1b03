package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyalg/kernel/algebra"
	"github.com/polyalg/kernel/monomial"
	"github.com/polyalg/kernel/mvpoly"
	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/term"
	"github.com/polyalg/kernel/variable"
)

func monoPow(t *testing.T, varID uint64, exp uint32) *monomial.Monomial {
	t.Helper()
	if exp == 0 {
		return nil
	}
	m, err := monomial.CreateVar(varID, exp)
	require.NoError(t, err)
	return m
}

// univariatePoly builds a polynomial in a single variable x from
// ascending-degree integer coefficients, e.g. {-2, 1, 1} is x^2 + x - 2.
func univariatePoly(t *testing.T, x variable.Variable, coeffs ...int64) *mvpoly.Polynomial {
	t.Helper()
	var terms []term.Term
	for deg, c := range coeffs {
		if c == 0 {
			continue
		}
		terms = append(terms, term.Term{Coeff: ring.NewInt(c), Mono: monoPow(t, x.ID(), uint32(deg))})
	}
	p, err := mvpoly.FromTerms(ring.Z, order.Lexicographic, terms, true, false)
	require.NoError(t, err)
	return p
}

func TestGCDUnivariate(t *testing.T) {
	x := variable.NewReal("gcd-x")
	// a = (x-1)(x+2) = x^2 + x - 2, b = (x-1)(x+3) = x^2 + 2x - 3.
	a := univariatePoly(t, x, -2, 1, 1)
	b := univariatePoly(t, x, -3, 2, 1)

	g, err := algebra.GCD(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, mustDegree(t, g, x))

	// g must divide both a and b exactly.
	_, ra, err := a.QuoRem(g)
	require.NoError(t, err)
	require.True(t, ra.IsZero())
	_, rb, err := b.QuoRem(g)
	require.NoError(t, err)
	require.True(t, rb.IsZero())
}

func mustDegree(t *testing.T, p *mvpoly.Polynomial, x variable.Variable) int {
	t.Helper()
	d, err := p.TotalDegree()
	require.NoError(t, err)
	return d
}

func TestGCDWithZeroOperand(t *testing.T) {
	x := variable.NewReal("gcd-zero-x")
	a := univariatePoly(t, x, 1, 1)
	zero := mvpoly.Zero(ring.Z, order.Lexicographic)

	g, err := algebra.GCD(a, zero)
	require.NoError(t, err)
	require.True(t, g.Equal(a))

	g2, err := algebra.GCD(zero, a)
	require.NoError(t, err)
	require.True(t, g2.Equal(a))
}

func TestGCDNoSharedVariableFallsBackToContent(t *testing.T) {
	x := variable.NewReal("gcd-disjoint-x")
	y := variable.NewReal("gcd-disjoint-y")
	a := univariatePoly(t, x, 0, 4) // 4x
	b := univariatePoly(t, y, 0, 6) // 6y

	g, err := algebra.GCD(a, b)
	require.NoError(t, err)
	require.True(t, g.IsConstant())
}

func TestLCMMatchesProductOverGCD(t *testing.T) {
	x := variable.NewReal("lcm-x")
	a := univariatePoly(t, x, -2, 1, 1) // x^2+x-2
	b := univariatePoly(t, x, -3, 2, 1) // x^2+2x-3

	l, err := algebra.LCM(a, b)
	require.NoError(t, err)

	g, err := algebra.GCD(a, b)
	require.NoError(t, err)
	prod, err := a.Mul(b)
	require.NoError(t, err)
	expected, err := prod.Div(g)
	require.NoError(t, err)
	require.True(t, l.Equal(expected))
}

func TestMVContentAndPrimitivePart(t *testing.T) {
	x := variable.NewReal("content-x")
	p := univariatePoly(t, x, 4, 6, 8)

	c, err := algebra.MVContent(p)
	require.NoError(t, err)
	require.True(t, ring.Z.Equal(c, ring.NewInt(2)))

	pp, err := algebra.MVPrimitivePart(p)
	require.NoError(t, err)
	expected := univariatePoly(t, x, 2, 3, 4)
	require.True(t, pp.Equal(expected))
}
