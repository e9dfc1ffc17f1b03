package mvpoly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyalg/kernel/mvpoly"
	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/term"
	"github.com/polyalg/kernel/variable"
)

// buildS6 constructs x^3 - 3xy^2 + y^4 under graded-lex.
func buildS6(t *testing.T) (*mvpoly.Polynomial, variable.Variable, variable.Variable) {
	t.Helper()
	x := variable.NewReal("x")
	y := variable.NewReal("y")
	terms := []term.Term{
		{Coeff: ring.NewInt(1), Mono: monoXY(t, x.ID(), y.ID(), 3, 0)},
		{Coeff: ring.NewInt(-3), Mono: monoXY(t, x.ID(), y.ID(), 1, 2)},
		{Coeff: ring.NewInt(1), Mono: monoXY(t, x.ID(), y.ID(), 0, 4)},
	}
	p, err := mvpoly.FromTerms(ring.Z, order.GradedLexicographic, terms, true, false)
	require.NoError(t, err)
	return p, x, y
}

func TestS6DerivativeWithRespectToX(t *testing.T) {
	p, x, y := buildS6(t)
	dx, err := p.Derivative(x, 1)
	require.NoError(t, err)

	expected, err := mvpoly.FromTerms(ring.Z, order.GradedLexicographic, []term.Term{
		{Coeff: ring.NewInt(3), Mono: monoXY(t, x.ID(), y.ID(), 2, 0)},
		{Coeff: ring.NewInt(-3), Mono: monoXY(t, x.ID(), y.ID(), 0, 2)},
	}, true, false)
	require.NoError(t, err)
	require.True(t, dx.Equal(expected))
}

func TestS6DerivativeWithRespectToY(t *testing.T) {
	p, x, y := buildS6(t)
	dy, err := p.Derivative(y, 1)
	require.NoError(t, err)

	expected, err := mvpoly.FromTerms(ring.Z, order.GradedLexicographic, []term.Term{
		{Coeff: ring.NewInt(-6), Mono: monoXY(t, x.ID(), y.ID(), 1, 1)},
		{Coeff: ring.NewInt(4), Mono: monoXY(t, x.ID(), y.ID(), 0, 3)},
	}, true, false)
	require.NoError(t, err)
	require.True(t, dy.Equal(expected))
}

func TestDerivativeNegativeOrderRejected(t *testing.T) {
	p, x, _ := buildS6(t)
	_, err := p.Derivative(x, -1)
	require.ErrorIs(t, err, mvpoly.ErrNegativeDerivativeOrder)
}

func TestDerivativeOfConstantIsZero(t *testing.T) {
	x := variable.NewReal("x")
	c := mvpoly.FromConstant(ring.Z, order.GradedLexicographic, ring.NewInt(5))
	d, err := c.Derivative(x, 1)
	require.NoError(t, err)
	require.True(t, d.IsZero())
}

func TestCoefficientExtraction(t *testing.T) {
	p, x, y := buildS6(t)
	// Coefficient of x^1 is -3y^2.
	c, err := p.Coefficient(x, 1)
	require.NoError(t, err)
	expected, err := mvpoly.FromTerms(ring.Z, order.GradedLexicographic, []term.Term{
		{Coeff: ring.NewInt(-3), Mono: monoXY(t, x.ID(), y.ID(), 0, 2)},
	}, true, false)
	require.NoError(t, err)
	require.True(t, c.Equal(expected))
}

func TestSubstituteVariableWithConstant(t *testing.T) {
	x := variable.NewReal("x")
	y := variable.NewReal("y")
	xPoly, err := mvpoly.FromVariable(ring.Z, order.GradedLexicographic, x)
	require.NoError(t, err)
	yPoly, err := mvpoly.FromVariable(ring.Z, order.GradedLexicographic, y)
	require.NoError(t, err)
	sum, err := xPoly.Add(yPoly)
	require.NoError(t, err)

	two := mvpoly.FromConstant(ring.Z, order.GradedLexicographic, ring.NewInt(2))
	substituted, err := sum.Substitute(x, two)
	require.NoError(t, err)

	expected, err := yPoly.Add(two)
	require.NoError(t, err)
	require.True(t, substituted.Equal(expected))
}
