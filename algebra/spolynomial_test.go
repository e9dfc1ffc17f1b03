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

// monoXY builds the monomial x^ex * y^ey, omitting a variable entirely
// when its exponent is zero.
func monoXY(t *testing.T, xID, yID uint64, ex, ey uint32) *monomial.Monomial {
	t.Helper()
	var pairs []order.Pair
	if ex > 0 {
		pairs = append(pairs, order.Pair{VarID: xID, Exp: ex})
	}
	if ey > 0 {
		pairs = append(pairs, order.Pair{VarID: yID, Exp: ey})
	}
	if len(pairs) == 0 {
		return nil
	}
	m, err := monomial.Create(pairs)
	require.NoError(t, err)
	return m
}

// fromQTerms builds a polynomial over ring.Q from explicit terms.
func fromQTerms(t *testing.T, terms []term.Term) *mvpoly.Polynomial {
	t.Helper()
	p, err := mvpoly.FromTerms(ring.Q, order.Lexicographic, terms, true, false)
	require.NoError(t, err)
	return p
}

func TestSPolynomialRequiresField(t *testing.T) {
	x := variable.NewReal("spoly-field-x")
	f := univariatePoly(t, x, 0, 1) // x, over ring.Z
	g := univariatePoly(t, x, 0, 1)

	_, err := algebra.SPolynomial(f, g)
	require.ErrorIs(t, err, algebra.ErrNotOrderedField)
}

func TestSPolynomialCancelsSharedLeadingTerm(t *testing.T) {
	x := variable.NewReal("spoly-x")
	y := variable.NewReal("spoly-y")

	// f = x*y - 1, g = x - y. Lex makes the higher-id variable y most
	// significant, so the leading terms are xy and -y.
	f := fromQTerms(t, []term.Term{
		{Coeff: ring.NewRat(1, 1), Mono: monoXY(t, x.ID(), y.ID(), 1, 1)},
		{Coeff: ring.NewRat(-1, 1)},
	})
	g := fromQTerms(t, []term.Term{
		{Coeff: ring.NewRat(1, 1), Mono: monoXY(t, x.ID(), y.ID(), 1, 0)},
		{Coeff: ring.NewRat(-1, 1), Mono: monoXY(t, x.ID(), y.ID(), 0, 1)},
	})

	s, err := algebra.SPolynomial(f, g)
	require.NoError(t, err)
	require.NotNil(t, s)

	// S(f,g) = 1*f - (xy/(-y))*g = (xy - 1) + x(x - y) = x^2 - 1.
	expected := fromQTerms(t, []term.Term{
		{Coeff: ring.NewRat(1, 1), Mono: monoXY(t, x.ID(), y.ID(), 2, 0)},
		{Coeff: ring.NewRat(-1, 1)},
	})
	require.True(t, s.Equal(expected))
}

func TestQuotientExactDivision(t *testing.T) {
	x := variable.NewReal("quotient-x")
	a := univariatePoly(t, x, -2, 1, 1) // x^2+x-2 = (x-1)(x+2)
	b := univariatePoly(t, x, -1, 1)    // x-1

	q := algebra.Quotient(a, b)
	expected := univariatePoly(t, x, 2, 1)
	require.True(t, q.Equal(expected))
}

func TestQuotientPanicsOnInexactDivision(t *testing.T) {
	x := variable.NewReal("quotient-panic-x")
	a := univariatePoly(t, x, 1, 1) // x+1
	b := univariatePoly(t, x, 0, 1) // x

	require.Panics(t, func() {
		algebra.Quotient(a, b)
	})
}
