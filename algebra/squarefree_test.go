package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyalg/kernel/algebra"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/uvpoly"
	"github.com/polyalg/kernel/variable"
)

// cubicWithDoubleRoot builds (x-1)^2 (x+2) = x^3 - 3x + 2 over Z.
func cubicWithDoubleRoot(t *testing.T, x variable.Variable) *uvpoly.Polynomial {
	t.Helper()
	return uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{
		ring.NewInt(2), ring.NewInt(-3), ring.NewInt(0), ring.NewInt(1),
	})
}

func TestSquareFreeFindsRepeatedFactor(t *testing.T) {
	x := variable.NewReal("sqfree-x")
	p := cubicWithDoubleRoot(t, x)

	factors, err := algebra.SquareFree(p)
	require.NoError(t, err)
	require.NotEmpty(t, factors)

	foundDouble := false
	for _, f := range factors {
		if f.Mult == 2 {
			foundDouble = true
			require.Equal(t, 1, f.Poly.Degree())
		}
	}
	require.True(t, foundDouble, "expected a multiplicity-2 factor for (x-1)^2(x+2)")
}

func TestSquareFreePartHasNoRepeatedRoots(t *testing.T) {
	x := variable.NewReal("sqfree-part-x")
	p := cubicWithDoubleRoot(t, x)

	sf, err := algebra.SquareFreePart(p)
	require.NoError(t, err)

	deriv, err := sf.Derivative(1)
	require.NoError(t, err)
	g, _, _, err := sf.ExtendedGCD(deriv)
	require.NoError(t, err)
	require.Equal(t, 0, g.Degree())
}

func TestSquareFreeOnAlreadySquareFreePolynomial(t *testing.T) {
	x := variable.NewReal("sqfree-simple-x")
	// (x-1)(x+2) = x^2 + x - 2, already square-free.
	p := uvpoly.FromCoeffs(ring.Z, x, []ring.Elem{ring.NewInt(-2), ring.NewInt(1), ring.NewInt(1)})

	factors, err := algebra.SquareFree(p)
	require.NoError(t, err)
	for _, f := range factors {
		require.Equal(t, 1, f.Mult)
	}
}

func TestSquareFreeRejectsZeroPolynomial(t *testing.T) {
	x := variable.NewReal("sqfree-zero-x")
	zero := uvpoly.Zero(ring.Z, x)
	_, err := algebra.SquareFree(zero)
	require.ErrorIs(t, err, algebra.ErrZeroPolynomial)
}
