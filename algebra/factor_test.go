package algebra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyalg/kernel/algebra"
	"github.com/polyalg/kernel/mvpoly"
	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/variable"
)

var errFactorPlugin = errors.New("algebra_test: injected plugin failure")

func TestTrivialFactorizationReconstructsInput(t *testing.T) {
	x := variable.NewReal("fact-trivial-x")
	p := univariatePoly(t, x, -2, 1, 1)

	factors, err := algebra.Trivial(p)
	require.NoError(t, err)
	require.Len(t, factors, 1)
	require.Equal(t, 1, factors[0].Mult)
	require.True(t, factors[0].Poly.Equal(p))
}

func TestFactorizeWithNilPluginFallsBackToTrivial(t *testing.T) {
	x := variable.NewReal("fact-nil-plugin-x")
	p := univariatePoly(t, x, -2, 1, 1)

	factors, err := algebra.Factorize(p, nil)
	require.NoError(t, err)
	require.Len(t, factors, 1)
	require.True(t, factors[0].Poly.Equal(p))
}

func TestFactorizeAcceptsExactPluginResult(t *testing.T) {
	x := variable.NewReal("fact-exact-x")
	// p = x^2 + x - 2 = (x-1)(x+2).
	p := univariatePoly(t, x, -2, 1, 1)
	f1 := univariatePoly(t, x, -1, 1)
	f2 := univariatePoly(t, x, 2, 1)

	plugin := func(*mvpoly.Polynomial) ([]algebra.Factor, error) {
		return []algebra.Factor{{Poly: f1, Mult: 1}, {Poly: f2, Mult: 1}}, nil
	}

	factors, err := algebra.Factorize(p, plugin)
	require.NoError(t, err)
	require.Len(t, factors, 2)
}

func TestFactorizeReabsorbsOverallSignMismatch(t *testing.T) {
	x := variable.NewReal("fact-sign-x")
	p := univariatePoly(t, x, -2, 1, 1)
	f1 := univariatePoly(t, x, -1, 1)
	f2 := univariatePoly(t, x, 2, 1)

	// Plugin returns -(x-1)(x+2), matching p only up to sign.
	negated := f1.Neg()
	plugin := func(*mvpoly.Polynomial) ([]algebra.Factor, error) {
		return []algebra.Factor{{Poly: negated, Mult: 1}, {Poly: f2, Mult: 1}}, nil
	}

	factors, err := algebra.Factorize(p, plugin)
	require.NoError(t, err)
	require.Len(t, factors, 3)
	require.True(t, factors[2].Poly.Equal(mvpoly.FromConstant(ring.Z, order.Lexicographic, ring.NewInt(-1))))
}

func TestFactorizeFallsBackOnPluginError(t *testing.T) {
	x := variable.NewReal("fact-err-x")
	p := univariatePoly(t, x, -2, 1, 1)
	plugin := func(*mvpoly.Polynomial) ([]algebra.Factor, error) {
		return nil, errFactorPlugin
	}

	factors, err := algebra.Factorize(p, plugin)
	require.NoError(t, err)
	require.Len(t, factors, 1)
	require.True(t, factors[0].Poly.Equal(p))
}

func TestFactorizeFallsBackOnBadReconstruction(t *testing.T) {
	x := variable.NewReal("fact-mismatch-x")
	p := univariatePoly(t, x, -2, 1, 1)
	wrong := univariatePoly(t, x, 1, 1)
	plugin := func(*mvpoly.Polynomial) ([]algebra.Factor, error) {
		return []algebra.Factor{{Poly: wrong, Mult: 1}}, nil
	}

	factors, err := algebra.Factorize(p, plugin)
	require.NoError(t, err)
	require.Len(t, factors, 1)
	require.True(t, factors[0].Poly.Equal(p))
}

