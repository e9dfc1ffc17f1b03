package algebra

import (
	"github.com/polyalg/kernel/uvpoly"
)

// SquareFreeFactor pairs an irreducible-up-to-square-free-class factor
// with its multiplicity.
type SquareFreeFactor struct {
	Poly *uvpoly.Polynomial
	Mult int
}

// fieldGCD returns the monic GCD of a and b over a field, discarding the
// Bezout coefficients uvpoly.ExtendedGCD also produces.
func fieldGCD(a, b *uvpoly.Polynomial) (*uvpoly.Polynomial, error) {
	g, _, _, err := a.ExtendedGCD(b)
	return g, err
}

func monicDiv(a, b *uvpoly.Polynomial) (*uvpoly.Polynomial, error) {
	return a.Div(b)
}

// SquareFree decomposes p (coefficients in characteristic zero, i.e.
// ring.Q - see spec.md §4.5 and §9's characteristic check) into square-free
// factors via Yun's algorithm: p is implicitly assumed primitive and
// content-free by the caller (MVContent/MVPrimitivePart strip content
// first when needed). Integral coefficients are promoted to ring.Q by
// toRationalCoeffs, the same conversion Resultant/Discriminant use, so
// the factors are always returned over ring.Q.
func SquareFree(p *uvpoly.Polynomial) ([]SquareFreeFactor, error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}
	fp := toRationalCoeffs(p)
	if fp.Degree() == 0 {
		return nil, nil
	}
	deriv, err := fp.Derivative(1)
	if err != nil {
		return nil, err
	}
	c, err := fieldGCD(fp, deriv)
	if err != nil {
		return nil, err
	}
	w, err := monicDiv(fp, c)
	if err != nil {
		return nil, err
	}
	y, err := monicDiv(deriv, c)
	if err != nil {
		return nil, err
	}
	var factors []SquareFreeFactor
	i := 1
	for w.Degree() > 0 {
		wDeriv, err := w.Derivative(1)
		if err != nil {
			return nil, err
		}
		z, err := y.Sub(wDeriv)
		if err != nil {
			return nil, err
		}
		g, err := fieldGCD(w, z)
		if err != nil {
			return nil, err
		}
		if g.Degree() > 0 {
			factors = append(factors, SquareFreeFactor{Poly: g, Mult: i})
		}
		w, err = monicDiv(w, g)
		if err != nil {
			return nil, err
		}
		y, err = monicDiv(z, g)
		if err != nil {
			return nil, err
		}
		i++
	}
	return factors, nil
}

// SquareFreePart returns p divided by gcd(p, p'): the product of
// SquareFree's factors each taken once, i.e. p with every repeated root
// reduced to a simple root, sharing p's root set.
func SquareFreePart(p *uvpoly.Polynomial) (*uvpoly.Polynomial, error) {
	if p.IsZero() {
		return p.Clone(), nil
	}
	fp := toRationalCoeffs(p)
	if fp.Degree() == 0 {
		return fp.Clone(), nil
	}
	deriv, err := fp.Derivative(1)
	if err != nil {
		return nil, err
	}
	g, err := fieldGCD(fp, deriv)
	if err != nil {
		return nil, err
	}
	if g.Degree() == 0 {
		return fp.Clone(), nil
	}
	return monicDiv(fp, g)
}
