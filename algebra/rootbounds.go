package algebra

import (
	"math"
	"math/big"

	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/uvpoly"
)

type orderedField interface {
	ring.Field
	ring.Ordered
}

func asOrderedField(p *uvpoly.Polynomial) (orderedField, error) {
	of, ok := p.R.(orderedField)
	if !ok {
		return nil, ErrNotOrderedField
	}
	return of, nil
}

func abs(of orderedField, a ring.Elem) ring.Elem {
	if of.SignOf(a) == ring.Negative {
		return of.Neg(a)
	}
	return a
}

// CauchyBound returns 1 + max(|a_i|)/|a_d| over i < d, a bound B such that
// every real root of p lies in [-B, B] (spec.md §4.5).
func CauchyBound(p *uvpoly.Polynomial) (ring.Elem, error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}
	of, err := asOrderedField(p)
	if err != nil {
		return nil, err
	}
	lc, _ := p.LeadingCoeff()
	lcAbs := abs(of, lc)
	maxRatio := of.Zero()
	for i := 0; i < p.Degree(); i++ {
		ai := p.CoeffAt(i)
		if of.IsZero(ai) {
			continue
		}
		ratio, ok := of.Div(abs(of, ai), lcAbs)
		if !ok {
			return nil, ErrZeroPolynomial
		}
		if of.Cmp(ratio, maxRatio) > 0 {
			maxRatio = ratio
		}
	}
	return of.Add(of.One(), maxRatio), nil
}

// HirstMaceyBound returns max(1, sum(|a_i|)/|a_d|) over i < d (spec.md
// §4.5).
func HirstMaceyBound(p *uvpoly.Polynomial) (ring.Elem, error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}
	of, err := asOrderedField(p)
	if err != nil {
		return nil, err
	}
	lc, _ := p.LeadingCoeff()
	lcAbs := abs(of, lc)
	sum := of.Zero()
	for i := 0; i < p.Degree(); i++ {
		sum = of.Add(sum, abs(of, p.CoeffAt(i)))
	}
	ratio, ok := of.Div(sum, lcAbs)
	if !ok {
		return nil, ErrZeroPolynomial
	}
	if of.Cmp(of.One(), ratio) > 0 {
		return of.One(), nil
	}
	return ratio, nil
}

// LagrangeBound returns 2 * max_{i, a_i != 0} (|a_i/a_d|^(1/(d-i))) over
// i < d (spec.md §4.5). The fractional exponent is evaluated in float64
// and rationalized back through ring.RationalCapable, since no ring in
// this kernel supports exact root extraction.
func LagrangeBound(p *uvpoly.Polynomial) (ring.Elem, error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}
	of, err := asOrderedField(p)
	if err != nil {
		return nil, err
	}
	rc, ok := p.R.(ring.RationalCapable)
	if !ok {
		return nil, ErrNotRationalCapable
	}
	d := p.Degree()
	lc, _ := p.LeadingCoeff()
	lcAbs := abs(of, lc)
	best := 0.0
	for i := 0; i < d; i++ {
		ai := p.CoeffAt(i)
		if of.IsZero(ai) {
			continue
		}
		ratio, ok := of.Div(abs(of, ai), lcAbs)
		if !ok {
			continue
		}
		f := toFloat(of, ratio)
		v := math.Pow(f, 1.0/float64(d-i))
		if v > best {
			best = v
		}
	}
	return rc.RationalizeFloat(2 * best)
}

// toFloat converts a ring.Q element to a float64. LagrangeBound and the
// root-isolation pivot heuristic call it over ring.Q (big.Rat), the sole
// RationalCapable ring this kernel provides; any other element yields 0.
func toFloat(of orderedField, a ring.Elem) float64 {
	r, ok := a.(*big.Rat)
	if !ok {
		return 0
	}
	f, _ := r.Float64()
	return f
}
