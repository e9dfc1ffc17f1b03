package uvpoly

import (
	"errors"

	"github.com/polyalg/kernel/ring"
)

// ErrNotAField is a precondition violation: ExtendedGCD requires the
// coefficient ring to support division.
var ErrNotAField = errors.New("uvpoly: ExtendedGCD requires a field of coefficients")

// ErrNotEuclidean is a precondition violation: Content/PrimitivePart
// require the coefficient ring to support GCD.
var ErrNotEuclidean = errors.New("uvpoly: operation requires a Euclidean domain of coefficients")

// ErrNotOrdered is a precondition violation: SignVariations requires an
// ordered coefficient ring.
var ErrNotOrdered = errors.New("uvpoly: SignVariations requires an ordered ring of coefficients")

// ExtendedGCD computes g = gcd(p, q) together with Bezout coefficients s,
// t such that g = s*p + t*q, over a field of coefficients. The result is
// normalized so g is monic (or zero).
func (p *Polynomial) ExtendedGCD(q *Polynomial) (g, s, t *Polynomial, err error) {
	if err := sameMain(p, q); err != nil {
		return nil, nil, nil, err
	}
	field, ok := p.R.(ring.Field)
	if !ok {
		return nil, nil, nil, ErrNotAField
	}
	r0, r1 := p.Clone(), q.Clone()
	s0, s1 := FromConstant(p.R, p.Main, p.R.One()), Zero(p.R, p.Main)
	t0, t1 := Zero(p.R, p.Main), FromConstant(p.R, p.Main, p.R.One())
	for !r1.IsZero() {
		quo, rem, err := r0.QuoRem(r1)
		if err != nil {
			return nil, nil, nil, err
		}
		r0, r1 = r1, rem
		s0, s1, err = stepBezout(quo, s0, s1)
		if err != nil {
			return nil, nil, nil, err
		}
		t0, t1, err = stepBezout(quo, t0, t1)
		if err != nil {
			return nil, nil, nil, err
		}
	}
	if !r0.IsZero() {
		lc, _ := r0.LeadingCoeff()
		inv, ok := field.Inv(lc)
		if !ok {
			return nil, nil, nil, ErrNotAField
		}
		r0 = r0.MulScalar(inv)
		s0 = s0.MulScalar(inv)
		t0 = t0.MulScalar(inv)
	}
	return r0, s0, t0, nil
}

func stepBezout(quo, a, b *Polynomial) (*Polynomial, *Polynomial, error) {
	qb, err := quo.Mul(b)
	if err != nil {
		return nil, nil, err
	}
	newB, err := a.Sub(qb)
	if err != nil {
		return nil, nil, err
	}
	return b, newB, nil
}

// Content returns the GCD of p's coefficients, requiring a Euclidean
// domain of coefficients (e.g. ring.Z).
func (p *Polynomial) Content() (ring.Elem, error) {
	ed, ok := p.R.(ring.EuclideanDomain)
	if !ok {
		return nil, ErrNotEuclidean
	}
	if p.IsZero() {
		return p.R.Zero(), nil
	}
	g := p.Coeffs[0]
	for _, c := range p.Coeffs[1:] {
		g = ed.GCD(g, c)
	}
	return g, nil
}

// PrimitivePart returns p divided by its content.
func (p *Polynomial) PrimitivePart() (*Polynomial, error) {
	ed, ok := p.R.(ring.EuclideanDomain)
	if !ok {
		return nil, ErrNotEuclidean
	}
	c, err := p.Content()
	if err != nil {
		return nil, err
	}
	if p.R.IsZero(c) {
		return p.Clone(), nil
	}
	out := make([]ring.Elem, len(p.Coeffs))
	for i, a := range p.Coeffs {
		q, _ := ed.QuoRem(a, c)
		out[i] = q
	}
	return FromCoeffs(p.R, p.Main, out), nil
}

// PrimitiveEuclideanGCD computes gcd(p, q) over a UFD of coefficients via
// the primitive polynomial remainder sequence: each pseudo-remainder is
// replaced by its primitive part before the next step, bounding
// coefficient growth the way Euclid's algorithm does over a field
// (Cohen's primitive PRS, adapted to carl's integral-coefficient GCD).
func PrimitiveEuclideanGCD(p, q *Polynomial) (*Polynomial, error) {
	if err := sameMain(p, q); err != nil {
		return nil, err
	}
	if p.IsZero() {
		return q.PrimitivePart()
	}
	if q.IsZero() {
		return p.PrimitivePart()
	}
	a, err := p.PrimitivePart()
	if err != nil {
		return nil, err
	}
	b, err := q.PrimitivePart()
	if err != nil {
		return nil, err
	}
	for !b.IsZero() {
		_, r, err := a.PseudoDivide(b)
		if err != nil {
			return nil, err
		}
		if r.IsZero() {
			a, b = b, Zero(p.R, p.Main)
			break
		}
		rp, err := r.PrimitivePart()
		if err != nil {
			return nil, err
		}
		a, b = b, rp
	}
	return a, nil
}

// SignVariations counts the number of sign changes across p's non-zero
// coefficients in ascending-degree order (Descartes' rule of signs,
// Sturm-sequence root counting), requiring an ordered coefficient ring.
func (p *Polynomial) SignVariations() (int, error) {
	ord, ok := p.R.(ring.Ordered)
	if !ok {
		return 0, ErrNotOrdered
	}
	variations := 0
	last := ring.Zero
	for _, c := range p.Coeffs {
		s := ord.SignOf(c)
		if s == ring.Zero {
			continue
		}
		if last != ring.Zero && s != last {
			variations++
		}
		last = s
	}
	return variations, nil
}
