package algebra

import (
	"github.com/pkg/errors"

	"github.com/polyalg/kernel/mvpoly"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/uvpoly"
	"github.com/polyalg/kernel/variable"
)

// recursiveCoeffRing wraps uvpoly.CoeffRing, overriding its GCD capability
// to recurse back into algebra.GCD on the wrapped *mvpoly.Polynomial
// elements. uvpoly.CoeffRing.GCD intentionally panics (see its doc
// comment) precisely so that this package - and only this package - closes
// the recursion, avoiding an import cycle between uvpoly and algebra.
type recursiveCoeffRing struct {
	uvpoly.CoeffRing
}

func (r recursiveCoeffRing) GCD(a, b ring.Elem) ring.Elem {
	g, err := GCD(a.(*mvpoly.Polynomial), b.(*mvpoly.Polynomial))
	if err != nil {
		panic(err)
	}
	return g
}

// promote reduces p to a univariate polynomial in v, treating every
// other variable's contribution as a coefficient drawn from a
// recursiveCoeffRing - so that a subsequent uvpoly.PrimitiveEuclideanGCD
// call over that coefficient ring recurses into algebra.GCD for the
// remaining variables exactly as spec.md's C9 GCD entry describes.
func promote(p *mvpoly.Polynomial, v variable.Variable) (*uvpoly.Polynomial, error) {
	cr := recursiveCoeffRing{uvpoly.CoeffRing{Base: p.R, Ord: p.Ord}}
	return uvpoly.FromMultivariate(p, v, cr, true)
}

// demote reverses promote: up's coefficients are *mvpoly.Polynomial values
// over the base ring captured in its recursiveCoeffRing, combined via
// polynomial (not scalar) multiplication by powers of the main variable.
func demote(up *uvpoly.Polynomial) (*mvpoly.Polynomial, error) {
	cr := up.R.(recursiveCoeffRing)
	result := mvpoly.Zero(cr.Base, cr.Ord)
	if up.IsZero() {
		return result, nil
	}
	vPoly, err := mvpoly.FromVariable(cr.Base, cr.Ord, up.Main)
	if err != nil {
		return nil, err
	}
	power := mvpoly.FromConstant(cr.Base, cr.Ord, cr.Base.One())
	for i, c := range up.Coeffs {
		if i > 0 {
			power, err = power.Mul(vPoly)
			if err != nil {
				return nil, err
			}
		}
		coeffPoly := c.(*mvpoly.Polynomial)
		if coeffPoly.IsZero() {
			continue
		}
		contrib, err := coeffPoly.Mul(power)
		if err != nil {
			return nil, err
		}
		result, err = result.Add(contrib)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func sameRingAndOrder(a, b *mvpoly.Polynomial) error {
	if a.Ord.Kind() != b.Ord.Kind() {
		return ErrNoCommonRing
	}
	return nil
}

// commonVariable returns the lowest-id variable occurring in both a and b,
// the choice spec.md §4.5 leaves open ("picks a variable common to both
// operands").
func commonVariable(a, b *mvpoly.Polynomial) (variable.Variable, bool) {
	bVars := map[uint64]bool{}
	for _, v := range b.Variables() {
		bVars[v.ID()] = true
	}
	for _, v := range a.Variables() {
		if bVars[v.ID()] {
			return v, true
		}
	}
	return variable.Null, false
}

// MVContent returns the GCD of p's term coefficients over a Euclidean
// domain of coefficients (e.g. ring.Z); over a field, the content is
// conventionally 1 (spec.md's Glossary entry for "Content").
func MVContent(p *mvpoly.Polynomial) (ring.Elem, error) {
	if _, isField := p.R.(ring.Field); isField {
		return p.R.One(), nil
	}
	ed, ok := p.R.(ring.EuclideanDomain)
	if !ok {
		return nil, ErrNotEuclideanDomain
	}
	if p.IsZero() {
		return p.R.Zero(), nil
	}
	g := p.Terms[0].Coeff
	for _, t := range p.Terms[1:] {
		g = ed.GCD(g, t.Coeff)
	}
	return g, nil
}

// MVPrimitivePart returns p divided by MVContent(p).
func MVPrimitivePart(p *mvpoly.Polynomial) (*mvpoly.Polynomial, error) {
	c, err := MVContent(p)
	if err != nil {
		return nil, err
	}
	if p.R.IsZero(c) || p.R.Equal(c, p.R.One()) {
		return p.Clone(), nil
	}
	ed := p.R.(ring.EuclideanDomain)
	out := p.Clone()
	for i, t := range out.Terms {
		q, _ := ed.QuoRem(t.Coeff, c)
		out.Terms[i].Coeff = q
	}
	return out, nil
}

func constEuclideanGCD(r ring.Ring, a, b ring.Elem) ring.Elem {
	ed, ok := r.(ring.EuclideanDomain)
	if !ok {
		return r.One()
	}
	return ed.GCD(a, b)
}

// GCD computes gcd(a, b) following spec.md §4.5: pick a variable common to
// both operands, promote to univariate, run the primitive-Euclidean
// algorithm, demote. When no common variable exists, it returns 1, scaled
// by the integer GCD of the operands' contents when the coefficient ring
// supports it.
func GCD(a, b *mvpoly.Polynomial) (*mvpoly.Polynomial, error) {
	if err := sameRingAndOrder(a, b); err != nil {
		return nil, err
	}
	if a.IsZero() {
		return b.Clone(), nil
	}
	if b.IsZero() {
		return a.Clone(), nil
	}
	v, ok := commonVariable(a, b)
	if !ok {
		ca, err := MVContent(a)
		if err != nil {
			return nil, err
		}
		cb, err := MVContent(b)
		if err != nil {
			return nil, err
		}
		g := constEuclideanGCD(a.R, ca, cb)
		return mvpoly.FromConstant(a.R, a.Ord, g), nil
	}
	ua, err := promote(a, v)
	if err != nil {
		return nil, errors.Wrapf(err, "algebra: GCD: promoting first operand in %v", v)
	}
	ub, err := promote(b, v)
	if err != nil {
		return nil, errors.Wrapf(err, "algebra: GCD: promoting second operand in %v", v)
	}
	g, err := uvpoly.PrimitiveEuclideanGCD(ua, ub)
	if err != nil {
		return nil, errors.Wrap(err, "algebra: GCD: primitive Euclidean step")
	}
	result, err := demote(g)
	if err != nil {
		return nil, errors.Wrap(err, "algebra: GCD: demoting result")
	}
	return result, nil
}

// LCM computes lcm(a, b) = a*b / gcd(a, b).
func LCM(a, b *mvpoly.Polynomial) (*mvpoly.Polynomial, error) {
	if a.IsZero() || b.IsZero() {
		return mvpoly.Zero(a.R, a.Ord), nil
	}
	g, err := GCD(a, b)
	if err != nil {
		return nil, err
	}
	prod, err := a.Mul(b)
	if err != nil {
		return nil, err
	}
	return prod.Div(g)
}
