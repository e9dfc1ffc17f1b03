package algebra

import (
	"github.com/polyalg/kernel/mvpoly"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/variable"
)

// SoSTerm pairs a non-negative coefficient with a polynomial factor: one
// summand coeff*factor^2 of a sum-of-squares decomposition.
type SoSTerm struct {
	Coeff  ring.Elem
	Factor *mvpoly.Polynomial
}

// SoSDecomposition attempts p = Σ coeff_i * factor_i^2 with every coeff_i
// non-negative, by completing the square one variable at a time - the same
// restriction to quadratic forms as the source's sos_decomposition (see
// SPEC_FULL.md's supplemented-feature list). It bails out to (nil, false)
// whenever the source would: a negative leading coefficient, total degree
// other than 2, or a variable whose quadratic coefficient is not a
// non-zero ring constant.
func SoSDecomposition(p *mvpoly.Polynomial) ([]SoSTerm, bool) {
	ordered, ok := p.R.(ring.Ordered)
	if !ok {
		return nil, false
	}
	field, ok := p.R.(ring.Field)
	if !ok {
		return nil, false
	}
	if p.IsZero() {
		return nil, true
	}
	lt, err := p.LeadingTerm()
	if err != nil || ordered.SignOf(lt.Coeff) == ring.Negative {
		return nil, false
	}
	deg, err := p.TotalDegree()
	if err != nil || deg != 2 {
		return nil, false
	}

	var result []SoSTerm
	rem := p.Clone()
	two := p.R.FromInt64(2)
	for !rem.IsConstant() {
		lterm, err := rem.LeadingTerm()
		if err != nil || lterm.Mono == nil {
			return nil, false
		}
		v, ok := variable.Lookup(lterm.Mono.Pairs()[0].VarID)
		if !ok {
			return nil, false
		}
		quad, err := rem.Coefficient(v, 2)
		if err != nil || !quad.IsConstant() {
			return nil, false
		}
		lcoeff := constantOf(p.R, quad)
		if p.R.IsZero(lcoeff) || ordered.SignOf(lcoeff) == ring.Negative {
			return nil, false
		}
		linear, err := rem.Coefficient(v, 1)
		if err != nil {
			return nil, false
		}
		constPart, err := rem.Coefficient(v, 0)
		if err != nil {
			return nil, false
		}
		vPoly, err := mvpoly.FromVariable(p.R, p.Ord, v)
		if err != nil {
			return nil, false
		}
		if linear.IsZero() {
			result = append(result, SoSTerm{Coeff: lcoeff, Factor: vPoly})
			rem = constPart
			continue
		}
		denom := p.R.Mul(two, lcoeff)
		invDenom, ok := field.Inv(denom)
		if !ok {
			return nil, false
		}
		qr := linear.MulScalar(invDenom)
		factor, err := vPoly.Add(qr)
		if err != nil {
			return nil, false
		}
		result = append(result, SoSTerm{Coeff: lcoeff, Factor: factor})
		qrSq, err := qr.Mul(qr)
		if err != nil {
			return nil, false
		}
		rem, err = constPart.Sub(qrSq.MulScalar(lcoeff))
		if err != nil {
			return nil, false
		}
	}
	remVal := constantOf(p.R, rem)
	if ordered.SignOf(remVal) == ring.Negative {
		return nil, false
	}
	if !p.R.IsZero(remVal) {
		result = append(result, SoSTerm{Coeff: remVal, Factor: mvpoly.FromConstant(p.R, p.Ord, p.R.One())})
	}
	return result, true
}

// constantOf reads the scalar value of a polynomial known to be constant
// (p.IsConstant() == true), returning the ring zero for the zero polynomial.
func constantOf(r ring.Ring, p *mvpoly.Polynomial) ring.Elem {
	if p.IsZero() {
		return r.Zero()
	}
	return p.Terms[0].Coeff
}
