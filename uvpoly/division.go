package uvpoly

import (
	"errors"

	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/variable"
)

// ErrNotDivisible is the operation-specific failure for exact division
// (Div): the remainder is non-zero.
var ErrNotDivisible = errors.New("uvpoly: division is not exact")

func divideCoeff(r ring.Ring, a, b ring.Elem) (ring.Elem, bool) {
	if f, ok := r.(ring.Field); ok {
		return f.Div(a, b)
	}
	if e, ok := r.(ring.EuclideanDomain); ok {
		q, rem := e.QuoRem(a, b)
		if r.IsZero(rem) {
			return q, true
		}
		return nil, false
	}
	return nil, false
}

// QuoRem divides p by divisor by the classical coefficient-wise long
// division algorithm: at each step it cancels the remaining polynomial's
// leading coefficient against the divisor's, stopping early (with a
// possibly non-zero-degree-bounded remainder) the moment that cancellation
// cannot be performed exactly in the coefficient ring.
func (p *Polynomial) QuoRem(divisor *Polynomial) (*Polynomial, *Polynomial, error) {
	if err := sameMain(p, divisor); err != nil {
		return nil, nil, err
	}
	if divisor.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	if p.IsZero() || p.Degree() < divisor.Degree() {
		return Zero(p.R, p.Main), p.Clone(), nil
	}
	divLead, _ := divisor.LeadingCoeff()
	quoDeg := p.Degree() - divisor.Degree()
	quoCoeffs := make([]ring.Elem, quoDeg+1)
	for i := range quoCoeffs {
		quoCoeffs[i] = p.R.Zero()
	}
	remaining := p.Clone()
	for !remaining.IsZero() && remaining.Degree() >= divisor.Degree() {
		lead, _ := remaining.LeadingCoeff()
		qc, ok := divideCoeff(p.R, lead, divLead)
		if !ok {
			break
		}
		shift := remaining.Degree() - divisor.Degree()
		quoCoeffs[shift] = qc
		sub := divisor.MulScalar(qc).ShiftUp(shift)
		var err error
		remaining, err = remaining.Sub(sub)
		if err != nil {
			return nil, nil, err
		}
	}
	return FromCoeffs(p.R, p.Main, quoCoeffs), remaining, nil
}

// Div returns p/divisor, failing with ErrNotDivisible if the remainder is
// non-zero.
func (p *Polynomial) Div(divisor *Polynomial) (*Polynomial, error) {
	q, r, err := p.QuoRem(divisor)
	if err != nil {
		return nil, err
	}
	if !r.IsZero() {
		return nil, ErrNotDivisible
	}
	return q, nil
}

// ShiftUp returns x^k * p.
func (p *Polynomial) ShiftUp(k int) *Polynomial {
	if p.IsZero() || k == 0 {
		return p.Clone()
	}
	out := make([]ring.Elem, len(p.Coeffs)+k)
	for i := 0; i < k; i++ {
		out[i] = p.R.Zero()
	}
	copy(out[k:], p.Coeffs)
	return FromCoeffs(p.R, p.Main, out)
}

func shiftedTerm(r ring.Ring, main variable.Variable, c ring.Elem, shift int) *Polynomial {
	coeffs := make([]ring.Elem, shift+1)
	for i := range coeffs {
		coeffs[i] = r.Zero()
	}
	coeffs[shift] = c
	return FromCoeffs(r, main, coeffs)
}

// PseudoDivide computes the signed pseudo-quotient and pseudo-remainder of
// p by divisor over an integral domain of coefficients that may lack
// division: lc(divisor)^e * p = q*divisor + r with deg(r) < deg(divisor),
// where e = deg(p) - deg(divisor) + 1 (Cohen, "A Course in Computational
// Algebraic Number Theory", pseudo-division algorithm).
func (p *Polynomial) PseudoDivide(divisor *Polynomial) (q, r *Polynomial, err error) {
	if err := sameMain(p, divisor); err != nil {
		return nil, nil, err
	}
	if divisor.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	n := divisor.Degree()
	if p.IsZero() || p.Degree() < n {
		return Zero(p.R, p.Main), p.Clone(), nil
	}
	d, _ := divisor.LeadingCoeff()
	r = p.Clone()
	q = Zero(p.R, p.Main)
	e := p.Degree() - n + 1
	for !r.IsZero() && r.Degree() >= n {
		lcR, _ := r.LeadingCoeff()
		shift := r.Degree() - n
		s := shiftedTerm(p.R, p.Main, lcR, shift)
		q = q.MulScalar(d)
		q, err = q.Add(s)
		if err != nil {
			return nil, nil, err
		}
		rd := r.MulScalar(d)
		sb, err2 := s.Mul(divisor)
		if err2 != nil {
			return nil, nil, err2
		}
		r, err = rd.Sub(sb)
		if err != nil {
			return nil, nil, err
		}
		e--
	}
	if e > 0 {
		factor := ring.Pow(p.R, d, e)
		q = q.MulScalar(factor)
		r = r.MulScalar(factor)
	}
	return q, r, nil
}

// PseudoRemainder returns only the remainder half of PseudoDivide.
func (p *Polynomial) PseudoRemainder(divisor *Polynomial) (*Polynomial, error) {
	_, r, err := p.PseudoDivide(divisor)
	return r, err
}

// SignedPseudoRemainder returns PseudoDivide's remainder scaled by one
// extra power of lc(divisor) whenever deg(p)-deg(divisor)+1 is odd, so the
// effective scaling exponent is always even - the sign-stable variant
// spec.md §4.4 calls for, used by subresultant-style remainder sequences
// where an odd scaling exponent would otherwise flip the sign of every
// other term in the sequence.
func (p *Polynomial) SignedPseudoRemainder(divisor *Polynomial) (*Polynomial, error) {
	_, r, err := p.PseudoDivide(divisor)
	if err != nil {
		return nil, err
	}
	n := divisor.Degree()
	if p.IsZero() || p.Degree() < n {
		return r, nil
	}
	e := p.Degree() - n + 1
	if e%2 != 0 {
		d, _ := divisor.LeadingCoeff()
		r = r.MulScalar(d)
	}
	return r, nil
}
