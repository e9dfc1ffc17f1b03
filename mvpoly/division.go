package mvpoly

import (
	"errors"

	"github.com/polyalg/kernel/monomial"
	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/term"
)

// ErrDivisionByZero is a precondition violation: dividing by the zero
// polynomial is undefined.
var ErrDivisionByZero = errors.New("mvpoly: division by the zero polynomial")

func termPoly(r ring.Ring, ord order.Ordering, t term.Term) *Polynomial {
	return &Polynomial{R: r, Ord: ord, Terms: []term.Term{t}, FullyOrdered: true}
}

// divideCoeff divides a by b in r, succeeding only on an exact result: a
// field quotient, or a Euclidean quotient with zero remainder.
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

// QuoRem divides p by divisor using the classical single-divisor
// leading-monomial normal-form algorithm under p's ordering: while the
// divisor's leading monomial divides the current leading term of what
// remains of p, subtract the matching multiple of divisor; otherwise move
// the leading term to the remainder and continue with the next one. This
// generalizes the univariate division algorithm term-by-term rather than
// reducing against a full Gröbner basis, matching spec.md's C6 contract
// (division by a single polynomial, not a basis).
func (p *Polynomial) QuoRem(divisor *Polynomial) (quotient, remainder *Polynomial, err error) {
	if err := sameOrder(p, divisor); err != nil {
		return nil, nil, err
	}
	if divisor.IsZero() {
		return nil, nil, ErrDivisionByZero
	}
	divLead, _ := divisor.LeadingTerm()
	remaining := p.Clone()
	var quoTerms, remTerms []term.Term
	for !remaining.IsZero() {
		lead, _ := remaining.LeadingTerm()
		canDivide := divLead.Mono == nil || (lead.Mono != nil && monomial.Divides(divLead.Mono, lead.Mono))
		if !canDivide {
			remTerms = append(remTerms, lead)
			remaining.Terms = remaining.Terms[:len(remaining.Terms)-1]
			continue
		}
		qc, ok := divideCoeff(p.R, lead.Coeff, divLead.Coeff)
		if !ok {
			remTerms = append(remTerms, lead)
			remaining.Terms = remaining.Terms[:len(remaining.Terms)-1]
			continue
		}
		var qMono *monomial.Monomial
		if divLead.Mono != nil {
			qm, _, derr := monomial.Global().Div(lead.Mono, divLead.Mono)
			if derr != nil {
				return nil, nil, derr
			}
			if !qm.IsOne() {
				qMono = qm
			}
		} else {
			qMono = lead.Mono
		}
		qTerm := term.Term{Coeff: qc, Mono: qMono}
		quoTerms = append(quoTerms, qTerm)
		sub, err := termPoly(p.R, p.Ord, qTerm).Mul(divisor)
		if err != nil {
			return nil, nil, err
		}
		remaining, err = remaining.Sub(sub)
		if err != nil {
			return nil, nil, err
		}
	}
	quo, err := collapseTerms(p.R, p.Ord, quoTerms)
	if err != nil {
		return nil, nil, err
	}
	rem, err := collapseTerms(p.R, p.Ord, remTerms)
	if err != nil {
		return nil, nil, err
	}
	return quo, rem, nil
}

// Div returns p/divisor, failing with ErrNotDivisible if the division
// leaves a non-zero remainder.
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
