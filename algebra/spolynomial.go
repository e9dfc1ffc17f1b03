package algebra

import (
	"fmt"

	"github.com/polyalg/kernel/monomial"
	"github.com/polyalg/kernel/mvpoly"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/term"
)

// SPolynomial computes the Buchberger S-polynomial of f and g:
//
//	S(f,g) = (L/lt(f))*f - (L/lt(g))*g,  L = lcm(lm(f), lm(g))
//
// (original_source's carl-arith/poly/umvpoly/functions/SPolynomial.h,
// supplemented feature 3 of SPEC_FULL.md). Requires a field of
// coefficients, since the quotient terms L/lt(f) and L/lt(g) divide
// leading coefficients.
func SPolynomial(f, g *mvpoly.Polynomial) (*mvpoly.Polynomial, error) {
	if f.Ord.Kind() != g.Ord.Kind() {
		return nil, ErrNoCommonRing
	}
	field, ok := f.R.(ring.Field)
	if !ok {
		return nil, ErrNotOrderedField
	}
	if f.IsZero() || g.IsZero() {
		return nil, ErrZeroPolynomial
	}
	ltf, _ := f.LeadingTerm()
	ltg, _ := g.LeadingTerm()
	lcmMono, err := lcmMonomial(ltf.Mono, ltg.Mono)
	if err != nil {
		return nil, err
	}
	qf, err := quotientTerm(field, lcmMono, ltf)
	if err != nil {
		return nil, err
	}
	qg, err := quotientTerm(field, lcmMono, ltg)
	if err != nil {
		return nil, err
	}
	lhs, err := termPoly(f, qf).Mul(f)
	if err != nil {
		return nil, err
	}
	rhs, err := termPoly(g, qg).Mul(g)
	if err != nil {
		return nil, err
	}
	return lhs.Sub(rhs)
}

func termPoly(p *mvpoly.Polynomial, t term.Term) *mvpoly.Polynomial {
	r, _ := mvpoly.FromTerms(p.R, p.Ord, []term.Term{t}, false, true)
	return r
}

func lcmMonomial(a, b *monomial.Monomial) (*monomial.Monomial, error) {
	switch {
	case a == nil && b == nil:
		return nil, nil
	case a == nil:
		return b, nil
	case b == nil:
		return a, nil
	default:
		return monomial.Global().LCM(a, b)
	}
}

// quotientTerm returns lcmMono/lt as a term: coefficient 1/lt.Coeff, and
// monomial lcmMono with lt.Mono's exponents removed.
func quotientTerm(field ring.Field, lcmMono *monomial.Monomial, lt term.Term) (term.Term, error) {
	inv, ok := field.Inv(lt.Coeff)
	if !ok {
		return term.Term{}, fmt.Errorf("algebra: SPolynomial: leading coefficient %v has no inverse", lt.Coeff)
	}
	if lcmMono == nil {
		return term.Term{Coeff: inv}, nil
	}
	if lt.Mono == nil {
		return term.Term{Coeff: inv, Mono: lcmMono}, nil
	}
	quo, ok, err := monomial.Global().Div(lcmMono, lt.Mono)
	if err != nil {
		return term.Term{}, err
	}
	if !ok {
		return term.Term{}, fmt.Errorf("algebra: SPolynomial: %v does not divide %v", lt.Mono, lcmMono)
	}
	if quo.IsOne() {
		return term.Term{Coeff: inv}, nil
	}
	return term.Term{Coeff: inv, Mono: quo}, nil
}

// Quotient returns a/b, panicking via a precondition-violation (spec.md §7
// kind 1) rather than returning a remainder when the division is not
// exact - the convenience entry point original_source's
// carl-arith/poly/umvpoly/functions/Quotient.h exposes alongside the
// (quotient, remainder) pair mvpoly.Polynomial.QuoRem already provides.
func Quotient(a, b *mvpoly.Polynomial) *mvpoly.Polynomial {
	q, err := a.Div(b)
	if err != nil {
		panic(fmt.Sprintf("algebra: Quotient: %v", err))
	}
	return q
}
