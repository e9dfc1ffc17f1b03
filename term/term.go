// Package term implements the (coefficient, optional monomial) pair (C3).
package term

import (
	"github.com/polyalg/kernel/monomial"
	"github.com/polyalg/kernel/ring"
)

// Term is a (coefficient, monomial) pair. Mono == nil ("⊥" in spec.md)
// means "constant term with value Coeff". The canonical zero term has
// Coeff == r.Zero() and must never appear inside a polynomial's term
// vector.
type Term struct {
	Coeff ring.Elem
	Mono  *monomial.Monomial
}

// Constant builds a constant term (monomial ⊥).
func Constant(c ring.Elem) Term {
	return Term{Coeff: c}
}

// FromMonomial builds a term with coefficient 1 over m.
func FromMonomial(r ring.Ring, m *monomial.Monomial) Term {
	return Term{Coeff: r.One(), Mono: m}
}

// IsConstant reports whether t has no monomial.
func (t Term) IsConstant() bool { return t.Mono == nil }

// IsZero reports whether t's coefficient is the ring's zero.
func (t Term) IsZero(r ring.Ring) bool { return r.IsZero(t.Coeff) }

// TotalDegree returns t's total degree (0 for a constant term).
func (t Term) TotalDegree() int {
	if t.Mono == nil {
		return 0
	}
	return t.Mono.TotalDegree()
}

// Has reports whether varID occurs in t's monomial.
func (t Term) Has(varID uint64) bool {
	return t.Mono != nil && t.Mono.Has(varID)
}

// Mul returns the product of two terms, combining coefficients via r and
// monomials via the monomial pool p (nil monomials multiply to nil).
func Mul(r ring.Ring, p *monomial.Pool, a, b Term) (Term, error) {
	coeff := r.Mul(a.Coeff, b.Coeff)
	switch {
	case a.Mono == nil && b.Mono == nil:
		return Term{Coeff: coeff}, nil
	case a.Mono == nil:
		return Term{Coeff: coeff, Mono: b.Mono}, nil
	case b.Mono == nil:
		return Term{Coeff: coeff, Mono: a.Mono}, nil
	default:
		m, err := p.Mul(a.Mono, b.Mono)
		if err != nil {
			return Term{}, err
		}
		return Term{Coeff: coeff, Mono: m}, nil
	}
}

// Neg returns -t.
func Neg(r ring.Ring, t Term) Term {
	return Term{Coeff: r.Neg(t.Coeff), Mono: t.Mono}
}

// String renders t per spec.md §6: "coefficient" when monomial is ⊥, the
// bare monomial string when coefficient is 1 and monomial != ⊥, otherwise
// "coefficient·monomial".
func (t Term) String(r ring.Ring) string {
	if t.Mono == nil {
		return r.String(t.Coeff)
	}
	if r.Equal(t.Coeff, r.One()) {
		return t.Mono.String()
	}
	return r.String(t.Coeff) + "·" + t.Mono.String()
}
