package mvpoly

import (
	"errors"

	"github.com/polyalg/kernel/monomial"
	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/term"
	"github.com/polyalg/kernel/variable"
)

// ErrNegativeDerivativeOrder is a precondition violation for Derivative.
var ErrNegativeDerivativeOrder = errors.New("mvpoly: derivative order must be >= 0")

// Coefficient returns the coefficient of v^e in p, itself a polynomial in
// the remaining variables (spec.md's "coefficient extraction" query).
// Coefficient(v, 0) returns the sum of every term in which v does not
// occur at all.
func (p *Polynomial) Coefficient(v variable.Variable, e uint32) (*Polynomial, error) {
	var out []term.Term
	for _, t := range p.Terms {
		var te uint32
		if t.Mono != nil {
			te = t.Mono.ExpOf(v.ID())
		}
		if te != e {
			continue
		}
		if e == 0 {
			out = append(out, t)
			continue
		}
		ve, err := monomial.CreateVar(v.ID(), e)
		if err != nil {
			return nil, err
		}
		rest, ok, err := monomial.Global().Div(t.Mono, ve)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		var mono *monomial.Monomial
		if !rest.IsOne() {
			mono = rest
		}
		out = append(out, term.Term{Coeff: t.Coeff, Mono: mono})
	}
	return collapseTerms(p.R, p.Ord, out)
}

// Substitute returns p with every occurrence of v replaced by value, a
// polynomial sharing p's ring and ordering. Powers of value are shared
// across terms via repeated squaring rather than recomputed per term.
func (p *Polynomial) Substitute(v variable.Variable, value *Polynomial) (*Polynomial, error) {
	if err := sameOrder(p, value); err != nil {
		return nil, err
	}
	cache := map[int]*Polynomial{}
	result := Zero(p.R, p.Ord)
	for _, t := range p.Terms {
		e := 0
		if t.Mono != nil {
			e = int(t.Mono.ExpOf(v.ID()))
		}
		valuePow, err := polyPow(value, e, cache)
		if err != nil {
			return nil, err
		}
		restMono := t.Mono
		if e > 0 {
			ve, err := monomial.CreateVar(v.ID(), uint32(e))
			if err != nil {
				return nil, err
			}
			stripped, _, err := monomial.Global().Div(t.Mono, ve)
			if err != nil {
				return nil, err
			}
			restMono = stripped
			if restMono.IsOne() {
				restMono = nil
			}
		}
		restPoly := termPoly(p.R, p.Ord, term.Term{Coeff: t.Coeff, Mono: restMono})
		contrib, err := restPoly.Mul(valuePow)
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

func polyPow(base *Polynomial, n int, cache map[int]*Polynomial) (*Polynomial, error) {
	if n == 0 {
		return FromConstant(base.R, base.Ord, base.R.One()), nil
	}
	if c, ok := cache[n]; ok {
		return c, nil
	}
	half, err := polyPow(base, n/2, cache)
	if err != nil {
		return nil, err
	}
	sq, err := half.Mul(half)
	if err != nil {
		return nil, err
	}
	result := sq
	if n%2 != 0 {
		result, err = sq.Mul(base)
		if err != nil {
			return nil, err
		}
	}
	cache[n] = result
	return result, nil
}

// Derivative returns the k-th partial derivative of p with respect to v.
func (p *Polynomial) Derivative(v variable.Variable, k int) (*Polynomial, error) {
	if k < 0 {
		return nil, ErrNegativeDerivativeOrder
	}
	cur := p
	for i := 0; i < k; i++ {
		next, err := cur.derivativeOnce(v)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

func (p *Polynomial) derivativeOnce(v variable.Variable) (*Polynomial, error) {
	var out []term.Term
	for _, t := range p.Terms {
		if t.Mono == nil {
			continue
		}
		e := t.Mono.ExpOf(v.ID())
		if e == 0 {
			continue
		}
		newCoeff := p.R.Mul(t.Coeff, p.R.FromInt64(int64(e)))
		if p.R.IsZero(newCoeff) {
			continue
		}
		var newMono *monomial.Monomial
		pairs := t.Mono.Pairs()
		remPairs := make([]order.Pair, 0, len(pairs))
		for _, pr := range pairs {
			if pr.VarID == v.ID() {
				if pr.Exp > 1 {
					remPairs = append(remPairs, order.Pair{VarID: pr.VarID, Exp: pr.Exp - 1})
				}
				continue
			}
			remPairs = append(remPairs, pr)
		}
		if len(remPairs) > 0 {
			m, err := monomial.Create(remPairs)
			if err != nil {
				return nil, err
			}
			newMono = m
		}
		out = append(out, term.Term{Coeff: newCoeff, Mono: newMono})
	}
	return collapseTerms(p.R, p.Ord, out)
}
