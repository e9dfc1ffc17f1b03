// Package polyctx implements the context-bound polynomial façade (C11):
// a thin wrapper pairing an mvpoly.Polynomial with a shared, immutable
// ordered vector of variables that fixes the main-variable preference
// used whenever a polynomial is promoted to its univariate view
// (spec.md §3's Context and §4.2's "Data-flow" note that C11 is a
// façade over C6/C7, never a third representation).
package polyctx

import (
	"errors"

	"github.com/polyalg/kernel/mvpoly"
	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/uvpoly"
	"github.com/polyalg/kernel/variable"
)

// ErrNoVariable is returned when a polynomial shares no variable with
// its context's preference order, so no main variable can be chosen.
var ErrNoVariable = errors.New("polyctx: polynomial shares no variable with the context")

// constantMain is the placeholder main variable used to represent a
// constant or zero polynomial's univariate view, which carries no real
// variable of its own.
var constantMain = variable.NewReal("_polyctx_constant")

// Context is an immutable ordered list of variables: the first entry
// occurring in a given polynomial is preferred as its main variable.
type Context struct {
	vars []variable.Variable
}

// NewContext builds a context from an explicit variable preference
// order. The slice is copied so the returned Context is immutable.
func NewContext(vars ...variable.Variable) *Context {
	cp := make([]variable.Variable, len(vars))
	copy(cp, vars)
	return &Context{vars: cp}
}

// Variables returns the context's preference order.
func (c *Context) Variables() []variable.Variable {
	out := make([]variable.Variable, len(c.vars))
	copy(out, c.vars)
	return out
}

// MainVariable returns the first of ctx's variables occurring in p.
func (c *Context) MainVariable(p *mvpoly.Polynomial) (variable.Variable, bool) {
	for _, v := range c.vars {
		if p.Has(v) {
			return v, true
		}
	}
	return variable.Null, false
}

// Bound pairs a polynomial with the context that determines its
// univariate promotion.
type Bound struct {
	Poly *mvpoly.Polynomial
	Ctx  *Context
}

// Bind pairs p with ctx.
func Bind(p *mvpoly.Polynomial, ctx *Context) Bound {
	return Bound{Poly: p, Ctx: ctx}
}

// ToUnivariate promotes b.Poly to its univariate view in the context's
// preferred main variable, with numeric (non-polynomial) coefficients -
// the single-level promotion a caller uses directly, as opposed to the
// wrap-every-coefficient form the algebra package's recursive GCD/
// resultant machinery needs internally.
func (b Bound) ToUnivariate() (*uvpoly.Polynomial, error) {
	main, ok := b.Ctx.MainVariable(b.Poly)
	if !ok {
		if b.Poly.IsZero() {
			return uvpoly.Zero(b.Poly.R, constantMain), nil
		}
		if b.Poly.IsConstant() {
			return uvpoly.FromConstant(b.Poly.R, constantMain, b.Poly.Terms[0].Coeff), nil
		}
		return nil, ErrNoVariable
	}
	return uvpoly.FromMultivariate(b.Poly, main, b.Poly.R, false)
}

// FromUnivariate demotes up back to a context-bound multivariate view
// under ord.
func FromUnivariate(up *uvpoly.Polynomial, ord order.Ordering, ctx *Context) (Bound, error) {
	p, err := up.ToMultivariate(ord)
	if err != nil {
		return Bound{}, err
	}
	return Bind(p, ctx), nil
}
