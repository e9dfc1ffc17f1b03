package interval

import (
	"errors"

	"github.com/polyalg/kernel/mvpoly"
	"github.com/polyalg/kernel/uvpoly"
	"github.com/polyalg/kernel/variable"
)

// ErrMissingAssignment is returned by Evaluate when p refers to a
// variable absent from the assignment map.
var ErrMissingAssignment = errors.New("interval: polynomial refers to a variable with no interval assignment")

// Evaluate computes an enclosure of p's range over assignment, the
// variable-to-interval map supplying a box for every variable occurring
// in p. Each monomial contributes Point(coeff) scaled by repeated Mul of
// its variables' intervals, then every term's contribution is
// accumulated with Add (S4/S6).
func Evaluate(p *mvpoly.Polynomial, assignment map[variable.Variable]*Interval) (*Interval, error) {
	if p.IsZero() {
		return ZeroInterval(coefficientRing(assignment)), nil
	}
	r := p.R
	acc := Point(r, r.Zero())
	for _, t := range p.Terms {
		contrib := Point(r, t.Coeff)
		if t.Mono != nil {
			for _, pr := range t.Mono.Pairs() {
				v, ok := variable.Lookup(pr.VarID)
				if !ok {
					return nil, ErrMissingAssignment
				}
				box, ok := assignment[v]
				if !ok {
					return nil, ErrMissingAssignment
				}
				for e := uint32(0); e < pr.Exp; e++ {
					contrib = Mul(contrib, box)
				}
			}
		}
		acc = Add(acc, contrib)
	}
	return acc, nil
}

func coefficientRing(assignment map[variable.Variable]*Interval) OrderedField {
	for _, iv := range assignment {
		return iv.R
	}
	return nil
}

// EvaluateUnivariate computes an enclosure of p's range over box by
// Horner's method entirely in interval arithmetic.
func EvaluateUnivariate(p *uvpoly.Polynomial, box *Interval) *Interval {
	r := box.R
	if p.IsZero() {
		return ZeroInterval(r)
	}
	acc := Point(r, p.Coeffs[len(p.Coeffs)-1])
	for i := len(p.Coeffs) - 2; i >= 0; i-- {
		acc = Add(Mul(acc, box), Point(r, p.Coeffs[i]))
	}
	return acc
}

// Contract applies a single interval Newton step to box for p (spec.md
// §4.8): it replaces box with box ∩ (m - p(m)/p'(box)), m = box's
// midpoint, p'(box) the interval enclosure of the derivative over box,
// which is sound whenever 0 is not in p'(box) (p is monotone there). It
// reports ok=false when the step cannot be safely taken (0 ∈ p'(box), or
// the reciprocal of p'(box) cannot be formed) so callers fall back to
// bisection instead.
func Contract(p *uvpoly.Polynomial, box *Interval) (contracted *Interval, ok bool, err error) {
	deriv, err := p.Derivative(1)
	if err != nil {
		return nil, false, err
	}
	r := box.R
	derivRange := EvaluateUnivariate(deriv, box)
	if derivRange.Contains(r.Zero()) {
		return box, false, nil
	}
	mid, err := box.Midpoint()
	if err != nil {
		return nil, false, err
	}
	slopeInv, invOk := reciprocalPointInterval(r, derivRange)
	if !invOk {
		return box, false, nil
	}
	correction := Mul(Point(r, p.Eval(mid)), slopeInv)
	candidate := Sub(Point(r, mid), correction)
	return Intersect(box, candidate), true, nil
}

// reciprocalPointInterval inverts a bounded, zero-free interval in a
// single shot (Contract already verified 0 is not in derivRange).
func reciprocalPointInterval(r OrderedField, iv *Interval) (*Interval, bool) {
	parts, err := splitDivisor(r, iv)
	if err != nil || len(parts) != 1 {
		return nil, false
	}
	return reciprocal(r, parts[0]), true
}
