// Package uvpoly implements the univariate polynomial (C7): a dense
// coefficient vector in a single main variable, with coefficients drawn
// from any ring.Ring — including another polynomial ring, via
// CoeffRing, so a multivariate polynomial can be promoted to univariate
// form in one of its variables and back without a parallel coefficient
// abstraction.
package uvpoly

import (
	"errors"
	"fmt"
	"strings"

	"github.com/polyalg/kernel/mvpoly"
	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/variable"
)

// ErrZeroPolynomial is a precondition violation: some queries are
// undefined on the zero polynomial.
var ErrZeroPolynomial = errors.New("uvpoly: operation undefined on the zero polynomial")

// ErrMainVariableMismatch is a precondition violation: a binary operation's
// operands must share the same main variable.
var ErrMainVariableMismatch = errors.New("uvpoly: operands have different main variables")

// ErrDivisionByZero is a precondition violation: dividing by the zero
// polynomial is undefined.
var ErrDivisionByZero = errors.New("uvpoly: division by the zero polynomial")

// Polynomial is c[0] + c[1]*x + ... + c[n]*x^n over ring R in main
// variable Main. Invariant: Coeffs has no trailing (highest-degree) zero
// entry, except that the zero polynomial is represented by an empty slice.
type Polynomial struct {
	R      ring.Ring
	Main   variable.Variable
	Coeffs []ring.Elem
}

// Zero returns the zero polynomial in the given main variable.
func Zero(r ring.Ring, main variable.Variable) *Polynomial {
	return &Polynomial{R: r, Main: main}
}

// FromCoeffs builds a polynomial from coefficients in ascending degree
// order, trimming any trailing zero coefficients.
func FromCoeffs(r ring.Ring, main variable.Variable, coeffs []ring.Elem) *Polynomial {
	n := len(coeffs)
	for n > 0 && r.IsZero(coeffs[n-1]) {
		n--
	}
	cp := make([]ring.Elem, n)
	copy(cp, coeffs)
	return &Polynomial{R: r, Main: main, Coeffs: cp}
}

// FromConstant returns the degree-0 polynomial c.
func FromConstant(r ring.Ring, main variable.Variable, c ring.Elem) *Polynomial {
	if r.IsZero(c) {
		return Zero(r, main)
	}
	return &Polynomial{R: r, Main: main, Coeffs: []ring.Elem{c}}
}

// IsZero reports whether p has no coefficients.
func (p *Polynomial) IsZero() bool { return len(p.Coeffs) == 0 }

// Degree returns the polynomial's degree, or -1 for the zero polynomial
// (matching the usual convention that deg(0) = -infinity, represented
// here with the smallest practical sentinel).
func (p *Polynomial) Degree() int { return len(p.Coeffs) - 1 }

// LeadingCoeff returns the coefficient of the highest-degree term. It is
// an error to call this on the zero polynomial.
func (p *Polynomial) LeadingCoeff() (ring.Elem, error) {
	if p.IsZero() {
		return nil, ErrZeroPolynomial
	}
	return p.Coeffs[len(p.Coeffs)-1], nil
}

// CoeffAt returns the coefficient of x^i, or the ring zero if i is out of
// range (including i < 0).
func (p *Polynomial) CoeffAt(i int) ring.Elem {
	if i < 0 || i >= len(p.Coeffs) {
		return p.R.Zero()
	}
	return p.Coeffs[i]
}

func sameMain(a, b *Polynomial) error {
	if !a.Main.Equal(b.Main) {
		return ErrMainVariableMismatch
	}
	return nil
}

// Clone returns a deep-enough copy (the coefficient slice is copied; ring
// elements themselves are treated as immutable by convention, matching
// math/big usage throughout the ring package).
func (p *Polynomial) Clone() *Polynomial {
	cp := make([]ring.Elem, len(p.Coeffs))
	copy(cp, p.Coeffs)
	return &Polynomial{R: p.R, Main: p.Main, Coeffs: cp}
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) (*Polynomial, error) {
	if err := sameMain(p, q); err != nil {
		return nil, err
	}
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]ring.Elem, n)
	for i := 0; i < n; i++ {
		out[i] = p.R.Add(p.CoeffAt(i), q.CoeffAt(i))
	}
	return FromCoeffs(p.R, p.Main, out), nil
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) (*Polynomial, error) {
	if err := sameMain(p, q); err != nil {
		return nil, err
	}
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]ring.Elem, n)
	for i := 0; i < n; i++ {
		out[i] = ring.Sub(p.R, p.CoeffAt(i), q.CoeffAt(i))
	}
	return FromCoeffs(p.R, p.Main, out), nil
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	out := make([]ring.Elem, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = p.R.Neg(c)
	}
	return &Polynomial{R: p.R, Main: p.Main, Coeffs: out}
}

// Mul returns p * q via the schoolbook convolution: fine for the moderate
// degrees that arise from a single main variable inside a kernel operation
// (resultants, GCDs, root isolation), where FFT-based multiplication would
// be premature machinery.
func (p *Polynomial) Mul(q *Polynomial) (*Polynomial, error) {
	if err := sameMain(p, q); err != nil {
		return nil, err
	}
	if p.IsZero() || q.IsZero() {
		return Zero(p.R, p.Main), nil
	}
	out := make([]ring.Elem, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range out {
		out[i] = p.R.Zero()
	}
	for i, a := range p.Coeffs {
		if p.R.IsZero(a) {
			continue
		}
		for j, b := range q.Coeffs {
			out[i+j] = p.R.Add(out[i+j], p.R.Mul(a, b))
		}
	}
	return FromCoeffs(p.R, p.Main, out), nil
}

// MulScalar returns c*p.
func (p *Polynomial) MulScalar(c ring.Elem) *Polynomial {
	if p.R.IsZero(c) {
		return Zero(p.R, p.Main)
	}
	out := make([]ring.Elem, len(p.Coeffs))
	for i, a := range p.Coeffs {
		out[i] = p.R.Mul(c, a)
	}
	return FromCoeffs(p.R, p.Main, out)
}

// Equal reports coefficient-wise equality under p.R.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if len(p.Coeffs) != len(q.Coeffs) {
		return false
	}
	for i := range p.Coeffs {
		if !p.R.Equal(p.Coeffs[i], q.Coeffs[i]) {
			return false
		}
	}
	return true
}

// Derivative returns the k-th derivative of p with respect to its main
// variable.
func (p *Polynomial) Derivative(k int) (*Polynomial, error) {
	if k < 0 {
		return nil, fmt.Errorf("uvpoly: derivative order must be >= 0")
	}
	cur := p
	for i := 0; i < k; i++ {
		cur = cur.derivativeOnce()
	}
	return cur, nil
}

func (p *Polynomial) derivativeOnce() *Polynomial {
	if len(p.Coeffs) <= 1 {
		return Zero(p.R, p.Main)
	}
	out := make([]ring.Elem, len(p.Coeffs)-1)
	for i := 1; i < len(p.Coeffs); i++ {
		out[i-1] = p.R.Mul(p.Coeffs[i], p.R.FromInt64(int64(i)))
	}
	return FromCoeffs(p.R, p.Main, out)
}

// Eval evaluates p at x via Horner's method.
func (p *Polynomial) Eval(x ring.Elem) ring.Elem {
	if p.IsZero() {
		return p.R.Zero()
	}
	acc := p.Coeffs[len(p.Coeffs)-1]
	for i := len(p.Coeffs) - 2; i >= 0; i-- {
		acc = p.R.Add(p.R.Mul(acc, x), p.Coeffs[i])
	}
	return acc
}

func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	var sb strings.Builder
	first := true
	for i := len(p.Coeffs) - 1; i >= 0; i-- {
		c := p.Coeffs[i]
		if p.R.IsZero(c) {
			continue
		}
		if !first {
			sb.WriteString(" + ")
		}
		first = false
		switch {
		case i == 0:
			sb.WriteString(p.R.String(c))
		case p.R.Equal(c, p.R.One()):
			sb.WriteString(p.Main.Name())
			if i > 1 {
				fmt.Fprintf(&sb, "^%d", i)
			}
		default:
			sb.WriteString(p.R.String(c))
			sb.WriteString("·")
			sb.WriteString(p.Main.Name())
			if i > 1 {
				fmt.Fprintf(&sb, "^%d", i)
			}
		}
	}
	return sb.String()
}

// ToMultivariate promotes p to an mvpoly.Polynomial under ord, with
// numeric (non-polynomial) coefficients. FromMultivariate goes the other
// way, including when coefficients are themselves mvpoly.Polynomial values.
func (p *Polynomial) ToMultivariate(ord order.Ordering) (*mvpoly.Polynomial, error) {
	result := mvpoly.Zero(p.R, ord)
	v, err := mvpoly.FromVariable(p.R, ord, p.Main)
	if err != nil {
		return nil, err
	}
	power := mvpoly.FromConstant(p.R, ord, p.R.One())
	for i, c := range p.Coeffs {
		if i > 0 {
			power, err = power.Mul(v)
			if err != nil {
				return nil, err
			}
		}
		if p.R.IsZero(c) {
			continue
		}
		term := power.MulScalar(c)
		result, err = result.Add(term)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

// FromMultivariate demotes an mvpoly.Polynomial to univariate form in
// main, treating every other variable's contribution as an opaque
// coefficient drawn from coeffRing (typically a CoeffRing wrapping the
// same base ring and ordering). It is an error if p has a negative
// coefficient-side total degree query failure; degrees in main range from
// 0 up to p's degree in that variable.
//
// wrapConstants controls how a coefficient that happens to carry no
// remaining variables is represented. When false (the genuinely
// single-variable case: main is p's only variable), such a coefficient is
// unwrapped to p's base ring.Elem so the result is a plain numeric-coefficient
// uvpoly.Polynomial over p.R itself. When true (the recursive multivariate
// case the algebra package's GCD/resultant promotion uses), every
// coefficient is kept as an *mvpoly.Polynomial, even a degenerate constant
// one, so that every element handed to coeffRing has a uniform type - this
// is required because CoeffRing type-asserts every Elem it touches.
func FromMultivariate(p *mvpoly.Polynomial, main variable.Variable, coeffRing ring.Ring, wrapConstants bool) (*Polynomial, error) {
	maxExp := uint32(0)
	for _, t := range p.Terms {
		if t.Mono != nil {
			if e := t.Mono.ExpOf(main.ID()); e > maxExp {
				maxExp = e
			}
		}
	}
	coeffs := make([]ring.Elem, maxExp+1)
	for e := uint32(0); e <= maxExp; e++ {
		c, err := p.Coefficient(main, e)
		if err != nil {
			return nil, err
		}
		if wrapConstants {
			coeffs[e] = c
		} else {
			coeffs[e] = coeffElem(c)
		}
	}
	return FromCoeffs(coeffRing, main, coeffs), nil
}

func coeffElem(p *mvpoly.Polynomial) ring.Elem {
	if p.IsZero() {
		return p.R.Zero()
	}
	if p.IsConstant() {
		return p.Terms[0].Coeff
	}
	return p
}
