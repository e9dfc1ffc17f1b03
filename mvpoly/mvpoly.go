// Package mvpoly implements the multivariate polynomial (C6): a vector of
// terms under a chosen monomial ordering, with the minimally-ordered
// invariant of spec.md §3 and arithmetic built on the term-addition
// manager (C5).
package mvpoly

import (
	"errors"
	"sort"
	"strings"

	"github.com/polyalg/kernel/internal/mathutil"
	"github.com/polyalg/kernel/monomial"
	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/ring"
	"github.com/polyalg/kernel/term"
	"github.com/polyalg/kernel/termaddition"
	"github.com/polyalg/kernel/variable"
)

// ErrOrderMismatch is a precondition violation: a binary operation's
// operands must share the same monomial ordering.
var ErrOrderMismatch = errors.New("mvpoly: operands have mismatched monomial ordering")

// ErrDuplicateMonomial is a precondition violation raised when
// FromTerms(..., collapseDuplicates=false, ...) is given terms that share
// a monomial.
var ErrDuplicateMonomial = errors.New("mvpoly: duplicate monomial in term vector")

// ErrNotOrdered is raised when FromTerms asserts pre-sortedness that does
// not actually hold.
var ErrNotOrdered = errors.New("mvpoly: term vector is not sorted under the asserted ordering")

// ErrZeroPolynomial is a precondition violation: some queries (TotalDegree,
// LeadingTerm) are undefined on the zero polynomial.
var ErrZeroPolynomial = errors.New("mvpoly: operation undefined on the zero polynomial")

// ErrNotDivisible is the operation-specific failure for exact polynomial
// division (spec.md §7): the remainder of a/b is non-zero.
var ErrNotDivisible = errors.New("mvpoly: division is not exact")

// Polynomial is a sum of terms plus a static ordering tag and a runtime
// "fully ordered" flag (spec.md §3 invariants 1-4).
type Polynomial struct {
	R            ring.Ring
	Ord          order.Ordering
	Terms        []term.Term
	FullyOrdered bool
}

// Zero returns the zero polynomial (empty term vector).
func Zero(r ring.Ring, ord order.Ordering) *Polynomial {
	return &Polynomial{R: r, Ord: ord, FullyOrdered: true}
}

// FromConstant returns the constant polynomial c.
func FromConstant(r ring.Ring, ord order.Ordering, c ring.Elem) *Polynomial {
	if r.IsZero(c) {
		return Zero(r, ord)
	}
	return &Polynomial{R: r, Ord: ord, Terms: []term.Term{term.Constant(c)}, FullyOrdered: true}
}

// FromVariable returns the degree-1 polynomial v (coefficient 1).
func FromVariable(r ring.Ring, ord order.Ordering, v variable.Variable) (*Polynomial, error) {
	m, err := monomial.CreateVar(v.ID(), 1)
	if err != nil {
		return nil, err
	}
	return &Polynomial{R: r, Ord: ord, Terms: []term.Term{term.FromMonomial(r, m)}, FullyOrdered: true}, nil
}

// FromTerms builds a polynomial from an explicit term vector. When
// collapseDuplicates is true, duplicate monomials are summed and zero
// coefficients dropped via the term-addition manager, and the result is
// always fully ordered. When false, duplicate monomials are reported as
// ErrDuplicateMonomial and zero-coefficient terms are dropped. When
// assertOrdered is true (and collapseDuplicates is false) the vector is
// verified to be strictly ascending under ord; otherwise the O(n)
// make-minimally-ordered algorithm of spec.md §4.3 is applied.
func FromTerms(r ring.Ring, ord order.Ordering, terms []term.Term, collapseDuplicates, assertOrdered bool) (*Polynomial, error) {
	if collapseDuplicates {
		return collapseTerms(r, ord, terms)
	}
	seen := make(map[int64]bool, len(terms))
	cp := make([]term.Term, 0, len(terms))
	for _, t := range terms {
		if r.IsZero(t.Coeff) {
			continue
		}
		id := monoID(t.Mono)
		if seen[id] {
			return nil, ErrDuplicateMonomial
		}
		seen[id] = true
		cp = append(cp, t)
	}
	p := &Polynomial{R: r, Ord: ord, Terms: cp}
	if assertOrdered {
		if !isAscending(cp, ord) {
			return nil, ErrNotOrdered
		}
		p.FullyOrdered = true
		return p, nil
	}
	makeMinimallyOrdered(cp, ord)
	p.FullyOrdered = false
	return p, nil
}

// productSizeHint returns a*b as a scratch-capacity hint for the
// term-addition manager, clamped to math.MaxInt32 rather than overflowing
// silently when two dense operands would produce an implausibly large
// term count - Acquire only uses this as a sizing hint, never as an
// allocation it must honor exactly.
func productSizeHint(a, b int) int {
	product, overflowed := mathutil.SafeMulUint64(uint64(a), uint64(b))
	if overflowed || product > (1<<31)-1 {
		return (1 << 31) - 1
	}
	return int(product)
}

func monoID(m *monomial.Monomial) int64 {
	if m == nil {
		return 0
	}
	return m.ID()
}

func collapseTerms(r ring.Ring, ord order.Ordering, terms []term.Term) (*Polynomial, error) {
	mgr := termaddition.Global()
	ctx := mgr.Acquire(monomial.Global(), r, ord, len(terms))
	defer mgr.Release(ctx)
	for _, t := range terms {
		ctx.AddTerm(t, false, false)
	}
	out := ctx.ReadTerms()
	return &Polynomial{R: r, Ord: ord, Terms: out, FullyOrdered: true}, nil
}

func isAscending(ts []term.Term, ord order.Ordering) bool {
	for i := 1; i < len(ts); i++ {
		if compare(ts[i-1], ts[i], ord) >= 0 {
			return false
		}
	}
	return true
}

func compare(a, b term.Term, ord order.Ordering) int {
	aDeg, aPairs := pairsOf(a.Mono)
	bDeg, bPairs := pairsOf(b.Mono)
	return ord.Compare(aDeg, aPairs, bDeg, bPairs)
}

func pairsOf(m *monomial.Monomial) (int, []order.Pair) {
	if m == nil {
		return 0, nil
	}
	return m.TotalDegree(), m.Pairs()
}

// makeMinimallyOrdered locates the leading term by a single linear scan,
// swaps a constant term (if present) to the front, and swaps the leading
// term to the last position: spec.md §4.3's O(n) algorithm, weaker than a
// full sort but sufficient for invariant 3.
func makeMinimallyOrdered(ts []term.Term, ord order.Ordering) {
	if len(ts) == 0 {
		return
	}
	leadIdx := 0
	for i := 1; i < len(ts); i++ {
		if compare(ts[leadIdx], ts[i], ord) < 0 {
			leadIdx = i
		}
	}
	constIdx := -1
	for i, t := range ts {
		if t.IsConstant() {
			constIdx = i
			break
		}
	}
	if constIdx != -1 && constIdx != 0 {
		ts[0], ts[constIdx] = ts[constIdx], ts[0]
		if leadIdx == 0 {
			leadIdx = constIdx
		} else if leadIdx == constIdx {
			leadIdx = 0
		}
	}
	last := len(ts) - 1
	if leadIdx != last {
		ts[leadIdx], ts[last] = ts[last], ts[leadIdx]
	}
}

// Clone returns a shallow copy (terms are immutable, so copying the slice
// header's backing array is a full logical copy).
func (p *Polynomial) Clone() *Polynomial {
	cp := make([]term.Term, len(p.Terms))
	copy(cp, p.Terms)
	return &Polynomial{R: p.R, Ord: p.Ord, Terms: cp, FullyOrdered: p.FullyOrdered}
}

// IsZero reports whether p has no terms.
func (p *Polynomial) IsZero() bool { return len(p.Terms) == 0 }

// IsConstant reports whether p is the zero polynomial or has a single
// constant term.
func (p *Polynomial) IsConstant() bool {
	return len(p.Terms) == 0 || (len(p.Terms) == 1 && p.Terms[0].IsConstant())
}

// TotalDegree returns the maximum total degree among p's terms. It is an
// error to call TotalDegree on the zero polynomial. Under a degree-order
// ordering (graded-lex), this is a fast path reading only the leading term;
// otherwise every term is scanned.
func (p *Polynomial) TotalDegree() (int, error) {
	if p.IsZero() {
		return 0, ErrZeroPolynomial
	}
	if p.Ord.DegreeOrder() {
		return p.Terms[len(p.Terms)-1].TotalDegree(), nil
	}
	max := 0
	for _, t := range p.Terms {
		if d := t.TotalDegree(); d > max {
			max = d
		}
	}
	return max, nil
}

// IsLinear reports whether p's total degree is <= 1.
func (p *Polynomial) IsLinear() bool {
	if p.IsZero() {
		return true
	}
	if p.Ord.DegreeOrder() {
		return p.Terms[len(p.Terms)-1].TotalDegree() <= 1
	}
	for _, t := range p.Terms {
		if t.TotalDegree() > 1 {
			return false
		}
	}
	return true
}

// Has reports whether v occurs (with positive exponent) in any term of p.
func (p *Polynomial) Has(v variable.Variable) bool {
	for _, t := range p.Terms {
		if t.Has(v.ID()) {
			return true
		}
	}
	return false
}

// Variables returns the sorted (ascending id) set of variables occurring
// in p. A variable id that no longer has a live entry in the global
// registry (freed and never reused, which cannot happen in practice since
// the registry never frees ids, but kept defensive) is skipped.
func (p *Polynomial) Variables() []variable.Variable {
	seen := map[uint64]bool{}
	var out []variable.Variable
	for _, t := range p.Terms {
		if t.Mono == nil {
			continue
		}
		for _, pr := range t.Mono.Pairs() {
			if seen[pr.VarID] {
				continue
			}
			seen[pr.VarID] = true
			if v, ok := variable.Lookup(pr.VarID); ok {
				out = append(out, v)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// LeadingTerm returns p's leading term under its ordering. p must be
// non-zero: invariant 3 guarantees it is the last element once p is at
// least minimally ordered.
func (p *Polynomial) LeadingTerm() (term.Term, error) {
	if p.IsZero() {
		return term.Term{}, ErrZeroPolynomial
	}
	return p.Terms[len(p.Terms)-1], nil
}

func sameOrder(a, b *Polynomial) error {
	if a.Ord.Kind() != b.Ord.Kind() {
		return ErrOrderMismatch
	}
	return nil
}

// Add returns p + q.
func (p *Polynomial) Add(q *Polynomial) (*Polynomial, error) {
	if err := sameOrder(p, q); err != nil {
		return nil, err
	}
	merged := append(append([]term.Term{}, p.Terms...), q.Terms...)
	return collapseTerms(p.R, p.Ord, merged)
}

// Sub returns p - q.
func (p *Polynomial) Sub(q *Polynomial) (*Polynomial, error) {
	if err := sameOrder(p, q); err != nil {
		return nil, err
	}
	negQ := make([]term.Term, len(q.Terms))
	for i, t := range q.Terms {
		negQ[i] = term.Neg(p.R, t)
	}
	merged := append(append([]term.Term{}, p.Terms...), negQ...)
	return collapseTerms(p.R, p.Ord, merged)
}

// Neg returns -p.
func (p *Polynomial) Neg() *Polynomial {
	out := make([]term.Term, len(p.Terms))
	for i, t := range p.Terms {
		out[i] = term.Neg(p.R, t)
	}
	return &Polynomial{R: p.R, Ord: p.Ord, Terms: out, FullyOrdered: p.FullyOrdered}
}

// Mul returns p * q, computed through the term-addition manager (C5) so
// that colliding monomials in a dense product collapse in O(1) each
// instead of an O(n^2) naive double loop.
func (p *Polynomial) Mul(q *Polynomial) (*Polynomial, error) {
	if err := sameOrder(p, q); err != nil {
		return nil, err
	}
	if p.IsZero() || q.IsZero() {
		return Zero(p.R, p.Ord), nil
	}
	mgr := termaddition.Global()
	ctx := mgr.Acquire(monomial.Global(), p.R, p.Ord, productSizeHint(len(p.Terms), len(q.Terms)))
	defer mgr.Release(ctx)
	for _, a := range p.Terms {
		for _, b := range q.Terms {
			prod, err := term.Mul(p.R, monomial.Global(), a, b)
			if err != nil {
				return nil, err
			}
			ctx.AddTerm(prod, false, false)
		}
	}
	out := ctx.ReadTerms()
	return &Polynomial{R: p.R, Ord: p.Ord, Terms: out, FullyOrdered: true}, nil
}

// MulScalar returns c*p.
func (p *Polynomial) MulScalar(c ring.Elem) *Polynomial {
	if p.R.IsZero(c) {
		return Zero(p.R, p.Ord)
	}
	out := make([]term.Term, 0, len(p.Terms))
	for _, t := range p.Terms {
		nc := p.R.Mul(c, t.Coeff)
		if !p.R.IsZero(nc) {
			out = append(out, term.Term{Coeff: nc, Mono: t.Mono})
		}
	}
	return &Polynomial{R: p.R, Ord: p.Ord, Terms: out, FullyOrdered: p.FullyOrdered}
}

// Equal reports structural equality: same ring values, same monomial ids,
// independent of term-vector order.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if len(p.Terms) != len(q.Terms) {
		return false
	}
	byID := make(map[int64]ring.Elem, len(p.Terms))
	for _, t := range p.Terms {
		byID[monoID(t.Mono)] = t.Coeff
	}
	for _, t := range q.Terms {
		c, ok := byID[monoID(t.Mono)]
		if !ok || !p.R.Equal(c, t.Coeff) {
			return false
		}
	}
	return true
}

// MakeFullyOrdered sorts p's term vector ascending under p.Ord, setting
// FullyOrdered to true.
func (p *Polynomial) MakeFullyOrdered() {
	if p.FullyOrdered {
		return
	}
	sort.Slice(p.Terms, func(i, j int) bool { return compare(p.Terms[i], p.Terms[j], p.Ord) < 0 })
	p.FullyOrdered = true
}

func (p *Polynomial) String() string {
	if p.IsZero() {
		return "0"
	}
	parts := make([]string, len(p.Terms))
	for i, t := range p.Terms {
		parts[i] = t.String(p.R)
	}
	return strings.Join(parts, " + ")
}
