package uvpoly

import (
	"fmt"

	"github.com/polyalg/kernel/mvpoly"
	"github.com/polyalg/kernel/order"
	"github.com/polyalg/kernel/ring"
)

// CoeffRing adapts mvpoly.Polynomial (under a fixed base ring and
// ordering) into a ring.Ring, so that a Polynomial here can itself serve
// as the *coefficient* of an outer univariate polynomial: promoting one
// variable of a multivariate polynomial to "main" and treating everything
// else as a coefficient drawn from this ring is exactly how multivariate
// GCD and resultant computations reduce to the univariate case (algebra
// package). Using ring.Elem = any rather than a generic constraint is what
// makes this legal: mvpoly.Polynomial lives in a different package and
// cannot implement an unexported marker method.
type CoeffRing struct {
	Base ring.Ring
	Ord  order.Ordering
}

func asPoly(a ring.Elem) *mvpoly.Polynomial {
	p, ok := a.(*mvpoly.Polynomial)
	if !ok {
		panic(fmt.Sprintf("uvpoly: CoeffRing: not an mvpoly.Polynomial element: %T", a))
	}
	return p
}

func (c CoeffRing) Zero() ring.Elem { return mvpoly.Zero(c.Base, c.Ord) }
func (c CoeffRing) One() ring.Elem  { return mvpoly.FromConstant(c.Base, c.Ord, c.Base.One()) }

func (c CoeffRing) Add(a, b ring.Elem) ring.Elem {
	r, err := asPoly(a).Add(asPoly(b))
	if err != nil {
		panic(err)
	}
	return r
}

func (c CoeffRing) Neg(a ring.Elem) ring.Elem {
	return asPoly(a).Neg()
}

func (c CoeffRing) Mul(a, b ring.Elem) ring.Elem {
	r, err := asPoly(a).Mul(asPoly(b))
	if err != nil {
		panic(err)
	}
	return r
}

func (c CoeffRing) IsZero(a ring.Elem) bool { return asPoly(a).IsZero() }

func (c CoeffRing) Equal(a, b ring.Elem) bool { return asPoly(a).Equal(asPoly(b)) }

func (c CoeffRing) FromInt64(n int64) ring.Elem {
	return mvpoly.FromConstant(c.Base, c.Ord, c.Base.FromInt64(n))
}

func (c CoeffRing) String(a ring.Elem) string { return asPoly(a).String() }

// QuoRem implements ring.EuclideanDomain for CoeffRing when the
// coefficients happen to divide exactly (the common case feeding the
// multivariate GCD's pseudo-division steps); it reports a zero-valued
// remainder sentinel's IsZero() as false whenever the underlying mvpoly
// division is inexact, rather than panicking, since GCD code probes this.
func (c CoeffRing) QuoRem(a, b ring.Elem) (ring.Elem, ring.Elem) {
	q, r, err := asPoly(a).QuoRem(asPoly(b))
	if err != nil {
		panic(err)
	}
	return q, r
}

// GCD is not implemented generically over arbitrary polynomial
// coefficients (it requires the full multivariate GCD algorithm, hosted
// in the algebra package to avoid an import cycle); calling it panics.
// algebra.GCD should be used directly instead of going through this
// adapter's EuclideanDomain capability for coefficient GCDs.
func (c CoeffRing) GCD(a, b ring.Elem) ring.Elem {
	panic("uvpoly: CoeffRing.GCD is not implemented; use the algebra package's multivariate GCD directly")
}
