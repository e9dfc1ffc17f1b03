// Package interval implements real interval arithmetic (C10): tagged
// closed/strict/infinite endpoints, arithmetic with the bound-type lattice
// join of spec.md §4.6, extended division by zero-crossing intervals, and
// set-theoretic operations. It is built on ring.Ring the way mvpoly and
// uvpoly are, but every operation additionally requires the coefficient
// ring to be an ordered field (e.g. ring.Q): real interval arithmetic is
// meaningless without a total order and exact division.
package interval

import (
	"errors"
	"fmt"

	"github.com/polyalg/kernel/ring"
)

// BoundType tags how an endpoint participates in set membership.
type BoundType int

const (
	// Strict excludes the endpoint: x < hi or x > lo.
	Strict BoundType = iota
	// Weak includes the endpoint: x <= hi or x >= lo.
	Weak
	// Infty means the endpoint is unbounded; the stored value is
	// irrelevant but kept consistent (spec.md §3).
	Infty
)

func (b BoundType) String() string {
	switch b {
	case Weak:
		return "weak"
	case Infty:
		return "infty"
	default:
		return "strict"
	}
}

// OrderedField is the capability every interval operation requires: exact
// division and a total order, composed from ring.Field and ring.Ordered.
type OrderedField interface {
	ring.Field
	ring.Ordered
}

// ErrNotOrderedField is a domain restriction: interval construction and
// arithmetic require an ordered field of endpoints.
var ErrNotOrderedField = errors.New("interval: requires an ordered field of endpoints")

// Interval is the tuple (lower endpoint, lower bound tag, upper endpoint,
// upper bound tag) of spec.md §3, representing {x | x (lo-relation) Lo AND
// x (hi-relation) Hi}.
type Interval struct {
	R      OrderedField
	Lo     ring.Elem
	LoType BoundType
	Hi     ring.Elem
	HiType BoundType
}

func of(r ring.Ring) (OrderedField, error) {
	f, ok := r.(OrderedField)
	if !ok {
		return nil, ErrNotOrderedField
	}
	return f, nil
}

// New constructs an interval, applying the canonicalization rules of
// spec.md §3: the empty set is represented by a single canonical value
// (endpoints equal, both strict), and any construction with lo > hi, or
// lo == hi with at least one strict bound, is emptied.
func New(r ring.Ring, lo ring.Elem, loType BoundType, hi ring.Elem, hiType BoundType) *Interval {
	f, err := of(r)
	if err != nil {
		panic(err)
	}
	return newChecked(f, lo, loType, hi, hiType)
}

func newChecked(f OrderedField, lo ring.Elem, loType BoundType, hi ring.Elem, hiType BoundType) *Interval {
	if loType != Infty && hiType != Infty {
		c := f.Cmp(lo, hi)
		if c > 0 || (c == 0 && (loType == Strict || hiType == Strict)) {
			return Empty(f)
		}
	}
	if loType == Infty {
		lo = f.Zero()
	}
	if hiType == Infty {
		hi = f.Zero()
	}
	return &Interval{R: f, Lo: lo, LoType: loType, Hi: hi, HiType: hiType}
}

// Empty returns the canonical empty interval.
func Empty(r ring.Ring) *Interval {
	f, err := of(r)
	if err != nil {
		panic(err)
	}
	z := f.Zero()
	return &Interval{R: f, Lo: z, LoType: Strict, Hi: z, HiType: Strict}
}

// Unbounded returns (-INF, INF).
func Unbounded(r ring.Ring) *Interval {
	f, err := of(r)
	if err != nil {
		panic(err)
	}
	z := f.Zero()
	return &Interval{R: f, Lo: z, LoType: Infty, Hi: z, HiType: Infty}
}

// ZeroInterval returns the point interval {0}.
func ZeroInterval(r ring.Ring) *Interval {
	f, err := of(r)
	if err != nil {
		panic(err)
	}
	return Point(f, f.Zero())
}

// Point returns the degenerate interval {x}.
func Point(r ring.Ring, x ring.Elem) *Interval {
	f, err := of(r)
	if err != nil {
		panic(err)
	}
	return &Interval{R: f, Lo: x, LoType: Weak, Hi: x, HiType: Weak}
}

// IsEmpty reports whether i is the canonical empty interval.
func (i *Interval) IsEmpty() bool {
	return i.LoType != Infty && i.HiType != Infty &&
		i.R.Cmp(i.Lo, i.Hi) == 0 && i.LoType == Strict && i.HiType == Strict
}

// IsPoint reports whether i contains exactly one value.
func (i *Interval) IsPoint() bool {
	return i.LoType != Infty && i.HiType != Infty &&
		i.R.Cmp(i.Lo, i.Hi) == 0 && i.LoType == Weak && i.HiType == Weak
}

// IsUnbounded reports whether both endpoints are infinite.
func (i *Interval) IsUnbounded() bool {
	return i.LoType == Infty && i.HiType == Infty
}

func satisfiesLower(r OrderedField, x, lo ring.Elem, t BoundType) bool {
	if t == Infty {
		return true
	}
	c := r.Cmp(x, lo)
	if t == Weak {
		return c >= 0
	}
	return c > 0
}

func satisfiesUpper(r OrderedField, x, hi ring.Elem, t BoundType) bool {
	if t == Infty {
		return true
	}
	c := r.Cmp(x, hi)
	if t == Weak {
		return c <= 0
	}
	return c < 0
}

// Contains reports whether x lies in i.
func (i *Interval) Contains(x ring.Elem) bool {
	if i.IsEmpty() {
		return false
	}
	return satisfiesLower(i.R, x, i.Lo, i.LoType) && satisfiesUpper(i.R, x, i.Hi, i.HiType)
}

// Midpoint returns (Lo+Hi)/2 for a bounded, non-empty interval.
func (i *Interval) Midpoint() (ring.Elem, error) {
	if i.LoType == Infty || i.HiType == Infty {
		return nil, fmt.Errorf("interval: Midpoint undefined on an unbounded interval")
	}
	sum := i.R.Add(i.Lo, i.Hi)
	m, ok := i.R.Div(sum, i.R.FromInt64(2))
	if !ok {
		return nil, fmt.Errorf("interval: Midpoint: division failed")
	}
	return m, nil
}

// Width returns Hi-Lo for a bounded interval.
func (i *Interval) Width() (ring.Elem, error) {
	if i.LoType == Infty || i.HiType == Infty {
		return nil, fmt.Errorf("interval: Width undefined on an unbounded interval")
	}
	return ring.Sub(i.R, i.Hi, i.Lo), nil
}

func (i *Interval) String() string {
	if i.IsEmpty() {
		return "()"
	}
	left := "["
	if i.LoType == Strict {
		left = "("
	}
	right := "]"
	if i.HiType == Strict {
		right = ")"
	}
	loStr := "-INF"
	if i.LoType != Infty {
		loStr = i.R.String(i.Lo)
	}
	hiStr := "INF"
	if i.HiType != Infty {
		hiStr = i.R.String(i.Hi)
	}
	return left + loStr + ", " + hiStr + right
}
