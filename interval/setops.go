package interval

import (
	"errors"

	"github.com/polyalg/kernel/ring"
)

// ErrDisjointUnion is returned by Union when the two intervals neither
// overlap nor touch, so no single interval represents their union.
var ErrDisjointUnion = errors.New("interval: union of disjoint, non-adjacent intervals is not a single interval")

// ErrInvalidSplit is returned by Split for a non-positive n or a
// division failure.
var ErrInvalidSplit = errors.New("interval: split requires n >= 1 over a field")

// ErrUnboundedSplit is returned by Split when called on an unbounded
// interval.
var ErrUnboundedSplit = errors.New("interval: cannot split an unbounded interval")

// adjacent reports whether two bounds at the same value join into a
// single contiguous set: at least one of them must actually include the
// shared point.
func adjacent(aType, bType BoundType) bool {
	return aType == Weak || bType == Weak
}

// Intersect returns i ∩ j (spec.md §4.6): the tighter of the two lower
// bounds and the tighter of the two upper bounds.
func Intersect(i, j *Interval) *Interval {
	r := i.R
	if i.IsEmpty() || j.IsEmpty() {
		return Empty(r)
	}
	lo, loType := tighterLower(r, i.Lo, i.LoType, j.Lo, j.LoType)
	hi, hiType := tighterUpper(r, i.Hi, i.HiType, j.Hi, j.HiType)
	return newChecked(r, lo, loType, hi, hiType)
}

func tighterLower(r OrderedField, aVal ring.Elem, aType BoundType, bVal ring.Elem, bType BoundType) (ring.Elem, BoundType) {
	if aType == Infty {
		return bVal, bType
	}
	if bType == Infty {
		return aVal, aType
	}
	c := r.Cmp(aVal, bVal)
	switch {
	case c > 0:
		return aVal, aType
	case c < 0:
		return bVal, bType
	default:
		if aType == Strict || bType == Strict {
			return aVal, Strict
		}
		return aVal, Weak
	}
}

func tighterUpper(r OrderedField, aVal ring.Elem, aType BoundType, bVal ring.Elem, bType BoundType) (ring.Elem, BoundType) {
	if aType == Infty {
		return bVal, bType
	}
	if bType == Infty {
		return aVal, aType
	}
	c := r.Cmp(aVal, bVal)
	switch {
	case c < 0:
		return aVal, aType
	case c > 0:
		return bVal, bType
	default:
		if aType == Strict || bType == Strict {
			return aVal, Strict
		}
		return aVal, Weak
	}
}

// Union returns i ∪ j when the two intervals overlap or touch, and an
// error otherwise - spec.md §4.6 restricts Union to the case where the
// result is itself a single interval.
func Union(i, j *Interval) (*Interval, error) {
	r := i.R
	if i.IsEmpty() {
		return j, nil
	}
	if j.IsEmpty() {
		return i, nil
	}
	if !overlapsOrTouches(r, i, j) {
		return nil, ErrDisjointUnion
	}
	lo, loType := looserLower(r, i.Lo, i.LoType, j.Lo, j.LoType)
	hi, hiType := looserUpper(r, i.Hi, i.HiType, j.Hi, j.HiType)
	return newChecked(r, lo, loType, hi, hiType), nil
}

func looserLower(r OrderedField, aVal ring.Elem, aType BoundType, bVal ring.Elem, bType BoundType) (ring.Elem, BoundType) {
	if aType == Infty || bType == Infty {
		return r.Zero(), Infty
	}
	c := r.Cmp(aVal, bVal)
	switch {
	case c < 0:
		return aVal, aType
	case c > 0:
		return bVal, bType
	default:
		if aType == Weak || bType == Weak {
			return aVal, Weak
		}
		return aVal, Strict
	}
}

func looserUpper(r OrderedField, aVal ring.Elem, aType BoundType, bVal ring.Elem, bType BoundType) (ring.Elem, BoundType) {
	if aType == Infty || bType == Infty {
		return r.Zero(), Infty
	}
	c := r.Cmp(aVal, bVal)
	switch {
	case c > 0:
		return aVal, aType
	case c < 0:
		return bVal, bType
	default:
		if aType == Weak || bType == Weak {
			return aVal, Weak
		}
		return aVal, Strict
	}
}

// overlapsOrTouches reports whether i and j share a point or are
// adjacent with at least one shared endpoint weakly included, so their
// union is a single contiguous interval.
func overlapsOrTouches(r OrderedField, i, j *Interval) bool {
	if !Intersect(i, j).IsEmpty() {
		return true
	}
	if i.HiType != Infty && j.LoType != Infty && r.Cmp(i.Hi, j.Lo) == 0 {
		return adjacent(i.HiType, j.LoType)
	}
	if j.HiType != Infty && i.LoType != Infty && r.Cmp(j.Hi, i.Lo) == 0 {
		return adjacent(j.HiType, i.LoType)
	}
	return false
}

// Difference returns i \ j as zero, one, or two disjoint intervals
// (spec.md §4.6: "set-difference returns at most two"): zero when i is
// wholly removed, one when j cuts one end of i or misses it entirely, and
// two when j lies strictly inside i, splitting it into a lower and an
// upper remainder.
func Difference(i, j *Interval) []*Interval {
	r := i.R
	if i.IsEmpty() {
		return nil
	}
	ij := Intersect(i, j)
	if ij.IsEmpty() {
		return []*Interval{i}
	}
	if ij.Equal(i) {
		return nil
	}
	lowerCut := ij.LoType == i.LoType && (i.LoType == Infty || r.Cmp(ij.Lo, i.Lo) == 0)
	upperCut := ij.HiType == i.HiType && (i.HiType == Infty || r.Cmp(ij.Hi, i.Hi) == 0)
	switch {
	case lowerCut && !upperCut:
		return []*Interval{newChecked(r, ij.Hi, flip(ij.HiType), i.Hi, i.HiType)}
	case upperCut && !lowerCut:
		return []*Interval{newChecked(r, i.Lo, i.LoType, ij.Lo, flip(ij.LoType))}
	case lowerCut && upperCut:
		return nil
	default:
		lower := newChecked(r, i.Lo, i.LoType, ij.Lo, flip(ij.LoType))
		upper := newChecked(r, ij.Hi, flip(ij.HiType), i.Hi, i.HiType)
		return []*Interval{lower, upper}
	}
}

func flip(t BoundType) BoundType {
	if t == Strict {
		return Weak
	}
	return Strict
}

// Equal reports whether i and j denote the same set of points.
func (i *Interval) Equal(j *Interval) bool {
	if i.IsEmpty() && j.IsEmpty() {
		return true
	}
	if i.IsEmpty() != j.IsEmpty() {
		return false
	}
	r := i.R
	loEq := i.LoType == j.LoType && (i.LoType == Infty || r.Cmp(i.Lo, j.Lo) == 0)
	hiEq := i.HiType == j.HiType && (i.HiType == Infty || r.Cmp(i.Hi, j.Hi) == 0)
	return loEq && hiEq
}

// Split divides i into n contiguous, weakly-adjoining sub-intervals of
// equal width, for use as search brackets. i must be bounded and n >= 1.
func Split(i *Interval, n int) ([]*Interval, error) {
	if n < 1 {
		return nil, ErrInvalidSplit
	}
	if i.LoType == Infty || i.HiType == Infty {
		return nil, ErrUnboundedSplit
	}
	r := i.R
	if i.IsEmpty() {
		return []*Interval{i}, nil
	}
	width := ring.Sub(r, i.Hi, i.Lo)
	step, ok := r.Div(width, r.FromInt64(int64(n)))
	if !ok {
		return nil, ErrInvalidSplit
	}
	out := make([]*Interval, 0, n)
	cur := i.Lo
	for k := 0; k < n; k++ {
		var next ring.Elem
		loType := i.LoType
		hiType := Strict
		if k > 0 {
			loType = Weak
		}
		if k == n-1 {
			next = i.Hi
			hiType = i.HiType
		} else {
			next = r.Add(cur, step)
		}
		out = append(out, newChecked(r, cur, loType, next, hiType))
		cur = next
	}
	return out, nil
}
