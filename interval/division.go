package interval

import (
	"errors"

	"go.uber.org/zap"

	"github.com/polyalg/kernel/internal/logging"
	"github.com/polyalg/kernel/ring"
)

// ErrDivisionByZero is returned when the divisor is exactly the point {0},
// where no reciprocal interval exists.
var ErrDivisionByZero = errors.New("interval: division by the point interval {0}")

// part is a single sign-homogeneous piece of a divisor interval, always
// kept strictly away from zero at its zero-adjacent end so its reciprocal
// is well defined.
type part struct {
	lo, hi         ring.Elem
	loType, hiType BoundType
}

// splitDivisor decomposes b into at most two zero-free parts (spec.md
// §4.6/§9's extended-division case table): when 0 lies in b's interior,
// b splits into its strictly-negative and strictly-positive halves;
// when 0 is a single touching endpoint, that measure-zero point is
// dropped and the remaining half is returned alone; when b never
// touches zero, b is returned unchanged as its own single part.
func splitDivisor(r OrderedField, b *Interval) ([]part, error) {
	zero := r.Zero()
	loIsZero := b.LoType != Infty && r.Cmp(b.Lo, zero) == 0
	hiIsZero := b.HiType != Infty && r.Cmp(b.Hi, zero) == 0
	loNeg := b.LoType == Infty || r.Cmp(b.Lo, zero) < 0
	hiPos := b.HiType == Infty || r.Cmp(b.Hi, zero) > 0

	switch {
	case loIsZero && hiIsZero:
		return nil, ErrDivisionByZero
	case loNeg && hiPos:
		return []part{
			{lo: b.Lo, loType: b.LoType, hi: zero, hiType: Strict},
			{lo: zero, loType: Strict, hi: b.Hi, hiType: b.HiType},
		}, nil
	case loIsZero:
		return []part{{lo: zero, loType: Strict, hi: b.Hi, hiType: b.HiType}}, nil
	case hiIsZero:
		return []part{{lo: b.Lo, loType: b.LoType, hi: zero, hiType: Strict}}, nil
	default:
		return []part{{lo: b.Lo, loType: b.LoType, hi: b.Hi, hiType: b.HiType}}, nil
	}
}

// isPositivePart reports which side of zero p sits on, preferring
// whichever endpoint is actually finite - a part carved out by
// splitDivisor always has a finite zero-adjacent boundary even when its
// far endpoint is Infty.
func isPositivePart(r OrderedField, p part, zero ring.Elem) bool {
	switch {
	case p.hiType != Infty && r.Cmp(p.hi, zero) == 0:
		return false
	case p.loType != Infty && r.Cmp(p.lo, zero) == 0:
		return true
	case p.loType != Infty:
		return r.Cmp(p.lo, zero) > 0
	default:
		return r.Cmp(p.hi, zero) > 0
	}
}

// reciprocal inverts a single zero-free part. Positive parts (lo >= 0)
// invert to another positive part; negative parts (hi <= 0) invert to
// another negative part; order and bound types swap between the two
// endpoints, and an endpoint sitting exactly at the zero boundary maps
// to an unbounded (Infty) endpoint on the far side.
func reciprocal(r OrderedField, p part) *Interval {
	zero := r.Zero()
	positive := isPositivePart(r, p, zero)
	var newLo, newHi ring.Elem
	var newLoType, newHiType BoundType
	if positive {
		if p.loType != Infty && r.Cmp(p.lo, zero) == 0 {
			newHi, newHiType = zero, Infty
		} else {
			inv, _ := r.Div(r.One(), p.lo)
			newHi, newHiType = inv, p.loType
		}
		if p.hiType == Infty {
			newLo, newLoType = zero, Strict
		} else {
			inv, _ := r.Div(r.One(), p.hi)
			newLo, newLoType = inv, p.hiType
		}
	} else {
		if p.hiType != Infty && r.Cmp(p.hi, zero) == 0 {
			newLo, newLoType = zero, Infty
		} else {
			inv, _ := r.Div(r.One(), p.hi)
			newLo, newLoType = inv, p.hiType
		}
		if p.loType == Infty {
			newHi, newHiType = zero, Strict
		} else {
			inv, _ := r.Div(r.One(), p.lo)
			newHi, newHiType = inv, p.loType
		}
	}
	return newChecked(r, newLo, newLoType, newHi, newHiType)
}

// Div returns the extended quotient a/b (spec.md §4.6): when b does not
// contain zero the result is a single interval; when zero lies strictly
// inside b the quotient is disjoint and Div returns both pieces; Div
// fails only when b is exactly the point {0}.
func Div(a, b *Interval) ([]*Interval, error) {
	return DivWithLogger(a, b, nil)
}

// DivWithLogger behaves like Div, additionally reporting to log which
// branch splitDivisor took - a single zero-free part, or a genuine split
// into two disjoint parts around an interior zero - falling back to a
// no-op logger when log is nil.
func DivWithLogger(a, b *Interval, log *zap.SugaredLogger) ([]*Interval, error) {
	log = logging.OrNoOp(log)
	r := a.R
	if a.IsEmpty() || b.IsEmpty() {
		return []*Interval{Empty(r)}, nil
	}
	parts, err := splitDivisor(r, b)
	if err != nil {
		log.Debugw("interval division failed, divisor is the zero point", "error", err)
		return nil, err
	}
	if len(parts) > 1 {
		log.Debugw("interval division split divisor around an interior zero", "parts", len(parts))
	}
	out := make([]*Interval, 0, len(parts))
	for _, p := range parts {
		out = append(out, Mul(a, reciprocal(r, p)))
	}
	return out, nil
}
