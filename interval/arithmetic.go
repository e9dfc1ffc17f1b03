package interval

import "github.com/polyalg/kernel/ring"

// join applies spec.md §4.6's bound-type lattice: infty absorbs, strict
// dominates weak, weak*weak = weak.
func join(a, b BoundType) BoundType {
	if a == Infty || b == Infty {
		return Infty
	}
	if a == Strict || b == Strict {
		return Strict
	}
	return Weak
}

// Add returns the sum i + j, propagating endpoints with the bound-type
// lattice join.
func Add(i, j *Interval) *Interval {
	if i.IsEmpty() || j.IsEmpty() {
		return Empty(i.R)
	}
	r := i.R
	loType, hiType := join(i.LoType, j.LoType), join(i.HiType, j.HiType)
	lo, hi := r.Zero(), r.Zero()
	if loType != Infty {
		lo = r.Add(i.Lo, j.Lo)
	}
	if hiType != Infty {
		hi = r.Add(i.Hi, j.Hi)
	}
	return newChecked(r, lo, loType, hi, hiType)
}

// Neg returns -i: endpoints swap position and sign, and their bound types
// swap along with them (the old upper bound becomes the new, negated
// lower bound).
func Neg(i *Interval) *Interval {
	r := i.R
	if i.IsEmpty() {
		return Empty(r)
	}
	newLo, newHi := r.Zero(), r.Zero()
	if i.HiType != Infty {
		newLo = r.Neg(i.Hi)
	}
	if i.LoType != Infty {
		newHi = r.Neg(i.Lo)
	}
	return newChecked(r, newLo, i.HiType, newHi, i.LoType)
}

// Sub returns i - j.
func Sub(i, j *Interval) *Interval {
	return Add(i, Neg(j))
}

// signClass classifies an interval as entirely non-positive (-1), entirely
// non-negative (1), or straddling zero (0) - the three-way split spec.md
// §4.6 calls the "sign/containment split", giving 3x3=9 product cases.
func signClass(r ring.Ordered, i *Interval) int {
	zero := r.(ring.Ring).Zero()
	hiNonPos := i.HiType != Infty && r.Cmp(i.Hi, zero) <= 0
	loNonNeg := i.LoType != Infty && r.Cmp(i.Lo, zero) >= 0
	switch {
	case hiNonPos:
		return -1
	case loNonNeg:
		return 1
	default:
		return 0
	}
}

// mulCorner multiplies a single pair of endpoints, propagating Infty
// conservatively (a sound, not necessarily tight, enclosure of the
// 0*unbounded edge case) whenever either factor is itself unbounded.
func mulCorner(r OrderedField, aVal ring.Elem, aType BoundType, bVal ring.Elem, bType BoundType) (ring.Elem, BoundType) {
	if aType == Infty || bType == Infty {
		return r.Zero(), Infty
	}
	return r.Mul(aVal, bVal), join(aType, bType)
}

func pickLower(r OrderedField, v1 ring.Elem, t1 BoundType, v2 ring.Elem, t2 BoundType) (ring.Elem, BoundType) {
	if t1 == Infty || t2 == Infty {
		return r.Zero(), Infty
	}
	if r.Cmp(v1, v2) <= 0 {
		return v1, t1
	}
	return v2, t2
}

func pickUpper(r OrderedField, v1 ring.Elem, t1 BoundType, v2 ring.Elem, t2 BoundType) (ring.Elem, BoundType) {
	if t1 == Infty || t2 == Infty {
		return r.Zero(), Infty
	}
	if r.Cmp(v1, v2) >= 0 {
		return v1, t1
	}
	return v2, t2
}

// Mul returns i * j via the nine-case sign/containment split of spec.md
// §4.6: each operand is classified as entirely non-positive, entirely
// non-negative, or straddling zero, and the product's endpoints are read
// off the corresponding pair of input corners.
func Mul(i, j *Interval) *Interval {
	r := i.R
	if i.IsEmpty() || j.IsEmpty() {
		return Empty(r)
	}
	ci, cj := signClass(r, i), signClass(r, j)
	var loVal, hiVal ring.Elem
	var loType, hiType BoundType
	switch {
	case ci == 1 && cj == 1:
		loVal, loType = mulCorner(r, i.Lo, i.LoType, j.Lo, j.LoType)
		hiVal, hiType = mulCorner(r, i.Hi, i.HiType, j.Hi, j.HiType)
	case ci == 1 && cj == -1:
		loVal, loType = mulCorner(r, i.Hi, i.HiType, j.Lo, j.LoType)
		hiVal, hiType = mulCorner(r, i.Lo, i.LoType, j.Hi, j.HiType)
	case ci == -1 && cj == 1:
		loVal, loType = mulCorner(r, i.Lo, i.LoType, j.Hi, j.HiType)
		hiVal, hiType = mulCorner(r, i.Hi, i.HiType, j.Lo, j.LoType)
	case ci == -1 && cj == -1:
		loVal, loType = mulCorner(r, i.Hi, i.HiType, j.Hi, j.HiType)
		hiVal, hiType = mulCorner(r, i.Lo, i.LoType, j.Lo, j.LoType)
	case ci == 1 && cj == 0:
		loVal, loType = mulCorner(r, i.Hi, i.HiType, j.Lo, j.LoType)
		hiVal, hiType = mulCorner(r, i.Hi, i.HiType, j.Hi, j.HiType)
	case ci == 0 && cj == 1:
		loVal, loType = mulCorner(r, i.Lo, i.LoType, j.Hi, j.HiType)
		hiVal, hiType = mulCorner(r, i.Hi, i.HiType, j.Hi, j.HiType)
	case ci == -1 && cj == 0:
		loVal, loType = mulCorner(r, i.Lo, i.LoType, j.Hi, j.HiType)
		hiVal, hiType = mulCorner(r, i.Lo, i.LoType, j.Lo, j.LoType)
	case ci == 0 && cj == -1:
		loVal, loType = mulCorner(r, i.Hi, i.HiType, j.Lo, j.LoType)
		hiVal, hiType = mulCorner(r, i.Lo, i.LoType, j.Lo, j.LoType)
	default: // both straddle zero
		lo1, lt1 := mulCorner(r, i.Lo, i.LoType, j.Hi, j.HiType)
		lo2, lt2 := mulCorner(r, i.Hi, i.HiType, j.Lo, j.LoType)
		loVal, loType = pickLower(r, lo1, lt1, lo2, lt2)
		hi1, ht1 := mulCorner(r, i.Lo, i.LoType, j.Lo, j.LoType)
		hi2, ht2 := mulCorner(r, i.Hi, i.HiType, j.Hi, j.HiType)
		hiVal, hiType = pickUpper(r, hi1, ht1, hi2, ht2)
	}
	return newChecked(r, loVal, loType, hiVal, hiType)
}

// Square returns i*i, keeping 0 as the (weak) lower endpoint whenever i
// straddles zero, per spec.md §4.6's special case.
func Square(i *Interval) *Interval {
	r := i.R
	if i.IsEmpty() {
		return Empty(r)
	}
	switch signClass(r, i) {
	case 1:
		lo, lt := mulCorner(r, i.Lo, i.LoType, i.Lo, i.LoType)
		hi, ht := mulCorner(r, i.Hi, i.HiType, i.Hi, i.HiType)
		return newChecked(r, lo, lt, hi, ht)
	case -1:
		lo, lt := mulCorner(r, i.Hi, i.HiType, i.Hi, i.HiType)
		hi, ht := mulCorner(r, i.Lo, i.LoType, i.Lo, i.LoType)
		return newChecked(r, lo, lt, hi, ht)
	default:
		sqLo, ltLo := mulCorner(r, i.Lo, i.LoType, i.Lo, i.LoType)
		sqHi, ltHi := mulCorner(r, i.Hi, i.HiType, i.Hi, i.HiType)
		hi, ht := pickUpper(r, sqLo, ltLo, sqHi, ltHi)
		return newChecked(r, r.Zero(), Weak, hi, ht)
	}
}
