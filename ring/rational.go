package ring

import (
	"fmt"
	"math"
	"math/big"
)

// RationalField is the arbitrary-precision rational coefficient field (Q),
// backed by math/big.Rat. As with IntegerRing, no pack dependency offers
// exact rational arithmetic (shopspring/decimal is base-10 fixed-scale and
// cannot represent 1/3 exactly); math/big is the correct, justified stdlib
// choice here. See DESIGN.md.
type RationalField struct{}

// Q is the singleton rational field.
var Q Ring = RationalField{}

// QOrdered is Q viewed through the Ordered capability.
var QOrdered Ordered = RationalField{}

// QField is Q viewed through the Field capability.
var QField Field = RationalField{}

// QRational is Q viewed through the RationalCapable capability.
var QRational RationalCapable = RationalField{}

func asRat(a Elem) *big.Rat {
	switch v := a.(type) {
	case *big.Rat:
		return v
	case *big.Int:
		return new(big.Rat).SetInt(v)
	case int64:
		return new(big.Rat).SetInt64(v)
	default:
		panic(fmt.Sprintf("ring: RationalField: not a rational element: %T", a))
	}
}

// NewRat wraps a/b as an Elem of Q.
func NewRat(a, b int64) Elem { return big.NewRat(a, b) }

func (RationalField) Zero() Elem { return new(big.Rat) }
func (RationalField) One() Elem  { return big.NewRat(1, 1) }

func (RationalField) Add(a, b Elem) Elem {
	return new(big.Rat).Add(asRat(a), asRat(b))
}

func (RationalField) Neg(a Elem) Elem {
	return new(big.Rat).Neg(asRat(a))
}

func (RationalField) Mul(a, b Elem) Elem {
	return new(big.Rat).Mul(asRat(a), asRat(b))
}

func (RationalField) IsZero(a Elem) bool {
	return asRat(a).Sign() == 0
}

func (RationalField) Equal(a, b Elem) bool {
	return asRat(a).Cmp(asRat(b)) == 0
}

func (RationalField) FromInt64(n int64) Elem { return big.NewRat(n, 1) }

func (RationalField) String(a Elem) string { return asRat(a).RatString() }

func (RationalField) Cmp(a, b Elem) int { return asRat(a).Cmp(asRat(b)) }

func (RationalField) SignOf(a Elem) Sign { return SignOfInt(asRat(a).Sign()) }

// Div returns a/b and true, or (nil, false) if b is zero.
func (RationalField) Div(a, b Elem) (Elem, bool) {
	bb := asRat(b)
	if bb.Sign() == 0 {
		return nil, false
	}
	return new(big.Rat).Quo(asRat(a), bb), true
}

// Inv returns 1/a and true, or (nil, false) if a is zero.
func (RationalField) Inv(a Elem) (Elem, bool) {
	aa := asRat(a)
	if aa.Sign() == 0 {
		return nil, false
	}
	return new(big.Rat).Inv(aa), true
}

// Numerator returns the numerator of a, as an element of Z embedded in Q.
func (RationalField) Numerator(a Elem) Elem {
	return new(big.Rat).SetInt(asRat(a).Num())
}

// Denominator returns the (always positive) denominator of a, as an
// element of Z embedded in Q.
func (RationalField) Denominator(a Elem) Elem {
	return new(big.Rat).SetInt(asRat(a).Denom())
}

// RationalizeFloat converts a finite float64 to an exact rational.
func (RationalField) RationalizeFloat(f float64) (Elem, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("ring: RationalizeFloat: %v is not finite", f)
	}
	r := new(big.Rat)
	r.SetFloat64(f)
	return r, nil
}
