package ring

import (
	"fmt"
	"math/big"
)

// IntegerRing is the arbitrary-precision integer coefficient ring (Z),
// backed by math/big.Int. No library in the retrieval pack offers exact
// arbitrary-precision integer arithmetic with a GCD/QuoRem capability
// surface the way math/big does; see DESIGN.md.
type IntegerRing struct{}

// Z is the singleton integer ring.
var Z Ring = IntegerRing{}

// ZOrdered is Z viewed through the Ordered capability.
var ZOrdered Ordered = IntegerRing{}

// ZEuclidean is Z viewed through the EuclideanDomain capability.
var ZEuclidean EuclideanDomain = IntegerRing{}

func asInt(a Elem) *big.Int {
	switch v := a.(type) {
	case *big.Int:
		return v
	case int64:
		return big.NewInt(v)
	case int:
		return big.NewInt(int64(v))
	default:
		panic(fmt.Sprintf("ring: IntegerRing: not an integer element: %T", a))
	}
}

// NewInt wraps n as an Elem of Z.
func NewInt(n int64) Elem { return big.NewInt(n) }

// NewIntFromBig wraps n as an Elem of Z, taking ownership of n.
func NewIntFromBig(n *big.Int) Elem { return n }

func (IntegerRing) Zero() Elem { return big.NewInt(0) }
func (IntegerRing) One() Elem  { return big.NewInt(1) }

func (IntegerRing) Add(a, b Elem) Elem {
	return new(big.Int).Add(asInt(a), asInt(b))
}

func (IntegerRing) Neg(a Elem) Elem {
	return new(big.Int).Neg(asInt(a))
}

func (IntegerRing) Mul(a, b Elem) Elem {
	return new(big.Int).Mul(asInt(a), asInt(b))
}

func (IntegerRing) IsZero(a Elem) bool {
	return asInt(a).Sign() == 0
}

func (IntegerRing) Equal(a, b Elem) bool {
	return asInt(a).Cmp(asInt(b)) == 0
}

func (IntegerRing) FromInt64(n int64) Elem { return big.NewInt(n) }

func (IntegerRing) String(a Elem) string { return asInt(a).String() }

func (IntegerRing) Cmp(a, b Elem) int { return asInt(a).Cmp(asInt(b)) }

func (IntegerRing) SignOf(a Elem) Sign { return SignOfInt(asInt(a).Sign()) }

// QuoRem returns Euclidean (truncated-toward-zero) quotient and remainder,
// matching math/big.Int.QuoRem, i.e. a = q*b + r with sign(r) == sign(a) or
// r == 0.
func (IntegerRing) QuoRem(a, b Elem) (Elem, Elem) {
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(asInt(a), asInt(b), r)
	return q, r
}

// GCD returns the non-negative GCD of a and b.
func (IntegerRing) GCD(a, b Elem) Elem {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(asInt(a)), new(big.Int).Abs(asInt(b)))
}
