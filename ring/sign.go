package ring

// Sign is the tri-state sign returned by Ordered.SignOf and used by the
// root-bound, root-isolation, sum-of-squares and sign-variation code,
// adapted from carl's Sign type (carl/core/Sign.h, carl/core/Sign.cpp in
// original_source).
type Sign int8

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

// SignOfInt returns the Sign of an int.
func SignOfInt(n int) Sign {
	switch {
	case n < 0:
		return Negative
	case n > 0:
		return Positive
	default:
		return Zero
	}
}

// Mul implements the sign multiplication table.
func (s Sign) Mul(o Sign) Sign {
	return Sign(int8(s) * int8(o))
}

// Negate flips the sign.
func (s Sign) Negate() Sign {
	return Sign(-int8(s))
}

func (s Sign) String() string {
	switch s {
	case Negative:
		return "-"
	case Positive:
		return "+"
	default:
		return "0"
	}
}
