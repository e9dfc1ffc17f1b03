// Package mathutil collects the small integer helpers used by the variable
// registry's id allocator, the bit-vector's word estimate, the
// root-isolation pivot count and mvpoly's product size hint. It is adapted
// from the overflow-checked integer helpers erigon-lib/common/math carries
// for gas accounting (SafeAdd/SafeMul/CeilDiv), repurposed here for
// those bounds instead of EVM gas math.
package mathutil

import "math/bits"

// CeilDiv returns ceil(x/y), or 0 if y is 0. Used by the bit-vector's
// WordEstimate to report a size in 32-bit words; the bitmap's own storage
// is not sized by it.
func CeilDiv(x, y int) int {
	if y == 0 {
		return 0
	}
	return (x + y - 1) / y
}

// SafeAddUint64 returns x+y and reports whether the addition overflowed.
func SafeAddUint64(x, y uint64) (uint64, bool) {
	sum, carry := bits.Add64(x, y, 0)
	return sum, carry != 0
}

// SafeMulUint64 returns x*y and reports whether the multiplication overflowed.
func SafeMulUint64(x, y uint64) (uint64, bool) {
	hi, lo := bits.Mul64(x, y)
	return lo, hi != 0
}

// MaxInt returns the larger of x and y.
func MaxInt(x, y int) int {
	if x > y {
		return x
	}
	return y
}

// MinInt returns the smaller of x and y.
func MinInt(x, y int) int {
	if x < y {
		return x
	}
	return y
}
