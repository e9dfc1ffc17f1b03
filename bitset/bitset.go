// Package bitset implements the bit-vector (C12) used to carry provenance
// ("reasons") alongside polynomials. It is backed by a compressed Roaring
// bitmap (github.com/RoaringBitmap/roaring/v2) rather than a hand-rolled
// word array: Roaring already gives lazy growth, union, intersection,
// subset test and ordered iteration, which is exactly C12's contract.
package bitset

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/polyalg/kernel/internal/mathutil"
)

// BitSet is a growable set of non-negative integer bit positions.
type BitSet struct {
	bits *roaring.Bitmap
}

// New returns an empty bit-vector.
func New() *BitSet {
	return &BitSet{bits: roaring.New()}
}

// Of returns a bit-vector with exactly the given positions set.
func Of(positions ...uint32) *BitSet {
	b := New()
	for _, p := range positions {
		b.Set(p)
	}
	return b
}

// Set sets bit i, growing storage lazily as needed.
func (b *BitSet) Set(i uint32) {
	b.bits.Add(i)
}

// Clear unsets bit i.
func (b *BitSet) Clear(i uint32) {
	b.bits.Remove(i)
}

// Get reports whether bit i is set.
func (b *BitSet) Get(i uint32) bool {
	return b.bits.Contains(i)
}

// Empty reports whether no bit is set.
func (b *BitSet) Empty() bool {
	return b.bits.IsEmpty()
}

// Len returns the number of set bits.
func (b *BitSet) Len() int {
	return int(b.bits.GetCardinality())
}

// FirstSetBit returns the lowest set bit position, or (0, false) if empty.
func (b *BitSet) FirstSetBit() (uint32, bool) {
	if b.bits.IsEmpty() {
		return 0, false
	}
	it := b.bits.Iterator()
	return it.Next(), true
}

// Union returns a new bit-vector holding the logical union of b and other.
func (b *BitSet) Union(other *BitSet) *BitSet {
	return &BitSet{bits: roaring.Or(b.bits, other.bits)}
}

// UnionInPlace mutates b to be the union of b and other.
func (b *BitSet) UnionInPlace(other *BitSet) {
	b.bits.Or(other.bits)
}

// Intersection returns a new bit-vector holding the logical intersection.
func (b *BitSet) Intersection(other *BitSet) *BitSet {
	return &BitSet{bits: roaring.And(b.bits, other.bits)}
}

// Equal reports whether b and other contain exactly the same bits.
func (b *BitSet) Equal(other *BitSet) bool {
	return b.bits.Equals(other.bits)
}

// IsSubsetOf reports whether every bit set in b is also set in other.
func (b *BitSet) IsSubsetOf(other *BitSet) bool {
	return b.bits.AndCardinality(other.bits) == b.bits.GetCardinality()
}

// Iterate calls fn for every set bit in ascending order, stopping early if
// fn returns false.
func (b *BitSet) Iterate(fn func(uint32) bool) {
	it := b.bits.Iterator()
	for it.HasNext() {
		if !fn(it.Next()) {
			return
		}
	}
}

// WordEstimate reports how many 32-bit words spec.md's §4.7 reference
// growth rule (lazy extension to ceil((i+1)/32) words) would need to cover
// b's highest set bit. Roaring's own container layout does not actually
// allocate this way, so the figure is diagnostic only - it lets callers
// compare provenance-bitset density against the naive word-array baseline
// the spec describes.
func (b *BitSet) WordEstimate() int {
	top, ok := b.topBit()
	if !ok {
		return 0
	}
	return mathutil.CeilDiv(int(top)+1, 32)
}

func (b *BitSet) topBit() (uint32, bool) {
	if b.bits.IsEmpty() {
		return 0, false
	}
	var top uint32
	it := b.bits.Iterator()
	for it.HasNext() {
		top = it.Next()
	}
	return top, true
}

// Clone returns an independent copy of b.
func (b *BitSet) Clone() *BitSet {
	return &BitSet{bits: b.bits.Clone()}
}

// String renders b as "{i,j,k}".
func (b *BitSet) String() string {
	return b.bits.String()
}
