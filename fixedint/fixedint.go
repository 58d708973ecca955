// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package fixedint

import (
	"fmt"
	"math/bits"
)

const (
	WORD_BITS = 64 // Bits per storage word.
)

// Int is a two's complement integer of a fixed number of bits.
//
// Bits are packed least-significant first into 64-bit words. Storage bits
// above the width are always zero, so two Ints holding the same value are
// deeply equal.
type Int struct {
	width int
	words []uint64
}

func wordsFor(width int) int {
	return (width + WORD_BITS - 1) / WORD_BITS
}

// topMask is the mask of valid bits in the most-significant word.
func topMask(width int) uint64 {
	rem := width % WORD_BITS
	if rem == 0 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(rem)) - 1
}

func (x *Int) normalize() {
	x.words[len(x.words)-1] &= topMask(x.width)
}

// Zero creates a zeroed integer of the given width.
func Zero(width int) Int {
	if width < 1 {
		panic(fmt.Sprintf("fixedint: invalid width %d", width))
	}

	return Int{
		width: width,
		words: make([]uint64, wordsFor(width)),
	}
}

// One creates an integer of the given width with only the least-significant
// bit set.
func One(width int) (x Int) {
	x = Zero(width)
	x.words[0] = 1
	return
}

// FromBits creates an integer from a slice of bits, least-significant first.
func FromBits(b []bool) (x Int) {
	x = Zero(len(b))
	for n, bit := range b {
		if bit {
			x.setBit(n)
		}
	}
	return
}

// FromUint64 takes the width least-significant bits of value.
func FromUint64(value uint64, width int) (x Int) {
	x = Zero(width)
	x.words[0] = value
	x.normalize()
	return
}

// FromInt64 creates an integer holding value sign-extended to width, then
// truncated to it.
func FromInt64(value int64, width int) (x Int) {
	x = Zero(width)
	x.words[0] = uint64(value)
	if value < 0 {
		for n := 1; n < len(x.words); n++ {
			x.words[n] = ^uint64(0)
		}
	}
	x.normalize()
	return
}

// Width returns the number of bits in the integer.
func (x Int) Width() int {
	return x.width
}

func (x Int) checkIndex(index int) {
	if index < 0 || index >= x.width {
		panic(fmt.Sprintf("fixedint: bit %d out of range for width %d", index, x.width))
	}
}

// Bit returns a single bit, where 0 is the least-significant.
func (x Int) Bit(index int) bool {
	x.checkIndex(index)
	return (x.words[index/WORD_BITS]>>uint(index%WORD_BITS))&1 == 1
}

// setBit sets a bit in place. Only used on freshly allocated scratch values.
func (x *Int) setBit(index int) {
	x.checkIndex(index)
	x.words[index/WORD_BITS] |= uint64(1) << uint(index%WORD_BITS)
}

// Bits returns a copy of the bits, least-significant first.
func (x Int) Bits() (b []bool) {
	b = make([]bool, x.width)
	for n := range b {
		b[n] = x.Bit(n)
	}
	return
}

// Uint64 returns the low 64 bits of the integer.
func (x Int) Uint64() uint64 {
	return x.words[0]
}

// Int64 returns the low 64 bits of the integer, sign-extended from the
// width when the width is less than 64 bits.
func (x Int) Int64() int64 {
	value := x.words[0]
	if x.width < WORD_BITS && x.IsNegative() {
		value |= ^topMask(x.width)
	}
	return int64(value)
}

func (x Int) clone() Int {
	return Int{
		width: x.width,
		words: append([]uint64(nil), x.words...),
	}
}

func (x Int) validateWidth(other Int) {
	if x.width != other.width {
		panic(fmt.Sprintf("fixedint: cannot operate on differently-sized integers (%d and %d bits)", x.width, other.width))
	}
}

// IsZero returns true if no bits are set.
func (x Int) IsZero() bool {
	for _, word := range x.words {
		if word != 0 {
			return false
		}
	}
	return true
}

// IsNegative tests the most-significant bit. Only meaningful when the
// integer is being treated as signed.
func (x Int) IsNegative() bool {
	return x.Bit(x.width - 1)
}

// IsLargestPossibleNegative returns true when only the most-significant bit
// is set; the one signed value whose negation does not fit in the width.
func (x Int) IsLargestPossibleNegative() bool {
	if !x.IsNegative() {
		return false
	}
	return bits.OnesCount64(x.words[len(x.words)-1]) == 1 && x.lowWordsZero()
}

func (x Int) lowWordsZero() bool {
	for _, word := range x.words[:len(x.words)-1] {
		if word != 0 {
			return false
		}
	}
	return true
}

// Equals returns true when both integers hold the same bits.
func (x Int) Equals(other Int) bool {
	x.validateWidth(other)
	for n := range x.words {
		if x.words[n] != other.words[n] {
			return false
		}
	}
	return true
}

// UnsignedGreaterThan returns true when x is strictly greater than other,
// treating both as unsigned.
func (x Int) UnsignedGreaterThan(other Int) bool {
	x.validateWidth(other)
	for n := len(x.words) - 1; n >= 0; n-- {
		if x.words[n] != other.words[n] {
			return x.words[n] > other.words[n]
		}
	}
	return false
}

// String renders the integer as a sized hexadecimal literal, e.g. 8'hFF.
func (x Int) String() string {
	return fmt.Sprintf("%d'h%s", x.width, x.UnsignedHexString())
}
