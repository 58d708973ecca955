package fixedint

import (
	"fmt"
	"math/bits"
)

// SignExtend returns a copy extended to width bits by repeating the
// most-significant bit.
func (x Int) SignExtend(width int) (r Int) {
	r = x.ZeroExtend(width)
	if x.IsNegative() {
		for n := x.width; n < width; n++ {
			r.setBit(n)
		}
	}
	return
}

// ZeroExtend returns a copy extended to width bits with zeros.
func (x Int) ZeroExtend(width int) (r Int) {
	if width < x.width {
		panic(fmt.Sprintf("fixedint: cannot extend %d bits to %d bits", x.width, width))
	}

	r = Zero(width)
	copy(r.words, x.words)
	return
}

// Extend sign-extends when signed is set, and zero-extends otherwise.
func (x Int) Extend(width int, signed bool) Int {
	if signed {
		return x.SignExtend(width)
	}
	return x.ZeroExtend(width)
}

// Shrink drops most-significant bits to reduce the integer to width bits.
//
// The counts of dropped zero bits and dropped one bits are returned with the
// truncated integer; every overflow rule is phrased in terms of them.
func (x Int) Shrink(width int) (r Int, zeros int, ones int) {
	if width > x.width {
		panic(fmt.Sprintf("fixedint: cannot shrink %d bits to %d bits", x.width, width))
	}

	for n := width; n < x.width; n++ {
		if x.Bit(n) {
			ones++
		} else {
			zeros++
		}
	}

	r = Zero(width)
	copy(r.words, x.words)
	r.normalize()
	return
}

// Invert returns a copy with every bit flipped.
func (x Int) Invert() (r Int) {
	r = Zero(x.width)
	for n, word := range x.words {
		r.words[n] = ^word
	}
	r.normalize()
	return
}

// Negate returns the two's complement negation of the integer.
//
// ok is false for the largest possible negative value, whose negation cannot
// be represented in the same width.
func (x Int) Negate() (r Int, ok bool) {
	if x.IsLargestPossibleNegative() {
		return
	}

	// Inverting zero gives all ones, and the add would carry out.
	if x.IsZero() {
		return x.clone(), true
	}

	r, over := x.Invert().Add(One(x.width), false)
	if over {
		panic(fmt.Sprintf("fixedint: unexpected overflow negating %v", x))
	}

	return r, true
}

// Abs returns the magnitude of a signed integer. ok is false for the largest
// possible negative value.
func (x Int) Abs() (r Int, ok bool) {
	if x.IsNegative() {
		return x.Negate()
	}
	return x.clone(), true
}

// shiftLeft shifts towards the most-significant end by count bits. lost is
// set if any one bits were shifted out.
func (x Int) shiftLeft(count int) (r Int, lost bool) {
	r = Zero(x.width)
	if count >= x.width {
		lost = !x.IsZero()
		return
	}

	for n := x.width - count; n < x.width; n++ {
		if x.Bit(n) {
			lost = true
			break
		}
	}

	word_shift, bit_shift := count/WORD_BITS, uint(count%WORD_BITS)
	for n := len(x.words) - 1; n >= word_shift; n-- {
		value := x.words[n-word_shift] << bit_shift
		if bit_shift != 0 && n-word_shift-1 >= 0 {
			value |= x.words[n-word_shift-1] >> (WORD_BITS - bit_shift)
		}
		r.words[n] = value
	}
	r.normalize()

	return
}

// overflowTop reports whether any storage bits above the width are set, then
// clears them.
func (x *Int) overflowTop() (overflow bool) {
	last := len(x.words) - 1
	overflow = x.words[last]&^topMask(x.width) != 0
	x.normalize()
	return
}

// mulSmall multiplies by a single-word constant.
func (x Int) mulSmall(k uint64) (r Int, overflow bool) {
	r = Zero(x.width)

	var carry uint64
	for n, word := range x.words {
		hi, lo := bits.Mul64(word, k)
		var c uint64
		r.words[n], c = bits.Add64(lo, carry, 0)
		carry = hi + c
	}

	overflow = r.overflowTop() || carry != 0
	return
}

// addSmall adds a single-word constant, which need not fit in the width.
func (x Int) addSmall(k uint64) (r Int, overflow bool) {
	r = x.clone()

	carry := k
	for n := range r.words {
		if carry == 0 {
			break
		}
		r.words[n], carry = bits.Add64(r.words[n], carry, 0)
	}

	overflow = r.overflowTop() || carry != 0
	return
}
