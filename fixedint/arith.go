// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package fixedint

import (
	"fmt"
	"math/bits"
)

// Add adds two integers of the same width.
//
// For unsigned operands overflow is the carry out of the most-significant
// bit. For signed operands overflow is set when two like-signed operands
// produce a result of the other sign.
func (x Int) Add(other Int, signed bool) (result Int, overflow bool) {
	x.validateWidth(other)

	result = Zero(x.width)

	var carry uint64
	for n := range x.words {
		result.words[n], carry = bits.Add64(x.words[n], other.words[n], carry)
	}

	// The carry out of a partial top word lands just above the width.
	if result.overflowTop() {
		carry = 1
	}

	if signed {
		a, b, r := x.IsNegative(), other.IsNegative(), result.IsNegative()
		overflow = (a && b && !r) || (!a && !b && r)
	} else {
		overflow = carry != 0
	}

	return
}

// Subtract dispatches to SubtractSigned or SubtractUnsigned.
func (x Int) Subtract(other Int, signed bool) (result Int, overflow bool) {
	if signed {
		return x.SubtractSigned(other)
	}
	return x.SubtractUnsigned(other)
}

// SubtractUnsigned performs borrow subtraction. underflow is the borrow out
// of the most-significant bit, set when the true result is negative.
func (x Int) SubtractUnsigned(other Int) (result Int, underflow bool) {
	x.validateWidth(other)

	result = Zero(x.width)

	var borrow uint64
	for n := range x.words {
		result.words[n], borrow = bits.Sub64(x.words[n], other.words[n], borrow)
	}
	result.normalize()

	underflow = borrow != 0
	return
}

// SubtractSigned subtracts by adding the negation of other.
//
// The largest possible negative value cannot be negated, so in that case
// x - other is computed as (x + -(other+1)) + 1.
func (x Int) SubtractSigned(other Int) (result Int, overflow bool) {
	x.validateWidth(other)

	negated, ok := other.Negate()
	if ok {
		return x.Add(negated, true)
	}

	// other+1 is never the largest possible negative, and never overflows.
	plus_one, _ := other.Add(One(x.width), true)
	negated, _ = plus_one.Negate()

	partial, over_1 := x.Add(negated, true)
	result, over_2 := partial.Add(One(x.width), true)

	overflow = over_1 || over_2
	return
}

// Multiply performs shift-and-add multiplication at double width, then
// truncates back to the operand width.
func (x Int) Multiply(other Int, signed bool) (result Int, overflow bool) {
	x.validateWidth(other)

	size := x.width * 2
	a_ext := x.Extend(size, signed)
	b_ext := other.Extend(size, signed)

	product := Zero(size)
	for n := range size {
		if !b_ext.Bit(n) {
			continue
		}
		shifted, _ := a_ext.shiftLeft(n)
		var over bool
		product, over = product.Add(shifted, false)
		overflow = overflow || (over && !signed)
	}

	result, cut_zeros, cut_ones := product.Shrink(x.width)
	if !signed {
		if cut_ones > 0 {
			overflow = true
		}
		return
	}

	// Dropping only ones shrinks a negative number, and only zeros a
	// positive one. A mixture changes the value.
	if cut_zeros > 0 && cut_ones > 0 {
		overflow = true
	}

	// Dropping ones must leave a negative number.
	if cut_ones > 0 && !result.IsNegative() {
		overflow = true
	}

	// Same signs give a positive product, different signs a negative one.
	if !result.IsZero() {
		should_be_negative := x.IsNegative() != other.IsNegative()
		if result.IsNegative() != should_be_negative {
			overflow = true
		}
	}

	return
}

// Divide performs truncating division.
//
// Division by zero yields zero with overflow set. Signed division of the
// largest possible negative value by -1 yields the dividend with overflow
// set, as the true quotient does not fit.
func (x Int) Divide(other Int, signed bool) (result Int, overflow bool) {
	x.validateWidth(other)

	if other.IsZero() {
		return Zero(x.width), true
	}

	one := One(x.width)

	// Dividing by one or minus one never needs the long division, which
	// sidesteps negating the largest possible negative.
	if other.Equals(one) {
		return x.clone(), false
	}
	if signed && other.Equals(FromInt64(-1, x.width)) {
		negated, ok := x.Negate()
		if !ok {
			return x.clone(), true
		}
		return negated, false
	}

	var a, b Int
	var negate_result bool
	if signed {
		// One extra bit makes the magnitude of every value representable.
		a, _ = x.SignExtend(x.width + 1).Abs()
		b, _ = other.SignExtend(x.width + 1).Abs()
		negate_result = x.IsNegative() != other.IsNegative()
	} else {
		a = x
		b = other
	}

	quotient := Zero(a.width)
	remainder := Zero(a.width)
	for n := a.width - 1; n >= 0; n-- {
		remainder, _ = remainder.shiftLeft(1)
		if a.Bit(n) {
			remainder.words[0] |= 1
		}

		if !b.UnsignedGreaterThan(remainder) {
			var under bool
			remainder, under = remainder.SubtractUnsigned(b)
			if under {
				panic(fmt.Sprintf("fixedint: unexpected underflow dividing %v by %v", x, other))
			}
			quotient.setBit(n)
		}
	}

	if !signed {
		return quotient, false
	}

	// Drop the guard bit; a sign change means the quotient did not fit.
	sign := quotient.IsNegative()
	quotient, _, _ = quotient.Shrink(x.width)
	overflow = sign != quotient.IsNegative()

	if negate_result {
		negated, ok := quotient.Negate()
		if !ok {
			return quotient, true
		}
		return negated, overflow
	}

	return quotient, overflow
}
