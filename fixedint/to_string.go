package fixedint

import (
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// UnsignedDecimalString formats the integer in decimal, treating it as
// unsigned.
//
// Bits are consumed most-significant first; for each bit the decimal digit
// array is doubled and the bit added in.
func (x Int) UnsignedDecimalString() string {
	// log10(2) < 1/3, so width/3+1 digits always suffice.
	digits := make([]uint8, x.width/3+1)

	for n := x.width - 1; n >= 0; n-- {
		var carry uint8
		if x.Bit(n) {
			carry = 1
		}
		for d := range digits {
			value := digits[d]*2 + carry
			digits[d], carry = value%10, value/10
		}
	}

	var sb strings.Builder
	for d := len(digits) - 1; d >= 0; d-- {
		if sb.Len() == 0 && digits[d] == 0 {
			continue
		}
		sb.WriteByte('0' + digits[d])
	}

	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// nibble returns the 4-bit group at the given nibble index.
func (x Int) nibble(index int) uint64 {
	offset := index * 4
	return (x.words[offset/WORD_BITS] >> uint(offset%WORD_BITS)) & 0xf
}

// UnsignedHexString formats the integer in upper case hexadecimal, treating
// it as unsigned.
func (x Int) UnsignedHexString() string {
	var sb strings.Builder
	for n := (x.width+3)/4 - 1; n >= 0; n-- {
		value := x.nibble(n)
		if sb.Len() == 0 && value == 0 {
			continue
		}
		sb.WriteByte(hexDigits[value])
	}

	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// UnsignedBinaryString formats the integer in binary, treating it as
// unsigned.
func (x Int) UnsignedBinaryString() string {
	var sb strings.Builder
	for n := x.width - 1; n >= 0; n-- {
		bit := x.Bit(n)
		if sb.Len() == 0 && !bit {
			continue
		}
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	if sb.Len() == 0 {
		return "0"
	}
	return sb.String()
}

// toSignedString formats the magnitude with an unsigned formatter and
// prefixes a minus sign for negative values.
func (x Int) toSignedString(unsigned func(Int) string) string {
	// One extra bit makes every magnitude representable.
	magnitude, _ := x.SignExtend(x.width + 1).Abs()

	str := unsigned(magnitude)
	if x.IsNegative() {
		str = "-" + str
	}
	return str
}

// SignedDecimalString formats the integer in decimal, treating it as signed.
func (x Int) SignedDecimalString() string {
	return x.toSignedString(Int.UnsignedDecimalString)
}

// SignedHexString formats the integer in hexadecimal, treating it as signed.
func (x Int) SignedHexString() string {
	return x.toSignedString(Int.UnsignedHexString)
}

// SignedBinaryString formats the integer in binary, treating it as signed.
func (x Int) SignedBinaryString() string {
	return x.toSignedString(Int.UnsignedBinaryString)
}
