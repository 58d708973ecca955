package fixedint

import (
	"strings"
)

// digitValue maps a digit character to its value in the given radix.
func digitValue(c rune, radix uint64) (value uint64, ok bool) {
	switch {
	case c >= '0' && c <= '9':
		value = uint64(c - '0')
	case c >= 'a' && c <= 'f':
		value = uint64(c-'a') + 10
	case c >= 'A' && c <= 'F':
		value = uint64(c-'A') + 10
	default:
		return
	}

	ok = value < radix
	return
}

// fromUnsignedString accumulates digits left to right, multiplying the
// running value by the radix and adding each digit.
func fromUnsignedString(s string, width int, radix uint64) (result Int, overflow bool, ok bool) {
	result = Zero(width)

	for _, c := range s {
		digit, is_digit := digitValue(c, radix)
		if !is_digit {
			return Int{}, false, false
		}

		var over bool
		result, over = result.mulSmall(radix)
		overflow = overflow || over

		result, over = result.addSmall(digit)
		overflow = overflow || over
	}

	ok = true
	return
}

// fromSignedString strips an optional sign, parses the magnitude as unsigned
// and negates it when required.
func fromSignedString(s string, width int, radix uint64) (result Int, overflow bool, ok bool) {
	negative := false
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		negative = true
		s = s[1:]
	}

	num, overflow, ok := fromUnsignedString(s, width, radix)
	if !ok {
		return
	}

	// A set sign bit means the magnitude does not fit, except for the
	// largest possible negative, which has no positive counterpart.
	if num.IsNegative() && !(num.IsLargestPossibleNegative() && negative) {
		overflow = true
	}

	if !negative {
		return num, overflow, true
	}

	negated, negated_ok := num.Negate()
	if !negated_ok {
		// Only the largest possible negative fails, and it is already its
		// own negation.
		return num, overflow, true
	}

	return negated, overflow, true
}

// FromUnsignedDecimalString parses a string of decimal digits.
//
// ok is false if any character is not a digit. overflow is set when the
// value does not fit in width bits; the result is then truncated.
func FromUnsignedDecimalString(s string, width int) (Int, bool, bool) {
	return fromUnsignedString(s, width, 10)
}

// FromSignedDecimalString parses decimal digits with an optional leading
// sign character.
func FromSignedDecimalString(s string, width int) (Int, bool, bool) {
	return fromSignedString(s, width, 10)
}

// FromUnsignedHexString parses hexadecimal digits of either case.
func FromUnsignedHexString(s string, width int) (Int, bool, bool) {
	return fromUnsignedString(s, width, 16)
}

// FromSignedHexString parses hexadecimal digits with an optional sign.
func FromSignedHexString(s string, width int) (Int, bool, bool) {
	return fromSignedString(s, width, 16)
}

// FromUnsignedBinaryString parses a string of 0 and 1 characters.
func FromUnsignedBinaryString(s string, width int) (Int, bool, bool) {
	return fromUnsignedString(s, width, 2)
}

// FromSignedBinaryString parses binary digits with an optional sign.
func FromSignedBinaryString(s string, width int) (Int, bool, bool) {
	return fromSignedString(s, width, 2)
}
