package expr

import (
	"math/big"

	"github.com/ezrec/radix/fixedint"
	"github.com/ezrec/radix/glyph"
)

// NumberParser converts the digits of a literal to a value of the data
// type. digits are upper case digit characters of the base, with a leading
// '-' when the literal is negated.
//
// ok is false when the digits cannot be converted at all.
type NumberParser interface {
	ParseNumber(digits string, base glyph.Base, signed bool, bits int) (value fixedint.Int, overflow bool, ok bool)
}

// FullPrecision materialises literal values.
type FullPrecision struct{}

var _ NumberParser = FullPrecision{}

type fromString func(s string, width int) (fixedint.Int, bool, bool)

var fullPrecisionParsers = map[glyph.Base][2]fromString{
	glyph.BASE_DECIMAL:     {fixedint.FromUnsignedDecimalString, fixedint.FromSignedDecimalString},
	glyph.BASE_HEXADECIMAL: {fixedint.FromUnsignedHexString, fixedint.FromSignedHexString},
	glyph.BASE_BINARY:      {fixedint.FromUnsignedBinaryString, fixedint.FromSignedBinaryString},
}

func (FullPrecision) ParseNumber(digits string, base glyph.Base, signed bool, bits int) (value fixedint.Int, overflow bool, ok bool) {
	parsers, ok := fullPrecisionParsers[base]
	if !ok {
		return
	}

	parse := parsers[0]
	if signed {
		parse = parsers[1]
	}

	return parse(digits, bits)
}

// OverflowChecker only detects literal overflow; every value it returns is
// zero. It is cheap enough to run on every edit of an expression.
type OverflowChecker struct{}

var _ NumberParser = OverflowChecker{}

func (OverflowChecker) ParseNumber(digits string, base glyph.Base, signed bool, bits int) (value fixedint.Int, overflow bool, ok bool) {
	value = fixedint.Zero(bits)
	ok = true

	num, valid := new(big.Int).SetString(digits, int(base.Radix()))
	if !valid {
		// Unconvertible digits are reported as overflow, so that the
		// highlight errs on the side of warning.
		overflow = true
		return
	}

	if signed {
		limit := new(big.Int).Lsh(big.NewInt(1), uint(bits-1))
		overflow = num.Cmp(limit) >= 0 || num.Cmp(limit.Neg(limit)) < 0
	} else {
		overflow = num.Sign() < 0 || num.BitLen() > bits
	}

	return
}
