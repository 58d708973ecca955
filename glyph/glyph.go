// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package glyph

import (
	"fmt"
)

// Glyph is a single expression symbol.
type Glyph uint8

//go:generate go tool stringer -linecomment -type=Glyph
const (
	DIGIT_0      = Glyph(0)  // 0
	DIGIT_1      = Glyph(1)  // 1
	DIGIT_2      = Glyph(2)  // 2
	DIGIT_3      = Glyph(3)  // 3
	DIGIT_4      = Glyph(4)  // 4
	DIGIT_5      = Glyph(5)  // 5
	DIGIT_6      = Glyph(6)  // 6
	DIGIT_7      = Glyph(7)  // 7
	DIGIT_8      = Glyph(8)  // 8
	DIGIT_9      = Glyph(9)  // 9
	DIGIT_A      = Glyph(10) // A
	DIGIT_B      = Glyph(11) // B
	DIGIT_C      = Glyph(12) // C
	DIGIT_D      = Glyph(13) // D
	DIGIT_E      = Glyph(14) // E
	DIGIT_F      = Glyph(15) // F
	ADD          = Glyph(16) // +
	SUBTRACT     = Glyph(17) // -
	MULTIPLY     = Glyph(18) // *
	DIVIDE       = Glyph(19) // /
	LEFT_PAREN   = Glyph(20) // (
	RIGHT_PAREN  = Glyph(21) // )
	HEX_BASE     = Glyph(22) // x
	BINARY_BASE  = Glyph(23) // b
	DECIMAL_BASE = Glyph(24) // d
	VARIABLE     = Glyph(25) // v

	GLYPH_COUNT = 26
)

// Digit returns the glyph for a digit value. Panics if d is not a hex digit.
func Digit(d int) Glyph {
	if d < 0 || d > 15 {
		panic(fmt.Sprintf("glyph: digit %d out of range", d))
	}
	return Glyph(d)
}

// IsDigit returns true for the sixteen digit glyphs.
func (g Glyph) IsDigit() bool {
	return g <= DIGIT_F
}

// Value is the value of a digit glyph.
func (g Glyph) Value() int {
	if !g.IsDigit() {
		panic(fmt.Sprintf("glyph: %v is not a digit", g))
	}
	return int(g)
}

// IsOperator returns true for the binary operator glyphs.
func (g Glyph) IsOperator() bool {
	return g >= ADD && g <= DIVIDE
}

// Rune is the single character text form of the glyph.
func (g Glyph) Rune() rune {
	return rune(g.String()[0])
}

// Describe names the glyph for error messages.
func (g Glyph) Describe() string {
	switch {
	case g.IsDigit():
		return f("digit %v", g.String())
	case g.IsOperator():
		return f("operator %v", g.String())
	case g == LEFT_PAREN || g == RIGHT_PAREN:
		return f("parenthesis %v", g.String())
	case g == VARIABLE:
		return f("variable marker")
	}

	base, ok := BaseOf(g)
	if ok {
		return f("%v base", base.String())
	}

	return g.String()
}

// Base is the number base of a literal or a formatted result.
type Base int

//go:generate go tool stringer -linecomment -type=Base
const (
	BASE_DECIMAL     = Base(0) // decimal
	BASE_HEXADECIMAL = Base(1) // hexadecimal
	BASE_BINARY      = Base(2) // binary
)

// Radix of the base.
func (b Base) Radix() uint64 {
	switch b {
	case BASE_HEXADECIMAL:
		return 16
	case BASE_BINARY:
		return 2
	default:
		return 10
	}
}

// Glyph is the marker glyph that selects the base.
func (b Base) Glyph() Glyph {
	switch b {
	case BASE_HEXADECIMAL:
		return HEX_BASE
	case BASE_BINARY:
		return BINARY_BASE
	default:
		return DECIMAL_BASE
	}
}

// Prefix is written before formatted results. Decimal, being the default
// base of literals, has none.
func (b Base) Prefix() string {
	if b == BASE_DECIMAL {
		return ""
	}
	return b.Glyph().String()
}

// BaseOf returns the base selected by a base marker glyph.
func BaseOf(g Glyph) (base Base, ok bool) {
	switch g {
	case HEX_BASE:
		return BASE_HEXADECIMAL, true
	case BINARY_BASE:
		return BASE_BINARY, true
	case DECIMAL_BASE:
		return BASE_DECIMAL, true
	}
	return
}

var baseNames = map[string]Base{
	"d":           BASE_DECIMAL,
	"dec":         BASE_DECIMAL,
	"decimal":     BASE_DECIMAL,
	"x":           BASE_HEXADECIMAL,
	"hex":         BASE_HEXADECIMAL,
	"hexadecimal": BASE_HEXADECIMAL,
	"b":           BASE_BINARY,
	"bin":         BASE_BINARY,
	"binary":      BASE_BINARY,
}

// ParseBase accepts a base by name ("hex"), short name or marker ("x").
func ParseBase(name string) (base Base, err error) {
	base, ok := baseNames[name]
	if !ok {
		err = ErrBaseName(name)
	}
	return
}
