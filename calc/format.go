package calc

import (
	"strings"

	"github.com/ezrec/radix/fixedint"
	"github.com/ezrec/radix/glyph"
)

type formatter func(fixedint.Int) string

var formatters = map[glyph.Base][2]formatter{
	glyph.BASE_DECIMAL:     {fixedint.Int.UnsignedDecimalString, fixedint.Int.SignedDecimalString},
	glyph.BASE_HEXADECIMAL: {fixedint.Int.UnsignedHexString, fixedint.Int.SignedHexString},
	glyph.BASE_BINARY:      {fixedint.Int.UnsignedBinaryString, fixedint.Int.SignedBinaryString},
}

// Format renders a value in a base, with the base's marker in front of the
// digits and any minus sign in front of the marker, e.g. -x1F. Formatted
// values parse back to glyphs of the same value.
func Format(value fixedint.Int, base glyph.Base, signed bool) string {
	pair, ok := formatters[base]
	if !ok {
		pair = formatters[glyph.BASE_DECIMAL]
		base = glyph.BASE_DECIMAL
	}

	format := pair[0]
	if signed {
		format = pair[1]
	}

	text := format(value)
	if digits, negative := strings.CutPrefix(text, "-"); negative {
		return "-" + base.Prefix() + digits
	}

	return base.Prefix() + text
}
