package expr

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/radix/fixedint"
	"github.com/ezrec/radix/glyph"
)

func TestFullPrecision(t *testing.T) {
	assert := assert.New(t)

	var numbers NumberParser = FullPrecision{}

	value, overflow, ok := numbers.ParseNumber("1F", glyph.BASE_HEXADECIMAL, false, 8)
	assert.True(ok)
	assert.False(overflow)
	assert.Equal(fixedint.FromUint64(0x1f, 8), value)

	value, overflow, ok = numbers.ParseNumber("-101", glyph.BASE_BINARY, true, 8)
	assert.True(ok)
	assert.False(overflow)
	assert.Equal(fixedint.FromInt64(-5, 8), value)

	_, overflow, ok = numbers.ParseNumber("300", glyph.BASE_DECIMAL, false, 8)
	assert.True(ok)
	assert.True(overflow)

	_, _, ok = numbers.ParseNumber("1A", glyph.BASE_DECIMAL, false, 8)
	assert.False(ok)

	_, _, ok = numbers.ParseNumber("1", glyph.Base(7), false, 8)
	assert.False(ok)
}

func TestOverflowChecker(t *testing.T) {
	assert := assert.New(t)

	var numbers NumberParser = OverflowChecker{}

	value, overflow, ok := numbers.ParseNumber("255", glyph.BASE_DECIMAL, false, 8)
	assert.True(ok)
	assert.False(overflow)
	assert.Equal(fixedint.Zero(8), value)

	_, overflow, _ = numbers.ParseNumber("256", glyph.BASE_DECIMAL, false, 8)
	assert.True(overflow)

	_, overflow, _ = numbers.ParseNumber("-80", glyph.BASE_HEXADECIMAL, true, 8)
	assert.False(overflow)

	_, overflow, _ = numbers.ParseNumber("-81", glyph.BASE_HEXADECIMAL, true, 8)
	assert.True(overflow)

	_, overflow, _ = numbers.ParseNumber(strings.Repeat("1", 200), glyph.BASE_BINARY, false, 200)
	assert.False(overflow)

	// Digits the base cannot hold are reported as overflow.
	_, overflow, ok = numbers.ParseNumber("1A", glyph.BASE_DECIMAL, false, 8)
	assert.True(ok)
	assert.True(overflow)
}

// Both strategies must agree on which literals overflow.
func TestNumberParsersAgree(t *testing.T) {
	assert := assert.New(t)

	for bits := 3; bits <= 7; bits++ {
		for _, base := range []glyph.Base{glyph.BASE_DECIMAL, glyph.BASE_HEXADECIMAL, glyph.BASE_BINARY} {
			for n := -300; n <= 300; n++ {
				var digits string
				switch base {
				case glyph.BASE_HEXADECIMAL:
					digits = fmt.Sprintf("%X", n)
				case glyph.BASE_BINARY:
					digits = fmt.Sprintf("%b", n)
				default:
					digits = fmt.Sprintf("%d", n)
				}

				for _, signed := range []bool{false, true} {
					if n < 0 && !signed {
						continue
					}
					_, full, ok := FullPrecision{}.ParseNumber(digits, base, signed, bits)
					assert.True(ok, digits)
					_, fast, ok := OverflowChecker{}.ParseNumber(digits, base, signed, bits)
					assert.True(ok, digits)
					assert.Equal(full, fast, "%v %v signed=%v bits=%d", digits, base, signed, bits)
				}
			}
		}
	}
}
