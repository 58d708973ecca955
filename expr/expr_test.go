package expr

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/radix/glyph"
)

func mustGlyphs(t *testing.T, text string) []glyph.Glyph {
	glyphs, err := glyph.Parse(text)
	if err != nil {
		t.Fatalf("%v: %v", text, err)
	}
	return glyphs
}

func config(bits int, signed bool) Configuration {
	return Configuration{DataType: DataType{Bits: bits, Signed: signed}}
}

func TestDataType(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("U32", DefaultConfiguration().DataType.ConciseName())
	assert.Equal("S8", DataType{Bits: 8, Signed: true}.ConciseName())

	assert.Equal(DataType{Bits: 3, Signed: true}, DataType{Bits: 1, Signed: true}.Clamp())
	assert.Equal(DataType{Bits: 64}, DataType{Bits: 64}.Clamp())
}

func TestGlyphSpan(t *testing.T) {
	assert := assert.New(t)

	a := GlyphSpan{Start: 2, Length: 3}
	b := GlyphSpan{Start: 7, Length: 1}

	assert.Equal(5, a.End())
	assert.Equal(GlyphSpan{Start: 2, Length: 6}, a.Merge(b))
	assert.Equal(GlyphSpan{Start: 2, Length: 6}, b.Merge(a))
	assert.Equal(a, a.Merge(GlyphSpan{Start: 3, Length: 1}))

	assert.Equal([]int{2, 3, 4}, slices.Collect(a.Indices()))
	assert.Empty(slices.Collect(GlyphSpan{}.Indices()))

	for n := range a.Indices() {
		assert.Equal(2, n)
		break
	}
}

func TestVariableArray(t *testing.T) {
	assert := assert.New(t)

	vars := NewVariableArray()
	assert.Equal(VARIABLE_COUNT, vars.Len())
	for n := range vars.Len() {
		assert.Equal([]glyph.Glyph{glyph.DIGIT_0}, vars.Get(n))
	}

	glyphs := mustGlyphs(t, "1+2")
	vars.Set(3, glyphs)
	glyphs[0] = glyph.DIGIT_9
	assert.Equal(mustGlyphs(t, "1+2"), vars.Get(3))
}

func TestParserError(t *testing.T) {
	assert := assert.New(t)

	err := ParserError{Position: 1, Kind: UNEXPECTED_GLYPH, Glyph: glyph.RIGHT_PAREN}
	assert.Equal("unexpected parenthesis )", err.Describe())
	assert.Equal("position 1 unexpected parenthesis )", err.Error())
	assert.ErrorIs(err, ErrUnexpectedGlyph)
	assert.ErrorIs(err, ParserError{Kind: UNEXPECTED_GLYPH})
	assert.NotErrorIs(err, ErrUnexpectedEnd)

	err = ParserError{Position: 4, Kind: EXPECTED_PAREN}
	assert.Equal("expected paren", err.Describe())
	assert.ErrorIs(err, ErrExpectedParen)

	assert.Equal("invalid variable", INVALID_VARIABLE.String())
}
