package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigit(t *testing.T) {
	assert := assert.New(t)

	for d := range 16 {
		g := Digit(d)
		assert.True(g.IsDigit())
		assert.False(g.IsOperator())
		assert.Equal(d, g.Value())
	}

	assert.Equal(DIGIT_A, Digit(10))
	assert.Panics(func() { Digit(16) })
	assert.Panics(func() { Digit(-1) })
	assert.Panics(func() { ADD.Value() })
	assert.False(VARIABLE.IsDigit())
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		glyph Glyph
		text  string
	}{
		{DIGIT_0, "0"},
		{DIGIT_9, "9"},
		{DIGIT_F, "F"},
		{ADD, "+"},
		{SUBTRACT, "-"},
		{MULTIPLY, "*"},
		{DIVIDE, "/"},
		{LEFT_PAREN, "("},
		{RIGHT_PAREN, ")"},
		{HEX_BASE, "x"},
		{BINARY_BASE, "b"},
		{DECIMAL_BASE, "d"},
		{VARIABLE, "v"},
		{Glyph(GLYPH_COUNT), "Glyph(26)"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.glyph.String())
	}
}

func TestDescribe(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("digit 7", DIGIT_7.Describe())
	assert.Equal("operator *", MULTIPLY.Describe())
	assert.Equal("parenthesis )", RIGHT_PAREN.Describe())
	assert.Equal("hexadecimal base", HEX_BASE.Describe())
	assert.Equal("variable marker", VARIABLE.Describe())
}

func TestBase(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		base   Base
		name   string
		radix  uint64
		glyph  Glyph
		prefix string
	}{
		{BASE_DECIMAL, "decimal", 10, DECIMAL_BASE, ""},
		{BASE_HEXADECIMAL, "hexadecimal", 16, HEX_BASE, "x"},
		{BASE_BINARY, "binary", 2, BINARY_BASE, "b"},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.base.String())
		assert.Equal(entry.radix, entry.base.Radix())
		assert.Equal(entry.glyph, entry.base.Glyph())
		assert.Equal(entry.prefix, entry.base.Prefix())

		base, ok := BaseOf(entry.glyph)
		assert.True(ok)
		assert.Equal(entry.base, base)
	}

	_, ok := BaseOf(DIGIT_B)
	assert.False(ok)

	assert.Equal("Base(3)", Base(3).String())
}

func TestParseBase(t *testing.T) {
	assert := assert.New(t)

	base, err := ParseBase("hex")
	assert.NoError(err)
	assert.Equal(BASE_HEXADECIMAL, base)

	base, err = ParseBase("b")
	assert.NoError(err)
	assert.Equal(BASE_BINARY, base)

	base, err = ParseBase("decimal")
	assert.NoError(err)
	assert.Equal(BASE_DECIMAL, base)

	_, err = ParseBase("octal")
	assert.ErrorIs(err, ErrBaseInvalid)
	assert.Equal(ErrBaseName("octal"), err)
}
