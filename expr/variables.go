package expr

import (
	"github.com/ezrec/radix/glyph"
)

const VARIABLE_COUNT = 16

// Variables is read access to a store of glyph sequences, indexed by the
// digit following a variable marker.
type Variables interface {
	Len() int
	Get(index int) []glyph.Glyph
}

// VariableArray is the fixed set of variables of a calculator.
type VariableArray [VARIABLE_COUNT][]glyph.Glyph

// NewVariableArray returns variables all holding the expression 0.
func NewVariableArray() (va *VariableArray) {
	va = &VariableArray{}
	for n := range va {
		va[n] = []glyph.Glyph{glyph.DIGIT_0}
	}
	return
}

func (va *VariableArray) Len() int {
	return len(va)
}

func (va *VariableArray) Get(index int) []glyph.Glyph {
	return va[index]
}

// Set replaces a variable's expression with a copy of glyphs.
func (va *VariableArray) Set(index int, glyphs []glyph.Glyph) {
	va[index] = append([]glyph.Glyph(nil), glyphs...)
}
