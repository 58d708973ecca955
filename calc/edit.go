package calc

import (
	"slices"

	"github.com/ezrec/radix/glyph"
)

// Expression returns a copy of the expression being edited.
func (calc *Calculator) Expression() []glyph.Glyph {
	return slices.Clone(calc.glyphs)
}

// Cursor is the insertion point, from 0 (before the first glyph) to the
// expression length (after the last).
func (calc *Calculator) Cursor() int {
	return calc.cursor
}

// edited is called after every change to the expression or cursor.
func (calc *Calculator) edited() {
	calc.clearEvaluation()
	calc.ConstantOverflows()
}

// Insert a glyph at the cursor, and move the cursor past it.
func (calc *Calculator) Insert(g glyph.Glyph) {
	calc.glyphs = slices.Insert(calc.glyphs, calc.cursor, g)
	calc.cursor++
	calc.edited()
}

// InsertParens inserts a pair of parentheses and leaves the cursor between
// them.
func (calc *Calculator) InsertParens() {
	calc.glyphs = slices.Insert(calc.glyphs, calc.cursor, glyph.LEFT_PAREN, glyph.RIGHT_PAREN)
	calc.cursor++
	calc.edited()
}

// Left moves the cursor back one glyph.
func (calc *Calculator) Left() {
	if calc.cursor > 0 {
		calc.cursor--
		calc.edited()
	}
}

// Right moves the cursor forward one glyph.
func (calc *Calculator) Right() {
	if calc.cursor < len(calc.glyphs) {
		calc.cursor++
		calc.edited()
	}
}

// Delete removes the glyph before the cursor.
func (calc *Calculator) Delete() {
	if calc.cursor > 0 {
		calc.cursor--
		calc.glyphs = slices.Delete(calc.glyphs, calc.cursor, calc.cursor+1)
		calc.edited()
	}
}

// Clear the expression and the result.
func (calc *Calculator) Clear() {
	calc.glyphs = nil
	calc.cursor = 0
	calc.edited()
}

// SetExpression replaces the expression, with the cursor at its end.
func (calc *Calculator) SetExpression(glyphs []glyph.Glyph) {
	calc.glyphs = slices.Clone(glyphs)
	calc.cursor = len(glyphs)
	calc.edited()
}
