// Package glyph defines the symbols an expression is typed with.
//
// A glyph is a single key press: a digit, an operator, a parenthesis, a base
// marker or the variable marker. Glyphs have a one character text form, so
// expressions can be read from and written to plain strings.
package glyph
