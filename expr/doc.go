// Package expr parses glyph expressions into trees of fixed width integer
// operations, and evaluates them.
//
// The data type (width and signedness) is chosen per evaluation. Literal
// overflow is detected while parsing and recorded as spans of the input, so
// an editor can highlight the offending glyphs without evaluating anything.
// Arithmetic overflow is carried alongside every result, never as an error.
package expr
