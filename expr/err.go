package expr

import (
	"errors"

	"github.com/ezrec/radix/glyph"
	"github.com/ezrec/radix/translate"
)

var f = translate.From

// ParserErrorKind classifies a parse failure.
type ParserErrorKind int

//go:generate go tool stringer -linecomment -type=ParserErrorKind
const (
	DUPLICATE_BASE   = ParserErrorKind(0) // duplicate base
	INVALID_NUMBER   = ParserErrorKind(1) // invalid number
	UNEXPECTED_GLYPH = ParserErrorKind(2) // unexpected glyph
	EXPECTED_PAREN   = ParserErrorKind(3) // expected paren
	UNEXPECTED_END   = ParserErrorKind(4) // unexpected end
	INVALID_VARIABLE = ParserErrorKind(5) // invalid variable
)

var (
	ErrDuplicateBase   = errors.New(f("duplicate base"))
	ErrInvalidNumber   = errors.New(f("invalid number"))
	ErrUnexpectedGlyph = errors.New(f("unexpected glyph"))
	ErrExpectedParen   = errors.New(f("expected paren"))
	ErrUnexpectedEnd   = errors.New(f("unexpected end"))
	ErrInvalidVariable = errors.New(f("invalid variable"))
)

var kindError = map[ParserErrorKind]error{
	DUPLICATE_BASE:   ErrDuplicateBase,
	INVALID_NUMBER:   ErrInvalidNumber,
	UNEXPECTED_GLYPH: ErrUnexpectedGlyph,
	EXPECTED_PAREN:   ErrExpectedParen,
	UNEXPECTED_END:   ErrUnexpectedEnd,
	INVALID_VARIABLE: ErrInvalidVariable,
}

// ParserError is a failure to parse an expression. Position is the index of
// the glyph the parser stopped at.
type ParserError struct {
	Position int
	Kind     ParserErrorKind
	Glyph    glyph.Glyph // Offending glyph of UNEXPECTED_GLYPH.
}

// Describe is the short message shown to the user.
func (err ParserError) Describe() string {
	if err.Kind == UNEXPECTED_GLYPH {
		return f("unexpected %v", err.Glyph.Describe())
	}
	return err.Unwrap().Error()
}

func (err ParserError) Error() string {
	return f("position %d %v", err.Position, err.Describe())
}

func (err ParserError) Unwrap() error {
	return kindError[err.Kind]
}

// Is matches any ParserError of the same kind.
func (err ParserError) Is(target error) (ok bool) {
	other, ok := target.(ParserError)
	return ok && other.Kind == err.Kind
}
