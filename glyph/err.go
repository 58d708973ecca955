package glyph

import (
	"errors"

	"github.com/ezrec/radix/translate"
)

var f = translate.From

var (
	ErrGlyphInvalid = errors.New(f("glyph invalid"))
	ErrBaseInvalid  = errors.New(f("base invalid"))
)

type ErrGlyphSyntax struct {
	Position int
	Rune     rune
}

func (err ErrGlyphSyntax) Error() string {
	return f("position %d %q %v", err.Position, err.Rune, ErrGlyphInvalid)
}

func (err ErrGlyphSyntax) Unwrap() error {
	return ErrGlyphInvalid
}

type ErrBaseName string

func (err ErrBaseName) Error() string {
	return f("'%v' is not a base", string(err))
}

func (err ErrBaseName) Unwrap() error {
	return ErrBaseInvalid
}
