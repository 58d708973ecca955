package config

import (
	"errors"

	"github.com/ezrec/radix/translate"
)

var f = translate.From

var (
	ErrBitsInvalid     = errors.New(f("bits must be positive"))
	ErrVariableInvalid = errors.New(f("variable invalid"))
)
