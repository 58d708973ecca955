package calc

import (
	"errors"

	"github.com/ezrec/radix/translate"
)

var f = translate.From

var (
	ErrNoResult      = errors.New(f("no result"))
	ErrVariableIndex = errors.New(f("variable index out of range"))
)

// ErrVariable indicates which variable an operation failed on.
type ErrVariable struct {
	Index int
	Err   error
}

func (err *ErrVariable) Error() string {
	return f("v%X %v", err.Index, err.Err)
}

func (err *ErrVariable) Unwrap() error {
	return err.Err
}
