package script

import (
	"errors"

	"github.com/ezrec/radix/translate"
)

var f = translate.From

var (
	ErrArgument = errors.New(f("invalid argument"))
)

// ErrScript indicates which script or expression failed.
type ErrScript struct {
	Name string
	Err  error
}

func (err *ErrScript) Error() string {
	return f("%v: %v", err.Name, err.Err)
}

func (err *ErrScript) Unwrap() error {
	return err.Err
}
