package main

import (
	"errors"

	"github.com/ezrec/radix/translate"
)

var f = translate.From

var (
	errQuit = errors.New(f("quit"))

	ErrArguments = errors.New(f("wrong number of arguments"))
)

// ErrCommand is an unknown REPL command.
type ErrCommand string

func (err ErrCommand) Error() string {
	return f("unknown command ':%v'", string(err))
}
