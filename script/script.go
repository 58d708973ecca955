// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package script binds a calculator session to Starlark.
//
// Scripts see a single predeclared module, radix:
//
//	radix.eval(expr, bits=, signed=, base=, signed_output=)    struct(value, overflow, int)
//	radix.format(value, bits=, signed=, base=, signed_output=) string
//	radix.variable(index, expr=None)           string
//	radix.settings()                           dict
//
// Omitted keyword arguments take the session's data type and output base.
// Values are computed in the data type; signed_output, which defaults to the
// session's signedness override, only changes how value and int read the
// result.
package script

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/starlarkstruct"
	"go.starlark.net/syntax"

	"github.com/ezrec/radix/calc"
	"github.com/ezrec/radix/expr"
	"github.com/ezrec/radix/fixedint"
	"github.com/ezrec/radix/glyph"
)

const MODULE_NAME = "radix"

// Interpreter runs Starlark against a calculator session.
type Interpreter struct {
	Verbose bool      // If set, enables verbose logging.
	Output  io.Writer // Destination of print(); os.Stdout if nil.

	calc *calc.Calculator
}

// NewInterpreter creates an interpreter sharing the session's variables
// and defaults.
func NewInterpreter(calculator *calc.Calculator) (in *Interpreter) {
	in = &Interpreter{
		calc: calculator,
	}

	return
}

// Module is the radix module predeclared to scripts.
func (in *Interpreter) Module() *starlarkstruct.Module {
	return &starlarkstruct.Module{
		Name: MODULE_NAME,
		Members: starlark.StringDict{
			"eval":     starlark.NewBuiltin("eval", in.eval),
			"format":   starlark.NewBuiltin("format", in.format),
			"variable": starlark.NewBuiltin("variable", in.variable),
			"settings": starlark.NewBuiltin("settings", in.settings),
		},
	}
}

func (in *Interpreter) thread(name string) *starlark.Thread {
	output := in.Output
	if output == nil {
		output = os.Stdout
	}

	return &starlark.Thread{
		Name: name,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(output, msg)
		},
	}
}

func (in *Interpreter) predeclared() starlark.StringDict {
	return starlark.StringDict{
		MODULE_NAME: in.Module(),
	}
}

func (in *Interpreter) wrap(name string, err error) error {
	var eval_err *starlark.EvalError
	if in.Verbose && errors.As(err, &eval_err) {
		log.Printf("%v", eval_err.Backtrace())
	}

	return &ErrScript{Name: name, Err: err}
}

// Run executes a script. source is anything starlark.ExecFileOptions
// accepts: a string, a []byte, an io.Reader, or nil to read the file name.
func (in *Interpreter) Run(name string, source any) (globals starlark.StringDict, err error) {
	if in.Verbose {
		log.Printf("script %v", name)
	}

	globals, err = starlark.ExecFileOptions(&syntax.FileOptions{}, in.thread(name), name, source, in.predeclared())
	if err != nil {
		err = in.wrap(name, err)
		return
	}

	return
}

// Eval evaluates a single Starlark expression.
func (in *Interpreter) Eval(expression string) (value starlark.Value, err error) {
	value, err = starlark.EvalOptions(&syntax.FileOptions{}, in.thread("expr"), "expr", expression, in.predeclared())
	if err != nil {
		err = in.wrap(expression, err)
		return
	}

	return
}

// options are the keyword arguments shared by eval() and format().
type options struct {
	bits         int
	signed       bool
	base         string
	signedOutput starlark.Value // None follows signed.
}

func (in *Interpreter) defaults() options {
	dt := in.calc.Configuration().DataType

	var signed_output starlark.Value = starlark.None
	if override := in.calc.SignedOverride(); override != nil {
		signed_output = starlark.Bool(*override)
	}

	return options{
		bits:         dt.Bits,
		signed:       dt.Signed,
		base:         in.calc.OutputBase().String(),
		signedOutput: signed_output,
	}
}

// resolve returns the data type values are computed in, and the base and
// signedness they are shown with.
func (opt options) resolve() (dt expr.DataType, base glyph.Base, signed_output bool, err error) {
	dt = expr.DataType{Bits: opt.bits, Signed: opt.signed}.Clamp()

	base, err = glyph.ParseBase(opt.base)
	if err != nil {
		return
	}

	signed_output = dt.Signed
	switch value := opt.signedOutput.(type) {
	case nil, starlark.NoneType:
	case starlark.Bool:
		signed_output = bool(value)
	default:
		err = fmt.Errorf("%w: signed_output %v", ErrArgument, value.Type())
	}

	return
}

// bigOf converts a value to an arbitrary precision integer, reading it as
// signed or unsigned.
func bigOf(value fixedint.Int, signed bool) *big.Int {
	text := value.UnsignedDecimalString()
	if signed {
		text = value.SignedDecimalString()
	}

	bi, _ := new(big.Int).SetString(text, 10)
	return bi
}

// fixedOf wraps an arbitrary precision integer to a data type.
func fixedOf(bi *big.Int, dt expr.DataType) (value fixedint.Int, err error) {
	parse := fixedint.FromUnsignedDecimalString
	if dt.Signed || bi.Sign() < 0 {
		parse = fixedint.FromSignedDecimalString
	}

	value, _, ok := parse(bi.String(), dt.Bits)
	if !ok {
		err = fmt.Errorf("%w: %v", ErrArgument, bi)
	}
	return
}

func (in *Interpreter) eval(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	opt := in.defaults()
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "expr", &text, "bits?", &opt.bits, "signed?", &opt.signed, "base?", &opt.base, "signed_output?", &opt.signedOutput)
	if err != nil {
		return nil, err
	}

	dt, base, signed_output, err := opt.resolve()
	if err != nil {
		return nil, err
	}

	glyphs, err := glyph.Parse(text)
	if err != nil {
		return nil, err
	}

	result, err := in.calc.Calculate(glyphs, dt)
	if err != nil {
		return nil, err
	}

	return starlarkstruct.FromStringDict(starlarkstruct.Default, starlark.StringDict{
		"value":    starlark.String(calc.Format(result.Result, base, signed_output)),
		"overflow": starlark.Bool(result.Overflow),
		"int":      starlark.MakeBigInt(bigOf(result.Result, signed_output)),
	}), nil
}

func (in *Interpreter) format(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var number starlark.Int
	opt := in.defaults()
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "value", &number, "bits?", &opt.bits, "signed?", &opt.signed, "base?", &opt.base, "signed_output?", &opt.signedOutput)
	if err != nil {
		return nil, err
	}

	dt, base, signed_output, err := opt.resolve()
	if err != nil {
		return nil, err
	}

	value, err := fixedOf(number.BigInt(), dt)
	if err != nil {
		return nil, err
	}

	return starlark.String(calc.Format(value, base, signed_output)), nil
}

func (in *Interpreter) variable(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var index int
	var text starlark.Value = starlark.None
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "index", &index, "expr?", &text)
	if err != nil {
		return nil, err
	}

	if text != starlark.None {
		str, ok := starlark.AsString(text)
		if !ok {
			return nil, fmt.Errorf("%w: %v", ErrArgument, text.Type())
		}
		glyphs, err := glyph.Parse(str)
		if err != nil {
			return nil, err
		}
		err = in.calc.SetVariable(index, glyphs)
		if err != nil {
			return nil, err
		}
	}

	glyphs, err := in.calc.Variable(index)
	if err != nil {
		return nil, err
	}

	return starlark.String(glyph.Format(glyphs)), nil
}

func (in *Interpreter) settings(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	err := starlark.UnpackArgs(b.Name(), args, kwargs)
	if err != nil {
		return nil, err
	}

	dict := starlark.NewDict(0)
	for key, value := range in.calc.Settings() {
		err = dict.SetKey(starlark.String(key), starlark.String(value))
		if err != nil {
			return nil, err
		}
	}

	return dict, nil
}
