// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package calc is a calculator session: an expression being edited, the
// data type and output format, the variables, and the last result.
package calc

import (
	"fmt"
	"iter"
	"log"

	"github.com/ezrec/radix/expr"
	"github.com/ezrec/radix/glyph"
	"github.com/ezrec/radix/internal"
)

const OVERFLOW_MARKER = "OVER"

// Calculator session state.
type Calculator struct {
	Verbose bool // If set, enables verbose logging.

	config         expr.Configuration
	variables      *expr.VariableArray
	outputBase     glyph.Base
	signedOverride *bool

	glyphs []glyph.Glyph
	cursor int

	result *expr.EvaluationResult
	err    error

	constantOverflows bool
}

// NewCalculator creates an unsigned 32 bit decimal calculator with every
// variable set to 0.
func NewCalculator() (calc *Calculator) {
	calc = &Calculator{
		config:     expr.DefaultConfiguration(),
		variables:  expr.NewVariableArray(),
		outputBase: glyph.BASE_DECIMAL,
	}

	return
}

// Configuration used for parsing and evaluation.
func (calc *Calculator) Configuration() expr.Configuration {
	return calc.config
}

// SetDataType changes the data type. Widths below expr.MIN_BITS are raised
// to it. The last result no longer applies and is cleared.
func (calc *Calculator) SetDataType(bits int, signed bool) {
	calc.config.DataType = expr.DataType{Bits: bits, Signed: signed}.Clamp()
	if calc.Verbose {
		log.Printf("data type %v", calc.config.DataType.ConciseName())
	}
	calc.clearEvaluation()
}

// OutputBase is the base results are formatted in.
func (calc *Calculator) OutputBase() glyph.Base {
	return calc.outputBase
}

// SetOutputBase changes the base results are formatted in.
func (calc *Calculator) SetOutputBase(base glyph.Base) {
	calc.outputBase = base
}

// SignedOverride returns the signedness results are formatted with, when it
// differs from the data type's.
func (calc *Calculator) SignedOverride() *bool {
	if calc.signedOverride == nil {
		return nil
	}
	value := *calc.signedOverride
	return &value
}

// SetSignedOverride formats results as signed or unsigned regardless of the
// data type. nil removes the override.
func (calc *Calculator) SetSignedOverride(signed *bool) {
	if signed != nil {
		value := *signed
		signed = &value
	}
	calc.signedOverride = signed
}

func (calc *Calculator) resultSigned() bool {
	if calc.signedOverride != nil {
		return *calc.signedOverride
	}
	return calc.config.DataType.Signed
}

func (calc *Calculator) clearEvaluation() {
	calc.result = nil
	calc.err = nil
}

func (calc *Calculator) parser() *expr.Parser {
	parser := expr.NewParser(calc.glyphs, calc.variables, calc.config)
	parser.Verbose = calc.Verbose
	return parser
}

// Evaluate parses and evaluates the expression at full precision. The
// result, or the parse error, is kept until the session is next changed.
func (calc *Calculator) Evaluate() (result expr.EvaluationResult, err error) {
	calc.ConstantOverflows()

	node, err := calc.parser().Parse()
	if err != nil {
		calc.result, calc.err = nil, err
		if calc.Verbose {
			log.Printf("%v: %v", glyph.Format(calc.glyphs), err)
		}
		return
	}

	result = expr.Evaluate(node, calc.config)
	calc.result, calc.err = &result, nil

	if calc.Verbose {
		log.Printf("%v = %v (overflow %v)", node, result.Result, result.Overflow)
	}

	return
}

// Calculate evaluates glyphs with the session's variables in a data type,
// leaving the expression being edited and the last result alone.
func (calc *Calculator) Calculate(glyphs []glyph.Glyph, dt expr.DataType) (result expr.EvaluationResult, err error) {
	config := expr.Configuration{DataType: dt.Clamp()}

	result, err = expr.Calculate(glyphs, calc.variables, config)
	if calc.Verbose {
		log.Printf("%v: %v = %v (overflow %v, error %v)", config.DataType.ConciseName(), glyph.Format(glyphs), result.Result, result.Overflow, err)
	}

	return
}

// ConstantOverflows checks the expression for literals that do not fit the
// data type, without evaluating it.
func (calc *Calculator) ConstantOverflows() (spans []expr.GlyphSpan) {
	parser := calc.parser()
	parser.Numbers = expr.OverflowChecker{}

	// Parse errors do not matter here, only the spans.
	_, _ = parser.Parse()

	spans = parser.ConstantOverflowSpans
	calc.constantOverflows = len(spans) > 0
	return
}

// Overflow is true when the last evaluation succeeded and either overflowed
// or had a literal that overflowed.
func (calc *Calculator) Overflow() bool {
	if calc.result == nil {
		return false
	}
	return calc.result.Overflow || calc.constantOverflows
}

// Err is the parse error of the last evaluation.
func (calc *Calculator) Err() error {
	return calc.err
}

// Result formats the last evaluation in the output base. ok is false when
// there is no result to show.
func (calc *Calculator) Result() (text string, ok bool) {
	if calc.result == nil {
		return
	}
	return Format(calc.result.Result, calc.outputBase, calc.resultSigned()), true
}

// Message is the text a result line shows: the result, the description of
// the parse error, or nothing.
func (calc *Calculator) Message() string {
	if calc.err != nil {
		if pe, ok := calc.err.(expr.ParserError); ok {
			return pe.Describe()
		}
		return calc.err.Error()
	}

	text, _ := calc.Result()
	return text
}

// Header summarises the data type, any signedness override, and overflow,
// e.g. "U8>S OVER".
func (calc *Calculator) Header() (header string) {
	header = calc.config.DataType.ConciseName()
	if calc.signedOverride != nil {
		sign := 'U'
		if *calc.signedOverride {
			sign = 'S'
		}
		header += fmt.Sprintf(">%c", sign)
	}

	if calc.Overflow() {
		header += " " + OVERFLOW_MARKER
	}

	return
}

func (calc *Calculator) checkVariable(index int) error {
	if index < 0 || index >= calc.variables.Len() {
		return &ErrVariable{Index: index, Err: ErrVariableIndex}
	}
	return nil
}

// Variable returns a copy of a variable's expression.
func (calc *Calculator) Variable(index int) (glyphs []glyph.Glyph, err error) {
	err = calc.checkVariable(index)
	if err != nil {
		return
	}

	glyphs = append([]glyph.Glyph(nil), calc.variables.Get(index)...)
	return
}

// SetVariable replaces a variable's expression.
func (calc *Calculator) SetVariable(index int, glyphs []glyph.Glyph) (err error) {
	err = calc.checkVariable(index)
	if err != nil {
		return
	}

	if calc.Verbose {
		log.Printf("v%X := %v", index, glyph.Format(glyphs))
	}

	calc.variables.Set(index, glyphs)
	calc.clearEvaluation()
	return
}

// StoreVariable stores the last result, as formatted, in a variable.
func (calc *Calculator) StoreVariable(index int) (err error) {
	err = calc.checkVariable(index)
	if err != nil {
		return
	}

	text, ok := calc.Result()
	if !ok {
		return &ErrVariable{Index: index, Err: ErrNoResult}
	}

	glyphs, err := glyph.Parse(text)
	if err != nil {
		return &ErrVariable{Index: index, Err: err}
	}

	if calc.Verbose {
		log.Printf("v%X := %v", index, text)
	}

	calc.variables.Set(index, glyphs)
	return
}

// Variables yields each variable index and its expression text.
func (calc *Calculator) Variables() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for n := range calc.variables.Len() {
			if !yield(n, glyph.Format(calc.variables.Get(n))) {
				return
			}
		}
	}
}

// Settings yields every setting of the session by name, always in the same
// order: bits, signed, output, signed_output when overridden, then the
// variables v0 to vF.
func (calc *Calculator) Settings() iter.Seq2[string, string] {
	settings := []internal.Pair[string, string]{
		{Key: "bits", Value: fmt.Sprintf("%d", calc.config.DataType.Bits)},
		{Key: "signed", Value: fmt.Sprintf("%v", calc.config.DataType.Signed)},
		{Key: "output", Value: calc.outputBase.String()},
	}
	if calc.signedOverride != nil {
		settings = append(settings, internal.Pair[string, string]{Key: "signed_output", Value: fmt.Sprintf("%v", *calc.signedOverride)})
	}

	var variables iter.Seq2[string, string] = func(yield func(string, string) bool) {
		for n, text := range calc.Variables() {
			if !yield(fmt.Sprintf("v%X", n), text) {
				return
			}
		}
	}

	return internal.IterSeq2Concat(internal.IterPairs(settings), variables)
}
