package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/ezrec/radix/calc"
	"github.com/ezrec/radix/config"
	"github.com/ezrec/radix/glyph"
	"github.com/ezrec/radix/script"
)

// repl reads expressions and commands a line at a time.
type repl struct {
	calc        *calc.Calculator
	interpreter *script.Interpreter
	out         io.Writer
	interactive bool // Print a prompt before each line.
}

type command struct {
	args int // Minimum number of arguments.
	run  func(r *repl, args []string) error
	help string
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"bits":     {1, (*repl).cmdBits, ":bits N         data type width"},
		"signed":   {0, (*repl).cmdSigned, ":signed         signed data type"},
		"unsigned": {0, (*repl).cmdUnsigned, ":unsigned       unsigned data type"},
		"base":     {1, (*repl).cmdBase, ":base dec|hex|bin  output base"},
		"as":       {1, (*repl).cmdAs, ":as signed|unsigned|type  show results as"},
		"store":    {1, (*repl).cmdStore, ":store N        store the result in vN"},
		"set":      {2, (*repl).cmdSet, ":set N expr     set vN to an expression"},
		"vars":     {0, (*repl).cmdVars, ":vars           list the settings and variables"},
		"load":     {1, (*repl).cmdLoad, ":load file      load a session file"},
		"save":     {1, (*repl).cmdSave, ":save file      save the session"},
		"star":     {1, (*repl).cmdStar, ":star expr      evaluate Starlark"},
		"help":     {0, (*repl).cmdHelp, ":help           this text"},
		"quit":     {0, (*repl).cmdQuit, ":quit           exit"},
	}
}

func newRepl(calculator *calc.Calculator, out io.Writer) (r *repl) {
	interpreter := script.NewInterpreter(calculator)
	interpreter.Verbose = calculator.Verbose
	interpreter.Output = out

	r = &repl{
		calc:        calculator,
		interpreter: interpreter,
		out:         out,
	}

	return
}

func (r *repl) prompt() {
	if r.interactive {
		fmt.Fprintf(r.out, "%v> ", r.calc.Header())
	}
}

// run handles lines until the input ends or :quit. Errors on a line are
// printed, and do not stop the loop.
func (r *repl) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for r.prompt(); scanner.Scan(); r.prompt() {
		err := r.line(scanner.Text())
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(r.out, err)
		}
	}

	return scanner.Err()
}

func (r *repl) line(text string) error {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return nil
	}

	if cmd, ok := strings.CutPrefix(text, ":"); ok {
		return r.command(cmd)
	}

	return r.evaluate(text)
}

func (r *repl) command(text string) error {
	name, rest, _ := strings.Cut(text, " ")
	cmd, ok := commands[name]
	if !ok {
		return ErrCommand(name)
	}

	args := strings.Fields(rest)
	if len(args) < cmd.args {
		return fmt.Errorf(":%v: %w", name, ErrArguments)
	}

	return cmd.run(r, args)
}

// evaluate sets the expression and prints its result.
func (r *repl) evaluate(text string) error {
	glyphs, err := glyph.Parse(text)
	if err != nil {
		return err
	}

	r.calc.SetExpression(glyphs)
	return r.show()
}

// show evaluates the current expression, if any, and prints the result.
func (r *repl) show() error {
	if len(r.calc.Expression()) == 0 {
		return nil
	}

	_, err := r.calc.Evaluate()
	if err != nil {
		return err
	}

	text, _ := r.calc.Result()
	if r.calc.Overflow() {
		text += " " + calc.OVERFLOW_MARKER
	}
	fmt.Fprintln(r.out, text)

	return nil
}

func variableIndex(arg string) (int, error) {
	index, err := strconv.ParseUint(strings.TrimPrefix(arg, "v"), 16, 8)
	if err != nil {
		return 0, err
	}
	return int(index), nil
}

func (r *repl) cmdBits(args []string) error {
	bits, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}

	r.calc.SetDataType(bits, r.calc.Configuration().DataType.Signed)
	return r.show()
}

func (r *repl) cmdSigned(args []string) error {
	r.calc.SetDataType(r.calc.Configuration().DataType.Bits, true)
	return r.show()
}

func (r *repl) cmdUnsigned(args []string) error {
	r.calc.SetDataType(r.calc.Configuration().DataType.Bits, false)
	return r.show()
}

func (r *repl) cmdBase(args []string) error {
	base, err := glyph.ParseBase(args[0])
	if err != nil {
		return err
	}

	r.calc.SetOutputBase(base)
	return r.show()
}

func (r *repl) cmdAs(args []string) error {
	var signed *bool
	switch args[0] {
	case "signed", "s":
		signed = new(bool)
		*signed = true
	case "unsigned", "u":
		signed = new(bool)
	case "type", "t":
	default:
		return fmt.Errorf(":as %v: %w", args[0], ErrArguments)
	}

	r.calc.SetSignedOverride(signed)
	return r.show()
}

func (r *repl) cmdStore(args []string) error {
	index, err := variableIndex(args[0])
	if err != nil {
		return err
	}

	return r.calc.StoreVariable(index)
}

func (r *repl) cmdSet(args []string) error {
	index, err := variableIndex(args[0])
	if err != nil {
		return err
	}

	glyphs, err := glyph.Parse(strings.Join(args[1:], " "))
	if err != nil {
		return err
	}

	return r.calc.SetVariable(index, glyphs)
}

func (r *repl) cmdVars(args []string) error {
	settings := maps.Collect(r.calc.Settings())
	for _, key := range slices.Sorted(maps.Keys(settings)) {
		fmt.Fprintf(r.out, "%v: %v\n", key, settings[key])
	}

	return nil
}

func (r *repl) cmdLoad(args []string) error {
	conf, err := config.Load(args[0])
	if err != nil {
		return err
	}

	return conf.Apply(r.calc)
}

func (r *repl) cmdSave(args []string) error {
	return config.Save(args[0], config.FromCalculator(r.calc))
}

func (r *repl) cmdStar(args []string) error {
	value, err := r.interpreter.Eval(strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Fprintln(r.out, value.String())
	return nil
}

func (r *repl) cmdHelp(args []string) error {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		fmt.Fprintln(r.out, commands[name].help)
	}

	return nil
}

func (r *repl) cmdQuit(args []string) error {
	return errQuit
}
