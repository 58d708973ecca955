package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/radix/calc"
)

func runRepl(t *testing.T, r *repl, out *bytes.Buffer, lines ...string) string {
	out.Reset()
	err := r.run(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	assert.NoError(t, err)
	return out.String()
}

func TestReplEvaluate(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	r := newRepl(calc.NewCalculator(), &out)

	text := runRepl(t, r, &out,
		"2+2",
		":bits 8",
		"xFF+1",
		":base hex",
		":signed",
		"0-1",
		"",
		":base b",
		":unsigned",
	)
	assert.Equal("4\n4\n0 OVER\nx0 OVER\nx0 OVER\n-x1\n-b1\nb11111111 OVER\n", text)
}

func TestReplErrors(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	r := newRepl(calc.NewCalculator(), &out)

	text := runRepl(t, r, &out, "2+")
	assert.True(strings.HasPrefix(text, "position 2 "), text)

	text = runRepl(t, r, &out, "2?")
	assert.True(strings.HasPrefix(text, "position 1 "), text)

	text = runRepl(t, r, &out, ":nope")
	assert.Equal(ErrCommand("nope").Error()+"\n", text)

	text = runRepl(t, r, &out, ":bits")
	assert.Contains(text, ErrArguments.Error())

	text = runRepl(t, r, &out, ":as maybe")
	assert.Contains(text, ErrArguments.Error())

	// The loop goes on after an error.
	text = runRepl(t, r, &out, ":base octal", "1+1")
	assert.True(strings.HasSuffix(text, "\n2\n"), text)
}

func TestReplVariables(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	r := newRepl(calc.NewCalculator(), &out)

	text := runRepl(t, r, &out,
		":set 1 6 * 7",
		"v1+1",
		":store v2",
		":store 10",
	)
	store_err := &calc.ErrVariable{Index: 16, Err: calc.ErrVariableIndex}
	assert.Equal("43\n"+store_err.Error()+"\n", text)

	text = runRepl(t, r, &out, ":vars")
	assert.Contains(text, "bits: 32\n")
	assert.Contains(text, "v1: 6*7\n")
	assert.Contains(text, "v2: 43\n")
	assert.Contains(text, "vF: 0\n")
	assert.True(strings.HasPrefix(text, "bits: 32\noutput: decimal\nsigned: false\nv0: 0\n"), text)
}

func TestReplAs(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	r := newRepl(calc.NewCalculator(), &out)

	text := runRepl(t, r, &out,
		":bits 8",
		"0-1",
		":as signed",
		":as type",
	)
	assert.Equal("255 OVER\n-1 OVER\n255 OVER\n", text)
}

func TestReplStar(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	r := newRepl(calc.NewCalculator(), &out)

	text := runRepl(t, r, &out,
		`:star radix.eval("2*3").value`,
		`:star radix.variable(3, "1+1")`,
		`v3*2`,
	)
	assert.Equal("\"6\"\n\"1+1\"\n4\n", text)
}

func TestReplSaveLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "session.yaml")

	var out bytes.Buffer
	r := newRepl(calc.NewCalculator(), &out)
	runRepl(t, r, &out, ":bits 16", ":signed", ":base hex", ":set 4 x10", ":save "+path)
	saved := runRepl(t, r, &out, ":vars")

	other := newRepl(calc.NewCalculator(), &out)
	text := runRepl(t, other, &out, ":load "+path)
	assert.Empty(text)

	assert.Equal(saved, runRepl(t, other, &out, ":vars"))
	assert.Equal("-x1\n", runRepl(t, other, &out, "0-1"))
}

func TestReplQuit(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	r := newRepl(calc.NewCalculator(), &out)

	assert.Equal("1\n", runRepl(t, r, &out, "1", ":quit", "2"))
}

func TestReplPrompt(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	r := newRepl(calc.NewCalculator(), &out)
	r.interactive = true

	assert.Equal("U32> 1\nU32> ", runRepl(t, r, &out, "1"))
}

func TestReplHelp(t *testing.T) {
	assert := assert.New(t)

	var out bytes.Buffer
	r := newRepl(calc.NewCalculator(), &out)

	text := runRepl(t, r, &out, ":help")
	assert.Equal(len(commands), strings.Count(text, "\n"))
	assert.Contains(text, ":quit")
}

func TestSetLanguage(t *testing.T) {
	assert := assert.New(t)

	before := setLanguage("")
	assert.NotEmpty(before)
	assert.Equal(before, setLanguage(""))

	assert.NotEmpty(setLanguage("en-US"))
	assert.Equal("unknown command ':x'", ErrCommand("x").Error())
}
