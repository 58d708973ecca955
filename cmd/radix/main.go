// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/radix/calc"
	"github.com/ezrec/radix/config"
	"github.com/ezrec/radix/expr"
	"github.com/ezrec/radix/glyph"
	"github.com/ezrec/radix/translate"
)

// setLanguage selects the message language, if one is given, and returns
// the language in use.
func setLanguage(lang string) string {
	if len(lang) != 0 {
		translate.SetLocales(lang)
	}

	return translate.Language().String()
}

func main() {
	var bits int
	var signed bool
	var output string
	var session string
	var star string
	var expression string
	var verbose bool
	var lang string

	flag.IntVar(&bits, "b", expr.DEFAULT_BITS, "Data type width in bits")
	flag.BoolVar(&signed, "s", false, "Signed data type")
	flag.StringVar(&output, "o", "dec", "Output base: dec, hex or bin")
	flag.StringVar(&session, "c", "", ".yaml session file to load")
	flag.StringVar(&star, "x", "", ".star script to run")
	flag.StringVar(&expression, "e", "", "Expression to evaluate")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message language, e.g. en-US; from the environment if empty")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	language := setLanguage(lang)
	if verbose {
		log.Printf("language %v", language)
	}

	calculator := calc.NewCalculator()
	calculator.Verbose = verbose

	if len(session) != 0 {
		conf, err := config.Load(session)
		if err != nil {
			log.Fatal(err)
		}
		err = conf.Apply(calculator)
		if err != nil {
			log.Fatalf("%v: %v", session, err)
		}
	}

	// Flags given on the command line override the session file.
	dt := calculator.Configuration().DataType
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "b":
			dt.Bits = bits
		case "s":
			dt.Signed = signed
		case "o":
			base, err := glyph.ParseBase(output)
			if err != nil {
				log.Fatalf("-o: %v", err)
			}
			calculator.SetOutputBase(base)
		}
	})
	calculator.SetDataType(dt.Bits, dt.Signed)

	r := newRepl(calculator, os.Stdout)

	if len(star) != 0 {
		_, err := r.interpreter.Run(star, nil)
		if err != nil {
			log.Fatal(err)
		}
	}

	if len(expression) != 0 {
		err := r.line(expression)
		if err != nil {
			log.Fatalf("%v: %v", expression, err)
		}
	}

	if len(star) == 0 && len(expression) == 0 {
		r.interactive = term.IsTerminal(int(os.Stdin.Fd()))
		err := r.run(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
	}
}
