// Package config reads and writes calculator settings as YAML.
//
//	bits: 16
//	signed: true
//	output: hex
//	signed_output: false
//	variables:
//	  0: x1F
//	  3: 2*v0
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/radix/calc"
	"github.com/ezrec/radix/expr"
	"github.com/ezrec/radix/glyph"
)

// Config is the persistent state of a calculator session.
type Config struct {
	Bits         int            `yaml:"bits"`
	Signed       bool           `yaml:"signed"`
	Output       string         `yaml:"output,omitempty"`
	SignedOutput *bool          `yaml:"signed_output,omitempty"`
	Variables    map[int]string `yaml:"variables,omitempty"`
}

var outputName = map[glyph.Base]string{
	glyph.BASE_DECIMAL:     "dec",
	glyph.BASE_HEXADECIMAL: "hex",
	glyph.BASE_BINARY:      "bin",
}

// Default is the configuration of a new calculator.
func Default() *Config {
	return &Config{
		Bits:   expr.DEFAULT_BITS,
		Output: outputName[glyph.BASE_DECIMAL],
	}
}

// Load reads a configuration file.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	conf, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return conf, nil
}

// Decode reads a configuration. Settings that are not present keep their
// default; unknown settings are an error. An empty document is the default
// configuration.
func Decode(r io.Reader) (*Config, error) {
	conf := Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err := decoder.Decode(conf)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return nil, err
	}

	err = conf.Validate()
	if err != nil {
		return nil, err
	}

	return conf, nil
}

// Validate checks every setting can be applied.
func (conf *Config) Validate() (err error) {
	if conf.Bits < 1 {
		return fmt.Errorf("config: bits %d: %w", conf.Bits, ErrBitsInvalid)
	}

	if conf.Output != "" {
		_, err = glyph.ParseBase(conf.Output)
		if err != nil {
			return fmt.Errorf("config: output: %w", err)
		}
	}

	for index, text := range conf.Variables {
		if index < 0 || index >= expr.VARIABLE_COUNT {
			return fmt.Errorf("config: variable %d: %w", index, ErrVariableInvalid)
		}
		_, err = glyph.Parse(text)
		if err != nil {
			return fmt.Errorf("config: variable %d: %w", index, err)
		}
	}

	return
}

// Apply the configuration to a calculator.
func (conf *Config) Apply(calculator *calc.Calculator) (err error) {
	err = conf.Validate()
	if err != nil {
		return
	}

	calculator.SetDataType(conf.Bits, conf.Signed)

	if conf.Output != "" {
		base, _ := glyph.ParseBase(conf.Output)
		calculator.SetOutputBase(base)
	}

	calculator.SetSignedOverride(conf.SignedOutput)

	for index, text := range conf.Variables {
		glyphs, _ := glyph.Parse(text)
		err = calculator.SetVariable(index, glyphs)
		if err != nil {
			return
		}
	}

	return
}

// FromCalculator captures the settings of a calculator. Variables still
// holding their initial value are left out.
func FromCalculator(calculator *calc.Calculator) *Config {
	dt := calculator.Configuration().DataType

	conf := &Config{
		Bits:         dt.Bits,
		Signed:       dt.Signed,
		Output:       outputName[calculator.OutputBase()],
		SignedOutput: calculator.SignedOverride(),
	}

	for index, text := range calculator.Variables() {
		if text == glyph.DIGIT_0.String() {
			continue
		}
		if conf.Variables == nil {
			conf.Variables = map[int]string{}
		}
		conf.Variables[index] = text
	}

	return conf
}

// Write encodes the configuration as YAML.
func Write(w io.Writer, conf *Config) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(conf); err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("config: encoder close: %w", err)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Save writes the configuration to a file.
func Save(path string, conf *Config) error {
	var buf bytes.Buffer
	if err := Write(&buf, conf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}
