// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package expr

import (
	"iter"
	"log"
	"slices"
	"strings"

	"github.com/ezrec/radix/fixedint"
	"github.com/ezrec/radix/glyph"
	"github.com/ezrec/radix/internal"
)

// Parser is a recursive descent parser of glyph expressions.
//
//	top     := add_sub
//	add_sub := mul_div (('+'|'-') mul_div)*
//	mul_div := bottom (('*'|'/') bottom)*
//	bottom  := NUMBER | VARIABLE | '(' top ')' | '-' bottom
type Parser struct {
	Verbose   bool          // If set, logs variable expansions.
	Numbers   NumberParser  // Literal conversion; FullPrecision if nil.
	Glyphs    []glyph.Glyph // Expression to parse.
	Variables Variables     // Variable store; no variables if nil.
	Config    Configuration // Data type of all values.

	// Spans of literals, and of variable references, whose values do not
	// fit the data type. Kept even when the parse fails.
	ConstantOverflowSpans []GlyphSpan

	ptr        int
	referenced []int // Variables being expanded, outermost first.
}

// NewParser creates a full precision parser.
func NewParser(glyphs []glyph.Glyph, variables Variables, config Configuration) *Parser {
	return &Parser{
		Numbers:   FullPrecision{},
		Glyphs:    glyphs,
		Variables: variables,
		Config:    config,
	}
}

// Parse the whole expression. An empty expression is the number zero.
func (p *Parser) Parse() (node *Node, err error) {
	p.ptr = 0
	p.ConstantOverflowSpans = nil

	if len(p.Glyphs) == 0 {
		node = numberNode(GlyphSpan{}, fixedint.Zero(p.Config.DataType.Bits))
		return
	}

	node, err = p.parseAddSub()
	if err != nil {
		return nil, err
	}

	g, ok := p.here()
	if ok {
		return nil, p.errorGlyph(g)
	}

	return
}

// OverflowIndices yields the index of every glyph in a constant overflow
// span.
func (p *Parser) OverflowIndices() iter.Seq[int] {
	seqs := make([]iter.Seq[int], 0, len(p.ConstantOverflowSpans))
	for _, span := range p.ConstantOverflowSpans {
		seqs = append(seqs, span.Indices())
	}
	return internal.IterSeqConcat(seqs...)
}

func (p *Parser) numbers() NumberParser {
	if p.Numbers == nil {
		return FullPrecision{}
	}
	return p.Numbers
}

func (p *Parser) here() (g glyph.Glyph, ok bool) {
	if p.ptr < len(p.Glyphs) {
		g, ok = p.Glyphs[p.ptr], true
	}
	return
}

func (p *Parser) advance() {
	p.ptr++
}

func (p *Parser) error(kind ParserErrorKind) error {
	return ParserError{Position: p.ptr, Kind: kind}
}

func (p *Parser) errorGlyph(g glyph.Glyph) error {
	return ParserError{Position: p.ptr, Kind: UNEXPECTED_GLYPH, Glyph: g}
}

var opKind = map[glyph.Glyph]NodeKind{
	glyph.ADD:      NODE_ADD,
	glyph.SUBTRACT: NODE_SUBTRACT,
	glyph.MULTIPLY: NODE_MULTIPLY,
	glyph.DIVIDE:   NODE_DIVIDE,
}

// parseBinary parses operands separated by any of the ops, left
// associatively.
func (p *Parser) parseBinary(operand func() (*Node, error), ops ...glyph.Glyph) (node *Node, err error) {
	node, err = operand()
	if err != nil {
		return
	}

	for {
		g, ok := p.here()
		if !ok || !slices.Contains(ops, g) {
			return
		}
		p.advance()

		var rhs *Node
		rhs, err = operand()
		if err != nil {
			return nil, err
		}

		node = binaryNode(opKind[g], node, rhs)
	}
}

func (p *Parser) parseAddSub() (*Node, error) {
	return p.parseBinary(p.parseMulDiv, glyph.ADD, glyph.SUBTRACT)
}

func (p *Parser) parseMulDiv() (*Node, error) {
	return p.parseBinary(p.parseBottom, glyph.MULTIPLY, glyph.DIVIDE)
}

func (p *Parser) parseBottom() (node *Node, err error) {
	// Leading minus glyphs are unary negations; an odd count negates.
	start := p.ptr
	for g, ok := p.here(); ok && g == glyph.SUBTRACT; g, ok = p.here() {
		p.advance()
	}
	negations := p.ptr - start
	negate := negations%2 == 1

	g, ok := p.here()
	if !ok {
		return nil, p.error(UNEXPECTED_END)
	}

	_, is_base := glyph.BaseOf(g)
	switch {
	case g.IsDigit() || is_base:
		// Literals fold the negation into their digits.
		return p.parseNumber(start, negate)
	case g == glyph.LEFT_PAREN:
		node, err = p.parseParen()
	case g == glyph.VARIABLE:
		node, err = p.parseVariable()
	default:
		return nil, p.errorGlyph(g)
	}
	if err != nil {
		return nil, err
	}

	if negate {
		minus := GlyphSpan{Start: start, Length: negations}
		zero := numberNode(minus, fixedint.Zero(p.Config.DataType.Bits))
		node = binaryNode(NODE_SUBTRACT, zero, node)
	}

	return
}

// parseNumber parses digits with an optional base marker before or after
// them. start includes any unary minus glyphs.
func (p *Parser) parseNumber(start int, negate bool) (node *Node, err error) {
	base, has_base := glyph.BaseOf(p.Glyphs[p.ptr])
	if has_base {
		p.advance()
	}

	var digits strings.Builder
	if negate {
		digits.WriteByte('-')
	}

	count := 0
	for g, ok := p.here(); ok && g.IsDigit(); g, ok = p.here() {
		digits.WriteRune(g.Rune())
		count++
		p.advance()
	}

	if g, ok := p.here(); ok {
		suffix, is_base := glyph.BaseOf(g)
		if is_base {
			if has_base {
				return nil, p.error(DUPLICATE_BASE)
			}
			base = suffix
			p.advance()
		}
	}

	if count == 0 {
		return nil, p.error(INVALID_NUMBER)
	}

	// A negative literal of an unsigned type is parsed as signed, and can
	// never fit.
	dt := p.Config.DataType
	value, overflow, ok := p.numbers().ParseNumber(digits.String(), base, dt.Signed || negate, dt.Bits)
	if !ok {
		return nil, p.error(INVALID_NUMBER)
	}
	if negate && !dt.Signed {
		overflow = true
	}

	span := GlyphSpan{Start: start, Length: p.ptr - start}
	if overflow {
		p.ConstantOverflowSpans = append(p.ConstantOverflowSpans, span)
	}

	node = numberNode(span, value)
	return
}

func (p *Parser) parseParen() (node *Node, err error) {
	p.advance()

	node, err = p.parseAddSub()
	if err != nil {
		return nil, err
	}

	g, ok := p.here()
	if !ok || g != glyph.RIGHT_PAREN {
		return nil, p.error(EXPECTED_PAREN)
	}
	p.advance()

	return
}

// parseVariable parses a variable marker and index digit, then the
// variable's own expression.
func (p *Parser) parseVariable() (node *Node, err error) {
	marker := p.ptr
	p.advance()

	g, ok := p.here()
	if !ok || !g.IsDigit() || p.Variables == nil || g.Value() >= p.Variables.Len() {
		return nil, p.error(INVALID_VARIABLE)
	}

	index := g.Value()
	if slices.Contains(p.referenced, index) {
		// The variable refers to itself.
		return nil, p.error(INVALID_VARIABLE)
	}
	p.advance()

	nested := &Parser{
		Verbose:    p.Verbose,
		Numbers:    p.Numbers,
		Glyphs:     p.Variables.Get(index),
		Variables:  p.Variables,
		Config:     p.Config,
		referenced: append(slices.Clone(p.referenced), index),
	}

	if p.Verbose {
		log.Printf("v%d: %v", index, glyph.Format(nested.Glyphs))
	}

	node, err = nested.Parse()
	if err != nil {
		return nil, err
	}

	site := GlyphSpan{Start: marker, Length: 2}
	if len(nested.ConstantOverflowSpans) > 0 {
		p.ConstantOverflowSpans = append(p.ConstantOverflowSpans, site)
	}

	// Spans of the variable's tree refer to the variable's own glyphs.
	respan(node, site)

	return
}

func respan(node *Node, span GlyphSpan) {
	if node == nil {
		return
	}
	node.Span = span
	respan(node.Left, span)
	respan(node.Right, span)
}
