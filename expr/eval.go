package expr

import (
	"fmt"

	"github.com/ezrec/radix/fixedint"
	"github.com/ezrec/radix/glyph"
)

// EvaluationResult is the value of an expression, and whether any step of
// computing it overflowed.
type EvaluationResult struct {
	Result   fixedint.Int
	Overflow bool
}

type binaryOp func(x, other fixedint.Int, signed bool) (fixedint.Int, bool)

var nodeOp = map[NodeKind]binaryOp{
	NODE_ADD:      fixedint.Int.Add,
	NODE_SUBTRACT: fixedint.Int.Subtract,
	NODE_MULTIPLY: fixedint.Int.Multiply,
	NODE_DIVIDE:   fixedint.Int.Divide,
}

// Evaluate walks the tree in post-order. Overflow of any operation, at any
// depth, is reported in the result.
func Evaluate(node *Node, config Configuration) (result EvaluationResult) {
	if node.Kind == NODE_NUMBER {
		result.Result = node.Value
		return
	}

	op, ok := nodeOp[node.Kind]
	if !ok {
		panic(fmt.Sprintf("expr: cannot evaluate %v node", node.Kind))
	}

	left := Evaluate(node.Left, config)
	right := Evaluate(node.Right, config)

	value, overflow := op(left.Result, right.Result, config.DataType.Signed)

	result.Result = value
	result.Overflow = left.Overflow || right.Overflow || overflow
	return
}

// Calculate parses and evaluates an expression at full precision. Overflow
// of any literal is folded into the result.
func Calculate(glyphs []glyph.Glyph, variables Variables, config Configuration) (result EvaluationResult, err error) {
	parser := NewParser(glyphs, variables, config)

	node, err := parser.Parse()
	if err != nil {
		return
	}

	result = Evaluate(node, config)
	result.Overflow = result.Overflow || len(parser.ConstantOverflowSpans) > 0
	return
}
