package expr

import (
	"fmt"

	"github.com/ezrec/radix/fixedint"
)

// NodeKind is the type of an expression tree node.
type NodeKind int

//go:generate go tool stringer -linecomment -type=NodeKind
const (
	NODE_NUMBER   = NodeKind(0) // number
	NODE_ADD      = NodeKind(1) // add
	NODE_SUBTRACT = NodeKind(2) // subtract
	NODE_MULTIPLY = NodeKind(3) // multiply
	NODE_DIVIDE   = NodeKind(4) // divide
)

// Node is an expression tree node. Number nodes hold a Value; every other
// kind owns its Left and Right operands.
type Node struct {
	Span  GlyphSpan    // Glyphs the node was parsed from.
	Kind  NodeKind     // Node type.
	Value fixedint.Int // Value of a NODE_NUMBER.
	Left  *Node        // Left operand.
	Right *Node        // Right operand.
}

func numberNode(span GlyphSpan, value fixedint.Int) *Node {
	return &Node{Span: span, Kind: NODE_NUMBER, Value: value}
}

func binaryNode(kind NodeKind, left, right *Node) *Node {
	return &Node{
		Span:  left.Span.Merge(right.Span),
		Kind:  kind,
		Left:  left,
		Right: right,
	}
}

// String renders the tree in prefix form, e.g. (add 8'h2 8'h3).
func (n *Node) String() string {
	if n.Kind == NODE_NUMBER {
		return n.Value.String()
	}
	return fmt.Sprintf("(%v %v %v)", n.Kind, n.Left, n.Right)
}
