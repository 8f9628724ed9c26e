package parser

import (
	"fmt"
	"strings"
)

// NodeType tags a parse-tree node with its kind.
type NodeType string

const (
	// INTEGER_NODE is a signed 64-bit integer literal
	INTEGER_NODE NodeType = "literal_integer"
	// FLOAT_NODE is a 64-bit IEEE float literal
	FLOAT_NODE NodeType = "literal_float"
	// STRING_NODE is a string literal with the quotes stripped
	STRING_NODE NodeType = "literal_string"
	// DATE_NODE is a date literal body with the d prefix and quotes stripped
	DATE_NODE NodeType = "literal_date"
	// IDENTIFIER_NODE is a symbol name
	IDENTIFIER_NODE NodeType = "identifier"
	// UNARY_NODE is a prefix operator with exactly one child
	UNARY_NODE NodeType = "unary_operator"
	// BINARY_NODE is an infix operator with exactly two children
	BINARY_NODE NodeType = "binary_operator"
	// FUNCTION_NODE is a call: a name, an argument count, and the
	// argument children in call order
	FUNCTION_NODE NodeType = "function"
	// LIST_NODE is a list literal: an element count and the element
	// children in listed order
	LIST_NODE NodeType = "list"
)

// Node is one node of the RPN stream or the parse tree. The same struct
// serves both stages: the shunting-yard pass emits childless nodes, and
// the tree builder links them together through Children.
//
// Payload usage by kind:
//   - INTEGER_NODE: Int
//   - FLOAT_NODE: Float
//   - STRING_NODE, DATE_NODE: Text (literal body)
//   - IDENTIFIER_NODE: Text (symbol name)
//   - UNARY_NODE, BINARY_NODE: Text (operator lexeme)
//   - FUNCTION_NODE: Text (function name), Count (arity)
//   - LIST_NODE: Count (element count)
//
// Invariants: a function node's Count equals len(Children); a list
// node's Count equals len(Children); a binary node has exactly two
// children (left, right); a unary node has exactly one.
type Node struct {
	Type     NodeType // the node kind
	Int      int64    // integer literal payload
	Float    float64  // float literal payload
	Text     string   // string body, name, or operator lexeme
	Count    int      // arity / element count
	Children []*Node  // subtrees, owned by this node
}

// Label renders the node without its children, for RPN listings and
// tree dumps.
func (n *Node) Label() string {
	switch n.Type {
	case INTEGER_NODE:
		return fmt.Sprintf("int(%d)", n.Int)
	case FLOAT_NODE:
		return fmt.Sprintf("float(%g)", n.Float)
	case STRING_NODE:
		return fmt.Sprintf("string(%s)", n.Text)
	case DATE_NODE:
		return fmt.Sprintf("date(%s)", n.Text)
	case IDENTIFIER_NODE:
		return fmt.Sprintf("ident(%s)", n.Text)
	case UNARY_NODE:
		return fmt.Sprintf("unary(%s)", n.Text)
	case BINARY_NODE:
		return fmt.Sprintf("binary(%s)", n.Text)
	case FUNCTION_NODE:
		return fmt.Sprintf("call(%s/%d)", n.Text, n.Count)
	case LIST_NODE:
		return fmt.Sprintf("list(%d)", n.Count)
	}
	return string(n.Type)
}

// WriteTree writes the subtree rooted at n into b, one node per line,
// indented by depth.
func (n *Node) WriteTree(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("    ")
	}
	b.WriteString(n.Label())
	b.WriteString("\n")
	for _, child := range n.Children {
		child.WriteTree(b, depth+1)
	}
}

// String returns the indented multi-line rendering of the subtree.
func (n *Node) String() string {
	var b strings.Builder
	n.WriteTree(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}
