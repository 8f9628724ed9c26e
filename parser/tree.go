package parser

// BuildTree reconstructs a parse tree from an RPN node stream.
//
// It walks the stream maintaining a node stack: literals and identifiers
// push; a unary operator pops one child; a binary operator pops two (the
// second pop becomes the left child so source order is preserved);
// function and list nodes pop Count children in reverse to keep call and
// listed order. Ownership of the popped nodes transfers into the new
// parent.
//
// An arity underflow or a final stack of size other than one is a
// malformed expression; an empty stream is an empty expression.
func BuildTree(rpn []*Node) (*Node, error) {
	if len(rpn) == 0 {
		return nil, newError(EmptyExpression)
	}

	stack := make([]*Node, 0, len(rpn))
	pop := func() *Node {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return n
	}

	for _, n := range rpn {
		switch n.Type {
		case INTEGER_NODE, FLOAT_NODE, STRING_NODE, DATE_NODE, IDENTIFIER_NODE:
			stack = append(stack, n)

		case UNARY_NODE:
			if len(stack) < 1 {
				return nil, newError(MalformedExpression)
			}
			n.Children = []*Node{pop()}
			stack = append(stack, n)

		case BINARY_NODE:
			if len(stack) < 2 {
				return nil, newError(MalformedExpression)
			}
			right := pop()
			left := pop()
			n.Children = []*Node{left, right}
			stack = append(stack, n)

		case FUNCTION_NODE, LIST_NODE:
			if len(stack) < n.Count {
				return nil, newError(MalformedExpression)
			}
			children := make([]*Node, n.Count)
			for i := n.Count - 1; i >= 0; i-- {
				children[i] = pop()
			}
			n.Children = children
			stack = append(stack, n)

		default:
			return nil, newError(MalformedExpression)
		}
	}

	if len(stack) != 1 {
		return nil, newError(MalformedExpression)
	}
	return stack[0], nil
}
