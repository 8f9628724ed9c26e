package parser

import "github.com/mlaass/terminus/lexer"

// Binary operator precedence, higher binds tighter. Every binary
// operator is left-associative under the shunting-yard pop rule below;
// that includes '**', which therefore groups 2**3**2 as (2**3)**2.
var binaryPrecedence = map[string]int{
	"or": 0,

	"and": 1,
	"|":   1,
	"&":   1,
	"xor": 1,

	"==": 2,
	"!=": 2,

	"<":  3,
	"<=": 3,
	">":  3,
	">=": 3,

	"+":  4,
	"-":  4,
	"<<": 4,
	">>": 4,

	"*":   5,
	"/":   5,
	"//":  5,
	"%":   5,
	"mod": 5,

	"**": 6,
}

// UNARY_PRECEDENCE is the precedence of the prefix operators
// ('-', '!', 'not'). It exceeds every binary precedence, so a pending
// unary stays on the operator stack until a binary operator or a closing
// delimiter flushes it.
const UNARY_PRECEDENCE = 100

// precedenceOf returns the precedence of an operator token.
func precedenceOf(tok lexer.Token) int {
	if tok.Type == lexer.UNARY_OP_TOK {
		return UNARY_PRECEDENCE
	}
	return binaryPrecedence[tok.Literal]
}

// shouldPop reports whether the operator on top of the stack has to be
// emitted before the incoming operator is pushed. Binary operators pop
// everything of greater or equal precedence (left associativity); an
// incoming prefix operator never pops another prefix operator, so chains
// like "not not x" nest instead of colliding.
func shouldPop(top, incoming lexer.Token) bool {
	if incoming.Type == lexer.UNARY_OP_TOK {
		return precedenceOf(top) > UNARY_PRECEDENCE
	}
	return precedenceOf(top) >= precedenceOf(incoming)
}
