// Package parser turns token sequences into parse trees. It runs
// Dijkstra's shunting-yard algorithm to linearize the infix token stream
// into reverse Polish notation, then rebuilds the RPN stream into a tree
// by stack reconstruction. Both intermediate forms are exposed: the CLI
// and the wasm bridge print them, and consumers that only want a tree use
// Parse.
package parser

import (
	"strconv"
	"strings"

	"github.com/mlaass/terminus/lexer"
)

// contextKind distinguishes the two bracketed scopes the parser tracks.
type contextKind int

const (
	functionContext contextKind = iota // a pending call f(...)
	listContext                        // a pending list literal [...]
)

// context is one entry of the context stack. It records the argument or
// element count of a pending call or list. The count starts at zero and
// is incremented on every comma; the closing delimiter adds one more if
// anything was emitted since the scope opened, so f() and [] finalize
// with count 0.
type context struct {
	kind     contextKind
	count    int // commas seen inside this scope
	startOut int // output length when the scope opened
}

// ShuntingYard converts a token sequence into an RPN node stream.
//
// It maintains an output queue of nodes, an operator stack of tokens,
// and a context stack for pending calls and list literals. Identifiers
// followed by a left paren are held on the operator stack as pending
// function names and emitted as function nodes when their paren closes.
func ShuntingYard(tokens []lexer.Token) ([]*Node, error) {
	output := make([]*Node, 0, len(tokens))
	opStack := make([]lexer.Token, 0, 8)
	ctxStack := make([]*context, 0, 4)

	popEmit := func() {
		top := opStack[len(opStack)-1]
		opStack = opStack[:len(opStack)-1]
		output = append(output, operatorNode(top))
	}

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		switch tok.Type {
		case lexer.NUMBER_TOK:
			output = append(output, numberNode(tok.Literal))

		case lexer.STRING_TOK:
			// strip the surrounding quotes
			output = append(output, &Node{Type: STRING_NODE, Text: tok.Literal[1 : len(tok.Literal)-1]})

		case lexer.DATE_TOK:
			// strip the d prefix and the quotes
			output = append(output, &Node{Type: DATE_NODE, Text: tok.Literal[2 : len(tok.Literal)-1]})

		case lexer.IDENTIFIER_TOK:
			if i+1 < len(tokens) && tokens[i+1].Type == lexer.LEFT_PAREN {
				// pending function name; finalized at the matching ')'
				opStack = append(opStack, tok)
			} else {
				output = append(output, &Node{Type: IDENTIFIER_NODE, Text: tok.Literal})
			}

		case lexer.OPERATOR_TOK, lexer.UNARY_OP_TOK:
			for len(opStack) > 0 {
				top := opStack[len(opStack)-1]
				if top.Type == lexer.LEFT_PAREN || top.Type == lexer.LEFT_BRACKET || top.Type == lexer.IDENTIFIER_TOK {
					break
				}
				if !shouldPop(top, tok) {
					break
				}
				popEmit()
			}
			opStack = append(opStack, tok)

		case lexer.LEFT_PAREN:
			if len(opStack) > 0 && opStack[len(opStack)-1].Type == lexer.IDENTIFIER_TOK {
				ctxStack = append(ctxStack, &context{kind: functionContext, startOut: len(output)})
			}
			opStack = append(opStack, tok)

		case lexer.RIGHT_PAREN:
			for {
				if len(opStack) == 0 {
					return nil, newError(UnbalancedDelimiters)
				}
				top := opStack[len(opStack)-1]
				if top.Type == lexer.LEFT_BRACKET {
					return nil, newError(UnbalancedDelimiters)
				}
				if top.Type == lexer.LEFT_PAREN {
					opStack = opStack[:len(opStack)-1]
					break
				}
				popEmit()
			}
			// a pending identifier under the paren means this was a call
			if len(opStack) > 0 && opStack[len(opStack)-1].Type == lexer.IDENTIFIER_TOK {
				name := opStack[len(opStack)-1]
				opStack = opStack[:len(opStack)-1]
				if len(ctxStack) == 0 || ctxStack[len(ctxStack)-1].kind != functionContext {
					return nil, newError(MalformedExpression)
				}
				ctx := ctxStack[len(ctxStack)-1]
				ctxStack = ctxStack[:len(ctxStack)-1]
				count := ctx.count
				if len(output) > ctx.startOut {
					count++
				}
				output = append(output, &Node{Type: FUNCTION_NODE, Text: name.Literal, Count: count})
			}

		case lexer.LEFT_BRACKET:
			ctxStack = append(ctxStack, &context{kind: listContext, startOut: len(output)})
			opStack = append(opStack, tok)

		case lexer.RIGHT_BRACKET:
			for {
				if len(opStack) == 0 {
					return nil, newError(UnbalancedDelimiters)
				}
				top := opStack[len(opStack)-1]
				if top.Type == lexer.LEFT_PAREN {
					return nil, newError(UnbalancedDelimiters)
				}
				if top.Type == lexer.LEFT_BRACKET {
					opStack = opStack[:len(opStack)-1]
					break
				}
				popEmit()
			}
			if len(ctxStack) == 0 || ctxStack[len(ctxStack)-1].kind != listContext {
				return nil, newError(MalformedExpression)
			}
			ctx := ctxStack[len(ctxStack)-1]
			ctxStack = ctxStack[:len(ctxStack)-1]
			count := ctx.count
			if len(output) > ctx.startOut {
				count++
			}
			output = append(output, &Node{Type: LIST_NODE, Count: count})

		case lexer.COMMA_DELIM:
			for {
				if len(opStack) == 0 {
					return nil, newError(UnbalancedDelimiters)
				}
				top := opStack[len(opStack)-1]
				if top.Type == lexer.LEFT_PAREN || top.Type == lexer.LEFT_BRACKET {
					break
				}
				popEmit()
			}
			if len(ctxStack) == 0 {
				return nil, newError(MalformedExpression)
			}
			ctxStack[len(ctxStack)-1].count++
		}
	}

	// drain the operator stack; leftover delimiters are unbalanced input
	for len(opStack) > 0 {
		top := opStack[len(opStack)-1]
		if top.Type == lexer.LEFT_PAREN || top.Type == lexer.LEFT_BRACKET {
			return nil, newError(UnbalancedDelimiters)
		}
		if top.Type == lexer.IDENTIFIER_TOK {
			return nil, newError(MalformedExpression)
		}
		popEmit()
	}

	return output, nil
}

// numberNode classifies a numeric lexeme as integer or float and parses
// it. A '.', 'e', or 'E' anywhere in the lexeme makes it a float;
// integers that overflow int64 fall back to the float representation.
func numberNode(lexeme string) *Node {
	if strings.ContainsAny(lexeme, ".eE") {
		f, _ := strconv.ParseFloat(lexeme, 64)
		return &Node{Type: FLOAT_NODE, Float: f}
	}
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		f, _ := strconv.ParseFloat(lexeme, 64)
		return &Node{Type: FLOAT_NODE, Float: f}
	}
	return &Node{Type: INTEGER_NODE, Int: i}
}

// operatorNode turns an operator token into its RPN node.
func operatorNode(tok lexer.Token) *Node {
	if tok.Type == lexer.UNARY_OP_TOK {
		return &Node{Type: UNARY_NODE, Text: tok.Literal}
	}
	return &Node{Type: BINARY_NODE, Text: tok.Literal}
}
