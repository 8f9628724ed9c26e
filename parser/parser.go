package parser

import "github.com/mlaass/terminus/lexer"

// Parse runs the full front end on a source expression: lexer,
// shunting-yard, and tree builder. The returned tree is pure data; it
// may be evaluated any number of times and shared across goroutines.
//
// Example:
//
//	tree, err := parser.Parse("min(1, 2) + 3")
func Parse(src string) (*Node, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	rpn, err := ShuntingYard(tokens)
	if err != nil {
		return nil, err
	}
	return BuildTree(rpn)
}
