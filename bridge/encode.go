// Package bridge exposes the terminus pipeline as JSON for non-Go
// hosts. Each entry point mirrors one wasm export: Tokenize,
// ShuntingYard, ParseToTree, and Evaluate take a source expression and
// return a JSON string in the fixed bridge schema. The package is pure
// and stateless; the wasm binary in cmd/terminus-wasm is a thin shell
// around it.
package bridge

import (
	"encoding/json"
	"math"

	"github.com/mlaass/terminus/eval"
	"github.com/mlaass/terminus/lexer"
	"github.com/mlaass/terminus/parser"
	"github.com/mlaass/terminus/value"
)

// Tokenize scans src and returns the token list as a JSON array of
// {"type": <kind>, "value": <lexeme>} objects.
func Tokenize(src string) (string, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return "", err
	}
	arr := make([]map[string]any, 0, len(tokens))
	for _, tok := range tokens {
		arr = append(arr, map[string]any{
			"type":  string(tok.Type),
			"value": tok.Literal,
		})
	}
	return marshal(arr)
}

// ShuntingYard runs the front end through the RPN pass and returns the
// node stream as a JSON array.
func ShuntingYard(src string) (string, error) {
	rpn, err := rpnOf(src)
	if err != nil {
		return "", err
	}
	arr := make([]map[string]any, 0, len(rpn))
	for _, n := range rpn {
		arr = append(arr, nodeJSON(n, false))
	}
	return marshal(arr)
}

// ParseToTree parses src fully and returns the tree as nested JSON,
// children under "args".
func ParseToTree(src string) (string, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return "", err
	}
	return marshal(nodeJSON(tree, true))
}

// Evaluate parses and evaluates src against a fresh root scope and
// returns the result as {"type": <kind>, "value": <v>}.
func Evaluate(src string) (string, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return "", err
	}
	result, err := eval.NewEvaluator().Evaluate(tree)
	if err != nil {
		return "", err
	}
	return marshal(valueJSON(result))
}

// rpnOf runs lexer and shunting-yard.
func rpnOf(src string) ([]*parser.Node, error) {
	tokens, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return parser.ShuntingYard(tokens)
}

// marshal renders v as a compact JSON string.
func marshal(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// nodeJSON encodes one node in the bridge schema: "value" for literals,
// identifiers, and operators; "name" and "argCount" for function nodes;
// "elementCount" for list nodes. With withArgs set, children recurse
// under "args".
func nodeJSON(n *parser.Node, withArgs bool) map[string]any {
	m := map[string]any{"type": string(n.Type)}
	switch n.Type {
	case parser.INTEGER_NODE:
		m["value"] = n.Int
	case parser.FLOAT_NODE:
		m["value"] = n.Float
	case parser.STRING_NODE, parser.DATE_NODE, parser.IDENTIFIER_NODE,
		parser.UNARY_NODE, parser.BINARY_NODE:
		m["value"] = n.Text
	case parser.FUNCTION_NODE:
		m["name"] = n.Text
		m["argCount"] = n.Count
	case parser.LIST_NODE:
		m["elementCount"] = n.Count
	}
	if withArgs && len(n.Children) > 0 {
		args := make([]map[string]any, 0, len(n.Children))
		for _, child := range n.Children {
			args = append(args, nodeJSON(child, true))
		}
		m["args"] = args
	}
	return m
}

// valueJSON encodes an evaluation result: numbers as JSON numbers,
// booleans as JSON booleans, strings and dates as JSON strings, lists
// as arrays of the same shape, and functions as null. Non-finite floats
// have no JSON number form and encode as null.
func valueJSON(v value.Value) map[string]any {
	m := map[string]any{"type": string(v.GetType())}
	switch val := v.(type) {
	case *value.Integer:
		m["value"] = val.Value
	case *value.Float:
		if math.IsNaN(val.Value) || math.IsInf(val.Value, 0) {
			m["value"] = nil
		} else {
			m["value"] = val.Value
		}
	case *value.Boolean:
		m["value"] = val.Value
	case *value.String:
		m["value"] = val.Value
	case *value.Date:
		m["value"] = val.Value
	case *value.List:
		elems := make([]map[string]any, 0, len(val.Elements))
		for _, elem := range val.Elements {
			elems = append(elems, valueJSON(elem))
		}
		m["value"] = elems
	default:
		m["value"] = nil
	}
	return m
}
