// Package eval implements the terminus tree-walking evaluator. A parse
// tree is walked with one central switch per node kind; the walk
// produces tagged values, dispatching operators through the promotion
// rules in evaluator_operators.go and function calls through the builtin
// registry and the scope chain. Errors propagate as error values and are
// converted to Go errors at the Evaluate boundary.
package eval

import (
	"github.com/mlaass/terminus/parser"
	"github.com/mlaass/terminus/scope"
	"github.com/mlaass/terminus/std"
	"github.com/mlaass/terminus/value"
)

// Evaluator holds the evaluation state: the current scope frame and the
// builtin registry. Multiple evaluators may run concurrently as long as
// they do not share a mutable scope; the registry itself is read-only.
type Evaluator struct {
	Scp      *scope.Scope            // Current scope for identifier bindings
	Builtins map[string]*std.Builtin // Builtin registry, copied from std at construction
}

// NewEvaluator creates an evaluator with a fresh root scope and the full
// builtin registry.
//
// Example usage:
//
//	ev := NewEvaluator()
//	tree, _ := parser.Parse("1 + 2")
//	result, err := ev.Evaluate(tree)
func NewEvaluator() *Evaluator {
	ev := &Evaluator{
		Scp:      scope.NewScope(nil),
		Builtins: make(map[string]*std.Builtin),
	}
	for _, builtin := range std.Builtins {
		ev.Builtins[builtin.Name] = builtin
	}
	return ev
}

// Evaluate walks the tree and returns the final value, or the
// evaluation error if the walk failed. The tree is not modified and may
// be evaluated again.
func (e *Evaluator) Evaluate(tree *parser.Node) (value.Value, error) {
	result := e.Eval(tree)
	if errVal, ok := result.(*value.Error); ok {
		return nil, errVal
	}
	return result, nil
}

// Evaluate is the package-level convenience: it evaluates a tree against
// the given scope (nil for a fresh root scope) with a new evaluator.
func Evaluate(tree *parser.Node, scp *scope.Scope) (value.Value, error) {
	ev := NewEvaluator()
	if scp != nil {
		ev.Scp = scp
	}
	return ev.Evaluate(tree)
}

// Eval dispatches on the node kind. Failures return an error value that
// callers must check with value.IsError; every composite case stops at
// the first failing child, so a single failure surfaces per evaluation.
func (e *Evaluator) Eval(n *parser.Node) value.Value {
	switch n.Type {
	case parser.INTEGER_NODE:
		return &value.Integer{Value: n.Int}

	case parser.FLOAT_NODE:
		return &value.Float{Value: n.Float}

	case parser.STRING_NODE:
		return &value.String{Value: n.Text}

	case parser.DATE_NODE:
		return &value.Date{Value: n.Text}

	case parser.IDENTIFIER_NODE:
		return e.lookupIdentifier(n.Text)

	case parser.UNARY_NODE:
		operand := e.Eval(n.Children[0])
		if value.IsError(operand) {
			return operand
		}
		return evalUnary(n.Text, operand)

	case parser.BINARY_NODE:
		// children evaluate left to right, both always unless the left
		// one fails (no short-circuit for and/or)
		left := e.Eval(n.Children[0])
		if value.IsError(left) {
			return left
		}
		right := e.Eval(n.Children[1])
		if value.IsError(right) {
			return right
		}
		return evalBinary(n.Text, left, right)

	case parser.FUNCTION_NODE:
		args := make([]value.Value, len(n.Children))
		for i, child := range n.Children {
			v := e.Eval(child)
			if value.IsError(v) {
				return v
			}
			args[i] = v
		}
		return e.callNamed(n.Text, args)

	case parser.LIST_NODE:
		elements := make([]value.Value, len(n.Children))
		for i, child := range n.Children {
			v := e.Eval(child)
			if value.IsError(v) {
				return v
			}
			elements[i] = v
		}
		return &value.List{Elements: elements}
	}

	return value.NewError(value.InvalidOperation, "unknown node kind '%s'", n.Type)
}

// lookupIdentifier resolves a name: the scope chain first, then the
// constants table, then the builtin registry (yielding a function
// value).
func (e *Evaluator) lookupIdentifier(name string) value.Value {
	if v, ok := e.Scp.LookUp(name); ok {
		return v
	}
	if v, ok := std.LookupConstant(name); ok {
		return v
	}
	if _, ok := e.Builtins[name]; ok {
		return &value.Function{Name: name}
	}
	return value.NewError(value.UndefinedIdentifier, "identifier not found: (%s)", name)
}

// callNamed invokes the function a call node names. Scope bindings
// (user-defined functions, function-valued parameters) shadow the
// builtin registry.
func (e *Evaluator) callNamed(name string, args []value.Value) value.Value {
	if v, ok := e.Scp.LookUp(name); ok {
		switch v.GetType() {
		case value.FunctionType, value.FunctionDefType:
			return e.CallFunction(v, args...)
		}
		return value.NewError(value.TypeError, "'%s' is not a function", name)
	}
	if builtin, ok := e.Builtins[name]; ok {
		return builtin.Callback(e, args...)
	}
	return value.NewError(value.UndefinedIdentifier, "identifier not found: (%s)", name)
}

// CallFunction applies a function value to arguments. A builtin
// reference dispatches through the registry; a user-defined function
// gets a child scope with its parameters bound, then its stored body
// tree is evaluated. This implements the std.Runtime interface.
func (e *Evaluator) CallFunction(fn value.Value, args ...value.Value) value.Value {
	switch f := fn.(type) {
	case *value.Function:
		if builtin, ok := e.Builtins[f.Name]; ok {
			return builtin.Callback(e, args...)
		}
		return value.NewError(value.UndefinedIdentifier, "identifier not found: (%s)", f.Name)

	case *value.FunctionDef:
		if len(args) != len(f.Params) {
			return value.NewError(value.InvalidArgumentCount,
				"%s expects %d argument(s), got %d", f.Name, len(f.Params), len(args))
		}
		callScope := scope.NewScope(e.Scp)
		for i, param := range f.Params {
			callScope.Bind(param, args[i])
		}
		oldScope := e.Scp
		e.Scp = callScope
		result := e.Eval(f.Body)
		e.Scp = oldScope
		return result
	}
	return value.NewError(value.TypeError, "'%s' is not a function", fn.GetType())
}

// DefineFunction binds a function value into the current scope frame.
// This implements the std.Runtime interface; def uses it to install
// user-defined functions.
func (e *Evaluator) DefineFunction(name string, fn value.Value) {
	e.Scp.Bind(name, fn)
}
