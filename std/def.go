package std

import (
	"github.com/mlaass/terminus/parser"
	"github.com/mlaass/terminus/value"
)

var defMethods = []*Builtin{
	{Name: "def", Callback: defFunc}, // Installs a user-defined function
}

// init registers def.
func init() {
	Builtins = append(Builtins, defMethods...)
}

// defFunc installs a user-defined function into the enclosing
// environment. The body string is parsed once, here; the resulting tree
// lives inside the function value and is evaluated in a child scope on
// every call.
//
// Syntax: def(name, params, body)
//
// Example:
//
//	def('twice', ['x'], 'x * 2'); // Installs twice; twice(21) is 42
func defFunc(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("def", args, 3); err != nil {
		return err
	}
	name, ok := args[0].(*value.String)
	if !ok {
		return createError(value.TypeError, "def expects a string name, got '%s'", args[0].GetType())
	}
	paramList, ok := args[1].(*value.List)
	if !ok {
		return createError(value.TypeError, "def expects a list of parameter names, got '%s'", args[1].GetType())
	}
	params := make([]string, len(paramList.Elements))
	for i, elem := range paramList.Elements {
		p, ok := elem.(*value.String)
		if !ok {
			return createError(value.TypeError, "def parameter names must be strings, got '%s'", elem.GetType())
		}
		params[i] = p.Value
	}
	body, ok := args[2].(*value.String)
	if !ok {
		return createError(value.TypeError, "def expects a string body, got '%s'", args[2].GetType())
	}

	tree, err := parser.Parse(body.Value)
	if err != nil {
		return createError(value.InvalidOperation, "def body does not parse: %v", err)
	}

	fn := &value.FunctionDef{Name: name.Value, Params: params, Body: tree}
	rt.DefineFunction(name.Value, fn)
	return fn
}
