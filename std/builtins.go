// Package std defines the builtin functions and constants available to
// terminus expressions. Builtins are registered into a global slice from
// per-concern files (convert.go, math.go, strings.go, lists.go,
// dates.go, def.go) during package initialization; the evaluator copies
// the slice into its registry map at construction time. The tables are
// read-only after init and safely shareable across evaluators.
package std

import "github.com/mlaass/terminus/value"

// Runtime is the interface builtins use to call back into the evaluator,
// for higher-order functions (list.map, list.filter) and for def, which
// installs a function into the enclosing environment.
type Runtime interface {
	// CallFunction applies a function value (builtin reference or
	// user-defined function) to the given arguments
	CallFunction(fn value.Value, args ...value.Value) value.Value
	// DefineFunction binds a function value to a name in the current
	// environment frame
	DefineFunction(name string, fn value.Value)
}

// CallbackFunc is the signature of a builtin implementation. It receives
// the runtime and the already-evaluated arguments and returns a value;
// failures are reported by returning an error value.
type CallbackFunc func(rt Runtime, args ...value.Value) value.Value

// Builtin pairs a registry name with its implementation.
type Builtin struct {
	Name     string       // The fixed name expressions call (e.g., "str.concat")
	Callback CallbackFunc // The function implementing the builtin
}

// Builtins holds every registered builtin. Per-concern files append to
// it from their init functions.
var Builtins = make([]*Builtin, 0)

// createError builds a propagating error value. Thin wrapper so builtin
// bodies read like the rest of the package.
func createError(kind value.ErrorKind, format string, a ...interface{}) *value.Error {
	return value.NewError(kind, format, a...)
}

// isNumeric reports whether v is an integer or a float.
func isNumeric(v value.Value) bool {
	t := v.GetType()
	return t == value.IntegerType || t == value.FloatType
}

// floatOf projects a numeric value onto float64.
func floatOf(v value.Value) float64 {
	if i, ok := v.(*value.Integer); ok {
		return float64(i.Value)
	}
	return v.(*value.Float).Value
}

// wantArgs checks an exact argument count.
func wantArgs(name string, args []value.Value, n int) *value.Error {
	if len(args) != n {
		return createError(value.InvalidArgumentCount,
			"%s expects %d argument(s), got %d", name, n, len(args))
	}
	return nil
}

// wantNumeric checks that every argument is an integer or float.
func wantNumeric(name string, args []value.Value) *value.Error {
	for _, arg := range args {
		if !isNumeric(arg) {
			return createError(value.TypeError,
				"%s expects numeric arguments, got '%s'", name, arg.GetType())
		}
	}
	return nil
}
