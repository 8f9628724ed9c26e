package std

import (
	"math"

	"github.com/mlaass/terminus/value"
)

var mathMethods = []*Builtin{
	{Name: "min", Callback: minFunc},   // Returns the smallest of the arguments
	{Name: "max", Callback: maxFunc},   // Returns the largest of the arguments
	{Name: "abs", Callback: absFunc},   // Returns the absolute value, preserving the numeric kind
	{Name: "floor", Callback: floor},   // Rounds a float down
	{Name: "ceil", Callback: ceil},     // Rounds a float up
	{Name: "round", Callback: round},   // Rounds a float to the nearest integer value
	{Name: "sqrt", Callback: sqrt},     // Returns the square root as float
	{Name: "log", Callback: logFunc},   // Returns the natural logarithm
	{Name: "log2", Callback: log2},     // Returns the base-2 logarithm
	{Name: "log10", Callback: log10},   // Returns the base-10 logarithm
	{Name: "exp", Callback: expFunc},   // Returns e**x
	{Name: "mean", Callback: meanFunc}, // Returns the float average of the arguments
}

// init registers the math builtins.
func init() {
	Builtins = append(Builtins, mathMethods...)
}

// minFunc returns the argument whose float projection is smallest.
//
// Syntax: min(a, b, ...)
//
// The winning argument keeps its original type: min(5, 3) is the
// integer 3, min(5, 2.5) is the float 2.5.
//
// Example:
//
//	min(10, 20);   // Returns 10
//	min(5.5, 2);   // Returns 2
func minFunc(rt Runtime, args ...value.Value) value.Value {
	return pickExtreme("min", args, func(candidate, best float64) bool { return candidate < best })
}

// maxFunc returns the argument whose float projection is largest.
//
// Syntax: max(a, b, ...)
//
// Example:
//
//	max(5.14, 3); // Returns 5.14
func maxFunc(rt Runtime, args ...value.Value) value.Value {
	return pickExtreme("max", args, func(candidate, best float64) bool { return candidate > best })
}

// pickExtreme scans the arguments keeping the first one that wins under
// the given comparison of float projections. The original argument is
// returned, so integer winners stay integers.
func pickExtreme(name string, args []value.Value, wins func(candidate, best float64) bool) value.Value {
	if len(args) < 2 {
		return createError(value.InvalidArgumentCount,
			"%s expects at least 2 arguments, got %d", name, len(args))
	}
	if err := wantNumeric(name, args); err != nil {
		return err
	}
	best := 0
	for i := 1; i < len(args); i++ {
		if wins(floatOf(args[i]), floatOf(args[best])) {
			best = i
		}
	}
	return args[best]
}

// absFunc returns the absolute value of a numeric, preserving its kind.
//
// Syntax: abs(x)
//
// Example:
//
//	abs(-42);  // Returns 42
//	abs(-4.2); // Returns 4.2
func absFunc(rt Runtime, args ...value.Value) value.Value {
	if err := wantArgs("abs", args, 1); err != nil {
		return err
	}
	switch v := args[0].(type) {
	case *value.Integer:
		n := v.Value
		if n < 0 {
			n = -n
		}
		return &value.Integer{Value: n}
	case *value.Float:
		return &value.Float{Value: math.Abs(v.Value)}
	}
	return createError(value.TypeError, "abs expects a numeric argument, got '%s'", args[0].GetType())
}

// floor rounds down. A float stays a float (floor(3.7) is 3.0); an
// integer passes through unchanged.
//
// Syntax: floor(x)
func floor(rt Runtime, args ...value.Value) value.Value {
	return roundWith("floor", args, math.Floor)
}

// ceil rounds up. A float stays a float (ceil(3.2) is 4.0); an integer
// passes through unchanged.
//
// Syntax: ceil(x)
func ceil(rt Runtime, args ...value.Value) value.Value {
	return roundWith("ceil", args, math.Ceil)
}

// round rounds to the nearest integral value, halves away from zero.
//
// Syntax: round(x)
func round(rt Runtime, args ...value.Value) value.Value {
	return roundWith("round", args, math.Round)
}

// roundWith applies a float rounding function, passing integers through.
func roundWith(name string, args []value.Value, f func(float64) float64) value.Value {
	if err := wantArgs(name, args, 1); err != nil {
		return err
	}
	switch v := args[0].(type) {
	case *value.Integer:
		return &value.Integer{Value: v.Value}
	case *value.Float:
		return &value.Float{Value: f(v.Value)}
	}
	return createError(value.TypeError, "%s expects a numeric argument, got '%s'", name, args[0].GetType())
}

// sqrt returns the square root as a float.
//
// Syntax: sqrt(x)
func sqrt(rt Runtime, args ...value.Value) value.Value {
	return floatUnary("sqrt", args, math.Sqrt)
}

// logFunc returns the natural logarithm as a float.
//
// Syntax: log(x)
func logFunc(rt Runtime, args ...value.Value) value.Value {
	return floatUnary("log", args, math.Log)
}

// log2 returns the base-2 logarithm as a float.
//
// Syntax: log2(x)
func log2(rt Runtime, args ...value.Value) value.Value {
	return floatUnary("log2", args, math.Log2)
}

// log10 returns the base-10 logarithm as a float.
//
// Syntax: log10(x)
func log10(rt Runtime, args ...value.Value) value.Value {
	return floatUnary("log10", args, math.Log10)
}

// expFunc returns e raised to x as a float.
//
// Syntax: exp(x)
func expFunc(rt Runtime, args ...value.Value) value.Value {
	return floatUnary("exp", args, math.Exp)
}

// floatUnary applies a one-argument math function to a numeric,
// returning a float.
func floatUnary(name string, args []value.Value, f func(float64) float64) value.Value {
	if err := wantArgs(name, args, 1); err != nil {
		return err
	}
	if !isNumeric(args[0]) {
		return createError(value.TypeError, "%s expects a numeric argument, got '%s'", name, args[0].GetType())
	}
	return &value.Float{Value: f(floatOf(args[0]))}
}

// meanFunc returns the float average of its arguments.
//
// Syntax: mean(a, b, ...)
//
// Example:
//
//	mean(1, 2, 3, 4); // Returns 2.5
func meanFunc(rt Runtime, args ...value.Value) value.Value {
	if len(args) == 0 {
		return createError(value.InvalidArgumentCount, "mean expects at least 1 argument, got 0")
	}
	if err := wantNumeric("mean", args); err != nil {
		return err
	}
	sum := 0.0
	for _, arg := range args {
		sum += floatOf(arg)
	}
	return &value.Float{Value: sum / float64(len(args))}
}
