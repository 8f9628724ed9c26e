package eval

import (
	"math"
	"strings"

	"github.com/mlaass/terminus/value"
)

// evalUnary dispatches a prefix operator on its evaluated operand.
func evalUnary(op string, v value.Value) value.Value {
	switch op {
	case "-":
		switch operand := v.(type) {
		case *value.Integer:
			return &value.Integer{Value: -operand.Value}
		case *value.Float:
			return &value.Float{Value: -operand.Value}
		}
		return value.NewError(value.TypeError, "unary '-' expects a numeric operand, got '%s'", v.GetType())

	case "not", "!":
		switch operand := v.(type) {
		case *value.Integer:
			return &value.Boolean{Value: operand.Value == 0}
		case *value.Float:
			return &value.Boolean{Value: operand.Value == 0.0}
		case *value.Boolean:
			return &value.Boolean{Value: !operand.Value}
		}
		return value.NewError(value.TypeError, "'%s' expects a boolean or numeric operand, got '%s'", op, v.GetType())
	}
	return value.NewError(value.InvalidOperation, "unknown unary operator '%s'", op)
}

// evalBinary dispatches an infix operator on its evaluated operands.
// Numeric operations promote integer+float to float; integer+integer
// stays integer except where the operator itself demands otherwise.
func evalBinary(op string, left, right value.Value) value.Value {
	switch op {
	case "+", "-", "*":
		return evalArithmetic(op, left, right)
	case "/":
		return evalDivide(left, right)
	case "//":
		return evalFloorDivide(left, right)
	case "%", "mod":
		return evalModulo(op, left, right)
	case "**":
		return evalPower(left, right)
	case "==", "!=", "<", "<=", ">", ">=":
		return evalComparison(op, left, right)
	case "and", "or":
		return evalLogical(op, left, right)
	case "&", "|", "xor", "<<", ">>":
		return evalBitwise(op, left, right)
	}
	return value.NewError(value.InvalidOperation, "unknown operator '%s'", op)
}

// bothIntegers extracts both operands as integers if they are.
func bothIntegers(left, right value.Value) (int64, int64, bool) {
	l, lok := left.(*value.Integer)
	r, rok := right.(*value.Integer)
	if lok && rok {
		return l.Value, r.Value, true
	}
	return 0, 0, false
}

// numericOperands validates both operands as numeric for an operator.
func numericOperands(op string, left, right value.Value) *value.Error {
	if !isNumericValue(left) || !isNumericValue(right) {
		return value.NewError(value.TypeError,
			"'%s' expects numeric operands, got '%s' and '%s'", op, left.GetType(), right.GetType())
	}
	return nil
}

// isNumericValue reports whether v is an integer or float.
func isNumericValue(v value.Value) bool {
	t := v.GetType()
	return t == value.IntegerType || t == value.FloatType
}

// floatValue projects an integer or float onto float64.
func floatValue(v value.Value) float64 {
	if i, ok := v.(*value.Integer); ok {
		return float64(i.Value)
	}
	return v.(*value.Float).Value
}

// evalArithmetic handles +, -, and *.
func evalArithmetic(op string, left, right value.Value) value.Value {
	if err := numericOperands(op, left, right); err != nil {
		return err
	}
	if l, r, ok := bothIntegers(left, right); ok {
		switch op {
		case "+":
			return &value.Integer{Value: l + r}
		case "-":
			return &value.Integer{Value: l - r}
		default:
			return &value.Integer{Value: l * r}
		}
	}
	l, r := floatValue(left), floatValue(right)
	switch op {
	case "+":
		return &value.Float{Value: l + r}
	case "-":
		return &value.Float{Value: l - r}
	default:
		return &value.Float{Value: l * r}
	}
}

// evalDivide handles /. Two integers divide with truncation toward
// zero; a zero integer divisor is an error. With a float involved the
// division is IEEE.
func evalDivide(left, right value.Value) value.Value {
	if err := numericOperands("/", left, right); err != nil {
		return err
	}
	if l, r, ok := bothIntegers(left, right); ok {
		if r == 0 {
			return value.NewError(value.DivisionByZero, "%d / 0", l)
		}
		return &value.Integer{Value: l / r}
	}
	return &value.Float{Value: floatValue(left) / floatValue(right)}
}

// evalFloorDivide handles //. Two integers produce the floored
// quotient; otherwise the float quotient is floored.
func evalFloorDivide(left, right value.Value) value.Value {
	if err := numericOperands("//", left, right); err != nil {
		return err
	}
	if l, r, ok := bothIntegers(left, right); ok {
		if r == 0 {
			return value.NewError(value.DivisionByZero, "%d // 0", l)
		}
		q := l / r
		if l%r != 0 && (l < 0) != (r < 0) {
			q--
		}
		return &value.Integer{Value: q}
	}
	return &value.Float{Value: math.Floor(floatValue(left) / floatValue(right))}
}

// evalModulo handles % and mod.
func evalModulo(op string, left, right value.Value) value.Value {
	if err := numericOperands(op, left, right); err != nil {
		return err
	}
	if l, r, ok := bothIntegers(left, right); ok {
		if r == 0 {
			return value.NewError(value.DivisionByZero, "%d %s 0", l, op)
		}
		return &value.Integer{Value: l % r}
	}
	return &value.Float{Value: math.Mod(floatValue(left), floatValue(right))}
}

// evalPower handles **. An integer base with a non-negative integer
// exponent stays integer; a negative exponent promotes to float, as
// does any float operand.
func evalPower(left, right value.Value) value.Value {
	if err := numericOperands("**", left, right); err != nil {
		return err
	}
	if l, r, ok := bothIntegers(left, right); ok && r >= 0 {
		return &value.Integer{Value: intPow(l, r)}
	}
	return &value.Float{Value: math.Pow(floatValue(left), floatValue(right))}
}

// intPow raises base to a non-negative exponent by squaring.
func intPow(base, exp int64) int64 {
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// evalComparison handles the six relational operators. Numerics (with
// booleans projected to 0/1) compare after promotion; strings compare
// with strings and dates with dates by lexicographic byte order. Any
// other pairing is a type error.
func evalComparison(op string, left, right value.Value) value.Value {
	cmp, unordered, errVal := compareValues(op, left, right)
	if errVal != nil {
		return errVal
	}
	if unordered {
		// NaN compares false with everything except !=
		return &value.Boolean{Value: op == "!="}
	}
	switch op {
	case "==":
		return &value.Boolean{Value: cmp == 0}
	case "!=":
		return &value.Boolean{Value: cmp != 0}
	case "<":
		return &value.Boolean{Value: cmp < 0}
	case "<=":
		return &value.Boolean{Value: cmp <= 0}
	case ">":
		return &value.Boolean{Value: cmp > 0}
	default:
		return &value.Boolean{Value: cmp >= 0}
	}
}

// compareValues orders two comparable values, returning -1, 0, or 1.
// The second result marks an unordered pair (a NaN operand).
func compareValues(op string, left, right value.Value) (int, bool, *value.Error) {
	if isOrderable(left) && isOrderable(right) {
		l, r := orderableValue(left), orderableValue(right)
		switch {
		case l < r:
			return -1, false, nil
		case l > r:
			return 1, false, nil
		case l == r:
			return 0, false, nil
		}
		return 0, true, nil
	}

	lt, rt := left.GetType(), right.GetType()
	if (lt == value.StringType && rt == value.StringType) || (lt == value.DateType && rt == value.DateType) {
		return strings.Compare(left.ToString(), right.ToString()), false, nil
	}
	return 0, false, value.NewError(value.TypeError,
		"'%s' cannot compare '%s' with '%s'", op, lt, rt)
}

// isOrderable reports whether v participates in numeric ordering:
// integers, floats, and booleans (as 0/1).
func isOrderable(v value.Value) bool {
	switch v.GetType() {
	case value.IntegerType, value.FloatType, value.BooleanType:
		return true
	}
	return false
}

// orderableValue projects an orderable value onto float64.
func orderableValue(v value.Value) float64 {
	if b, ok := v.(*value.Boolean); ok {
		if b.Value {
			return 1
		}
		return 0
	}
	return floatValue(v)
}

// evalLogical handles and/or on boolean operands. Both operands were
// already evaluated by the caller; there is no short-circuit, matching
// the reference behavior.
func evalLogical(op string, left, right value.Value) value.Value {
	l, lok := left.(*value.Boolean)
	r, rok := right.(*value.Boolean)
	if !lok || !rok {
		return value.NewError(value.TypeError,
			"'%s' expects boolean operands, got '%s' and '%s'", op, left.GetType(), right.GetType())
	}
	if op == "and" {
		return &value.Boolean{Value: l.Value && r.Value}
	}
	return &value.Boolean{Value: l.Value || r.Value}
}

// evalBitwise handles &, |, xor, <<, >> on integer operands. Shift
// amounts must be non-negative and are clamped to 63.
func evalBitwise(op string, left, right value.Value) value.Value {
	l, r, ok := bothIntegers(left, right)
	if !ok {
		return value.NewError(value.TypeError,
			"'%s' expects integer operands, got '%s' and '%s'", op, left.GetType(), right.GetType())
	}
	switch op {
	case "&":
		return &value.Integer{Value: l & r}
	case "|":
		return &value.Integer{Value: l | r}
	case "xor":
		return &value.Integer{Value: l ^ r}
	}

	if r < 0 {
		return value.NewError(value.InvalidOperation, "negative shift amount %d", r)
	}
	if r > 63 {
		r = 63
	}
	if op == "<<" {
		return &value.Integer{Value: l << uint(r)}
	}
	return &value.Integer{Value: l >> uint(r)}
}
