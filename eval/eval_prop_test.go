package eval

import (
	"fmt"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/mlaass/terminus/parser"
	"github.com/mlaass/terminus/value"
)

// genNumericExpr draws a random arithmetic expression over +, -, and *.
// withFloat forces at least one float literal into the leftmost leaf.
func genNumericExpr(t *rapid.T, depth int, withFloat bool) string {
	if depth <= 0 {
		if withFloat {
			// fixed-point form so the leaf always lexes as a float
			return fmt.Sprintf("%.2f", rapid.Float64Range(-100, 100).Draw(t, "fleaf"))
		}
		return fmt.Sprintf("%d", rapid.Int64Range(-1000, 1000).Draw(t, "ileaf"))
	}
	switch rapid.IntRange(0, 2).Draw(t, "form") {
	case 0:
		return genNumericExpr(t, 0, withFloat)
	case 1:
		return "(" + genNumericExpr(t, depth-1, withFloat) + ")"
	default:
		op := rapid.SampledFrom([]string{"+", "-", "*"}).Draw(t, "op")
		left := genNumericExpr(t, depth-1, withFloat)
		right := genNumericExpr(t, depth-1, false)
		return left + " " + op + " " + right
	}
}

// TestIntegerPurity_Property: an arithmetic expression with no float
// literal always evaluates to an integer; with a float anywhere in it,
// always to a float.
func TestIntegerPurity_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		depth := rapid.IntRange(1, 4).Draw(t, "depth")
		withFloat := rapid.Bool().Draw(t, "withFloat")

		src := genNumericExpr(t, depth, withFloat)
		tree, err := parser.Parse(src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		result, err := NewEvaluator().Evaluate(tree)
		if err != nil {
			t.Fatalf("evaluate %q: %v", src, err)
		}

		expected := value.IntegerType
		if withFloat {
			expected = value.FloatType
		}
		if result.GetType() != expected {
			t.Fatalf("%q: expected %s, got %s", src, expected, result.GetType())
		}
	})
}

// TestListAppend_Property: appending to a list of length n yields length
// n+1 with the appended value structurally equal at the end, leaving the
// original elements in place.
func TestListAppend_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		elems := rapid.SliceOfN(rapid.Int64Range(-50, 50), 0, 6).Draw(t, "elems")
		appended := rapid.Int64Range(-50, 50).Draw(t, "appended")

		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i] = fmt.Sprintf("%d", e)
		}
		src := fmt.Sprintf("list.append([%s], %d)", strings.Join(parts, ", "), appended)

		tree, err := parser.Parse(src)
		if err != nil {
			t.Fatalf("parse %q: %v", src, err)
		}
		result, err := NewEvaluator().Evaluate(tree)
		if err != nil {
			t.Fatalf("evaluate %q: %v", src, err)
		}

		l, ok := result.(*value.List)
		if !ok {
			t.Fatalf("%q: expected list, got %s", src, result.GetType())
		}
		if len(l.Elements) != len(elems)+1 {
			t.Fatalf("%q: expected length %d, got %d", src, len(elems)+1, len(l.Elements))
		}
		if !value.Equals(l.Elements[len(l.Elements)-1], &value.Integer{Value: appended}) {
			t.Fatalf("%q: last element is %s, want %d", src, l.Elements[len(l.Elements)-1].ToString(), appended)
		}
		for i, e := range elems {
			if !value.Equals(l.Elements[i], &value.Integer{Value: e}) {
				t.Fatalf("%q: element %d changed", src, i)
			}
		}
	})
}
