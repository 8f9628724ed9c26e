package std

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaass/terminus/value"
)

// fakeRuntime is a minimal std.Runtime for driving builtins directly.
// CallFunction resolves builtin references against the registry;
// DefineFunction records the binding for inspection.
type fakeRuntime struct {
	defined map[string]value.Value
}

func newFakeRuntime() *fakeRuntime {
	return &fakeRuntime{defined: make(map[string]value.Value)}
}

func (rt *fakeRuntime) CallFunction(fn value.Value, args ...value.Value) value.Value {
	if f, ok := fn.(*value.Function); ok {
		if b := builtinNamed(f.Name); b != nil {
			return b.Callback(rt, args...)
		}
	}
	return value.NewError(value.TypeError, "fake runtime cannot call %s", fn.ToString())
}

func (rt *fakeRuntime) DefineFunction(name string, fn value.Value) {
	rt.defined[name] = fn
}

// builtinNamed scans the registry slice for a name.
func builtinNamed(name string) *Builtin {
	for _, b := range Builtins {
		if b.Name == name {
			return b
		}
	}
	return nil
}

// call invokes a registered builtin by name.
func call(t *testing.T, name string, args ...value.Value) value.Value {
	t.Helper()
	b := builtinNamed(name)
	require.NotNil(t, b, "builtin %q not registered", name)
	return b.Callback(newFakeRuntime(), args...)
}

// TestRegistry_Complete verifies every contract name is registered
func TestRegistry_Complete(t *testing.T) {
	names := []string{
		"int", "float", "bool",
		"min", "max", "abs", "floor", "ceil", "round",
		"sqrt", "log", "log2", "log10", "exp", "mean",
		"str.concat", "str.length", "str.substring", "str.replace",
		"str.toUpper", "str.toLower", "str.trim",
		"list.length", "list.get", "list.append", "list.concat",
		"list.slice", "list.map", "list.filter",
		"date.addDays", "def",
	}
	for _, name := range names {
		assert.NotNil(t, builtinNamed(name), "missing builtin %q", name)
	}

	for _, name := range []string{"pi", "e", "tau", "inf", "nan", "true", "false", "empty"} {
		_, ok := LookupConstant(name)
		assert.True(t, ok, "missing constant %q", name)
	}
}

// TestMinMax_PreserveArgumentType verifies the winner keeps its kind
func TestMinMax_PreserveArgumentType(t *testing.T) {
	result := call(t, "min", &value.Integer{Value: 5}, &value.Integer{Value: 3})
	require.Equal(t, value.IntegerType, result.GetType())
	assert.Equal(t, int64(3), result.(*value.Integer).Value)

	result = call(t, "max", &value.Float{Value: 5.14}, &value.Integer{Value: 3})
	require.Equal(t, value.FloatType, result.GetType())
	assert.Equal(t, 5.14, result.(*value.Float).Value)

	// mixed: the integer wins and stays an integer
	result = call(t, "min", &value.Float{Value: 5.5}, &value.Integer{Value: 2})
	require.Equal(t, value.IntegerType, result.GetType())
	assert.Equal(t, int64(2), result.(*value.Integer).Value)

	// ties keep the first argument
	result = call(t, "min", &value.Integer{Value: 1}, &value.Float{Value: 1.0})
	assert.Equal(t, value.IntegerType, result.GetType())
}

// TestStrLength_UTF16CodeUnits verifies the documented length contract
func TestStrLength_UTF16CodeUnits(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{"", 0},
		{"hello", 5},
		{"héllo", 5},  // BMP characters count once, bytes notwithstanding
		{"aé", 2},
		{"a\U0001F600", 3}, // astral characters count twice
	}
	for _, tt := range tests {
		result := call(t, "str.length", &value.String{Value: tt.input})
		require.Equal(t, value.IntegerType, result.GetType(), "input %q", tt.input)
		assert.Equal(t, tt.expected, result.(*value.Integer).Value, "input %q", tt.input)
	}
}

// TestStrCase_ASCIIOnly verifies case mapping leaves non-ASCII alone
func TestStrCase_ASCIIOnly(t *testing.T) {
	result := call(t, "str.toUpper", &value.String{Value: "abcé"})
	assert.Equal(t, "ABCé", result.(*value.String).Value)

	result = call(t, "str.toLower", &value.String{Value: "ABCÉ"})
	assert.Equal(t, "abcÉ", result.(*value.String).Value)
}

// TestListAppend_DoesNotMutate verifies append copies instead of
// touching the input list
func TestListAppend_DoesNotMutate(t *testing.T) {
	original := &value.List{Elements: []value.Value{&value.Integer{Value: 1}}}
	result := call(t, "list.append", original, &value.Integer{Value: 2})

	require.Equal(t, value.ListType, result.GetType())
	assert.Len(t, result.(*value.List).Elements, 2)
	assert.Len(t, original.Elements, 1)
}

// TestListMap_ThroughRuntime verifies the callback path into the runtime
func TestListMap_ThroughRuntime(t *testing.T) {
	l := &value.List{Elements: []value.Value{
		&value.Integer{Value: -3},
		&value.Integer{Value: 4},
	}}
	result := call(t, "list.map", l, &value.Function{Name: "abs"})
	expected := &value.List{Elements: []value.Value{
		&value.Integer{Value: 3},
		&value.Integer{Value: 4},
	}}
	assert.True(t, value.Equals(result, expected), "got %s", result.ToObject())
}

// TestDef_InstallsParsedFunction verifies def parses the body once and
// binds the function into the runtime
func TestDef_InstallsParsedFunction(t *testing.T) {
	rt := newFakeRuntime()
	b := builtinNamed("def")
	require.NotNil(t, b)

	result := b.Callback(rt,
		&value.String{Value: "twice"},
		&value.List{Elements: []value.Value{&value.String{Value: "x"}}},
		&value.String{Value: "x * 2"},
	)
	require.Equal(t, value.FunctionDefType, result.GetType())

	installed, ok := rt.defined["twice"]
	require.True(t, ok, "def did not bind the function")
	fn := installed.(*value.FunctionDef)
	assert.Equal(t, []string{"x"}, fn.Params)
	assert.NotNil(t, fn.Body)
}

// TestDef_RejectsBadBody verifies a body that does not parse fails def
func TestDef_RejectsBadBody(t *testing.T) {
	rt := newFakeRuntime()
	b := builtinNamed("def")
	result := b.Callback(rt,
		&value.String{Value: "broken"},
		&value.List{},
		&value.String{Value: "(1 +"},
	)
	require.True(t, value.IsError(result))
	assert.Equal(t, value.InvalidOperation, result.(*value.Error).Kind)
	assert.Empty(t, rt.defined)
}

// TestBuiltins_ArgumentValidation spot-checks the error kinds
func TestBuiltins_ArgumentValidation(t *testing.T) {
	tests := []struct {
		name     string
		args     []value.Value
		expected value.ErrorKind
	}{
		{"abs", nil, value.InvalidArgumentCount},
		{"abs", []value.Value{&value.String{Value: "x"}}, value.TypeError},
		{"mean", nil, value.InvalidArgumentCount},
		{"int", []value.Value{&value.Boolean{Value: true}}, value.TypeError},
		{"str.substring", []value.Value{
			&value.String{Value: "abc"},
			&value.Integer{Value: 2},
			&value.Integer{Value: 1},
		}, value.InvalidOperation},
		{"list.get", []value.Value{
			&value.List{},
			&value.Integer{Value: 0},
		}, value.IndexOutOfRange},
		{"list.slice", []value.Value{
			&value.List{},
			&value.Float{Value: 0},
			&value.Float{Value: 0},
		}, value.TypeError},
		{"date.addDays", []value.Value{
			&value.String{Value: "2023-01-01"},
			&value.Integer{Value: 1},
		}, value.TypeError},
	}

	for _, tt := range tests {
		result := call(t, tt.name, tt.args...)
		require.True(t, value.IsError(result), "%s: expected error, got %s", tt.name, result.ToObject())
		assert.Equal(t, tt.expected, result.(*value.Error).Kind, "%s", tt.name)
	}
}
