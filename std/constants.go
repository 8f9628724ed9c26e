package std

import (
	"math"

	"github.com/mlaass/terminus/value"
)

// Constants is the process-wide constants table. Identifier lookup falls
// through to it after the scope chain is exhausted. Read-only after init.
var Constants = map[string]value.Value{
	"pi":    &value.Float{Value: math.Pi},
	"e":     &value.Float{Value: math.E},
	"tau":   &value.Float{Value: 2 * math.Pi},
	"inf":   &value.Float{Value: math.Inf(1)},
	"nan":   &value.Float{Value: math.NaN()},
	"true":  &value.Boolean{Value: true},
	"false": &value.Boolean{Value: false},
	"empty": &value.List{Elements: []value.Value{}},
}

// LookupConstant resolves a name against the constants table.
func LookupConstant(name string) (value.Value, bool) {
	v, ok := Constants[name]
	return v, ok
}
