package primitives

import (
	"github.com/leinonen/scheme/pkg/env"
	"github.com/leinonen/scheme/pkg/types"
)

type entry struct {
	name     types.Symbol
	needsEnv bool
	fn       func([]types.Value, types.Env) (types.Value, error)
}

func catalog() []entry {
	return []entry{
		{"+", false, primAdd},
		{"-", false, primSub},
		{"*", false, primMul},
		{"/", false, primDiv},
		{"%", false, primMod},
		{"=", false, comparison("=", func(a, b float64) bool { return a == b })},
		{"<", false, comparison("<", func(a, b float64) bool { return a < b })},
		{">", false, comparison(">", func(a, b float64) bool { return a > b })},
		{"<=", false, comparison("<=", func(a, b float64) bool { return a <= b })},
		{">=", false, comparison(">=", func(a, b float64) bool { return a >= b })},
		{"abs", false, primAbs},
		{"min", false, minMax("min", func(a, b float64) bool { return a < b })},
		{"max", false, minMax("max", func(a, b float64) bool { return a > b })},

		{"cons", false, primCons},
		{"car", false, primCar},
		{"cdr", false, primCdr},
		{"list", false, primList},
		{"length", false, primLength},
		{"append", false, primAppend},
		{"reverse", false, primReverse},
		{"list-tail", false, primListTail},
		{"list-ref", false, primListRef},
		{"list?", false, primIsList},
		{"pair?", false, primIsPair},
		{"null?", false, primIsNull},

		{"eq?", false, primEq},
		{"equal?", false, primEqual},
		{"number?", false, typePredicate("number?", isNumber)},
		{"symbol?", false, typePredicate("symbol?", isSymbol)},
		{"string?", false, typePredicate("string?", isString)},
		{"boolean?", false, typePredicate("boolean?", isBoolean)},
		{"procedure?", false, typePredicate("procedure?", isProcedure)},
		{"zero?", false, typePredicate("zero?", isZero)},
		{"not", false, primNot},

		{"display", false, primDisplay},
		{"newline", false, primNewline},
		{"force", false, primForce},
		{"load", true, primLoad},
	}
}

// NewGlobalFrame builds a root environment frame with the full native
// procedure catalog bound, ready to serve as the parent environment for
// a reader/evaluator session.
func NewGlobalFrame() *env.Frame {
	frame := env.New(nil)
	for _, e := range catalog() {
		frame.Define(e.name, &types.Primitive{Name: string(e.name), NeedsEnv: e.needsEnv, Fn: e.fn})
	}
	return frame
}
