package repl

import (
	"fmt"

	"github.com/leinonen/scheme/pkg/eval"
	"github.com/leinonen/scheme/pkg/reader"
	"github.com/leinonen/scheme/pkg/types"
)

// LoadFile reads and evaluates every top-level form in filename against
// env, in order, stopping at the first error.
func LoadFile(filename string, env types.Env) error {
	_, err := eval.Eval(types.Cons(types.Symbol("load"), types.Cons(types.String(filename), types.Nil)), env)
	if err != nil {
		return fmt.Errorf("in %s: %w", filename, err)
	}
	return nil
}

// EvalString parses and evaluates every top-level form in source against
// env, returning the last value produced. Each parse error aborts
// immediately; each eval error is returned to the caller to report and
// the loop stops, like the load primitive, which also stops at the first
// failing form. Effects of forms evaluated before the error persist.
func EvalString(source string, env types.Env) (types.Value, error) {
	p, err := reader.NewParser(source)
	if err != nil {
		return nil, err
	}
	var result types.Value = types.Okay
	for {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return result, nil
		}
		result, err = eval.Eval(expr, env)
		if err != nil {
			return nil, err
		}
	}
}
