package eval

import (
	"fmt"

	"github.com/leinonen/scheme/pkg/types"
)

// maxRecursionDepth bounds nested non-tail evaluation as a last-resort
// safety net; proper tail calls never touch it since they run through the
// trampoline loop instead of recursing. Single-threaded by design
// (spec.md §5), so a package-level counter is sufficient.
const maxRecursionDepth = 10000

var recursionDepth int

// Eval is the non-tail entry point: it loops until a concrete Value falls
// out, draining any Thunks that tail positions defer along the way.
func Eval(expr types.Value, env types.Env) (types.Value, error) {
	recursionDepth++
	defer func() { recursionDepth-- }()
	if recursionDepth > maxRecursionDepth {
		return nil, fmt.Errorf("maximum recursion depth exceeded")
	}

	result, err := evalTail(expr, env)
	if err != nil {
		return nil, err
	}
	for {
		thunk, ok := result.(*Thunk)
		if !ok {
			return result, nil
		}
		result, err = evalStep(thunk.Expr, thunk.Env)
		if err != nil {
			return nil, err
		}
	}
}

// evalTail resolves atoms immediately (tail position is irrelevant for
// them) and defers everything else as a Thunk, to be unwound by the
// trampoline in Eval.
func evalTail(expr types.Value, env types.Env) (types.Value, error) {
	if expr == nil {
		return nil, fmt.Errorf("malformed list: nil expression")
	}
	if sym, ok := expr.(types.Symbol); ok {
		return env.Lookup(sym)
	}
	if selfEvaluating(expr) {
		return expr, nil
	}
	return &Thunk{Expr: expr, Env: env}, nil
}

// selfEvaluating reports whether expr evaluates to itself: numbers,
// strings, booleans, and the okay unit. The empty list is deliberately
// excluded — spec.md §4.2 calls it out as not a valid expression.
func selfEvaluating(expr types.Value) bool {
	switch expr.(type) {
	case types.Number, types.String, types.Boolean:
		return true
	}
	return types.IsOkay(expr)
}

// evalStep performs one dispatch step on a non-atomic expression: special
// form lookup or application. Its result may itself be a *Thunk, which
// Eval's loop continues to unwind.
func evalStep(expr types.Value, env types.Env) (types.Value, error) {
	if types.IsEmptyList(expr) {
		return nil, fmt.Errorf("malformed list: ()")
	}
	if !types.IsList(expr) {
		return nil, fmt.Errorf("malformed list: %s", expr.String())
	}
	pair := expr.(*types.Pair)
	head, tail := pair.First, pair.Second

	if sym, ok := head.(types.Symbol); ok {
		if handler, ok := SpecialForms[sym]; ok {
			return handler(tail, env)
		}
	}

	procedure, err := Eval(head, env)
	if err != nil {
		return nil, err
	}
	args, err := evalArgs(tail, env)
	if err != nil {
		return nil, err
	}
	return Apply(procedure, args, env)
}

// evalArgs evaluates each operand of an application left to right,
// non-tail, producing a Go slice of argument values.
func evalArgs(operands types.Value, env types.Env) ([]types.Value, error) {
	elems, err := types.ToSlice(operands)
	if err != nil {
		return nil, fmt.Errorf("malformed argument list: %w", err)
	}
	args := make([]types.Value, len(elems))
	for i, e := range elems {
		v, err := Eval(e, env)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// Apply applies procedure to args. Primitive calls resolve immediately;
// Lambda and Mu calls build a new frame and return the body's tail
// expression as a Thunk, so chains of procedure calls run in bounded Go
// stack space.
func Apply(procedure types.Value, args []types.Value, callerEnv types.Env) (types.Value, error) {
	switch p := procedure.(type) {
	case *types.Primitive:
		var env types.Env
		if p.NeedsEnv {
			env = callerEnv
		}
		v, err := p.Fn(args, env)
		if err != nil {
			return nil, fmt.Errorf("scheme error: %w", err)
		}
		return v, nil

	case *types.Lambda:
		newEnv, err := p.DefiningEnv.MakeChild(p.Formals, types.FromSlice(args))
		if err != nil {
			return nil, err
		}
		return evalBodyTail(p.Body, newEnv)

	case *types.Mu:
		// Dynamic scope: the new frame's parent is the caller's environment
		// at this call site, not any environment captured at mu-construction
		// time (Mu captures none).
		newEnv, err := callerEnv.MakeChild(p.Formals, types.FromSlice(args))
		if err != nil {
			return nil, err
		}
		return evalBodyTail(p.Body, newEnv)

	default:
		return nil, fmt.Errorf("cannot call: %s", describeValue(procedure))
	}
}

func describeValue(v types.Value) string {
	if v == nil {
		return "nil"
	}
	return v.String()
}

// evalBodyTail evaluates a proper list of body expressions as an implicit
// begin: every expression but the last runs non-tail, the last runs in
// tail position (returned as a Value or Thunk).
func evalBodyTail(body types.Value, env types.Env) (types.Value, error) {
	if types.IsEmptyList(body) {
		return types.Okay, nil
	}
	pair, ok := body.(*types.Pair)
	if !ok {
		return nil, fmt.Errorf("badly formed body: %s", body.String())
	}
	for {
		if types.IsEmptyList(pair.Second) {
			return evalTail(pair.First, env)
		}
		if _, err := Eval(pair.First, env); err != nil {
			return nil, err
		}
		next, ok := pair.Second.(*types.Pair)
		if !ok {
			return nil, fmt.Errorf("badly formed body: %s", body.String())
		}
		pair = next
	}
}
