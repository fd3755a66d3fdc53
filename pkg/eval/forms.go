package eval

import (
	"fmt"

	"github.com/leinonen/scheme/pkg/types"
)

// FormHandler is the signature every special form shares: given its
// operand list and the current environment, produce a Value or defer a
// tail position as a Thunk.
type FormHandler func(operands types.Value, env types.Env) (types.Value, error)

// SpecialForms is the name→handler registry populated at package init.
// Names in this set shadow any same-named binding appearing in head
// position, per spec.md §6.
var SpecialForms map[types.Symbol]FormHandler

func init() {
	SpecialForms = map[types.Symbol]FormHandler{
		"define":      evalDefine,
		"quote":       evalQuote,
		"if":          evalIf,
		"lambda":      evalLambda,
		"mu":          evalMu,
		"let":         evalLet,
		"begin":       evalBegin,
		"and":         evalAnd,
		"or":          evalOr,
		"cond":        evalCond,
		"delay":       evalDelay,
		"cons-stream": evalConsStream,
	}
}

func evalDefine(operands types.Value, env types.Env) (types.Value, error) {
	if err := CheckForm(operands, 2, noMax); err != nil {
		return nil, err
	}
	pair := operands.(*types.Pair)
	target := pair.First
	rest := pair.Second

	if sym, ok := target.(types.Symbol); ok {
		if err := CheckForm(operands, 2, 2); err != nil {
			return nil, err
		}
		valExpr := rest.(*types.Pair).First
		val, err := Eval(valExpr, env)
		if err != nil {
			return nil, err
		}
		env.Define(sym, val)
		return sym, nil
	}

	if targetPair, ok := target.(*types.Pair); ok {
		nameSym, ok := targetPair.First.(types.Symbol)
		if !ok {
			return nil, fmt.Errorf("Non-symbol: %s", describeValue(targetPair.First))
		}
		lambda := &types.Lambda{Formals: targetPair.Second, Body: rest, DefiningEnv: env}
		env.Define(nameSym, lambda)
		return nameSym, nil
	}

	return nil, fmt.Errorf("Non-symbol: %s", describeValue(target))
}

func evalQuote(operands types.Value, env types.Env) (types.Value, error) {
	if err := CheckForm(operands, 1, 1); err != nil {
		return nil, err
	}
	return operands.(*types.Pair).First, nil
}

func evalIf(operands types.Value, env types.Env) (types.Value, error) {
	if err := CheckForm(operands, 2, 3); err != nil {
		return nil, err
	}
	elems, _ := types.ToSlice(operands)
	pred, err := Eval(elems[0], env)
	if err != nil {
		return nil, err
	}
	if types.IsTrue(pred) {
		return evalTail(elems[1], env)
	}
	if len(elems) == 3 {
		return evalTail(elems[2], env)
	}
	return types.Okay, nil
}

func evalLambda(operands types.Value, env types.Env) (types.Value, error) {
	if err := CheckForm(operands, 2, noMax); err != nil {
		return nil, err
	}
	pair := operands.(*types.Pair)
	if err := CheckFormals(pair.First); err != nil {
		return nil, err
	}
	return &types.Lambda{Formals: pair.First, Body: pair.Second, DefiningEnv: env}, nil
}

func evalMu(operands types.Value, env types.Env) (types.Value, error) {
	if err := CheckForm(operands, 2, noMax); err != nil {
		return nil, err
	}
	pair := operands.(*types.Pair)
	if err := CheckFormals(pair.First); err != nil {
		return nil, err
	}
	return &types.Mu{Formals: pair.First, Body: pair.Second}, nil
}

func evalBegin(operands types.Value, env types.Env) (types.Value, error) {
	if err := CheckForm(operands, 1, noMax); err != nil {
		return nil, err
	}
	return evalBodyTail(operands, env)
}

func evalLet(operands types.Value, env types.Env) (types.Value, error) {
	if err := CheckForm(operands, 2, noMax); err != nil {
		return nil, err
	}
	pair := operands.(*types.Pair)
	bindingElems, err := types.ToSlice(pair.First)
	if err != nil {
		return nil, fmt.Errorf("bad bindings list in let form")
	}

	formalsSlice := make([]types.Value, len(bindingElems))
	valsSlice := make([]types.Value, len(bindingElems))
	for i, b := range bindingElems {
		if err := CheckForm(b, 2, 2); err != nil {
			return nil, err
		}
		bp := b.(*types.Pair)
		formalsSlice[i] = bp.First
		valExpr := bp.Second.(*types.Pair).First
		// Simultaneous binding: each ei is evaluated in the enclosing env,
		// not visible to any other ej in this same let.
		val, err := Eval(valExpr, env)
		if err != nil {
			return nil, err
		}
		valsSlice[i] = val
	}

	formals := types.FromSlice(formalsSlice)
	if err := CheckFormals(formals); err != nil {
		return nil, err
	}
	newEnv, err := env.MakeChild(formals, types.FromSlice(valsSlice))
	if err != nil {
		return nil, err
	}
	return evalBodyTail(pair.Second, newEnv)
}

func evalAnd(operands types.Value, env types.Env) (types.Value, error) {
	if types.IsEmptyList(operands) {
		return types.Boolean(true), nil
	}
	pair, ok := operands.(*types.Pair)
	if !ok {
		return nil, fmt.Errorf("badly formed expression: %s", operands.String())
	}
	for {
		if types.IsEmptyList(pair.Second) {
			return evalTail(pair.First, env)
		}
		val, err := Eval(pair.First, env)
		if err != nil {
			return nil, err
		}
		if !types.IsTrue(val) {
			return types.Boolean(false), nil
		}
		next, ok := pair.Second.(*types.Pair)
		if !ok {
			return nil, fmt.Errorf("badly formed expression: %s", pair.Second.String())
		}
		pair = next
	}
}

func evalOr(operands types.Value, env types.Env) (types.Value, error) {
	if types.IsEmptyList(operands) {
		return types.Boolean(false), nil
	}
	pair, ok := operands.(*types.Pair)
	if !ok {
		return nil, fmt.Errorf("badly formed expression: %s", operands.String())
	}
	for {
		if types.IsEmptyList(pair.Second) {
			return evalTail(pair.First, env)
		}
		val, err := Eval(pair.First, env)
		if err != nil {
			return nil, err
		}
		if types.IsTrue(val) {
			return val, nil
		}
		next, ok := pair.Second.(*types.Pair)
		if !ok {
			return nil, fmt.Errorf("badly formed expression: %s", pair.Second.String())
		}
		pair = next
	}
}

const elseSymbol = types.Symbol("else")

func evalCond(operands types.Value, env types.Env) (types.Value, error) {
	clauses, err := types.ToSlice(operands)
	if err != nil {
		return nil, fmt.Errorf("badly formed expression: %s", operands.String())
	}
	for i, clauseVal := range clauses {
		if err := CheckForm(clauseVal, 1, noMax); err != nil {
			return nil, err
		}
		clause := clauseVal.(*types.Pair)

		isElse := false
		var test types.Value
		if sym, ok := clause.First.(types.Symbol); ok && sym == elseSymbol {
			if i != len(clauses)-1 {
				return nil, fmt.Errorf("else must be last")
			}
			isElse = true
			test = types.Boolean(true)
		} else {
			v, err := Eval(clause.First, env)
			if err != nil {
				return nil, err
			}
			test = v
		}

		if types.IsTrue(test) {
			if !types.IsEmptyList(clause.Second) {
				return evalBodyTail(clause.Second, env)
			}
			if isElse {
				return types.Boolean(true), nil
			}
			return test, nil
		}
	}
	return types.Okay, nil
}

func evalDelay(operands types.Value, env types.Env) (types.Value, error) {
	if err := CheckForm(operands, 1, 1); err != nil {
		return nil, err
	}
	return &types.Promise{Expr: operands.(*types.Pair).First, DefiningEnv: env}, nil
}

func evalConsStream(operands types.Value, env types.Env) (types.Value, error) {
	if err := CheckForm(operands, 2, 2); err != nil {
		return nil, err
	}
	pair := operands.(*types.Pair)
	first, err := Eval(pair.First, env)
	if err != nil {
		return nil, err
	}
	restExpr := pair.Second.(*types.Pair).First
	promise := &types.Promise{Expr: restExpr, DefiningEnv: env}
	return types.Cons(first, promise), nil
}
