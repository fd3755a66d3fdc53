package primitives

import (
	"fmt"

	"github.com/leinonen/scheme/pkg/types"
)

func primEq(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("eq?: requires exactly 2 arguments")
	}
	return types.Boolean(eq(args[0], args[1])), nil
}

// eq implements Scheme's eq?: identity for pairs and compound values,
// value equality for the atomic types a reader can produce more than
// one instance of.
func eq(a, b types.Value) bool {
	switch av := a.(type) {
	case types.Symbol:
		bv, ok := b.(types.Symbol)
		return ok && av == bv
	case types.Number:
		bv, ok := b.(types.Number)
		if !ok {
			return false
		}
		if av.Big != nil || bv.Big != nil {
			return av.Big != nil && bv.Big != nil && av.Big.Cmp(bv.Big) == 0
		}
		return av.Float == bv.Float
	case types.Boolean:
		bv, ok := b.(types.Boolean)
		return ok && av == bv
	case types.String:
		bv, ok := b.(types.String)
		return ok && av == bv
	default:
		if types.IsEmptyList(a) && types.IsEmptyList(b) {
			return true
		}
		if types.IsOkay(a) && types.IsOkay(b) {
			return true
		}
		return a == b
	}
}

func primEqual(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("equal?: requires exactly 2 arguments")
	}
	return types.Boolean(deepEqual(args[0], args[1])), nil
}

func deepEqual(a, b types.Value) bool {
	aPair, aOk := a.(*types.Pair)
	bPair, bOk := b.(*types.Pair)
	if aOk || bOk {
		if !aOk || !bOk {
			return false
		}
		return deepEqual(aPair.First, bPair.First) && deepEqual(aPair.Second, bPair.Second)
	}
	return eq(a, b)
}

func typePredicate(name string, test func(types.Value) bool) func([]types.Value, types.Env) (types.Value, error) {
	return func(args []types.Value, _ types.Env) (types.Value, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: requires exactly 1 argument", name)
		}
		return types.Boolean(test(args[0])), nil
	}
}

func isNumber(v types.Value) bool { _, ok := v.(types.Number); return ok }
func isSymbol(v types.Value) bool { return types.IsSymbol(v) }
func isString(v types.Value) bool { return types.IsString(v) }
func isBoolean(v types.Value) bool {
	_, ok := v.(types.Boolean)
	return ok
}
func isProcedure(v types.Value) bool {
	switch v.(type) {
	case *types.Primitive, *types.Lambda, *types.Mu:
		return true
	}
	return false
}
func isZero(v types.Value) bool {
	n, ok := v.(types.Number)
	if !ok {
		return false
	}
	if n.Big != nil {
		return n.Big.Sign() == 0
	}
	return n.Float == 0
}

func primNot(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("not: requires exactly 1 argument")
	}
	return types.Boolean(!types.IsTrue(args[0])), nil
}
