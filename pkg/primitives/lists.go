package primitives

import (
	"fmt"

	"github.com/leinonen/scheme/pkg/types"
)

func primCons(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("cons: requires exactly 2 arguments")
	}
	return types.Cons(args[0], args[1]), nil
}

func primCar(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("car: requires exactly 1 argument")
	}
	pair, ok := args[0].(*types.Pair)
	if !ok {
		return nil, fmt.Errorf("car: not a pair: %s", args[0].String())
	}
	return pair.First, nil
}

func primCdr(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("cdr: requires exactly 1 argument")
	}
	pair, ok := args[0].(*types.Pair)
	if !ok {
		return nil, fmt.Errorf("cdr: not a pair: %s", args[0].String())
	}
	return pair.Second, nil
}

func primList(args []types.Value, _ types.Env) (types.Value, error) {
	return types.FromSlice(args), nil
}

func primLength(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("length: requires exactly 1 argument")
	}
	n, err := types.Len(args[0])
	if err != nil {
		return nil, fmt.Errorf("length: not a list: %s", args[0].String())
	}
	return types.NewFloat(float64(n)), nil
}

func primAppend(args []types.Value, _ types.Env) (types.Value, error) {
	var all []types.Value
	for _, a := range args {
		elems, err := types.ToSlice(a)
		if err != nil {
			return nil, fmt.Errorf("append: not a list: %s", a.String())
		}
		all = append(all, elems...)
	}
	return types.FromSlice(all), nil
}

func primReverse(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("reverse: requires exactly 1 argument")
	}
	elems, err := types.ToSlice(args[0])
	if err != nil {
		return nil, fmt.Errorf("reverse: not a list: %s", args[0].String())
	}
	reversed := make([]types.Value, len(elems))
	for i, e := range elems {
		reversed[len(elems)-1-i] = e
	}
	return types.FromSlice(reversed), nil
}

func primListTail(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("list-tail: requires exactly 2 arguments")
	}
	n, err := asNumber(args[1], "list-tail")
	if err != nil {
		return nil, err
	}
	cur := args[0]
	for i := 0; i < int(toFloat(n)); i++ {
		pair, ok := cur.(*types.Pair)
		if !ok {
			return nil, fmt.Errorf("list-tail: index out of range")
		}
		cur = pair.Second
	}
	return cur, nil
}

func primListRef(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("list-ref: requires exactly 2 arguments")
	}
	tail, err := primListTail(args, nil)
	if err != nil {
		return nil, err
	}
	pair, ok := tail.(*types.Pair)
	if !ok {
		return nil, fmt.Errorf("list-ref: index out of range")
	}
	return pair.First, nil
}

func primIsList(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("list?: requires exactly 1 argument")
	}
	return types.Boolean(types.IsList(args[0])), nil
}

func primIsPair(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("pair?: requires exactly 1 argument")
	}
	_, ok := args[0].(*types.Pair)
	return types.Boolean(ok), nil
}

func primIsNull(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("null?: requires exactly 1 argument")
	}
	return types.Boolean(types.IsEmptyList(args[0])), nil
}
