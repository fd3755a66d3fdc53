// Package primitives supplies the catalog of native procedures the
// evaluator core invokes through the uniform Primitive calling
// convention: arithmetic, pair/list operations, and predicates.
package primitives

import (
	"fmt"
	"math"
	"math/big"

	"github.com/leinonen/scheme/pkg/types"
)

// precisionLimit is a margin below 2^53, the magnitude past which float64
// can no longer represent every integer exactly; arithmetic promotes to
// BigInteger beyond it, mirroring the teacher's shouldUseBigInt heuristic.
const precisionLimit = 1e15

func asNumber(v types.Value, who string) (types.Number, error) {
	n, ok := v.(types.Number)
	if !ok {
		return types.Number{}, fmt.Errorf("%s: not a number: %s", who, v.String())
	}
	return n, nil
}

func toBigInt(n types.Number) *big.Int {
	if n.Big != nil {
		return n.Big
	}
	return big.NewInt(int64(n.Float))
}

func toFloat(n types.Number) float64 {
	if n.Big != nil {
		f, _ := new(big.Float).SetInt(n.Big).Float64()
		return f
	}
	return n.Float
}

func normalizeBig(b *big.Int) types.Number {
	if b.IsInt64() {
		i := b.Int64()
		if i > -int64(precisionLimit) && i < int64(precisionLimit) {
			return types.NewFloat(float64(i))
		}
	}
	return types.NewBigInt(b)
}

func anyBig(nums []types.Number) bool {
	for _, n := range nums {
		if n.Big != nil {
			return true
		}
	}
	return false
}

func mightOverflowFloat(nums []types.Number, op func(float64, float64) float64) bool {
	acc := toFloat(nums[0])
	for _, n := range nums[1:] {
		acc = op(acc, toFloat(n))
		if math.Abs(acc) > precisionLimit {
			return true
		}
	}
	return false
}

func toNumbers(args []types.Value, who string) ([]types.Number, error) {
	nums := make([]types.Number, len(args))
	for i, a := range args {
		n, err := asNumber(a, who)
		if err != nil {
			return nil, err
		}
		nums[i] = n
	}
	return nums, nil
}

func variadicArithmetic(name string, identity float64, floatOp func(a, b float64) float64, bigOp func(acc, b *big.Int)) func([]types.Value, types.Env) (types.Value, error) {
	return func(args []types.Value, _ types.Env) (types.Value, error) {
		if len(args) == 0 {
			return types.NewFloat(identity), nil
		}
		nums, err := toNumbers(args, name)
		if err != nil {
			return nil, err
		}
		if anyBig(nums) || mightOverflowFloat(nums, floatOp) {
			acc := new(big.Int).Set(toBigInt(nums[0]))
			for _, n := range nums[1:] {
				bigOp(acc, toBigInt(n))
			}
			return normalizeBig(acc), nil
		}
		result := toFloat(nums[0])
		for _, n := range nums[1:] {
			result = floatOp(result, toFloat(n))
		}
		return types.NewFloat(result), nil
	}
}

func primAdd(args []types.Value, env types.Env) (types.Value, error) {
	return variadicArithmetic("+", 0, func(a, b float64) float64 { return a + b },
		func(acc, b *big.Int) { acc.Add(acc, b) })(args, env)
}

func primMul(args []types.Value, env types.Env) (types.Value, error) {
	return variadicArithmetic("*", 1, func(a, b float64) float64 { return a * b },
		func(acc, b *big.Int) { acc.Mul(acc, b) })(args, env)
}

func primSub(args []types.Value, _ types.Env) (types.Value, error) {
	nums, err := toNumbers(args, "-")
	if err != nil {
		return nil, err
	}
	if len(nums) == 0 {
		return nil, fmt.Errorf("-: requires at least 1 argument")
	}
	if len(nums) == 1 {
		return negate(nums[0]), nil
	}
	if anyBig(nums) || mightOverflowFloat(nums, func(a, b float64) float64 { return a - b }) {
		acc := new(big.Int).Set(toBigInt(nums[0]))
		for _, n := range nums[1:] {
			acc.Sub(acc, toBigInt(n))
		}
		return normalizeBig(acc), nil
	}
	result := toFloat(nums[0])
	for _, n := range nums[1:] {
		result -= toFloat(n)
	}
	return types.NewFloat(result), nil
}

func negate(n types.Number) types.Number {
	if n.Big != nil {
		return normalizeBig(new(big.Int).Neg(n.Big))
	}
	return types.NewFloat(-n.Float)
}

func primDiv(args []types.Value, _ types.Env) (types.Value, error) {
	nums, err := toNumbers(args, "/")
	if err != nil {
		return nil, err
	}
	if len(nums) < 1 {
		return nil, fmt.Errorf("/: requires at least 1 argument")
	}
	if len(nums) == 1 {
		if toFloat(nums[0]) == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return types.NewFloat(1 / toFloat(nums[0])), nil
	}
	result := toFloat(nums[0])
	for _, n := range nums[1:] {
		d := toFloat(n)
		if d == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		result /= d
	}
	return types.NewFloat(result), nil
}

func primMod(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("%%: requires exactly 2 arguments")
	}
	nums, err := toNumbers(args, "%")
	if err != nil {
		return nil, err
	}
	if anyBig(nums) {
		a, b := toBigInt(nums[0]), toBigInt(nums[1])
		if b.Sign() == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return normalizeBig(new(big.Int).Mod(a, b)), nil
	}
	b := toFloat(nums[1])
	if b == 0 {
		return nil, fmt.Errorf("division by zero")
	}
	return types.NewFloat(math.Mod(toFloat(nums[0]), b)), nil
}

func comparison(name string, cmp func(a, b float64) bool) func([]types.Value, types.Env) (types.Value, error) {
	return func(args []types.Value, _ types.Env) (types.Value, error) {
		if len(args) < 1 {
			return nil, fmt.Errorf("%s: requires at least 1 argument", name)
		}
		nums, err := toNumbers(args, name)
		if err != nil {
			return nil, err
		}
		for i := 1; i < len(nums); i++ {
			if !cmp(toFloat(nums[i-1]), toFloat(nums[i])) {
				return types.Boolean(false), nil
			}
		}
		return types.Boolean(true), nil
	}
}

func primAbs(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("abs: requires exactly 1 argument")
	}
	n, err := asNumber(args[0], "abs")
	if err != nil {
		return nil, err
	}
	if n.Big != nil {
		return normalizeBig(new(big.Int).Abs(n.Big)), nil
	}
	return types.NewFloat(math.Abs(n.Float)), nil
}

func minMax(name string, pick func(a, b float64) bool) func([]types.Value, types.Env) (types.Value, error) {
	return func(args []types.Value, _ types.Env) (types.Value, error) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%s: requires at least 1 argument", name)
		}
		nums, err := toNumbers(args, name)
		if err != nil {
			return nil, err
		}
		best := nums[0]
		for _, n := range nums[1:] {
			if pick(toFloat(n), toFloat(best)) {
				best = n
			}
		}
		if best.Big != nil {
			return normalizeBig(best.Big), nil
		}
		return types.NewFloat(best.Float), nil
	}
}
