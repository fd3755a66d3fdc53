package types

import "fmt"

// IsList reports whether v is a proper list: a chain of Pairs terminated
// by the empty list.
func IsList(v Value) bool {
	for {
		if IsEmptyList(v) {
			return true
		}
		pair, ok := v.(*Pair)
		if !ok {
			return false
		}
		v = pair.Second
	}
}

// IsAtom reports whether v is a non-pair, non-empty-list value.
func IsAtom(v Value) bool {
	if IsEmptyList(v) {
		return false
	}
	_, isPair := v.(*Pair)
	return !isPair
}

func IsSymbol(v Value) bool {
	_, ok := v.(Symbol)
	return ok
}

func IsString(v Value) bool {
	_, ok := v.(String)
	return ok
}

// Len returns the length of a proper Scheme list, erroring on improper or
// non-list values.
func Len(v Value) (int, error) {
	n := 0
	for {
		if IsEmptyList(v) {
			return n, nil
		}
		pair, ok := v.(*Pair)
		if !ok {
			return 0, fmt.Errorf("not a proper list")
		}
		n++
		v = pair.Second
	}
}

// ToSlice flattens a proper list into a Go slice, in order.
func ToSlice(v Value) ([]Value, error) {
	var out []Value
	for {
		if IsEmptyList(v) {
			return out, nil
		}
		pair, ok := v.(*Pair)
		if !ok {
			return nil, fmt.Errorf("not a proper list")
		}
		out = append(out, pair.First)
		v = pair.Second
	}
}

// FromSlice builds a proper list out of a Go slice, in order.
func FromSlice(vals []Value) Value {
	var result Value = Nil
	for i := len(vals) - 1; i >= 0; i-- {
		result = Cons(vals[i], result)
	}
	return result
}

// Map applies fn to every element of a proper list, returning a new list
// of the results (or the first error encountered).
func Map(v Value, fn func(Value) (Value, error)) (Value, error) {
	elems, err := ToSlice(v)
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(elems))
	for i, e := range elems {
		r, err := fn(e)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return FromSlice(out), nil
}
