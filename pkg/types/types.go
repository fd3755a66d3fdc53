// Package types defines the tagged universe of Scheme values shared by the
// reader, the evaluator, and the primitive catalog.
package types

import (
	"fmt"
	"math/big"
)

// Value is any Scheme datum: a pair, an atom, or a procedure.
type Value interface {
	String() string
}

// Env is the subset of Frame behavior a Value needs to close over, kept as
// an interface here so pkg/types never imports pkg/env.
type Env interface {
	Lookup(sym Symbol) (Value, error)
	Define(sym Symbol, val Value)
	MakeChild(formals, vals Value) (Env, error)
}

// Position records where a token or expression came from, for diagnostics.
type Position struct {
	Line   int
	Column int
}

// Pair is a cons cell: the building block of every proper and improper
// list. The empty list is a distinguished singleton, never a *Pair.
type Pair struct {
	First  Value
	Second Value
}

func Cons(first, second Value) *Pair {
	return &Pair{First: first, Second: second}
}

func (p *Pair) String() string {
	return writeList(p)
}

func writeList(v Value) string {
	s := "("
	first := true
	for {
		pair, ok := v.(*Pair)
		if !ok {
			if IsEmptyList(v) {
				break
			}
			// improper list: ". tail)"
			s += " . " + writeElement(v)
			break
		}
		if !first {
			s += " "
		}
		first = false
		s += writeElement(pair.First)
		v = pair.Second
	}
	return s + ")"
}

func writeElement(v Value) string {
	if v == nil {
		return "()"
	}
	return v.String()
}

// emptyList is the distinguished singleton terminator of proper lists.
type emptyList struct{}

func (*emptyList) String() string { return "()" }

// Nil is the one EmptyList value in the system; compare with ==.
var Nil Value = &emptyList{}

func IsEmptyList(v Value) bool {
	_, ok := v.(*emptyList)
	return ok
}

// Symbol is an interned identifier; equality is name equality, which Go's
// comparable string-kind type gives for free.
type Symbol string

func (s Symbol) String() string { return string(s) }

// Number is a Scheme number: either an inexact/exact (float64) value or,
// once a computation would overflow float64's integral precision, an
// arbitrary precision integer. The evaluator never inspects which; only
// the primitive catalog does.
type Number struct {
	Float float64
	Big   *big.Int // non-nil when this Number is exact-big
}

func NewFloat(f float64) Number { return Number{Float: f} }

func NewBigInt(b *big.Int) Number { return Number{Big: b} }

func (n Number) IsBig() bool { return n.Big != nil }

func (n Number) String() string {
	if n.Big != nil {
		return n.Big.String()
	}
	if n.Float == float64(int64(n.Float)) {
		return fmt.Sprintf("%d", int64(n.Float))
	}
	return fmt.Sprintf("%g", n.Float)
}

// String is immutable Scheme text.
type String string

func (s String) String() string { return string(s) }

// Boolean: exactly Boolean(false) is falsy; every other value is truthy.
type Boolean bool

func (b Boolean) String() string {
	if b {
		return "#t"
	}
	return "#f"
}

func IsTrue(v Value) bool {
	b, ok := v.(Boolean)
	return !ok || bool(b)
}

// Okay is the unit value non-value-producing forms return. The REPL
// suppresses it from printing.
type okay struct{}

func (*okay) String() string { return "" }

var Okay Value = &okay{}

func IsOkay(v Value) bool {
	_, ok := v.(*okay)
	return ok
}

// Primitive wraps a native Go function. NeedsEnv governs whether the
// evaluator appends the current environment as a trailing argument.
type Primitive struct {
	Name     string
	NeedsEnv bool
	Fn       func(args []Value, env Env) (Value, error)
}

func (p *Primitive) String() string {
	return fmt.Sprintf("#[primitive %s]", p.Name)
}

// Lambda is lexically scoped: it closes over its defining environment.
type Lambda struct {
	Formals     Value // proper list of distinct Symbols
	Body        Value // proper list of body expressions
	DefiningEnv Env
}

func (l *Lambda) String() string {
	return fmt.Sprintf("(lambda %s %s)", writeElement(l.Formals), writeList(l.Body))
}

// Mu is dynamically scoped: no captured environment, free variables
// resolve in the caller's frame at each call.
type Mu struct {
	Formals Value
	Body    Value
}

func (m *Mu) String() string {
	return fmt.Sprintf("(mu %s %s)", writeElement(m.Formals), writeList(m.Body))
}

// Promise is a memoized lazy value. Once Forced is true, Val is fixed.
type Promise struct {
	Expr        Value
	DefiningEnv Env
	Forced      bool
	Val         Value
}

func (p *Promise) String() string {
	if p.Forced {
		return "#[promise forced]"
	}
	return "#[promise]"
}
