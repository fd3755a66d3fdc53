// Package env implements the Frame chain that backs both lexical and
// dynamic scope for the Scheme evaluator.
package env

import (
	"fmt"

	"github.com/leinonen/scheme/pkg/types"
)

// Frame holds a mapping from Symbol to Value plus an optional parent link.
// The global frame has a nil parent. Frames are acyclic: a child's parent
// is fixed at construction and never rebound.
type Frame struct {
	bindings map[types.Symbol]types.Value
	parent   *Frame
}

// New creates an empty frame with the given parent (nil for the global
// frame).
func New(parent *Frame) *Frame {
	return &Frame{
		bindings: make(map[types.Symbol]types.Value),
		parent:   parent,
	}
}

// Lookup returns the binding for sym, searching this frame and then its
// ancestors. It fails with "unknown identifier" once the chain is
// exhausted.
func (f *Frame) Lookup(sym types.Symbol) (types.Value, error) {
	for frame := f; frame != nil; frame = frame.parent {
		if val, ok := frame.bindings[sym]; ok {
			return val, nil
		}
	}
	return nil, fmt.Errorf("unknown identifier: %s", sym)
}

// Define unconditionally binds sym to val in this frame, shadowing any
// binding of the same name in an ancestor.
func (f *Frame) Define(sym types.Symbol, val types.Value) {
	f.bindings[sym] = val
}

// MakeChild creates a new frame whose parent is f, binding the symbols in
// the proper list formals to the values in the proper list vals
// positionally. It fails with an arity error when the lists differ in
// length or either is improper.
func (f *Frame) MakeChild(formals, vals types.Value) (types.Env, error) {
	child := New(f)
	for {
		formalsDone := types.IsEmptyList(formals)
		valsDone := types.IsEmptyList(vals)
		if formalsDone && valsDone {
			return child, nil
		}
		if formalsDone || valsDone {
			return nil, fmt.Errorf("arity error: wrong number of arguments")
		}
		formalPair, ok := formals.(*types.Pair)
		if !ok {
			return nil, fmt.Errorf("arity error: malformed parameter list")
		}
		valPair, ok := vals.(*types.Pair)
		if !ok {
			return nil, fmt.Errorf("arity error: malformed argument list")
		}
		sym, ok := formalPair.First.(types.Symbol)
		if !ok {
			return nil, fmt.Errorf("non-symbol formal parameter: %v", formalPair.First)
		}
		child.Define(sym, valPair.First)
		formals = formalPair.Second
		vals = valPair.Second
	}
}

// Names returns every symbol bound in this frame and its ancestors, used by
// REPL tab completion. Shadowed names are only reported once.
func (f *Frame) Names() []types.Symbol {
	seen := make(map[types.Symbol]bool)
	var names []types.Symbol
	for frame := f; frame != nil; frame = frame.parent {
		for sym := range frame.bindings {
			if !seen[sym] {
				seen[sym] = true
				names = append(names, sym)
			}
		}
	}
	return names
}
