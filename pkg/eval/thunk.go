// Package eval implements the evaluator core: atom/special-form/
// application dispatch, procedure application, and the tail-call
// trampoline.
package eval

import "github.com/leinonen/scheme/pkg/types"

// Thunk is a deferred {expr, env} pair returned by a special-form handler
// from tail position, instead of recursing. The trampoline loop in Eval
// drains Thunks by re-dispatching on Expr/Env until a concrete Value falls
// out.
type Thunk struct {
	Expr types.Value
	Env  types.Env
}

func (t *Thunk) String() string { return "#[thunk]" }
