package eval

import "github.com/leinonen/scheme/pkg/types"

// Force evaluates a Promise's captured expression in a fresh child of its
// defining environment the first time it is called, memoizes the result,
// and returns the memoized value on every subsequent call. Forcing is
// idempotent: a promise's body runs exactly once regardless of how many
// times it is forced.
func Force(p *types.Promise) (types.Value, error) {
	if p.Forced {
		return p.Val, nil
	}
	// A fresh child frame so that definitions inside the delayed
	// expression don't leak into the defining environment.
	childEnv, err := p.DefiningEnv.MakeChild(types.Nil, types.Nil)
	if err != nil {
		return nil, err
	}
	val, err := Eval(p.Expr, childEnv)
	if err != nil {
		return nil, err
	}
	p.Val = val
	p.Forced = true
	return val, nil
}
