package eval

import (
	"fmt"

	"github.com/leinonen/scheme/pkg/types"
)

const noMax = -1

// CheckForm checks that expr is a proper list whose length lies in
// [min, max]. Pass noMax (or any negative number) for "no maximum".
func CheckForm(expr types.Value, min, max int) error {
	if !types.IsList(expr) {
		return fmt.Errorf("badly formed expression: %s", expr.String())
	}
	length, _ := types.Len(expr)
	if length < min {
		return fmt.Errorf("too few operands in form")
	}
	if max >= 0 && length > max {
		return fmt.Errorf("too many operands in form")
	}
	return nil
}

// CheckFormals checks that formals is a proper list of distinct Symbols.
func CheckFormals(formals types.Value) error {
	elems, err := types.ToSlice(formals)
	if err != nil {
		return fmt.Errorf("bad parameter list: %w", err)
	}
	seen := make(map[types.Symbol]bool, len(elems))
	for _, e := range elems {
		sym, ok := e.(types.Symbol)
		if !ok {
			return fmt.Errorf("non-symbol parameter: %s", e.String())
		}
		if seen[sym] {
			return fmt.Errorf("duplicate parameter: %s", sym)
		}
		seen[sym] = true
	}
	return nil
}
