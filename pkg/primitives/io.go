package primitives

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leinonen/scheme/pkg/eval"
	"github.com/leinonen/scheme/pkg/reader"
	"github.com/leinonen/scheme/pkg/types"
)

// Output is where display and newline write. It defaults to os.Stdout;
// the REPL driver may redirect it (e.g. for test harnesses or a
// non-stdout transcript).
var Output io.Writer = os.Stdout

func primDisplay(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("display: requires exactly 1 argument")
	}
	fmt.Fprint(Output, displayString(args[0]))
	return types.Okay, nil
}

// displayString renders a value the way display does: strings without
// their surrounding quotes, everything else as String() already renders.
func displayString(v types.Value) string {
	if s, ok := v.(types.String); ok {
		return string(s)
	}
	return v.String()
}

func primNewline(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 0 {
		return nil, fmt.Errorf("newline: requires exactly 0 arguments")
	}
	fmt.Fprintln(Output)
	return types.Okay, nil
}

func primForce(args []types.Value, _ types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("force: requires exactly 1 argument")
	}
	p, ok := args[0].(*types.Promise)
	if !ok {
		return nil, fmt.Errorf("force: not a promise: %s", args[0].String())
	}
	return eval.Force(p)
}

// primLoad implements (load name): it resolves name (or name.scm) on
// disk, reads every top-level form, and evaluates each in env in order,
// mirroring scheme_load/scheme_open from the reference implementation.
// Needs the caller's environment since loaded definitions must land
// there, not in some frame private to the primitive catalog.
func primLoad(args []types.Value, env types.Env) (types.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("load: requires exactly 1 argument")
	}
	var filename string
	switch name := args[0].(type) {
	case types.String:
		filename = string(name)
	case types.Symbol:
		filename = string(name)
	default:
		return nil, fmt.Errorf("load: not a string or symbol: %s", args[0].String())
	}

	path, err := resolvePath(filename)
	if err != nil {
		return nil, err
	}
	exprs, err := readFile(path)
	if err != nil {
		return nil, err
	}
	for _, expr := range exprs {
		if _, err := eval.Eval(expr, env); err != nil {
			return nil, fmt.Errorf("in %s: %w", path, err)
		}
	}
	return types.Okay, nil
}

// readFile reads every top-level form out of path, closing the file before
// returning: the whole read completes before any of the forms it yields is
// evaluated.
func readFile(path string) ([]types.Value, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open %s", path)
	}

	scanner := bufio.NewScanner(f)
	buf := reader.NewLineBuffer(func() (string, bool) {
		if scanner.Scan() {
			return scanner.Text(), true
		}
		return "", false
	})
	p, err := reader.NewParserFromTokens(buf)
	if err != nil {
		f.Close()
		return nil, err
	}

	var exprs []types.Value
	for {
		expr, err := p.ParseExpr()
		if err != nil {
			f.Close()
			return nil, err
		}
		if expr == nil {
			break
		}
		exprs = append(exprs, expr)
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return exprs, nil
}

// resolvePath finds filename on disk the way a Scheme load form does:
// the literal path first, then the same path with a .scm suffix added.
func resolvePath(filename string) (string, error) {
	if _, err := os.Stat(filename); err == nil {
		return filename, nil
	}
	if !strings.HasSuffix(filename, ".scm") {
		if _, err := os.Stat(filename + ".scm"); err == nil {
			return filename + ".scm", nil
		}
	}
	return "", fmt.Errorf("cannot open %s or %s.scm", filename, filename)
}
