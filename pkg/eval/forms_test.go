package eval

import (
	"testing"

	"github.com/leinonen/scheme/pkg/types"
)

func TestQuoteReturnsOperandUnevaluated(t *testing.T) {
	f := testFrame()
	expr := list(sym("quote"), list(sym("a"), sym("b")))
	got, err := Eval(expr, f)
	if err != nil {
		t.Fatalf("Eval error: %v", err)
	}
	elems, _ := types.ToSlice(got)
	if len(elems) != 2 || elems[0] != sym("a") || elems[1] != sym("b") {
		t.Errorf("(quote (a b)) = %v, want unevaluated (a b)", got)
	}
}

func TestIfTakesConsequentWhenTrue(t *testing.T) {
	f := testFrame()
	expr := list(sym("if"), types.Boolean(true), types.NewFloat(1), types.NewFloat(2))
	got, err := Eval(expr, f)
	if err != nil || got.(types.Number).Float != 1 {
		t.Errorf("if-true = (%v, %v), want 1", got, err)
	}
}

func TestIfTakesAlternateWhenFalse(t *testing.T) {
	f := testFrame()
	expr := list(sym("if"), types.Boolean(false), types.NewFloat(1), types.NewFloat(2))
	got, err := Eval(expr, f)
	if err != nil || got.(types.Number).Float != 2 {
		t.Errorf("if-false = (%v, %v), want 2", got, err)
	}
}

func TestIfWithoutAlternateIsOkayWhenFalse(t *testing.T) {
	f := testFrame()
	expr := list(sym("if"), types.Boolean(false), types.NewFloat(1))
	got, err := Eval(expr, f)
	if err != nil || !types.IsOkay(got) {
		t.Errorf("2-armed if-false = (%v, %v), want okay", got, err)
	}
}

func TestDefineVariableReturnsSymbol(t *testing.T) {
	f := testFrame()
	got, err := Eval(list(sym("define"), sym("x"), types.NewFloat(42)), f)
	if err != nil || got != sym("x") {
		t.Errorf("define = (%v, %v), want symbol x", got, err)
	}
	v, err := f.Lookup("x")
	if err != nil || v.(types.Number).Float != 42 {
		t.Errorf("x = (%v, %v), want 42", v, err)
	}
}

func TestDefineProcedureShorthand(t *testing.T) {
	f := testFrame()
	// (define (add1 n) (+ n 1))
	header := list(sym("add1"), sym("n"))
	_, err := Eval(list(sym("define"), header, list(sym("+"), sym("n"), types.NewFloat(1))), f)
	if err != nil {
		t.Fatalf("define shorthand failed: %v", err)
	}
	got, err := Eval(list(sym("add1"), types.NewFloat(4)), f)
	if err != nil || got.(types.Number).Float != 5 {
		t.Errorf("(add1 4) = (%v, %v), want 5", got, err)
	}
}

func TestLetBindsSimultaneously(t *testing.T) {
	f := testFrame()
	f.Define("x", types.NewFloat(1))
	// (let ((x 2) (y x)) y) should bind y to the OUTER x (1), not 2.
	expr := list(sym("let"),
		list(list(sym("x"), types.NewFloat(2)), list(sym("y"), sym("x"))),
		sym("y"))
	got, err := Eval(expr, f)
	if err != nil || got.(types.Number).Float != 1 {
		t.Errorf("let simultaneous binding = (%v, %v), want 1", got, err)
	}
}

func TestBeginEvaluatesInOrderReturnsLast(t *testing.T) {
	f := testFrame()
	expr := list(sym("begin"), list(sym("define"), sym("x"), types.NewFloat(1)), types.NewFloat(99))
	got, err := Eval(expr, f)
	if err != nil || got.(types.Number).Float != 99 {
		t.Errorf("begin = (%v, %v), want 99", got, err)
	}
}

func TestAndShortCircuitsOnFalse(t *testing.T) {
	f := testFrame()
	expr := list(sym("and"), types.Boolean(true), types.Boolean(false), sym("boom"))
	got, err := Eval(expr, f)
	if err != nil || got != types.Boolean(false) {
		t.Errorf("and short-circuit = (%v, %v), want #f", got, err)
	}
}

func TestAndReturnsLastValueWhenAllTrue(t *testing.T) {
	f := testFrame()
	expr := list(sym("and"), types.Boolean(true), types.NewFloat(7))
	got, err := Eval(expr, f)
	if err != nil || got.(types.Number).Float != 7 {
		t.Errorf("and = (%v, %v), want 7", got, err)
	}
}

func TestAndWithNoOperandsIsTrue(t *testing.T) {
	f := testFrame()
	got, err := Eval(list(sym("and")), f)
	if err != nil || got != types.Boolean(true) {
		t.Errorf("(and) = (%v, %v), want #t", got, err)
	}
}

func TestOrShortCircuitsOnTrue(t *testing.T) {
	f := testFrame()
	expr := list(sym("or"), types.Boolean(false), types.NewFloat(3), sym("boom"))
	got, err := Eval(expr, f)
	if err != nil || got.(types.Number).Float != 3 {
		t.Errorf("or short-circuit = (%v, %v), want 3", got, err)
	}
}

func TestOrWithNoOperandsIsFalse(t *testing.T) {
	f := testFrame()
	got, err := Eval(list(sym("or")), f)
	if err != nil || got != types.Boolean(false) {
		t.Errorf("(or) = (%v, %v), want #f", got, err)
	}
}

func TestCondFirstTrueClauseWins(t *testing.T) {
	f := testFrame()
	expr := list(sym("cond"),
		list(types.Boolean(false), types.NewFloat(1)),
		list(types.Boolean(true), types.NewFloat(2)),
		list(elseSymbol, types.NewFloat(3)))
	got, err := Eval(expr, f)
	if err != nil || got.(types.Number).Float != 2 {
		t.Errorf("cond = (%v, %v), want 2", got, err)
	}
}

func TestCondFallsThroughToElse(t *testing.T) {
	f := testFrame()
	expr := list(sym("cond"),
		list(types.Boolean(false), types.NewFloat(1)),
		list(elseSymbol, types.NewFloat(9)))
	got, err := Eval(expr, f)
	if err != nil || got.(types.Number).Float != 9 {
		t.Errorf("cond else = (%v, %v), want 9", got, err)
	}
}

func TestCondElseMustBeLast(t *testing.T) {
	f := testFrame()
	expr := list(sym("cond"),
		list(elseSymbol, types.NewFloat(1)),
		list(types.Boolean(true), types.NewFloat(2)))
	if _, err := Eval(expr, f); err == nil {
		t.Error("expected an error when else is not the last clause")
	}
}

func TestCondWithNoMatchIsOkay(t *testing.T) {
	f := testFrame()
	expr := list(sym("cond"), list(types.Boolean(false), types.NewFloat(1)))
	got, err := Eval(expr, f)
	if err != nil || !types.IsOkay(got) {
		t.Errorf("cond no-match = (%v, %v), want okay", got, err)
	}
}

func TestCondClauseWithNoBodyReturnsTest(t *testing.T) {
	f := testFrame()
	expr := list(sym("cond"), list(types.NewFloat(5)))
	got, err := Eval(expr, f)
	if err != nil || got.(types.Number).Float != 5 {
		t.Errorf("cond test-only clause = (%v, %v), want 5", got, err)
	}
}

func TestDelayDoesNotEvaluateUntilForced(t *testing.T) {
	f := testFrame()
	expr := list(sym("delay"), sym("undefined-var"))
	got, err := Eval(expr, f)
	if err != nil {
		t.Fatalf("delay should not evaluate its body: %v", err)
	}
	if _, ok := got.(*types.Promise); !ok {
		t.Fatalf("delay should produce a Promise, got %T", got)
	}
}

func TestForcePromiseFromDelay(t *testing.T) {
	f := testFrame()
	expr := list(sym("delay"), list(sym("+"), types.NewFloat(1), types.NewFloat(1)))
	got, err := Eval(expr, f)
	if err != nil {
		t.Fatalf("delay error: %v", err)
	}
	val, err := Force(got.(*types.Promise))
	if err != nil || val.(types.Number).Float != 2 {
		t.Errorf("force = (%v, %v), want 2", val, err)
	}
}

func TestConsStreamDelaysTailOnly(t *testing.T) {
	f := testFrame()
	expr := list(sym("cons-stream"), types.NewFloat(1), sym("undefined-var"))
	got, err := Eval(expr, f)
	if err != nil {
		t.Fatalf("cons-stream should not evaluate its tail: %v", err)
	}
	pair, ok := got.(*types.Pair)
	if !ok {
		t.Fatalf("cons-stream should produce a pair, got %T", got)
	}
	if pair.First.(types.Number).Float != 1 {
		t.Errorf("stream head = %v, want 1", pair.First)
	}
	if _, ok := pair.Second.(*types.Promise); !ok {
		t.Errorf("stream tail should be a Promise, got %T", pair.Second)
	}
}

func TestLambdaRejectsDuplicateFormals(t *testing.T) {
	f := testFrame()
	expr := list(sym("lambda"), list(sym("x"), sym("x")), sym("x"))
	if _, err := Eval(expr, f); err == nil {
		t.Error("expected an error for duplicate formal parameters")
	}
}

func TestLambdaRejectsNonSymbolFormal(t *testing.T) {
	f := testFrame()
	expr := list(sym("lambda"), list(types.NewFloat(1)), types.NewFloat(2))
	if _, err := Eval(expr, f); err == nil {
		t.Error("expected an error for a non-symbol formal parameter")
	}
}
