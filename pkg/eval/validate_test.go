package eval

import (
	"testing"

	"github.com/leinonen/scheme/pkg/types"
)

func TestCheckFormRejectsNonList(t *testing.T) {
	if err := CheckForm(sym("x"), 0, noMax); err == nil {
		t.Error("expected an error for a non-list form body")
	}
}

func TestCheckFormEnforcesMinimum(t *testing.T) {
	if err := CheckForm(list(types.NewFloat(1)), 2, noMax); err == nil {
		t.Error("expected an error for too few operands")
	}
}

func TestCheckFormEnforcesMaximum(t *testing.T) {
	if err := CheckForm(list(types.NewFloat(1), types.NewFloat(2)), 0, 1); err == nil {
		t.Error("expected an error for too many operands")
	}
}

func TestCheckFormAcceptsWithinRange(t *testing.T) {
	if err := CheckForm(list(types.NewFloat(1), types.NewFloat(2)), 1, 2); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckFormNoMaxAllowsAnyLength(t *testing.T) {
	long := list(types.NewFloat(1), types.NewFloat(2), types.NewFloat(3), types.NewFloat(4))
	if err := CheckForm(long, 1, noMax); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckFormalsRejectsDuplicate(t *testing.T) {
	if err := CheckFormals(list(sym("a"), sym("b"), sym("a"))); err == nil {
		t.Error("expected an error for duplicate formals")
	}
}

func TestCheckFormalsRejectsNonSymbol(t *testing.T) {
	if err := CheckFormals(list(sym("a"), types.NewFloat(1))); err == nil {
		t.Error("expected an error for a non-symbol formal")
	}
}

func TestCheckFormalsAcceptsDistinctSymbols(t *testing.T) {
	if err := CheckFormals(list(sym("a"), sym("b"), sym("c"))); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCheckFormalsAcceptsEmpty(t *testing.T) {
	if err := CheckFormals(types.Nil); err != nil {
		t.Errorf("unexpected error for zero formals: %v", err)
	}
}
