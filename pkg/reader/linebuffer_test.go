package reader

import "testing"

func lineFeeder(lines []string) LineSource {
	i := 0
	return func() (string, bool) {
		if i >= len(lines) {
			return "", false
		}
		line := lines[i]
		i++
		return line, true
	}
}

func TestLineBufferReadsAcrossLines(t *testing.T) {
	buf := NewLineBuffer(lineFeeder([]string{"(+ 1", "   2)"}))
	p, err := NewParserFromTokens(buf)
	if err != nil {
		t.Fatalf("NewParserFromTokens error: %v", err)
	}
	expr, err := p.ParseExpr()
	if err != nil {
		t.Fatalf("ParseExpr error: %v", err)
	}
	if expr == nil {
		t.Fatal("expected a complete expression spanning two lines")
	}
}

// TestLineBufferServesMultipleFormsPerLine checks that several forms
// packed onto one physical line are read out one at a time, and that
// MoreOnLine tells the caller which reads stayed on that line versus
// the one that finally ran it dry.
func TestLineBufferServesMultipleFormsPerLine(t *testing.T) {
	buf := NewLineBuffer(lineFeeder([]string{"1 2 3"}))
	p, err := NewParserFromTokens(buf)
	if err != nil {
		t.Fatalf("NewParserFromTokens error: %v", err)
	}

	var forms []int
	var moreAfter []bool
	for i := 0; i < 3; i++ {
		expr, err := p.ParseExpr()
		if err != nil {
			t.Fatalf("ParseExpr error: %v", err)
		}
		if expr == nil {
			t.Fatalf("expected a form at i=%d, got none", i)
		}
		forms = append(forms, i)
		moreAfter = append(moreAfter, buf.MoreOnLine())
	}
	if len(forms) != 3 {
		t.Fatalf("expected 3 forms read from one line, got %d", len(forms))
	}
	if moreAfter[0] != true || moreAfter[1] != true {
		t.Errorf("MoreOnLine should be true between forms on the same line, got %v", moreAfter)
	}
	if moreAfter[2] != false {
		t.Errorf("MoreOnLine should be false once the line is exhausted, got %v", moreAfter)
	}
}

func TestLineBufferEOF(t *testing.T) {
	buf := NewLineBuffer(lineFeeder(nil))
	p, err := NewParserFromTokens(buf)
	if err != nil {
		t.Fatalf("NewParserFromTokens error: %v", err)
	}
	expr, err := p.ParseExpr()
	if err != nil {
		t.Fatalf("ParseExpr on empty input should not error, got %v", err)
	}
	if expr != nil {
		t.Errorf("expected nil at EOF, got %v", expr)
	}
}
