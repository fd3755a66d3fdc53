package reader

import "testing"

func TestTokenizeAllEndsWithEOF(t *testing.T) {
	tokens, err := NewTokenizer("(+ 1 2)").TokenizeAll()
	if err != nil {
		t.Fatalf("TokenizeAll error: %v", err)
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != EOF {
		t.Fatalf("TokenizeAll should end with an EOF token, got %v", tokens)
	}
	want := []TokenType{LPAREN, SYMBOL, NUMBER, NUMBER, RPAREN, EOF}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tt := range want {
		if tokens[i].Type != tt {
			t.Errorf("token %d has type %v, want %v", i, tokens[i].Type, tt)
		}
	}
}

func TestTokenizeBooleans(t *testing.T) {
	cases := map[string]string{
		"#t":     "#t",
		"#f":     "#f",
		"#true":  "#t",
		"#false": "#f",
	}
	for src, want := range cases {
		tok, err := NewTokenizer(src).Next()
		if err != nil {
			t.Fatalf("Next(%q) error: %v", src, err)
		}
		if tok.Type != BOOLEAN || tok.Value != want {
			t.Errorf("Next(%q) = %+v, want BOOLEAN %q", src, tok, want)
		}
	}
}
