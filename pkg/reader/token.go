package reader

import "github.com/leinonen/scheme/pkg/types"

// TokenType classifies a lexeme produced by the Tokenizer.
type TokenType int

const (
	LPAREN TokenType = iota
	RPAREN
	DOT
	QUOTE
	NUMBER
	SYMBOL
	STRING
	BOOLEAN
	EOF
)

// Token is a single lexeme plus its source position, for diagnostics.
type Token struct {
	Type     TokenType
	Value    string
	Position types.Position
}
