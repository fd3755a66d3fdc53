// Package reader implements the tokenizer and parser that produce
// types.Value expression trees from Scheme source text — the "reader"
// spec.md treats as an external collaborator of the evaluator core.
package reader

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/leinonen/scheme/pkg/types"
)

// tokenSource is anything that can hand the parser one token at a time.
// A plain Tokenizer satisfies it for whole-string input (-e expressions,
// the REPL's accumulated buffer); a LineBuffer satisfies it for input
// pulled one physical line at a time, such as a file being loaded.
type tokenSource interface {
	Next() (Token, error)
}

// Parser consumes a tokenSource's output and builds cons-cell expression
// trees: parenthesized forms become chains of *types.Pair terminated by
// types.Nil, with dotted-pair support via the DOT token.
type Parser struct {
	tok     tokenSource
	current Token
}

// NewParser builds a Parser over a Tokenizer for the whole input string;
// tokens are scanned one at a time as the parser advances. Use
// NewParserFromTokens for line-by-line sources.
func NewParser(input string) (*Parser, error) {
	return NewParserFromTokens(NewTokenizer(input))
}

// NewParserFromTokens builds a Parser reading from an arbitrary
// tokenSource, such as a LineBuffer.
func NewParserFromTokens(tok tokenSource) (*Parser, error) {
	p := &Parser{tok: tok}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	tok, err := p.tok.Next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// AtEOF reports whether the parser has consumed every token.
func (p *Parser) AtEOF() bool {
	return p.current.Type == EOF
}

// ParseExpr reads the next top-level expression. It returns (nil, nil) at
// end of input.
func (p *Parser) ParseExpr() (types.Value, error) {
	if p.current.Type == EOF {
		return nil, nil
	}
	return p.parseDatum()
}

func (p *Parser) parseDatum() (types.Value, error) {
	tok := p.current
	switch tok.Type {
	case NUMBER:
		v, err := parseNumber(tok.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d, column %d: %s", tok.Position.Line, tok.Position.Column, err)
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		return v, nil
	case STRING:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return types.String(tok.Value), nil
	case BOOLEAN:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return types.Boolean(tok.Value == "#t"), nil
	case SYMBOL:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return types.Symbol(tok.Value), nil
	case QUOTE:
		if err := p.advance(); err != nil {
			return nil, err
		}
		quoted, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		return types.Cons(types.Symbol("quote"), types.Cons(quoted, types.Nil)), nil
	case LPAREN:
		return p.parseList()
	case RPAREN:
		return nil, fmt.Errorf("line %d, column %d: unexpected )", tok.Position.Line, tok.Position.Column)
	case DOT:
		return nil, fmt.Errorf("line %d, column %d: unexpected .", tok.Position.Line, tok.Position.Column)
	case EOF:
		return nil, fmt.Errorf("unexpected end of input")
	default:
		return nil, fmt.Errorf("line %d, column %d: unrecognized token", tok.Position.Line, tok.Position.Column)
	}
}

func (p *Parser) parseList() (types.Value, error) {
	openPos := p.current.Position
	if err := p.advance(); err != nil { // consume '('
		return nil, err
	}

	var elems []types.Value
	var tail types.Value = types.Nil

	for {
		if p.current.Type == EOF {
			return nil, fmt.Errorf("line %d, column %d: unmatched (", openPos.Line, openPos.Column)
		}
		if p.current.Type == RPAREN {
			if err := p.advance(); err != nil {
				return nil, err
			}
			break
		}
		if p.current.Type == DOT {
			if err := p.advance(); err != nil {
				return nil, err
			}
			t, err := p.parseDatum()
			if err != nil {
				return nil, err
			}
			tail = t
			if p.current.Type != RPAREN {
				return nil, fmt.Errorf("line %d, column %d: expected ) after dotted tail", p.current.Position.Line, p.current.Position.Column)
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
			break
		}
		elem, err := p.parseDatum()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = types.Cons(elems[i], result)
	}
	return result, nil
}

func parseNumber(s string) (types.Value, error) {
	if !strings.ContainsAny(s, ".eE") {
		if big, ok := new(big.Int).SetString(s, 10); ok {
			if big.IsInt64() {
				return types.NewFloat(float64(big.Int64())), nil
			}
			return types.NewBigInt(big), nil
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid number: %s", s)
	}
	return types.NewFloat(f), nil
}

// Read parses the next top-level expression out of src, mirroring
// scheme_read. It fails if src contains anything other than exactly one
// expression.
func Read(src string) (types.Value, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	expr, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if expr == nil {
		return nil, fmt.Errorf("empty input")
	}
	if !p.AtEOF() {
		return nil, fmt.Errorf("line %d, column %d: unexpected trailing input", p.current.Position.Line, p.current.Position.Column)
	}
	return expr, nil
}

// ReadAll parses every top-level expression in src. File loading does not
// go through it; load reads a file line by line via LineBuffer.
func ReadAll(src string) ([]types.Value, error) {
	p, err := NewParser(src)
	if err != nil {
		return nil, err
	}
	var exprs []types.Value
	for {
		expr, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		if expr == nil {
			return exprs, nil
		}
		exprs = append(exprs, expr)
	}
}
