package reader

// LineSource supplies one physical line of input at a time, returning
// ok=false once input is exhausted (EOF, Ctrl-D, or similar).
type LineSource func() (string, bool)

// LineBuffer is a tokenSource that pulls physical lines from a
// LineSource on demand: when the current line runs out of tokens, it
// transparently fetches another and keeps going, so a form spanning
// several lines reads seamlessly and a line holding several forms
// serves them one at a time without fetching early. MoreOnLine exposes
// which of those two things just happened. It suits line sources that
// never block waiting for more data to exist, such as a file scanned
// line by line; a source that blocks on a human (a REPL prompt) would
// make the one-token lookahead fetch ahead of what's actually been
// typed, so interactive reading uses whole-buffer reparsing instead.
type LineBuffer struct {
	nextLine LineSource
	tok      *Tokenizer
	gen      int

	havePeek  bool
	peeked    Token
	peekedGen int
	lastGen   int
}

// NewLineBuffer wraps nextLine as a tokenSource.
func NewLineBuffer(nextLine LineSource) *LineBuffer {
	return &LineBuffer{nextLine: nextLine}
}

func (b *LineBuffer) ensurePeek() error {
	if b.havePeek {
		return nil
	}
	for {
		if b.tok == nil {
			line, ok := b.nextLine()
			if !ok {
				b.peeked, b.peekedGen, b.havePeek = Token{Type: EOF}, -1, true
				return nil
			}
			b.gen++
			b.tok = NewTokenizer(line)
		}
		tok, err := b.tok.Next()
		if err != nil {
			return err
		}
		if tok.Type == EOF {
			b.tok = nil
			continue
		}
		b.peeked, b.peekedGen, b.havePeek = tok, b.gen, true
		return nil
	}
}

// Next implements tokenSource.
func (b *LineBuffer) Next() (Token, error) {
	if err := b.ensurePeek(); err != nil {
		return Token{}, err
	}
	tok := b.peeked
	b.lastGen = b.peekedGen
	b.havePeek = false
	return tok, nil
}

// MoreOnLine reports whether the last token Next returned came from the
// line currently being read, as opposed to a line fetched earlier that
// has since run dry. It never pulls fresh input to answer: Next already
// advances one token ahead of whatever it hands back (so the parser
// always holds a ready lookahead), and peeking further still here would
// mean blocking on another line before the caller even asked for one.
func (b *LineBuffer) MoreOnLine() bool {
	return b.lastGen != 0 && b.lastGen == b.gen
}
