package repl

import (
	"sort"
	"strings"

	"github.com/leinonen/scheme/pkg/env"
)

// completer implements readline.AutoCompleter, offering prefix
// completions drawn from every name bound in the global frame plus the
// special form keywords.
type completer struct {
	frame *env.Frame
}

func newCompleter(frame *env.Frame) *completer {
	return &completer{frame: frame}
}

func (c *completer) names() []string {
	var names []string
	for _, sym := range c.frame.Names() {
		names = append(names, string(sym))
	}
	for kw := range specialFormKeywords {
		names = append(names, kw)
	}
	sort.Strings(names)
	return names
}

func currentWord(line string, pos int) string {
	if pos > len(line) {
		pos = len(line)
	}
	start := pos
	for start > 0 && isSymbolChar(rune(line[start-1])) {
		start--
	}
	return line[start:pos]
}

func isSymbolChar(r rune) bool {
	if r == '(' || r == ')' || r == ' ' || r == '\t' || r == '\n' {
		return false
	}
	return true
}

// Do implements readline.AutoCompleter.
func (c *completer) Do(line []rune, pos int) ([][]rune, int) {
	lineStr := string(line)
	word := currentWord(lineStr, pos)
	if word == "" {
		return nil, 0
	}
	var out [][]rune
	for _, name := range c.names() {
		if strings.HasPrefix(name, word) && len(name) > len(word) {
			out = append(out, []rune(name[len(word):]))
		}
	}
	return out, len(word)
}

var specialFormKeywords = map[string]bool{
	"define": true, "quote": true, "if": true, "lambda": true, "mu": true,
	"let": true, "begin": true, "and": true, "or": true, "cond": true,
	"delay": true, "cons-stream": true, "else": true,
}
