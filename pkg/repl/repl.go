package repl

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/leinonen/scheme/pkg/env"
	"github.com/leinonen/scheme/pkg/eval"
	"github.com/leinonen/scheme/pkg/reader"
	"github.com/leinonen/scheme/pkg/types"
)

// Run starts an interactive read-eval-print loop against frame until the
// user quits or sends EOF. Input accumulates a line at a time; once it
// parses as one or more complete forms, each is evaluated in order, and
// any trailing text left in the same accumulated input (several forms
// typed on one line) is parsed again before the next line is requested.
func Run(frame *env.Frame) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "scheme> ",
		HistoryFile:     "/tmp/scheme_history",
		AutoComplete:    newCompleter(frame),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	printWelcome()
	formatter := NewErrorFormatter()

	var source strings.Builder
outer:
	for {
		if source.Len() == 0 {
			rl.SetPrompt("scheme> ")
		} else {
			rl.SetPrompt("      ... ")
		}
		line, err := rl.Readline()
		if err != nil {
			break
		}
		source.WriteString(line)
		source.WriteString("\n")

		p, err := reader.NewParser(source.String())
		if err != nil {
			if needsMoreInput(err) {
				continue // e.g. a string left open on its first line
			}
			fmt.Println(formatter.Format(err))
			source.Reset()
			continue
		}

		for {
			expr, err := p.ParseExpr()
			if err != nil {
				if needsMoreInput(err) {
					break // keep accumulated source, prompt for another line
				}
				fmt.Println(formatter.Format(err))
				source.Reset()
				break
			}
			if expr == nil {
				source.Reset()
				break
			}
			if sym, ok := expr.(types.Symbol); ok && (sym == "quit" || sym == "exit") {
				break outer
			}

			result, err := eval.Eval(expr, frame)
			if err != nil {
				fmt.Println(formatter.FormatWithSuggestion(err))
				continue
			}
			if types.IsOkay(result) {
				continue
			}
			fmt.Printf("=> %s\n", color.New(color.FgGreen).Sprint(result.String()))
		}
	}

	printGoodbye()
	return nil
}

// needsMoreInput reports whether err reflects a form that simply isn't
// finished yet (an open paren, an unterminated string, a dangling quote)
// rather than a genuine syntax mistake.
func needsMoreInput(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "unmatched (") ||
		strings.Contains(msg, "unterminated string") ||
		strings.Contains(msg, "unexpected end of input") ||
		strings.Contains(msg, "expected ) after dotted tail")
}

func printWelcome() {
	title := color.New(color.FgCyan, color.Bold)
	instruction := color.New(color.FgYellow)

	title.Println("Scheme evaluator core")
	instruction.Println("Type expressions to evaluate them, or 'quit' to exit.")
	instruction.Println("Forms spanning multiple lines are read transparently.")
	fmt.Println()
}

func printGoodbye() {
	color.New(color.FgMagenta, color.Bold).Println("Goodbye!")
}
