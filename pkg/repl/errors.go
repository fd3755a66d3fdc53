// Package repl implements the interactive read-eval-print loop and the
// file-loading driver that sit on top of pkg/eval.
package repl

import (
	"strings"

	"github.com/fatih/color"
)

// errorKind categorizes an evaluator error for color coding, following
// the vocabulary pkg/eval and pkg/primitives actually produce rather
// than a generic exception hierarchy.
type errorKind int

const (
	kindSyntax errorKind = iota
	kindUndefined
	kindType
	kindRecursion
	kindGeneral
)

// ErrorFormatter renders an evaluator error as a colored, labeled line
// plus an optional one-line suggestion.
type ErrorFormatter struct {
	syntaxColor    *color.Color
	undefinedColor *color.Color
	typeColor      *color.Color
	recursionColor *color.Color
	generalColor   *color.Color
	prefixColor    *color.Color
}

func NewErrorFormatter() *ErrorFormatter {
	return &ErrorFormatter{
		syntaxColor:    color.New(color.FgRed, color.Bold),
		undefinedColor: color.New(color.FgYellow, color.Bold),
		typeColor:      color.New(color.FgCyan, color.Bold),
		recursionColor: color.New(color.FgMagenta, color.Bold),
		generalColor:   color.New(color.FgWhite, color.Bold),
		prefixColor:    color.New(color.FgRed, color.Bold),
	}
}

func (ef *ErrorFormatter) categorize(msg string) errorKind {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "badly formed"), strings.Contains(lower, "malformed"),
		strings.Contains(lower, "too few operands"), strings.Contains(lower, "too many operands"),
		strings.Contains(lower, "unexpected"), strings.Contains(lower, "unterminated"),
		strings.Contains(lower, "non-symbol"), strings.Contains(lower, "duplicate parameter"):
		return kindSyntax
	case strings.Contains(lower, "unknown identifier"):
		return kindUndefined
	case strings.Contains(lower, "not a"), strings.Contains(lower, "cannot call"),
		strings.Contains(lower, "arity error"):
		return kindType
	case strings.Contains(lower, "recursion"):
		return kindRecursion
	default:
		return kindGeneral
	}
}

func (ef *ErrorFormatter) colorFor(kind errorKind) *color.Color {
	switch kind {
	case kindSyntax:
		return ef.syntaxColor
	case kindUndefined:
		return ef.undefinedColor
	case kindType:
		return ef.typeColor
	case kindRecursion:
		return ef.recursionColor
	default:
		return ef.generalColor
	}
}

func (ef *ErrorFormatter) labelFor(kind errorKind) string {
	switch kind {
	case kindSyntax:
		return "Syntax Error"
	case kindUndefined:
		return "Undefined Identifier"
	case kindType:
		return "Type Error"
	case kindRecursion:
		return "Recursion Error"
	default:
		return "Error"
	}
}

// Format renders err with a categorized, colored label.
func (ef *ErrorFormatter) Format(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	kind := ef.categorize(msg)
	prefix := ef.prefixColor.Sprintf("%s:", ef.labelFor(kind))
	body := ef.colorFor(kind).Sprintf(" %s", msg)
	return prefix + body
}

// FormatWithSuggestion renders err the way Format does, appending a
// smart suggestion when one applies.
func (ef *ErrorFormatter) FormatWithSuggestion(err error) string {
	base := ef.Format(err)
	if base == "" {
		return base
	}
	suggestion := ef.suggest(err.Error())
	if suggestion == "" {
		return base
	}
	hint := color.New(color.FgHiBlack, color.Italic).Sprintf("\n  Hint: %s", suggestion)
	return base + hint
}

func (ef *ErrorFormatter) suggest(msg string) string {
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "unknown identifier"):
		return "check the name is defined before it's referenced"
	case strings.Contains(lower, "too few operands"), strings.Contains(lower, "too many operands"),
		strings.Contains(lower, "arity error"):
		return "check the form's operand count against its definition"
	case strings.Contains(lower, "unterminated"):
		return "check for balanced parentheses and quotes"
	case strings.Contains(lower, "division by zero"):
		return "ensure the divisor is not zero"
	case strings.Contains(lower, "cannot call"):
		return "make sure you're calling a procedure, not a value"
	default:
		return ""
	}
}
