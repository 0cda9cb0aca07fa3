// Package diag defines the CDL error taxonomy (spec.md §7): lexical
// errors, syntax errors, and selector errors. Each carries enough context
// to render a source-pointing message, grounded on
// vclparser/pkg/parser/error.go's DetailedError, with optional ANSI color
// grounded on perbu-vcltest/pkg/formatter's conventions.
package diag

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/nordsoyv/cdl/pkg/lexer"
)

// ANSI color codes, the same palette as perbu-vcltest/pkg/formatter.
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// ShouldUseColor reports whether stdout is a terminal, grounded on
// perbu-vcltest/pkg/formatter.ShouldUseColor. compile/print/select never
// call this themselves — it exists for an (out-of-scope) host CLI that
// wants to colorize a returned error.
func ShouldUseColor() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// LexError reports a character the lexer could not classify (spec.md §7).
type LexError struct {
	Message  string
	Position lexer.Position
	Source   string
}

func (e *LexError) Error() string { return e.Render(false) }

// Render formats the error with source context: one line before, the
// offending line with a caret under the exact column, one line after —
// the same layout as vclparser/pkg/parser.DetailedError.Error().
func (e *LexError) Render(useColor bool) string {
	return render("lex error", e.Message, e.Position, e.Source, useColor)
}

// SyntaxError reports a token the parser did not expect, or running off
// the end of the token stream during required lookahead (spec.md §7).
type SyntaxError struct {
	Message  string
	Token    lexer.Token
	Position lexer.Position
	Source   string
}

func (e *SyntaxError) Error() string { return e.Render(false) }

func (e *SyntaxError) Render(useColor bool) string {
	msg := fmt.Sprintf("%s (got %s)", e.Message, e.Token.Type)
	return render("syntax error", msg, e.Position, e.Source, useColor)
}

// SelectorError reports a malformed selector string. spec.md §4.5 notes an
// implementation may either return an error or panic; this module returns,
// which is friendlier to library callers.
type SelectorError struct {
	Message  string
	Position lexer.Position
	Source   string
}

func (e *SelectorError) Error() string { return e.Render(false) }

func (e *SelectorError) Render(useColor bool) string {
	return render("selector error", e.Message, e.Position, e.Source, useColor)
}

func render(kind, message string, pos lexer.Position, source string, useColor bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s at line %d:%d\n", kind, pos.Line, pos.Column)

	lines := strings.Split(source, "\n")
	errorLine := pos.Line - 1 // 0-indexed

	if errorLine > 0 && errorLine-1 < len(lines) {
		writeContextLine(&b, errorLine, lines[errorLine-1], useColor)
	}
	if errorLine >= 0 && errorLine < len(lines) {
		if useColor {
			fmt.Fprintf(&b, "%s%3d | %s%s\n", colorBold, errorLine+1, lines[errorLine], colorReset)
		} else {
			fmt.Fprintf(&b, "%3d | %s\n", errorLine+1, lines[errorLine])
		}
		caret := strings.Repeat(" ", 6+pos.Column-1) + "^"
		if useColor {
			fmt.Fprintf(&b, "%s%s%s\n", colorRed, caret, colorReset)
		} else {
			fmt.Fprintf(&b, "%s\n", caret)
		}
	}
	if errorLine+1 < len(lines) {
		writeContextLine(&b, errorLine+2, lines[errorLine+1], useColor)
	}

	fmt.Fprintf(&b, "\n%s: %s\n", kind, message)
	return b.String()
}

func writeContextLine(b *strings.Builder, lineNum int, text string, useColor bool) {
	if useColor {
		fmt.Fprintf(b, "%s%3d | %s%s\n", colorGray, lineNum, text, colorReset)
	} else {
		fmt.Fprintf(b, "%3d | %s\n", lineNum, text)
	}
}
