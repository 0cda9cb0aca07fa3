package diag

import (
	"strings"
	"testing"

	"github.com/nordsoyv/cdl/pkg/lexer"
)

func TestLexError_Render_PointsAtColumn(t *testing.T) {
	source := "widget kpi {\n    label : %\n}\n"
	err := &LexError{
		Message:  `unrecognized character "%"`,
		Position: lexer.Position{Line: 2, Column: 13, Offset: 25},
		Source:   source,
	}

	msg := err.Render(false)
	if !strings.Contains(msg, "label : %") {
		t.Errorf("Render() missing offending line:\n%s", msg)
	}
	if !strings.Contains(msg, "^") {
		t.Errorf("Render() missing caret:\n%s", msg)
	}
	if !strings.Contains(msg, `unrecognized character "%"`) {
		t.Errorf("Render() missing message:\n%s", msg)
	}
}

func TestLexError_Error_UsesNoColor(t *testing.T) {
	err := &LexError{Message: "bad char", Position: lexer.Position{Line: 1, Column: 1}, Source: "x"}
	if strings.Contains(err.Error(), colorRed) {
		t.Error("Error() should not contain ANSI color codes")
	}
}

func TestSyntaxError_Render_IncludesTokenType(t *testing.T) {
	err := &SyntaxError{
		Message:  "expected ':'",
		Token:    lexer.Token{Type: lexer.String, Value: "x"},
		Position: lexer.Position{Line: 1, Column: 1},
		Source:   "a \"x\"",
	}
	msg := err.Render(false)
	if !strings.Contains(msg, "expected ':'") {
		t.Errorf("Render() missing message:\n%s", msg)
	}
	if !strings.Contains(msg, "String") {
		t.Errorf("Render() missing token type:\n%s", msg)
	}
}

func TestSelectorError_Render(t *testing.T) {
	err := &SelectorError{Message: "unexpected end of selector", Position: lexer.Position{Line: 1, Column: 5}, Source: "a["}
	msg := err.Render(false)
	if !strings.Contains(msg, "selector error") {
		t.Errorf("Render() missing kind label:\n%s", msg)
	}
}

func TestRender_UsesColorWhenRequested(t *testing.T) {
	err := &LexError{Message: "bad", Position: lexer.Position{Line: 1, Column: 1}, Source: "x"}
	if !strings.Contains(err.Render(true), colorRed) {
		t.Error("Render(true) should contain ANSI color codes")
	}
}
