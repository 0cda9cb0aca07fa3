package parser

import (
	"testing"

	"github.com/nordsoyv/cdl/pkg/ast"
	"github.com/nordsoyv/cdl/pkg/options"
)

func parseExprString(t *testing.T, src string) ast.Expr {
	t.Helper()
	tokens, err := lexAll(src, options.Default())
	if err != nil {
		t.Fatalf("lexAll(%q) error = %v", src, err)
	}
	p := newParser(tokens, src, options.Default())
	expr, err := p.parseExpr()
	if err != nil {
		t.Fatalf("parseExpr(%q) error = %v", src, err)
	}
	return expr
}

func TestParseExpr_ArithmeticPrecedence(t *testing.T) {
	// "1 + 2 * 3" must parse as 1 + (2 * 3): a left-leaning tree whose
	// top node is '+' with a '*' on the right (spec.md §4.2).
	expr := parseExprString(t, "1 + 2 * 3")

	bin, ok := expr.(*ast.BinaryOpExpr)
	if !ok {
		t.Fatalf("type = %T, want *ast.BinaryOpExpr", expr)
	}
	if bin.Operator != "+" {
		t.Fatalf("Operator = %q, want +", bin.Operator)
	}
	if _, ok := bin.Left.(*ast.NumberExpr); !ok {
		t.Errorf("Left type = %T, want *ast.NumberExpr", bin.Left)
	}
	right, ok := bin.Right.(*ast.BinaryOpExpr)
	if !ok {
		t.Fatalf("Right type = %T, want *ast.BinaryOpExpr", bin.Right)
	}
	if right.Operator != "*" {
		t.Errorf("Right.Operator = %q, want *", right.Operator)
	}
}

func TestParseExpr_LeftAssociative(t *testing.T) {
	// "1 - 2 - 3" must parse as (1 - 2) - 3, not 1 - (2 - 3).
	expr := parseExprString(t, "1 - 2 - 3")

	top, ok := expr.(*ast.BinaryOpExpr)
	if !ok {
		t.Fatalf("type = %T, want *ast.BinaryOpExpr", expr)
	}
	left, ok := top.Left.(*ast.BinaryOpExpr)
	if !ok {
		t.Fatalf("Left type = %T, want *ast.BinaryOpExpr", top.Left)
	}
	if _, ok := left.Left.(*ast.NumberExpr); !ok {
		t.Errorf("innermost Left type = %T, want *ast.NumberExpr", left.Left)
	}
	if _, ok := top.Right.(*ast.NumberExpr); !ok {
		t.Errorf("outer Right type = %T, want *ast.NumberExpr", top.Right)
	}
}

func TestParseExpr_UnaryMinus(t *testing.T) {
	expr := parseExprString(t, "-5")
	un, ok := expr.(*ast.UnaryOpExpr)
	if !ok {
		t.Fatalf("type = %T, want *ast.UnaryOpExpr", expr)
	}
	if un.Operator != "-" {
		t.Errorf("Operator = %q, want -", un.Operator)
	}
}

func TestParseExpr_Parenthesized(t *testing.T) {
	// Parens group but leave no trace in the tree (spec.md §4.3).
	expr := parseExprString(t, "(1 + 2) * 3")
	bin, ok := expr.(*ast.BinaryOpExpr)
	if !ok {
		t.Fatalf("type = %T, want *ast.BinaryOpExpr", expr)
	}
	if bin.Operator != "*" {
		t.Fatalf("Operator = %q, want *", bin.Operator)
	}
	if _, ok := bin.Left.(*ast.BinaryOpExpr); !ok {
		t.Errorf("Left type = %T, want *ast.BinaryOpExpr", bin.Left)
	}
}

func TestParseExpr_VPath(t *testing.T) {
	expr := parseExprString(t, "source:field")
	vp, ok := expr.(*ast.VPathExpr)
	if !ok {
		t.Fatalf("type = %T, want *ast.VPathExpr", expr)
	}
	if vp.Table == nil || *vp.Table != "source" {
		t.Errorf("Table = %v, want source", vp.Table)
	}
	if vp.Field == nil || *vp.Field != "field" {
		t.Errorf("Field = %v, want field", vp.Field)
	}
}

func TestParseExpr_FunctionCall(t *testing.T) {
	expr := parseExprString(t, `sum(1, 2, "x")`)
	fn, ok := expr.(*ast.FunctionExpr)
	if !ok {
		t.Fatalf("type = %T, want *ast.FunctionExpr", expr)
	}
	if fn.Name != "sum" {
		t.Errorf("Name = %q, want sum", fn.Name)
	}
	if len(fn.Args) != 3 {
		t.Fatalf("len(Args) = %d, want 3", len(fn.Args))
	}
}

func TestParseExpr_FunctionCallNoArgs(t *testing.T) {
	expr := parseExprString(t, "now()")
	fn, ok := expr.(*ast.FunctionExpr)
	if !ok {
		t.Fatalf("type = %T, want *ast.FunctionExpr", expr)
	}
	if len(fn.Args) != 0 {
		t.Errorf("len(Args) = %d, want 0", len(fn.Args))
	}
}

func TestParseExpr_Identifier(t *testing.T) {
	expr := parseExprString(t, "myvar")
	ident, ok := expr.(*ast.IdentifierExpr)
	if !ok {
		t.Fatalf("type = %T, want *ast.IdentifierExpr", expr)
	}
	if ident.Value != "myvar" {
		t.Errorf("Value = %q, want myvar", ident.Value)
	}
}

func TestParseExpr_NumberPreservesLiteralText(t *testing.T) {
	expr := parseExprString(t, "1.50")
	num, ok := expr.(*ast.NumberExpr)
	if !ok {
		t.Fatalf("type = %T, want *ast.NumberExpr", expr)
	}
	if num.LiteralText != "1.50" {
		t.Errorf("LiteralText = %q, want 1.50", num.LiteralText)
	}
	if num.Value != 1.5 {
		t.Errorf("Value = %v, want 1.5", num.Value)
	}
}

func TestParseExpr_MaxExpressionDepth(t *testing.T) {
	src := ""
	for i := 0; i < 100; i++ {
		src += "("
	}
	src += "1"
	for i := 0; i < 100; i++ {
		src += ")"
	}

	tokens, err := lexAll(src, options.Default())
	if err != nil {
		t.Fatalf("lexAll error = %v", err)
	}
	p := newParser(tokens, src, options.Options{StrictLexing: true, MaxExpressionDepth: 10})
	if _, err := p.parseExpr(); err == nil {
		t.Fatal("parseExpr() error = nil, want depth-limit error")
	}
}
