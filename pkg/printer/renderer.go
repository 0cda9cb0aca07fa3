// Package printer renders a CDL AST back to its canonical textual form
// (spec.md §4.3). Grounded on vclparser/pkg/renderer's write/writeLine/
// indentInc/indentDec visitor-walk pattern, narrowed to CDL's much smaller
// node set and its fields-then-children body ordering.
package printer

import (
	"strconv"
	"strings"

	"github.com/nordsoyv/cdl/pkg/ast"
)

// Printer implements ast.Visitor, rendering each node to its canonical
// text into an internal strings.Builder.
type Printer struct {
	ast.BaseVisitor
	builder strings.Builder
	indent  int
}

// New creates a Printer starting at indent level 0. The root entry point
// (Print) never indents before descending into the first Entity — indent
// only increases once a Body is entered (spec.md §4.3), which is what
// keeps indentation from underflowing on an empty-bodied root.
func New() *Printer {
	return &Printer{}
}

// Print renders a Root to canonical CDL source text.
func Print(root *ast.Root) string {
	p := New()
	ast.Accept(root, p)
	return p.builder.String()
}

func (p *Printer) write(s string) {
	p.builder.WriteString(s)
}

func (p *Printer) writeIndent() {
	p.builder.WriteString(strings.Repeat("    ", p.indent))
}

func (p *Printer) indentInc() { p.indent++ }
func (p *Printer) indentDec() { p.indent-- }

// VisitRoot renders each top-level entity in document order, separated by
// blank lines the way vclparser's VisitProgram separates declarations.
func (p *Printer) VisitRoot(node *ast.Root) interface{} {
	for i, entity := range node.Entities {
		if i > 0 {
			p.write("\n")
		}
		ast.Accept(entity, p)
	}
	return nil
}

// VisitEntity renders `Header {` on one line, the body indented one level
// deeper, then the matching closing brace at the entity's own indent
// level (spec.md §4.3).
func (p *Printer) VisitEntity(node *ast.Entity) interface{} {
	p.writeIndent()
	p.writeHeader(node.Header)
	p.write(" {\n")

	p.indentInc()
	p.VisitBody(&node.Body)
	p.indentDec()

	p.writeIndent()
	p.write("}\n")
	return nil
}

// writeHeader renders `main_type [sub_type] [#identifier] [@reference]`
// in that fixed order (spec.md §3/§4.2).
func (p *Printer) writeHeader(h ast.Header) {
	p.write(h.MainType)
	if h.SubType != nil {
		p.write(" ")
		p.write(*h.SubType)
	}
	if h.Identifier != nil {
		p.write(" #")
		p.write(*h.Identifier)
	}
	if h.Reference != nil {
		p.write(" @")
		p.write(*h.Reference)
	}
}

// VisitBody renders fields before children (spec.md §3's canonical
// ordering), each on its own line at the body's indent level.
func (p *Printer) VisitBody(node *ast.Body) interface{} {
	for _, field := range node.Fields {
		ast.Accept(field, p)
	}
	for _, child := range node.Children {
		ast.Accept(child, p)
	}
	return nil
}

// VisitField renders `name: value\n`.
func (p *Printer) VisitField(node *ast.Field) interface{} {
	p.writeIndent()
	p.write(node.Identifier)
	p.write(": ")
	ast.Accept(node.Value, p)
	p.write("\n")
	return nil
}

// VisitStringExpr renders a string literal verbatim inside double quotes.
// CDL strings carry no escape sequences (spec.md §3 Non-goals), so no
// escaping pass runs here, unlike vclparser's VisitStringLiteral.
func (p *Printer) VisitStringExpr(node *ast.StringExpr) interface{} {
	p.write("\"" + node.Value + "\"")
	return nil
}

func (p *Printer) VisitIdentifierExpr(node *ast.IdentifierExpr) interface{} {
	p.write(node.Value)
	return nil
}

// VisitNumberExpr re-emits the literal text the parser captured rather
// than reformatting node.Value through strconv, so that "1.50" prints
// back as written instead of collapsing to "1.5" (spec.md §4.3: printing
// must be stable for already-canonical input).
func (p *Printer) VisitNumberExpr(node *ast.NumberExpr) interface{} {
	if node.LiteralText != "" {
		p.write(node.LiteralText)
		return nil
	}
	p.write(strconv.FormatFloat(node.Value, 'f', -1, 64))
	return nil
}

// VisitVPathExpr renders `[table][subtable]:[field][subfield]`, omitting
// any segment that is nil (spec.md §3's VPath shape).
func (p *Printer) VisitVPathExpr(node *ast.VPathExpr) interface{} {
	if node.Table != nil {
		p.write(*node.Table)
	}
	if node.SubTable != nil {
		p.write(*node.SubTable)
	}
	p.write(":")
	if node.Field != nil {
		p.write(*node.Field)
	}
	if node.SubField != nil {
		p.write(*node.SubField)
	}
	return nil
}

// VisitFunctionExpr renders `name(arg1, arg2, ...)`.
func (p *Printer) VisitFunctionExpr(node *ast.FunctionExpr) interface{} {
	p.write(node.Name)
	p.write("(")
	for i, arg := range node.Args {
		if i > 0 {
			p.write(", ")
		}
		ast.Accept(arg, p)
	}
	p.write(")")
	return nil
}

// VisitBinaryOpExpr renders `left op right` with single spaces and no
// parentheses: the AST has already committed to an associativity during
// parsing, so re-printing never needs to disambiguate precedence (spec.md
// §4.3 — this is why parseParenExpr drops the parens instead of keeping
// a grouping node).
func (p *Printer) VisitBinaryOpExpr(node *ast.BinaryOpExpr) interface{} {
	ast.Accept(node.Left, p)
	p.write(" ")
	p.write(node.Operator)
	p.write(" ")
	ast.Accept(node.Right, p)
	return nil
}

// VisitUnaryOpExpr renders `<op><operand>` with no intervening space.
func (p *Printer) VisitUnaryOpExpr(node *ast.UnaryOpExpr) interface{} {
	p.write(node.Operator)
	ast.Accept(node.Operand, p)
	return nil
}
