// Package debug renders a CDL AST to a deterministic, ordered JSON tree
// for golden-file snapshot tests and external tooling (SPEC_FULL.md
// §4.10) — distinct from pkg/printer's canonical CDL text. Grounded on
// perbu-vcltest's buger/jsonparser + mailru/easyjson pairing: Dump hand-
// writes JSON field by field with easyjson's low-level jwriter.Writer
// (no reflection), and golden.go reads a recorded snapshot back with
// jsonparser (a non-allocating scan, not encoding/json).
package debug

import (
	"github.com/mailru/easyjson/jwriter"

	"github.com/nordsoyv/cdl/pkg/ast"
)

// Dump renders node (any CDL AST node) to JSON bytes.
func Dump(node ast.Node) ([]byte, error) {
	w := &jwriter.Writer{}
	writeNode(w, node)
	return w.BuildBytes()
}

func writeNode(w *jwriter.Writer, node ast.Node) {
	switch n := node.(type) {
	case *ast.Root:
		writeRoot(w, n)
	case *ast.Entity:
		writeEntity(w, n)
	case *ast.Field:
		writeField(w, n)
	default:
		writeExpr(w, node.(ast.Expr))
	}
}

func writeRoot(w *jwriter.Writer, n *ast.Root) {
	w.RawByte('{')
	w.RawString(`"type":"Root","entities":`)
	w.RawByte('[')
	for i, e := range n.Entities {
		if i > 0 {
			w.RawByte(',')
		}
		writeEntity(w, e)
	}
	w.RawByte(']')
	w.RawByte('}')
}

func writeEntity(w *jwriter.Writer, n *ast.Entity) {
	w.RawByte('{')
	w.RawString(`"type":"Entity","main_type":`)
	w.String(n.Header.MainType)
	w.RawString(`,"sub_type":`)
	writeOptString(w, n.Header.SubType)
	w.RawString(`,"identifier":`)
	writeOptString(w, n.Header.Identifier)
	w.RawString(`,"reference":`)
	writeOptString(w, n.Header.Reference)

	w.RawString(`,"fields":[`)
	for i, f := range n.Body.Fields {
		if i > 0 {
			w.RawByte(',')
		}
		writeField(w, f)
	}
	w.RawString(`],"children":[`)
	for i, c := range n.Body.Children {
		if i > 0 {
			w.RawByte(',')
		}
		writeEntity(w, c)
	}
	w.RawByte(']')
	w.RawByte('}')
}

func writeField(w *jwriter.Writer, n *ast.Field) {
	w.RawByte('{')
	w.RawString(`"type":"Field","identifier":`)
	w.String(n.Identifier)
	w.RawString(`,"value":`)
	writeExpr(w, n.Value)
	w.RawByte('}')
}

func writeExpr(w *jwriter.Writer, e ast.Expr) {
	switch v := e.(type) {
	case *ast.StringExpr:
		w.RawString(`{"type":"StringExpr","value":`)
		w.String(v.Value)
		w.RawByte('}')

	case *ast.IdentifierExpr:
		w.RawString(`{"type":"IdentifierExpr","value":`)
		w.String(v.Value)
		w.RawByte('}')

	case *ast.NumberExpr:
		w.RawString(`{"type":"NumberExpr","value":`)
		w.Float64(v.Value)
		w.RawString(`,"literal_text":`)
		w.String(v.LiteralText)
		w.RawByte('}')

	case *ast.VPathExpr:
		w.RawString(`{"type":"VPathExpr","table":`)
		writeOptString(w, v.Table)
		w.RawString(`,"sub_table":`)
		writeOptString(w, v.SubTable)
		w.RawString(`,"field":`)
		writeOptString(w, v.Field)
		w.RawString(`,"sub_field":`)
		writeOptString(w, v.SubField)
		w.RawByte('}')

	case *ast.FunctionExpr:
		w.RawString(`{"type":"FunctionExpr","name":`)
		w.String(v.Name)
		w.RawString(`,"args":[`)
		for i, arg := range v.Args {
			if i > 0 {
				w.RawByte(',')
			}
			writeExpr(w, arg)
		}
		w.RawString(`]}`)

	case *ast.BinaryOpExpr:
		w.RawString(`{"type":"BinaryOpExpr","operator":`)
		w.String(v.Operator)
		w.RawString(`,"left":`)
		writeExpr(w, v.Left)
		w.RawString(`,"right":`)
		writeExpr(w, v.Right)
		w.RawByte('}')

	case *ast.UnaryOpExpr:
		w.RawString(`{"type":"UnaryOpExpr","operator":`)
		w.String(v.Operator)
		w.RawString(`,"operand":`)
		writeExpr(w, v.Operand)
		w.RawByte('}')
	}
}

func writeOptString(w *jwriter.Writer, s *string) {
	if s == nil {
		w.RawString("null")
		return
	}
	w.String(*s)
}
