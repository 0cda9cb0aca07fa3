// Package ast defines the CDL abstract syntax tree: a strictly tree-shaped,
// uniquely-owned hierarchy of entities, fields and expressions. Every node
// is built once by pkg/parser and never mutated afterwards; pkg/printer and
// pkg/selector only ever read it.
package ast

import (
	"github.com/nordsoyv/cdl/pkg/lexer"
)

// Node is implemented by every AST node. Unlike vclparser's ast.Node, there
// is no GetComments/SetComments pair here: CDL recognizes no comments
// (spec §6), so the comment-attachment machinery vclparser carries has no
// equivalent concern in this grammar.
type Node interface {
	Start() lexer.Position
	End() lexer.Position
}

// BaseNode carries the source span every node needs. Embed it to satisfy
// Node without repeating Start/End on every type.
type BaseNode struct {
	StartPos lexer.Position
	EndPos   lexer.Position
}

func (b BaseNode) Start() lexer.Position { return b.StartPos }
func (b BaseNode) End() lexer.Position   { return b.EndPos }

// Root is the root of a compiled CDL document: an ordered sequence of
// top-level entities.
type Root struct {
	BaseNode
	Entities []*Entity
}

func (r *Root) String() string { return "Root" }

// Header holds the fixed header fields that precede an Entity's body.
// Only MainType is required; the rest are independently optional.
type Header struct {
	MainType   string
	SubType    *string
	Identifier *string
	Reference  *string
}

// Body holds a single entity's direct fields and child entities, each
// preserving source order independently of the other (spec §3 invariant).
type Body struct {
	Fields   []*Field
	Children []*Entity
}

// Entity is a named, typed, curly-braced configuration block.
type Entity struct {
	BaseNode
	Header Header
	Body   Body
}

func (e *Entity) String() string { return "Entity(" + e.Header.MainType + ")" }

// Field is a single `name : expression` line inside an entity body.
type Field struct {
	BaseNode
	Identifier string
	Value      Expr
}

func (f *Field) String() string { return "Field(" + f.Identifier + ")" }

// Expr is the tagged union of expression node kinds. The unexported marker
// method closes the union to the seven variants spec.md §3 names, the same
// way vclparser closes its own Expression/Statement/Declaration unions.
type Expr interface {
	Node
	String() string
	exprNode()
}
