package ast

// Visitor provides an interface for traversing AST nodes, the same shape
// as vclparser/pkg/ast.Visitor, narrowed to the node kinds spec.md §3
// names.
type Visitor interface {
	VisitRoot(*Root) interface{}
	VisitEntity(*Entity) interface{}
	VisitField(*Field) interface{}

	VisitStringExpr(*StringExpr) interface{}
	VisitIdentifierExpr(*IdentifierExpr) interface{}
	VisitNumberExpr(*NumberExpr) interface{}
	VisitVPathExpr(*VPathExpr) interface{}
	VisitFunctionExpr(*FunctionExpr) interface{}
	VisitBinaryOpExpr(*BinaryOpExpr) interface{}
	VisitUnaryOpExpr(*UnaryOpExpr) interface{}
}

// Accept dispatches node to the matching Visit method, mirroring
// vclparser/pkg/ast.Accept's type switch.
func Accept(node Node, visitor Visitor) interface{} {
	switch n := node.(type) {
	case *Root:
		return visitor.VisitRoot(n)
	case *Entity:
		return visitor.VisitEntity(n)
	case *Field:
		return visitor.VisitField(n)
	case *StringExpr:
		return visitor.VisitStringExpr(n)
	case *IdentifierExpr:
		return visitor.VisitIdentifierExpr(n)
	case *NumberExpr:
		return visitor.VisitNumberExpr(n)
	case *VPathExpr:
		return visitor.VisitVPathExpr(n)
	case *FunctionExpr:
		return visitor.VisitFunctionExpr(n)
	case *BinaryOpExpr:
		return visitor.VisitBinaryOpExpr(n)
	case *UnaryOpExpr:
		return visitor.VisitUnaryOpExpr(n)
	default:
		panic("ast: unknown node type")
	}
}

// BaseVisitor provides a default no-op implementation of Visitor. Embed it
// in a custom visitor and override only the methods you need, the same
// pattern as vclparser/pkg/ast.BaseVisitor.
type BaseVisitor struct{}

func (bv *BaseVisitor) VisitRoot(*Root) interface{}                     { return nil }
func (bv *BaseVisitor) VisitEntity(*Entity) interface{}                 { return nil }
func (bv *BaseVisitor) VisitField(*Field) interface{}                   { return nil }
func (bv *BaseVisitor) VisitStringExpr(*StringExpr) interface{}         { return nil }
func (bv *BaseVisitor) VisitIdentifierExpr(*IdentifierExpr) interface{} { return nil }
func (bv *BaseVisitor) VisitNumberExpr(*NumberExpr) interface{}         { return nil }
func (bv *BaseVisitor) VisitVPathExpr(*VPathExpr) interface{}           { return nil }
func (bv *BaseVisitor) VisitFunctionExpr(*FunctionExpr) interface{}     { return nil }
func (bv *BaseVisitor) VisitBinaryOpExpr(*BinaryOpExpr) interface{}     { return nil }
func (bv *BaseVisitor) VisitUnaryOpExpr(*UnaryOpExpr) interface{}       { return nil }
