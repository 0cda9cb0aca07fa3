package ast

// StringExpr is a quoted string literal. No escape processing is applied:
// the raw bytes between the quotes are retained verbatim (spec §4.1, §4.3).
type StringExpr struct {
	BaseNode
	Value string
}

func (e *StringExpr) String() string { return "StringExpr(" + e.Value + ")" }
func (e *StringExpr) exprNode()      {}

// IdentifierExpr is a bare identifier used as a value expression.
type IdentifierExpr struct {
	BaseNode
	Value string
}

func (e *IdentifierExpr) String() string { return "IdentifierExpr(" + e.Value + ")" }
func (e *IdentifierExpr) exprNode()      {}

// NumberExpr retains both the parsed float64 and the literal source
// spelling, so printing is lossless (spec §3: "literal_text preserves the
// source spelling").
type NumberExpr struct {
	BaseNode
	Value       float64
	LiteralText string
}

func (e *NumberExpr) String() string { return "NumberExpr(" + e.LiteralText + ")" }
func (e *NumberExpr) exprNode()      {}

// VPathExpr is a two-part "source:field" reference. The parser only ever
// produces Table+Field; SubTable/SubField exist because the printer's
// grammar (spec §4.3) supports all four components, and a future grammar
// extension may populate them, but today's grammar (spec §4.2) never sets
// them (spec §3 invariant).
type VPathExpr struct {
	BaseNode
	Table    *string
	SubTable *string
	Field    *string
	SubField *string
}

func (e *VPathExpr) String() string { return "VPathExpr" }
func (e *VPathExpr) exprNode()      {}

// FunctionExpr is a named function call with an ordered argument list.
type FunctionExpr struct {
	BaseNode
	Name string
	Args []Expr
}

func (e *FunctionExpr) String() string { return "FunctionExpr(" + e.Name + ")" }
func (e *FunctionExpr) exprNode()      {}

// BinaryOpExpr is a left-associative binary arithmetic expression. Operator
// is one of "+", "-", "*", "/".
type BinaryOpExpr struct {
	BaseNode
	Operator string
	Left     Expr
	Right    Expr
}

func (e *BinaryOpExpr) String() string { return "BinaryOpExpr(" + e.Operator + ")" }
func (e *BinaryOpExpr) exprNode()      {}

// UnaryOpExpr is a prefix unary expression. Operator is always "-" (spec
// §3: "operator ∈ {−}").
type UnaryOpExpr struct {
	BaseNode
	Operator string
	Operand  Expr
}

func (e *UnaryOpExpr) String() string { return "UnaryOpExpr(" + e.Operator + ")" }
func (e *UnaryOpExpr) exprNode()      {}
