package ast

import (
	"github.com/tensile-lang/tensile-lang/internal/ir"
	"github.com/tensile-lang/tensile-lang/internal/lexer"
)

// UnaryOperator tags a unary expression.
type UnaryOperator string

const (
	UnaryNegate     UnaryOperator = "-"
	UnaryBitwiseNot UnaryOperator = "~"
	UnaryLogicalNot UnaryOperator = "!"
)

// UnaryOperators lists every unary operator in a stable order.
var UnaryOperators = []UnaryOperator{UnaryNegate, UnaryBitwiseNot, UnaryLogicalNot}

// BinaryOperator tags a binary expression.
type BinaryOperator string

const (
	BinaryAdd      BinaryOperator = "+"
	BinarySubtract BinaryOperator = "-"
	BinaryMultiply BinaryOperator = "*"
	BinaryDivide   BinaryOperator = "/"
	BinaryModulo   BinaryOperator = "%"
	BinaryPower    BinaryOperator = "**"
	BinaryShiftL   BinaryOperator = "<<"
	BinaryShiftR   BinaryOperator = ">>"
	BinaryLess     BinaryOperator = "<"
	BinaryLessEq   BinaryOperator = "<="
	BinaryGreater  BinaryOperator = ">"
	BinaryGreatEq  BinaryOperator = ">="
	BinaryEqual    BinaryOperator = "=="
	BinaryNotEqual BinaryOperator = "!="
	BinaryBitAnd   BinaryOperator = "&"
	BinaryBitXor   BinaryOperator = "^"
	BinaryBitOr    BinaryOperator = "|"
	BinaryAnd      BinaryOperator = "&&"
	BinaryOr       BinaryOperator = "||"
)

// BinaryOperators lists every binary operator in a stable order.
var BinaryOperators = []BinaryOperator{
	BinaryAdd, BinarySubtract, BinaryMultiply, BinaryDivide, BinaryModulo,
	BinaryPower, BinaryShiftL, BinaryShiftR, BinaryLess, BinaryLessEq,
	BinaryGreater, BinaryGreatEq, BinaryEqual, BinaryNotEqual, BinaryBitAnd,
	BinaryBitXor, BinaryBitOr, BinaryAnd, BinaryOr,
}

// IntLiteral represents a decoded integer literal.
type IntLiteral struct {
	Value int64
	span  lexer.Span
}

// Span returns the literal span.
func (e *IntLiteral) Span() lexer.Span { return e.span }

// NewIntLiteral constructs an integer literal node.
func NewIntLiteral(value int64, span lexer.Span) *IntLiteral {
	return &IntLiteral{Value: value, span: span}
}

// exprNode marks IntLiteral as an expression.
func (*IntLiteral) exprNode() {}

// FloatLiteral represents a decoded float literal.
type FloatLiteral struct {
	Value float64
	span  lexer.Span
}

// Span returns the literal span.
func (e *FloatLiteral) Span() lexer.Span { return e.span }

// NewFloatLiteral constructs a float literal node.
func NewFloatLiteral(value float64, span lexer.Span) *FloatLiteral {
	return &FloatLiteral{Value: value, span: span}
}

// exprNode marks FloatLiteral as an expression.
func (*FloatLiteral) exprNode() {}

// ComplexLiteral represents a decoded complex literal. Values are purely
// imaginary; the grammar has no combined a+bi literal.
type ComplexLiteral struct {
	Value complex128
	span  lexer.Span
}

// Span returns the literal span.
func (e *ComplexLiteral) Span() lexer.Span { return e.span }

// NewComplexLiteral constructs a complex literal node.
func NewComplexLiteral(value complex128, span lexer.Span) *ComplexLiteral {
	return &ComplexLiteral{Value: value, span: span}
}

// exprNode marks ComplexLiteral as an expression.
func (*ComplexLiteral) exprNode() {}

// IdentifierExpr wraps an identifier use. Dotted module paths collapse to
// one identifier whose hint preserves the dotted spelling.
type IdentifierExpr struct {
	Ident *ir.Identifier
	span  lexer.Span
}

// Span returns the expression span.
func (e *IdentifierExpr) Span() lexer.Span { return e.span }

// NewIdentifierExpr constructs an identifier expression node.
func NewIdentifierExpr(ident *ir.Identifier, span lexer.Span) *IdentifierExpr {
	return &IdentifierExpr{Ident: ident, span: span}
}

// exprNode marks IdentifierExpr as an expression.
func (*IdentifierExpr) exprNode() {}

// TupleExpr is an ordered list of expressions. A one-element tuple keeps
// its source trailing comma but is represented the same as any other.
type TupleExpr struct {
	Exprs []Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *TupleExpr) Span() lexer.Span { return e.span }

// NewTupleExpr constructs a tuple expression node.
func NewTupleExpr(exprs []Expr, span lexer.Span) *TupleExpr {
	return &TupleExpr{Exprs: exprs, span: span}
}

// exprNode marks TupleExpr as an expression.
func (*TupleExpr) exprNode() {}

// TupleAccessExpr accesses one tuple element by zero-based index.
type TupleAccessExpr struct {
	Tuple Expr
	Index int64
	span  lexer.Span
}

// Span returns the expression span.
func (e *TupleAccessExpr) Span() lexer.Span { return e.span }

// NewTupleAccessExpr constructs a tuple access node.
func NewTupleAccessExpr(tuple Expr, index int64, span lexer.Span) *TupleAccessExpr {
	return &TupleAccessExpr{Tuple: tuple, Index: index, span: span}
}

// exprNode marks TupleAccessExpr as an expression.
func (*TupleAccessExpr) exprNode() {}

// ArrayAccessExpr indexes an array expression with an ordered list of
// index expressions.
type ArrayAccessExpr struct {
	Array   Expr
	Indices []Expr
	span    lexer.Span
}

// Span returns the expression span.
func (e *ArrayAccessExpr) Span() lexer.Span { return e.span }

// NewArrayAccessExpr constructs an array access node.
func NewArrayAccessExpr(array Expr, indices []Expr, span lexer.Span) *ArrayAccessExpr {
	return &ArrayAccessExpr{Array: array, Indices: indices, span: span}
}

// exprNode marks ArrayAccessExpr as an expression.
func (*ArrayAccessExpr) exprNode() {}

// FunctionExpr is a call expression. TemplateTypes, Indices, and Args are
// never nil; empty and omitted argument lists convert identically.
type FunctionExpr struct {
	Function      Expr
	TemplateTypes []DataType
	Indices       []Expr
	Args          []Expr
	span          lexer.Span
}

// Span returns the expression span.
func (e *FunctionExpr) Span() lexer.Span { return e.span }

// NewFunctionExpr constructs a call expression node. Nil slices are
// normalized to empty ones.
func NewFunctionExpr(function Expr, templateTypes []DataType, indices, args []Expr, span lexer.Span) *FunctionExpr {
	if templateTypes == nil {
		templateTypes = []DataType{}
	}
	if indices == nil {
		indices = []Expr{}
	}
	if args == nil {
		args = []Expr{}
	}
	return &FunctionExpr{
		Function:      function,
		TemplateTypes: templateTypes,
		Indices:       indices,
		Args:          args,
		span:          span,
	}
}

// exprNode marks FunctionExpr as an expression.
func (*FunctionExpr) exprNode() {}

// UnaryExpr applies a unary operator to an operand.
type UnaryExpr struct {
	Op      UnaryOperator
	Operand Expr
	span    lexer.Span
}

// Span returns the expression span.
func (e *UnaryExpr) Span() lexer.Span { return e.span }

// NewUnaryExpr constructs a unary expression node.
func NewUnaryExpr(op UnaryOperator, operand Expr, span lexer.Span) *UnaryExpr {
	return &UnaryExpr{Op: op, Operand: operand, span: span}
}

// exprNode marks UnaryExpr as an expression.
func (*UnaryExpr) exprNode() {}

// BinaryExpr applies a binary operator to two operands.
type BinaryExpr struct {
	Op    BinaryOperator
	Left  Expr
	Right Expr
	span  lexer.Span
}

// Span returns the expression span.
func (e *BinaryExpr) Span() lexer.Span { return e.span }

// NewBinaryExpr constructs a binary expression node.
func NewBinaryExpr(op BinaryOperator, left, right Expr, span lexer.Span) *BinaryExpr {
	return &BinaryExpr{Op: op, Left: left, Right: right, span: span}
}

// exprNode marks BinaryExpr as an expression.
func (*BinaryExpr) exprNode() {}

// TernaryExpr is a conditional expression.
type TernaryExpr struct {
	Condition Expr
	True      Expr
	False     Expr
	span      lexer.Span
}

// Span returns the expression span.
func (e *TernaryExpr) Span() lexer.Span { return e.span }

// NewTernaryExpr constructs a ternary expression node.
func NewTernaryExpr(condition, trueExpr, falseExpr Expr, span lexer.Span) *TernaryExpr {
	return &TernaryExpr{Condition: condition, True: trueExpr, False: falseExpr, span: span}
}

// exprNode marks TernaryExpr as an expression.
func (*TernaryExpr) exprNode() {}
