package ast

import (
	"github.com/tensile-lang/tensile-lang/internal/ir"
	"github.com/tensile-lang/tensile-lang/internal/lexer"
)

// Node represents any AST node with an associated source span.
type Node interface {
	Span() lexer.Span
}

// Expr represents an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt represents a statement node.
type Stmt interface {
	Node
	stmtNode()
}

// Type represents a base type annotation.
type Type interface {
	Node
	typeNode()
}

// Module represents a converted compilation unit: an ordered sequence of
// top-level statements. Statement order is source order.
type Module struct {
	Statements []Stmt
	span       lexer.Span
}

// Span returns the span covering the entire module.
func (m *Module) Span() lexer.Span { return m.span }

// NewModule constructs a module node with the provided span.
func NewModule(span lexer.Span) *Module {
	return &Module{span: span}
}

// SetSpan updates the module span.
func (m *Module) SetSpan(span lexer.Span) {
	m.span = span
}

// Import represents an import statement. Name holds the dotted path.
type Import struct {
	Name *ir.Identifier
	span lexer.Span
}

// Span returns the statement span.
func (s *Import) Span() lexer.Span { return s.span }

// NewImport constructs an import statement node.
func NewImport(name *ir.Identifier, span lexer.Span) *Import {
	return &Import{Name: name, span: span}
}

// stmtNode marks Import as a statement.
func (*Import) stmtNode() {}

// Procedure represents a procedure declaration. Procedures have no return
// type; otherwise they share the operation shape.
type Procedure struct {
	Name      *ir.Identifier
	Templates []*TemplateDataType
	Indices   []Expr
	Args      []*Argument
	Body      []Stmt
	span      lexer.Span
}

// Span returns the declaration span.
func (s *Procedure) Span() lexer.Span { return s.span }

// SetSpan updates the declaration span.
func (s *Procedure) SetSpan(span lexer.Span) {
	s.span = span
}

// stmtNode marks Procedure as a statement.
func (*Procedure) stmtNode() {}

// Operation represents an operation declaration: a procedure with a
// mandatory qualified return type.
type Operation struct {
	Name      *ir.Identifier
	Templates []*TemplateDataType
	Indices   []Expr
	Args      []*Argument
	Body      []Stmt
	Return    *QualifiedType
	span      lexer.Span
}

// Span returns the declaration span.
func (s *Operation) Span() lexer.Span { return s.span }

// SetSpan updates the declaration span.
func (s *Operation) SetSpan(span lexer.Span) {
	s.span = span
}

// stmtNode marks Operation as a statement.
func (*Operation) stmtNode() {}

// Argument represents a named, qualified procedure/operation argument.
type Argument struct {
	Name *ir.Identifier
	Type *QualifiedType
	span lexer.Span
}

// Span returns the argument span.
func (a *Argument) Span() lexer.Span { return a.span }

// NewArgument constructs an argument node.
func NewArgument(name *ir.Identifier, typ *QualifiedType, span lexer.Span) *Argument {
	return &Argument{Name: name, Type: typ, span: span}
}

// QualifiedType pairs a type qualifier with exactly one base type.
type QualifiedType struct {
	Qualifier ir.TypeQualifier
	Base      Type
	span      lexer.Span
}

// Span returns the qualified type span.
func (q *QualifiedType) Span() lexer.Span { return q.span }

// NewQualifiedType constructs a qualified type node.
func NewQualifiedType(qualifier ir.TypeQualifier, base Type, span lexer.Span) *QualifiedType {
	return &QualifiedType{Qualifier: qualifier, Base: base, span: span}
}

// DeclarationStatement represents a variable declaration with an optional
// initializing expression.
type DeclarationStatement struct {
	Name  *ir.Identifier
	Type  *QualifiedType
	Value Expr // nil when the declaration has no initializer
	span  lexer.Span
}

// Span returns the statement span.
func (s *DeclarationStatement) Span() lexer.Span { return s.span }

// NewDeclarationStatement constructs a declaration statement node. Value
// may be nil.
func NewDeclarationStatement(name *ir.Identifier, typ *QualifiedType, value Expr, span lexer.Span) *DeclarationStatement {
	return &DeclarationStatement{Name: name, Type: typ, Value: value, span: span}
}

// stmtNode marks DeclarationStatement as a statement.
func (*DeclarationStatement) stmtNode() {}

// ExpressionStatement represents an expression statement with an optional
// assignment target on the left.
type ExpressionStatement struct {
	Left  Expr // nil when the statement is not an assignment
	Right Expr
	span  lexer.Span
}

// Span returns the statement span.
func (s *ExpressionStatement) Span() lexer.Span { return s.span }

// NewExpressionStatement constructs an expression statement node. Left
// may be nil.
func NewExpressionStatement(left, right Expr, span lexer.Span) *ExpressionStatement {
	return &ExpressionStatement{Left: left, Right: right, span: span}
}

// stmtNode marks ExpressionStatement as a statement.
func (*ExpressionStatement) stmtNode() {}

// SelectionStatement represents an if/else statement. FalseBody is empty
// when no else branch is present.
type SelectionStatement struct {
	Condition Expr
	TrueBody  []Stmt
	FalseBody []Stmt
	span      lexer.Span
}

// Span returns the statement span.
func (s *SelectionStatement) Span() lexer.Span { return s.span }

// NewSelectionStatement constructs an if/else statement node.
func NewSelectionStatement(condition Expr, trueBody, falseBody []Stmt, span lexer.Span) *SelectionStatement {
	return &SelectionStatement{Condition: condition, TrueBody: trueBody, FalseBody: falseBody, span: span}
}

// stmtNode marks SelectionStatement as a statement.
func (*SelectionStatement) stmtNode() {}

// ForAllStatement represents a forall loop over an index expression.
type ForAllStatement struct {
	Index Expr
	Body  []Stmt
	span  lexer.Span
}

// Span returns the statement span.
func (s *ForAllStatement) Span() lexer.Span { return s.span }

// NewForAllStatement constructs a forall statement node.
func NewForAllStatement(index Expr, body []Stmt, span lexer.Span) *ForAllStatement {
	return &ForAllStatement{Index: index, Body: body, span: span}
}

// stmtNode marks ForAllStatement as a statement.
func (*ForAllStatement) stmtNode() {}

// ReturnStatement represents a return statement with a mandatory value.
type ReturnStatement struct {
	Value Expr
	span  lexer.Span
}

// Span returns the statement span.
func (s *ReturnStatement) Span() lexer.Span { return s.span }

// NewReturnStatement constructs a return statement node.
func NewReturnStatement(value Expr, span lexer.Span) *ReturnStatement {
	return &ReturnStatement{Value: value, span: span}
}

// stmtNode marks ReturnStatement as a statement.
func (*ReturnStatement) stmtNode() {}
