package ast

import (
	"github.com/tensile-lang/tensile-lang/internal/ir"
	"github.com/tensile-lang/tensile-lang/internal/lexer"
)

// DataType is the element type of a numerical type: either a core data
// type or a template placeholder.
type DataType interface {
	Node
	dataTypeNode()
}

// CoreType wraps a primitive core data type tag.
type CoreType struct {
	Core ir.CoreDataType
	span lexer.Span
}

// Span returns the type span.
func (t *CoreType) Span() lexer.Span { return t.span }

// NewCoreType constructs a core data type node.
func NewCoreType(core ir.CoreDataType, span lexer.Span) *CoreType {
	return &CoreType{Core: core, span: span}
}

// dataTypeNode marks CoreType as a data type.
func (*CoreType) dataTypeNode() {}

// TemplateDataType is a placeholder type bound to a unique identifier. All
// occurrences of one declared template parameter share one identifier.
type TemplateDataType struct {
	Ident *ir.Identifier
	span  lexer.Span
}

// Span returns the type span.
func (t *TemplateDataType) Span() lexer.Span { return t.span }

// NewTemplateDataType constructs a template placeholder node.
func NewTemplateDataType(ident *ir.Identifier, span lexer.Span) *TemplateDataType {
	return &TemplateDataType{Ident: ident, span: span}
}

// dataTypeNode marks TemplateDataType as a data type.
func (*TemplateDataType) dataTypeNode() {}

// NumericalType is a (possibly shaped) numerical type. An empty shape
// means scalar.
type NumericalType struct {
	DataType DataType
	Shape    []Expr
	span     lexer.Span
}

// Span returns the type span.
func (t *NumericalType) Span() lexer.Span { return t.span }

// NewNumericalType constructs a numerical type node.
func NewNumericalType(dataType DataType, shape []Expr, span lexer.Span) *NumericalType {
	return &NumericalType{DataType: dataType, Shape: shape, span: span}
}

// typeNode marks NumericalType as a type.
func (*NumericalType) typeNode() {}

// IndexType is a bounded index range with an optional stride.
type IndexType struct {
	Lower  Expr
	Upper  Expr
	Stride Expr // nil when absent
	span   lexer.Span
}

// Span returns the type span.
func (t *IndexType) Span() lexer.Span { return t.span }

// NewIndexType constructs an index type node.
func NewIndexType(lower, upper, stride Expr, span lexer.Span) *IndexType {
	return &IndexType{Lower: lower, Upper: upper, Stride: stride, span: span}
}

// typeNode marks IndexType as a type.
func (*IndexType) typeNode() {}

// TupleType is an ordered list of component types. It always has at least
// one component.
type TupleType struct {
	Types []Type
	span  lexer.Span
}

// Span returns the type span.
func (t *TupleType) Span() lexer.Span { return t.span }

// NewTupleType constructs a tuple type node.
func NewTupleType(types []Type, span lexer.Span) *TupleType {
	return &TupleType{Types: types, span: span}
}

// typeNode marks TupleType as a type.
func (*TupleType) typeNode() {}
