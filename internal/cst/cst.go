// Package cst defines the concrete syntax tree produced by the grammar
// parser. Every grammar production becomes one Node identified by Kind;
// terminals are leaf nodes wrapping their token. The converter in astbuild
// walks this tree, so the shape here is the contract between the two.
package cst

import "github.com/tensile-lang/tensile-lang/internal/lexer"

// Kind names a grammar production.
type Kind string

const (
	KindModule         Kind = "module"
	KindImport         Kind = "import_statement"
	KindFunction       Kind = "function_declaration"
	KindTemplateList   Kind = "template_list"
	KindIndexParamList Kind = "index_param_list"
	KindArgumentList   Kind = "argument_list"
	KindArgument       Kind = "argument"
	KindQualifiedType  Kind = "qualified_type"
	KindNumericalType  Kind = "numerical_type"
	KindIndexType      Kind = "index_type"
	KindTupleType      Kind = "tuple_type"
	KindShape          Kind = "shape"
	KindDeclaration    Kind = "declaration_statement"
	KindExpressionStmt Kind = "expression_statement"
	KindSelection      Kind = "selection_statement"
	KindForAll         Kind = "forall_statement"
	KindReturn         Kind = "return_statement"
	KindBlock          Kind = "block"
	KindTernaryExpr    Kind = "ternary_expression"
	KindBinaryExpr     Kind = "binary_expression"
	KindUnaryExpr      Kind = "unary_expression"
	KindFunctionCall   Kind = "function_call"
	KindTemplateArgs   Kind = "template_args"
	KindIndexArgs      Kind = "index_args"
	KindCallArgs       Kind = "call_args"
	KindTupleExpr      Kind = "tuple_expression"
	KindTupleAccess    Kind = "tuple_access"
	KindArrayAccess    Kind = "array_access"
	KindIdentifierExpr Kind = "identifier_expression"
	KindDottedName     Kind = "dotted_name"
	KindIntLiteral     Kind = "int_literal"
	KindFloatLiteral   Kind = "float_literal"
	KindComplexLiteral Kind = "complex_literal"
	KindToken          Kind = "token"
	KindExpressionList Kind = "expression_list"
	KindGroupedExpr    Kind = "grouped_expression"
)

// Node is one parse-tree node. Leaf nodes have Kind KindToken (or one of
// the literal kinds) and carry the underlying token; interior nodes carry
// children in source order.
type Node struct {
	Kind     Kind
	Children []*Node
	Tok      lexer.Token // valid for leaf nodes
	span     lexer.Span
}

// NewNode constructs an interior node with the provided span.
func NewNode(kind Kind, span lexer.Span) *Node {
	return &Node{Kind: kind, span: span}
}

// NewLeaf constructs a leaf node wrapping a token.
func NewLeaf(kind Kind, tok lexer.Token) *Node {
	return &Node{Kind: kind, Tok: tok, span: tok.Span}
}

// Span returns the source span covered by the node.
func (n *Node) Span() lexer.Span { return n.span }

// SetSpan updates the node span.
func (n *Node) SetSpan(span lexer.Span) { n.span = span }

// Append adds children and grows the node span to cover them.
func (n *Node) Append(children ...*Node) {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.Children = append(n.Children, c)
		n.span = MergeSpan(n.span, c.Span())
	}
}

// Child returns the i-th child, or nil when out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// FirstOfKind returns the first direct child of the given kind, or nil.
func (n *Node) FirstOfKind(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// MergeSpan returns a span covering both inputs. Callers pass the earlier
// span first; the result keeps its start and extends the end as needed.
func MergeSpan(start, end lexer.Span) lexer.Span {
	span := start

	if span.Filename == "" {
		span.Filename = end.Filename
	}

	if span.Line == 0 && end.Line != 0 {
		span.Line = end.Line
		span.Column = end.Column
		span.Start = end.Start
	}

	if end.End > span.End {
		span.End = end.End
		span.EndLine = end.EndLine
		span.EndColumn = end.EndColumn
	}

	return span
}
