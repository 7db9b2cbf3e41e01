// Package astbuild converts the concrete syntax tree into the abstract
// syntax tree. One convert method per grammar production: children are
// converted first and assembled into the parent node, which carries the
// production's span. Beyond the grammar the converter enforces structural
// completeness (argument names, operation return types, the declaration
// keyword) and binds template parameter occurrences to one identity per
// declaring scope. The first error aborts the conversion.
package astbuild

import (
	"fmt"
	"strings"

	"github.com/tensile-lang/tensile-lang/internal/ast"
	"github.com/tensile-lang/tensile-lang/internal/cst"
	"github.com/tensile-lang/tensile-lang/internal/diag"
	"github.com/tensile-lang/tensile-lang/internal/ir"
	"github.com/tensile-lang/tensile-lang/internal/lexer"
)

// Converter drives one CST to AST conversion. The zero value is not
// usable; use Convert.
type Converter struct {
	// scopes is the stack of template-parameter scopes, innermost last.
	// Each maps a source spelling to the identifier shared by every
	// occurrence of that spelling within the declaring scope.
	scopes []map[string]*ir.Identifier
}

// Convert converts a parsed module. On failure it returns a
// *diag.SyntaxError or *diag.LiteralError and no module.
func Convert(root *cst.Node) (*ast.Module, error) {
	c := &Converter{}
	c.pushScope() // module-level scope
	defer c.popScope()
	return c.convertModule(root)
}

func (c *Converter) pushScope() {
	c.scopes = append(c.scopes, make(map[string]*ir.Identifier))
}

func (c *Converter) popScope() {
	c.scopes = c.scopes[:len(c.scopes)-1]
}

// declareTemplate binds a declared template parameter in the innermost
// scope, shadowing any outer binding of the same spelling.
func (c *Converter) declareTemplate(spelling string) *ir.Identifier {
	id := ir.NewIdentifier(spelling)
	c.scopes[len(c.scopes)-1][spelling] = id
	return id
}

// lookupOrBindTemplate resolves a template spelling to its identifier,
// searching scopes innermost first. An unknown spelling binds a fresh
// identifier in the innermost scope so that later occurrences within the
// same declaring scope share it.
func (c *Converter) lookupOrBindTemplate(spelling string) *ir.Identifier {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if id, ok := c.scopes[i][spelling]; ok {
			return id
		}
	}
	return c.declareTemplate(spelling)
}

func (c *Converter) syntaxError(code diag.Code, msg string, span lexer.Span) error {
	return diag.NewSyntaxError(diag.StageConverter, code, msg, toDiagSpan(span))
}

// malformed reports a parse tree that does not have the shape its
// production promises; it indicates a parser bug or a hand-built tree.
func (c *Converter) malformed(n *cst.Node, what string) error {
	return c.syntaxError(diag.CodeSyntaxMalformedNode,
		fmt.Sprintf("malformed %s node: %s", n.Kind, what), n.Span())
}

func toDiagSpan(span lexer.Span) diag.Span {
	return diag.Span{
		Filename:  span.Filename,
		Line:      span.Line,
		Column:    span.Column,
		EndLine:   span.EndLine,
		EndColumn: span.EndColumn,
		Start:     span.Start,
		End:       span.End,
	}
}

func (c *Converter) convertModule(n *cst.Node) (*ast.Module, error) {
	if n.Kind != cst.KindModule {
		return nil, c.malformed(n, "expected module root")
	}

	module := ast.NewModule(n.Span())
	for _, child := range n.Children {
		stmt, err := c.convertStatement(child)
		if err != nil {
			return nil, err
		}
		module.Statements = append(module.Statements, stmt)
	}

	return module, nil
}

func (c *Converter) convertStatement(n *cst.Node) (ast.Stmt, error) {
	switch n.Kind {
	case cst.KindImport:
		return c.convertImport(n)
	case cst.KindFunction:
		return c.convertFunction(n)
	case cst.KindDeclaration:
		return c.convertDeclaration(n)
	case cst.KindExpressionStmt:
		return c.convertExpressionStatement(n)
	case cst.KindSelection:
		return c.convertSelection(n)
	case cst.KindForAll:
		return c.convertForAll(n)
	case cst.KindReturn:
		return c.convertReturn(n)
	default:
		return nil, c.malformed(n, "not a statement production")
	}
}

func (c *Converter) convertImport(n *cst.Node) (ast.Stmt, error) {
	name := n.FirstOfKind(cst.KindDottedName)
	if name == nil {
		return nil, c.malformed(n, "missing import path")
	}
	return ast.NewImport(ir.NewIdentifier(dottedSpelling(name)), n.Span()), nil
}

// dottedSpelling joins the identifier parts of a dotted name, preserving
// the dotted source spelling in one identifier hint.
func dottedSpelling(name *cst.Node) string {
	parts := make([]string, 0, len(name.Children))
	for _, part := range name.Children {
		parts = append(parts, part.Tok.Raw)
	}
	return strings.Join(parts, ".")
}

// convertFunction converts procedure and operation declarations. The
// grammar accepts any leading keyword and an absent return type; both are
// validated here so they fail as structural syntax errors rather than
// parse failures.
func (c *Converter) convertFunction(n *cst.Node) (ast.Stmt, error) {
	keyword := n.Child(0)
	nameLeaf := n.Child(1)
	if keyword == nil || nameLeaf == nil {
		return nil, c.malformed(n, "missing declaration header")
	}

	isOp := false
	switch keyword.Tok.Type {
	case lexer.PROC:
	case lexer.OP:
		isOp = true
	default:
		return nil, c.syntaxError(diag.CodeSyntaxInvalidKeyword,
			fmt.Sprintf("invalid function keyword %q: expected 'proc' or 'op'", keyword.Tok.Raw),
			keyword.Tok.Span)
	}

	// Template parameters are scoped to this declaration: every matching
	// spelling in the signature and body resolves to the ids declared
	// here.
	c.pushScope()
	defer c.popScope()

	var templates []*ast.TemplateDataType
	if list := n.FirstOfKind(cst.KindTemplateList); list != nil {
		templates = make([]*ast.TemplateDataType, 0, len(list.Children))
		for _, leaf := range list.Children {
			id := c.declareTemplate(leaf.Tok.Raw)
			templates = append(templates, ast.NewTemplateDataType(id, leaf.Tok.Span))
		}
	}

	var indices []ast.Expr
	if list := n.FirstOfKind(cst.KindIndexParamList); list != nil {
		indices = make([]ast.Expr, 0, len(list.Children))
		for _, leaf := range list.Children {
			indices = append(indices, ast.NewIdentifierExpr(ir.NewIdentifier(leaf.Tok.Raw), leaf.Tok.Span))
		}
	}

	args, err := c.convertArgumentList(n.FirstOfKind(cst.KindArgumentList))
	if err != nil {
		return nil, err
	}

	var ret *ast.QualifiedType
	if qt := n.FirstOfKind(cst.KindQualifiedType); qt != nil {
		ret, err = c.convertQualifiedType(qt)
		if err != nil {
			return nil, err
		}
	} else if isOp {
		return nil, c.syntaxError(diag.CodeSyntaxMissingReturn,
			fmt.Sprintf("operation %q requires a return type", nameLeaf.Tok.Raw),
			n.Span())
	}

	body, err := c.convertBlock(n.FirstOfKind(cst.KindBlock))
	if err != nil {
		return nil, err
	}

	name := ir.NewIdentifier(nameLeaf.Tok.Raw)

	if isOp {
		op := &ast.Operation{
			Name:      name,
			Templates: templates,
			Indices:   indices,
			Args:      args,
			Body:      body,
			Return:    ret,
		}
		op.SetSpan(n.Span())
		return op, nil
	}

	proc := &ast.Procedure{
		Name:      name,
		Templates: templates,
		Indices:   indices,
		Args:      args,
		Body:      body,
	}
	proc.SetSpan(n.Span())
	return proc, nil
}

func (c *Converter) convertArgumentList(list *cst.Node) ([]*ast.Argument, error) {
	if list == nil {
		return nil, nil
	}

	args := make([]*ast.Argument, 0, len(list.Children))
	for _, argNode := range list.Children {
		arg, err := c.convertArgument(argNode)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// convertArgument converts one "qualified_type name" argument. The name
// is optional in the grammar but mandatory here.
func (c *Converter) convertArgument(n *cst.Node) (*ast.Argument, error) {
	qtNode := n.FirstOfKind(cst.KindQualifiedType)
	if qtNode == nil {
		return nil, c.malformed(n, "missing qualified type")
	}

	qt, err := c.convertQualifiedType(qtNode)
	if err != nil {
		return nil, err
	}

	nameLeaf := n.FirstOfKind(cst.KindToken)
	if nameLeaf == nil {
		return nil, c.syntaxError(diag.CodeSyntaxUnnamedArgument,
			"function argument requires a name", n.Span())
	}

	return ast.NewArgument(ir.NewIdentifier(nameLeaf.Tok.Raw), qt, n.Span()), nil
}

func (c *Converter) convertBlock(n *cst.Node) ([]ast.Stmt, error) {
	if n == nil {
		return nil, nil
	}

	stmts := make([]ast.Stmt, 0, len(n.Children))
	for _, child := range n.Children {
		stmt, err := c.convertStatement(child)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func (c *Converter) convertDeclaration(n *cst.Node) (ast.Stmt, error) {
	qtNode := n.FirstOfKind(cst.KindQualifiedType)
	nameLeaf := n.FirstOfKind(cst.KindToken)
	if qtNode == nil || nameLeaf == nil {
		return nil, c.malformed(n, "missing type or name")
	}

	qt, err := c.convertQualifiedType(qtNode)
	if err != nil {
		return nil, err
	}

	var value ast.Expr
	if len(n.Children) > 2 {
		value, err = c.convertExpression(n.Children[2])
		if err != nil {
			return nil, err
		}
	}

	return ast.NewDeclarationStatement(ir.NewIdentifier(nameLeaf.Tok.Raw), qt, value, n.Span()), nil
}

func (c *Converter) convertExpressionStatement(n *cst.Node) (ast.Stmt, error) {
	var left, right ast.Expr
	var err error

	switch len(n.Children) {
	case 1:
		right, err = c.convertExpression(n.Children[0])
	case 2:
		left, err = c.convertExpression(n.Children[0])
		if err == nil {
			right, err = c.convertExpression(n.Children[1])
		}
	default:
		return nil, c.malformed(n, "expected one or two expressions")
	}
	if err != nil {
		return nil, err
	}

	return ast.NewExpressionStatement(left, right, n.Span()), nil
}

func (c *Converter) convertSelection(n *cst.Node) (ast.Stmt, error) {
	if len(n.Children) < 2 {
		return nil, c.malformed(n, "missing condition or body")
	}

	cond, err := c.convertExpression(n.Children[0])
	if err != nil {
		return nil, err
	}

	trueBody, err := c.convertBlock(n.Children[1])
	if err != nil {
		return nil, err
	}

	var falseBody []ast.Stmt
	if len(n.Children) > 2 {
		falseBody, err = c.convertBlock(n.Children[2])
		if err != nil {
			return nil, err
		}
	}

	return ast.NewSelectionStatement(cond, trueBody, falseBody, n.Span()), nil
}

func (c *Converter) convertForAll(n *cst.Node) (ast.Stmt, error) {
	if len(n.Children) < 2 {
		return nil, c.malformed(n, "missing index or body")
	}

	index, err := c.convertExpression(n.Children[0])
	if err != nil {
		return nil, err
	}

	body, err := c.convertBlock(n.Children[1])
	if err != nil {
		return nil, err
	}

	return ast.NewForAllStatement(index, body, n.Span()), nil
}

func (c *Converter) convertReturn(n *cst.Node) (ast.Stmt, error) {
	if len(n.Children) < 1 {
		return nil, c.malformed(n, "missing return value")
	}

	value, err := c.convertExpression(n.Children[0])
	if err != nil {
		return nil, err
	}

	return ast.NewReturnStatement(value, n.Span()), nil
}
