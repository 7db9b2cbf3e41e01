package astbuild

import (
	"fmt"

	"github.com/tensile-lang/tensile-lang/internal/ast"
	"github.com/tensile-lang/tensile-lang/internal/cst"
	"github.com/tensile-lang/tensile-lang/internal/ir"
)

var unaryOps = func() map[string]ast.UnaryOperator {
	m := make(map[string]ast.UnaryOperator, len(ast.UnaryOperators))
	for _, op := range ast.UnaryOperators {
		m[string(op)] = op
	}
	return m
}()

var binaryOps = func() map[string]ast.BinaryOperator {
	m := make(map[string]ast.BinaryOperator, len(ast.BinaryOperators))
	for _, op := range ast.BinaryOperators {
		m[string(op)] = op
	}
	return m
}()

func (c *Converter) convertExpression(n *cst.Node) (ast.Expr, error) {
	switch n.Kind {
	case cst.KindIntLiteral:
		return c.convertIntLiteral(n)
	case cst.KindFloatLiteral:
		return c.convertFloatLiteral(n)
	case cst.KindComplexLiteral:
		return c.convertComplexLiteral(n)
	case cst.KindIdentifierExpr:
		return c.convertIdentifierExpr(n)
	case cst.KindGroupedExpr:
		// Grouping has no AST node of its own.
		if len(n.Children) != 1 {
			return nil, c.malformed(n, "expected one grouped expression")
		}
		return c.convertExpression(n.Children[0])
	case cst.KindTupleExpr:
		return c.convertTupleExpr(n)
	case cst.KindTupleAccess:
		return c.convertTupleAccess(n)
	case cst.KindArrayAccess:
		return c.convertArrayAccess(n)
	case cst.KindFunctionCall:
		return c.convertFunctionCall(n)
	case cst.KindUnaryExpr:
		return c.convertUnaryExpr(n)
	case cst.KindBinaryExpr:
		return c.convertBinaryExpr(n)
	case cst.KindTernaryExpr:
		return c.convertTernaryExpr(n)
	default:
		return nil, c.malformed(n, "not an expression production")
	}
}

// convertIdentifierExpr converts an identifier reference. Each occurrence
// gets a fresh identity; reference resolution happens in later passes.
func (c *Converter) convertIdentifierExpr(n *cst.Node) (ast.Expr, error) {
	name := n.FirstOfKind(cst.KindDottedName)
	if name == nil {
		return nil, c.malformed(n, "missing name")
	}
	return ast.NewIdentifierExpr(ir.NewIdentifier(dottedSpelling(name)), n.Span()), nil
}

func (c *Converter) convertTupleExpr(n *cst.Node) (ast.Expr, error) {
	exprs := make([]ast.Expr, 0, len(n.Children))
	for _, child := range n.Children {
		expr, err := c.convertExpression(child)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return ast.NewTupleExpr(exprs, n.Span()), nil
}

func (c *Converter) convertTupleAccess(n *cst.Node) (ast.Expr, error) {
	if len(n.Children) != 2 {
		return nil, c.malformed(n, "expected tuple and index")
	}

	tuple, err := c.convertExpression(n.Children[0])
	if err != nil {
		return nil, err
	}

	index, err := c.decodeInt(n.Children[1])
	if err != nil {
		return nil, err
	}

	return ast.NewTupleAccessExpr(tuple, index.Value, n.Span()), nil
}

func (c *Converter) convertArrayAccess(n *cst.Node) (ast.Expr, error) {
	if len(n.Children) != 2 {
		return nil, c.malformed(n, "expected array and index list")
	}

	array, err := c.convertExpression(n.Children[0])
	if err != nil {
		return nil, err
	}

	list := n.Children[1]
	indices := make([]ast.Expr, 0, len(list.Children))
	for _, child := range list.Children {
		expr, err := c.convertExpression(child)
		if err != nil {
			return nil, err
		}
		indices = append(indices, expr)
	}

	return ast.NewArrayAccessExpr(array, indices, n.Span()), nil
}

// convertFunctionCall converts "callee<T,...>[i,...](a,...)". Template and
// index argument lists are optional in the source; the node always carries
// the three lists, empty when absent.
func (c *Converter) convertFunctionCall(n *cst.Node) (ast.Expr, error) {
	callee := n.FirstOfKind(cst.KindIdentifierExpr)
	if callee == nil {
		return nil, c.malformed(n, "missing callee")
	}

	function, err := c.convertIdentifierExpr(callee)
	if err != nil {
		return nil, err
	}

	var templateTypes []ast.DataType
	if list := n.FirstOfKind(cst.KindTemplateArgs); list != nil {
		templateTypes = make([]ast.DataType, 0, len(list.Children))
		for _, child := range list.Children {
			dt, err := c.convertTemplateArgument(child)
			if err != nil {
				return nil, err
			}
			templateTypes = append(templateTypes, dt)
		}
	}

	var indices []ast.Expr
	if list := n.FirstOfKind(cst.KindIndexArgs); list != nil {
		indices = make([]ast.Expr, 0, len(list.Children))
		for _, child := range list.Children {
			expr, err := c.convertExpression(child)
			if err != nil {
				return nil, err
			}
			indices = append(indices, expr)
		}
	}

	var args []ast.Expr
	if list := n.FirstOfKind(cst.KindCallArgs); list != nil {
		args = make([]ast.Expr, 0, len(list.Children))
		for _, child := range list.Children {
			expr, err := c.convertExpression(child)
			if err != nil {
				return nil, err
			}
			args = append(args, expr)
		}
	}

	return ast.NewFunctionExpr(function, templateTypes, indices, args, n.Span()), nil
}

func (c *Converter) convertUnaryExpr(n *cst.Node) (ast.Expr, error) {
	opLeaf := n.Child(0)
	operandNode := n.Child(1)
	if opLeaf == nil || operandNode == nil {
		return nil, c.malformed(n, "missing operator or operand")
	}

	op, ok := unaryOps[opLeaf.Tok.Raw]
	if !ok {
		return nil, c.malformed(n, fmt.Sprintf("unknown unary operator %q", opLeaf.Tok.Raw))
	}

	operand, err := c.convertExpression(operandNode)
	if err != nil {
		return nil, err
	}

	return ast.NewUnaryExpr(op, operand, n.Span()), nil
}

func (c *Converter) convertBinaryExpr(n *cst.Node) (ast.Expr, error) {
	if len(n.Children) != 3 {
		return nil, c.malformed(n, "expected operands and operator")
	}

	left, err := c.convertExpression(n.Children[0])
	if err != nil {
		return nil, err
	}

	opLeaf := n.Children[1]
	op, ok := binaryOps[opLeaf.Tok.Raw]
	if !ok {
		return nil, c.malformed(n, fmt.Sprintf("unknown binary operator %q", opLeaf.Tok.Raw))
	}

	right, err := c.convertExpression(n.Children[2])
	if err != nil {
		return nil, err
	}

	return ast.NewBinaryExpr(op, left, right, n.Span()), nil
}

func (c *Converter) convertTernaryExpr(n *cst.Node) (ast.Expr, error) {
	if len(n.Children) != 3 {
		return nil, c.malformed(n, "expected condition and branches")
	}

	cond, err := c.convertExpression(n.Children[0])
	if err != nil {
		return nil, err
	}
	trueExpr, err := c.convertExpression(n.Children[1])
	if err != nil {
		return nil, err
	}
	falseExpr, err := c.convertExpression(n.Children[2])
	if err != nil {
		return nil, err
	}

	return ast.NewTernaryExpr(cond, trueExpr, falseExpr, n.Span()), nil
}
